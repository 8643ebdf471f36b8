package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/unison/inventory-manager/internal/audit"
	"github.com/unison/inventory-manager/internal/auth"
	"github.com/unison/inventory-manager/internal/models"
	"github.com/unison/inventory-manager/internal/store"
	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

// PasswordHasher verifies and produces password hashes.
type PasswordHasher interface {
	auth.Verifier
	Hash(plaintext string) (string, error)
}

type AuthService struct {
	store   *store.Store
	session *auth.Session
	hasher  PasswordHasher
	stamper *audit.Stamper
}

func NewAuthService(st *store.Store, session *auth.Session, hasher PasswordHasher, stamper *audit.Stamper) *AuthService {
	return &AuthService{store: st, session: session, hasher: hasher, stamper: stamper}
}

type newUserInput struct {
	Name     string `validate:"required,max=64"`
	Password string `validate:"required,min=4"`
	Role     string `validate:"required"`
}

// Authenticate checks the credentials and records the login time. Unknown users
// and wrong passwords both yield InvalidCredentialsError.
func (s *AuthService) Authenticate(ctx context.Context, name, password string) (auth.Principal, error) {
	u, err := s.store.User().Get(ctx, name)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			return auth.Principal{}, srvErrors.NewInvalidCredentialsError()
		}
		return auth.Principal{}, err
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		zap.S().Named("auth_service").Warnw("login rejected", "user", name)
		return auth.Principal{}, srvErrors.NewInvalidCredentialsError()
	}

	if err := s.store.User().TouchLastLogin(ctx, u.Name, s.stamper.Now()); err != nil {
		return auth.Principal{}, err
	}

	return auth.Principal{Name: u.Name, Role: u.Role}, nil
}

// Login authenticates and makes the user the acting identity of the process session.
func (s *AuthService) Login(ctx context.Context, name, password string) (auth.Principal, error) {
	p, err := s.Authenticate(ctx, name, password)
	if err != nil {
		return auth.Principal{}, err
	}
	s.session.Set(p)
	zap.S().Named("auth_service").Infow("user logged in", "user", p.Name, "role", p.Role)
	return p, nil
}

func (s *AuthService) Logout() {
	s.session.Clear()
}

// CreateUser stores a new account. It carries no permission check so the first
// administrator can be created from the command line.
func (s *AuthService) CreateUser(ctx context.Context, name, password, role string) error {
	if err := validateStruct(newUserInput{Name: name, Password: password, Role: role}); err != nil {
		return err
	}
	r, ok := auth.ParseRole(role)
	if !ok {
		return srvErrors.NewValidationErrorf("unknown role %q", role)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	return s.store.User().Create(ctx, models.User{Name: name, PasswordHash: hash, Role: string(r)})
}
