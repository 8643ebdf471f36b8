package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unison/inventory-manager/internal/models"
	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

const userResource = "user"

// UserStore handles login accounts. Names are matched case-insensitively.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Get(ctx context.Context, name string) (*models.User, error) {
	var u models.User
	err := withConn(ctx, s.db, func(q QueryInterceptor) error {
		return q.QueryRowContext(ctx, queryGetUser, name).Scan(&u.Name, &u.PasswordHash, &u.Role, &u.LastLogin)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewUserNotFoundError(name)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create stores a user whose password is already hashed.
func (s *UserStore) Create(ctx context.Context, u models.User) error {
	err := withTx(ctx, s.db, func(q QueryInterceptor) error {
		var n int
		if err := q.QueryRowContext(ctx, queryCountUsersByName, u.Name).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return srvErrors.NewConstraintViolationError(userResource, "user "+u.Name+" already exists", nil)
		}
		_, err := q.ExecContext(ctx, queryInsertUser, u.Name, u.PasswordHash, u.Role)
		return err
	})
	return classifyWriteError(userResource, err)
}

// TouchLastLogin records at as the user's last successful login.
func (s *UserStore) TouchLastLogin(ctx context.Context, name, at string) error {
	err := withTx(ctx, s.db, func(q QueryInterceptor) error {
		res, err := q.ExecContext(ctx, queryTouchLastLogin, at, name)
		if err != nil {
			return err
		}
		return expectAffected(res, srvErrors.NewUserNotFoundError(name))
	})
	return classifyWriteError(userResource, err)
}
