// Package auth provides the identity and access defaults of the inventory
// manager: the process session, request principals carried in a context,
// bcrypt password verification, API tokens and role permissions.
package auth

import (
	"context"
	"sync"
)

const AnonymousUser = "anonymous"

// Identity answers who is acting and with which role.
type Identity interface {
	CurrentUserName(ctx context.Context) string
	CurrentUserRole(ctx context.Context) string
}

// Principal is an authenticated user.
type Principal struct {
	Name string
	Role string
}

type principalKey struct{}

// WithPrincipal attaches p to ctx. ContextIdentity prefers it over the session.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// Session is the single interactive login of the process. It starts anonymous
// with the guest role.
type Session struct {
	mu        sync.RWMutex
	principal Principal
}

func NewSession() *Session {
	s := &Session{}
	s.Clear()
	return s
}

func (s *Session) Set(p Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = p
}

func (s *Session) Clear() {
	s.Set(Principal{Name: AnonymousUser, Role: string(RoleGuest)})
}

func (s *Session) Principal() Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

func (s *Session) CurrentUserName(context.Context) string {
	return s.Principal().Name
}

func (s *Session) CurrentUserRole(context.Context) string {
	return s.Principal().Role
}

// ContextIdentity resolves the principal attached to the context and falls back
// to the session.
type ContextIdentity struct {
	session *Session
}

func NewContextIdentity(session *Session) *ContextIdentity {
	return &ContextIdentity{session: session}
}

func (c *ContextIdentity) CurrentUserName(ctx context.Context) string {
	if p, ok := PrincipalFrom(ctx); ok {
		return p.Name
	}
	return c.session.CurrentUserName(ctx)
}

func (c *ContextIdentity) CurrentUserRole(ctx context.Context) string {
	if p, ok := PrincipalFrom(ctx); ok {
		return p.Role
	}
	return c.session.CurrentUserRole(ctx)
}
