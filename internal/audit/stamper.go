// Package audit produces the audit stamp recorded on every write: one timestamp,
// used for both creation and modification on insert, and the acting user.
package audit

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	// TimestampLayout is the stored timestamp format (yyyy-MM-dd HH:mm:ss).
	TimestampLayout = "2006-01-02 15:04:05"
	// DefaultTimeZone has no daylight-saving shifts.
	DefaultTimeZone = "America/Phoenix"
	// SystemUser stamps rows written without a session, such as seed data.
	SystemUser = "system_init"
)

// Identity resolves the user behind a write.
type Identity interface {
	CurrentUserName(ctx context.Context) string
}

// Stamp is the audit data for one logical write.
type Stamp struct {
	At   string
	User string
}

type Stamper struct {
	identity Identity
	location *time.Location
	now      func() time.Time
}

type Option func(*Stamper)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Stamper) {
		s.now = now
	}
}

// WithLocation overrides the zone used to render timestamps.
func WithLocation(loc *time.Location) Option {
	return func(s *Stamper) {
		s.location = loc
	}
}

// NewStamper builds a stamper rendering times in zoneName. An empty zoneName
// selects DefaultTimeZone.
func NewStamper(identity Identity, zoneName string, opts ...Option) (*Stamper, error) {
	if zoneName == "" {
		zoneName = DefaultTimeZone
	}
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", zoneName, err)
	}

	s := &Stamper{
		identity: identity,
		location: loc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Now renders the current instant in the stamper's zone.
func (s *Stamper) Now() string {
	return s.now().In(s.location).Format(TimestampLayout)
}

// ActingUser asks the identity provider every time; the session user can change
// between two writes.
func (s *Stamper) ActingUser(ctx context.Context) string {
	if s.identity == nil {
		return SystemUser
	}
	return s.identity.CurrentUserName(ctx)
}

// Stamp captures the timestamp and the acting user for a single write.
func (s *Stamper) Stamp(ctx context.Context) Stamp {
	return Stamp{At: s.Now(), User: s.ActingUser(ctx)}
}

// StampAs is Stamp with an explicit acting user.
func (s *Stamper) StampAs(user string) Stamp {
	return Stamp{At: s.Now(), User: user}
}
