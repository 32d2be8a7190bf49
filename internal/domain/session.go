package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated login session. The token is the
// client-held secret; it is only available in full at creation time.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given
// instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionRepository defines session storage keyed by token.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error

	// GetByToken returns (nil, nil) when no session holds the token.
	// Expiry is not checked here; that is the session manager's job.
	GetByToken(ctx context.Context, token string) (*Session, error)

	// DeleteByToken removes a session. Deleting an absent token is
	// not an error.
	DeleteByToken(ctx context.Context, token string) error
}
