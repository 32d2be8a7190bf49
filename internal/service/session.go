package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/google/uuid"
)

// tokenBytes is the raw entropy of a session token before hex encoding.
const tokenBytes = 32

// SessionManager issues, validates, and revokes login sessions. Expired
// sessions are evicted lazily on the first validation attempt after
// expiry; there is no background sweep.
type SessionManager struct {
	sessions domain.SessionRepository
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionManager creates a session manager with the given lifetime.
func NewSessionManager(sessions domain.SessionRepository, ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create issues a new session for the user and returns the full record.
// This is the only time the raw token is available to callers.
func (m *SessionManager) Create(ctx context.Context, userID uuid.UUID) (*domain.Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := m.now()
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return session, nil
}

// Validate resolves a token to its session. Unknown tokens return
// (nil, nil). A session past its expiry is deleted as a side effect and
// reported as absent; it is never returned as valid.
func (m *SessionManager) Validate(ctx context.Context, token string) (*domain.Session, error) {
	session, err := m.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	if session.Expired(m.now()) {
		if err := m.sessions.DeleteByToken(ctx, token); err != nil {
			return nil, fmt.Errorf("failed to evict expired session: %w", err)
		}
		return nil, nil
	}

	return session, nil
}

// Revoke deletes a session. Revoking an unknown token is a no-op.
func (m *SessionManager) Revoke(ctx context.Context, token string) error {
	if err := m.sessions.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// TTL returns the configured session lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
