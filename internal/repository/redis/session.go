package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionRepository implements domain.SessionRepository on Redis.
// Records carry their own expires_at and also get a matching Redis TTL;
// the TTL reclaims storage while the session manager still applies the
// lazy expiry check on read.
type SessionRepository struct {
	client *Client
}

// NewSessionRepository creates a Redis-backed session store
func NewSessionRepository(client *Client) *SessionRepository {
	return &SessionRepository{client: client}
}

type sessionRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(sessionRecord{
		ID:        session.ID.String(),
		UserID:    session.UserID.String(),
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}

	key := sessionKeyPrefix + session.Token
	if err := r.client.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	data, err := r.client.rdb.Get(ctx, sessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	session := &domain.Session{
		Token:     token,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}
	if err := session.ID.UnmarshalText([]byte(record.ID)); err != nil {
		return nil, fmt.Errorf("invalid session id in store: %w", err)
	}
	if err := session.UserID.UnmarshalText([]byte(record.UserID)); err != nil {
		return nil, fmt.Errorf("invalid user id in store: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := r.client.rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
