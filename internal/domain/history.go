package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one chat interaction for an authenticated user.
// Templates are denormalized copies, capped at three per entry.
type HistoryEntry struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	SessionID string     `json:"session_id,omitempty"`
	Query     string     `json:"query"`
	Response  string     `json:"response"`
	Templates []Template `json:"templates"`
	CreatedAt time.Time  `json:"timestamp"`
}

// HistoryRepository defines per-user history storage.
type HistoryRepository interface {
	Create(ctx context.Context, entry *HistoryEntry) error

	// ListByUser returns entries most-recent-first along with the total
	// count for the user. Offset/limit are applied after ordering.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]HistoryEntry, int, error)

	// DeleteOwned removes an entry only when it belongs to userID.
	// Returns ErrNotFound both for a missing id and for an entry owned
	// by someone else.
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
}
