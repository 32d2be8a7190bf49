package memory

import (
	"context"
	"sync"

	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/google/uuid"
)

// HistoryRepository implements domain.HistoryRepository with per-user
// append-order slices.
type HistoryRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]domain.HistoryEntry
}

// NewHistoryRepository creates an empty in-memory history store
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{
		byUser: make(map[uuid.UUID][]domain.HistoryEntry),
	}
}

func (r *HistoryRepository) Create(ctx context.Context, entry *domain.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[entry.UserID] = append(r.byUser[entry.UserID], *entry)
	return nil
}

func (r *HistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.HistoryEntry, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.byUser[userID]
	total := len(entries)

	// Entries are stored in append order; walk backwards for
	// most-recent-first.
	start := total - 1 - offset
	out := make([]domain.HistoryEntry, 0, limit)
	for i := start; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}
	return out, total, nil
}

func (r *HistoryRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.byUser[userID]
	for i := range entries {
		if entries[i].ID == id {
			r.byUser[userID] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	// Missing and foreign entries are indistinguishable: a foreign id is
	// simply never in this user's slice.
	return domain.ErrNotFound
}
