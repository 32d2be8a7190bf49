package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/google/uuid"
)

// HistoryRepository implements domain.HistoryRepository. Template copies
// are stored denormalized as JSONB so catalog changes never affect old
// entries.
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Create(ctx context.Context, entry *domain.HistoryEntry) error {
	templates, err := json.Marshal(entry.Templates)
	if err != nil {
		return fmt.Errorf("failed to marshal templates: %w", err)
	}

	query := `
		INSERT INTO history (id, user_id, session_id, query, response, templates, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.Pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.SessionID,
		entry.Query,
		entry.Response,
		templates,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create history entry: %w", err)
	}
	return nil
}

func (r *HistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.HistoryEntry, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM history WHERE user_id = $1`
	if err := r.db.Pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count history: %w", err)
	}

	query := `
		SELECT id, user_id, session_id, query, response, templates, created_at
		FROM history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var templates []byte
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.SessionID,
			&e.Query,
			&e.Response,
			&templates,
			&e.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if err := json.Unmarshal(templates, &e.Templates); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal templates: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, total, nil
}

func (r *HistoryRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	// Ownership is part of the WHERE clause, so a foreign entry deletes
	// zero rows just like a missing one.
	query := `DELETE FROM history WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
