package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// maxHistoryTemplates caps the denormalized template copies per entry.
const maxHistoryTemplates = 3

// HistoryPage is a paginated, most-recent-first slice of a user's
// history.
type HistoryPage struct {
	History    []domain.HistoryEntry `json:"history"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
}

// HistoryService enforces ownership over the history repository.
type HistoryService struct {
	history domain.HistoryRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(history domain.HistoryRepository) *HistoryService {
	return &HistoryService{history: history}
}

// Record appends an interaction. History is best-effort telemetry:
// storage failures are logged and swallowed so they never fail the
// caller's main flow.
func (s *HistoryService) Record(ctx context.Context, userID uuid.UUID, sessionID, query, response string, templates []domain.Template) {
	if len(templates) > maxHistoryTemplates {
		templates = templates[:maxHistoryTemplates]
	}
	copies := make([]domain.Template, len(templates))
	copy(copies, templates)

	entry := &domain.HistoryEntry{
		ID:        uuid.New(),
		UserID:    userID,
		SessionID: sessionID,
		Query:     query,
		Response:  response,
		Templates: copies,
		CreatedAt: time.Now(),
	}

	if err := s.history.Create(ctx, entry); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to save history entry")
	}
}

// List returns the caller's own history, most recent first.
func (s *HistoryService) List(ctx context.Context, userID uuid.UUID, page, limit int) (*HistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	entries, total, err := s.history.ListByUser(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}

	return &HistoryPage{
		History:    entries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// Delete removes one of the caller's entries. Missing ids and entries
// owned by someone else yield the identical domain.ErrNotFound.
func (s *HistoryService) Delete(ctx context.Context, historyID, userID uuid.UUID) error {
	return s.history.DeleteOwned(ctx, historyID, userID)
}
