package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rrens/design-assistant/internal/api/middleware"
	"github.com/Rrens/design-assistant/internal/api/response"
	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/Rrens/design-assistant/internal/service"
	"github.com/google/uuid"
)

// HistoryHandler handles per-user history endpoints
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// List returns the caller's history, most recent first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	auth := middleware.GetAuth(r.Context())

	q := r.URL.Query()
	page := atoiDefault(q.Get("page"), 1)
	limit := atoiDefault(q.Get("limit"), 20)

	result, err := h.historyService.List(r.Context(), auth.UserID, page, limit)
	if err != nil {
		response.InternalError(w, "failed to fetch history")
		return
	}

	response.OK(w, result)
}

// Delete removes one of the caller's entries. A missing id and someone
// else's id produce the same not-found outcome.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	auth := middleware.GetAuth(r.Context())

	var input struct {
		HistoryID string `json:"historyId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if input.HistoryID == "" {
		response.BadRequest(w, "history item ID is required")
		return
	}

	historyID, err := uuid.Parse(input.HistoryID)
	if err != nil {
		// Malformed ids can't exist, so they get the same outcome as
		// unknown ones.
		response.NotFound(w, "history item not found")
		return
	}

	if err := h.historyService.Delete(r.Context(), historyID, auth.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "history item not found")
			return
		}
		response.InternalError(w, "failed to delete history item")
		return
	}

	response.OK(w, map[string]any{"message": "history item deleted"})
}
