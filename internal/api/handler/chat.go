package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Rrens/design-assistant/internal/api/middleware"
	"github.com/Rrens/design-assistant/internal/api/response"
	"github.com/Rrens/design-assistant/internal/service"
	"github.com/google/uuid"
)

// ChatHandler handles the assistant endpoint
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat processes one assistant message. Authentication is optional:
// anonymous callers get recommendations without history.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var input service.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if input.Message == "" {
		response.BadRequest(w, "message is required")
		return
	}

	authUserID := uuid.Nil
	if auth := middleware.GetAuth(r.Context()); auth.Authenticated {
		authUserID = auth.UserID
	}

	result, err := h.chatService.Chat(r.Context(), authUserID, input)
	if err != nil {
		response.InternalError(w, "failed to process request")
		return
	}

	response.OK(w, result)
}
