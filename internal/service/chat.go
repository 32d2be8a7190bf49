package service

import (
	"context"
	"strings"

	"github.com/Rrens/design-assistant/internal/catalog"
	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/Rrens/design-assistant/internal/llm"
	"github.com/Rrens/design-assistant/internal/textutil"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// summarizeThreshold is the message length above which the input is
	// condensed before keyword extraction.
	summarizeThreshold = 100

	// recommendCount templates go into the prompt and into history.
	recommendCount = 3
	// returnCount templates go back to the client.
	returnCount = 5
)

// ChatRequest is one assistant interaction.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	// UserID and SessionID are client-supplied attribution; the
	// authenticated identity always wins and is required for history.
	UserID    string `json:"userId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatResponse carries the assistant text and matched templates.
type ChatResponse struct {
	Response  string            `json:"response"`
	Templates []domain.Template `json:"templates"`
}

// ChatService orchestrates a chat turn: summarize, extract keywords,
// search the catalog, generate a response, record history.
type ChatService struct {
	llmRouter *llm.Router
	catalog   *catalog.Catalog
	history   *HistoryService
}

// NewChatService creates a new chat service
func NewChatService(llmRouter *llm.Router, cat *catalog.Catalog, history *HistoryService) *ChatService {
	return &ChatService{
		llmRouter: llmRouter,
		catalog:   cat,
		history:   history,
	}
}

// Chat processes one message. authUserID is the authenticated identity
// (uuid.Nil when anonymous); history is only written for authenticated
// callers. Text-generation failures are recovered locally with a
// deterministic fallback and never surface to the client.
func (s *ChatService) Chat(ctx context.Context, authUserID uuid.UUID, req ChatRequest) (*ChatResponse, error) {
	processed := s.summarize(ctx, req.Message)

	keywords := textutil.ExtractKeywords(processed)
	result := s.catalog.Search(catalog.SearchParams{Keywords: keywords})

	recommended := result.Templates
	if len(recommended) > recommendCount {
		recommended = recommended[:recommendCount]
	}

	text := s.generate(ctx, processed, recommended)

	if authUserID != uuid.Nil {
		s.history.Record(ctx, authUserID, req.SessionID, req.Message, text, recommended)
	}

	returned := result.Templates
	if len(returned) > returnCount {
		returned = returned[:returnCount]
	}

	return &ChatResponse{
		Response:  text,
		Templates: returned,
	}, nil
}

// summarize condenses long input via the text-generation provider. Any
// failure falls back to the original message.
func (s *ChatService) summarize(ctx context.Context, message string) string {
	if len(message) < summarizeThreshold {
		return message
	}

	provider, err := s.llmRouter.GetProvider("")
	if err != nil {
		return message
	}

	resp, err := provider.Generate(ctx, llm.Request{
		Prompt:      llm.BuildSummaryPrompt(message),
		System:      llm.SummarySystem,
		Temperature: 0.3,
		MaxTokens:   200,
	}, "")
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		log.Warn().Err(err).Msg("input summarization failed, using original message")
		return message
	}
	return resp.Text
}

// generate produces the assistant reply, substituting the deterministic
// fallback on any provider failure.
func (s *ChatService) generate(ctx context.Context, request string, templates []domain.Template) string {
	provider, err := s.llmRouter.GetProvider("")
	if err != nil {
		log.Warn().Err(err).Msg("no text-generation provider available, using fallback response")
		return fallbackResponse(templates)
	}

	resp, err := provider.Generate(ctx, llm.Request{
		Prompt:      llm.BuildRecommendationPrompt(request, templates),
		System:      llm.RecommendationSystem,
		Temperature: 0.7,
	}, "")
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		log.Error().Err(err).Msg("response generation failed, using fallback response")
		return fallbackResponse(templates)
	}
	return resp.Text
}

// fallbackResponse is the deterministic reply used when generation
// fails. It names up to three recommended templates.
func fallbackResponse(templates []domain.Template) string {
	if len(templates) == 0 {
		return "I couldn't find templates matching your request. Try describing the design you need in a few more words."
	}

	names := make([]string, 0, recommendCount)
	for i, tpl := range templates {
		if i == recommendCount {
			break
		}
		names = append(names, tpl.Name)
	}

	return "I found some templates that might help: " +
		strings.Join(names, ", ") +
		". Would you like to customize any of them?"
}
