package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Rrens/design-assistant/internal/catalog"
	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/Rrens/design-assistant/internal/llm"
	"github.com/Rrens/design-assistant/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Template{
		{ID: "1", Name: "Business Card", Category: "print", Tags: []string{"business", "card"}},
		{ID: "2", Name: "Wedding Invitation", Category: "print", Tags: []string{"wedding", "invitation"}},
		{ID: "3", Name: "Instagram Post", Category: "social", Tags: []string{"instagram", "social"}},
		{ID: "4", Name: "Business Flyer", Category: "print", Tags: []string{"business", "flyer"}},
		{ID: "5", Name: "Business Brochure", Category: "print", Tags: []string{"business", "brochure"}},
		{ID: "6", Name: "Business Letterhead", Category: "print", Tags: []string{"business"}},
		{ID: "7", Name: "Business Banner", Category: "print", Tags: []string{"business"}},
	})
}

func newChatService(provider llm.Provider) (*ChatService, *HistoryService) {
	router := llm.NewRouter("mock-provider")
	if provider != nil {
		router.RegisterProvider(provider)
	}
	history := NewHistoryService(memory.NewHistoryRepository())
	return NewChatService(router, testCatalog(), history), history
}

func TestChatService_Chat(t *testing.T) {
	mockProvider := new(MockLLMProvider)
	mockProvider.On("Name").Return("mock-provider")
	mockProvider.On("IsConfigured").Return(true)
	mockProvider.On("Generate", mock.Anything, mock.Anything, "").
		Return(&llm.Response{Text: "Here are some business templates."}, nil)

	svc, history := newChatService(mockProvider)
	ctx := context.Background()
	userID := uuid.New()

	resp, err := svc.Chat(ctx, userID, ChatRequest{
		Message:   "I need a business design",
		SessionID: "sess-42",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Here are some business templates.", resp.Response)

	// Five business templates match; the response is capped at five.
	assert.Len(t, resp.Templates, 5)
	for _, tpl := range resp.Templates {
		assert.Contains(t, strings.ToLower(tpl.Name), "business")
	}

	// History holds the original query and at most three templates.
	page, err := history.List(ctx, userID, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.History, 1)
	assert.Equal(t, "I need a business design", page.History[0].Query)
	assert.Equal(t, "Here are some business templates.", page.History[0].Response)
	assert.Equal(t, "sess-42", page.History[0].SessionID)
	assert.Len(t, page.History[0].Templates, 3)
}

func TestChatService_ChatAnonymousSkipsHistory(t *testing.T) {
	mockProvider := new(MockLLMProvider)
	mockProvider.On("Name").Return("mock-provider")
	mockProvider.On("IsConfigured").Return(true)
	mockProvider.On("Generate", mock.Anything, mock.Anything, "").
		Return(&llm.Response{Text: "reply"}, nil)

	svc, history := newChatService(mockProvider)
	ctx := context.Background()

	resp, err := svc.Chat(ctx, uuid.Nil, ChatRequest{Message: "wedding invitation"})
	require.NoError(t, err)
	assert.Equal(t, "reply", resp.Response)

	// Nothing written for any user, including the zero id.
	page, err := history.List(ctx, uuid.Nil, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, page.History)
}

func TestChatService_ChatFallbackOnProviderError(t *testing.T) {
	mockProvider := new(MockLLMProvider)
	mockProvider.On("Name").Return("mock-provider")
	mockProvider.On("IsConfigured").Return(true)
	mockProvider.On("Generate", mock.Anything, mock.Anything, "").
		Return(nil, assert.AnError)

	svc, _ := newChatService(mockProvider)

	resp, err := svc.Chat(context.Background(), uuid.Nil, ChatRequest{Message: "instagram post"})
	require.NoError(t, err)

	assert.Contains(t, resp.Response, "Instagram Post")
	assert.Contains(t, resp.Response, "customize")
	require.Len(t, resp.Templates, 1)
	assert.Equal(t, "Instagram Post", resp.Templates[0].Name)
}

func TestChatService_ChatFallbackNoMatches(t *testing.T) {
	svc, _ := newChatService(nil) // no provider registered at all

	resp, err := svc.Chat(context.Background(), uuid.Nil, ChatRequest{Message: "zzz qqq xyzzy"})
	require.NoError(t, err)

	assert.Contains(t, resp.Response, "couldn't find templates")
	assert.Empty(t, resp.Templates)
}

func TestChatService_ChatSummarizesLongMessages(t *testing.T) {
	longMessage := strings.Repeat("I am planning a wedding and want printed invitations. ", 4)
	require.GreaterOrEqual(t, len(longMessage), 100)

	mockProvider := new(MockLLMProvider)
	mockProvider.On("Name").Return("mock-provider")
	mockProvider.On("IsConfigured").Return(true)

	// First call condenses the input, second generates the reply.
	mockProvider.On("Generate", mock.Anything, mock.MatchedBy(func(req llm.Request) bool {
		return req.System == llm.SummarySystem
	}), "").Return(&llm.Response{Text: "wedding invitation design"}, nil)
	mockProvider.On("Generate", mock.Anything, mock.MatchedBy(func(req llm.Request) bool {
		return req.System == llm.RecommendationSystem
	}), "").Return(&llm.Response{Text: "How about these?"}, nil)

	svc, history := newChatService(mockProvider)
	ctx := context.Background()
	userID := uuid.New()

	resp, err := svc.Chat(ctx, userID, ChatRequest{Message: longMessage})
	require.NoError(t, err)

	// The summary drives the search, so the wedding template matches.
	require.Len(t, resp.Templates, 1)
	assert.Equal(t, "Wedding Invitation", resp.Templates[0].Name)

	// History keeps the original message, not the summary.
	page, err := history.List(ctx, userID, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.History, 1)
	assert.Equal(t, longMessage, page.History[0].Query)

	mockProvider.AssertExpectations(t)
}

func TestChatService_ChatSummaryFailureFallsBackToOriginal(t *testing.T) {
	longMessage := "business " + strings.Repeat("x", 100)

	mockProvider := new(MockLLMProvider)
	mockProvider.On("Name").Return("mock-provider")
	mockProvider.On("IsConfigured").Return(true)
	mockProvider.On("Generate", mock.Anything, mock.MatchedBy(func(req llm.Request) bool {
		return req.System == llm.SummarySystem
	}), "").Return(nil, assert.AnError)
	mockProvider.On("Generate", mock.Anything, mock.MatchedBy(func(req llm.Request) bool {
		return req.System == llm.RecommendationSystem
	}), "").Return(&llm.Response{Text: "reply"}, nil)

	svc, _ := newChatService(mockProvider)

	resp, err := svc.Chat(context.Background(), uuid.Nil, ChatRequest{Message: longMessage})
	require.NoError(t, err)

	// Keywords still come from the raw message.
	assert.NotEmpty(t, resp.Templates)
	assert.Equal(t, "reply", resp.Response)
}
