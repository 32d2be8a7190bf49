package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/Rrens/design-assistant/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_RecordAndList(t *testing.T) {
	svc := NewHistoryService(memory.NewHistoryRepository())
	ctx := context.Background()
	userID := uuid.New()

	for i := 1; i <= 3; i++ {
		svc.Record(ctx, userID, "sess-1",
			fmt.Sprintf("query %d", i),
			fmt.Sprintf("response %d", i),
			[]domain.Template{{ID: "1", Name: "Business Card"}},
		)
	}

	page, err := svc.List(ctx, userID, 1, 20)
	require.NoError(t, err)

	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.History, 3)

	// Most recent first.
	assert.Equal(t, "query 3", page.History[0].Query)
	assert.Equal(t, "query 1", page.History[2].Query)
	assert.Equal(t, userID, page.History[0].UserID)
	assert.Len(t, page.History[0].Templates, 1)
}

func TestHistoryService_RecordCapsTemplates(t *testing.T) {
	svc := NewHistoryService(memory.NewHistoryRepository())
	ctx := context.Background()
	userID := uuid.New()

	templates := []domain.Template{
		{ID: "1", Name: "A"}, {ID: "2", Name: "B"},
		{ID: "3", Name: "C"}, {ID: "4", Name: "D"},
	}
	svc.Record(ctx, userID, "", "q", "r", templates)

	page, err := svc.List(ctx, userID, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.History, 1)
	assert.Len(t, page.History[0].Templates, 3)
}

func TestHistoryService_RecordSwallowsStorageErrors(t *testing.T) {
	mockRepo := new(MockHistoryRepository)
	svc := NewHistoryService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.HistoryEntry")).
		Return(errors.New("store down"))

	// Must not panic or surface the error.
	svc.Record(context.Background(), uuid.New(), "", "q", "r", nil)

	mockRepo.AssertExpectations(t)
}

func TestHistoryService_ListPagination(t *testing.T) {
	svc := NewHistoryService(memory.NewHistoryRepository())
	ctx := context.Background()
	userID := uuid.New()

	for i := 1; i <= 5; i++ {
		svc.Record(ctx, userID, "", fmt.Sprintf("query %d", i), "r", nil)
	}

	t.Run("second page", func(t *testing.T) {
		page, err := svc.List(ctx, userID, 2, 2)
		require.NoError(t, err)

		assert.Equal(t, 5, page.Total)
		assert.Equal(t, 3, page.TotalPages)
		require.Len(t, page.History, 2)
		assert.Equal(t, "query 3", page.History[0].Query)
		assert.Equal(t, "query 2", page.History[1].Query)
	})

	t.Run("page past the end", func(t *testing.T) {
		page, err := svc.List(ctx, userID, 10, 2)
		require.NoError(t, err)
		assert.Empty(t, page.History)
		assert.Equal(t, 5, page.Total)
	})

	t.Run("non-positive page and limit coerce to defaults", func(t *testing.T) {
		page, err := svc.List(ctx, userID, 0, -1)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 20, page.Limit)
		assert.Len(t, page.History, 5)
	})
}

func TestHistoryService_ListIsPerUser(t *testing.T) {
	svc := NewHistoryService(memory.NewHistoryRepository())
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	svc.Record(ctx, alice, "", "alice query", "r", nil)
	svc.Record(ctx, bob, "", "bob query", "r", nil)

	page, err := svc.List(ctx, alice, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.History, 1)
	assert.Equal(t, "alice query", page.History[0].Query)
}

func TestHistoryService_Delete(t *testing.T) {
	svc := NewHistoryService(memory.NewHistoryRepository())
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	svc.Record(ctx, alice, "", "alice query", "r", nil)

	page, err := svc.List(ctx, alice, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.History, 1)
	entryID := page.History[0].ID

	t.Run("foreign entry looks missing", func(t *testing.T) {
		err := svc.Delete(ctx, entryID, bob)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.Delete(ctx, uuid.New(), alice)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, entryID, alice))

		page, err := svc.List(ctx, alice, 1, 20)
		require.NoError(t, err)
		assert.Empty(t, page.History)
	})
}
