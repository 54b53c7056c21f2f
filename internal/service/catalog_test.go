package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/repository"
	"github.com/rocketscienceinc/hangman/internal/repository/storage"
)

var errBackendDown = errors.New("backend down")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCatalog(t *testing.T) (CatalogService, *mockWordAPI) {
	t.Helper()

	api := &mockWordAPI{}
	t.Cleanup(func() { api.AssertExpectations(t) })

	repo := repository.NewCatalogRepository(storage.NewMemoryStorage(), time.Minute)

	return NewCatalogService(testLogger(), api, repo), api
}

func TestCatalogService_Categories(t *testing.T) {
	ctx := context.Background()

	t.Run("Second read is served from the cache", func(t *testing.T) {
		// Given: an API that knows two categories
		catalog, api := newCatalog(t)
		api.On("Categories", mock.Anything).Return([]string{"animals", "food"}, nil).Once()

		// When: categories are read twice
		first, err := catalog.Categories(ctx)
		require.NoError(t, err)
		second, err := catalog.Categories(ctx)
		require.NoError(t, err)

		// Then: the API was called once
		assert.Equal(t, []string{"animals", "food"}, first)
		assert.Equal(t, first, second)
	})

	t.Run("API failure is returned", func(t *testing.T) {
		catalog, api := newCatalog(t)
		api.On("Categories", mock.Anything).Return(nil, errBackendDown).Once()

		_, err := catalog.Categories(ctx)

		require.ErrorIs(t, err, errBackendDown)
	})
}

func TestCatalogService_AddWord(t *testing.T) {
	ctx := context.Background()
	existing := []entity.WordEntry{{ID: "1", Word: "cat", Category: "animals", Hint: "meows"}}

	t.Run("Valid word is added and the cache is dropped", func(t *testing.T) {
		// Given: a catalog with a cached category list
		catalog, api := newCatalog(t)
		entry := entity.WordEntry{Word: "dog", Category: "animals", Hint: "barks"}

		api.On("Categories", mock.Anything).Return([]string{"animals"}, nil).Twice()
		api.On("List", mock.Anything).Return(existing, nil).Once()
		api.On("Exists", mock.Anything, "dog").Return(false, nil).Once()
		api.On("Add", mock.Anything, entry).Return(entity.WordEntry{ID: "2", Word: "dog", Category: "animals", Hint: "barks"}, nil).Once()

		_, err := catalog.Categories(ctx)
		require.NoError(t, err)

		// When: the word is added
		added, err := catalog.AddWord(ctx, entry)

		// Then: it has an id and categories are fetched again
		require.NoError(t, err)
		assert.Equal(t, "2", added.ID)

		_, err = catalog.Categories(ctx)
		require.NoError(t, err)
	})

	t.Run("Known word is rejected case-insensitively", func(t *testing.T) {
		catalog, api := newCatalog(t)
		api.On("List", mock.Anything).Return(existing, nil).Once()

		_, err := catalog.AddWord(ctx, entity.WordEntry{Word: "Cat", Category: "animals", Hint: "meows"})

		require.ErrorIs(t, err, apperror.ErrWordExists)
		api.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("Word the API already has is rejected", func(t *testing.T) {
		catalog, api := newCatalog(t)
		api.On("List", mock.Anything).Return(existing, nil).Once()
		api.On("Exists", mock.Anything, "owl").Return(true, nil).Once()

		_, err := catalog.AddWord(ctx, entity.WordEntry{Word: "owl", Category: "birds", Hint: "hoots"})

		require.ErrorIs(t, err, apperror.ErrWordExists)
	})

	t.Run("Invalid fields are rejected", func(t *testing.T) {
		catalog, api := newCatalog(t)
		api.On("List", mock.Anything).Return(existing, nil).Once()

		_, err := catalog.AddWord(ctx, entity.WordEntry{Word: "r2d2", Category: "robots", Hint: "beeps"})
		require.ErrorIs(t, err, apperror.ErrInvalidWord)

		_, err = catalog.AddWord(ctx, entity.WordEntry{Word: "dog", Category: "4 legs", Hint: "barks"})
		require.ErrorIs(t, err, apperror.ErrInvalidCategory)

		_, err = catalog.AddWord(ctx, entity.WordEntry{Word: "dog", Category: "animals", Hint: "  "})
		require.ErrorIs(t, err, apperror.ErrInvalidHint)
	})
}

func TestCatalogService_UpdateWord(t *testing.T) {
	ctx := context.Background()
	current := entity.WordEntry{ID: "1", Word: "cat", Category: "animals", Hint: "meows"}

	t.Run("Unchanged word skips the existence check", func(t *testing.T) {
		// Given: the entry being edited keeps its word
		catalog, api := newCatalog(t)
		entry := entity.WordEntry{Word: "cat", Category: "pets", Hint: "purrs"}

		api.On("List", mock.Anything).Return([]entity.WordEntry{current}, nil).Once()
		api.On("Update", mock.Anything, "1", entry).Return(entity.WordEntry{ID: "1", Word: "cat", Category: "pets", Hint: "purrs"}, nil).Once()

		// When: it is updated
		updated, err := catalog.UpdateWord(ctx, current, entry)

		// Then: the update went through without asking whether cat exists
		require.NoError(t, err)
		assert.Equal(t, "pets", updated.Category)
		api.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("Renaming to a known word is rejected", func(t *testing.T) {
		catalog, api := newCatalog(t)
		api.On("List", mock.Anything).Return([]entity.WordEntry{current, {ID: "2", Word: "dog"}}, nil).Once()

		_, err := catalog.UpdateWord(ctx, current, entity.WordEntry{Word: "dog", Category: "animals", Hint: "barks"})

		require.ErrorIs(t, err, apperror.ErrWordExists)
	})
}

func TestCatalogService_DeleteWord(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete drops the cached words", func(t *testing.T) {
		catalog, api := newCatalog(t)
		api.On("List", mock.Anything).Return([]entity.WordEntry{{ID: "1", Word: "cat"}}, nil).Once()
		api.On("Delete", mock.Anything, "1").Return(nil).Once()
		api.On("List", mock.Anything).Return([]entity.WordEntry{}, nil).Once()

		_, err := catalog.Words(ctx)
		require.NoError(t, err)

		require.NoError(t, catalog.DeleteWord(ctx, "1"))

		words, err := catalog.Words(ctx)
		require.NoError(t, err)
		assert.Empty(t, words)
	})

	t.Run("Delete failure keeps the cache", func(t *testing.T) {
		catalog, api := newCatalog(t)
		api.On("List", mock.Anything).Return([]entity.WordEntry{{ID: "1", Word: "cat"}}, nil).Once()
		api.On("Delete", mock.Anything, "1").Return(errBackendDown).Once()

		_, err := catalog.Words(ctx)
		require.NoError(t, err)

		require.ErrorIs(t, catalog.DeleteWord(ctx, "1"), errBackendDown)

		words, err := catalog.Words(ctx)
		require.NoError(t, err)
		assert.Len(t, words, 1)
	})
}

func TestCatalogService_RandomWord(t *testing.T) {
	ctx := context.Background()

	t.Run("Random word is never cached", func(t *testing.T) {
		catalog, api := newCatalog(t)
		api.On("Random", mock.Anything, "animals").Return(entity.WordEntry{Word: "cat"}, nil).Once()
		api.On("Random", mock.Anything, "animals").Return(entity.WordEntry{Word: "dog"}, nil).Once()

		first, err := catalog.RandomWord(ctx, "animals")
		require.NoError(t, err)
		second, err := catalog.RandomWord(ctx, "animals")
		require.NoError(t, err)

		assert.Equal(t, "cat", first.Word)
		assert.Equal(t, "dog", second.Word)
	})

	t.Run("Invalid category never reaches the API", func(t *testing.T) {
		catalog, _ := newCatalog(t)

		_, err := catalog.RandomWord(ctx, "")

		require.ErrorIs(t, err, apperror.ErrInvalidCategory)
	})
}

func TestLeaderboardService(t *testing.T) {
	ctx := context.Background()
	entries := []entity.LeaderboardEntry{{Nickname: "neo", Score: 900}}

	t.Run("Cached until invalidated", func(t *testing.T) {
		// Given: a leaderboard read once
		api := &mockScoreAPI{}
		api.On("Leaderboard", mock.Anything).Return(entries, nil).Twice()
		t.Cleanup(func() { api.AssertExpectations(t) })

		leaderboard := NewLeaderboardService(testLogger(), api,
			repository.NewLeaderboardRepository(storage.NewMemoryStorage(), time.Minute))

		_, err := leaderboard.Leaderboard(ctx)
		require.NoError(t, err)

		// When: it is read again, invalidated and read once more
		cached, err := leaderboard.Leaderboard(ctx)
		require.NoError(t, err)
		leaderboard.Invalidate(ctx)
		fresh, err := leaderboard.Leaderboard(ctx)
		require.NoError(t, err)

		// Then: the API served the first and the last read
		assert.Equal(t, entries, cached)
		assert.Equal(t, entries, fresh)
	})
}
