package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/hangman/internal/entity"
)

type mockWordAPI struct {
	mock.Mock
}

func (that *mockWordAPI) List(ctx context.Context) ([]entity.WordEntry, error) {
	args := that.Called(ctx)
	words, _ := args.Get(0).([]entity.WordEntry)

	return words, args.Error(1)
}

func (that *mockWordAPI) Random(ctx context.Context, category string) (entity.WordEntry, error) {
	args := that.Called(ctx, category)

	return args.Get(0).(entity.WordEntry), args.Error(1)
}

func (that *mockWordAPI) Add(ctx context.Context, entry entity.WordEntry) (entity.WordEntry, error) {
	args := that.Called(ctx, entry)

	return args.Get(0).(entity.WordEntry), args.Error(1)
}

func (that *mockWordAPI) Update(ctx context.Context, id string, entry entity.WordEntry) (entity.WordEntry, error) {
	args := that.Called(ctx, id, entry)

	return args.Get(0).(entity.WordEntry), args.Error(1)
}

func (that *mockWordAPI) Delete(ctx context.Context, id string) error {
	return that.Called(ctx, id).Error(0)
}

func (that *mockWordAPI) Exists(ctx context.Context, word string) (bool, error) {
	args := that.Called(ctx, word)

	return args.Bool(0), args.Error(1)
}

func (that *mockWordAPI) Categories(ctx context.Context) ([]string, error) {
	args := that.Called(ctx)
	categories, _ := args.Get(0).([]string)

	return categories, args.Error(1)
}

type mockScoreAPI struct {
	mock.Mock
}

func (that *mockScoreAPI) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	args := that.Called(ctx)
	entries, _ := args.Get(0).([]entity.LeaderboardEntry)

	return entries, args.Error(1)
}
