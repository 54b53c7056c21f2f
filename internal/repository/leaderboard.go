package repository

import (
	"context"
	"time"

	"github.com/rocketscienceinc/hangman/internal/entity"
)

const leaderboardKey = "leaderboard:scores"

type LeaderboardRepository interface {
	Save(ctx context.Context, entries []entity.LeaderboardEntry) error
	Get(ctx context.Context) ([]entity.LeaderboardEntry, error)
	Invalidate(ctx context.Context) error
}

type dbLeaderboard struct {
	storage Storage
	ttl     time.Duration
}

func NewLeaderboardRepository(storage Storage, ttl time.Duration) LeaderboardRepository {
	return &dbLeaderboard{
		storage: storage,
		ttl:     ttl,
	}
}

func (that *dbLeaderboard) Save(ctx context.Context, entries []entity.LeaderboardEntry) error {
	return save(ctx, that.storage, leaderboardKey, entries, that.ttl)
}

func (that *dbLeaderboard) Get(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	var entries []entity.LeaderboardEntry
	if err := load(ctx, that.storage, leaderboardKey, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (that *dbLeaderboard) Invalidate(ctx context.Context) error {
	return that.storage.Del(ctx, leaderboardKey)
}
