package service

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/hangman/internal/entity"
)

type LeaderboardService interface {
	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
	Invalidate(ctx context.Context)
}

type scoreAPI interface {
	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
}

type leaderboardRepo interface {
	Save(ctx context.Context, entries []entity.LeaderboardEntry) error
	Get(ctx context.Context) ([]entity.LeaderboardEntry, error)
	Invalidate(ctx context.Context) error
}

type leaderboardService struct {
	logger *slog.Logger
	api    scoreAPI
	repo   leaderboardRepo
}

func NewLeaderboardService(logger *slog.Logger, api scoreAPI, repo leaderboardRepo) LeaderboardService {
	return &leaderboardService{
		logger: logger.With("component", "leaderboard"),
		api:    api,
		repo:   repo,
	}
}

func (that *leaderboardService) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	log := that.logger.With("method", "Leaderboard")

	return readThrough(ctx, log, that.repo.Get, that.api.Leaderboard, that.repo.Save)
}

// Invalidate is called after a score was submitted, the snapshot is stale then.
func (that *leaderboardService) Invalidate(ctx context.Context) {
	if err := that.repo.Invalidate(ctx); err != nil {
		that.logger.Warn("failed to invalidate leaderboard cache", "error", err)
	}
}
