package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/request"
	"github.com/rocketscienceinc/hangman/internal/scoring"
)

type ScoreAPI struct {
	client *request.Client
}

func NewScoreAPI(client *request.Client) *ScoreAPI {
	return &ScoreAPI{client: client}
}

// Leaderboard - returns every player's best score, best first.
func (that *ScoreAPI) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	entries := []entity.LeaderboardEntry{}

	if err := that.client.Do(ctx, request.Config{Method: http.MethodGet, Path: scoring.ScoresPath}, &entries); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return entries, nil
}
