package entity

import "time"

// ScoreRequest is the statistics of a won round, sent to POST /api/scores.
// The timeTakenMS field name is part of the backend contract.
type ScoreRequest struct {
	Nickname    string `json:"nickname"`
	TimeTakenMS int64  `json:"timeTakenMS"`
	Attempts    int    `json:"attempts"`
	UsedHint    bool   `json:"usedHint"`
	WordLength  int    `json:"wordLength"`
}

// NewScoreRequest - snapshots a won round. Attempts carries the failed attempts, not the total.
func NewScoreRequest(nickname string, round Round, usedHint bool, elapsed time.Duration) ScoreRequest {
	return ScoreRequest{
		Nickname:    nickname,
		TimeTakenMS: elapsed.Milliseconds(),
		Attempts:    round.FailedAttempts,
		UsedHint:    usedHint,
		WordLength:  round.WordLength(),
	}
}

// ScoreResult is the backend answer to a score submission.
// Status is true when the score was added or improved the player's best.
type ScoreResult struct {
	Score    int    `json:"score"`
	Nickname string `json:"nickname"`
	Rank     int    `json:"rank"`
	Status   bool   `json:"status"`
}

// LeaderboardEntry is one row of GET /api/scores, best first.
type LeaderboardEntry struct {
	Nickname string `json:"nickname"`
	Score    int    `json:"score"`
}
