package scoring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/request"
)

const ScoresPath = "/api/scores"

var errNothingSubmitted = errors.New("no score was submitted yet")

// Outcome is the interpretation of one settled submission.
type Outcome struct {
	Attempt uint64
	Result  *entity.ScoreResult
	Err     error
}

func (that Outcome) Succeeded() bool {
	return that.Err == nil && that.Result != nil
}

// Coordinator submits the statistics of a won round and reports the outcome.
//
// Retries are user-driven only. A retry is a new request without any idempotency key, so
// a submission that succeeded on the server but lost its response is sent again.
type Coordinator struct {
	logger    *slog.Logger
	executor  *request.Executor[entity.ScoreResult]
	onOutcome func(Outcome)

	mu      sync.Mutex
	request *entity.ScoreRequest
	attempt uint64
}

func NewCoordinator(logger *slog.Logger, client *request.Client, onOutcome func(Outcome)) *Coordinator {
	coordinator := &Coordinator{
		logger:    logger.With("component", "scoring"),
		onOutcome: onOutcome,
	}
	coordinator.executor = request.NewExecutor(client, coordinator.interpret)

	return coordinator
}

// Submit stores the request and posts it. The returned attempt identifies the outcome
// that belongs to this call.
func (that *Coordinator) Submit(ctx context.Context, req entity.ScoreRequest) uint64 {
	that.mu.Lock()
	that.request = &req
	that.mu.Unlock()

	return that.post(ctx, req)
}

// Retry drops the previous result and posts the stored request again.
func (that *Coordinator) Retry(ctx context.Context) (uint64, error) {
	that.mu.Lock()
	req := that.request
	that.mu.Unlock()

	if req == nil {
		return 0, fmt.Errorf("failed to retry: %w", errNothingSubmitted)
	}

	that.executor.Reset()

	return that.post(ctx, *req), nil
}

// Attempt returns the identifier of the latest submission.
func (that *Coordinator) Attempt() uint64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.attempt
}

func (that *Coordinator) State() request.State[entity.ScoreResult] {
	return that.executor.State()
}

// Wait blocks until every posted request returned.
func (that *Coordinator) Wait() {
	that.executor.Wait()
}

func (that *Coordinator) post(ctx context.Context, req entity.ScoreRequest) uint64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.logger.Info("submitting score", "nickname", req.Nickname, "time_ms", req.TimeTakenMS,
		"attempts", req.Attempts, "used_hint", req.UsedHint, "word_length", req.WordLength)

	that.attempt = that.executor.Trigger(ctx, request.Config{
		Method: http.MethodPost,
		Path:   ScoresPath,
		Body:   req,
	})

	return that.attempt
}

func (that *Coordinator) interpret(generation uint64, state request.State[entity.ScoreResult]) {
	log := that.logger.With("method", "interpret", "attempt", generation)

	var outcome Outcome
	switch {
	case state.IsLoading:
		return
	case state.IsError:
		log.Warn("score submission failed", "error", state.Err)
		outcome = Outcome{Attempt: generation, Err: state.Err}
	case state.Data != nil:
		log.Info("score submitted", "score", state.Data.Score, "rank", state.Data.Rank)
		outcome = Outcome{Attempt: generation, Result: state.Data}
	default:
		log.Warn("score submission returned no data")
		outcome = Outcome{Attempt: generation, Err: apperror.ErrEmptyResponse}
	}

	if that.onOutcome != nil {
		that.onOutcome(outcome)
	}
}
