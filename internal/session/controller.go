package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
	"github.com/rocketscienceinc/hangman/internal/request"
	"github.com/rocketscienceinc/hangman/internal/scoring"
	"github.com/rocketscienceinc/hangman/internal/stopwatch"
)

// View is what the presentation layer renders for a round.
type View struct {
	ID              string
	Nickname        string
	Category        string
	Revealed        string
	Hits            []rune
	Misses          []rune
	AttemptsCounter int
	FailedAttempts  int
	Status          entity.Status
	HintAvailable   bool
	HintVisible     bool
	Hint            string
	Elapsed         time.Duration

	// Word is set once the round is solved.
	Word          string
	Result        *entity.ScoreResult
	SubmissionErr error
}

type Option func(*Controller)

func WithStopwatch(opts ...stopwatch.Option) Option {
	return func(that *Controller) {
		that.stopwatchOpts = append(that.stopwatchOpts, opts...)
	}
}

// WithObserver - receives the view after a score submission settles.
func WithObserver(observer func(View)) Option {
	return func(that *Controller) {
		that.observer = observer
	}
}

// WithTickObserver - receives every elapsed time value. It runs on the stopwatch goroutine
// and must not call back into the controller.
func WithTickObserver(onTick func(time.Duration)) Option {
	return func(that *Controller) {
		that.onTick = onTick
	}
}

// Controller owns one round: it applies guesses, keeps time and submits the score on a win.
type Controller struct {
	id          string
	logger      *slog.Logger
	input       entity.SessionInput
	coordinator *scoring.Coordinator
	stopwatch   *stopwatch.Stopwatch

	stopwatchOpts []stopwatch.Option
	observer      func(View)
	onTick        func(time.Duration)

	mu      sync.Mutex
	round   entity.Round
	hint    entity.Hint
	elapsed time.Duration
	result  *entity.ScoreResult
	err     error
	closed  bool
}

func New(logger *slog.Logger, input entity.SessionInput, client *request.Client, opts ...Option) (*Controller, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	controller := &Controller{
		id:     id,
		logger: logger.With("component", "session", "session_id", id),
		input:  input,
		round:  entity.NewRound(strings.TrimSpace(input.Word)),
	}

	for _, opt := range opts {
		opt(controller)
	}

	controller.stopwatch = stopwatch.New(controller.stopwatchOpts...)
	controller.coordinator = scoring.NewCoordinator(controller.logger, client, controller.onOutcome)

	return controller, nil
}

func (that *Controller) ID() string {
	return that.id
}

// Start starts the clock of a playing round.
func (that *Controller) Start() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || !that.round.IsPlaying() {
		return
	}

	that.logger.Info("round started", "nickname", that.input.Nickname, "category", that.input.Category,
		"word_length", that.round.WordLength())

	that.stopwatch.Start(that.onTick)
}

func (that *Controller) GuessLetter(ctx context.Context, letter rune) View {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.view()
	}

	round, verdict := hangman.ApplyLetterGuess(that.round, letter)
	that.apply(ctx, round, verdict)

	return that.view()
}

func (that *Controller) GuessWord(ctx context.Context, word string) View {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.view()
	}

	round, verdict := hangman.ApplyWordGuess(that.round, word)
	that.apply(ctx, round, verdict)

	return that.view()
}

// ToggleHint shows or hides the hint while playing. A word without a hint cannot be pressed.
func (that *Controller) ToggleHint() View {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || !that.round.IsPlaying() || !that.hasHint() {
		return that.view()
	}

	that.hint.Press()

	return that.view()
}

// RetrySubmission sends the stored score request again after a failed submission.
func (that *Controller) RetrySubmission(ctx context.Context) View {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || !that.round.IsSubmissionFailed() {
		return that.view()
	}

	that.round.Status = entity.StatusSubmittingScore
	that.err = nil

	if _, err := that.coordinator.Retry(ctx); err != nil {
		that.logger.Error("failed to retry score submission", "error", err)
		that.round.Status = entity.StatusScoreSubmissionFailed
		that.err = err
	}

	return that.view()
}

// Close abandons the session. The clock stops and results still on their way are ignored.
func (that *Controller) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.closed = true
	that.stopwatch.Stop()
	that.logger.Info("session closed", "status", that.round.Status)
}

func (that *Controller) View() View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.view()
}

// Wait blocks until every score submission returned and its outcome was applied.
func (that *Controller) Wait() {
	that.coordinator.Wait()
}

func (that *Controller) apply(ctx context.Context, round entity.Round, verdict hangman.Verdict) {
	if verdict == hangman.VerdictIgnored {
		return
	}

	that.round = round
	if verdict != hangman.VerdictWon {
		return
	}

	// the clock is frozen before the request is built
	that.elapsed = that.stopwatch.Stop()
	req := entity.NewScoreRequest(that.input.Nickname, that.round, that.hint.Pressed, that.elapsed)

	that.logger.Info("round solved", "attempts", that.round.AttemptsCounter,
		"failed_attempts", that.round.FailedAttempts, "elapsed", that.elapsed)

	that.coordinator.Submit(ctx, req)
}

func (that *Controller) onOutcome(outcome scoring.Outcome) {
	that.mu.Lock()

	if that.closed || !that.round.IsSubmittingScore() || outcome.Attempt != that.coordinator.Attempt() {
		that.mu.Unlock()
		return
	}

	if outcome.Succeeded() {
		that.round.Status = entity.StatusWon
		that.result = outcome.Result
		that.err = nil
	} else {
		that.round.Status = entity.StatusScoreSubmissionFailed
		that.err = outcome.Err
	}

	view := that.view()
	that.mu.Unlock()

	if that.observer != nil {
		that.observer(view)
	}
}

func (that *Controller) hasHint() bool {
	return strings.TrimSpace(that.input.Hint) != ""
}

func (that *Controller) view() View {
	view := View{
		ID:              that.id,
		Nickname:        that.input.Nickname,
		Category:        that.input.Category,
		Revealed:        that.round.RevealedString(),
		Hits:            []rune{},
		Misses:          []rune{},
		AttemptsCounter: that.round.AttemptsCounter,
		FailedAttempts:  that.round.FailedAttempts,
		Status:          that.round.Status,
		HintAvailable:   that.hasHint(),
		HintVisible:     that.hint.Visible,
		Elapsed:         that.elapsed,
		Result:          that.result,
		SubmissionErr:   that.err,
	}

	if that.hint.Visible {
		view.Hint = that.input.Hint
	}

	if that.round.IsPlaying() {
		view.Elapsed = that.stopwatch.Elapsed()
	} else {
		view.Word = that.round.SecretWord
	}

	for _, letter := range that.round.GuessedLetters {
		if strings.ContainsRune(that.round.SecretWord, letter) {
			view.Hits = append(view.Hits, letter)
		} else {
			view.Misses = append(view.Misses, letter)
		}
	}

	return view
}
