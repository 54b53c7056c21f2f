package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
	"github.com/rocketscienceinc/hangman/internal/session"
	"github.com/rocketscienceinc/hangman/internal/stopwatch"
)

const (
	colorHit   = "\033[1;32m"
	colorMiss  = "\033[1;90m"
	colorReset = "\033[0m"
)

const (
	inputHint  = ":hint"
	inputRetry = ":retry"
	inputExit  = ":exit"
)

func (that *Console) handlePlay(ctx context.Context) error {
	nickname, err := that.promptRequired(ctx, "Nickname: ")
	if err != nil {
		return err
	}

	category, err := that.chooseCategory(ctx)
	if err != nil {
		return err
	}

	updates := make(chan session.View, 1)
	controller, err := that.game.StartRound(ctx, nickname, category, session.WithObserver(func(view session.View) {
		// only the latest view matters
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- view:
		default:
		}
	}))
	if errors.Is(err, apperror.ErrWordNotFound) {
		that.printf("There are no words in %q yet.\n", category)
		return nil
	}
	if err != nil {
		return err
	}
	defer controller.Close()

	return that.playRound(ctx, controller, updates)
}

func (that *Console) chooseCategory(ctx context.Context) (string, error) {
	categories, err := that.catalog.Categories(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load categories: %w", err)
	}

	if len(categories) == 0 {
		return that.promptRequired(ctx, "Category: ")
	}

	that.printf("Categories:\n")
	for i, category := range categories {
		that.printf("  %d) %s\n", i+1, category)
	}

	for {
		answer, err := that.promptRequired(ctx, "Category: ")
		if err != nil {
			return "", err
		}

		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(categories) {
			return categories[n-1], nil
		}

		for _, category := range categories {
			if strings.EqualFold(category, answer) {
				return category, nil
			}
		}

		that.printf("Pick one of the listed categories.\n")
	}
}

func (that *Console) playRound(ctx context.Context, controller *session.Controller, updates <-chan session.View) error {
	view := controller.View()

	for {
		that.renderRound(view)

		switch view.Status {
		case entity.StatusSubmittingScore:
			that.printf("Submitting your score...\n")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case view = <-updates:
			}

			continue
		case entity.StatusWon:
			that.leaderboard.Invalidate(ctx)
			that.renderResult(view)

			_, err := that.prompt(ctx, "Press Enter to continue ")
			return ignoreEOF(err)
		case entity.StatusScoreSubmissionFailed:
			that.printf("Could not submit your score: %v\n", view.SubmissionErr)
			that.printf("Type %s to try again or %s to leave.\n", inputRetry, inputExit)
		case entity.StatusPlaying:
		}

		input, err := that.prompt(ctx, "Letter or word: ")
		if err != nil {
			return err
		}

		next, leave, err := that.handleRoundInput(ctx, controller, input)
		if err != nil || leave {
			return err
		}
		view = next
	}
}

func (that *Console) handleRoundInput(ctx context.Context, controller *session.Controller, input string) (session.View, bool, error) {
	switch strings.ToLower(input) {
	case inputExit:
		sure, err := that.confirm(ctx, "Leave the game? Your progress will be lost.")
		if err != nil {
			return session.View{}, true, err
		}
		if sure {
			return session.View{}, true, nil
		}

		return controller.View(), false, nil
	case inputHint:
		view := controller.ToggleHint()
		if !view.HintAvailable {
			that.printf("This word has no hint.\n")
		}

		return view, false, nil
	case inputRetry:
		return controller.RetrySubmission(ctx), false, nil
	}

	if current := controller.View(); current.Status != entity.StatusPlaying {
		return current, false, nil
	}

	if letter, ok := hangman.NormalizeLetter(input); ok {
		return controller.GuessLetter(ctx, letter), false, nil
	}

	word := hangman.NormalizeWord(input)
	if word == "" {
		that.printf("Use letters and spaces only.\n")
		return controller.View(), false, nil
	}

	return controller.GuessWord(ctx, word), false, nil
}

func (that *Console) renderRound(view session.View) {
	that.printf("\n%s   [%s]\n", spaced(view.Revealed), stopwatch.Format(view.Elapsed))
	that.printf("Category: %s   Attempts: %d   Misses: %d\n", view.Category, view.AttemptsCounter, view.FailedAttempts)
	that.printf("%s\n", keyboard(view.Hits, view.Misses))

	if view.HintVisible {
		that.printf("Hint: %s\n", view.Hint)
	}
}

func (that *Console) renderResult(view session.View) {
	that.printf("\nCongratulations %s! The word was %q.\n", view.Nickname, view.Word)

	if view.Result == nil {
		return
	}

	that.printf("Your score: %d\n", view.Result.Score)
	if view.Result.Status {
		that.printf("Your best score is %d, rank #%d\n", view.Result.Score, view.Result.Rank)
	} else {
		that.printf("Your rank is still #%d\n", view.Result.Rank)
	}
}

func spaced(revealed string) string {
	var builder strings.Builder

	for i, r := range revealed {
		if i > 0 {
			builder.WriteRune(' ')
		}
		if r == entity.Space {
			builder.WriteRune(' ')
		}
		builder.WriteRune(r)
	}

	return builder.String()
}

// keyboard renders a..z, guessed letters coloured as hit or miss.
func keyboard(hits, misses []rune) string {
	state := make(map[rune]string, len(hits)+len(misses))
	for _, r := range hits {
		state[r] = colorHit
	}
	for _, r := range misses {
		state[r] = colorMiss
	}

	var builder strings.Builder
	for r := 'a'; r <= 'z'; r++ {
		if color, ok := state[r]; ok {
			builder.WriteString(color + strings.ToUpper(string(r)) + colorReset)
		} else {
			builder.WriteRune(r)
		}
		builder.WriteRune(' ')
	}

	return strings.TrimRight(builder.String(), " ")
}
