package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/session"
)

var errQuit = errors.New("quit")

type gameUseCase interface {
	StartRound(ctx context.Context, nickname, category string, opts ...session.Option) (*session.Controller, error)
}

type catalogService interface {
	Categories(ctx context.Context) ([]string, error)
	Words(ctx context.Context) ([]entity.WordEntry, error)
	AddWord(ctx context.Context, entry entity.WordEntry) (entity.WordEntry, error)
	UpdateWord(ctx context.Context, current entity.WordEntry, entry entity.WordEntry) (entity.WordEntry, error)
	DeleteWord(ctx context.Context, id string) error
}

type leaderboardService interface {
	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
	Invalidate(ctx context.Context)
}

type command struct {
	key   string
	title string
	run   func(ctx context.Context) error
}

// Console is the interactive terminal front end.
type Console struct {
	logger      *slog.Logger
	in          io.Reader
	out         io.Writer
	game        gameUseCase
	catalog     catalogService
	leaderboard leaderboardService

	lines    chan string
	commands []command
	handlers map[string]func(ctx context.Context) error
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, game gameUseCase, catalog catalogService, leaderboard leaderboardService) *Console {
	console := &Console{
		logger:      logger.With("component", "console"),
		in:          in,
		out:         out,
		game:        game,
		catalog:     catalog,
		leaderboard: leaderboard,
		lines:       make(chan string),
		handlers:    make(map[string]func(context.Context) error),
	}

	console.commands = []command{
		{key: "1", title: "Play", run: console.handlePlay},
		{key: "2", title: "Leaderboard", run: console.handleLeaderboard},
		{key: "3", title: "Manage words", run: console.handleWords},
		{key: "4", title: "Rules", run: console.handleRules},
		{key: "5", title: "About", run: console.handleAbout},
		{key: "6", title: "Quit", run: func(context.Context) error { return errQuit }},
	}

	for _, cmd := range console.commands {
		console.handlers[cmd.key] = cmd.run
		console.handlers[strings.ToLower(cmd.title)] = cmd.run
	}

	return console
}

// Run serves the main menu until the user quits, the input ends or ctx is cancelled.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	go that.scan()

	that.printf("Welcome to Hangman!\n")

	for {
		that.printMenu()

		choice, err := that.prompt(ctx, "> ")
		if err != nil {
			return ignoreEOF(err)
		}

		handler, ok := that.handlers[strings.ToLower(choice)]
		if !ok {
			that.printf("Unknown option %q\n", choice)
			continue
		}

		err = handler(ctx)
		switch {
		case errors.Is(err, errQuit):
			that.printf("Bye!\n")
			return nil
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			return ignoreEOF(err)
		case err != nil:
			log.Warn("command failed", "choice", choice, "error", err)
			that.printf("Error: %v\n", err)
		}
	}
}

func (that *Console) printMenu() {
	that.printf("\n")
	for _, cmd := range that.commands {
		that.printf("  %s) %s\n", cmd.key, cmd.title)
	}
}

func (that *Console) scan() {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		that.lines <- strings.TrimSpace(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		that.logger.Error("failed to read input", "error", err)
	}
}

// readLine returns io.EOF once the input is exhausted.
func (that *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}

		return line, nil
	}
}

func (that *Console) prompt(ctx context.Context, label string) (string, error) {
	that.printf("%s", label)

	return that.readLine(ctx)
}

// promptRequired asks again until a non-blank answer is given.
func (that *Console) promptRequired(ctx context.Context, label string) (string, error) {
	for {
		answer, err := that.prompt(ctx, label)
		if err != nil {
			return "", err
		}

		if answer != "" {
			return answer, nil
		}

		that.printf("This field is required.\n")
	}
}

func (that *Console) confirm(ctx context.Context, question string) (bool, error) {
	answer, err := that.prompt(ctx, question+" (y/n) ")
	if err != nil {
		return false, err
	}

	answer = strings.ToLower(answer)

	return answer == "y" || answer == "yes", nil
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
