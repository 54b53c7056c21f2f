package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/request"
	"github.com/rocketscienceinc/hangman/internal/session"
)

type GameUseCase interface {
	StartRound(ctx context.Context, nickname, category string, opts ...session.Option) (*session.Controller, error)
}

type wordSource interface {
	RandomWord(ctx context.Context, category string) (entity.WordEntry, error)
}

type gameUseCase struct {
	logger  *slog.Logger
	words   wordSource
	client  *request.Client
	options []session.Option
}

// NewGameUseCase - options are applied to every session before the per-round ones.
func NewGameUseCase(logger *slog.Logger, words wordSource, client *request.Client, options ...session.Option) GameUseCase {
	return &gameUseCase{
		logger:  logger.With("component", "game"),
		words:   words,
		client:  client,
		options: options,
	}
}

// StartRound draws a random word of the category and returns a started session for it.
func (that *gameUseCase) StartRound(ctx context.Context, nickname, category string, opts ...session.Option) (*session.Controller, error) {
	log := that.logger.With("method", "StartRound", "nickname", nickname, "category", category)

	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, apperror.ErrInvalidNickname
	}

	entry, err := that.words.RandomWord(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to pick a word: %w", err)
	}

	controller, err := session.New(that.logger, entity.SessionInput{
		Word:     entry.Word,
		Category: entry.Category,
		Hint:     entry.Hint,
		Nickname: nickname,
	}, that.client, append(append([]session.Option{}, that.options...), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	controller.Start()
	log.Info("round ready", "session_id", controller.ID())

	return controller, nil
}
