package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

type CatalogService interface {
	Categories(ctx context.Context) ([]string, error)
	Words(ctx context.Context) ([]entity.WordEntry, error)
	RandomWord(ctx context.Context, category string) (entity.WordEntry, error)

	AddWord(ctx context.Context, entry entity.WordEntry) (entity.WordEntry, error)
	UpdateWord(ctx context.Context, current entity.WordEntry, entry entity.WordEntry) (entity.WordEntry, error)
	DeleteWord(ctx context.Context, id string) error
}

type wordAPI interface {
	List(ctx context.Context) ([]entity.WordEntry, error)
	Random(ctx context.Context, category string) (entity.WordEntry, error)
	Add(ctx context.Context, entry entity.WordEntry) (entity.WordEntry, error)
	Update(ctx context.Context, id string, entry entity.WordEntry) (entity.WordEntry, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, word string) (bool, error)
	Categories(ctx context.Context) ([]string, error)
}

type catalogRepo interface {
	SaveCategories(ctx context.Context, categories []string) error
	GetCategories(ctx context.Context) ([]string, error)
	SaveWords(ctx context.Context, words []entity.WordEntry) error
	GetWords(ctx context.Context) ([]entity.WordEntry, error)
	Invalidate(ctx context.Context) error
}

type catalogService struct {
	logger *slog.Logger
	api    wordAPI
	repo   catalogRepo
}

func NewCatalogService(logger *slog.Logger, api wordAPI, repo catalogRepo) CatalogService {
	return &catalogService{
		logger: logger.With("component", "catalog"),
		api:    api,
		repo:   repo,
	}
}

func (that *catalogService) Categories(ctx context.Context) ([]string, error) {
	log := that.logger.With("method", "Categories")

	return readThrough(ctx, log, that.repo.GetCategories, that.api.Categories, that.repo.SaveCategories)
}

func (that *catalogService) Words(ctx context.Context) ([]entity.WordEntry, error) {
	log := that.logger.With("method", "Words")

	return readThrough(ctx, log, that.repo.GetWords, that.api.List, that.repo.SaveWords)
}

// RandomWord is never cached, every round gets a fresh draw.
func (that *catalogService) RandomWord(ctx context.Context, category string) (entity.WordEntry, error) {
	if err := entity.ValidateCategory(category); err != nil {
		return entity.WordEntry{}, err
	}

	return that.api.Random(ctx, category)
}

// AddWord validates the entry against the known words and asks the API whether the word
// exists before adding it.
func (that *catalogService) AddWord(ctx context.Context, entry entity.WordEntry) (entity.WordEntry, error) {
	log := that.logger.With("method", "AddWord", "word", entry.Word)

	if err := that.validate(ctx, entry, ""); err != nil {
		return entity.WordEntry{}, err
	}

	added, err := that.api.Add(ctx, entry)
	if err != nil {
		return entity.WordEntry{}, err
	}

	that.invalidate(ctx, log)
	log.Info("word added", "id", added.ID)

	return added, nil
}

// UpdateWord replaces current with entry. Keeping the word itself unchanged is allowed.
func (that *catalogService) UpdateWord(ctx context.Context, current entity.WordEntry, entry entity.WordEntry) (entity.WordEntry, error) {
	log := that.logger.With("method", "UpdateWord", "id", current.ID)

	if err := that.validate(ctx, entry, current.Word); err != nil {
		return entity.WordEntry{}, err
	}

	updated, err := that.api.Update(ctx, current.ID, entry)
	if err != nil {
		return entity.WordEntry{}, err
	}

	that.invalidate(ctx, log)
	log.Info("word updated")

	return updated, nil
}

func (that *catalogService) DeleteWord(ctx context.Context, id string) error {
	log := that.logger.With("method", "DeleteWord", "id", id)

	if err := that.api.Delete(ctx, id); err != nil {
		return err
	}

	that.invalidate(ctx, log)
	log.Info("word deleted")

	return nil
}

func (that *catalogService) validate(ctx context.Context, entry entity.WordEntry, current string) error {
	words, err := that.Words(ctx)
	if err != nil {
		return err
	}

	known := make([]string, 0, len(words))
	for _, word := range words {
		known = append(known, word.Word)
	}

	if err = entry.Validate(known, current); err != nil {
		return err
	}

	if current != "" && entry.Word == current {
		return nil
	}

	exists, err := that.api.Exists(ctx, entry.Word)
	if err != nil {
		return err
	}

	if exists {
		return fmt.Errorf("%w: %s", apperror.ErrWordExists, entry.Word)
	}

	return nil
}

func (that *catalogService) invalidate(ctx context.Context, log *slog.Logger) {
	if err := that.repo.Invalidate(ctx); err != nil {
		log.Warn("failed to invalidate catalog cache", "error", err)
	}
}
