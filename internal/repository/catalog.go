package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/hangman/internal/entity"
)

const (
	categoriesKey = "catalog:categories"
	wordsKey      = "catalog:words"
)

// Storage is the key-value store snapshots are kept in. Get returns apperror.ErrCacheMiss
// for absent keys.
type Storage interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, keys ...string) error
}

type CatalogRepository interface {
	SaveCategories(ctx context.Context, categories []string) error
	GetCategories(ctx context.Context) ([]string, error)
	SaveWords(ctx context.Context, words []entity.WordEntry) error
	GetWords(ctx context.Context) ([]entity.WordEntry, error)
	Invalidate(ctx context.Context) error
}

type dbCatalog struct {
	storage Storage
	ttl     time.Duration
}

func NewCatalogRepository(storage Storage, ttl time.Duration) CatalogRepository {
	return &dbCatalog{
		storage: storage,
		ttl:     ttl,
	}
}

func (that *dbCatalog) SaveCategories(ctx context.Context, categories []string) error {
	return save(ctx, that.storage, categoriesKey, categories, that.ttl)
}

func (that *dbCatalog) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := load(ctx, that.storage, categoriesKey, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (that *dbCatalog) SaveWords(ctx context.Context, words []entity.WordEntry) error {
	return save(ctx, that.storage, wordsKey, words, that.ttl)
}

func (that *dbCatalog) GetWords(ctx context.Context) ([]entity.WordEntry, error) {
	var words []entity.WordEntry
	if err := load(ctx, that.storage, wordsKey, &words); err != nil {
		return nil, err
	}

	return words, nil
}

// Invalidate drops every catalog snapshot, the next read goes to the API.
func (that *dbCatalog) Invalidate(ctx context.Context) error {
	if err := that.storage.Del(ctx, categoriesKey, wordsKey); err != nil {
		return fmt.Errorf("failed to invalidate catalog: %w", err)
	}

	return nil
}

func save(ctx context.Context, storage Storage, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", key, err)
	}

	if err = storage.Set(ctx, key, payload, ttl); err != nil {
		return err
	}

	return nil
}

func load(ctx context.Context, storage Storage, key string, out any) error {
	payload, err := storage.Get(ctx, key)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return nil
}
