package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/request"
)

const wordsPath = "/wordEntry"

type WordAPI struct {
	client *request.Client
}

func NewWordAPI(client *request.Client) *WordAPI {
	return &WordAPI{client: client}
}

func (that *WordAPI) List(ctx context.Context) ([]entity.WordEntry, error) {
	entries := []entity.WordEntry{}

	if err := that.client.Do(ctx, request.Config{Path: wordsPath}, &entries); err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	return entries, nil
}

// Random returns a random word of the category, or apperror.ErrWordNotFound when it has none.
func (that *WordAPI) Random(ctx context.Context, category string) (entity.WordEntry, error) {
	var entry entity.WordEntry

	err := that.client.Do(ctx, request.Config{
		Path:  wordsPath + "/getRandomWord",
		Query: url.Values{"category": {category}},
	}, &entry)

	var respErr *request.ResponseError
	if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
		return entity.WordEntry{}, fmt.Errorf("%w: %s", apperror.ErrWordNotFound, category)
	}
	if err != nil {
		return entity.WordEntry{}, fmt.Errorf("failed to get random word: %w", err)
	}

	if entry.Word == "" {
		return entity.WordEntry{}, fmt.Errorf("%w: %s", apperror.ErrWordNotFound, category)
	}

	return entry, nil
}

func (that *WordAPI) Add(ctx context.Context, entry entity.WordEntry) (entity.WordEntry, error) {
	var added entity.WordEntry

	err := that.client.Do(ctx, request.Config{Method: http.MethodPost, Path: wordsPath + "/add", Body: entry}, &added)
	if err != nil {
		return entity.WordEntry{}, fmt.Errorf("failed to add word: %w", err)
	}

	return added, nil
}

func (that *WordAPI) Update(ctx context.Context, id string, entry entity.WordEntry) (entity.WordEntry, error) {
	var updated entity.WordEntry

	err := that.client.Do(ctx, request.Config{
		Method: http.MethodPut,
		Path:   wordsPath + "/update/" + url.PathEscape(id),
		Body:   entry,
	}, &updated)
	if err != nil {
		return entity.WordEntry{}, fmt.Errorf("failed to update word: %w", err)
	}

	return updated, nil
}

func (that *WordAPI) Delete(ctx context.Context, id string) error {
	err := that.client.Do(ctx, request.Config{Method: http.MethodDelete, Path: wordsPath + "/delete/" + url.PathEscape(id)}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}

	return nil
}

func (that *WordAPI) Exists(ctx context.Context, word string) (bool, error) {
	var resp struct {
		Exists bool `json:"exists"`
	}

	err := that.client.Do(ctx, request.Config{Path: wordsPath + "/word/" + url.PathEscape(word) + "/exists"}, &resp)
	if err != nil {
		return false, fmt.Errorf("failed to check word: %w", err)
	}

	return resp.Exists, nil
}

func (that *WordAPI) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}

	if err := that.client.Do(ctx, request.Config{Path: wordsPath + "/getCategories"}, &categories); err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return categories, nil
}
