package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

// readThrough serves a cached snapshot and falls back to fetch on a miss. Cache failures
// are logged and never fail the read.
func readThrough[T any](
	ctx context.Context,
	log *slog.Logger,
	get func(context.Context) (T, error),
	fetch func(context.Context) (T, error),
	save func(context.Context, T) error,
) (T, error) {
	cached, err := get(ctx)
	if err == nil {
		log.Debug("cache hit")
		return cached, nil
	}

	if !errors.Is(err, apperror.ErrCacheMiss) {
		log.Warn("failed to read cache", "error", err)
	}

	fresh, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err = save(ctx, fresh); err != nil {
		log.Warn("failed to write cache", "error", err)
	}

	return fresh, nil
}
