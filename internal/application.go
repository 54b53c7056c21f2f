package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/hangman/internal/api"
	"github.com/rocketscienceinc/hangman/internal/config"
	"github.com/rocketscienceinc/hangman/internal/console"
	"github.com/rocketscienceinc/hangman/internal/repository"
	"github.com/rocketscienceinc/hangman/internal/repository/storage"
	"github.com/rocketscienceinc/hangman/internal/request"
	"github.com/rocketscienceinc/hangman/internal/service"
	"github.com/rocketscienceinc/hangman/internal/session"
	"github.com/rocketscienceinc/hangman/internal/stopwatch"
	"github.com/rocketscienceinc/hangman/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type cacheStorage interface {
	repository.Storage
	io.Closer
}

// RunApp - runs the terminal client until the user quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	cache, err := newCacheStorage(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = cache.Close(); err != nil {
			log.Error("could not close cache storage", "error", err)
		}
	}()

	client := request.NewClient(conf.API.BaseURL, conf.API.Timeout)

	catalogService := service.NewCatalogService(logger, api.NewWordAPI(client),
		repository.NewCatalogRepository(cache, conf.Cache.TTL))
	leaderboardService := service.NewLeaderboardService(logger, api.NewScoreAPI(client),
		repository.NewLeaderboardRepository(cache, conf.Cache.TTL))
	gameUseCase := usecase.NewGameUseCase(logger, catalogService, client,
		session.WithStopwatch(stopwatch.WithQuantum(conf.Game.TickInterval)))

	log.Info("Starting console", "api", conf.API.BaseURL, "cache", conf.Cache.Driver)

	cli := console.New(logger, os.Stdin, os.Stdout, gameUseCase, catalogService, leaderboardService)
	if err = cli.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}

func newCacheStorage(ctx context.Context, conf *config.Config) (cacheStorage, error) {
	if conf.Cache.Driver != config.CacheRedis {
		return storage.NewMemoryStorage(), nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return redisStorage, nil
}
