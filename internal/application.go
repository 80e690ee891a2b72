package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/config"
	"github.com/rocketscienceinc/gridgame/internal/controller"
	"github.com/rocketscienceinc/gridgame/internal/metrics"
	"github.com/rocketscienceinc/gridgame/internal/repository"
	"github.com/rocketscienceinc/gridgame/internal/repository/storage"
	"github.com/rocketscienceinc/gridgame/internal/variant"
	"github.com/rocketscienceinc/gridgame/internal/view"
	"github.com/rocketscienceinc/gridgame/transport/rest"
)

// RunApp - sets up one game from conf and plays it on in/out.
// Configuration errors abort before the game starts.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	model, err := variant.NewModel(conf.Game)
	if err != nil {
		return fmt.Errorf("invalid game configuration: %w", err)
	}

	gameView := view.New(out)

	var (
		opts      []controller.Option
		statsRepo repository.StatsRepository
	)

	if conf.Redis.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		statsRepo = repository.NewStatsRepository(redisStorage)
		opts = append(opts, controller.WithStats(statsRepo))
	}

	if conf.MetricsPort != "" {
		registry := prometheus.NewRegistry()

		gameMetrics, err := metrics.New(registry)
		if err != nil {
			return fmt.Errorf("could not create metrics: %w", err)
		}
		opts = append(opts, controller.WithObserver(gameMetrics))

		server := rest.New(logger, conf.MetricsPort, registry)
		go func() {
			if err := server.Start(ctx); err != nil {
				log.Error("HTTP server error", "error", err)
			}
		}()
	}

	log.Info("starting game",
		"variant", model.Variant(),
		"size", model.GridSize(),
		"players", model.PlayerCount(),
	)

	err = controller.New(logger, model, gameView, in, opts...).Run(ctx)
	switch {
	case errors.Is(err, controller.ErrQuit),
		errors.Is(err, apperror.ErrInputClosed),
		errors.Is(err, context.Canceled):
		log.Info("game ended before a result", "reason", err.Error())
		return nil
	case err != nil:
		return fmt.Errorf("game failed: %w", err)
	}

	if statsRepo == nil {
		return nil
	}

	stats, err := statsRepo.GetStats(ctx, model.Variant())
	if err != nil {
		log.Error("could not load stats", "error", err)
		return nil
	}

	gameView.Stats(stats)

	return nil
}
