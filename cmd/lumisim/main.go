// Command lumisim serves the lumi device API from memory, Redis or SQLite so
// the controller can be developed without hardware.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/garrettladley/lumi/internal/config"
	"github.com/garrettladley/lumi/internal/paths"
	xredis "github.com/garrettladley/lumi/internal/redis"
	"github.com/garrettladley/lumi/internal/simulator"
	"github.com/garrettladley/lumi/internal/storage"
	"github.com/garrettladley/lumi/internal/xslog"
)

const (
	keyPort        = "port"
	keyGracePeriod = "grace_period"

	drainGracePeriod = time.Second
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.ReadSimulator()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	backend, err := initBackend(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage backend: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.ErrorContext(ctx, "failed to close backend", xslog.Error(err))
		}
	}()

	handler := simulator.NewHandler(backend, cfg.Device)
	shutdownCoordinator := simulator.NewShutdownCoordinator(drainGracePeriod)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           simulator.Routes(handler, backend, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return shutdownCoordinator.BaseContext()
		},
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.InfoContext(ctx, "starting simulator",
			xslog.Version(),
			xslog.Device(cfg.Device),
			xslog.Backend(cfg.Backend),
			slog.String(keyPort, cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "server error", xslog.Error(err))
		}
	}()

	<-done
	logger.InfoContext(ctx, "shutdown signal received, draining",
		slog.Duration(keyGracePeriod, drainGracePeriod))

	shutdownCoordinator.InitiateShutdown()

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.InfoContext(ctx, "simulator stopped")
	return nil
}

func initBackend(ctx context.Context, cfg config.SimulatorConfig, logger *slog.Logger) (storage.Backend, error) {
	opts := storage.Options{
		Kind:       cfg.Backend,
		Path:       cfg.DBPath,
		RatePerSec: cfg.RateLimit,
		Burst:      cfg.RateBurst,
	}

	switch cfg.Backend {
	case storage.KindRedis:
		client, err := initRedis(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		opts.Redis = client
	case storage.KindSQLite:
		if opts.Path == "" {
			if _, err := paths.EnsureDir(); err != nil {
				return nil, err
			}
			path, err := paths.DB()
			if err != nil {
				return nil, err
			}
			opts.Path = path
		}
		logger.InfoContext(ctx, "initializing SQLite backend", slog.String("path", opts.Path))
	default:
		if cfg.Env.IsProduction() {
			logger.WarnContext(ctx, "memory backend in production; device state is lost on restart")
		}
	}

	return storage.Open(ctx, opts)
}

func initRedis(ctx context.Context, cfg config.SimulatorConfig, logger *slog.Logger) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL is required for the redis backend")
	}
	logger.InfoContext(ctx, "initializing Redis backend")
	return xredis.New(ctx, xredis.Config{URL: cfg.RedisURL})
}
