package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqpadapter "agora-ads/internal/adapter/amqp"
	httpadapter "agora-ads/internal/adapter/http"
	"agora-ads/internal/adapter/postgres"
	"agora-ads/internal/adapter/pricing"
	"agora-ads/internal/adapter/usecase"
	"agora-ads/internal/config"
	"agora-ads/internal/core/domain"
	"agora-ads/internal/core/port"
	"agora-ads/internal/db"
)

// logNotifier stands in for the AMQP publisher when no broker is
// configured. Activations are still visible in the logs.
type logNotifier struct {
	logger *slog.Logger
}

func (n logNotifier) NotifyActivation(_ context.Context, c *domain.Campaign) error {
	n.logger.Info("campaign activated",
		slog.String("campaign_id", c.ID),
		slog.String("recipient", c.CreatedBy))
	return nil
}

// main loads configuration, optionally runs database migrations,
// initializes the pool, repositories and usecases, then starts the
// HTTP server. On receiving a termination signal it gracefully shuts
// down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	var notifier port.Notifier
	if cfg.AMQP.Enabled {
		amqpNotifier, err := amqpadapter.NewNotifier(cfg.AMQP)
		if err != nil {
			logger.Error("amqp connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer amqpNotifier.Close()
		notifier = amqpNotifier
	} else {
		notifier = logNotifier{logger: logger}
	}

	repo := postgres.NewCampaignRepository(pool)
	lifecycle := usecase.NewLifecycle(repo, pricing.NewTable(cfg.Price))
	ads := usecase.NewAdServer(repo)
	reconciler := usecase.NewReconciler(repo, notifier, logger)

	handler := httpadapter.NewHandler(lifecycle, ads, reconciler, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
