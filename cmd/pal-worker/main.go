package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"pal/internal/amqp"
	"pal/internal/config"
	applog "pal/internal/log"
	"pal/internal/memstore"
	"pal/internal/storage"
	"pal/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentWorker)
	slog.SetDefault(logger.Logger)

	logger.Info("Starting pal-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the snapshot worker")
		os.Exit(1)
	}
	if cfg.HistoryDBPath == "" {
		logger.Error("HISTORY_DB_PATH is required for the snapshot worker")
		os.Exit(1)
	}

	history, err := storage.NewSQLiteRepository(cfg.HistoryDBPath)
	if err != nil {
		logger.Error("Failed to initialize history store", "error", err, "path", cfg.HistoryDBPath)
		os.Exit(1)
	}
	defer history.Close()

	store := memstore.New(cfg.MemoryPath)
	snapshotWorker := worker.NewSnapshotWorker(store, history)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return amqp.ConsumeWithRetry(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue,
			snapshotWorker.HandleEvent)
	})

	logger.Info("Worker started, consuming events",
		"queue", cfg.AMQPQueue, "history_db", cfg.HistoryDBPath)

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
