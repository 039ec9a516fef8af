package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pal/internal/amqp"
	"pal/internal/config"
	apphttp "pal/internal/http"
	applog "pal/internal/log"
	"pal/internal/memstore"
	"pal/internal/services"
	"pal/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	slog.SetDefault(logger.Logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	store := memstore.New(cfg.MemoryPath)

	// Event publishing is optional; without a broker the API still serves.
	var events *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		events, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		logger.Info("AMQP event publishing enabled", "exchange", cfg.AMQPExchange)
	} else {
		logger.Info("AMQP disabled - no AMQP_URL provided")
	}

	svc := services.NewAdvisorService(store, events)
	defer svc.Close()

	// KPI history is optional as well.
	var history *storage.SQLiteRepository
	if cfg.HistoryDBPath != "" {
		var err error
		history, err = storage.NewSQLiteRepository(cfg.HistoryDBPath)
		if err != nil {
			logger.Error("Failed to initialize history store", "error", err, "path", cfg.HistoryDBPath)
			os.Exit(1)
		}
		defer history.Close()
		logger.Info("KPI history store initialized", "path", cfg.HistoryDBPath)
	} else {
		logger.Info("KPI history disabled - no HISTORY_DB_PATH provided")
	}

	srv := apphttp.NewServer(":"+cfg.Port, svc, history, cfg.HistoryLimit, logger)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting pal server", "port", cfg.Port, "memory_path", cfg.MemoryPath)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
