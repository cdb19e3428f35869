package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/yasinga/yasinga/internal/config"
	"github.com/yasinga/yasinga/internal/database"
	"github.com/yasinga/yasinga/internal/export"
	"github.com/yasinga/yasinga/internal/repositories"
	"github.com/yasinga/yasinga/internal/scheduler"
	"github.com/yasinga/yasinga/internal/services"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	logger.Info("Starting yasinga report worker",
		"environment", cfg.Server.Environment,
		"check_interval", cfg.Scheduler.CheckInterval,
	)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	userRepo := repositories.NewUserRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	metrics := services.NewPrometheusMetrics()
	artifactStore, err := export.NewArtifactStore(cfg.Reports.Dir)
	if err != nil {
		logger.Error("Failed to initialize report artifact store", "error", err, "dir", cfg.Reports.Dir)
		os.Exit(1)
	}

	reportService := services.NewReportService(reportRepo, transactionRepo, userRepo, artifactStore, metrics, logger)

	sched := scheduler.New(userRepo, reportRepo, reportService, metrics, logger, cfg.Scheduler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := sched.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("Report scheduler stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Report worker stopped")
}
