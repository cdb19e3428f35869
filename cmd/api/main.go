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
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yasinga/yasinga/internal/config"
	"github.com/yasinga/yasinga/internal/database"
	"github.com/yasinga/yasinga/internal/export"
	"github.com/yasinga/yasinga/internal/handlers"
	"github.com/yasinga/yasinga/internal/middleware"
	"github.com/yasinga/yasinga/internal/repositories"
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

	logger.Info("Starting yasinga API",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
	)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	smsSettingsRepo := repositories.NewSMSSettingsRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Shared infrastructure
	metrics := services.NewPrometheusMetrics()
	artifactStore, err := export.NewArtifactStore(cfg.Reports.Dir)
	if err != nil {
		logger.Error("Failed to initialize report artifact store", "error", err, "dir", cfg.Reports.Dir)
		os.Exit(1)
	}

	// Services
	tokenService := services.NewTokenService(&cfg.Auth)
	classifierService := services.NewClassifierService(metrics)
	categoryService := services.NewCategoryService(categoryRepo, transactionRepo, logger)
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, supplierRepo, classifierService, metrics, logger)
	supplierService := services.NewSupplierService(supplierRepo, categoryRepo, logger)
	smsSettingsService := services.NewSMSSettingsService(smsSettingsRepo, logger)
	dashboardService := services.NewDashboardService(transactionRepo)
	reportService := services.NewReportService(reportRepo, transactionRepo, userRepo, artifactStore, metrics, logger)

	// Handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	smsSettingsHandler := handlers.NewSMSSettingsHandler(smsSettingsService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))

	// Unauthenticated endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// All business endpoints require a valid session token
	api := e.Group("/api", middleware.RequireAuth(tokenService, userRepo))

	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories", categoryHandler.CreateCategory)
	api.PUT("/categories/:id", categoryHandler.UpdateCategory)
	api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/pending", transactionHandler.ListPendingTransactions)
	api.GET("/transactions/range", transactionHandler.ListTransactionsByDateRange)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.POST("/transactions/:id/categorize", transactionHandler.CategorizeTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/suppliers", supplierHandler.ListSuppliers)
	api.POST("/suppliers", supplierHandler.CreateSupplier)
	api.PUT("/suppliers/:id", supplierHandler.UpdateSupplier)

	api.GET("/sms-settings", smsSettingsHandler.GetSettings)
	api.PUT("/sms-settings", smsSettingsHandler.UpdateSettings)

	api.GET("/dashboard/stats", dashboardHandler.GetStats)

	api.POST("/reports/:window", reportHandler.GenerateReport)
	api.GET("/reports", reportHandler.ListReports)
	api.GET("/reports/:id/download", reportHandler.DownloadReport)
	api.DELETE("/reports/:id", reportHandler.DeleteReport)

	// Start server with graceful shutdown
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
