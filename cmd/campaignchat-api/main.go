package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/campaignchat/campaignchat/internal/api"
	"github.com/campaignchat/campaignchat/internal/api/uistatic"
	"github.com/campaignchat/campaignchat/internal/chat"
	"github.com/campaignchat/campaignchat/internal/config"
	"github.com/campaignchat/campaignchat/internal/observability"
	"github.com/campaignchat/campaignchat/internal/warehouse"
)

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv("campaignchat-api")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stdout)

	warehouseCfg := warehouse.Config{
		Account:   cfg.Snowflake.Account,
		User:      cfg.Snowflake.User,
		Password:  cfg.Snowflake.Password,
		Warehouse: cfg.Snowflake.Warehouse,
		Database:  cfg.Snowflake.Database,
		Schema:    cfg.Snowflake.Schema,
		Role:      cfg.Snowflake.Role,
	}
	if err := warehouseCfg.Validate(); err != nil {
		// Requests will fail with a configuration error until this is fixed,
		// but the service still boots so the UI and health endpoints work.
		logger.Warn("warehouse credentials incomplete", slog.Any("error", err))
	}

	warehouseClient := warehouse.NewClient(warehouseCfg, logger)
	chatService := chat.NewService(warehouseClient, logger)

	handler := api.NewHandler(cfg, api.Dependencies{
		Logger:            logger,
		Chat:              chatService,
		Tables:            warehouseClient,
		UI:                uistatic.Handler(),
		Readiness:         api.CheckWarehouseCredentials(warehouseCfg),
		DependencyTimeout: time.Second,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting api server", slog.String("addr", cfg.HTTP.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down api server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		_ = server.Close()
		os.Exit(1)
	}
}
