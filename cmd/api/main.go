package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todolist-sync/config"
	_ "todolist-sync/docs" // Swagger docs
	"todolist-sync/internal/httpserver"
	"todolist-sync/internal/todolist/repository/filestore"
	"todolist-sync/pkg/log"
)

// @title       Todolist Sync Store API
// @description REST collection resource holding to-do lists.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting todolist store...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Data file: %s", cfg.Store.DataFile)

	// 3. Store
	store, err := filestore.New(cfg.Store.DataFile, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open store: ", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Store:           store,
		RateLimitPerMin: cfg.Server.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
