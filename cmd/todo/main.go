// Package main implements the todo CLI, a terminal client of the list store.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"todolist-sync/config"
	"todolist-sync/internal/todolist/delivery/cli"
	"todolist-sync/internal/todolist/repository"
	"todolist-sync/internal/todolist/repository/filecache"
	"todolist-sync/internal/todolist/repository/jsonstore"
	"todolist-sync/internal/todolist/usecase"
	"todolist-sync/pkg/log"
)

// configEnv names an explicit config file; unset uses the default search paths.
const configEnv = "TODOLIST_CONFIG"

func main() {
	// 1. Configuration
	cfg, err := config.LoadFile(os.Getenv(configEnv))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
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

	// 3. Remote store
	var limiter *rate.Limiter
	if cfg.Store.RateLimitPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Store.RateLimitPerSec), 1)
	}
	client := jsonstore.NewClient(cfg.Store.BaseURL, cfg.Store.Timeout, limiter)
	store := jsonstore.New(client, logger)

	// 4. Local cache
	var cache repository.SnapshotCache
	if cfg.Cache.Enabled {
		cache = filecache.New(cfg.Cache.Path, cfg.Cache.Key, logger)
	} else {
		cache = repository.NewNopCache()
	}

	// 5. UseCase + CLI
	uc := usecase.New(logger, store, cache, nil)
	h := cli.New(logger, uc, os.Stdout)

	rootCmd := &cobra.Command{
		Use:           "todo",
		Short:         "Manage to-do lists kept in a remote store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(h.Commands()...)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
