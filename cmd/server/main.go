// Package main - Entry point for the aws-recommender HTTP server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"aws-recommender/adapters/storage"
	"aws-recommender/api"
	"aws-recommender/core/engine"
	"aws-recommender/internal/config"
	"aws-recommender/internal/logging"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "config file")
	addr := flag.String("addr", "", "server address (overrides server.addr)")
	envFile := flag.String("env-file", ".env", "dotenv file loaded before reading configuration")
	flag.Parse()

	// A missing .env is normal outside development
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *envFile, err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := run(cfg); err != nil {
		logging.Error("server stopped", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	store, err := storage.StoreFactory(storage.Backend(cfg.Storage.Backend), map[string]string{
		"path": cfg.Storage.Path,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Warn("failed to close store", zap.Error(err))
		}
	}()

	server := api.NewServer(api.Options{
		Version:       version,
		Engine:        engine.Default(),
		Slots:         storage.NewSlots(store),
		Config:        cfg.Server,
		RestoreWindow: cfg.Output.RestoreWindow,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("starting server",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
		zap.String("storage", cfg.Storage.Backend))

	if err := server.ListenAndServe(ctx); err != nil {
		return err
	}

	logging.Info("server stopped gracefully")
	return nil
}
