package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/job-tracker/internal/config"
	"github.com/jonathan/job-tracker/internal/snapshot"
)

// loadConfig merges the optional config file with built-in defaults.
func loadConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openStore returns the snapshot store the config selects: Postgres when a
// database URL is set (flag, config file, or DATABASE_URL), otherwise the
// snapshot directory on disk. The returned close func is a no-op for the
// file store.
func openStore(ctx context.Context, cfg config.Config) (snapshot.Store, func(), error) {
	dbURL := cfg.DatabaseURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL != "" {
		store, err := snapshot.ConnectPG(ctx, dbURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database store: %w", err)
		}
		return store, store.Close, nil
	}

	store, err := snapshot.NewFileStore(cfg.SnapshotDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open snapshot directory: %w", err)
	}
	return store, func() {}, nil
}
