package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/vidinfra/erpdesk/internal/config"
	"github.com/vidinfra/erpdesk/internal/kvstore"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/types"
)

func main() {
	// Parse command line flags
	dryRun := flag.Bool("dry-run", false, "Only check connectivity, do not create tables")
	flag.Parse()

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	var driver, dsn string
	switch cfg.KVStore.Backend {
	case types.KVBackendSQLite:
		driver, dsn = kvstore.DriverSQLite, cfg.KVStore.SQLite.Path
		logger.Infow("Connecting to database", "driver", driver, "path", dsn)
	case types.KVBackendPostgres:
		driver, dsn = kvstore.DriverPostgres, cfg.Postgres.GetDSN()
		logger.Infow("Connecting to database", "driver", driver, "host", cfg.Postgres.Host)
	default:
		logger.Infow("Nothing to migrate", "backend", cfg.KVStore.Backend)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := kvstore.NewSQLStore(ctx, driver, dsn)
	if err != nil {
		logger.Fatalw("Failed to connect to database", "error", err)
	}
	defer store.Close()

	if *dryRun {
		logger.Info("Dry run mode - connection ok, skipping migration")
		return
	}

	logger.Info("Running database migrations...")
	if err := store.Migrate(ctx); err != nil {
		logger.Fatalw("Failed to run migrations", "error", err)
	}

	logger.Info("Migration completed successfully")
}
