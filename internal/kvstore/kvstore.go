// Package kvstore keeps small durable scalar values such as the invoice
// numbering state. Values are opaque strings; callers own their encoding.
package kvstore

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/vidinfra/erpdesk/internal/config"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/types"
)

// Store is a durable key/value store for scalar values
type Store interface {
	// Get returns the value and whether the key was present
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes a single key
	Set(ctx context.Context, key, value string) error
	// SetMany writes every pair or none of them
	SetMany(ctx context.Context, values map[string]string) error
	Close() error
}

// Open builds the store selected by kvstore.backend. SQL backends are dialed
// with exponential backoff and have their table created if missing.
func Open(ctx context.Context, cfg *config.Configuration, log *logger.Logger) (Store, error) {
	switch cfg.KVStore.Backend {
	case types.KVBackendMemory, "":
		log.Infow("using in-memory key/value store")
		return NewMemoryStore(), nil
	case types.KVBackendSQLite:
		return openSQL(ctx, DriverSQLite, cfg.KVStore.SQLite.Path, cfg.KVStore.ConnectRetries, log)
	case types.KVBackendPostgres:
		return openSQL(ctx, DriverPostgres, cfg.Postgres.GetDSN(), cfg.KVStore.ConnectRetries, log)
	default:
		return nil, ierr.NewErrorf("unknown kvstore backend: %s", cfg.KVStore.Backend).
			WithHint("kvstore.backend must be one of memory, sqlite, postgres").
			Mark(ierr.ErrValidation)
	}
}

func openSQL(ctx context.Context, driver, dsn string, retries uint64, log *logger.Logger) (Store, error) {
	var store *SQLStore

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = 30 * time.Second

	attempt := 0
	operation := func() error {
		attempt++
		s, err := NewSQLStore(ctx, driver, dsn)
		if err != nil {
			log.Warnw("key/value store not reachable yet",
				"driver", driver,
				"attempt", attempt,
				"error", err,
			)
			return err
		}
		store = s
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(policy, retries), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Could not connect to the %s key/value store", driver).
			Mark(ierr.ErrDatabase)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	log.Infow("connected to key/value store", "driver", driver, "attempts", attempt)
	return store, nil
}
