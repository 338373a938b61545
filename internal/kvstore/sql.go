package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

const upsertQuery = `
INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// SQLStore keeps values in a single kv_store table on sqlite or postgres
type SQLStore struct {
	db *sqlx.DB
}

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// NewSQLStore connects and pings the database. Call Migrate before first use
// on a fresh database.
func NewSQLStore(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// a single writer connection avoids SQLITE_BUSY between our own goroutines
		db.SetMaxOpenConns(1)
	}
	return &SQLStore{db: db}, nil
}

// Migrate creates the kv_store table if it does not exist
func (s *SQLStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create the key/value table").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, s.db.Rebind(`SELECT value FROM kv_store WHERE key = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, ierr.WithError(err).
			WithHintf("Failed to read key %s", key).
			Mark(ierr.ErrDatabase)
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

func (s *SQLStore) SetMany(ctx context.Context, values map[string]string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to start key/value transaction").
			Mark(ierr.ErrDatabase)
	}
	defer func() { _ = tx.Rollback() }()

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := time.Now().UTC()
	query := tx.Rebind(upsertQuery)
	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, query, k, values[k], now); err != nil {
			return ierr.WithError(err).
				WithHintf("Failed to write key %s", k).
				Mark(ierr.ErrDatabase)
		}
	}

	if err := tx.Commit(); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to commit key/value transaction").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
