// Package postgres provides a Postgres-backed cart store that mirrors the
// SQLite backend: the in-memory store stays authoritative and the committed
// snapshot is upserted into a state table after every transition.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"oceankicks/internal/infra/persistence/memory"
	"oceankicks/pkg/domain"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.CartStore = (*Store)(nil)

const (
	defaultDriver = "pgx"
	// Default DSN keeps parity with OpenCartStore defaults while allowing overrides via env.
	defaultDSN = "postgres://localhost/oceankicks?sslmode=disable"
)

var sqlOpen = sql.Open

// OverrideSQLOpen replaces the sql.Open hook for tests and returns a restore
// function.
func OverrideSQLOpen(fn func(driverName, dsn string) (*sql.DB, error)) func() {
	prev := sqlOpen
	sqlOpen = fn
	return func() { sqlOpen = prev }
}

// Store persists the cart snapshot to Postgres.
type Store struct {
	*memory.Store
	db      *sql.DB
	mu      sync.Mutex
	onError func(error)
}

// NewStore opens a Postgres-backed store using the provided DSN (falls back
// to defaultDSN), ensures the state table exists, and hydrates from any
// existing snapshot.
func NewStore(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sqlOpen(defaultDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload JSONB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("ensure state table: %w", err)
	}
	mem := memory.NewStore()
	s := &Store{Store: mem, db: db}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE bucket = $1`, domain.CartStorageKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("select state: %w", err)
	}
	s.ImportState(domain.DecodeCartSnapshot(payload))
	return nil
}

// OnPersistError registers a callback invoked when a snapshot write fails.
func (s *Store) OnPersistError(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = fn
}

// Apply runs the transition in memory, then snapshots the committed state.
func (s *Store) Apply(ctx context.Context, action domain.CartAction) domain.CartState {
	state := s.Store.Apply(ctx, action)
	if err := s.persist(ctx); err != nil {
		s.reportPersistError(err)
	}
	return state
}

// persist exports the current committed state under the write lock, so
// overlapping Applys can never leave a stale snapshot as the last write.
func (s *Store) persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := domain.EncodeCartSnapshot(s.ExportState())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO state(bucket,payload) VALUES($1,$2) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
		domain.CartStorageKey, payload); err != nil {
		return fmt.Errorf("upsert %s: %w", domain.CartStorageKey, err)
	}
	return nil
}

func (s *Store) reportPersistError(err error) {
	s.mu.Lock()
	fn := s.onError
	s.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
