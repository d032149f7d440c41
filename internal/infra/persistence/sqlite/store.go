// Package sqlite provides the default durable cart backend. The full cart
// snapshot is written to a single-row state table after every committed
// transition, keyed by the versioned storage slot.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"oceankicks/internal/infra/persistence/memory"
	"oceankicks/pkg/domain"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.CartStore = (*Store)(nil)

// Store persists the cart snapshot to SQLite as a JSON blob.
type Store struct {
	*memory.Store
	db      *sql.DB
	mu      sync.Mutex
	path    string
	onError func(error)
}

// NewStore opens (creating if necessary) the SQLite slot at path and hydrates
// the in-memory store from any existing snapshot. A malformed stored payload
// degrades to the empty initial state; infrastructure failures (unwritable
// path, corrupt database file) are real errors.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "oceankicks.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}
	mem := memory.NewStore()
	s := &Store{Store: mem, db: db, path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE bucket = ?`, domain.CartStorageKey).Scan(&payload)
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
// Snapshot failures never fail the transition: each write carries the full
// latest state, so the next successful write repairs the slot.
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
		`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
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

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
