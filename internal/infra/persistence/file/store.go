// Package file provides a JSON-file-backed cart store: one durable slot per
// file, written as a total snapshot after every committed transition. It is
// the closest server-side analog to browser local storage.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"oceankicks/internal/infra/persistence/memory"
	"oceankicks/pkg/domain"
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.CartStore = (*Store)(nil)

// Store persists the cart snapshot to a single JSON file.
type Store struct {
	*memory.Store
	mu      sync.Mutex
	path    string
	onError func(error)
}

// NewStore opens a file-backed store. A missing or malformed file hydrates to
// the empty initial state. Any other read failure (path is a directory,
// permission denied) is misconfiguration and reported as a real error.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "oceankicks-cart.json"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	mem := memory.NewStore()
	payload, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied configuration
	switch {
	case err == nil:
		mem.ImportState(domain.DecodeCartSnapshot(payload))
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return &Store{Store: mem, path: path}, nil
}

// OnPersistError registers a callback invoked when a snapshot write fails.
// Write failures are otherwise swallowed: the in-memory state stays
// authoritative for the session.
func (s *Store) OnPersistError(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = fn
}

// Apply runs the transition in memory, then snapshots the committed state to
// the file. The snapshot is best-effort and never fails the transition.
func (s *Store) Apply(ctx context.Context, action domain.CartAction) domain.CartState {
	state := s.Store.Apply(ctx, action)
	if err := s.persist(); err != nil {
		s.reportPersistError(err)
	}
	return state
}

// persist exports the current committed state under the write lock, so
// overlapping Applys can never leave a stale snapshot as the last write.
func (s *Store) persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := domain.EncodeCartSnapshot(s.ExportState())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
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

// Path returns the configured snapshot file path.
func (s *Store) Path() string { return s.path }

// Close is a no-op; the file handle is not held open between snapshots.
func (s *Store) Close() error { return nil }
