// Package memory provides the in-memory cart store that every durable backend
// builds upon. Transitions run through the domain reducer under a single
// mutex; persistence layers embed the store and snapshot its committed state.
package memory

import (
	"context"
	"sync"

	"oceankicks/pkg/domain"
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.CartStore = (*Store)(nil)

// Store holds the authoritative cart state for one session.
type Store struct {
	mu    sync.RWMutex
	state domain.CartState
}

// NewStore constructs an empty in-memory cart store.
func NewStore() *Store {
	return &Store{state: domain.InitialCartState()}
}

// Apply runs one transition atomically and returns the committed state.
// The reducer is total, so Apply cannot fail.
func (s *Store) Apply(_ context.Context, action domain.CartAction) domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.ReduceCart(s.state, action)
	return s.state.Clone()
}

// State returns a copy of the current committed state.
func (s *Store) State(_ context.Context) domain.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// ExportState returns the committed state for snapshot persistence.
func (s *Store) ExportState() domain.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// ImportState replaces the committed state, re-normalizing quantities so a
// corrupted snapshot can never violate the qty >= 1 invariant.
func (s *Store) ImportState(state domain.CartState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := state.Clone()
	if next.Items == nil {
		next.Items = []domain.LineItem{}
	}
	for i := range next.Items {
		if next.Items[i].Qty < 1 {
			next.Items[i].Qty = 1
		}
	}
	s.state = next
}

// Close releases nothing for the in-memory store.
func (s *Store) Close() error { return nil }
