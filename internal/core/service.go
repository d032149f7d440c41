package core

import (
	"context"
	"sync"

	"oceankicks/pkg/domain"
)

// Operation names used for metrics and tracing.
const (
	opAddItem        = "cart.add_item"
	opRemoveItem     = "cart.remove_item"
	opUpdateQty      = "cart.update_qty"
	opClearCart      = "cart.clear"
	opSetSidebarOpen = "cart.set_sidebar"
	opReadState      = "cart.read"
)

// Service owns the cart store for one session and exposes the transition and
// selector surface the views consume. Transitions are total: no operation
// returns an error, malformed inputs are normalized, and persistence faults
// are reported through the logger while the in-memory state stays
// authoritative.
type Service struct {
	store   domain.CartStore
	clock   Clock
	logger  Logger
	metrics MetricsRecorder
	tracer  Tracer
	mu      sync.RWMutex
	closed  bool
}

// NewService constructs a service backed by the supplied store.
func NewService(store domain.CartStore, opts ...ServiceOption) *Service {
	s := &Service{
		store:   store,
		clock:   systemClock{},
		logger:  noopLogger{},
		metrics: noopMetrics{},
		tracer:  noopTracer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close shuts the service down and releases the store. Every facade obtained
// from the service fails loudly afterwards.
func (s *Service) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	return s.store.Close()
}

func (s *Service) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *Service) apply(ctx context.Context, op string, action domain.CartAction) domain.CartState {
	ctx, span := s.tracer.Start(ctx, op)
	start := s.clock.Now()
	state := s.store.Apply(ctx, action)
	s.metrics.Observe(ctx, op, true, s.clock.Now().Sub(start))
	span.End(nil)
	s.logger.Debug("cart transition applied", "op", op, "entries", len(state.Items), "itemCount", state.ItemCount())
	return state
}

func (s *Service) read(ctx context.Context) domain.CartState {
	ctx, span := s.tracer.Start(ctx, opReadState)
	start := s.clock.Now()
	state := s.store.State(ctx)
	s.metrics.Observe(ctx, opReadState, true, s.clock.Now().Sub(start))
	span.End(nil)
	return state
}

// AddItem merges the candidate into the cart (see domain.AddItem) and returns
// the committed state.
func (s *Service) AddItem(ctx context.Context, item LineItem) CartState {
	return s.apply(ctx, opAddItem, domain.AddItem{Item: item})
}

// RemoveItem deletes the entry with the exact identity; absence is a no-op.
func (s *Service) RemoveItem(ctx context.Context, target ItemIdentity) CartState {
	return s.apply(ctx, opRemoveItem, domain.RemoveItem{Target: target})
}

// UpdateQty replaces the matching entry's quantity. The quantity may be any
// shape the UI produces; it is normalized to an integer >= 1.
func (s *Service) UpdateQty(ctx context.Context, target ItemIdentity, qty any) CartState {
	return s.apply(ctx, opUpdateQty, domain.UpdateQty{Target: target, Qty: qty})
}

// ClearCart empties the cart, preserving the sidebar flag.
func (s *Service) ClearCart(ctx context.Context) CartState {
	return s.apply(ctx, opClearCart, domain.ClearCart{})
}

// SetSidebarOpen toggles the persisted sidebar visibility flag.
func (s *Service) SetSidebarOpen(ctx context.Context, open bool) CartState {
	return s.apply(ctx, opSetSidebarOpen, domain.SetSidebarOpen{Open: open})
}

// State returns the current committed snapshot.
func (s *Service) State(ctx context.Context) CartState {
	return s.read(ctx)
}

// Cart returns the facade views use to read selectors and invoke mutations.
func (s *Service) Cart() Facade {
	return Facade{svc: s}
}

// Facade is the single entry point surrounding views use. It is only valid
// within the lifetime of the service that produced it: a zero facade, or one
// whose service has been closed, panics on every call. That failure is
// intentional and loud: it indicates a wiring bug, not a runtime condition,
// and is the one place this system does not degrade gracefully.
type Facade struct {
	svc *Service
}

func (f Facade) service() *Service {
	if f.svc == nil {
		panic("cart: facade used outside an initialized service scope")
	}
	if f.svc.isClosed() {
		panic("cart: facade used after its service was closed")
	}
	return f.svc
}

// AddItem invokes the add transition.
func (f Facade) AddItem(ctx context.Context, item LineItem) CartState {
	return f.service().AddItem(ctx, item)
}

// RemoveItem invokes the remove transition.
func (f Facade) RemoveItem(ctx context.Context, target ItemIdentity) CartState {
	return f.service().RemoveItem(ctx, target)
}

// UpdateQty invokes the quantity-update transition.
func (f Facade) UpdateQty(ctx context.Context, target ItemIdentity, qty any) CartState {
	return f.service().UpdateQty(ctx, target, qty)
}

// ClearCart invokes the clear transition.
func (f Facade) ClearCart(ctx context.Context) CartState {
	return f.service().ClearCart(ctx)
}

// SetSidebarOpen invokes the sidebar-visibility transition.
func (f Facade) SetSidebarOpen(ctx context.Context, open bool) CartState {
	return f.service().SetSidebarOpen(ctx, open)
}

// State returns a copy of the full committed state.
func (f Facade) State(ctx context.Context) CartState {
	return f.service().State(ctx)
}

// Items returns the ordered line items.
func (f Facade) Items(ctx context.Context) []LineItem {
	return f.service().State(ctx).Items
}

// ItemCount returns the summed quantity across all entries.
func (f Facade) ItemCount(ctx context.Context) int {
	return f.service().State(ctx).ItemCount()
}

// Subtotal returns the summed price*qty across all entries, unrounded.
func (f Facade) Subtotal(ctx context.Context) float64 {
	return f.service().State(ctx).Subtotal()
}

// SidebarOpen returns the current visibility flag.
func (f Facade) SidebarOpen(ctx context.Context) bool {
	return f.service().State(ctx).SidebarOpen
}
