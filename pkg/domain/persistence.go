package domain

import "context"

// CartStore owns the committed cart state and its durable snapshot. Apply
// runs one transition against the current state and returns the committed
// result; transitions are total, so Apply never fails. Implementations that
// persist snapshots do so after the in-memory commit and swallow write
// failures: the in-memory state stays authoritative and a later transition
// retries the snapshot.
type CartStore interface {
	Apply(ctx context.Context, action CartAction) CartState
	State(ctx context.Context) CartState
	Close() error
}
