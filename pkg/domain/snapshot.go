package domain

import "encoding/json"

// CartStorageKey is the single durable slot the cart persists under. The
// versioned suffix lets a future payload revision hydrate side by side.
const CartStorageKey = "oceanKicks.cart.v1"

// InitialCartState returns the empty state a fresh session starts from and
// that hydration degrades to.
func InitialCartState() CartState {
	return CartState{Items: []LineItem{}}
}

// EncodeCartSnapshot serialises the full state for the durable slot. The
// payload is always a total snapshot, so concurrent last-write-wins is safe.
func EncodeCartSnapshot(state CartState) ([]byte, error) {
	return json.Marshal(state)
}

// DecodeCartSnapshot hydrates persisted state. It never fails: absent
// payloads, invalid JSON, a non-object value, or an items field that is not an
// array all degrade to the empty initial state, and per-item quantities are
// re-normalized to tolerate hand-edited storage.
func DecodeCartSnapshot(payload []byte) CartState {
	if len(payload) == 0 {
		return InitialCartState()
	}
	var raw struct {
		Items       json.RawMessage `json:"items"`
		SidebarOpen bool            `json:"sidebarOpen"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return InitialCartState()
	}
	if len(raw.Items) == 0 {
		return InitialCartState()
	}
	var items []LineItem
	if err := json.Unmarshal(raw.Items, &items); err != nil || items == nil {
		// JSON null decodes without error but is not an array either.
		return InitialCartState()
	}
	for i := range items {
		items[i].Qty = clampQty(items[i].Qty)
	}
	return CartState{Items: items, SidebarOpen: raw.SidebarOpen}
}
