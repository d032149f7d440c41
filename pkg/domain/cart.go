// Package domain defines the cart state machine, catalog and order value
// types, and the persistence and validation primitives used by oceankicks.
package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// LineItem is one distinct purchasable configuration held in the cart.
// Size and Color are optional variant discriminators; the empty string means
// "not applicable", which is the same sentinel the identity rule uses for
// absence.
type LineItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
	Size  string  `json:"size,omitempty"`
	Color string  `json:"color,omitempty"`
}

// ItemIdentity is the (id, size, color) tuple that governs merge-on-add and
// lookup for removal and quantity updates. It is a comparable value; two
// identities are the same cart entry iff they compare equal.
type ItemIdentity struct {
	ID    string `json:"id"`
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Identity returns the merge/lookup key for the line item.
func (li LineItem) Identity() ItemIdentity {
	return ItemIdentity{ID: li.ID, Size: li.Size, Color: li.Color}
}

// NormalizeIdentity derives the identity tuple from an arbitrary candidate
// item. Missing variant fields normalize to the empty-string sentinel.
func NormalizeIdentity(item LineItem) ItemIdentity {
	return item.Identity()
}

// UnmarshalJSON accepts line items from untrusted sources (UI payloads,
// possibly hand-edited persisted state). Identifier and variant fields given
// as JSON numbers are coerced to strings, prices tolerate string encodings,
// and quantities pass through NormalizeQty so a decoded item always satisfies
// qty >= 1.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID    any    `json:"id"`
		Name  string `json:"name"`
		Price any    `json:"price"`
		Qty   any    `json:"qty"`
		Size  any    `json:"size"`
		Color any    `json:"color"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	li.ID = coerceString(aux.ID)
	li.Name = aux.Name
	li.Price = coercePrice(aux.Price)
	li.Qty = NormalizeQty(aux.Qty)
	li.Size = coerceString(aux.Size)
	li.Color = coerceString(aux.Color)
	return nil
}

// UnmarshalJSON applies the same field coercion rules as LineItem so that
// identity descriptors sent with numeric sizes still match their entries.
func (id *ItemIdentity) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID    any `json:"id"`
		Size  any `json:"size"`
		Color any `json:"color"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	id.ID = coerceString(aux.ID)
	id.Size = coerceString(aux.Size)
	id.Color = coerceString(aux.Color)
	return nil
}

// NormalizeQty is the single choke point for quantity coercion. Any input
// shape collapses to an integer >= 1: numeric strings are parsed, fractions
// truncate toward zero, and nil, non-numeric, non-finite, zero, or negative
// values all become 1. The reducer being total depends on this never failing.
func NormalizeQty(v any) int {
	switch q := v.(type) {
	case nil:
		return 1
	case int:
		return clampQty(q)
	case int32:
		return clampQty(int(q))
	case int64:
		return clampQty(int(q))
	case float32:
		return normalizeFloatQty(float64(q))
	case float64:
		return normalizeFloatQty(q)
	case json.Number:
		if f, err := q.Float64(); err == nil {
			return normalizeFloatQty(f)
		}
		return 1
	case string:
		if f, err := strconv.ParseFloat(q, 64); err == nil {
			return normalizeFloatQty(f)
		}
		return 1
	default:
		return 1
	}
}

func normalizeFloatQty(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 1
	}
	return clampQty(int(f))
}

func clampQty(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func coercePrice(v any) float64 {
	switch p := v.(type) {
	case float64:
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return 0
		}
		return p
	case json.Number:
		if f, err := p.Float64(); err == nil {
			return coercePrice(f)
		}
		return 0
	case string:
		if f, err := strconv.ParseFloat(p, 64); err == nil {
			return coercePrice(f)
		}
		return 0
	default:
		return 0
	}
}

// CartState is the immutable cart snapshot: the ordered line items plus the
// sidebar visibility flag. The flag is UI state, not business state, but it
// participates in the same atomic transitions and the same persisted payload.
type CartState struct {
	Items       []LineItem `json:"items"`
	SidebarOpen bool       `json:"sidebarOpen"`
}

// Clone returns a deep copy so callers can never mutate committed state.
func (s CartState) Clone() CartState {
	cp := s
	cp.Items = append([]LineItem(nil), s.Items...)
	return cp
}

// ItemCount sums quantities across all line items.
func (s CartState) ItemCount() int {
	total := 0
	for _, it := range s.Items {
		total += it.Qty
	}
	return total
}

// Subtotal sums price times quantity across all line items. The value is kept
// unrounded; rounding is a display concern.
func (s CartState) Subtotal() float64 {
	total := 0.0
	for _, it := range s.Items {
		total += it.Price * float64(it.Qty)
	}
	return total
}

// CartAction is the closed set of cart transitions. The reducer treats every
// variant as a total function: no input shape produces an error.
type CartAction interface {
	isCartAction()
}

// AddItem merges the candidate into an existing entry with the same identity,
// or appends it. Adding always opens the sidebar so the user sees the result.
type AddItem struct {
	Item LineItem
}

// RemoveItem deletes the entry matching the target identity. Absence is a
// no-op, not an error.
type RemoveItem struct {
	Target ItemIdentity
}

// UpdateQty replaces the matching entry's quantity. Qty may be any shape the
// UI produces; it is pushed through NormalizeQty.
type UpdateQty struct {
	Target ItemIdentity
	Qty    any
}

// ClearCart empties the item list, leaving the sidebar flag untouched.
type ClearCart struct{}

// SetSidebarOpen toggles the sidebar visibility flag only.
type SetSidebarOpen struct {
	Open bool
}

func (AddItem) isCartAction()        {}
func (RemoveItem) isCartAction()     {}
func (UpdateQty) isCartAction()      {}
func (ClearCart) isCartAction()      {}
func (SetSidebarOpen) isCartAction() {}

// ReduceCart computes the next cart state for an action. It is pure and
// deterministic, never mutates its input, and never fails: malformed numeric
// inputs are coerced rather than rejected, and a nil or unknown action leaves
// the state unchanged.
func ReduceCart(state CartState, action CartAction) CartState {
	switch a := action.(type) {
	case AddItem:
		next := state.Clone()
		next.SidebarOpen = true
		incoming := a.Item
		qtyToAdd := clampQty(incoming.Qty)
		target := incoming.Identity()
		for i := range next.Items {
			if next.Items[i].Identity() == target {
				// Merge only touches quantity; price, name, and variant
				// fields of the existing entry are retained.
				next.Items[i].Qty += qtyToAdd
				return next
			}
		}
		incoming.Qty = qtyToAdd
		next.Items = append(next.Items, incoming)
		return next

	case RemoveItem:
		next := state.Clone()
		items := next.Items[:0]
		for _, it := range next.Items {
			if it.Identity() != a.Target {
				items = append(items, it)
			}
		}
		next.Items = items
		return next

	case UpdateQty:
		next := state.Clone()
		qty := NormalizeQty(a.Qty)
		for i := range next.Items {
			if next.Items[i].Identity() == a.Target {
				next.Items[i].Qty = qty
			}
		}
		return next

	case ClearCart:
		next := state.Clone()
		next.Items = []LineItem{}
		return next

	case SetSidebarOpen:
		next := state.Clone()
		next.SidebarOpen = a.Open
		return next

	default:
		return state.Clone()
	}
}
