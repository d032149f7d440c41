package catalog

import (
	"context"
	"crypto/rand"
	"sort"
	"strings"
	"time"

	"oceankicks/pkg/domain"
)

// Mock serves the embedded OceanKicks catalog. It is the default backend for
// local development and tests and validates orders with the built-in rules
// engine before confirming them.
type Mock struct {
	products []domain.Product
	rules    *domain.OrderRulesEngine
	now      func() time.Time
}

// NewMock constructs a catalog over the embedded product set.
func NewMock() *Mock {
	return &Mock{
		products: storefrontProducts(),
		rules:    domain.NewOrderRulesEngine(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ListProducts returns summaries matching the filters, sorted by price.
func (m *Mock) ListProducts(_ context.Context, filters domain.ListFilters) ([]domain.ProductSummary, error) {
	list := make([]domain.ProductSummary, 0, len(m.products))
	for _, p := range m.products {
		list = append(list, p.Summary())
	}

	if query := strings.ToLower(strings.TrimSpace(filters.Query)); query != "" {
		list = filterSummaries(list, func(s domain.ProductSummary) bool {
			return strings.Contains(strings.ToLower(s.Name), query)
		})
	}
	if filters.Category != "" && filters.Category != "All" {
		list = filterSummaries(list, func(s domain.ProductSummary) bool {
			return s.Category == filters.Category
		})
	}
	if filters.Size != "" && filters.Size != "All" {
		list = filterSummaries(list, func(s domain.ProductSummary) bool {
			return s.Size == filters.Size
		})
	}

	desc := filters.Sort == domain.SortPriceDesc
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return list[i].Price > list[j].Price
		}
		return list[i].Price < list[j].Price
	})
	return list, nil
}

// GetProduct returns the full record for the id or domain.ErrNotFound.
func (m *Mock) GetProduct(_ context.Context, id string) (domain.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

// ListRelated returns up to limit products sharing the subject's category.
// When the category yields fewer than min(limit, 3) entries, the shortfall is
// filled with other products so the rail never looks empty. An unknown id
// yields an empty list, not an error.
func (m *Mock) ListRelated(_ context.Context, id string, limit int) ([]domain.ProductSummary, error) {
	if limit <= 0 {
		limit = 4
	}
	var subject *domain.Product
	for i := range m.products {
		if m.products[i].ID == id {
			subject = &m.products[i]
			break
		}
	}
	if subject == nil {
		return []domain.ProductSummary{}, nil
	}

	var related []domain.ProductSummary
	picked := map[string]bool{id: true}
	for _, p := range m.products {
		if len(related) == limit {
			break
		}
		if p.ID != id && p.Category == subject.Category {
			related = append(related, p.Summary())
			picked[p.ID] = true
		}
	}
	minimum := limit
	if minimum > 3 {
		minimum = 3
	}
	if len(related) >= minimum {
		return related, nil
	}
	for _, p := range m.products {
		if len(related) == limit {
			break
		}
		if !picked[p.ID] {
			related = append(related, p.Summary())
			picked[p.ID] = true
		}
	}
	return related, nil
}

// SubmitOrder validates the payload and returns a confirmation. Blocking rule
// violations reject the order with a domain.OrderValidationError.
func (m *Mock) SubmitOrder(ctx context.Context, order domain.OrderRequest) (domain.OrderConfirmation, error) {
	result := m.rules.Evaluate(ctx, order)
	if result.HasBlocking() {
		return domain.OrderConfirmation{}, domain.OrderValidationError{Result: result}
	}
	return domain.OrderConfirmation{
		OrderID:               newOrderID(),
		Status:                domain.OrderStatusConfirmed,
		EstimatedDeliveryDays: order.Delivery.EstimatedDays(),
		PlacedAt:              m.now(),
	}, nil
}

func filterSummaries(in []domain.ProductSummary, keep func(domain.ProductSummary) bool) []domain.ProductSummary {
	out := in[:0]
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderID mints an "OK-" prefixed id with six characters of entropy.
func newOrderID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; a zeroed id is
		// still well formed if it somehow does.
		for i := range buf {
			buf[i] = 0
		}
	}
	out := make([]byte, 0, 9)
	out = append(out, 'O', 'K', '-')
	for _, b := range buf {
		out = append(out, orderIDAlphabet[int(b)%len(orderIDAlphabet)])
	}
	return string(out)
}
