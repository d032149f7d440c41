package domain

import (
	"errors"
	"time"
)

// Product is the full catalog record backing the product-detail view.
type Product struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Brand          string         `json:"brand"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Price          float64        `json:"price"`
	Currency       string         `json:"currency"`
	Sizes          []string       `json:"sizes"`
	Colors         []string       `json:"colors"`
	StockByVariant map[string]int `json:"stockByVariant"`
	Images         []string       `json:"images"`
	Tags           []string       `json:"tags"`
}

// ProductSummary is the brief entry the catalog grid renders.
type ProductSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Size     string  `json:"size,omitempty"`
	Tag      string  `json:"tag,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// Summary projects the catalog-grid fields out of a full product record.
func (p Product) Summary() ProductSummary {
	s := ProductSummary{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
	}
	if len(p.Sizes) > 0 {
		s.Size = p.Sizes[0]
	}
	if len(p.Tags) > 0 {
		s.Tag = p.Tags[0]
	}
	if len(p.Images) > 0 {
		s.Image = p.Images[0]
	}
	return s
}

// SortOrder enumerates the catalog sort modes.
type SortOrder string

const (
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

// ListFilters narrows and orders the catalog listing. Zero values mean "no
// filter"; the literal "All" is treated the same way for category and size.
type ListFilters struct {
	Query    string
	Category string
	Size     string
	Sort     SortOrder
}

// ErrNotFound is returned when a product id has no catalog record.
var ErrNotFound = errors.New("product not found")

// DeliveryMethod enumerates the checkout delivery options.
type DeliveryMethod string

const (
	DeliveryExpress  DeliveryMethod = "express"
	DeliveryStandard DeliveryMethod = "standard"
	DeliveryPickup   DeliveryMethod = "pickup"
)

// EstimatedDays returns the delivery estimate attached to a confirmation.
func (d DeliveryMethod) EstimatedDays() int {
	switch d {
	case DeliveryExpress:
		return 2
	case DeliveryStandard:
		return 5
	default:
		return 0
	}
}

// OrderRequest is the checkout payload: customer details plus the cart's line
// items at submission time.
type OrderRequest struct {
	Name     string         `json:"name"`
	Phone    string         `json:"phone"`
	Address  string         `json:"address"`
	Delivery DeliveryMethod `json:"delivery"`
	Items    []LineItem     `json:"items"`
}

// OrderConfirmation is returned when an order is accepted.
type OrderConfirmation struct {
	OrderID               string    `json:"orderId"`
	Status                string    `json:"status"`
	EstimatedDeliveryDays int       `json:"estimatedDeliveryDays"`
	PlacedAt              time.Time `json:"placedAt"`
}

// OrderStatusConfirmed is the only status the storefront issues today.
const OrderStatusConfirmed = "confirmed"
