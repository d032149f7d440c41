// Package catalog supplies the product and order collaborator behind the
// storefront. Two implementations exist: Mock serves the embedded catalog for
// local development, Client proxies a real backend over HTTP. Cart state is
// never touched from here; a failed catalog call leaves the cart as it was.
package catalog

import (
	"context"
	"os"
	"strconv"

	"oceankicks/pkg/domain"
)

// Service is the catalog and order surface the storefront consumes.
type Service interface {
	ListProducts(ctx context.Context, filters domain.ListFilters) ([]domain.ProductSummary, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	ListRelated(ctx context.Context, id string, limit int) ([]domain.ProductSummary, error)
	SubmitOrder(ctx context.Context, order domain.OrderRequest) (domain.OrderConfirmation, error)
}

// Open selects an implementation from the environment.
//
//	OCEANKICKS_API_BASE_URL: backend base URL; empty means no backend
//	OCEANKICKS_USE_MOCKS: force the embedded catalog (default: mock when
//	  the base URL is empty)
func Open() Service {
	baseURL := os.Getenv("OCEANKICKS_API_BASE_URL")
	useMocks := baseURL == ""
	if raw := os.Getenv("OCEANKICKS_USE_MOCKS"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			useMocks = parsed
		}
	}
	if useMocks || baseURL == "" {
		return NewMock()
	}
	return NewClient(baseURL, nil)
}
