package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oceankicks/pkg/domain"
)

func newBackend(t *testing.T) (*httptest.Server, *Mock) {
	t.Helper()
	mock := NewMock()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		list, _ := mock.ListProducts(r.Context(), domain.ListFilters{
			Query:    r.URL.Query().Get("q"),
			Category: r.URL.Query().Get("category"),
			Size:     r.URL.Query().Get("size"),
			Sort:     domain.SortOrder(r.URL.Query().Get("sort")),
		})
		json.NewEncoder(w).Encode(list)
	})
	mux.HandleFunc("GET /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		product, err := mock.GetProduct(r.Context(), r.PathValue("id"))
		if err != nil {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(product)
	})
	mux.HandleFunc("GET /products/{id}/related", func(w http.ResponseWriter, r *http.Request) {
		related, _ := mock.ListRelated(r.Context(), r.PathValue("id"), 4)
		json.NewEncoder(w).Encode(related)
	})
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		var order domain.OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		confirmation, err := mock.SubmitOrder(r.Context(), order)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(confirmation)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, mock
}

func TestClientListProducts(t *testing.T) {
	server, _ := newBackend(t)
	client := NewClient(server.URL, server.Client())

	list, err := client.ListProducts(context.Background(), domain.ListFilters{Category: "Running", Sort: domain.SortPriceDesc})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Aqua Sprint" {
		t.Fatalf("unexpected listing: %+v", list)
	}
}

func TestClientGetProduct(t *testing.T) {
	server, _ := newBackend(t)
	client := NewClient(server.URL+"/", server.Client())

	product, err := client.GetProduct(context.Background(), "7")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if product.Name != "Tide High" || len(product.Sizes) != 2 {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestClientGetProductNotFound(t *testing.T) {
	server, _ := newBackend(t)
	client := NewClient(server.URL, server.Client())

	_, err := client.GetProduct(context.Background(), "999")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientListRelated(t *testing.T) {
	server, _ := newBackend(t)
	client := NewClient(server.URL, server.Client())

	related, err := client.ListRelated(context.Background(), "6", 4)
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) != 4 {
		t.Fatalf("expected full rail, got %+v", related)
	}
}

func TestClientSubmitOrder(t *testing.T) {
	server, _ := newBackend(t)
	client := NewClient(server.URL, server.Client())

	confirmation, err := client.SubmitOrder(context.Background(), domain.OrderRequest{
		Name: "Alex Marin", Phone: "+1-555-0101", Address: "1 Boardwalk Ave",
		Delivery: domain.DeliveryStandard,
		Items:    []domain.LineItem{{ID: "2", Name: "Harbor Court", Price: 89, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if confirmation.Status != domain.OrderStatusConfirmed || confirmation.EstimatedDeliveryDays != 5 {
		t.Fatalf("confirmation: %+v", confirmation)
	}
}

func TestClientSubmitOrderSurfacesHTTPError(t *testing.T) {
	server, _ := newBackend(t)
	client := NewClient(server.URL, server.Client())

	_, err := client.SubmitOrder(context.Background(), domain.OrderRequest{})
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusBadRequest || httpErr.Body == "" {
		t.Fatalf("unexpected HTTPError: %+v", httpErr)
	}
}
