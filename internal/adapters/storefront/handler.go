// Package storefront exposes the catalog, cart, and order surface over HTTP.
// The adapter is a thin translation layer: every cart mutation goes through
// the core facade, and catalog or order failures never touch cart state.
package storefront

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"oceankicks/internal/blob"
	"oceankicks/internal/catalog"
	"oceankicks/internal/core"
	"oceankicks/pkg/domain"
)

// Handler serves the storefront API.
type Handler struct {
	Catalog catalog.Service
	Cart    core.Facade
	Assets  blob.Store
	Logger  core.Logger
}

// NewHandler constructs a storefront HTTP handler.
func NewHandler(c catalog.Service, cart core.Facade, assets blob.Store, logger core.Logger) *Handler {
	if logger == nil {
		logger = core.NopLogger()
	}
	return &Handler{Catalog: c, Cart: cart, Assets: assets, Logger: logger}
}

// cartSummary is the view-facing projection of the cart.
type cartSummary struct {
	Items       []domain.LineItem `json:"items"`
	ItemCount   int               `json:"itemCount"`
	Subtotal    float64           `json:"subtotal"`
	SidebarOpen bool              `json:"sidebarOpen"`
}

func summarize(state domain.CartState) cartSummary {
	items := state.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	return cartSummary{
		Items:       items,
		ItemCount:   state.ItemCount(),
		Subtotal:    state.Subtotal(),
		SidebarOpen: state.SidebarOpen,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")
	switch {
	case path == "/api/v1/products" && r.Method == http.MethodGet:
		h.handleListProducts(w, r)
	case strings.HasPrefix(path, "/api/v1/products/"):
		h.handleProduct(w, r, strings.TrimPrefix(path, "/api/v1/products/"))
	case path == "/api/v1/orders" && r.Method == http.MethodPost:
		h.handleSubmitOrder(w, r)
	case path == "/api/v1/cart" || strings.HasPrefix(path, "/api/v1/cart/"):
		h.handleCart(w, r, path)
	case strings.HasPrefix(path, "/assets/"):
		h.handleAsset(w, r, strings.TrimPrefix(path, "/assets/"))
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := domain.ListFilters{
		Query:    query.Get("q"),
		Category: query.Get("category"),
		Size:     query.Get("size"),
		Sort:     domain.SortOrder(query.Get("sort")),
	}
	list, err := h.Catalog.ListProducts(r.Context(), filters)
	if err != nil {
		h.catalogError(w, "list products", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": list})
}

func (h *Handler) handleProduct(w http.ResponseWriter, r *http.Request, remainder string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	segments := strings.Split(remainder, "/")
	switch len(segments) {
	case 1:
		product, err := h.Catalog.GetProduct(r.Context(), segments[0])
		if err != nil {
			h.catalogError(w, "get product", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"product": product})
	case 2:
		if segments[1] != "related" {
			http.NotFound(w, r)
			return
		}
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				limit = parsed
			}
		}
		related, err := h.Catalog.ListRelated(r.Context(), segments[0], limit)
		if err != nil {
			h.catalogError(w, "list related", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"products": related})
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "invalid order payload")
		return
	}
	confirmation, err := h.Catalog.SubmitOrder(r.Context(), order)
	if err != nil {
		var verr domain.OrderValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":      verr.Error(),
				"violations": verr.Result.Violations,
			})
			return
		}
		h.catalogError(w, "submit order", err)
		return
	}
	// A confirmed order empties the cart; the sidebar state is untouched.
	h.Cart.ClearCart(r.Context())
	writeJSON(w, http.StatusCreated, map[string]any{"order": confirmation})
}

func (h *Handler) handleCart(w http.ResponseWriter, r *http.Request, path string) {
	ctx := r.Context()
	switch {
	case path == "/api/v1/cart" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, summarize(h.Cart.State(ctx)))
	case path == "/api/v1/cart/items" && r.Method == http.MethodPost:
		var item domain.LineItem
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, "invalid line item")
			return
		}
		writeJSON(w, http.StatusOK, summarize(h.Cart.AddItem(ctx, item)))
	case path == "/api/v1/cart/items" && r.Method == http.MethodPut:
		var req struct {
			Target domain.ItemIdentity `json:"target"`
			Qty    any                 `json:"qty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid quantity update")
			return
		}
		writeJSON(w, http.StatusOK, summarize(h.Cart.UpdateQty(ctx, req.Target, req.Qty)))
	case path == "/api/v1/cart/items" && r.Method == http.MethodDelete:
		query := r.URL.Query()
		target := domain.ItemIdentity{
			ID:    query.Get("id"),
			Size:  query.Get("size"),
			Color: query.Get("color"),
		}
		writeJSON(w, http.StatusOK, summarize(h.Cart.RemoveItem(ctx, target)))
	case path == "/api/v1/cart/clear" && r.Method == http.MethodPost:
		writeJSON(w, http.StatusOK, summarize(h.Cart.ClearCart(ctx)))
	case path == "/api/v1/cart/sidebar" && r.Method == http.MethodPut:
		var req struct {
			Open bool `json:"open"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid sidebar update")
			return
		}
		writeJSON(w, http.StatusOK, summarize(h.Cart.SetSidebarOpen(ctx, req.Open)))
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) handleAsset(w http.ResponseWriter, r *http.Request, key string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.Assets == nil || key == "" {
		http.NotFound(w, r)
		return
	}
	info, rc, err := h.Assets.Get(r.Context(), key)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer rc.Close()
	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	if info.ETag != "" {
		w.Header().Set("ETag", `"`+info.ETag+`"`)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.Logger.Warn("asset stream interrupted", "key", key, "error", err)
	}
}

func (h *Handler) catalogError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	var httpErr *catalog.HTTPError
	if errors.As(err, &httpErr) {
		h.Logger.Warn("catalog backend error", "op", op, "status", httpErr.Status)
		writeError(w, http.StatusBadGateway, "catalog backend unavailable")
		return
	}
	h.Logger.Error("catalog call failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
