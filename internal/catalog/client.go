package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"oceankicks/pkg/domain"
)

// HTTPError carries a non-2xx backend response.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("catalog backend returned HTTP %d: %s", e.Status, e.Body)
}

// Client talks to a real catalog backend. All methods honor the request
// context and map 404 responses to domain.ErrNotFound.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a client for the backend at baseURL. A nil httpClient
// uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// ListProducts fetches the catalog grid entries.
func (c *Client) ListProducts(ctx context.Context, filters domain.ListFilters) ([]domain.ProductSummary, error) {
	query := url.Values{}
	if filters.Query != "" {
		query.Set("q", filters.Query)
	}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}
	if filters.Size != "" {
		query.Set("size", filters.Size)
	}
	if filters.Sort != "" {
		query.Set("sort", string(filters.Sort))
	}
	path := "/products"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var list []domain.ProductSummary
	if err := c.getJSON(ctx, path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetProduct fetches a full product record.
func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(id), &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// ListRelated fetches the related-products rail for a product.
func (c *Client) ListRelated(ctx context.Context, id string, limit int) ([]domain.ProductSummary, error) {
	path := "/products/" + url.PathEscape(id) + "/related"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var list []domain.ProductSummary
	if err := c.getJSON(ctx, path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SubmitOrder posts the checkout payload to the backend.
func (c *Client) SubmitOrder(ctx context.Context, order domain.OrderRequest) (domain.OrderConfirmation, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("encode order: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return domain.OrderConfirmation{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var confirmation domain.OrderConfirmation
	if err := c.do(req, &confirmation); err != nil {
		return domain.OrderConfirmation{}, err
	}
	return confirmation, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		httpErr := &HTTPError{Status: res.StatusCode, Body: strings.TrimSpace(string(body))}
		if res.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, httpErr.Error())
		}
		return httpErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
