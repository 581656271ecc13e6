// Package northwind is the HTTP client for the backend Northwind APIs: the
// order/product API and the inventory queue worker. It is deliberately thin;
// response bodies pass through to the caller undigested.
package northwind

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/cf-northwind/admin-dashboard/internal/api/metrics"
	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
	"github.com/cf-northwind/admin-dashboard/internal/core/ports"
)

const requestTimeout = 10 * time.Second

// randCeiling bounds the cache-busting rand parameter to [0, 1000000].
const randCeiling = 1000001

type Client struct {
	apiBase   string
	queueBase string
	http      *http.Client
	logger    zerolog.Logger
}

// NewClient builds a client for the given API and queue base URLs. httpClient
// may be nil, in which case a default with a request timeout is used.
func NewClient(apiBase, queueBase string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		apiBase:   apiBase,
		queueBase: queueBase,
		http:      httpClient,
		logger:    logger,
	}
}

// ListOrders fetches one page of the orders list. The resolved role secret
// travels in the "token" header. Non-2xx responses come back as
// *ports.StatusError so the caller can surface the status line verbatim.
func (c *Client) ListOrders(ctx context.Context, q ports.ListOrdersQuery) (*ports.OrdersPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	if q.RequestCount {
		params.Set("count", "true")
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	params.Set("rand", strconv.Itoa(rand.Intn(randCeiling)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+"/api/orders?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build orders request: %w", err)
	}
	req.Header.Set("token", q.Token)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues("orders", "transport_error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	metrics.BackendRequestDuration.WithLabelValues("orders").Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendRequestsTotal.WithLabelValues("orders", "status_error").Inc()
		return nil, &ports.StatusError{Code: resp.StatusCode, StatusLine: resp.Status}
	}
	metrics.BackendRequestsTotal.WithLabelValues("orders", "ok").Inc()

	var page ports.OrdersPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode orders response: %w", err)
	}
	return &page, nil
}

// GetProduct fetches a single product by id, no auth header. The body is
// decoded regardless of HTTP status: the backend encodes product-not-found
// as an absent product field, not as an error status.
func (c *Client) GetProduct(ctx context.Context, id string) (*ports.ProductPage, error) {
	params := url.Values{}
	params.Set("Id", id)
	params.Set("rand", strconv.Itoa(rand.Intn(randCeiling)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+"/api/product?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build product request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues("product", "transport_error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	metrics.BackendRequestDuration.WithLabelValues("product").Observe(time.Since(start).Seconds())
	metrics.BackendRequestsTotal.WithLabelValues("product", "ok").Inc()

	var page ports.ProductPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode product response: %w", err)
	}
	return &page, nil
}

// PostInventoryUpdate delivers one inventory update to the queue worker root.
// Callers treat the outcome as advisory; there is no retry here or above.
func (c *Client) PostInventoryUpdate(ctx context.Context, update ports.InventoryUpdate) error {
	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("encode inventory update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queueBase, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build inventory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.InventoryPostsTotal.WithLabelValues("transport_error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.InventoryPostsTotal.WithLabelValues("status_error").Inc()
		return &ports.StatusError{Code: resp.StatusCode, StatusLine: resp.Status}
	}
	metrics.InventoryPostsTotal.WithLabelValues("ok").Inc()

	// The response body shape is unused beyond logging.
	var ack json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&ack); err == nil {
		c.logger.Debug().RawJSON("response", ack).Msg("inventory queue ack")
	}
	return nil
}
