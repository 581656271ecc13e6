package ports

import (
	"context"
	"fmt"
)

// ListOrdersQuery is the backend-facing orders request, built by the orders
// service from an OrdersQuery after role resolution.
type ListOrdersQuery struct {
	Page int
	// RequestCount asks the backend for a fresh page count (count=true).
	RequestCount bool
	Search       string
	// Token is the resolved secret, sent as the "token" request header.
	Token string
}

// StatusError reports a non-2xx backend response. StatusLine is the full
// HTTP status line text, e.g. "500 Internal Server Error".
type StatusError struct {
	Code       int
	StatusLine string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %s", e.StatusLine)
}

// BackendClient is the HTTP client port for the Northwind order and product
// APIs. ListOrders returns a *StatusError on non-2xx; GetProduct decodes the
// body regardless of status, matching the backend's convention of encoding
// product-not-found in the body rather than the status code.
type BackendClient interface {
	ListOrders(ctx context.Context, q ListOrdersQuery) (*OrdersPage, error)
	GetProduct(ctx context.Context, id string) (*ProductPage, error)
}

// QueueClient delivers a single inventory update to the queue endpoint.
type QueueClient interface {
	PostInventoryUpdate(ctx context.Context, update InventoryUpdate) error
}
