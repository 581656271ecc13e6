package ports

import (
	"context"
	"encoding/json"

	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
)

// OrdersQuery carries the decoded view state the orders loader runs with.
type OrdersQuery struct {
	// Page is the 1-based page number. Parsing defaults it to 1.
	Page int
	// Count is the page count the client already knows, 0 when absent.
	// A positive value suppresses the count=true request to the backend.
	Count int
	// Search is the free-text filter, empty when absent.
	Search string
	// Token is the role key ("admin", "user", "invalid"). Empty means admin.
	Token string
}

// OrdersPage is the complete loader result for the orders page. It mirrors
// the backend response body verbatim on success; on a soft failure only
// Error is set (with Pages forced to 1) and no other field is populated.
type OrdersPage struct {
	Orders []domain.Order  `json:"orders"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
	Stats  json.RawMessage `json:"stats,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// OrdersService is the orders page loader: one call per navigation, result
// replaced wholesale each time. Soft failures (unknown role, non-2xx backend
// response) are reported inside the result, never as a Go error.
type OrdersService interface {
	Load(ctx context.Context, q OrdersQuery) OrdersPage
}
