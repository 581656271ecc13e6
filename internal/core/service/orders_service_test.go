package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
	"github.com/cf-northwind/admin-dashboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub backend client
// ---------------------------------------------------------------------------

type stubBackendClient struct {
	listFn    func(ctx context.Context, q ports.ListOrdersQuery) (*ports.OrdersPage, error)
	getFn     func(ctx context.Context, id string) (*ports.ProductPage, error)
	listCalls int
	lastQuery ports.ListOrdersQuery
}

func (c *stubBackendClient) ListOrders(ctx context.Context, q ports.ListOrdersQuery) (*ports.OrdersPage, error) {
	c.listCalls++
	c.lastQuery = q
	return c.listFn(ctx, q)
}

func (c *stubBackendClient) GetProduct(ctx context.Context, id string) (*ports.ProductPage, error) {
	return c.getFn(ctx, id)
}

func testTokens() map[domain.Role]string {
	return map[domain.Role]string{
		domain.RoleAdmin:   "secret-admin",
		domain.RoleUser:    "secret-user",
		domain.RoleInvalid: "secret-invalid",
	}
}

func TestOrdersService_UnknownRole_NoNetworkCall(t *testing.T) {
	client := &stubBackendClient{
		listFn: func(context.Context, ports.ListOrdersQuery) (*ports.OrdersPage, error) {
			t.Fatalf("backend should not be called")
			return nil, nil
		},
	}
	svc := NewOrdersService(client, testTokens(), zerolog.Nop())

	result := svc.Load(context.Background(), ports.OrdersQuery{Page: 1, Token: "superadmin"})

	if result.Error != "Unauthorized: Token not provided or invalid" {
		t.Fatalf("unexpected error message: %q", result.Error)
	}
	if len(result.Orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(result.Orders))
	}
	if result.Pages != 1 {
		t.Fatalf("expected pages=1, got %d", result.Pages)
	}
	if client.listCalls != 0 {
		t.Fatalf("expected 0 backend calls, got %d", client.listCalls)
	}
}

func TestOrdersService_EmptySecret_NoNetworkCall(t *testing.T) {
	tokens := testTokens()
	tokens[domain.RoleUser] = ""
	client := &stubBackendClient{
		listFn: func(context.Context, ports.ListOrdersQuery) (*ports.OrdersPage, error) {
			t.Fatalf("backend should not be called")
			return nil, nil
		},
	}
	svc := NewOrdersService(client, tokens, zerolog.Nop())

	result := svc.Load(context.Background(), ports.OrdersQuery{Page: 1, Token: "user"})

	if result.Error != domain.MsgUnauthorizedToken {
		t.Fatalf("unexpected error message: %q", result.Error)
	}
	if client.listCalls != 0 {
		t.Fatalf("expected 0 backend calls, got %d", client.listCalls)
	}
}

func TestOrdersService_EmptyToken_DefaultsToAdmin(t *testing.T) {
	client := &stubBackendClient{
		listFn: func(_ context.Context, q ports.ListOrdersQuery) (*ports.OrdersPage, error) {
			return &ports.OrdersPage{Page: 1, Pages: 3}, nil
		},
	}
	svc := NewOrdersService(client, testTokens(), zerolog.Nop())

	result := svc.Load(context.Background(), ports.OrdersQuery{Page: 1})

	if result.Error != "" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
	if client.lastQuery.Token != "secret-admin" {
		t.Fatalf("expected admin secret, got %q", client.lastQuery.Token)
	}
}

func TestOrdersService_CountSuppression(t *testing.T) {
	client := &stubBackendClient{
		listFn: func(context.Context, ports.ListOrdersQuery) (*ports.OrdersPage, error) {
			return &ports.OrdersPage{Page: 1, Pages: 1}, nil
		},
	}
	svc := NewOrdersService(client, testTokens(), zerolog.Nop())

	// No known count: request a fresh one.
	svc.Load(context.Background(), ports.OrdersQuery{Page: 1, Token: "admin"})
	if !client.lastQuery.RequestCount {
		t.Fatalf("expected count request when count unknown")
	}

	// Client already knows a positive count: skip the count request.
	svc.Load(context.Background(), ports.OrdersQuery{Page: 2, Count: 17, Token: "admin"})
	if client.lastQuery.RequestCount {
		t.Fatalf("expected count request suppressed for count=17")
	}
	if client.lastQuery.Page != 2 {
		t.Fatalf("expected page passed through, got %d", client.lastQuery.Page)
	}
}

func TestOrdersService_SearchPassthrough(t *testing.T) {
	client := &stubBackendClient{
		listFn: func(context.Context, ports.ListOrdersQuery) (*ports.OrdersPage, error) {
			return &ports.OrdersPage{Page: 1, Pages: 1}, nil
		},
	}
	svc := NewOrdersService(client, testTokens(), zerolog.Nop())

	svc.Load(context.Background(), ports.OrdersQuery{Page: 1, Search: "horn", Token: "user"})

	if client.lastQuery.Search != "horn" {
		t.Fatalf("expected search passed through, got %q", client.lastQuery.Search)
	}
	if client.lastQuery.Token != "secret-user" {
		t.Fatalf("expected user secret, got %q", client.lastQuery.Token)
	}
}

func TestOrdersService_BackendStatusError(t *testing.T) {
	client := &stubBackendClient{
		listFn: func(context.Context, ports.ListOrdersQuery) (*ports.OrdersPage, error) {
			return nil, &ports.StatusError{Code: 500, StatusLine: "500 Internal Server Error"}
		},
	}
	svc := NewOrdersService(client, testTokens(), zerolog.Nop())

	result := svc.Load(context.Background(), ports.OrdersQuery{Page: 1, Token: "admin"})

	if result.Error != "Error: 500 Internal Server Error" {
		t.Fatalf("unexpected error message: %q", result.Error)
	}
	if len(result.Orders) != 0 || result.Pages != 1 {
		t.Fatalf("expected empty orders and pages=1, got %d orders, pages=%d", len(result.Orders), result.Pages)
	}
	if client.listCalls != 1 {
		t.Fatalf("expected exactly one attempt (no retry), got %d", client.listCalls)
	}
}

func TestOrdersService_Success_PassesBodyThrough(t *testing.T) {
	stats := []byte(`{"queries":12}`)
	client := &stubBackendClient{
		listFn: func(context.Context, ports.ListOrdersQuery) (*ports.OrdersPage, error) {
			return &ports.OrdersPage{
				Orders: []domain.Order{
					{ID: "10248", TotalProductsPrice: "440.00"},
					{ID: "10249", TotalProductsPrice: "1863.40"},
				},
				Page:  2,
				Pages: 9,
				Stats: stats,
			}, nil
		},
	}
	svc := NewOrdersService(client, testTokens(), zerolog.Nop())

	result := svc.Load(context.Background(), ports.OrdersQuery{Page: 2, Token: "admin"})

	if result.Error != "" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
	if len(result.Orders) != 2 || result.Page != 2 || result.Pages != 9 {
		t.Fatalf("result not passed through verbatim: %+v", result)
	}
	if string(result.Stats) != string(stats) {
		t.Fatalf("stats not passed through: %s", result.Stats)
	}
}
