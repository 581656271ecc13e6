package northwind

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
	"github.com/cf-northwind/admin-dashboard/internal/core/ports"
)

func TestClient_ListOrders_RequestShape(t *testing.T) {
	var gotURL string
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		gotToken = r.Header.Get("token")

		q := r.URL.Query()
		if q.Get("page") != "3" {
			t.Errorf("expected page=3, got %q", q.Get("page"))
		}
		if q.Get("count") != "true" {
			t.Errorf("expected count=true, got %q", q.Get("count"))
		}
		if q.Get("search") != "horn" {
			t.Errorf("expected search=horn, got %q", q.Get("search"))
		}
		r2, err := strconv.Atoi(q.Get("rand"))
		if err != nil || r2 < 0 || r2 > 1000000 {
			t.Errorf("rand out of range: %q", q.Get("rand"))
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"orders": []map[string]string{{"Id": "10248"}},
			"page":   3,
			"pages":  9,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, srv.Client(), zerolog.Nop())
	page, err := c.ListOrders(context.Background(), ports.ListOrdersQuery{
		Page:         3,
		RequestCount: true,
		Search:       "horn",
		Token:        "secret-admin",
	})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}

	if gotToken != "secret-admin" {
		t.Fatalf("expected token header, got %q", gotToken)
	}
	if len(page.Orders) != 1 || page.Orders[0].ID != "10248" || page.Pages != 9 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if !strings.HasPrefix(gotURL, "/api/orders?") {
		t.Fatalf("unexpected path: %q", gotURL)
	}
}

func TestClient_ListOrders_OmitsCountAndSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if _, ok := q["count"]; ok {
			t.Errorf("count must be omitted when not requested")
		}
		if _, ok := q["search"]; ok {
			t.Errorf("empty search must be omitted")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"orders": []any{}, "page": 1, "pages": 1})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, srv.Client(), zerolog.Nop())
	if _, err := c.ListOrders(context.Background(), ports.ListOrdersQuery{Page: 1, Token: "x"}); err != nil {
		t.Fatalf("list orders: %v", err)
	}
}

func TestClient_ListOrders_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, srv.Client(), zerolog.Nop())
	_, err := c.ListOrders(context.Background(), ports.ListOrdersQuery{Page: 1, Token: "x"})

	var se *ports.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != 500 || se.StatusLine != "500 Internal Server Error" {
		t.Fatalf("unexpected status: %+v", se)
	}
}

func TestClient_ListOrders_TransportError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "http://127.0.0.1:1", nil, zerolog.Nop())
	_, err := c.ListOrders(context.Background(), ports.ListOrdersQuery{Page: 1, Token: "x"})
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestClient_GetProduct_DecodesBodyOnAnyStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("Id") != "11" {
			t.Errorf("expected Id=11, got %q", q.Get("Id"))
		}
		if r.Header.Get("token") != "" {
			t.Errorf("product request must carry no auth header")
		}
		// Not-found travels in the body, not the status code; the client must
		// also tolerate a non-2xx wrapper.
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"product": null, "stats": {"queries": 2}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, srv.Client(), zerolog.Nop())
	page, err := c.GetProduct(context.Background(), "11")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if page.Product != nil {
		t.Fatalf("expected nil product, got %+v", page.Product)
	}
	if string(page.Stats) != `{"queries": 2}` {
		t.Fatalf("stats not decoded: %s", page.Stats)
	}
}

func TestClient_PostInventoryUpdate(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"queued": true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, srv.Client(), zerolog.Nop())
	err := c.PostInventoryUpdate(context.Background(), ports.InventoryUpdate{
		UpdateInventoryBy: -10,
		ProductID:         "42",
	})
	if err != nil {
		t.Fatalf("post: %v", err)
	}

	if gotContentType != "application/json" {
		t.Fatalf("expected application/json, got %q", gotContentType)
	}
	var payload map[string]any
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if payload["updateInventoryBy"] != float64(-10) || payload["productId"] != "42" {
		t.Fatalf("unexpected payload: %s", gotBody)
	}
}

func TestClient_PostInventoryUpdate_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, srv.Client(), zerolog.Nop())
	err := c.PostInventoryUpdate(context.Background(), ports.InventoryUpdate{ProductID: "42"})

	var se *ports.StatusError
	if !errors.As(err, &se) || se.Code != 503 {
		t.Fatalf("expected 503 StatusError, got %v", err)
	}
}
