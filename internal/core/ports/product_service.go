package ports

import (
	"context"
	"encoding/json"

	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
)

// ProductPage is the loader result for the product detail page. Product is
// nil when the backend reports no such product; that is not an error.
type ProductPage struct {
	Product *domain.Product `json:"product"`
	Stats   json.RawMessage `json:"stats,omitempty"`
}

// ProductService is the product page loader. A missing id is a hard failure
// (domain.ErrMissingProductID); an absent product in the backend response is
// handled by the view, not here.
type ProductService interface {
	Load(ctx context.Context, id string) (*ProductPage, error)
}
