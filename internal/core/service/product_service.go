package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
	"github.com/cf-northwind/admin-dashboard/internal/core/ports"
)

type ProductService struct {
	client ports.BackendClient
	logger zerolog.Logger
}

func NewProductService(client ports.BackendClient, logger zerolog.Logger) *ProductService {
	return &ProductService{client: client, logger: logger}
}

// Load fetches a single product by id. A missing id is a hard failure; an
// absent product in the response body is a valid result the view handles.
func (s *ProductService) Load(ctx context.Context, id string) (*ports.ProductPage, error) {
	if id == "" {
		return nil, domain.ErrMissingProductID
	}

	result, err := s.client.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load product %s: %w", id, err)
	}

	if result.Product == nil {
		s.logger.Debug().Str("id", id).Msg("no such product")
	}
	return result, nil
}
