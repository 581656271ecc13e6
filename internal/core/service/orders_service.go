package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
	"github.com/cf-northwind/admin-dashboard/internal/core/ports"
)

type OrdersService struct {
	client ports.BackendClient
	// tokens maps the fixed role key set to pre-issued secrets. Injected
	// configuration, never mutated.
	tokens map[domain.Role]string
	logger zerolog.Logger
}

func NewOrdersService(client ports.BackendClient, tokens map[domain.Role]string, logger zerolog.Logger) *OrdersService {
	return &OrdersService{client: client, tokens: tokens, logger: logger}
}

// Load runs the orders page loader. The result replaces the previous page
// state wholesale; failures are embedded in the result so the page always
// renders something.
func (s *OrdersService) Load(ctx context.Context, q ports.OrdersQuery) ports.OrdersPage {
	role := q.Token
	if role == "" {
		role = string(domain.RoleAdmin)
	}

	secret := s.tokens[domain.Role(role)]
	if secret == "" {
		// Unknown role key or missing secret: fail before touching the network.
		s.logger.Warn().Str("role", role).Msg("unresolvable role token")
		return ports.OrdersPage{
			Error:  domain.MsgUnauthorizedToken,
			Orders: []domain.Order{},
			Pages:  1,
		}
	}

	result, err := s.client.ListOrders(ctx, ports.ListOrdersQuery{
		Page: q.Page,
		// The backend only recomputes totals when asked; skip the count
		// request once the client already knows a positive total.
		RequestCount: q.Count <= 0,
		Search:       q.Search,
		Token:        secret,
	})
	if err != nil {
		var se *ports.StatusError
		if errors.As(err, &se) {
			s.logger.Warn().Int("status", se.Code).Str("role", role).Msg("orders request rejected")
			return ports.OrdersPage{
				Error:  "Error: " + se.StatusLine,
				Orders: []domain.Order{},
				Pages:  1,
			}
		}
		// Transport-level failures surface the same way a status failure
		// would: a page-level error, no retry.
		s.logger.Error().Err(err).Msg("orders request failed")
		return ports.OrdersPage{
			Error:  "Error: " + err.Error(),
			Orders: []domain.Order{},
			Pages:  1,
		}
	}

	s.logger.Debug().
		Int("page", result.Page).
		Int("pages", result.Pages).
		Int("orders", len(result.Orders)).
		Str("role", role).
		Msg("orders page loaded")

	return *result
}
