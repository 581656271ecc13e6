package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cf-northwind/admin-dashboard/internal/core/ports"
)

type InventoryService struct {
	queue  ports.InventoryQueue
	logger zerolog.Logger
}

func NewInventoryService(queue ports.InventoryQueue, logger zerolog.Logger) *InventoryService {
	return &InventoryService{queue: queue, logger: logger}
}

// Apply performs the optimistic inventory adjustment: the local projection
// moves immediately, the backend write is enqueued fire-and-forget. A delta
// that would drive stock negative is rejected silently with no enqueue.
func (s *InventoryService) Apply(_ context.Context, in ports.InventoryUpdateInput) ports.InventoryResult {
	newStock := in.Current + in.Delta
	if newStock < 0 {
		s.logger.Debug().
			Str("product_id", in.ProductID).
			Int("current", in.Current).
			Int("delta", in.Delta).
			Msg("inventory update rejected, would go negative")
		return ports.InventoryResult{Applied: false, UnitsInStock: in.Current}
	}

	s.queue.Enqueue(ports.InventoryUpdate{
		UpdateInventoryBy: in.Delta,
		ProductID:         in.ProductID,
	})

	s.logger.Info().
		Str("product_id", in.ProductID).
		Int("delta", in.Delta).
		Int("units_in_stock", newStock).
		Msg("inventory update dispatched")

	return ports.InventoryResult{Applied: true, UnitsInStock: newStock}
}
