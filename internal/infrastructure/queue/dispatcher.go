package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/cf-northwind/admin-dashboard/internal/api/metrics"
	"github.com/cf-northwind/admin-dashboard/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher delivers inventory updates to the queue worker asynchronously.
// Updates are sharded by product id over a fixed set of workers, so updates
// for the same product post in submission order. Delivery is fire-and-forget:
// outcomes are logged and counted, never reported back.
type Dispatcher struct {
	workers []chan ports.InventoryUpdate
	client  ports.QueueClient
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, client ports.QueueClient, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.InventoryUpdate, numWorkers),
		client:  client,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.InventoryUpdate, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an update to the worker responsible for its product id.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(update ports.InventoryUpdate) {
	i := d.shardIndex(update.ProductID)
	d.workers[i] <- update
	metrics.QueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a product id deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(productID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.InventoryUpdate) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-ch:
			if !ok {
				return
			}
			metrics.QueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.client.PostInventoryUpdate(ctx, update); err != nil {
				d.log.Error().Err(err).
					Str("product_id", update.ProductID).
					Int("delta", update.UpdateInventoryBy).
					Int("worker_id", id).
					Msg("inventory update delivery failed")
				continue
			}
			d.log.Info().
				Str("product_id", update.ProductID).
				Int("delta", update.UpdateInventoryBy).
				Msg("inventory update delivered")
		}
	}
}
