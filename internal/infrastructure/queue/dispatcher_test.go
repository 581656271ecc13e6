package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cf-northwind/admin-dashboard/internal/core/ports"
)

type recordingQueueClient struct {
	mu      sync.Mutex
	posted  []ports.InventoryUpdate
	postErr error
}

func (c *recordingQueueClient) PostInventoryUpdate(_ context.Context, update ports.InventoryUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posted = append(c.posted, update)
	return c.postErr
}

func (c *recordingQueueClient) all() []ports.InventoryUpdate {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ports.InventoryUpdate, len(c.posted))
	copy(out, c.posted)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func TestDispatcher_DeliversUpdates(t *testing.T) {
	client := &recordingQueueClient{}
	d := NewDispatcher(2, client, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.InventoryUpdate{ProductID: "42", UpdateInventoryBy: -10})
	d.Enqueue(ports.InventoryUpdate{ProductID: "7", UpdateInventoryBy: 3})

	waitFor(t, func() bool { return len(client.all()) == 2 })
}

func TestDispatcher_SameProductKeepsOrder(t *testing.T) {
	client := &recordingQueueClient{}
	d := NewDispatcher(4, client, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 1; i <= 5; i++ {
		d.Enqueue(ports.InventoryUpdate{ProductID: "42", UpdateInventoryBy: i})
	}

	waitFor(t, func() bool { return len(client.all()) == 5 })

	for i, update := range client.all() {
		if update.UpdateInventoryBy != i+1 {
			t.Fatalf("order broken at %d: %+v", i, client.all())
		}
	}
}

func TestDispatcher_DeliveryFailureIsSwallowed(t *testing.T) {
	client := &recordingQueueClient{postErr: context.DeadlineExceeded}
	d := NewDispatcher(1, client, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Both updates must be attempted; the first failure must not wedge the
	// worker or surface anywhere.
	d.Enqueue(ports.InventoryUpdate{ProductID: "42", UpdateInventoryBy: 1})
	d.Enqueue(ports.InventoryUpdate{ProductID: "42", UpdateInventoryBy: 2})

	waitFor(t, func() bool { return len(client.all()) == 2 })
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingQueueClient{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
