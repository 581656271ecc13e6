package ports

import "context"

// InventoryUpdateInput describes a user-submitted inventory adjustment.
type InventoryUpdateInput struct {
	ProductID string
	// Current is the locally displayed stock value at submit time, not the
	// server's value.
	Current int
	// Delta is the signed adjustment.
	Delta int
}

// InventoryResult reports what the update did to the local projection.
type InventoryResult struct {
	// Applied is false when the delta would have driven stock negative; in
	// that case nothing was changed and nothing was enqueued.
	Applied bool `json:"applied"`
	// UnitsInStock is the new local stock value (unchanged when not applied).
	UnitsInStock int `json:"unitsInStock"`
}

// InventoryService applies the optimistic local update and dispatches the
// fire-and-forget write to the inventory queue. It never waits for, reports,
// or rolls back on the write's outcome.
type InventoryService interface {
	Apply(ctx context.Context, in InventoryUpdateInput) InventoryResult
}

// InventoryUpdate is the wire payload posted to the inventory queue.
type InventoryUpdate struct {
	UpdateInventoryBy int    `json:"updateInventoryBy"`
	ProductID         string `json:"productId"`
}

// InventoryQueue accepts updates for asynchronous delivery. Enqueue returns
// immediately; delivery failures are logged by the queue, not surfaced.
type InventoryQueue interface {
	Enqueue(update InventoryUpdate)
}
