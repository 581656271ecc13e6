// Package stats implements the shared stats channel: pages push the opaque
// stats payload from each loader result into the hub, and any registered
// consumer (layout widgets, log sinks) receives it. Consumers are notified
// once per distinct value, not once per render.
package stats

import (
	"bytes"
	"encoding/json"
	"sync"
)

// Consumer receives the raw stats payload whenever it changes.
type Consumer func(stats json.RawMessage)

// Hub fans distinct stats values out to consumers and retains the latest one.
// The zero value is not usable; call NewHub.
type Hub struct {
	mu        sync.Mutex
	last      json.RawMessage
	consumers []Consumer
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a consumer. There is no unsubscribe; consumers live as
// long as the process.
func (h *Hub) Subscribe(c Consumer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.consumers = append(h.consumers, c)
}

// Dispatch records stats and notifies consumers when the value differs from
// the previously dispatched one. Empty payloads are ignored. Dispatching with
// no consumers registered still updates the retained value.
func (h *Hub) Dispatch(stats json.RawMessage) {
	if len(stats) == 0 {
		return
	}

	h.mu.Lock()
	if bytes.Equal(h.last, stats) {
		h.mu.Unlock()
		return
	}
	h.last = append(json.RawMessage(nil), stats...)
	consumers := make([]Consumer, len(h.consumers))
	copy(consumers, h.consumers)
	h.mu.Unlock()

	for _, c := range consumers {
		c(stats)
	}
}

// Latest returns the most recently dispatched stats payload, nil before the
// first dispatch.
func (h *Hub) Latest() json.RawMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return nil
	}
	return append(json.RawMessage(nil), h.last...)
}
