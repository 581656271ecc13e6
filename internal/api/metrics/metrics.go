// Package metrics defines all custom Prometheus metrics for the Northwind
// admin dashboard. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time
// via promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "northwind_dashboard"

// ── Page metrics ──────────────────────────────────────────────────────────────

// PagesRenderedTotal counts page renders.
// Labels:
//   - page: "orders" or "product"
//   - result: "ok" or "error" (soft page-level errors count as "error")
var PagesRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pages_rendered_total",
		Help:      "Total number of dashboard pages rendered, by page and result.",
	},
	[]string{"page", "result"},
)

// ── Backend metrics ───────────────────────────────────────────────────────────

// BackendRequestsTotal counts requests issued to the backend APIs.
// Labels:
//   - endpoint: "orders" or "product"
//   - outcome: "ok", "status_error", or "transport_error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of backend API requests, by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// BackendRequestDuration measures backend request latency end-to-end.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Inventory metrics ─────────────────────────────────────────────────────────

// InventoryUpdatesTotal counts user-submitted inventory adjustments.
// Label:
//   - result: "applied" or "rejected" (delta would drive stock negative)
var InventoryUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_updates_total",
		Help:      "Total number of inventory adjustments submitted, by result.",
	},
	[]string{"result"},
)

// InventoryPostsTotal counts fire-and-forget deliveries to the queue worker.
// Label:
//   - outcome: "ok", "status_error", or "transport_error"
var InventoryPostsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_posts_total",
		Help:      "Total number of inventory updates posted to the queue worker, by outcome.",
	},
	[]string{"outcome"},
)

// QueueDepth tracks the number of updates waiting in each dispatcher worker
// channel. Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var QueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_depth",
		Help:      "Current number of inventory updates pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
