// Package metrics defines the custom Prometheus metrics of the gauge
// registry. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gauge_registry"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login form submissions.
// Label:
//   - result: "success", "invalid_credentials", "throttled" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests turned away by the session resolver or
// an access gate. The reason label keeps the outwardly collapsed failure
// modes distinguishable for diagnostics.
// Label:
//   - reason: "missing_token", "invalid_token", "expired_token",
//     "unknown_user", "deactivated", "insufficient_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization, by reason.",
	},
	[]string{"reason"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// GaugesCreatedTotal counts newly registered gauge records.
var GaugesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gauges_created_total",
		Help:      "Total number of gauge records created.",
	},
)

// GaugesDeletedTotal counts deleted gauge records.
var GaugesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gauges_deleted_total",
		Help:      "Total number of gauge records deleted.",
	},
)

// ListPageDuration measures how long a gauge listing page takes to assemble,
// store query and creator-name resolution included.
// Label:
//   - search: "yes" when a search term filtered the page, otherwise "no"
var ListPageDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "list_page_duration_seconds",
		Help:      "Duration of gauge listing page assembly.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"search"},
)
