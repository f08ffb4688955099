// Package metrics defines the custom Prometheus metrics of the gym back office.
// Metrics are registered with the default registry through promauto and served
// at /metrics next to the per-route request metrics from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gym"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionChecksTotal counts bearer-token resolutions.
// Label:
//   - result: "valid" or "invalid"
var SessionChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_checks_total",
		Help:      "Total number of session token checks, by result.",
	},
	[]string{"result"},
)

// LoginsRateLimitedTotal counts login requests rejected by the rate limiter.
var LoginsRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_rate_limited_total",
		Help:      "Total number of login requests rejected by the per-client rate limiter.",
	},
)

// ── Membership metrics ────────────────────────────────────────────────────────

// MembersWrittenTotal counts successful member writes.
// Label:
//   - op: "create", "update" or "delete"
var MembersWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "members_written_total",
		Help:      "Total number of member writes, by operation.",
	},
	[]string{"op"},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentsRecordedTotal counts recorded payments. payment_type is free text
// and is not used as a label.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payments recorded.",
	},
)

// PaymentsAmountTotal sums recorded payment amounts.
var PaymentsAmountTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_amount_total",
		Help:      "Sum of all recorded payment amounts.",
	},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardDuration measures how long a dashboard summary takes to build.
var DashboardDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_duration_seconds",
		Help:      "Duration of dashboard summary computation.",
		Buckets:   prometheus.DefBuckets,
	},
)
