// Package metrics defines and registers all custom Prometheus metrics for
// the SessionBook booking API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sessionbook"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts.
// Label:
//   - role: "user", "expert" or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered accounts, by role.",
	},
	[]string{"role"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - replay: "true" when an Idempotency-Key returned the original booking
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of booking submissions accepted, by idempotent replay.",
	},
	[]string{"replay"},
)

// BookingsCompletedTotal counts bookings the reconciler marked completed.
var BookingsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_completed_total",
		Help:      "Total number of confirmed bookings swept to completed.",
	},
)

// ── Expert metrics ────────────────────────────────────────────────────────────

// ExpertTransitionsTotal counts admin status transitions on experts.
// Label:
//   - to: new status
var ExpertTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expert_transitions_total",
		Help:      "Total number of expert status transitions applied, by target status.",
	},
	[]string{"to"},
)

// DirectorySearchDuration measures expert directory request latency,
// including filtering.
var DirectorySearchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "directory_search_duration_seconds",
		Help:      "Duration of expert directory listing and filtering.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
