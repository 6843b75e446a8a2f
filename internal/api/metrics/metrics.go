// Package metrics defines and registers all custom Prometheus metrics for
// the HR system API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - result: "success", "failure"
//   - kind: resolved identity kind ("user", "client"), "unknown" on failure
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result and identity kind.",
	},
	[]string{"result", "kind"},
)

// AuthRejectionsTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing_token", "invalid_token", "expired_token", "malformed_token", "unknown_identity"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth middleware, by reason.",
	},
	[]string{"reason"},
)

// PasswordResetsTotal counts password reset flow events.
// Label:
//   - stage: "requested", "completed"
var PasswordResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of password reset flow events, by stage.",
	},
	[]string{"stage"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// ExpensesCreatedTotal counts newly submitted expenses.
// Label:
//   - category: the expense category as submitted
var ExpensesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_created_total",
		Help:      "Total number of expenses created, by category.",
	},
	[]string{"category"},
)

// AbsencesCreatedTotal counts newly submitted leave requests.
var AbsencesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "absences_created_total",
		Help:      "Total number of absences created.",
	},
)

// ActivitiesCreatedTotal counts newly submitted attendance logs.
var ActivitiesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_created_total",
		Help:      "Total number of activities created.",
	},
)
