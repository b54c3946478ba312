// Package metrics defines and registers all custom Prometheus metrics for
// the fitness training API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fittrack"

// AuthFailuresTotal counts rejected requests in the auth pipeline.
// Label:
//   - reason: "missing_token", "invalid_token", or "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by authentication or role checks.",
	},
	[]string{"reason"},
)

// ValidationFailuresTotal counts requests rejected by field validation.
// Label:
//   - location: "body", "param", or "query" of the first failing rule
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected by declarative field validation.",
	},
	[]string{"location"},
)

// HTTPErrorsTotal counts error responses rendered by the terminal error
// handler, by status code.
var HTTPErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_errors_total",
		Help:      "Total number of error responses, by HTTP status code.",
	},
	[]string{"status"},
)

// ExercisesCompletedTotal counts successfully tracked workout records.
var ExercisesCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercises_completed_total",
		Help:      "Total number of completed exercises recorded.",
	},
)
