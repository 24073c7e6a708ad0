// Package metrics defines and registers all custom Prometheus metrics for the
// user management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route is wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userapi"

// UsersCreatedTotal counts users created through the API.
// Label:
//   - result: "ok", "conflict", or "error"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user create requests, by result.",
	},
	[]string{"result"},
)

// UsersUpdatedTotal counts user update requests.
// Label:
//   - result: "ok", "not_found", or "error"
var UsersUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_updated_total",
		Help:      "Total number of user update requests, by result.",
	},
	[]string{"result"},
)

// UsersDeletedTotal counts user delete requests. Idempotent deletes of a
// missing id still count as "ok".
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user delete requests.",
	},
)

// LoginAttemptsTotal counts token logins.
// Label:
//   - result: "ok" or "invalid"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RequestsThrottledTotal counts requests rejected by the rate limiter.
// Label:
//   - path: the route path the request was aimed at
var RequestsThrottledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_throttled_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"path"},
)
