// Package metrics defines the Prometheus metrics exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// HTTPRequestsTotal counts handled requests.
// Labels: method, route (the matched gin path, "unmatched" otherwise), status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected with 429.",
	},
)

// AuthEventsTotal counts authentication outcomes.
// Label event: register, login, login_failed, logout.
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of authentication events by outcome.",
	},
	[]string{"event"},
)

// TicketStreamsActive tracks open ticket websocket streams.
var TicketStreamsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ticket_streams_active",
		Help:      "Number of open ticket event streams.",
	},
)
