// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedrelay_http_requests_total",
			Help: "HTTP requests handled, by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feedrelay_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedrelay_upstream_requests_total",
			Help: "Chat platform API calls, by route template and outcome.",
		},
		[]string{"route", "outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feedrelay_upstream_request_duration_seconds",
			Help:    "Chat platform API latency by route template.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"route"},
	)

	UpstreamBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "feedrelay_upstream_breaker_state",
			Help: "Circuit breaker state for the chat platform API (0 closed, 1 half-open, 2 open).",
		},
		[]string{"name"},
	)

	FeedStatusLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedrelay_feed_status_total",
			Help: "Derived feed statuses returned by listings.",
		},
		[]string{"status"},
	)

	StoreFeeds = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feedrelay_store_feeds",
		Help: "Feeds stored across all servers.",
	})

	StoreFailedFeeds = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feedrelay_store_failed_feeds",
		Help: "Stored feeds whose URL currently has a failure record.",
	})

	StoreProfiles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feedrelay_store_server_profiles",
		Help: "Servers with at least one stored profile override.",
	})
)
