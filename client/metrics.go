package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agrismart_client",
			Name:      "requests_total",
			Help:      "HTTP requests issued, by outcome code (\"error\" for transport failures).",
		},
		[]string{"method", "path", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "agrismart_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of HTTP requests that produced a response.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	unauthorizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agrismart_client",
			Name:      "unauthorized_total",
			Help:      "401 responses that cleared the session.",
		},
	)
)
