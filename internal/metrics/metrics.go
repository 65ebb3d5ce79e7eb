// Package metrics exposes prometheus collectors for the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts generative API calls by operation
	// (rephrase, compose) and outcome (ok, error).
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "composer_upstream_requests_total",
		Help: "Generative API calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	// UpstreamDuration observes the latency of generative API calls.
	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "composer_upstream_duration_seconds",
		Help:    "Latency of generative API calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)
