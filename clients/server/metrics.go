// metrics.go — Prometheus instrumentation for the avatar service.
package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	avatarRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "identicon_avatar_requests_total",
			Help: "Total number of avatar requests, by output format and result",
		},
		[]string{"format", "status"},
	)

	renderSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "identicon_render_duration_seconds",
			Help:    "Time spent hashing and rasterizing one avatar",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		avatarRequests,
		renderSeconds,
	)
}
