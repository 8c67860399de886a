package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthAttempts records authentication attempts by result (success|failure).
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reliefmap_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"result"},
	)

	// MarkerDecisions counts moderation outcomes (approved|rejected).
	MarkerDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reliefmap_marker_decisions_total",
			Help: "Total number of marker moderation decisions",
		},
		[]string{"decision"},
	)

	// MarkersReported counts member-submitted markers by type.
	MarkersReported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reliefmap_markers_reported_total",
			Help: "Total number of markers reported by members",
		},
		[]string{"type"},
	)

	// MessagesSent counts chat messages persisted by sender role.
	MessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reliefmap_messages_sent_total",
			Help: "Total number of chat messages sent",
		},
		[]string{"role"},
	)

	// AlertsBroadcast counts alerts created by severity.
	AlertsBroadcast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reliefmap_alerts_broadcast_total",
			Help: "Total number of alerts broadcast by administrators",
		},
		[]string{"severity"},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reliefmap_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
