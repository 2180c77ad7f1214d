package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Webhook metrics for Prometheus monitoring.
var (
	EventsReceivedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_events_received_total",
			Help: "Total number of raw webhook events received",
		},
	)

	EventsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_events_dropped_total",
			Help: "Total number of webhook events dropped as malformed or unrecognized",
		},
	)

	EventsDispatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_dispatched_total",
			Help: "Total number of normalized notifications dispatched by type",
		},
		[]string{"type"},
	)

	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_auth_failures_total",
			Help: "Total number of webhook requests rejected for bad credentials",
		},
	)
)
