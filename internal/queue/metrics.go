package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Queue metrics for Prometheus monitoring.
var (
	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_published_total",
			Help: "Total number of messages published per queue",
		},
		[]string{"queue"},
	)

	PublishFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_publish_failures_total",
			Help: "Total number of failed publish attempts per queue",
		},
		[]string{"queue"},
	)

	PublishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "queue_publish_duration_seconds",
			Help:    "Duration of queue publish operations",
			Buckets: prometheus.DefBuckets,
		},
	)
)
