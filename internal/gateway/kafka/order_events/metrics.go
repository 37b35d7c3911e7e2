package order_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Total number of order events acknowledged by Kafka",
		},
		[]string{"type"},
	)

	EventsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_dropped_total",
			Help: "Total number of order events dropped before reaching the producer",
		},
		[]string{"type", "reason"},
	)

	EventsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_failed_total",
			Help: "Total number of order events rejected by Kafka",
		},
		[]string{"type"},
	)
)
