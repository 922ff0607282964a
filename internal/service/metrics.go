package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutSessions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "checkout",
			Name:      "sessions_total",
			Help:      "Total number of checkout session attempts by kind and result",
		},
		[]string{"kind", "result"},
	)

	webhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "reconciler",
			Name:      "events_total",
			Help:      "Total number of payment events by type and outcome",
		},
		[]string{"type", "outcome"},
	)

	reconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "reconciler",
			Name:      "reconcile_duration_seconds",
			Help:      "Histogram of payment event reconciliation durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "cache_lookups_total",
			Help:      "Total number of order cache lookups by result",
		},
		[]string{"result"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		checkoutSessions,
		webhookEvents,
		reconcileDuration,
		orderCacheLookups,
	)
}
