package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	webhookRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "webhook",
			Name:      "requests_total",
			Help:      "Total number of payment provider webhook requests by response status",
		},
		[]string{"status"},
	)

	webhookPayloadSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "webhook",
			Name:      "payload_bytes",
			Help:      "Histogram of webhook payload sizes in bytes",
			Buckets:   prometheus.ExponentialBuckets(256, 2, 9),
		},
	)

	checkoutRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "checkout_requests_total",
			Help:      "Total number of checkout requests by kind and response status",
		},
		[]string{"kind", "status"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		webhookRequests,
		webhookPayloadSize,
		checkoutRequests,
	)
}
