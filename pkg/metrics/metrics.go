package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offerbazar_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "offerbazar_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	PaymentsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offerbazar_payments_created_total",
			Help: "Total number of payment submissions",
		},
		[]string{"method"},
	)

	PaymentsReviewedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offerbazar_payments_reviewed_total",
			Help: "Total number of payment reviews",
		},
		[]string{"decision"},
	)

	GatewayCallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offerbazar_gateway_callbacks_total",
			Help: "Total number of gateway callbacks received",
		},
		[]string{"outcome"},
	)

	PackagesExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "offerbazar_packages_expired_total",
			Help: "Total number of merchant packages marked expired",
		},
	)
)

// RecordPaymentCreated increments the submission counter for a payment method.
func RecordPaymentCreated(method string) {
	PaymentsCreatedTotal.WithLabelValues(method).Inc()
}

// RecordPaymentReviewed increments the review counter with decision "approved" or "rejected".
func RecordPaymentReviewed(decision string) {
	PaymentsReviewedTotal.WithLabelValues(decision).Inc()
}

// RecordGatewayCallback increments the callback counter with outcome "success", "fail" or "cancel".
func RecordGatewayCallback(outcome string) {
	GatewayCallbacksTotal.WithLabelValues(outcome).Inc()
}
