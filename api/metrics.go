package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "awsrec_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "awsrec_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Recommendation Metrics
	recommendationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "awsrec_recommendations_total",
			Help: "Total number of rankings computed",
		},
	)

	topRecommendationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "awsrec_top_recommendation_total",
			Help: "How often each service ranked first",
		},
		[]string{"service"},
	)

	// Storage Metrics
	storeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "awsrec_store_errors_total",
			Help: "Total number of storage failures",
		},
		[]string{"op"},
	)
)

// recordRecommendation counts a ranking and its winner
func recordRecommendation(top string) {
	recommendationsTotal.Inc()
	if top != "" {
		topRecommendationTotal.WithLabelValues(top).Inc()
	}
}

func recordStoreError(op string) {
	storeErrorsTotal.WithLabelValues(op).Inc()
}
