package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RateLimitedRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_requests_total",
			Help: "Requests to the storefront API rejected with 429",
		},
		[]string{"method", "route"},
	)

	// Retry-After, который получил клиент; показывает, насколько лимит ниже нагрузки.
	RateLimitRetryAfterSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_rate_limit_retry_after_seconds",
			Help:    "Retry-After value sent with rejected requests",
			Buckets: []float64{1, 2, 5, 10, 30},
		},
		[]string{"route"},
	)
)
