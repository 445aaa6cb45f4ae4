package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "woofwoof_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "woofwoof_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Domain metrics
	SwipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "woofwoof_swipes_total",
			Help: "Total number of recorded swipes",
		},
		[]string{"action"},
	)

	MatchesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "woofwoof_matches_created_total",
			Help: "Total number of matches created",
		},
	)

	SwipeLimitRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "woofwoof_swipe_limit_rejections_total",
			Help: "Total number of swipes rejected by plan limits",
		},
		[]string{"plan"},
	)
)

// RecordSwipe increments the swipe counter for the given action.
func RecordSwipe(action string) {
	SwipesTotal.WithLabelValues(action).Inc()
}

// RecordMatchCreated increments the match counter.
func RecordMatchCreated() {
	MatchesCreatedTotal.Inc()
}

// RecordSwipeLimitRejection increments the limit rejection counter for a plan.
func RecordSwipeLimitRejection(plan string) {
	SwipeLimitRejectionsTotal.WithLabelValues(plan).Inc()
}
