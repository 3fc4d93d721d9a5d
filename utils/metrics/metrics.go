package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts served requests by route template, method and status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "echobody_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	// CompletionLatency tracks completion gateway calls
	CompletionLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "echobody_completion_latency_seconds",
			Help:    "Latency of completion API calls by template and outcome",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		},
		[]string{"template", "outcome"},
	)

	// PlansStored counts persisted plan records
	PlansStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "echobody_plans_stored_total",
			Help: "Total number of stored plan records by kind",
		},
		[]string{"kind"},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
