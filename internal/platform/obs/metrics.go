package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// PlansComputed counts completed planning runs by outcome.
	PlansComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "trip_plans_computed_total", Help: "Trip plans computed, by outcome."},
		[]string{"outcome"},
	)
	// MatrixFallbacks counts distance-provider failures recovered by the
	// built-in great-circle estimator.
	MatrixFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "travel_matrix_fallbacks_total", Help: "Travel matrix requests served by the haversine fallback."},
	)
)

var regOnce sync.Once

// RegisterDefault registers collectors on the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(PlansComputed)
		Registry.MustRegister(MatrixFallbacks)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
