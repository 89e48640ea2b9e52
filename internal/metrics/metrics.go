// Package metrics exposes Prometheus collectors for the HTTP surface and the adoption lifecycle.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/apperrors"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petadoption_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "petadoption_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	lifecycleOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petadoption_lifecycle_operations_total",
		Help: "Count of pet lifecycle operations by operation and result",
	}, []string{"operation", "result"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petadoption_pet_cache_lookups_total",
		Help: "Count of pet cache lookups by result",
	}, []string{"result"})
)

// Lifecycle operation labels.
const (
	OpCreate   = "create"
	OpUpdate   = "update"
	OpRemove   = "remove"
	OpSchedule = "schedule"
	OpConclude = "conclude"
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveLifecycle counts a lifecycle operation under the class of its error.
func ObserveLifecycle(operation string, err error) {
	lifecycleOperations.WithLabelValues(operation, Result(err)).Inc()
}

// ObserveCacheLookup counts a pet cache hit or miss.
func ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(result).Inc()
}

// Result maps an operation error to a low-cardinality label.
func Result(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, apperrors.ErrValidation):
		return "invalid"
	case errors.Is(err, apperrors.ErrAuthorization):
		return "forbidden"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
