// Package metrics exposes the service's prometheus instrumentation.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation outcomes recorded per terminal handler branch.
const (
	OutcomeOK                = "ok"
	OutcomeInvalidRequest    = "invalid_request"
	OutcomeMissingCredential = "missing_credential"
	OutcomeSafetyBlocked     = "safety_blocked"
	OutcomeEmptyResponse     = "empty_response"
	OutcomeTextResponse      = "text_response"
	OutcomeUpstreamError     = "upstream_error"
)

// Collector registers all instrumentation on its own registry, never on the
// prometheus default registry.
type Collector struct {
	registry *prometheus.Registry

	httpRequestsTotal  *prometheus.CounterVec
	generationsTotal   *prometheus.CounterVec
	generationDuration prometheus.Histogram
}

// NewCollector builds the collector and registers all vectors under the
// given namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	c := &Collector{registry: registry}

	c.httpRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	c.generationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_requests_total",
			Help:      "Photo generation requests by terminal outcome",
		},
		[]string{"outcome"},
	)

	c.generationDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "End-to-end duration of the generate handler",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
		},
	)

	return c
}

// RecordHTTPRequest counts one served HTTP request.
func (c *Collector) RecordHTTPRequest(method, path string, status int) {
	if c == nil {
		return
	}
	c.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// RecordGeneration counts one generate request with its terminal outcome.
func (c *Collector) RecordGeneration(outcome string, duration time.Duration) {
	if c == nil {
		return
	}
	c.generationsTotal.WithLabelValues(outcome).Inc()
	c.generationDuration.Observe(duration.Seconds())
}

// Handler returns the exposition endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
