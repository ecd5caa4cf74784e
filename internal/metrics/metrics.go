// Package metrics exposes the proxy's Prometheus collectors on a private
// registry, served at /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request outcomes used as the "outcome" label.
const (
	OutcomeAccepted             = "accepted"
	OutcomeUnauthorized         = "unauthorized"
	OutcomeUnsupportedMediaType = "unsupported_media_type"
	OutcomeError                = "error"
)

// Metrics tracks inbound requests and Kafka publishes.
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	PublishDuration prometheus.Histogram
	PublishFailures prometheus.Counter
}

// New creates a Metrics instance registered on its own registry together with
// the Go runtime and process collectors. Instances are independent, so tests
// can create as many as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dnpm_proxy_requests_total",
			Help: "Patient record requests by HTTP method and outcome",
		}, []string{"method", "outcome"}),
		PublishDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dnpm_proxy_publish_duration_seconds",
			Help:    "Time from producing a record until the broker acknowledged or the send timeout hit",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		PublishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnpm_proxy_publish_failures_total",
			Help: "Records that were not confirmed by the broker",
		}),
	}

	m.registry.MustRegister(
		m.Requests,
		m.PublishDuration,
		m.PublishFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRequest counts one finished request.
func (m *Metrics) ObserveRequest(method, outcome string) {
	m.Requests.WithLabelValues(method, outcome).Inc()
}

// ObservePublish records the duration of a publish started at start and
// counts it as failed when err is non-nil.
func (m *Metrics) ObservePublish(start time.Time, err error) {
	m.PublishDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		m.PublishFailures.Inc()
	}
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
