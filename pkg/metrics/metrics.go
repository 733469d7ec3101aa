// Package metrics exposes Prometheus instrumentation for upstream
// completion calls and HTTP traffic on a dedicated registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for completion observations.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
)

// Recorder owns a registry and the collectors registered on it.
type Recorder struct {
	registry           *prometheus.Registry
	completionsTotal   *prometheus.CounterVec
	completionDuration *prometheus.HistogramVec
	requestsTotal      *prometheus.CounterVec
}

// New creates a Recorder with process and Go runtime collectors plus the
// service collectors, all prefixed with namespace.
func New(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		completionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "completions_total",
				Help:      "Total prompt operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		completionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "completion_duration_seconds",
				Help:      "Duration of upstream completion calls in seconds",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
			},
			[]string{"operation"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by method and status code",
			},
			[]string{"method", "code"},
		),
	}
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveCompletion records the outcome of one prompt operation. Duration is
// only recorded for calls that reached the upstream provider.
func (r *Recorder) ObserveCompletion(operation, outcome string, d time.Duration) {
	r.completionsTotal.WithLabelValues(operation, outcome).Inc()
	if outcome != OutcomeInvalid {
		r.completionDuration.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// CompletionCount returns the counter for the given labels.
func (r *Recorder) CompletionCount(operation, outcome string) prometheus.Counter {
	return r.completionsTotal.WithLabelValues(operation, outcome)
}

// Middleware counts requests by method and response status.
func (r *Recorder) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return promhttp.InstrumentHandlerCounter(r.requestsTotal, next)
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
