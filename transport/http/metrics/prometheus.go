// Package metrics exposes Prometheus counters for envelope traffic.
package metrics

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Results recorded by Envelope
const (
	ResultOpened   = "opened"
	ResultRejected = "rejected"
	ResultEmpty    = "empty"
	ResultSkipped  = "skipped"
)

// Prometheus owns a registry
type Prometheus struct {
	registry *prometheus.Registry
}

// New creates an empty registry
func New() *Prometheus {
	return &Prometheus{registry: prometheus.NewRegistry()}
}

// WithGoCollectorRuntimeMetrics registers the Go runtime collector
func (p *Prometheus) WithGoCollectorRuntimeMetrics() *Prometheus {
	p.registry.MustRegister(collectors.NewGoCollector(
		collectors.WithGoCollectorRuntimeMetrics(collectors.GoRuntimeMetricsRule{Matcher: regexp.MustCompile("/.*")}),
	))
	return p
}

// Registry returns the registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus text format
func (p *Prometheus) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{}))
}

// Envelope counts requests seen by the envelope middleware
type Envelope struct {
	requests *prometheus.CounterVec
}

// NewEnvelope registers the envelope counters in p
func (p *Prometheus) NewEnvelope() *Envelope {
	e := &Envelope{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cipherkit",
			Subsystem: "envelope",
			Name:      "requests_total",
			Help:      "Requests handled by the envelope middleware, by result.",
		}, []string{"result"}),
	}
	p.registry.MustRegister(e.requests)
	return e
}

// Observe counts one request. A nil Envelope ignores the call.
func (e *Envelope) Observe(result string) {
	if e == nil {
		return
	}
	e.requests.WithLabelValues(result).Inc()
}

// Counter returns the counter of result
func (e *Envelope) Counter(result string) prometheus.Counter {
	return e.requests.WithLabelValues(result)
}
