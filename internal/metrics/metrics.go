// Package metrics holds the server's counters and their Prometheus exposition.
package metrics

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Hits counts requests served by the static file server.
type Hits struct {
	n atomic.Int64
}

// Inc records one hit.
func (h *Hits) Inc() {
	h.n.Add(1)
}

// Load returns the current count.
func (h *Hits) Load() int64 {
	return h.n.Load()
}

// Reset sets the count back to zero.
func (h *Hits) Reset() {
	h.n.Store(0)
}

// Metrics contains the server's Prometheus collectors.
type Metrics struct {
	Hits          *Hits
	RequestsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a private registry with Go runtime, process, request and
// fileserver hit collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	hits := &Hits{}

	m := &Metrics{
		Hits: hits,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chirpy_http_requests_total",
				Help: "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		registry: registry,
	}

	registry.MustRegister(m.RequestsTotal)
	registry.MustRegister(prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Name: "chirpy_fileserver_hits_total",
			Help: "Number of static file requests since the last reset",
		},
		func() float64 { return float64(hits.Load()) },
	))

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
