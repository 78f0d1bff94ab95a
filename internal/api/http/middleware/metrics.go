package middleware

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

const unmatchedRoute = "unmatched"

// Metrics counts requests by route template, method and status.
type Metrics struct {
	requests *prometheus.CounterVec
}

// NewMetrics creates a Metrics middleware recording into requests.
func NewMetrics(requests *prometheus.CounterVec) *Metrics {
	return &Metrics{requests: requests}
}

// Handle increments the request counter once the handler returns.
func (m *Metrics) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)

		m.requests.WithLabelValues(routeTemplate(r), r.Method, strconv.Itoa(rec.status)).Inc()
	})
}

// routeTemplate returns the matched pattern, e.g. /api/chirps/{chirpID},
// not the raw path.
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	if tpl, err := route.GetPathTemplate(); err == nil {
		return tpl
	}
	return unmatchedRoute
}
