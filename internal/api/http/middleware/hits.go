package middleware

import (
	"net/http"

	"github.com/dtroode/chirpy-server/internal/metrics"
)

// Hits counts requests reaching the static file server.
type Hits struct {
	hits *metrics.Hits
}

// NewHits creates a Hits middleware incrementing hits.
func NewHits(hits *metrics.Hits) *Hits {
	return &Hits{hits: hits}
}

// Handle records a hit before serving the request.
func (h *Hits) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.hits.Inc()
		next.ServeHTTP(w, r)
	})
}
