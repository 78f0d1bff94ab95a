package handler

import (
	"fmt"
	"net/http"

	"github.com/dtroode/chirpy-server/internal/logger"
)

const metricsPage = `<html>
  <body>
    <h1>Welcome, Chirpy Admin</h1>
    <p>Chirpy has been visited %d times!</p>
  </body>
</html>
`

// Admin handles operator endpoints.
type Admin struct {
	adminService AdminService
	logger       *logger.Logger
}

// NewAdmin creates a new Admin handler.
func NewAdmin(adminService AdminService, logger *logger.Logger) *Admin {
	return &Admin{adminService: adminService, logger: logger}
}

// Reset handles POST /admin/reset.
func (h *Admin) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.Reset(r.Context()); err != nil {
		handleError(w, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Metrics handles GET /admin/metrics.
func (h *Admin) Metrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, metricsPage, h.adminService.Hits())
}

// Healthz handles GET /api/healthz.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
