package handler

import (
	"net/http"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/authheader"
	"github.com/dtroode/chirpy-server/internal/logger"
)

type refreshResponse struct {
	Token string `json:"token"`
}

// Auth handles login and session endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

// Login handles POST /api/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrBadRequest("invalid request body"), h.logger)
		return
	}
	if req.Email == "" || req.Password == "" {
		handleError(w, apierrors.NewErrBadRequest("email and password are required"), h.logger)
		return
	}

	res, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// Refresh handles POST /api/refresh.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := authheader.Bearer(r.Header.Get("Authorization"))
	if err != nil {
		handleError(w, apierrors.NewErrUnauthorized(err.Error()), h.logger)
		return
	}

	access, err := h.authService.Refresh(r.Context(), refreshToken)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, refreshResponse{Token: access})
}

// Revoke handles POST /api/revoke.
func (h *Auth) Revoke(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := authheader.Bearer(r.Header.Get("Authorization"))
	if err != nil {
		handleError(w, apierrors.NewErrUnauthorized(err.Error()), h.logger)
		return
	}

	if err := h.authService.Revoke(r.Context(), refreshToken); err != nil {
		handleError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
