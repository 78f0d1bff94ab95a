package handler

import (
	"net/http"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/model"
)

// User handles account endpoints.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{userService: userService, contextManager: contextManager, logger: logger}
}

// Create handles POST /api/users.
func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrBadRequest("invalid request body"), h.logger)
		return
	}

	user, err := h.userService.Create(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusCreated, user.Public())
}

// Update handles PUT /api/users for the authenticated user.
func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrUnauthorized("missing user id"), h.logger)
		return
	}

	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrBadRequest("invalid request body"), h.logger)
		return
	}

	user, err := h.userService.UpdateCredentials(r.Context(), userID, req.Email, req.Password)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, user.Public())
}
