package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/model"
)

type createChirpRequest struct {
	Body string `json:"body"`
}

// Chirp handles chirp endpoints.
type Chirp struct {
	chirpService   ChirpService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewChirp creates a new Chirp handler.
func NewChirp(chirpService ChirpService, contextManager model.ContextManager, logger *logger.Logger) *Chirp {
	return &Chirp{chirpService: chirpService, contextManager: contextManager, logger: logger}
}

// Create handles POST /api/chirps.
func (h *Chirp) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrUnauthorized("missing user id"), h.logger)
		return
	}

	var req createChirpRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrBadRequest("invalid request body"), h.logger)
		return
	}

	chirp, err := h.chirpService.Create(r.Context(), userID, req.Body)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusCreated, chirp)
}

// List handles GET /api/chirps?author_id=&sort=.
func (h *Chirp) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	authorID := uuid.Nil
	raw := q.Get("author_id")
	if raw == "" {
		raw = q.Get("authorId")
	}
	if raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(w, apierrors.NewErrBadRequest("invalid author id"), h.logger)
			return
		}
		authorID = id
	}

	order := model.SortAsc
	switch q.Get("sort") {
	case "", string(model.SortAsc):
	case string(model.SortDesc):
		order = model.SortDesc
	default:
		handleError(w, apierrors.NewErrBadRequest("sort must be asc or desc"), h.logger)
		return
	}

	chirps, err := h.chirpService.List(r.Context(), authorID, order)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, chirps)
}

// Get handles GET /api/chirps/{chirpID}.
func (h *Chirp) Get(w http.ResponseWriter, r *http.Request) {
	chirpID, err := uuid.Parse(mux.Vars(r)["chirpID"])
	if err != nil {
		handleError(w, apierrors.NewErrBadRequest("invalid chirp id"), h.logger)
		return
	}

	chirp, err := h.chirpService.Get(r.Context(), chirpID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusOK, chirp)
}

// Delete handles DELETE /api/chirps/{chirpID}.
func (h *Chirp) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrUnauthorized("missing user id"), h.logger)
		return
	}

	chirpID, err := uuid.Parse(mux.Vars(r)["chirpID"])
	if err != nil {
		handleError(w, apierrors.NewErrBadRequest("invalid chirp id"), h.logger)
		return
	}

	if err := h.chirpService.Delete(r.Context(), userID, chirpID); err != nil {
		handleError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
