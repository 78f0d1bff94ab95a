package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/model"
)

const msgInternal = "Something went wrong on our end"

func handleError(w http.ResponseWriter, err error, log *logger.Logger) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code >= http.StatusInternalServerError {
			log.Error("Handler: internal error", "error", err.Error())
		}
		respondError(w, apiErr.Code, apiErr.Message)
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	log.Error("Handler: internal error", "error", err.Error())
	respondError(w, http.StatusInternalServerError, msgInternal)
}
