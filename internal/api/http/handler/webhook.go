package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/authheader"
	"github.com/dtroode/chirpy-server/internal/logger"
)

const eventUserUpgraded = "user.upgraded"

type polkaEvent struct {
	Event string `json:"event"`
	Data  struct {
		UserID      uuid.UUID `json:"user_id"`
		UserIDCamel uuid.UUID `json:"userId"`
	} `json:"data"`
}

func (e polkaEvent) userID() uuid.UUID {
	if e.Data.UserID != uuid.Nil {
		return e.Data.UserID
	}
	return e.Data.UserIDCamel
}

// Webhook handles callbacks from the Polka payment provider.
type Webhook struct {
	userService UserService
	polkaKey    string
	logger      *logger.Logger
}

// NewWebhook creates a new Webhook handler that accepts polkaKey.
func NewWebhook(userService UserService, polkaKey string, logger *logger.Logger) *Webhook {
	return &Webhook{userService: userService, polkaKey: polkaKey, logger: logger}
}

// Polka handles POST /api/polka/webhooks.
func (h *Webhook) Polka(w http.ResponseWriter, r *http.Request) {
	key := authheader.APIKey(r.Header.Get("Authorization"))
	if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.polkaKey)) != 1 {
		handleError(w, apierrors.NewErrUnauthorized("invalid api key"), h.logger)
		return
	}

	var event polkaEvent
	if err := decodeJSON(r, &event); err != nil {
		handleError(w, apierrors.NewErrBadRequest("invalid request body"), h.logger)
		return
	}

	if event.Event != eventUserUpgraded {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	userID := event.userID()
	if err := h.userService.Upgrade(r.Context(), userID); err != nil {
		handleError(w, err, h.logger)
		return
	}

	h.logger.Info("Webhook handler: user upgraded",
		"user_id", userID)

	w.WriteHeader(http.StatusNoContent)
}
