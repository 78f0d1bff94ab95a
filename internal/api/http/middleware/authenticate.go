package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/model"
)

// Authenticator resolves the user behind an Authorization header value.
type Authenticator interface {
	Authenticate(ctx context.Context, authorization string) (uuid.UUID, error)
}

// Authenticate validates access tokens and injects the user ID into the request context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle rejects the request with 401 unless it carries a valid access token.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.authenticator.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err == nil && userID == uuid.Nil {
			err = apierrors.NewErrUnauthorized("invalid access token")
		}
		if err != nil {
			m.reject(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUserIDToContext(r.Context(), userID)))
	})
}

func (m *Authenticate) reject(w http.ResponseWriter, err error) {
	status, message := http.StatusUnauthorized, "unauthorized"

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		status, message = apiErr.Code, apiErr.Message
	}
	if status >= http.StatusInternalServerError {
		m.logger.Error("Authenticate middleware: failed to authenticate",
			"error", err.Error())
	} else {
		m.logger.Debug("Authenticate middleware: request rejected",
			"error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
