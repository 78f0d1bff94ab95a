package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/mocks"
	"github.com/dtroode/chirpy-server/internal/testutil"
)

const testPolkaKey = "f271c81ff7084ee5b99a5091b42d486e"

func TestWebhook_Polka(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		body       string
		setup      func(svc *mocks.UserService)
		wantStatus int
	}{
		{
			name:   "upgrade",
			header: "ApiKey " + testPolkaKey,
			body:   `{"event":"user.upgraded","data":{"user_id":"` + userID.String() + `"}}`,
			setup: func(svc *mocks.UserService) {
				svc.On("Upgrade", mock.Anything, userID).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "upgrade with camel case field",
			header: "ApiKey " + testPolkaKey,
			body:   `{"event":"user.upgraded","data":{"userId":"` + userID.String() + `"}}`,
			setup: func(svc *mocks.UserService) {
				svc.On("Upgrade", mock.Anything, userID).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "other event is acknowledged",
			header:     "ApiKey " + testPolkaKey,
			body:       `{"event":"user.payment_failed","data":{"user_id":"` + userID.String() + `"}}`,
			setup:      func(*mocks.UserService) {},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "unknown user",
			header: "ApiKey " + testPolkaKey,
			body:   `{"event":"user.upgraded","data":{"user_id":"` + userID.String() + `"}}`,
			setup: func(svc *mocks.UserService) {
				svc.On("Upgrade", mock.Anything, userID).Return(apierrors.NewErrNotFound("user not found"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing key",
			body:       `{"event":"user.upgraded"}`,
			setup:      func(*mocks.UserService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong key",
			header:     "ApiKey nope",
			body:       `{"event":"user.upgraded"}`,
			setup:      func(*mocks.UserService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer scheme is rejected",
			header:     "Bearer " + testPolkaKey,
			body:       `{"event":"user.upgraded"}`,
			setup:      func(*mocks.UserService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed body",
			header:     "ApiKey " + testPolkaKey,
			body:       `{"event":`,
			setup:      func(*mocks.UserService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewUserService(t)
			tt.setup(svc)

			h := NewWebhook(svc, testPolkaKey, testutil.MakeNoopLogger())
			req := httptest.NewRequest(http.MethodPost, "/api/polka/webhooks", strings.NewReader(tt.body))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.Polka(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
