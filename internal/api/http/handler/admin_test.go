package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/mocks"
	"github.com/dtroode/chirpy-server/internal/testutil"
)

func TestAdmin_Reset(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAdminService(t)
	svc.On("Reset", mock.Anything).Return(nil)

	h := NewAdmin(svc, testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.Reset(rec, httptest.NewRequest(http.MethodPost, "/admin/reset", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestAdmin_Reset_Forbidden(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAdminService(t)
	svc.On("Reset", mock.Anything).Return(apierrors.NewErrForbidden("Only allowed in dev environment"))

	h := NewAdmin(svc, testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.Reset(rec, httptest.NewRequest(http.MethodPost, "/admin/reset", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Only allowed in dev environment", decodeError(t, rec))
}

func TestAdmin_Metrics(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAdminService(t)
	svc.On("Hits").Return(int64(3))

	h := NewAdmin(svc, testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.Metrics(rec, httptest.NewRequest(http.MethodGet, "/admin/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Chirpy has been visited 3 times!")
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Healthz(rec, httptest.NewRequest(http.MethodGet, "/api/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "OK", rec.Body.String())
}
