package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		wantLevel  string
		wantStatus string
	}{
		{name: "success", status: http.StatusOK, wantLevel: "level=INFO", wantStatus: "status=200"},
		{name: "client error", status: http.StatusNotFound, wantLevel: "level=INFO", wantStatus: "status=404"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "level=ERROR", wantStatus: "status=500"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			mw := NewLogging(logger.NewWithWriter(&buf, 0))

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			})

			rec := httptest.NewRecorder()
			mw.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chirps", nil))

			assert.Equal(t, tt.status, rec.Code)
			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, tt.wantStatus)
			assert.Contains(t, out, "method=GET")
			assert.Contains(t, out, "path=/api/chirps")
			assert.Contains(t, out, "size=4")
		})
	}
}

func TestLogging_Handle_ImplicitOK(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mw := NewLogging(logger.NewWithWriter(&buf, 0))

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	mw.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "status=200")
}

func TestLogging_Handle_NoopLogger(t *testing.T) {
	t.Parallel()

	mw := NewLogging(testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	mw.Handle(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
