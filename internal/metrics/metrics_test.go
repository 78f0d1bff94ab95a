package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHits_ConcurrentInc(t *testing.T) {
	t.Parallel()

	var h Hits
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Inc()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), h.Load())

	h.Reset()
	assert.Equal(t, int64(0), h.Load())
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.Hits.Inc()
	m.Hits.Inc()
	m.RequestsTotal.WithLabelValues("/api/healthz", http.MethodGet, "200").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/healthz", http.MethodGet, "200")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "chirpy_fileserver_hits_total 2")
	assert.Contains(t, string(body), `chirpy_http_requests_total{method="GET",route="/api/healthz",status="200"} 1`)
}
