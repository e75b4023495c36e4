package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.FetchAttempts.WithLabelValues("success").Inc()
	m.Reconciled.WithLabelValues("list", "inserted").Add(2)
	m.FetchInFlight.Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.FetchAttempts.WithLabelValues("success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Reconciled.WithLabelValues("list", "inserted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FetchInFlight))
}

func TestNew_NilRegistry(t *testing.T) {
	a := New(nil)
	b := New(nil)
	a.FetchInFlight.Inc()
	assert.Equal(t, float64(0), testutil.ToFloat64(b.FetchInFlight))
}

func TestHandler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Skipped.WithLabelValues("detail").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `bills_skipped_total{stage="detail"} 1`)
}
