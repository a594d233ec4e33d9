package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectMetric extracts the first metric whose labels include all of labels.
func collectMetric(t *testing.T, c prometheus.Collector, labels map[string]string) *dto.Metric {
	t.Helper()
	ch := make(chan prometheus.Metric, 100)
	c.Collect(ch)
	close(ch)

	for m := range ch {
		d := &dto.Metric{}
		if err := m.Write(d); err != nil {
			continue
		}
		if hasLabels(d, labels) {
			return d
		}
	}
	return nil
}

func hasLabels(d *dto.Metric, labels map[string]string) bool {
	for k, v := range labels {
		found := false
		for _, lp := range d.GetLabel() {
			if lp.GetName() == k && lp.GetValue() == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestPrometheusMetrics_CountsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics("metrics-route-test"))
	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	m := collectMetric(t, httpRequestsTotal, map[string]string{
		"service": "metrics-route-test",
		"method":  "GET",
		"path":    "/products/{id}",
		"status":  "200",
	})
	require.NotNil(t, m)
	assert.Equal(t, float64(3), m.GetCounter().GetValue())
}

func TestPrometheusMetrics_RecordsErrorStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics("metrics-status-test"))
	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", nil))

	m := collectMetric(t, httpRequestsTotal, map[string]string{
		"service": "metrics-status-test",
		"status":  "422",
	})
	require.NotNil(t, m)
	assert.Equal(t, float64(1), m.GetCounter().GetValue())

	h := collectMetric(t, httpRequestDuration, map[string]string{"service": "metrics-status-test"})
	require.NotNil(t, h)
	assert.Equal(t, uint64(1), h.GetHistogram().GetSampleCount())
}

func TestPrometheusMetrics_InFlightReturnsToZero(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics("metrics-inflight-test"))

	var during float64
	r.Get("/slow", func(w http.ResponseWriter, r *http.Request) {
		during = collectMetric(t, httpRequestsInFlight, map[string]string{"service": "metrics-inflight-test"}).GetGauge().GetValue()
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, float64(1), during)
	after := collectMetric(t, httpRequestsInFlight, map[string]string{"service": "metrics-inflight-test"})
	assert.Equal(t, float64(0), after.GetGauge().GetValue())
}
