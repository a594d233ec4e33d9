package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveReady(t *testing.T, h *Handler) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestLivenessHandler_AlwaysReturns200(t *testing.T) {
	h := NewHandler()
	h.RegisterCritical("store", func(ctx context.Context) error { return errors.New("down") })

	rec := httptest.NewRecorder()
	h.LivenessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestReadinessHandler_AllHealthy(t *testing.T) {
	h := NewHandler()
	h.RegisterCritical("redis", func(ctx context.Context) error { return nil })
	h.RegisterNonCritical("kafka", func(ctx context.Context) error { return nil })

	rec, resp := serveReady(t, h)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusUp, resp.Status)
	assert.Len(t, resp.Checks, 2)
}

func TestReadinessHandler_CriticalFailure(t *testing.T) {
	h := NewHandler()
	h.RegisterCritical("redis", func(ctx context.Context) error { return errors.New("connection refused") })

	rec, resp := serveReady(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, StatusDown, resp.Status)
	assert.Equal(t, "connection refused", resp.Checks["redis"].Error)
	assert.True(t, resp.Checks["redis"].Critical)
}

func TestReadinessHandler_NonCriticalFailureDegrades(t *testing.T) {
	h := NewHandler()
	h.RegisterCritical("redis", func(ctx context.Context) error { return nil })
	h.RegisterNonCritical("kafka", func(ctx context.Context) error { return errors.New("no brokers") })

	rec, resp := serveReady(t, h)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusDegraded, resp.Status)
	assert.Equal(t, StatusDown, resp.Checks["kafka"].Status)
}
