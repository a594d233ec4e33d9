package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORS_DefaultAllowsDeviceHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	CORS(DefaultCORSConfig())(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), DeviceIDHeader)
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	rec := httptest.NewRecorder()
	CORS(DefaultCORSConfig())(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCORS_ExplicitOrigins(t *testing.T) {
	mw := CORS(CORSConfig{AllowedOrigins: []string{"https://shop.example"}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://shop.example")
	rec := httptest.NewRecorder()
	mw(okHandler).ServeHTTP(rec, req)
	assert.Equal(t, "https://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	mw(okHandler).ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCacheControl_OnlyGET(t *testing.T) {
	mw := CacheControl(60)

	rec := httptest.NewRecorder()
	mw(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "public, max-age=60", rec.Header().Get("Cache-Control"))

	rec = httptest.NewRecorder()
	mw(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}

func TestIPAllowlist(t *testing.T) {
	tests := []struct {
		name   string
		cidrs  []string
		remote string
		want   int
	}{
		{"loopback allowed", []string{"127.0.0.0/8"}, "127.0.0.1:1234", http.StatusOK},
		{"outside range", []string{"10.0.0.0/8"}, "192.168.1.1:1234", http.StatusForbidden},
		{"second cidr matches", []string{"10.0.0.0/8", "192.168.0.0/16"}, "192.168.4.2:80", http.StatusOK},
		{"invalid cidr skipped", []string{"not-a-cidr"}, "127.0.0.1:1234", http.StatusForbidden},
		{"unparseable remote", []string{"127.0.0.0/8"}, "garbage", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)
			req.RemoteAddr = tt.remote
			rec := httptest.NewRecorder()
			IPAllowlist(tt.cidrs, discardLogger())(okHandler).ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRegisterPprof_EmptyAllowlistMountsNothing(t *testing.T) {
	r := chi.NewRouter()
	RegisterPprof(r, nil, discardLogger())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
