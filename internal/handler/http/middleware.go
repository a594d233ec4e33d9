package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/utafrali/mangomarket/pkg/httputil"
	"github.com/utafrali/mangomarket/pkg/logger"
	"github.com/utafrali/mangomarket/pkg/middleware"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const deviceIDKey contextKey = "device_id"

// maxDeviceIDLength bounds the X-Device-ID header; device ids also name files
// in the file state backend.
const maxDeviceIDLength = 128

// RequireDeviceID reads the X-Device-ID header and stores it in the request
// context. Requests without a usable device id are rejected with 400.
func RequireDeviceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(middleware.DeviceIDHeader))
		if !validDeviceID(id) {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{
					Code:      "INVALID_INPUT",
					Message:   middleware.DeviceIDHeader + " header is required",
					RequestID: logger.CorrelationIDFromContext(r.Context()),
				},
			})
			return
		}
		ctx := context.WithValue(r.Context(), deviceIDKey, id)
		ctx = logger.WithDeviceID(ctx, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validDeviceID accepts ids made of letters, digits, dashes and underscores.
func validDeviceID(id string) bool {
	if id == "" || len(id) > maxDeviceIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// deviceIDFromContext extracts the device id stored by RequireDeviceID.
func deviceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(deviceIDKey).(string)
	return id
}

// ContentTypeJSON enforces that requests with a body have Content-Type: application/json.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				httputil.WriteJSON(w, http.StatusUnsupportedMediaType, httputil.Response{
					Error: &httputil.ErrorResponse{Code: "UNSUPPORTED_MEDIA_TYPE", Message: "Content-Type must be application/json"},
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
