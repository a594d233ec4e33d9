package middleware

import (
	"log/slog"
	"net/http"

	"github.com/utafrali/mangomarket/pkg/logger"
)

// DeviceIDHeader identifies the shopper's device; every device owns its own
// cart and checkout draft.
const DeviceIDHeader = "X-Device-ID"

// RequestLogger returns middleware that builds a request-scoped logger enriched
// with correlation_id, device_id, trace_id, and span_id, then stores it in
// context via logger.NewContext. Downstream handlers retrieve it with
// logger.FromContext(ctx).
//
// Mount it after RequestLogging (which sets correlation_id) and Tracing.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if logger.DeviceIDFromContext(ctx) == "" {
				if id := r.Header.Get(DeviceIDHeader); id != "" {
					ctx = logger.WithDeviceID(ctx, id)
				}
			}

			ctx = logger.NewContext(ctx, logger.WithContext(ctx, base))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
