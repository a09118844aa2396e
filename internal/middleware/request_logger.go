package middleware

import (
	"context"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

type ctxKey string

const (
	ContextKeyRequestID ctxKey = "requestID"
	RequestIDHeader            = "X-Request-ID"
)

// RequestLogger tags each request with an id (reusing an incoming
// X-Request-ID) and logs one line when it completes.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)
		r = r.WithContext(context.WithValue(r.Context(), ContextKeyRequestID, reqID))

		m := httpsnoop.CaptureMetrics(next, w, r)

		entry := utils.Logger.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     m.Code,
			"durationMs": m.Duration.Milliseconds(),
			"requestID":  reqID,
		})
		if m.Code >= http.StatusInternalServerError {
			entry.Warn("Request completed with server error")
			return
		}
		entry.Debug("Request completed")
	})
}

// RequestID returns the id RequestLogger stored on ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}
