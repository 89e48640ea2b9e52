package middlewares

import (
	"context"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/logger"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned by LoggingMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LoggingMiddleware logs every request with its outcome. Each request gets an id,
// taken from X-Request-ID when the client sent one, echoed back in the response.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		start := time.Now()

		w.Header().Set(requestIDHeader, reqID)
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, reqID))

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		log := logger.Log.Infow
		if status >= http.StatusInternalServerError {
			log = logger.Log.Errorw
		}
		log("request",
			"request_id", reqID,
			"method", r.Method,
			"uri", r.RequestURI,
			"status", status,
			"response_size", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
