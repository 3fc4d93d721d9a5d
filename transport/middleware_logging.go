package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	appcontext "github.com/muhammadheryan/echobody/utils/context"
	"github.com/muhammadheryan/echobody/utils/logger"
	"github.com/muhammadheryan/echobody/utils/metrics"
	"go.uber.org/zap"
)

// LoggingMiddleware logs every request, counts it by route template and puts
// the request path on the context for downstream log lines.
func LoggingMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			r = r.WithContext(appcontext.WithEndpoint(r.Context(), r.URL.Path))

			logger.Info("New request received", zap.String("endpoint", r.URL.Path))
			next.ServeHTTP(wrapped, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}
			metrics.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(wrapped.statusCode)).Inc()

			logger.Info(
				"HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrapped.statusCode),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
