package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"planmate-backend/internal/common/logger"
	"planmate-backend/internal/common/metrics"
)

// requestLogger logs one line per request and feeds the HTTP metrics.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			route := r.URL.Path
			metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())

			log.Info("http request", map[string]interface{}{
				"method":     r.Method,
				"path":       route,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   elapsed.String(),
				"request_id": middleware.GetReqID(r.Context()),
				"remote":     r.RemoteAddr,
			})
		})
	}
}
