package middleware

import (
	"net/http"

	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/metrics"
)

// Metrics counts every served request by method, path, and status.
func Metrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			collector.RecordHTTPRequest(r.Method, r.URL.Path, rw.status)
		})
	}
}
