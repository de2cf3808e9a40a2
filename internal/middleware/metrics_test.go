package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/metrics"
)

func TestMetricsCountsRequests(t *testing.T) {
	collector := metrics.NewCollector("test")
	handler := Metrics(collector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/generate", nil))

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `test_http_requests_total{method="POST",path="/api/generate",status="400"} 1`) {
		t.Fatalf("exposition missing counted request:\n%s", body)
	}
}
