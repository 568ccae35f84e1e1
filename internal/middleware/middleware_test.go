package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	pkgLog "day-planner/pkg/log"
	"day-planner/pkg/metrics"
)

func newEngine(m Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Metrics(), m.RateLimit())
	r.GET("/items/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doGet(r http.Handler, path, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects a client over its burst", func(t *testing.T) {
		r := newEngine(New(pkgLog.NewNop(), 6))

		if code := doGet(r, "/items/1", "10.0.0.1:1234"); code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", code)
		}
		if code := doGet(r, "/items/1", "10.0.0.1:1234"); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}
	})

	t.Run("buckets are per client", func(t *testing.T) {
		r := newEngine(New(pkgLog.NewNop(), 6))

		doGet(r, "/items/1", "10.0.0.2:1234")
		if code := doGet(r, "/items/1", "10.0.0.3:1234"); code != http.StatusNoContent {
			t.Fatalf("expected 204 for a fresh client, got %d", code)
		}
	})

	t.Run("zero disables limiting", func(t *testing.T) {
		r := newEngine(New(pkgLog.NewNop(), 0))

		for i := 0; i < 20; i++ {
			if code := doGet(r, "/items/1", "10.0.0.4:1234"); code != http.StatusNoContent {
				t.Fatalf("request %d: expected 204, got %d", i, code)
			}
		}
	})
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestMetrics(t *testing.T) {
	r := newEngine(New(pkgLog.NewNop(), 0))

	matched := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "204")
	unmatched := metrics.RequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	beforeMatched := counterValue(t, matched)
	beforeUnmatched := counterValue(t, unmatched)

	doGet(r, "/items/42", "10.0.0.5:1234")
	doGet(r, "/items/43", "10.0.0.5:1234")
	doGet(r, "/nowhere", "10.0.0.5:1234")

	if got := counterValue(t, matched); got != beforeMatched+2 {
		t.Errorf("expected %v requests on the route template, got %v", beforeMatched+2, got)
	}
	if got := counterValue(t, unmatched); got != beforeUnmatched+1 {
		t.Errorf("expected %v unmatched requests, got %v", beforeUnmatched+1, got)
	}
}
