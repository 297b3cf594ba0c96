package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveUpstream_CountsByOutcome(t *testing.T) {
	m := New()

	m.ObserveUpstream("matches", "PL", OutcomeOK, 10*time.Millisecond)
	m.ObserveUpstream("matches", "PL", OutcomeOK, 20*time.Millisecond)
	m.ObserveUpstream("matches", "SA", OutcomeUnavailable, time.Millisecond)

	if got := testutil.ToFloat64(m.upstreamRequests.WithLabelValues("matches", "PL", OutcomeOK)); got != 2 {
		t.Fatalf("expected 2 ok requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.upstreamRequests.WithLabelValues("matches", "SA", OutcomeUnavailable)); got != 1 {
		t.Fatalf("expected 1 unavailable request, got %v", got)
	}
}

func TestAddWarnings_IgnoresNonPositive(t *testing.T) {
	m := New()

	m.AddWarnings("index", 0)
	m.AddWarnings("index", 2)

	if got := testutil.ToFloat64(m.warnings.WithLabelValues("index")); got != 2 {
		t.Fatalf("expected 2 warnings, got %v", got)
	}
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *Metrics
	m.ObserveUpstream("matches", "PL", OutcomeOK, time.Second)
	m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Second)
	m.AddWarnings("index", 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil metrics handler, got %d", rec.Code)
	}
}

func TestHandler_ExposesRegisteredSeries(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/standings", http.StatusSeeOther, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `footdash_http_requests_total{method="GET",route="/standings",status="303"} 1`) {
		t.Fatalf("expected http counter in exposition, got:\n%s", body)
	}
}
