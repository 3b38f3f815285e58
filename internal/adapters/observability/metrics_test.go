package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Biagem01/Orizon/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample per family so counters are non-zero
	observability.ObserveHTTP("/travels", "GET", 200, 12*time.Millisecond)
	observability.ObserveDB("travels.list", 3*time.Millisecond)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "orizon_http_requests_total") {
		t.Fatalf("expected orizon_http_requests_total in output")
	}
	if !strings.Contains(out, "orizon_db_queries_total") {
		t.Fatalf("expected orizon_db_queries_total in output")
	}
}

func TestServeDisabledWithoutAddr(t *testing.T) {
	// must return without binding a listener
	observability.Serve("", nil)
}
