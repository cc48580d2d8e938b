package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("failed to read exposition: %v", err)
	}
	return string(body)
}

func assertContains(t *testing.T, body string, lines ...string) {
	t.Helper()

	for _, line := range lines {
		if !strings.Contains(body, line) {
			t.Errorf("expected exposition to contain %q", line)
		}
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.RecordSearch(3)

	assertContains(t, scrape(t, a),
		"vaultsearch_search_queries_total 1",
		"vaultsearch_search_results_total 3",
	)
	assertContains(t, scrape(t, b), "vaultsearch_search_queries_total 0")
}

func TestRecordVaultSelection(t *testing.T) {
	m := New()

	m.RecordVaultSelection(42, 1, 20*time.Millisecond)
	m.RecordVaultSelectionError()

	assertContains(t, scrape(t, m),
		"vaultsearch_indexed_documents 42",
		"vaultsearch_read_failures 1",
		`vaultsearch_vault_selections_total{status="success"} 1`,
		`vaultsearch_vault_selections_total{status="error"} 1`,
		"vaultsearch_crawl_duration_seconds_count 1",
	)
}

func TestRecordHTTPRequest(t *testing.T) {
	m := New()
	m.RecordHTTPRequest("/api/search", "200", time.Millisecond)

	assertContains(t, scrape(t, m),
		`vaultsearch_http_requests_total{route="/api/search",status="200"} 1`,
		`vaultsearch_http_request_duration_seconds_count{route="/api/search"} 1`,
	)
}
