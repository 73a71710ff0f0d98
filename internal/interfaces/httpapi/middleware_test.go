package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS_AllowedOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://scoreboard.example"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/batsmen/top", nil)
	req.Header.Set("Origin", "https://scoreboard.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://scoreboard.example" {
		t.Fatalf("expected origin echoed, got %q", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://scoreboard.example"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/batsmen/top", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header, got %q", got)
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
	handler := CORS([]string{"*"}, next)

	req := httptest.NewRequest(http.MethodOptions, "/v1/matches/upload", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if called {
		t.Fatal("expected preflight to stop before the handler")
	}
}

func TestShouldTraceRequest(t *testing.T) {
	if shouldTraceRequest("/healthz") {
		t.Fatal("expected /healthz to be excluded from tracing")
	}
	if !shouldTraceRequest("/v1/matches/upload") {
		t.Fatal("expected business route to be traced")
	}
}
