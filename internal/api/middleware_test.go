package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMetricsPathCollapsesPlanIDs(t *testing.T) {
	cases := map[string]string{
		"/plans/6f9e0a52-9c1d-4c93-8a1e-2f1f2cbb3a77": "/plans/{id}",
		"/plans/not-a-uuid":                           "/plans/{id}",
		"/plans":                                      "/plans",
		"/plans/":                                     "/plans/",
		"/health":                                     "/health",
		"/metrics":                                    "/metrics",
	}

	for in, want := range cases {
		if got := metricsPath(in); got != want {
			t.Errorf("metricsPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoggingMiddlewareCapturesStatus(t *testing.T) {
	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/plans/abc", nil))

	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418 passed through", rr.Code)
	}
	if rr.Body.String() != "short and stout" {
		t.Errorf("body = %q, middleware must not alter the response", rr.Body.String())
	}
}
