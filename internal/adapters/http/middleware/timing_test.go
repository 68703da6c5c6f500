package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"academy/internal/adapters/http/perf"
)

func okHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}

// TestTimingMiddleware_EmitsEntry verifies that a request entry is recorded with its status.
func TestTimingMiddleware_EmitsEntry(t *testing.T) {
	collector := perf.NewCollector(100)
	handler := Timing(collector, 0)(okHandler(http.StatusNotFound))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/missing", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
	if collector.TotalRecorded() != 1 {
		t.Errorf("TotalRecorded = %d, want 1", collector.TotalRecorded())
	}
}

// TestTimingMiddleware_NilCollector verifies middleware works without a collector.
func TestTimingMiddleware_NilCollector(t *testing.T) {
	rr := httptest.NewRecorder()
	Timing(nil, time.Second)(okHandler(http.StatusOK)).ServeHTTP(rr, httptest.NewRequest("GET", "/api/me", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

// TestTimingMiddleware_KeysByPattern verifies requests for different IDs share one route entry.
func TestTimingMiddleware_KeysByPattern(t *testing.T) {
	collector := perf.NewCollector(10)
	mux := http.NewServeMux()
	mux.Handle("PUT /api/players/{id}", okHandler(http.StatusOK))
	handler := Timing(collector, 0)(mux)

	for _, id := range []string{"p1", "p2", "p3"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("PUT", "/api/players/"+id, nil))
	}

	snap := collector.Snapshot(time.Now().Add(-time.Minute), 10)
	if len(snap.Requests.Slowest) != 1 {
		t.Fatalf("Requests.Slowest = %+v, want one route", snap.Requests.Slowest)
	}
	if got := snap.Requests.Slowest[0]; got.Name != "PUT /api/players/{id}" || got.Count != 3 {
		t.Errorf("route stat = %+v", got)
	}
}

// TestTimingMiddleware_HandlerPanic verifies the deferred recording runs when a handler panics.
func TestTimingMiddleware_HandlerPanic(t *testing.T) {
	collector := perf.NewCollector(100)
	handler := Timing(collector, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic to propagate, got nil")
		}
		if collector.TotalRecorded() != 1 {
			t.Errorf("TotalRecorded = %d, want 1", collector.TotalRecorded())
		}
	}()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/panic", nil))
}

// TestTimingMiddleware_PoolNoStateLeak verifies pooled writers do not carry a status between requests.
func TestTimingMiddleware_PoolNoStateLeak(t *testing.T) {
	collector := perf.NewCollector(100)

	rr1 := httptest.NewRecorder()
	Timing(collector, 0)(okHandler(http.StatusInternalServerError)).ServeHTTP(rr1, httptest.NewRequest("GET", "/api/fail", nil))

	rr2 := httptest.NewRecorder()
	Timing(collector, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})).ServeHTTP(rr2, httptest.NewRequest("GET", "/api/ok", nil))

	if rr1.Code != 500 || rr2.Code != 200 {
		t.Errorf("statuses = %d, %d; want 500, 200", rr1.Code, rr2.Code)
	}
	if got := collector.Snapshot(time.Now().Add(-time.Minute), 10).Requests.ServerErrors; got != 1 {
		t.Errorf("ServerErrors = %d, want 1", got)
	}
}

// BenchmarkTimingMiddleware measures per-request overhead.
func BenchmarkTimingMiddleware(b *testing.B) {
	collector := perf.NewCollector(perf.DefaultRingSize)
	handler := Timing(collector, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest("GET", "/api/dashboard", nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}
