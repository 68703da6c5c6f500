package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"academy/internal/application/store"
	"academy/internal/domain/user"
)

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	seed, err := store.LoadSeed(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	return store.New(seed)
}

// TestRequireSession covers which requests need a signed-in user.
func TestRequireSession(t *testing.T) {
	tests := []struct {
		name       string
		signedIn   bool
		method     string
		path       string
		wantStatus int
	}{
		{"anonymous read", false, "GET", "/api/dashboard", http.StatusOK},
		{"anonymous login", false, "POST", "/api/login", http.StatusOK},
		{"anonymous write", false, "POST", "/api/payments", http.StatusUnauthorized},
		{"anonymous delete", false, "DELETE", "/api/players/p1", http.StatusUnauthorized},
		{"signed in write", true, "POST", "/api/payments", http.StatusOK},
		{"anonymous non-api post", false, "POST", "/healthz", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newSeededStore(t)
			if tt.signedIn {
				st.Authenticate(context.Background(), "admin@lolo.com", user.RoleAdmin)
			}
			handler := Chain(okHandler(http.StatusOK), RequireSession, Auth(st))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

// TestAuth_PutsUserInContext verifies the signed-in user reaches handlers.
func TestAuth_PutsUserInContext(t *testing.T) {
	st := newSeededStore(t)
	st.Authenticate(context.Background(), "coach@lolo.com", user.RoleCoach)

	var got user.User
	handler := Auth(st)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserFromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/me", nil))

	if got.ID != "u1" {
		t.Errorf("user = %+v, want u1", got)
	}
}

// TestRateLimiter_Allow verifies the bucket empties and refills.
func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Second)
	rl.now = func() time.Time { return now }

	if !rl.Allow("1.2.3.4") || !rl.Allow("1.2.3.4") {
		t.Fatal("first two requests should pass")
	}
	if rl.Allow("1.2.3.4") {
		t.Error("third request within the interval should be limited")
	}
	if !rl.Allow("5.6.7.8") {
		t.Error("other clients have their own bucket")
	}

	now = now.Add(time.Second)
	if !rl.Allow("1.2.3.4") {
		t.Error("bucket should refill after the interval")
	}
}

// TestRateLimiter_SweepsIdleVisitors verifies idle buckets are dropped.
func TestRateLimiter_SweepsIdleVisitors(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, time.Second)
	rl.now = func() time.Time { return now }
	rl.Allow("1.2.3.4")

	now = now.Add(visitorTTL + time.Minute)
	rl.Allow("5.6.7.8")

	if _, ok := rl.visitors["1.2.3.4"]; ok {
		t.Error("idle visitor should have been swept")
	}
}

// TestSecurityHeaders verifies headers are set on every response.
func TestSecurityHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	SecurityHeaders(okHandler(http.StatusOK)).ServeHTTP(rr, httptest.NewRequest("GET", "/api/me", nil))

	for _, h := range []string{"Content-Security-Policy", "X-Frame-Options", "X-Content-Type-Options", "Referrer-Policy"} {
		if rr.Header().Get(h) == "" {
			t.Errorf("missing header %s", h)
		}
	}
}

// TestCSRF_ExemptsJSON verifies JSON posts pass while token-less form posts are rejected.
func TestCSRF_ExemptsJSON(t *testing.T) {
	key := []byte(strings.Repeat("k", 32))
	handler := CSRF(key, false, nil)(okHandler(http.StatusOK))

	jsonReq := httptest.NewRequest("POST", "/api/leads", strings.NewReader(`{}`))
	jsonReq.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, jsonReq)
	if rr.Code != http.StatusOK {
		t.Errorf("json status = %d, want 200", rr.Code)
	}

	formReq := httptest.NewRequest("POST", "/api/leads", strings.NewReader("name=x"))
	formReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, formReq)
	if rr.Code != http.StatusForbidden {
		t.Errorf("form status = %d, want 403", rr.Code)
	}
}

// TestCSRF_IssuesTokenForBodylessRequests verifies a token from a GET lets a bodyless DELETE through.
func TestCSRF_IssuesTokenForBodylessRequests(t *testing.T) {
	key := []byte(strings.Repeat("k", 32))
	handler := CSRF(key, false, nil)(okHandler(http.StatusNoContent))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/me", nil))
	token := rr.Header().Get(CSRFTokenHeader)
	if token == "" {
		t.Fatalf("GET response has no %s header", CSRFTokenHeader)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("GET response set no CSRF cookie")
	}

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"echoed token", token, http.StatusNoContent},
		{"missing token", "", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("DELETE", "/api/players/p4", nil)
			for _, c := range cookies {
				req.AddCookie(c)
			}
			if tt.token != "" {
				req.Header.Set(CSRFTokenHeader, tt.token)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (%s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
		})
	}
}
