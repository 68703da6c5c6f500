package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"academy/internal/adapters/email"
	"academy/internal/adapters/http/middleware"
	"academy/internal/adapters/http/perf"
	"academy/internal/application/orchestrators"
	"academy/internal/application/store"
)

// ErrBadCSRFKey is returned when ACADEMY_CSRF_KEY is not 64 hex characters.
var ErrBadCSRFKey = errors.New("ACADEMY_CSRF_KEY must be 64 hex characters (32 bytes)")

// ErrMissingCSRFKey is returned when production runs without a CSRF key.
var ErrMissingCSRFKey = errors.New("ACADEMY_CSRF_KEY is required in production")

// Academy is the store surface the handlers need.
type Academy interface {
	store.ReadDispatcher
	Authenticate(ctx context.Context, email, role string) store.Snapshot
	EndSession(ctx context.Context) store.Snapshot
}

// Deps holds everything the handlers call into.
type Deps struct {
	Store               Academy
	Drafter             orchestrators.Drafter
	EmailSender         email.Sender
	Collector           *perf.Collector // nil disables /admin/perf
	Clock               orchestrators.Clock
	Currency            string
	ReminderConcurrency int
}

// Options configures the middleware chain.
type Options struct {
	CSRFKey            []byte
	SecureCookies      bool
	TrustedOrigins     []string
	SlowRequest        time.Duration
	RateLimitPerSecond int // 0 disables rate limiting
}

// server carries Deps into the handler methods.
type server struct {
	Deps
}

// LoadCSRFKey decodes the hex CSRF secret. Outside production an empty key
// yields a random one, so form posts do not survive a restart.
func LoadCSRFKey(keyHex string, production bool) ([]byte, error) {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			return nil, ErrBadCSRFKey
		}
		return key, nil
	}
	if production {
		return nil, ErrMissingCSRFKey
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	slog.Warn("csrf_event", "event", "random_key", "hint", "set ACADEMY_CSRF_KEY to keep form tokens valid across restarts")
	return key, nil
}

// NewMux wires HTTP handlers for the academy API.
// PRE: deps.Store and deps.Drafter are non-nil; opts.CSRFKey is 32 bytes
func NewMux(deps Deps, opts Options) http.Handler {
	s := &server{Deps: deps}
	if s.EmailSender == nil {
		s.EmailSender = email.NewNoopSender()
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	// Request flow: Timing -> SecurityHeaders -> RateLimit -> Auth -> RequireSession -> CSRF -> mux
	middlewares := []func(http.Handler) http.Handler{
		middleware.CSRF(opts.CSRFKey, opts.SecureCookies, opts.TrustedOrigins),
		middleware.RequireSession,
		middleware.Auth(deps.Store),
	}
	if opts.RateLimitPerSecond > 0 {
		middlewares = append(middlewares, middleware.RateLimit(middleware.NewRateLimiter(opts.RateLimitPerSecond, time.Second)))
	}
	middlewares = append(middlewares, middleware.SecurityHeaders, middleware.Timing(deps.Collector, opts.SlowRequest))

	return middleware.Chain(mux, middlewares...)
}
