package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvProduction is the ACADEMY_ENV value that switches on production behaviour.
const EnvProduction = "production"

// Config is the process configuration, read once at startup.
type Config struct {
	Env           string `env:"ACADEMY_ENV"        envDefault:"development"`
	Addr          string `env:"ACADEMY_ADDR"       envDefault:":8080"`
	LogLevel      string `env:"ACADEMY_LOG_LEVEL"  envDefault:"info"`
	CSRFKey       string `env:"ACADEMY_CSRF_KEY"`
	AIKey         string `env:"API_KEY"`
	AIModel       string `env:"ACADEMY_AI_MODEL"   envDefault:"gemini-2.5-flash"`
	ResendKey     string `env:"ACADEMY_RESEND_KEY"`
	EmailFrom     string `env:"ACADEMY_EMAIL_FROM" envDefault:"LOLO Academy <noreply@lolo.academy>"`
	ReplyTo       string `env:"ACADEMY_REPLY_TO"   envDefault:"info@lolo.academy"`
	Currency      string `env:"ACADEMY_CURRENCY"   envDefault:"MVR"`
	SlowRequestMS int    `env:"ACADEMY_SLOW_REQUEST_MS" envDefault:"500"`

	// ReminderConcurrency bounds parallel reminder sends.
	ReminderConcurrency int `env:"ACADEMY_REMINDER_CONCURRENCY" envDefault:"4"`
}

// Load parses Config from the environment.
// PRE: none
// POST: Returns a Config with defaults applied, or an error naming the bad variable
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SlowRequestMS < 0 {
		return Config{}, fmt.Errorf("ACADEMY_SLOW_REQUEST_MS must not be negative, got %d", cfg.SlowRequestMS)
	}
	return cfg, nil
}

// IsProduction reports whether the process runs in production.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// SlowRequestThreshold returns the duration above which requests are logged as slow.
func (c Config) SlowRequestThreshold() time.Duration {
	return time.Duration(c.SlowRequestMS) * time.Millisecond
}

// Level maps LogLevel to a slog level. Unknown values fall back to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger: JSON in production, text otherwise.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
