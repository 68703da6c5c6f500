package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"academy/internal/adapters/email"
	"academy/internal/application/store"
	"academy/internal/platform/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// cfg is loaded once before any subcommand runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "academy",
	Short:         "Academy manager: players, sessions, fees and announcements",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		slog.SetDefault(cfg.NewLogger(os.Stderr))
		return nil
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, summaryCmd, remindCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadStore builds a store from the embedded demo data.
func loadStore(opts ...store.Option) (*store.Store, error) {
	seed, err := store.LoadSeed(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}
	return store.New(seed, opts...), nil
}

// newEmailSender returns Resend when a key is configured, otherwise a sender that only logs.
func newEmailSender() email.Sender {
	if cfg.ResendKey != "" {
		slog.Info("email_event", "event", "sender_configured", "provider", "resend")
		return email.NewResendSender(cfg.ResendKey, cfg.EmailFrom, cfg.ReplyTo)
	}
	if cfg.IsProduction() {
		slog.Warn("email_event", "event", "sender_disabled", "hint", "ACADEMY_RESEND_KEY is not set")
	} else {
		slog.Info("email_event", "event", "sender_configured", "provider", "noop")
	}
	return email.NewNoopSender()
}
