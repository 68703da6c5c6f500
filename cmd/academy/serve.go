package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"academy/internal/adapters/ai"
	web "academy/internal/adapters/http"
	"academy/internal/adapters/http/perf"
	"academy/internal/application/store"
)

// shutdownGrace bounds how long in-flight requests may run after a stop signal.
const shutdownGrace = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API",
	Long: `Serve the academy API on ACADEMY_ADDR.

State lives in memory and starts from the bundled demo academy on every start.`,
	RunE: runServe,
}

var rateLimit int

func init() {
	serveCmd.Flags().IntVar(&rateLimit, "rate-limit", 20, "requests per second per client IP (0 disables)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	csrfKey, err := web.LoadCSRFKey(cfg.CSRFKey, cfg.IsProduction())
	if err != nil {
		return err
	}

	collector := perf.NewCollector(perf.DefaultRingSize)
	st, err := loadStore(store.WithObserver(collector.ObserveAction))
	if err != nil {
		return err
	}

	drafter := ai.New(ctx, cfg.AIKey, cfg.AIModel)
	if _, ok := drafter.(ai.UnavailableDrafter); ok {
		slog.Warn("ai_event", "event", "drafter_unavailable", "hint", "set API_KEY to enable drafting")
	}

	handler := web.NewMux(web.Deps{
		Store:               st,
		Drafter:             drafter,
		EmailSender:         newEmailSender(),
		Collector:           collector,
		Currency:            cfg.Currency,
		ReminderConcurrency: cfg.ReminderConcurrency,
	}, web.Options{
		CSRFKey:            csrfKey,
		SecureCookies:      cfg.IsProduction(),
		SlowRequest:        cfg.SlowRequestThreshold(),
		RateLimitPerSecond: rateLimit,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server_event", "event", "starting", "version", version, "addr", cfg.Addr, "env", cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("server_event", "event", "stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
