package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	emailAdapter "academy/internal/adapters/email"
	"academy/internal/application/projections"
	"academy/internal/application/store"
	"academy/internal/domain/settings"
	"academy/internal/platform/markdown"
	"academy/internal/platform/money"
)

// reminderTag groups reminder sends at the email provider.
const reminderTag = "payment_reminder"

// defaultReminderConcurrency bounds parallel fallback sends when none is configured.
const defaultReminderConcurrency = 4

// SendPaymentRemindersInput carries input for the reminder run.
type SendPaymentRemindersInput struct {
	Force bool // send even when today is not the configured reminder day
}

// SendPaymentRemindersDeps holds dependencies for SendPaymentReminders.
type SendPaymentRemindersDeps struct {
	Store       store.Reader
	EmailSender emailAdapter.Sender
	Clock       Clock
	Currency    string
	Concurrency int
}

// ReminderFailure describes one reminder that could not be sent.
type ReminderFailure struct {
	PlayerID string `json:"playerId"`
	Error    string `json:"error"`
}

// SendPaymentRemindersResult summarizes a reminder run.
type SendPaymentRemindersResult struct {
	Ran       bool              `json:"ran"` // false when skipped because it is not the reminder day
	Sent      int               `json:"sent"`
	NoAddress []string          `json:"noAddress"` // players owing with no email on file
	Failed    []ReminderFailure `json:"failed"`
}

// ExecuteSendPaymentReminders emails the contact of every player with a negative balance.
// PRE: EmailSender is non-nil
// POST: Without Force, nothing is sent unless today's day of month equals the settings' reminder day
// INVARIANT: Balances are not touched; reminders are notifications only
func ExecuteSendPaymentReminders(ctx context.Context, input SendPaymentRemindersInput, deps SendPaymentRemindersDeps) (SendPaymentRemindersResult, error) {
	snap := deps.Store.Snapshot()
	result := SendPaymentRemindersResult{NoAddress: []string{}, Failed: []ReminderFailure{}}

	if !input.Force && !snap.Settings.IsReminderDay(deps.Clock.now().Day()) {
		slog.InfoContext(ctx, "reminder_event", "event", "reminders_skipped", "reminder_day", snap.Settings.PaymentReminderDay)
		return result, nil
	}
	result.Ran = true

	var pending []pendingReminder
	for _, owing := range projections.PlayersOwing(snap) {
		if owing.ContactEmail == "" {
			result.NoAddress = append(result.NoAddress, owing.PlayerID)
			continue
		}
		msg, err := reminderMessage(snap.Settings, owing, deps.Currency)
		if err != nil {
			return result, err
		}
		pending = append(pending, pendingReminder{playerID: owing.PlayerID, msg: msg})
	}

	if len(pending) > 0 {
		msgs := make([]emailAdapter.Message, len(pending))
		for i, p := range pending {
			msgs[i] = p.msg
		}
		receipts, err := deps.EmailSender.SendBatch(ctx, msgs)
		delivered := min(len(receipts), len(pending))
		result.Sent = delivered
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, fmt.Errorf("reminder run interrupted: %w", ctxErr)
			}
			slog.WarnContext(ctx, "reminder_event", "event", "batch_failed", "error", err, "delivered", delivered, "retrying", len(pending)-delivered)
			if err := sendEach(ctx, pending[delivered:], deps, &result); err != nil {
				return result, err
			}
		}
	}

	slog.InfoContext(ctx, "reminder_event", "event", "reminders_sent", "sent", result.Sent, "failed", len(result.Failed), "no_address", len(result.NoAddress), "forced", input.Force)
	return result, nil
}

// pendingReminder is a rendered reminder waiting to be sent.
type pendingReminder struct {
	playerID string
	msg      emailAdapter.Message
}

// sendEach sends reminders one at a time with bounded concurrency so each failure is
// attributed to its player. Used after a batch send fails part way.
// POST: result.Sent and result.Failed are updated; only context cancellation is returned
func sendEach(ctx context.Context, pending []pendingReminder, deps SendPaymentRemindersDeps, result *SendPaymentRemindersResult) error {
	limit := deps.Concurrency
	if limit < 1 {
		limit = defaultReminderConcurrency
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, p := range pending {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, sendErr := deps.EmailSender.Send(gctx, p.msg)

			mu.Lock()
			defer mu.Unlock()
			if sendErr != nil {
				result.Failed = append(result.Failed, ReminderFailure{PlayerID: p.playerID, Error: sendErr.Error()})
				return nil
			}
			result.Sent++
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("reminder run interrupted: %w", err)
	}
	sort.Slice(result.Failed, func(i, j int) bool { return result.Failed[i].PlayerID < result.Failed[j].PlayerID })
	return nil
}

// reminderMessage renders the reminder email for one player.
func reminderMessage(s settings.Settings, owing projections.OwingPlayer, currency string) (emailAdapter.Message, error) {
	amount := money.Format(currency, owing.Owed)

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", owing.ContactName)
	fmt.Fprintf(&b, "This is a friendly reminder from **%s** that **%s** (%s) has an outstanding balance of **%s**.\n\n",
		s.AcademyName, owing.Name, owing.StudentID, amount)
	b.WriteString("Please settle the amount at your earliest convenience.")
	if s.ContactPhone != "" {
		fmt.Fprintf(&b, "\nQuestions? Call us on %s.", s.ContactPhone)
	}
	text := b.String()

	html, err := markdown.ToHTML(text)
	if err != nil {
		return emailAdapter.Message{}, err
	}
	return emailAdapter.Message{
		To:      []string{owing.ContactEmail},
		Subject: fmt.Sprintf("%s: fee reminder for %s", s.AcademyName, owing.Name),
		HTML:    html,
		Text:    strings.ReplaceAll(text, "**", ""),
		Tag:     reminderTag,
	}, nil
}
