package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"academy/internal/application/store"
	"academy/internal/domain/payment"
)

// RecordPaymentInput carries input for the payment orchestrator.
type RecordPaymentInput struct {
	PlayerID  string
	Amount    int
	Method    string
	Reference string
	Date      string // optional, defaults to today
}

// RecordPaymentDeps holds dependencies for RecordPayment.
type RecordPaymentDeps struct {
	Store store.ReadDispatcher
	Clock Clock
}

// RecordPaymentResult carries the ledger entry and the player's balance after it.
type RecordPaymentResult struct {
	Payment payment.Payment `json:"payment"`
	Balance int             `json:"balance"`
}

// ExecuteRecordPayment appends a payment to the ledger.
// PRE: Amount > 0, Method is a known method, PlayerID names an existing player
// POST: Ledger entry appended and the player's balance raised by Amount. If the player is removed
// before the dispatch lands, the entry stays in the ledger and ErrPlayerNotFound is returned.
func ExecuteRecordPayment(ctx context.Context, input RecordPaymentInput, deps RecordPaymentDeps) (RecordPaymentResult, error) {
	date := input.Date
	if date == "" {
		date = deps.Clock.today()
	}
	pay := payment.Payment{
		ID:        deps.Clock.id(),
		PlayerID:  input.PlayerID,
		Date:      date,
		Amount:    input.Amount,
		Method:    input.Method,
		Reference: strings.TrimSpace(input.Reference),
	}
	if err := pay.Validate(); err != nil {
		return RecordPaymentResult{}, err
	}
	if _, ok := deps.Store.Snapshot().FindPlayer(pay.PlayerID); !ok {
		return RecordPaymentResult{}, ErrPlayerNotFound
	}

	next := deps.Store.Dispatch(ctx, store.AddPayment{Payment: pay})
	p, ok := next.FindPlayer(pay.PlayerID)
	if !ok {
		slog.WarnContext(ctx, "payment_event", "event", "payment_orphaned", "payment_id", pay.ID, "player_id", pay.PlayerID)
		return RecordPaymentResult{Payment: pay}, ErrPlayerNotFound
	}

	slog.InfoContext(ctx, "payment_event", "event", "payment_recorded", "payment_id", pay.ID, "player_id", pay.PlayerID, "amount", pay.Amount, "method", pay.Method, "balance", p.Balance)
	return RecordPaymentResult{Payment: pay, Balance: p.Balance}, nil
}
