package payment

import (
	"errors"
	"strings"
)

// Payment methods
const (
	MethodCash     = "cash"
	MethodTransfer = "transfer"
	MethodCard     = "card"
)

// ValidMethods contains all valid payment methods.
var ValidMethods = []string{MethodCash, MethodTransfer, MethodCard}

// Domain errors
var (
	ErrEmptyPlayerID   = errors.New("payment must reference a player")
	ErrNonPositive     = errors.New("payment amount must be positive")
	ErrInvalidMethod   = errors.New("payment method must be one of: cash, transfer, card")
	ErrEmptyPaidOnDate = errors.New("payment date cannot be empty")
)

// Payment is an immutable ledger entry. Recording one credits the player's balance.
type Payment struct {
	ID        string `json:"id" yaml:"id"`
	PlayerID  string `json:"playerId" yaml:"playerId"`
	Date      string `json:"date" yaml:"date"` // YYYY-MM-DD
	Amount    int    `json:"amount" yaml:"amount"`
	Method    string `json:"method" yaml:"method"`
	Reference string `json:"reference,omitempty" yaml:"reference"`
}

// Validate checks if the Payment has valid data.
// PRE: Payment struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Payment) Validate() error {
	if strings.TrimSpace(p.PlayerID) == "" {
		return ErrEmptyPlayerID
	}
	if p.Amount <= 0 {
		return ErrNonPositive
	}
	if !IsValidMethod(p.Method) {
		return ErrInvalidMethod
	}
	if strings.TrimSpace(p.Date) == "" {
		return ErrEmptyPaidOnDate
	}
	return nil
}

// IsValidMethod reports whether m is a known payment method.
func IsValidMethod(m string) bool {
	for _, v := range ValidMethods {
		if v == m {
			return true
		}
	}
	return false
}
