package email

import (
	"context"
	"errors"
	"time"
)

// ErrNoRecipient is returned when a message has no address to deliver to.
var ErrNoRecipient = errors.New("email message has no recipient")

// Message is one outgoing email.
type Message struct {
	To      []string
	Subject string
	HTML    string // rendered body
	Text    string // plain-text alternative, optional
	Tag     string // provider tag used to group sends, e.g. "payment_reminder"
}

// Receipt is what the provider returns for an accepted message.
type Receipt struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers email through an external provider.
// SendBatch returns receipts in request order; on error the receipts cover the prefix of msgs
// that was delivered, and nothing after it was.
type Sender interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
	SendBatch(ctx context.Context, msgs []Message) ([]Receipt, error)
}

// Validate checks the message can be handed to a provider.
func (m *Message) Validate() error {
	for _, to := range m.To {
		if to != "" {
			return nil
		}
	}
	return ErrNoRecipient
}
