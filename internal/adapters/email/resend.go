package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/resend/resend-go/v2"
)

// resendBatchLimit is the maximum number of emails per batch call.
const resendBatchLimit = 100

// ResendSender delivers email through the Resend API.
type ResendSender struct {
	client  *resend.Client
	from    string
	replyTo string
}

// NewResendSender creates a sender for the given API key.
// PRE: apiKey is a Resend API key; from is a verified sender such as "Academy <noreply@example.com>"
// POST: Returns a ready-to-use sender
func NewResendSender(apiKey, from, replyTo string) *ResendSender {
	return &ResendSender{
		client:  resend.NewClient(apiKey),
		from:    from,
		replyTo: replyTo,
	}
}

func (s *ResendSender) request(msg Message) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}
	if s.replyTo != "" {
		req.ReplyTo = s.replyTo
	}
	if msg.Tag != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: msg.Tag}}
	}
	return req
}

// Send delivers a single message.
// PRE: msg has a recipient and a subject
// POST: The message is queued at Resend; returns its message ID
func (s *ResendSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}
	sent, err := s.client.Emails.SendWithContext(ctx, s.request(msg))
	if err != nil {
		slog.ErrorContext(ctx, "email_event", "event", "resend_failed", "error", err, "to", msg.To, "subject", msg.Subject)
		return Receipt{}, fmt.Errorf("resend send failed: %w", err)
	}
	slog.InfoContext(ctx, "email_event", "event", "resend_sent", "message_id", sent.Id, "to", msg.To, "tag", msg.Tag)
	return Receipt{MessageID: sent.Id, SentAt: time.Now()}, nil
}

// SendBatch delivers messages through the batch API in chunks of resendBatchLimit.
// PRE: every message has a recipient
// POST: Receipts are returned in request order; on error, receipts for completed chunks are returned
func (s *ResendSender) SendBatch(ctx context.Context, msgs []Message) ([]Receipt, error) {
	var receipts []Receipt
	for start := 0; start < len(msgs); start += resendBatchLimit {
		chunk := msgs[start:min(start+resendBatchLimit, len(msgs))]

		reqs := make([]*resend.SendEmailRequest, 0, len(chunk))
		for _, m := range chunk {
			if err := m.Validate(); err != nil {
				return receipts, err
			}
			reqs = append(reqs, s.request(m))
		}

		resp, err := s.client.Batch.SendWithContext(ctx, reqs)
		if err != nil {
			slog.ErrorContext(ctx, "email_event", "event", "resend_batch_failed", "error", err, "batch_size", len(chunk))
			return receipts, fmt.Errorf("resend batch send failed: %w", err)
		}
		now := time.Now()
		for _, item := range resp.Data {
			receipts = append(receipts, Receipt{MessageID: item.Id, SentAt: now})
		}
		slog.InfoContext(ctx, "email_event", "event", "resend_batch_sent", "count", len(chunk), "total_sent", len(receipts))
	}
	return receipts, nil
}
