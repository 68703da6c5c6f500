package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"academy/internal/domain/attendance"
	"academy/internal/domain/player"
)

// generator is the single model call the drafter needs.
type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// genaiGenerator calls the Gemini API through the genai client.
type genaiGenerator struct {
	client *genai.Client
	model  string
}

// Generate sends prompt as a single user turn and returns the concatenated text parts.
func (g *genaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("genai generate failed: %w", err)
	}
	return resp.Text(), nil
}

// GenAIDrafter drafts text with a Gemini model.
type GenAIDrafter struct {
	gen   generator
	model string
}

// NewGenAIDrafter creates a drafter using the Gemini API.
// PRE: apiKey is non-empty
// POST: Returns a ready drafter, or an error if the client cannot be created
func NewGenAIDrafter(ctx context.Context, apiKey, model string) (*GenAIDrafter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAIDrafter{gen: &genaiGenerator{client: client, model: model}, model: model}, nil
}

// DraftAnnouncement asks the model for a short announcement.
// POST: Returns the draft, MsgEmptyAnnouncement on an empty answer, MsgAnnouncementFailed on error
func (d *GenAIDrafter) DraftAnnouncement(ctx context.Context, topic, audience, tone string) string {
	return d.complete(ctx, "announcement", AnnouncementPrompt(topic, audience, tone), MsgEmptyAnnouncement, MsgAnnouncementFailed)
}

// SummarizeProgress asks the model for a parent-facing progress summary of p.
// POST: Returns the summary, MsgEmptyProgress on an empty answer, MsgProgressFailed on error
func (d *GenAIDrafter) SummarizeProgress(ctx context.Context, p player.Player, records []attendance.Record) string {
	return d.complete(ctx, "progress", ProgressPrompt(p, records), MsgEmptyProgress, MsgProgressFailed)
}

func (d *GenAIDrafter) complete(ctx context.Context, kind, prompt, empty, failed string) string {
	text, err := d.gen.Generate(ctx, prompt)
	if err != nil {
		slog.ErrorContext(ctx, "ai_event", "event", "generate_failed", "kind", kind, "model", d.model, "error", err)
		return failed
	}
	text = strings.TrimSpace(text)
	if text == "" {
		slog.WarnContext(ctx, "ai_event", "event", "empty_response", "kind", kind, "model", d.model)
		return empty
	}
	slog.InfoContext(ctx, "ai_event", "event", "generated", "kind", kind, "model", d.model, "chars", len(text))
	return text
}
