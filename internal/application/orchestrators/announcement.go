package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"academy/internal/application/store"
	"academy/internal/domain/announcement"
	"academy/internal/domain/attendance"
	"academy/internal/domain/player"
)

// Drafter produces text for announcements and progress summaries.
// Failures come back as placeholder text, never as errors.
type Drafter interface {
	DraftAnnouncement(ctx context.Context, topic, audience, tone string) string
	SummarizeProgress(ctx context.Context, p player.Player, records []attendance.Record) string
}

// DefaultTone is used when a draft is requested without a tone.
const DefaultTone = "professional"

// DraftAnnouncementInput carries input for the drafting orchestrator.
type DraftAnnouncementInput struct {
	Topic    string
	Audience string
	Tone     string
}

// ExecuteDraftAnnouncement asks the drafter for announcement text.
// PRE: Topic is non-empty
// POST: Returns generated text or a placeholder; nothing is posted
func ExecuteDraftAnnouncement(ctx context.Context, input DraftAnnouncementInput, drafter Drafter) (string, error) {
	if strings.TrimSpace(input.Topic) == "" {
		return "", announcement.ErrEmptyTitle
	}
	audience := input.Audience
	if audience == "" {
		audience = announcement.AudienceAll
	}
	tone := input.Tone
	if tone == "" {
		tone = DefaultTone
	}
	text := drafter.DraftAnnouncement(ctx, input.Topic, audience, tone)
	slog.InfoContext(ctx, "announcement_event", "event", "draft_generated", "audience", audience, "tone", tone, "chars", len(text))
	return text, nil
}

// PostAnnouncementInput carries input for posting to the board.
type PostAnnouncementInput struct {
	Title    string // empty uses announcement.DefaultTitle
	Message  string
	Audience string
}

// PostAnnouncementDeps holds dependencies for PostAnnouncement.
type PostAnnouncementDeps struct {
	Store store.ReadDispatcher
	Clock Clock
}

// ExecutePostAnnouncement publishes an announcement at the top of the board.
// PRE: Message is non-empty
// POST: Announcement prepended, authored by the signed-in user (or "admin" when anonymous)
func ExecutePostAnnouncement(ctx context.Context, input PostAnnouncementInput, deps PostAnnouncementDeps) (announcement.Announcement, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = announcement.DefaultTitle
	}
	audience := input.Audience
	if audience == "" {
		audience = announcement.AudienceAll
	}
	a := announcement.Announcement{
		ID:             deps.Clock.id(),
		Title:          title,
		Message:        input.Message,
		Date:           deps.Clock.today(),
		TargetAudience: audience,
		AuthorID:       deps.Store.Snapshot().CurrentUserID(fallbackCoachID),
	}
	if err := a.Validate(); err != nil {
		return announcement.Announcement{}, err
	}
	deps.Store.Dispatch(ctx, store.AddAnnouncement{Announcement: a})
	slog.InfoContext(ctx, "announcement_event", "event", "announcement_posted", "announcement_id", a.ID, "audience", a.TargetAudience, "author_id", a.AuthorID)
	return a, nil
}

// ExecuteSummarizeProgress asks the drafter for a parent-facing summary of a player.
// PRE: playerID names an existing player
// POST: Returns generated text or a placeholder
func ExecuteSummarizeProgress(ctx context.Context, playerID string, st store.Reader, drafter Drafter) (string, error) {
	snap := st.Snapshot()
	p, ok := snap.FindPlayer(playerID)
	if !ok {
		return "", ErrPlayerNotFound
	}
	records := snap.AttendanceFor(playerID)
	text := drafter.SummarizeProgress(ctx, p, records)
	slog.InfoContext(ctx, "announcement_event", "event", "progress_summarized", "player_id", playerID, "records", len(records))
	return text, nil
}
