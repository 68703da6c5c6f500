package ai

import (
	"context"
	"fmt"
	"strings"

	"academy/internal/domain/attendance"
	"academy/internal/domain/player"
)

// DefaultModel is the text model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Placeholder texts returned instead of errors. Callers display them as-is.
const (
	MsgUnavailable         = "AI Service Unavailable: Please configure API_KEY."
	MsgProgressUnavailable = "AI Service Unavailable."
	MsgEmptyAnnouncement   = "Could not generate text."
	MsgEmptyProgress       = "No analysis available."
	MsgAnnouncementFailed  = "Error generating announcement. Please try again."
	MsgProgressFailed      = "Could not analyze progress at this time."
)

const (
	academyDescription    = "badminton academy"
	announcementWordLimit = 100
	progressSentenceLimit = 3
	noNotesRecorded       = "No specific notes recorded."
)

// Drafter produces text for announcements and progress reports.
// Implementations never return errors: failures come back as one of the Msg placeholders.
type Drafter interface {
	DraftAnnouncement(ctx context.Context, topic, audience, tone string) string
	SummarizeProgress(ctx context.Context, p player.Player, records []attendance.Record) string
}

// New returns a Drafter backed by the text model, or an UnavailableDrafter when apiKey is empty
// or the client cannot be created.
// PRE: model may be empty (DefaultModel is used)
// POST: Never returns nil
func New(ctx context.Context, apiKey, model string) Drafter {
	if strings.TrimSpace(apiKey) == "" {
		return UnavailableDrafter{}
	}
	d, err := NewGenAIDrafter(ctx, apiKey, model)
	if err != nil {
		return UnavailableDrafter{}
	}
	return d
}

// AnnouncementPrompt builds the prompt for an announcement draft.
func AnnouncementPrompt(topic, audience, tone string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short, clear, and professional announcement for a %s.", academyDescription)
	fmt.Fprintf(&b, "\nTopic: %s", topic)
	fmt.Fprintf(&b, "\nTarget Audience: %s", audience)
	fmt.Fprintf(&b, "\nTone: %s", tone)
	fmt.Fprintf(&b, "\nKeep it under %d words.", announcementWordLimit)
	return b.String()
}

// ProgressPrompt builds the prompt for a player's progress summary.
// Only records belonging to p are considered; late arrivals count as attended.
func ProgressPrompt(p player.Player, records []attendance.Record) string {
	total, attended := 0, 0
	var notes []string
	for _, r := range records {
		if r.PlayerID != p.ID {
			continue
		}
		total++
		if r.Attended() {
			attended++
		}
		if r.Notes != "" {
			notes = append(notes, r.Notes)
		}
	}
	noteText := strings.Join(notes, "; ")
	if noteText == "" {
		noteText = noNotesRecorded
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the progress of a %s student named %s.", academyDescription, p.Name)
	fmt.Fprintf(&b, "\nAttendance: %d/%d sessions.", attended, total)
	fmt.Fprintf(&b, "\nCoach Notes: %s", noteText)
	fmt.Fprintf(&b, "\n\nProvide a brief, encouraging summary (max %d sentences) for the parent, highlighting consistency and areas mentioned in notes.", progressSentenceLimit)
	return b.String()
}

// UnavailableDrafter answers every request with the unavailable placeholder.
type UnavailableDrafter struct{}

// DraftAnnouncement returns MsgUnavailable.
func (UnavailableDrafter) DraftAnnouncement(context.Context, string, string, string) string {
	return MsgUnavailable
}

// SummarizeProgress returns MsgProgressUnavailable.
func (UnavailableDrafter) SummarizeProgress(context.Context, player.Player, []attendance.Record) string {
	return MsgProgressUnavailable
}
