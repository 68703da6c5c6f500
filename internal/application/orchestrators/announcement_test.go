package orchestrators

import (
	"context"
	"errors"
	"testing"

	"academy/internal/domain/announcement"
	"academy/internal/domain/attendance"
	"academy/internal/domain/player"
	"academy/internal/domain/user"
)

// fakeDrafter echoes its arguments so tests can see what was asked for.
// POST: Records the last call; never fails
type fakeDrafter struct {
	topic, audience, tone string
	records               []attendance.Record
}

func (f *fakeDrafter) DraftAnnouncement(_ context.Context, topic, audience, tone string) string {
	f.topic, f.audience, f.tone = topic, audience, tone
	return "Draft about " + topic
}

func (f *fakeDrafter) SummarizeProgress(_ context.Context, p player.Player, records []attendance.Record) string {
	f.records = records
	return "Summary for " + p.Name
}

// TestExecuteDraftAnnouncement_Defaults verifies audience and tone defaults.
func TestExecuteDraftAnnouncement_Defaults(t *testing.T) {
	d := &fakeDrafter{}
	text, err := ExecuteDraftAnnouncement(context.Background(), DraftAnnouncementInput{Topic: "Court closure"}, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Draft about Court closure" {
		t.Errorf("text = %q", text)
	}
	if d.audience != announcement.AudienceAll || d.tone != DefaultTone {
		t.Errorf("audience = %s, tone = %s", d.audience, d.tone)
	}

	if _, err := ExecuteDraftAnnouncement(context.Background(), DraftAnnouncementInput{Topic: "  "}, d); !errors.Is(err, announcement.ErrEmptyTitle) {
		t.Errorf("error = %v, want ErrEmptyTitle", err)
	}
}

// TestExecutePostAnnouncement verifies the default title, author and board order.
func TestExecutePostAnnouncement(t *testing.T) {
	tests := []struct {
		name       string
		signIn     string
		input      PostAnnouncementInput
		wantTitle  string
		wantAuthor string
	}{
		{"anonymous default title", "", PostAnnouncementInput{Message: "Hall closed Friday"}, announcement.DefaultTitle, "admin"},
		{"signed in coach", "coach@lolo.com", PostAnnouncementInput{Title: "Rain", Message: "Outdoor drills cancelled", Audience: announcement.AudienceParents}, "Rain", "u1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			if tt.signIn != "" {
				st.Authenticate(context.Background(), tt.signIn, user.RoleCoach)
			}
			a, err := ExecutePostAnnouncement(context.Background(), tt.input, PostAnnouncementDeps{Store: st, Clock: testClock})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.Title != tt.wantTitle || a.AuthorID != tt.wantAuthor || a.Date != "2024-03-05" {
				t.Errorf("announcement = %+v", a)
			}
			if got := st.Snapshot().Announcements[0].ID; got != a.ID {
				t.Errorf("first announcement = %s, want the new one", got)
			}
		})
	}
}

// TestExecutePostAnnouncement_EmptyMessage verifies an empty body is rejected.
func TestExecutePostAnnouncement_EmptyMessage(t *testing.T) {
	st := newTestStore(t)
	_, err := ExecutePostAnnouncement(context.Background(), PostAnnouncementInput{Title: "X"}, PostAnnouncementDeps{Store: st, Clock: testClock})
	if !errors.Is(err, announcement.ErrEmptyMessage) {
		t.Errorf("error = %v, want ErrEmptyMessage", err)
	}
	if n := len(st.Snapshot().Announcements); n != 1 {
		t.Errorf("announcements = %d, want 1", n)
	}
}

// TestExecuteSummarizeProgress verifies only the player's records reach the drafter.
func TestExecuteSummarizeProgress(t *testing.T) {
	st := newTestStore(t)
	d := &fakeDrafter{}

	text, err := ExecuteSummarizeProgress(context.Background(), "p2", st, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Summary for Bob Smith" {
		t.Errorf("text = %q", text)
	}
	if len(d.records) != 1 || d.records[0].Status != attendance.StatusLate {
		t.Errorf("records = %+v", d.records)
	}

	if _, err := ExecuteSummarizeProgress(context.Background(), "ghost", st, d); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("error = %v, want ErrPlayerNotFound", err)
	}
}
