package web

import (
	"net/http"

	"academy/internal/application/orchestrators"
	"academy/internal/domain/announcement"
	"academy/internal/platform/markdown"
)

// announcementView is an announcement with its message rendered from Markdown.
type announcementView struct {
	announcement.Announcement
	MessageHTML string `json:"messageHtml"`
}

// handleAnnouncements handles GET /api/announcements, newest first.
func (s *server) handleAnnouncements(w http.ResponseWriter, r *http.Request) {
	anns := s.Store.Snapshot().Announcements
	views := make([]announcementView, 0, len(anns))
	for _, a := range anns {
		html, err := markdown.ToHTML(a.Message)
		if err != nil {
			internalError(w, err)
			return
		}
		views = append(views, announcementView{Announcement: a, MessageHTML: html})
	}
	writeJSON(w, http.StatusOK, views)
}

// postAnnouncementRequest is the body of POST /api/announcements.
type postAnnouncementRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Audience string `json:"audience"`
}

// handlePostAnnouncement handles POST /api/announcements
func (s *server) handlePostAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req postAnnouncementRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	a, err := orchestrators.ExecutePostAnnouncement(r.Context(), orchestrators.PostAnnouncementInput(req), orchestrators.PostAnnouncementDeps{Store: s.Store, Clock: s.Clock})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// draftAnnouncementRequest is the body of POST /api/announcements/draft.
type draftAnnouncementRequest struct {
	Topic    string `json:"topic"`
	Audience string `json:"audience"`
	Tone     string `json:"tone"`
}

// handleDraftAnnouncement handles POST /api/announcements/draft.
// Drafting failures come back as placeholder text with status 200.
func (s *server) handleDraftAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req draftAnnouncementRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	text, err := orchestrators.ExecuteDraftAnnouncement(r.Context(), orchestrators.DraftAnnouncementInput(req), s.Drafter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: text})
}
