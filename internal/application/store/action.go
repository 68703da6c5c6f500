package store

import (
	"academy/internal/domain/announcement"
	"academy/internal/domain/attendance"
	"academy/internal/domain/batch"
	"academy/internal/domain/inventory"
	"academy/internal/domain/lead"
	"academy/internal/domain/payment"
	"academy/internal/domain/player"
	"academy/internal/domain/session"
	"academy/internal/domain/settings"
	"academy/internal/domain/tournament"
)

// Action is a request to change the snapshot. The set of actions is closed:
// only the types in this file implement it.
type Action interface {
	// Name is the stable identifier used in logs and timing entries.
	Name() string
	isAction()
}

// Authenticate signs in the user with Email, or a session-only user with Role
// when the email is unknown.
type Authenticate struct {
	Email string
	Role  string
}

// EndSession signs the current user out.
type EndSession struct{}

// AddPlayer registers a player. Balance is taken as the opening balance.
type AddPlayer struct{ Player player.Player }

// UpdatePlayer replaces a player's details. The stored balance is kept.
type UpdatePlayer struct{ Player player.Player }

// DeletePlayer removes a player. Ledger and attendance entries are kept.
type DeletePlayer struct{ ID string }

// AddBatch creates a batch.
type AddBatch struct{ Batch batch.Batch }

// AddLead records a prospective student.
type AddLead struct{ Lead lead.Lead }

// SetLeadStatus moves a lead through the pipeline.
type SetLeadStatus struct {
	ID     string
	Status string
}

// AddSession schedules a session.
type AddSession struct{ Session session.Session }

// RecordAttendance upserts the record for its (session, player) pair.
type RecordAttendance struct{ Record attendance.Record }

// AddPayment appends to the ledger and credits the player's balance.
type AddPayment struct{ Payment payment.Payment }

// AddAnnouncement posts an announcement at the top of the board.
type AddAnnouncement struct{ Announcement announcement.Announcement }

// AddTournament records a tournament.
type AddTournament struct{ Tournament tournament.Tournament }

// AddResult records a tournament result.
type AddResult struct{ Result tournament.Result }

// UpsertInventoryItem creates the item, or replaces the one with the same ID.
type UpsertInventoryItem struct{ Item inventory.Item }

// ReplaceSettings swaps in a whole new settings record.
type ReplaceSettings struct{ Settings settings.Settings }

func (Authenticate) Name() string        { return "authenticate" }
func (EndSession) Name() string          { return "end_session" }
func (AddPlayer) Name() string           { return "add_player" }
func (UpdatePlayer) Name() string        { return "update_player" }
func (DeletePlayer) Name() string        { return "delete_player" }
func (AddBatch) Name() string            { return "add_batch" }
func (AddLead) Name() string             { return "add_lead" }
func (SetLeadStatus) Name() string       { return "set_lead_status" }
func (AddSession) Name() string          { return "add_session" }
func (RecordAttendance) Name() string    { return "record_attendance" }
func (AddPayment) Name() string          { return "add_payment" }
func (AddAnnouncement) Name() string     { return "add_announcement" }
func (AddTournament) Name() string       { return "add_tournament" }
func (AddResult) Name() string           { return "add_result" }
func (UpsertInventoryItem) Name() string { return "upsert_inventory_item" }
func (ReplaceSettings) Name() string     { return "replace_settings" }

func (Authenticate) isAction()        {}
func (EndSession) isAction()          {}
func (AddPlayer) isAction()           {}
func (UpdatePlayer) isAction()        {}
func (DeletePlayer) isAction()        {}
func (AddBatch) isAction()            {}
func (AddLead) isAction()             {}
func (SetLeadStatus) isAction()       {}
func (AddSession) isAction()          {}
func (RecordAttendance) isAction()    {}
func (AddPayment) isAction()          {}
func (AddAnnouncement) isAction()     {}
func (AddTournament) isAction()       {}
func (AddResult) isAction()           {}
func (UpsertInventoryItem) isAction() {}
func (ReplaceSettings) isAction()     {}
