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
	"academy/internal/domain/user"
)

// Snapshot is the complete state of the academy at one point in time.
// Snapshots are values: Reduce never writes into a snapshot it was given, so
// callers may keep old snapshots around for comparison. Callers must treat the
// slices as read-only.
type Snapshot struct {
	CurrentUser       *user.User                  `json:"currentUser"`
	Users             []user.User                 `json:"users"`
	Players           []player.Player             `json:"players"`
	Sessions          []session.Session           `json:"sessions"`
	Attendance        []attendance.Record         `json:"attendance"`
	Payments          []payment.Payment           `json:"payments"`
	Announcements     []announcement.Announcement `json:"announcements"`
	Batches           []batch.Batch               `json:"batches"`
	Leads             []lead.Lead                 `json:"leads"`
	Tournaments       []tournament.Tournament     `json:"tournaments"`
	TournamentResults []tournament.Result         `json:"tournamentResults"`
	Inventory         []inventory.Item            `json:"inventory"`
	Settings          settings.Settings           `json:"settings"`
}

// IsAuthenticated reports whether someone is signed in.
func (s Snapshot) IsAuthenticated() bool {
	return s.CurrentUser != nil
}

// CurrentUserID returns the signed-in user's ID, or fallback when anonymous.
func (s Snapshot) CurrentUserID(fallback string) string {
	if s.CurrentUser == nil {
		return fallback
	}
	return s.CurrentUser.ID
}

// FindUser looks up a user by ID.
func (s Snapshot) FindUser(id string) (user.User, bool) {
	return find(s.Users, func(u user.User) bool { return u.ID == id })
}

// FindUserByEmail looks up a known user by email, ignoring case.
func (s Snapshot) FindUserByEmail(email string) (user.User, bool) {
	return find(s.Users, func(u user.User) bool { return u.MatchesEmail(email) })
}

// FindPlayer looks up a player by ID.
func (s Snapshot) FindPlayer(id string) (player.Player, bool) {
	return find(s.Players, func(p player.Player) bool { return p.ID == id })
}

// FindBatch looks up a batch by ID.
func (s Snapshot) FindBatch(id string) (batch.Batch, bool) {
	return find(s.Batches, func(b batch.Batch) bool { return b.ID == id })
}

// FindSession looks up a session by ID.
func (s Snapshot) FindSession(id string) (session.Session, bool) {
	return find(s.Sessions, func(x session.Session) bool { return x.ID == id })
}

// FindLead looks up a lead by ID.
func (s Snapshot) FindLead(id string) (lead.Lead, bool) {
	return find(s.Leads, func(l lead.Lead) bool { return l.ID == id })
}

// FindTournament looks up a tournament by ID.
func (s Snapshot) FindTournament(id string) (tournament.Tournament, bool) {
	return find(s.Tournaments, func(t tournament.Tournament) bool { return t.ID == id })
}

// FindItem looks up an inventory item by ID.
func (s Snapshot) FindItem(id string) (inventory.Item, bool) {
	return find(s.Inventory, func(i inventory.Item) bool { return i.ID == id })
}

// FindAttendance looks up the record for a (session, player) pair.
func (s Snapshot) FindAttendance(sessionID, playerID string) (attendance.Record, bool) {
	return find(s.Attendance, func(r attendance.Record) bool {
		return r.SessionID == sessionID && r.PlayerID == playerID
	})
}

// PaymentsFor returns the ledger entries recorded against playerID, oldest first.
func (s Snapshot) PaymentsFor(playerID string) []payment.Payment {
	var out []payment.Payment
	for _, p := range s.Payments {
		if p.PlayerID == playerID {
			out = append(out, p)
		}
	}
	return out
}

// AttendanceFor returns every attendance record for playerID.
func (s Snapshot) AttendanceFor(playerID string) []attendance.Record {
	var out []attendance.Record
	for _, r := range s.Attendance {
		if r.PlayerID == playerID {
			out = append(out, r)
		}
	}
	return out
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	for _, it := range items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}
