package store

import (
	"slices"

	"academy/internal/domain/attendance"
	"academy/internal/domain/inventory"
	"academy/internal/domain/lead"
	"academy/internal/domain/player"
	"academy/internal/domain/user"
)

// Reduce applies a to prev and returns the resulting snapshot.
// PRE: none; actions referencing unknown IDs are accepted
// POST: prev is not modified; collections a touches are fresh slices, the rest are shared
// INVARIANT: a player's Balance changes only through AddPayment, by exactly the payment amount
func Reduce(prev Snapshot, a Action) Snapshot {
	next := prev

	switch a := a.(type) {
	case Authenticate:
		u, ok := prev.FindUserByEmail(a.Email)
		if !ok {
			u = user.Ephemeral(a.Email, a.Role)
		}
		next.CurrentUser = &u

	case EndSession:
		next.CurrentUser = nil

	case AddPlayer:
		next.Players = appended(prev.Players, a.Player)

	case UpdatePlayer:
		existing, ok := prev.FindPlayer(a.Player.ID)
		if !ok {
			return prev
		}
		updated := a.Player
		updated.Balance = existing.Balance
		next.Players = replaced(prev.Players, func(p player.Player) bool { return p.ID == updated.ID }, updated)

	case DeletePlayer:
		if _, ok := prev.FindPlayer(a.ID); !ok {
			return prev
		}
		next.Players = removed(prev.Players, func(p player.Player) bool { return p.ID == a.ID })

	case AddBatch:
		next.Batches = appended(prev.Batches, a.Batch)

	case AddLead:
		next.Leads = appended(prev.Leads, a.Lead)

	case SetLeadStatus:
		existing, ok := prev.FindLead(a.ID)
		if !ok {
			return prev
		}
		existing.Status = a.Status
		next.Leads = replaced(prev.Leads, func(l lead.Lead) bool { return l.ID == a.ID }, existing)

	case AddSession:
		next.Sessions = appended(prev.Sessions, a.Session)

	case RecordAttendance:
		rec := a.Record
		if _, ok := prev.FindAttendance(rec.SessionID, rec.PlayerID); ok {
			next.Attendance = replaced(prev.Attendance, func(r attendance.Record) bool { return r.SameSlot(rec) }, rec)
		} else {
			next.Attendance = appended(prev.Attendance, rec)
		}

	case AddPayment:
		pay := a.Payment
		next.Payments = appended(prev.Payments, pay)
		if p, ok := prev.FindPlayer(pay.PlayerID); ok {
			p.Balance += pay.Amount
			next.Players = replaced(prev.Players, func(x player.Player) bool { return x.ID == p.ID }, p)
		}

	case AddAnnouncement:
		next.Announcements = prepended(prev.Announcements, a.Announcement)

	case AddTournament:
		next.Tournaments = appended(prev.Tournaments, a.Tournament)

	case AddResult:
		next.TournamentResults = appended(prev.TournamentResults, a.Result)

	case UpsertInventoryItem:
		item := a.Item
		if _, ok := prev.FindItem(item.ID); ok {
			next.Inventory = replaced(prev.Inventory, func(i inventory.Item) bool { return i.ID == item.ID }, item)
		} else {
			next.Inventory = appended(prev.Inventory, item)
		}

	case ReplaceSettings:
		next.Settings = a.Settings

	default:
		return prev
	}

	return next
}

// appended returns a new slice holding items followed by v.
func appended[T any](items []T, v T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, v)
}

// prepended returns a new slice holding v followed by items.
func prepended[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, v)
	return append(out, items...)
}

// replaced returns a copy of items with every match swapped for v.
func replaced[T any](items []T, match func(T) bool, v T) []T {
	out := slices.Clone(items)
	for i := range out {
		if match(out[i]) {
			out[i] = v
		}
	}
	return out
}

// removed returns a copy of items without the matches.
func removed[T any](items []T, match func(T) bool) []T {
	return slices.DeleteFunc(slices.Clone(items), match)
}
