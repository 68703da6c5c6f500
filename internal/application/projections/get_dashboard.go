package projections

import (
	"time"

	"academy/internal/application/store"
	"academy/internal/domain/session"
)

// SessionView is a session with its coach and batch names resolved.
type SessionView struct {
	session.Session
	CoachName string `json:"coachName"`
	BatchName string `json:"batchName"`
	Full      bool   `json:"full"` // registrations have reached capacity
}

// DashboardResult carries the output of the dashboard projection.
type DashboardResult struct {
	AcademyName      string        `json:"academyName"`
	TotalPlayers     int           `json:"totalPlayers"`
	ActiveBatches    int           `json:"activeBatches"`
	TodaysAttendance int           `json:"todaysAttendance"`
	PendingFees      FeesResult    `json:"pendingFees"`
	Revenue          []PeriodTotal `json:"revenue"`
	TodaysSessions   []SessionView `json:"todaysSessions"`
	TomorrowSessions []SessionView `json:"tomorrowSessions"`
	LowStockCount    int           `json:"lowStockCount"`
	OpenLeads        int           `json:"openLeads"`
}

// QueryGetDashboard aggregates the headline figures shown after sign-in.
// PRE: now is the current time in the academy's location
// POST: Sessions are split into today and tomorrow by calendar date; revenue is grouped by date
func QueryGetDashboard(snap store.Snapshot, now time.Time) DashboardResult {
	today := session.FormatDate(now)
	tomorrow := session.FormatDate(now.AddDate(0, 0, 1))

	result := DashboardResult{
		AcademyName:      snap.Settings.AcademyName,
		TotalPlayers:     len(snap.Players),
		ActiveBatches:    len(snap.Batches),
		TodaysAttendance: TodaysAttendanceCount(snap, today),
		PendingFees:      OutstandingFees(snap),
		Revenue:          RevenueByDate(snap),
		TodaysSessions:   sessionsOn(snap, today),
		TomorrowSessions: sessionsOn(snap, tomorrow),
		LowStockCount:    len(LowStockItems(snap)),
	}
	for _, l := range snap.Leads {
		if l.IsOpen() {
			result.OpenLeads++
		}
	}
	return result
}

func sessionsOn(snap store.Snapshot, date string) []SessionView {
	out := []SessionView{}
	for _, s := range snap.Sessions {
		if s.IsOn(date) {
			out = append(out, viewSession(snap, s))
		}
	}
	return out
}

func viewSession(snap store.Snapshot, s session.Session) SessionView {
	v := SessionView{Session: s, Full: s.IsFull()}
	if u, ok := snap.FindUser(s.CoachID); ok {
		v.CoachName = u.Name
	}
	if b, ok := snap.FindBatch(s.BatchID); ok {
		v.BatchName = b.Name
	}
	return v
}
