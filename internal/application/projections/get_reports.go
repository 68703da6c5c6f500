package projections

import (
	"sort"

	"academy/internal/application/store"
	"academy/internal/domain/lead"
	"academy/internal/domain/player"
	"academy/internal/domain/tournament"
	"academy/internal/domain/user"
)

// StatusBreakdown counts players per lifecycle status.
type StatusBreakdown struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// LeadColumn is one column of the lead pipeline board.
type LeadColumn struct {
	Status string      `json:"status"`
	Leads  []lead.Lead `json:"leads"`
}

// ResultView is a tournament result with the player's name resolved.
type ResultView struct {
	tournament.Result
	PlayerName string `json:"playerName"`
}

// TournamentView is a tournament with its results, best achievement first.
type TournamentView struct {
	tournament.Tournament
	Results []ResultView `json:"results"`
}

// ReportsResult carries the output of the reports projection.
type ReportsResult struct {
	AttendanceRates []BatchAttendanceRate `json:"attendanceRates"`
	RevenueByMonth  []PeriodTotal         `json:"revenueByMonth"`
	TotalRevenue    int                   `json:"totalRevenue"`
	PlayerStatus    StatusBreakdown       `json:"playerStatus"`
	Coaches         int                   `json:"coaches"`
	LowStockItems   int                   `json:"lowStockItems"`
}

// PlayerStatusBreakdown counts active and inactive players.
func PlayerStatusBreakdown(snap store.Snapshot) StatusBreakdown {
	var b StatusBreakdown
	for _, p := range snap.Players {
		switch p.Status {
		case player.StatusActive:
			b.Active++
		case player.StatusInactive:
			b.Inactive++
		}
	}
	return b
}

// LeadsByStatus splits leads into pipeline columns.
// PRE: none
// POST: One column per known status in pipeline order, each possibly empty; unknown statuses are omitted
func LeadsByStatus(snap store.Snapshot) []LeadColumn {
	cols := make([]LeadColumn, len(lead.ValidStatuses))
	index := make(map[string]int, len(lead.ValidStatuses))
	for i, s := range lead.ValidStatuses {
		cols[i] = LeadColumn{Status: s, Leads: []lead.Lead{}}
		index[s] = i
	}
	for _, l := range snap.Leads {
		if i, ok := index[l.Status]; ok {
			cols[i].Leads = append(cols[i].Leads, l)
		}
	}
	return cols
}

// TournamentResults lists every tournament with its results.
// PRE: none
// POST: Results are ordered by achievement rank; deleted players show as "Unknown"
func TournamentResults(snap store.Snapshot) []TournamentView {
	out := make([]TournamentView, 0, len(snap.Tournaments))
	for _, t := range snap.Tournaments {
		view := TournamentView{Tournament: t, Results: []ResultView{}}
		for _, r := range snap.TournamentResults {
			if r.TournamentID != t.ID {
				continue
			}
			name := "Unknown"
			if p, ok := snap.FindPlayer(r.PlayerID); ok {
				name = p.Name
			}
			view.Results = append(view.Results, ResultView{Result: r, PlayerName: name})
		}
		sort.SliceStable(view.Results, func(i, j int) bool {
			return rankOrLast(view.Results[i].Achievement) < rankOrLast(view.Results[j].Achievement)
		})
		out = append(out, view)
	}
	return out
}

// QueryGetReports aggregates the analytics page.
func QueryGetReports(snap store.Snapshot) ReportsResult {
	coaches := 0
	for _, u := range snap.Users {
		if u.Role == user.RoleCoach {
			coaches++
		}
	}
	return ReportsResult{
		AttendanceRates: BatchAttendanceRates(snap),
		RevenueByMonth:  RevenueByMonth(snap),
		TotalRevenue:    TotalRevenue(snap),
		PlayerStatus:    PlayerStatusBreakdown(snap),
		Coaches:         coaches,
		LowStockItems:   len(LowStockItems(snap)),
	}
}

func rankOrLast(achievement string) int {
	if r := tournament.Rank(achievement); r >= 0 {
		return r
	}
	return len(tournament.ValidAchievements)
}
