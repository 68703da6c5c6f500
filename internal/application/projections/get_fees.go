package projections

import (
	"sort"

	"academy/internal/application/store"
)

// FeesResult summarizes money owed to the academy.
type FeesResult struct {
	TotalOutstanding int `json:"totalOutstanding"`
	PlayersOwing     int `json:"playersOwing"`
}

// OwingPlayer is a player with a negative balance.
type OwingPlayer struct {
	PlayerID     string `json:"playerId"`
	Name         string `json:"name"`
	StudentID    string `json:"studentId"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	Owed         int    `json:"owed"`
}

// OutstandingFees totals what players owe.
// PRE: none
// POST: TotalOutstanding = sum of max(0, -balance); PlayersOwing = count of balance < 0
func OutstandingFees(snap store.Snapshot) FeesResult {
	var r FeesResult
	for _, p := range snap.Players {
		if owed := p.Owes(); owed > 0 {
			r.TotalOutstanding += owed
			r.PlayersOwing++
		}
	}
	return r
}

// PlayersOwing lists every player with a negative balance, largest debt first.
// Ties keep collection order.
func PlayersOwing(snap store.Snapshot) []OwingPlayer {
	var out []OwingPlayer
	for _, p := range snap.Players {
		owed := p.Owes()
		if owed == 0 {
			continue
		}
		out = append(out, OwingPlayer{
			PlayerID:     p.ID,
			Name:         p.Name,
			StudentID:    p.StudentID,
			ContactName:  p.ReminderName(),
			ContactEmail: p.ReminderAddress(),
			Owed:         owed,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Owed > out[j].Owed })
	return out
}
