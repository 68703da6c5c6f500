package projections

import (
	"sort"

	"academy/internal/application/store"
)

// ScheduleDay groups the sessions that fall on one date.
type ScheduleDay struct {
	Date     string        `json:"date"`
	Sessions []SessionView `json:"sessions"`
}

// SessionsByDate groups sessions by date.
// PRE: none
// POST: Days are sorted ascending; sessions within a day keep collection order
func SessionsByDate(snap store.Snapshot) []ScheduleDay {
	index := make(map[string]int)
	var days []ScheduleDay
	for _, s := range snap.Sessions {
		i, ok := index[s.Date]
		if !ok {
			i = len(days)
			index[s.Date] = i
			days = append(days, ScheduleDay{Date: s.Date})
		}
		days[i].Sessions = append(days[i].Sessions, viewSession(snap, s))
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
