package projections

import (
	"academy/internal/application/store"
	"academy/internal/domain/player"
)

// BatchSummary is a batch with its roster size and coach resolved.
type BatchSummary struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Sport               string `json:"sport"`
	CoachID             string `json:"coachId"`
	CoachName           string `json:"coachName"`
	ScheduleDescription string `json:"scheduleDescription"`
	MonthlyFee          int    `json:"monthlyFee"`
	ActiveStudents      int    `json:"activeStudents"`
}

// ActiveStudentCount counts active players enrolled in batchID.
// PRE: none
// POST: Returns the number of players with BatchID == batchID and status active
func ActiveStudentCount(snap store.Snapshot, batchID string) int {
	n := 0
	for _, p := range snap.Players {
		if p.BatchID == batchID && p.Status == player.StatusActive {
			n++
		}
	}
	return n
}

// QueryGetBatchSummaries lists every batch with its active roster count.
// PRE: none
// POST: Returns one summary per batch in collection order; unknown coaches resolve to "Unassigned"
func QueryGetBatchSummaries(snap store.Snapshot) []BatchSummary {
	out := make([]BatchSummary, 0, len(snap.Batches))
	for _, b := range snap.Batches {
		coachName := "Unassigned"
		if u, ok := snap.FindUser(b.CoachID); ok {
			coachName = u.Name
		}
		out = append(out, BatchSummary{
			ID:                  b.ID,
			Name:                b.Name,
			Sport:               b.Sport,
			CoachID:             b.CoachID,
			CoachName:           coachName,
			ScheduleDescription: b.ScheduleDescription,
			MonthlyFee:          b.MonthlyFee,
			ActiveStudents:      ActiveStudentCount(snap, b.ID),
		})
	}
	return out
}
