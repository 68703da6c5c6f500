package projections

import (
	"math"

	"academy/internal/application/store"
	"academy/internal/domain/attendance"
)

// BatchAttendanceRate is the attendance percentage for one batch.
type BatchAttendanceRate struct {
	BatchID   string `json:"batchId"`
	BatchName string `json:"batchName"`
	Records   int    `json:"records"`
	Present   int    `json:"present"`
	Rate      int    `json:"rate"`
}

// PlayerAttendanceSummary is a player's attendance history.
type PlayerAttendanceSummary struct {
	PlayerID string              `json:"playerId"`
	Total    int                 `json:"total"`
	Attended int                 `json:"attended"`
	Records  []attendance.Record `json:"records"`
	Notes    []string            `json:"notes"`
}

// TodaysAttendanceCount counts present records on sessions dated today.
// PRE: today is YYYY-MM-DD
// POST: Late, absent and excused records are not counted
func TodaysAttendanceCount(snap store.Snapshot, today string) int {
	todays := make(map[string]bool)
	for _, s := range snap.Sessions {
		if s.IsOn(today) {
			todays[s.ID] = true
		}
	}
	n := 0
	for _, r := range snap.Attendance {
		if todays[r.SessionID] && r.IsPresent() {
			n++
		}
	}
	return n
}

// AttendanceRate returns the rounded percentage of present records across the batch's sessions.
// PRE: none
// POST: Returns 0 when the batch has no records
func AttendanceRate(snap store.Snapshot, batchID string) int {
	return batchRate(snap, batchID).Rate
}

// BatchAttendanceRates computes the attendance rate of every batch in collection order.
func BatchAttendanceRates(snap store.Snapshot) []BatchAttendanceRate {
	out := make([]BatchAttendanceRate, 0, len(snap.Batches))
	for _, b := range snap.Batches {
		r := batchRate(snap, b.ID)
		r.BatchName = b.Name
		out = append(out, r)
	}
	return out
}

// QueryGetPlayerAttendance collects a player's attendance records in collection order.
// PRE: none
// POST: Attended counts present and late records; Notes holds the non-empty coach notes
func QueryGetPlayerAttendance(snap store.Snapshot, playerID string) PlayerAttendanceSummary {
	records := snap.AttendanceFor(playerID)
	summary := PlayerAttendanceSummary{
		PlayerID: playerID,
		Total:    len(records),
		Records:  records,
		Notes:    []string{},
	}
	for _, r := range records {
		if r.Attended() {
			summary.Attended++
		}
		if r.Notes != "" {
			summary.Notes = append(summary.Notes, r.Notes)
		}
	}
	return summary
}

func batchRate(snap store.Snapshot, batchID string) BatchAttendanceRate {
	inBatch := make(map[string]bool)
	for _, s := range snap.Sessions {
		if s.BatchID == batchID {
			inBatch[s.ID] = true
		}
	}

	r := BatchAttendanceRate{BatchID: batchID}
	for _, rec := range snap.Attendance {
		if !inBatch[rec.SessionID] {
			continue
		}
		r.Records++
		if rec.IsPresent() {
			r.Present++
		}
	}
	if r.Records > 0 {
		r.Rate = int(math.Round(float64(r.Present) / float64(r.Records) * 100))
	}
	return r
}
