package orchestrators

import (
	"context"
	"log/slog"

	"academy/internal/application/store"
	"academy/internal/domain/attendance"
)

// MarkAttendanceInput carries input for the attendance orchestrator.
type MarkAttendanceInput struct {
	SessionID string
	PlayerID  string
	Status    string
	Notes     string
}

// MarkAttendanceDeps holds dependencies for MarkAttendance.
type MarkAttendanceDeps struct {
	Store store.ReadDispatcher
}

// ExecuteMarkAttendance records or overwrites a player's attendance at a session.
// PRE: SessionID names an existing session; Status is a known attendance status
// POST: Exactly one record exists for (SessionID, PlayerID), holding Status and Notes
func ExecuteMarkAttendance(ctx context.Context, input MarkAttendanceInput, deps MarkAttendanceDeps) (attendance.Record, error) {
	rec := attendance.Record{
		ID:        attendance.RecordID(input.SessionID, input.PlayerID),
		SessionID: input.SessionID,
		PlayerID:  input.PlayerID,
		Status:    input.Status,
		Notes:     input.Notes,
	}
	if err := rec.Validate(); err != nil {
		return attendance.Record{}, err
	}
	snap := deps.Store.Snapshot()
	if _, ok := snap.FindSession(rec.SessionID); !ok {
		return attendance.Record{}, ErrSessionNotFound
	}
	_, overwrite := snap.FindAttendance(rec.SessionID, rec.PlayerID)

	deps.Store.Dispatch(ctx, store.RecordAttendance{Record: rec})
	slog.InfoContext(ctx, "attendance_event", "event", "attendance_marked", "session_id", rec.SessionID, "player_id", rec.PlayerID, "status", rec.Status, "overwrite", overwrite)
	return rec, nil
}
