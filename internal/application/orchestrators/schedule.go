package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"academy/internal/application/store"
	"academy/internal/domain/batch"
	"academy/internal/domain/session"
)

// Session defaults applied when the scheduler leaves a field blank.
const (
	DefaultSessionMinutes  = 60
	DefaultSessionCapacity = 6
	DefaultCourt           = "Court A"
	fallbackCoachID        = "admin"
)

// ScheduleSessionInput carries input for the scheduling orchestrator.
type ScheduleSessionInput struct {
	Date                string
	Time                string
	DurationMinutes     int
	CoachID             string // empty uses the signed-in user
	Court               string
	Capacity            int
	BatchID             string
	RegisteredPlayerIDs []string
}

// ScheduleDeps holds dependencies for the schedule orchestrators.
type ScheduleDeps struct {
	Store store.ReadDispatcher
	Clock Clock
}

// ExecuteScheduleSession adds a practice session.
// PRE: Date is YYYY-MM-DD, Time is HH:MM
// POST: Session appended; blank duration, capacity, court and coach take their defaults
func ExecuteScheduleSession(ctx context.Context, input ScheduleSessionInput, deps ScheduleDeps) (session.Session, error) {
	snap := deps.Store.Snapshot()

	s := session.Session{
		ID:                  deps.Clock.id(),
		Date:                input.Date,
		Time:                strings.TrimSpace(input.Time),
		DurationMinutes:     input.DurationMinutes,
		CoachID:             input.CoachID,
		Court:               input.Court,
		Capacity:            input.Capacity,
		RegisteredPlayerIDs: input.RegisteredPlayerIDs,
		BatchID:             input.BatchID,
	}
	if s.DurationMinutes == 0 {
		s.DurationMinutes = DefaultSessionMinutes
	}
	if s.Capacity == 0 {
		s.Capacity = DefaultSessionCapacity
	}
	if s.Court == "" {
		s.Court = DefaultCourt
	}
	if s.CoachID == "" {
		s.CoachID = snap.CurrentUserID(fallbackCoachID)
	}
	if s.RegisteredPlayerIDs == nil {
		s.RegisteredPlayerIDs = []string{}
	}
	if err := s.Validate(); err != nil {
		return session.Session{}, err
	}

	deps.Store.Dispatch(ctx, store.AddSession{Session: s})
	slog.InfoContext(ctx, "schedule_event", "event", "session_scheduled", "session_id", s.ID, "date", s.Date, "coach_id", s.CoachID, "batch_id", s.BatchID)
	return s, nil
}

// AddBatchInput carries input for creating a batch.
type AddBatchInput struct {
	Name                string
	Sport               string
	CoachID             string
	ScheduleDescription string
	MonthlyFee          int // 0 uses the academy default
}

// ExecuteAddBatch creates a training batch.
// PRE: Name non-empty, Sport known
// POST: Batch appended
func ExecuteAddBatch(ctx context.Context, input AddBatchInput, deps ScheduleDeps) (batch.Batch, error) {
	fee := input.MonthlyFee
	if fee == 0 {
		fee = deps.Store.Snapshot().Settings.DefaultMonthlyFee
	}
	b := batch.Batch{
		ID:                  deps.Clock.id(),
		Name:                strings.TrimSpace(input.Name),
		Sport:               input.Sport,
		CoachID:             input.CoachID,
		ScheduleDescription: input.ScheduleDescription,
		MonthlyFee:          fee,
	}
	if err := b.Validate(); err != nil {
		return batch.Batch{}, err
	}
	deps.Store.Dispatch(ctx, store.AddBatch{Batch: b})
	slog.InfoContext(ctx, "schedule_event", "event", "batch_added", "batch_id", b.ID, "sport", b.Sport, "coach_id", b.CoachID)
	return b, nil
}
