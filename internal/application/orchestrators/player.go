package orchestrators

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"

	"academy/internal/application/store"
	"academy/internal/domain/player"
	"academy/internal/domain/user"
)

// RegisterPlayerInput carries input for the registration orchestrator.
type RegisterPlayerInput struct {
	Name          string
	DOB           string
	ContactEmail  string
	ContactPhone  string
	GuardianName  string
	GuardianPhone string
	PhotoURL      string
	FeeAmount     int // 0 uses the batch fee, then the academy default
	BatchID       string
}

// RegisterPlayerDeps holds dependencies for RegisterPlayer.
type RegisterPlayerDeps struct {
	Store         store.ReadDispatcher
	Clock         Clock
	StudentNumber func() int // five-digit number for the visible student ID
}

// ExecuteRegisterPlayer adds a new active player.
// PRE: input.Name is non-empty
// POST: Player appended with a generated ID, STU-nnnnn student ID, zero balance and today's join date
// INVARIANT: the opening balance is always 0; it only moves through payments
func ExecuteRegisterPlayer(ctx context.Context, input RegisterPlayerInput, deps RegisterPlayerDeps) (player.Player, error) {
	snap := deps.Store.Snapshot()

	fee := input.FeeAmount
	if fee == 0 {
		if b, ok := snap.FindBatch(input.BatchID); ok {
			fee = b.MonthlyFee
		} else {
			fee = snap.Settings.DefaultMonthlyFee
		}
	}

	number := deps.StudentNumber
	if number == nil {
		number = func() int { return 10000 + rand.IntN(90000) }
	}

	name := strings.TrimSpace(input.Name)
	photo := input.PhotoURL
	if photo == "" && name != "" {
		photo = user.AvatarURL(name)
	}

	p := player.Player{
		ID:            deps.Clock.id(),
		StudentID:     player.FormatStudentID(number()),
		Name:          name,
		DOB:           input.DOB,
		ContactEmail:  strings.TrimSpace(input.ContactEmail),
		ContactPhone:  input.ContactPhone,
		GuardianName:  input.GuardianName,
		GuardianPhone: input.GuardianPhone,
		PhotoURL:      photo,
		FeeAmount:     fee,
		Balance:       0,
		JoinedDate:    deps.Clock.today(),
		Status:        player.StatusActive,
		BatchID:       input.BatchID,
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, err
	}

	deps.Store.Dispatch(ctx, store.AddPlayer{Player: p})
	slog.InfoContext(ctx, "player_event", "event", "player_registered", "player_id", p.ID, "student_id", p.StudentID, "batch_id", p.BatchID)
	return p, nil
}

// UpdatePlayerDeps holds dependencies for UpdatePlayer.
type UpdatePlayerDeps struct {
	Store store.ReadDispatcher
}

// ExecuteUpdatePlayer replaces a player's details.
// PRE: p.ID names an existing player
// POST: Player replaced; the stored balance is kept whatever p.Balance says
func ExecuteUpdatePlayer(ctx context.Context, p player.Player, deps UpdatePlayerDeps) (player.Player, error) {
	if _, ok := deps.Store.Snapshot().FindPlayer(p.ID); !ok {
		return player.Player{}, ErrPlayerNotFound
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, err
	}
	next := deps.Store.Dispatch(ctx, store.UpdatePlayer{Player: p})
	updated, ok := next.FindPlayer(p.ID)
	if !ok {
		return player.Player{}, ErrPlayerNotFound
	}
	slog.InfoContext(ctx, "player_event", "event", "player_updated", "player_id", p.ID, "status", updated.Status)
	return updated, nil
}

// ExecuteDeletePlayer removes a player. Payments and attendance stay in place.
// PRE: id names an existing player
// POST: Player removed from the roster
func ExecuteDeletePlayer(ctx context.Context, id string, deps UpdatePlayerDeps) error {
	if _, ok := deps.Store.Snapshot().FindPlayer(id); !ok {
		return ErrPlayerNotFound
	}
	deps.Store.Dispatch(ctx, store.DeletePlayer{ID: id})
	slog.InfoContext(ctx, "player_event", "event", "player_deleted", "player_id", id)
	return nil
}
