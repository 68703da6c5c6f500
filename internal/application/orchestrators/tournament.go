package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"academy/internal/application/store"
	"academy/internal/domain/tournament"
)

// TournamentDeps holds dependencies for the tournament orchestrators.
type TournamentDeps struct {
	Store store.ReadDispatcher
	Clock Clock
}

// ExecuteAddTournament records a tournament.
// PRE: Name non-empty
// POST: Tournament appended with a generated ID
func ExecuteAddTournament(ctx context.Context, t tournament.Tournament, deps TournamentDeps) (tournament.Tournament, error) {
	t.ID = deps.Clock.id()
	t.Name = strings.TrimSpace(t.Name)
	if err := t.Validate(); err != nil {
		return tournament.Tournament{}, err
	}
	deps.Store.Dispatch(ctx, store.AddTournament{Tournament: t})
	slog.InfoContext(ctx, "tournament_event", "event", "tournament_added", "tournament_id", t.ID, "date", t.Date)
	return t, nil
}

// ExecuteAddResult records a player's placing.
// PRE: r.TournamentID names an existing tournament; Achievement is known
// POST: Result appended with a generated ID
func ExecuteAddResult(ctx context.Context, r tournament.Result, deps TournamentDeps) (tournament.Result, error) {
	r.ID = deps.Clock.id()
	if err := r.Validate(); err != nil {
		return tournament.Result{}, err
	}
	if _, ok := deps.Store.Snapshot().FindTournament(r.TournamentID); !ok {
		return tournament.Result{}, ErrTournamentNotFound
	}
	deps.Store.Dispatch(ctx, store.AddResult{Result: r})
	slog.InfoContext(ctx, "tournament_event", "event", "result_added", "tournament_id", r.TournamentID, "player_id", r.PlayerID, "achievement", r.Achievement)
	return r, nil
}
