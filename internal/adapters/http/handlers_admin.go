package web

import (
	"net/http"
	"strconv"

	"academy/internal/application/orchestrators"
	"academy/internal/domain/inventory"
	"academy/internal/domain/settings"
	"academy/internal/domain/tournament"
)

// addTournamentRequest is the body of POST /api/tournaments.
type addTournamentRequest struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// handleAddTournament handles POST /api/tournaments
func (s *server) handleAddTournament(w http.ResponseWriter, r *http.Request) {
	var req addTournamentRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	t, err := orchestrators.ExecuteAddTournament(r.Context(), tournament.Tournament{
		Name:     req.Name,
		Date:     req.Date,
		Location: req.Location,
	}, orchestrators.TournamentDeps{Store: s.Store, Clock: s.Clock})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// addResultRequest is the body of POST /api/tournaments/{id}/results.
type addResultRequest struct {
	PlayerID    string `json:"playerId"`
	Category    string `json:"category"`
	Achievement string `json:"achievement"`
}

// handleAddResult handles POST /api/tournaments/{id}/results
func (s *server) handleAddResult(w http.ResponseWriter, r *http.Request) {
	var req addResultRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	res, err := orchestrators.ExecuteAddResult(r.Context(), tournament.Result{
		TournamentID: r.PathValue("id"),
		PlayerID:     req.PlayerID,
		Category:     req.Category,
		Achievement:  req.Achievement,
	}, orchestrators.TournamentDeps{Store: s.Store, Clock: s.Clock})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// handleSaveItem handles POST /api/inventory. An item without an ID is created.
func (s *server) handleSaveItem(w http.ResponseWriter, r *http.Request) {
	var item inventory.Item
	if err := strictDecode(r, &item); err != nil {
		badRequest(w)
		return
	}
	saved, err := orchestrators.ExecuteSaveItem(r.Context(), item, orchestrators.InventoryDeps{Store: s.Store, Clock: s.Clock})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// adjustStockRequest is the body of POST /api/inventory/{id}/adjust.
type adjustStockRequest struct {
	Delta int `json:"delta"`
}

// handleAdjustStock handles POST /api/inventory/{id}/adjust
func (s *server) handleAdjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	item, err := orchestrators.ExecuteAdjustStock(r.Context(), r.PathValue("id"), req.Delta, orchestrators.InventoryDeps{Store: s.Store, Clock: s.Clock})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// handleSaveSettings handles PUT /api/settings. The body replaces the settings wholesale.
func (s *server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var next settings.Settings
	if err := strictDecode(r, &next); err != nil {
		badRequest(w)
		return
	}
	if err := orchestrators.ExecuteSaveSettings(r.Context(), next, s.Store); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Store.Snapshot().Settings)
}

// handleSendReminders handles POST /api/reminders?force=true
func (s *server) handleSendReminders(w http.ResponseWriter, r *http.Request) {
	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))
	res, err := orchestrators.ExecuteSendPaymentReminders(r.Context(), orchestrators.SendPaymentRemindersInput{Force: force}, orchestrators.SendPaymentRemindersDeps{
		Store:       s.Store,
		EmailSender: s.EmailSender,
		Clock:       s.Clock,
		Currency:    s.Currency,
		Concurrency: s.ReminderConcurrency,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
