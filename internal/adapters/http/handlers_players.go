package web

import (
	"net/http"

	"academy/internal/application/listutil"
	"academy/internal/application/orchestrators"
	"academy/internal/application/projections"
	"academy/internal/domain/player"
)

// registerPlayerRequest is the body of POST /api/players.
type registerPlayerRequest struct {
	Name          string `json:"name"`
	DOB           string `json:"dob"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone"`
	GuardianName  string `json:"guardianName"`
	GuardianPhone string `json:"guardianPhone"`
	PhotoURL      string `json:"photoUrl"`
	FeeAmount     int    `json:"feeAmount"`
	BatchID       string `json:"batchId"`
}

// handlePlayerList handles GET /api/players?q=&status=&batch=&sort=&dir=&page=&per_page=
func (s *server) handlePlayerList(w http.ResponseWriter, r *http.Request) {
	params := listutil.ParseListParams(r.URL.Query(), projections.PlayerSortColumns, projections.PlayerFilterKeys)
	writeJSON(w, http.StatusOK, projections.QueryGetPlayerList(s.Store.Snapshot(), params))
}

// handleRegisterPlayer handles POST /api/players
func (s *server) handleRegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req registerPlayerRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	p, err := orchestrators.ExecuteRegisterPlayer(r.Context(), orchestrators.RegisterPlayerInput(req), orchestrators.RegisterPlayerDeps{
		Store: s.Store,
		Clock: s.Clock,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// handleUpdatePlayer handles PUT /api/players/{id}. The path ID wins over any ID in the body.
func (s *server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var p player.Player
	if err := strictDecode(r, &p); err != nil {
		badRequest(w)
		return
	}
	p.ID = r.PathValue("id")
	updated, err := orchestrators.ExecuteUpdatePlayer(r.Context(), p, orchestrators.UpdatePlayerDeps{Store: s.Store})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleDeletePlayer handles DELETE /api/players/{id}
func (s *server) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := orchestrators.ExecuteDeletePlayer(r.Context(), r.PathValue("id"), orchestrators.UpdatePlayerDeps{Store: s.Store}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePlayerAttendance handles GET /api/players/{id}/attendance
func (s *server) handlePlayerAttendance(w http.ResponseWriter, r *http.Request) {
	snap := s.Store.Snapshot()
	id := r.PathValue("id")
	if _, ok := snap.FindPlayer(id); !ok {
		writeError(w, orchestrators.ErrPlayerNotFound)
		return
	}
	writeJSON(w, http.StatusOK, projections.QueryGetPlayerAttendance(snap, id))
}

// textResponse carries generated text.
type textResponse struct {
	Text string `json:"text"`
}

// handleProgressSummary handles POST /api/players/{id}/progress-summary
func (s *server) handleProgressSummary(w http.ResponseWriter, r *http.Request) {
	text, err := orchestrators.ExecuteSummarizeProgress(r.Context(), r.PathValue("id"), s.Store, s.Drafter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: text})
}
