package web

import (
	"net/http"
	"time"

	"academy/internal/application/projections"
)

// handleSnapshot handles GET /api/snapshot
func (s *server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.Snapshot())
}

// handleDashboard handles GET /api/dashboard
func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, projections.QueryGetDashboard(s.Store.Snapshot(), s.now()))
}

// handleReports handles GET /api/reports
func (s *server) handleReports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, projections.QueryGetReports(s.Store.Snapshot()))
}

// handleCoaches handles GET /api/coaches
func (s *server) handleCoaches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, projections.QueryGetCoachPayEstimates(s.Store.Snapshot()))
}

// handleBatches handles GET /api/batches
func (s *server) handleBatches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, projections.QueryGetBatchSummaries(s.Store.Snapshot()))
}

// handleSchedule handles GET /api/schedule
func (s *server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, projections.SessionsByDate(s.Store.Snapshot()))
}

// playersOwingResponse is the body of GET /api/fees/owing.
type playersOwingResponse struct {
	projections.FeesResult
	Players []projections.OwingPlayer `json:"players"`
}

// handlePlayersOwing handles GET /api/fees/owing
func (s *server) handlePlayersOwing(w http.ResponseWriter, r *http.Request) {
	snap := s.Store.Snapshot()
	owing := projections.PlayersOwing(snap)
	if owing == nil {
		owing = []projections.OwingPlayer{}
	}
	writeJSON(w, http.StatusOK, playersOwingResponse{
		FeesResult: projections.OutstandingFees(snap),
		Players:    owing,
	})
}

// handleLowStock handles GET /api/inventory/low-stock
func (s *server) handleLowStock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, projections.LowStockItems(s.Store.Snapshot()))
}

// perfWindow is how far back /admin/perf aggregates.
const perfWindow = time.Hour

// handlePerf handles GET /admin/perf
func (s *server) handlePerf(w http.ResponseWriter, r *http.Request) {
	if s.Collector == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, s.Collector.Snapshot(time.Now().Add(-perfWindow), 10))
}

func (s *server) now() time.Time {
	if s.Clock.Now != nil {
		return s.Clock.Now()
	}
	return time.Now()
}
