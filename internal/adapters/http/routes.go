package web

import "net/http"

func (s *server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", handleHealth)

	// Sign-in
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/me", s.handleMe)

	// Read models
	mux.HandleFunc("GET /api/snapshot", s.handleSnapshot)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /api/reports", s.handleReports)
	mux.HandleFunc("GET /api/coaches", s.handleCoaches)
	mux.HandleFunc("GET /api/batches", s.handleBatches)
	mux.HandleFunc("GET /api/schedule", s.handleSchedule)
	mux.HandleFunc("GET /api/fees/owing", s.handlePlayersOwing)
	mux.HandleFunc("GET /api/inventory/low-stock", s.handleLowStock)

	// Players
	mux.HandleFunc("GET /api/players", s.handlePlayerList)
	mux.HandleFunc("POST /api/players", s.handleRegisterPlayer)
	mux.HandleFunc("PUT /api/players/{id}", s.handleUpdatePlayer)
	mux.HandleFunc("DELETE /api/players/{id}", s.handleDeletePlayer)
	mux.HandleFunc("GET /api/players/{id}/attendance", s.handlePlayerAttendance)
	mux.HandleFunc("POST /api/players/{id}/progress-summary", s.handleProgressSummary)

	// Operations
	mux.HandleFunc("POST /api/batches", s.handleAddBatch)
	mux.HandleFunc("POST /api/leads", s.handleAddLead)
	mux.HandleFunc("POST /api/leads/{id}/status", s.handleLeadStatus)
	mux.HandleFunc("POST /api/leads/{id}/convert", s.handleConvertLead)
	mux.HandleFunc("POST /api/sessions", s.handleScheduleSession)
	mux.HandleFunc("POST /api/attendance", s.handleMarkAttendance)
	mux.HandleFunc("POST /api/payments", s.handleRecordPayment)

	// Announcements
	mux.HandleFunc("GET /api/announcements", s.handleAnnouncements)
	mux.HandleFunc("POST /api/announcements", s.handlePostAnnouncement)
	mux.HandleFunc("POST /api/announcements/draft", s.handleDraftAnnouncement)

	// Tournaments, inventory, settings
	mux.HandleFunc("POST /api/tournaments", s.handleAddTournament)
	mux.HandleFunc("POST /api/tournaments/{id}/results", s.handleAddResult)
	mux.HandleFunc("POST /api/inventory", s.handleSaveItem)
	mux.HandleFunc("POST /api/inventory/{id}/adjust", s.handleAdjustStock)
	mux.HandleFunc("PUT /api/settings", s.handleSaveSettings)
	mux.HandleFunc("POST /api/reminders", s.handleSendReminders)

	mux.HandleFunc("GET /admin/perf", s.handlePerf)
}

// handleHealth handles GET /healthz
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
