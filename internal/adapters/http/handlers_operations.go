package web

import (
	"net/http"

	"academy/internal/application/orchestrators"
)

// addBatchRequest is the body of POST /api/batches.
type addBatchRequest struct {
	Name                string `json:"name"`
	Sport               string `json:"sport"`
	CoachID             string `json:"coachId"`
	ScheduleDescription string `json:"scheduleDescription"`
	MonthlyFee          int    `json:"monthlyFee"`
}

// handleAddBatch handles POST /api/batches
func (s *server) handleAddBatch(w http.ResponseWriter, r *http.Request) {
	var req addBatchRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	b, err := orchestrators.ExecuteAddBatch(r.Context(), orchestrators.AddBatchInput(req), orchestrators.ScheduleDeps{Store: s.Store, Clock: s.Clock})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// addLeadRequest is the body of POST /api/leads.
type addLeadRequest struct {
	Name            string `json:"name"`
	Contact         string `json:"contact"`
	SportOfInterest string `json:"sportOfInterest"`
	Notes           string `json:"notes"`
}

// handleAddLead handles POST /api/leads
func (s *server) handleAddLead(w http.ResponseWriter, r *http.Request) {
	var req addLeadRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	l, err := orchestrators.ExecuteAddLead(r.Context(), orchestrators.AddLeadInput(req), orchestrators.LeadDeps{Store: s.Store, Clock: s.Clock})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

// leadStatusRequest is the body of POST /api/leads/{id}/status.
type leadStatusRequest struct {
	Status string `json:"status"`
}

// handleLeadStatus handles POST /api/leads/{id}/status
func (s *server) handleLeadStatus(w http.ResponseWriter, r *http.Request) {
	var req leadStatusRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	id := r.PathValue("id")
	if err := orchestrators.ExecuteSetLeadStatus(r.Context(), id, req.Status, orchestrators.LeadDeps{Store: s.Store, Clock: s.Clock}); err != nil {
		writeError(w, err)
		return
	}
	l, _ := s.Store.Snapshot().FindLead(id)
	writeJSON(w, http.StatusOK, l)
}

// convertLeadRequest is the body of POST /api/leads/{id}/convert.
type convertLeadRequest struct {
	BatchID      string `json:"batchId"`
	DOB          string `json:"dob"`
	ContactEmail string `json:"contactEmail"`
	GuardianName string `json:"guardianName"`
}

// handleConvertLead handles POST /api/leads/{id}/convert
func (s *server) handleConvertLead(w http.ResponseWriter, r *http.Request) {
	var req convertLeadRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	p, err := orchestrators.ExecuteConvertLead(r.Context(), orchestrators.ConvertLeadInput{
		LeadID:       r.PathValue("id"),
		BatchID:      req.BatchID,
		DOB:          req.DOB,
		ContactEmail: req.ContactEmail,
		GuardianName: req.GuardianName,
	}, orchestrators.ConvertLeadDeps{Store: s.Store, Clock: s.Clock})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// scheduleSessionRequest is the body of POST /api/sessions.
type scheduleSessionRequest struct {
	Date                string   `json:"date"`
	Time                string   `json:"time"`
	DurationMinutes     int      `json:"durationMinutes"`
	CoachID             string   `json:"coachId"`
	Court               string   `json:"court"`
	Capacity            int      `json:"capacity"`
	BatchID             string   `json:"batchId"`
	RegisteredPlayerIDs []string `json:"registeredPlayerIds"`
}

// handleScheduleSession handles POST /api/sessions
func (s *server) handleScheduleSession(w http.ResponseWriter, r *http.Request) {
	var req scheduleSessionRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	sess, err := orchestrators.ExecuteScheduleSession(r.Context(), orchestrators.ScheduleSessionInput(req), orchestrators.ScheduleDeps{Store: s.Store, Clock: s.Clock})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// markAttendanceRequest is the body of POST /api/attendance.
type markAttendanceRequest struct {
	SessionID string `json:"sessionId"`
	PlayerID  string `json:"playerId"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// handleMarkAttendance handles POST /api/attendance. Marking the same slot again overwrites it.
func (s *server) handleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req markAttendanceRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	rec, err := orchestrators.ExecuteMarkAttendance(r.Context(), orchestrators.MarkAttendanceInput(req), orchestrators.MarkAttendanceDeps{Store: s.Store})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// recordPaymentRequest is the body of POST /api/payments.
type recordPaymentRequest struct {
	PlayerID  string `json:"playerId"`
	Amount    int    `json:"amount"`
	Method    string `json:"method"`
	Reference string `json:"reference"`
	Date      string `json:"date"`
}

// handleRecordPayment handles POST /api/payments
func (s *server) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := strictDecode(r, &req); err != nil {
		badRequest(w)
		return
	}
	res, err := orchestrators.ExecuteRecordPayment(r.Context(), orchestrators.RecordPaymentInput(req), orchestrators.RecordPaymentDeps{Store: s.Store, Clock: s.Clock})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}
