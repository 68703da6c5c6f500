package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"academy/internal/application/orchestrators"
	"academy/internal/domain/announcement"
	"academy/internal/domain/attendance"
	"academy/internal/domain/batch"
	"academy/internal/domain/inventory"
	"academy/internal/domain/lead"
	"academy/internal/domain/payment"
	"academy/internal/domain/player"
	"academy/internal/domain/session"
	"academy/internal/domain/settings"
	"academy/internal/domain/tournament"
	"academy/internal/domain/user"
)

// notFoundErrors map to 404.
var notFoundErrors = []error{
	orchestrators.ErrPlayerNotFound,
	orchestrators.ErrLeadNotFound,
	orchestrators.ErrSessionNotFound,
	orchestrators.ErrItemNotFound,
	orchestrators.ErrTournamentNotFound,
}

// validationErrors map to 400 and are shown to the client verbatim.
var validationErrors = []error{
	player.ErrEmptyName, player.ErrNameTooLong, player.ErrInvalidStatus, player.ErrNegativeFee, player.ErrInvalidEmail,
	payment.ErrEmptyPlayerID, payment.ErrNonPositive, payment.ErrInvalidMethod, payment.ErrEmptyPaidOnDate,
	lead.ErrEmptyName, lead.ErrEmptyContact, lead.ErrInvalidStatus,
	attendance.ErrEmptySessionID, attendance.ErrEmptyPlayerID, attendance.ErrInvalidStatus,
	session.ErrInvalidDate, session.ErrInvalidTime, session.ErrInvalidDuration, session.ErrInvalidCapacity,
	settings.ErrEmptyAcademyName, settings.ErrNegativeDefaultFee, settings.ErrInvalidReminderDay,
	tournament.ErrEmptyName, tournament.ErrEmptyTournamentID, tournament.ErrEmptyPlayerID, tournament.ErrInvalidAchievement,
	inventory.ErrEmptyName, inventory.ErrInvalidCategory, inventory.ErrNegativeQuantity, inventory.ErrNegativeThreshold,
	batch.ErrEmptyName, batch.ErrInvalidSport, batch.ErrNegativeFee,
	announcement.ErrEmptyTitle, announcement.ErrEmptyMessage, announcement.ErrInvalidAudience,
	user.ErrEmptyEmail, user.ErrInvalidEmail, user.ErrInvalidRole,
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode_error", "error", err.Error())
	}
}

// writeError maps orchestrator errors onto status codes.
func writeError(w http.ResponseWriter, err error) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
			return
		}
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}
	}
	internalError(w, err)
}

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}

// badRequest reports a malformed body.
func badRequest(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request"})
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
