package attendance

import (
	"errors"
	"strings"
)

// Attendance statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusExcused = "excused"
	StatusLate    = "late"
)

// ValidStatuses contains all valid attendance statuses.
var ValidStatuses = []string{StatusPresent, StatusAbsent, StatusExcused, StatusLate}

// Domain errors
var (
	ErrEmptySessionID = errors.New("attendance must be associated with a session")
	ErrEmptyPlayerID  = errors.New("attendance must be associated with a player")
	ErrInvalidStatus  = errors.New("attendance status must be one of: present, absent, excused, late")
)

// Record holds one player's attendance at one session.
// INVARIANT: at most one Record exists per (SessionID, PlayerID) pair.
type Record struct {
	ID        string `json:"id" yaml:"id"`
	SessionID string `json:"sessionId" yaml:"sessionId"`
	PlayerID  string `json:"playerId" yaml:"playerId"`
	Status    string `json:"status" yaml:"status"`
	Notes     string `json:"notes,omitempty" yaml:"notes"`
}

// Validate checks if the Record has valid data.
// PRE: Record struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: SessionID and PlayerID must not be empty
func (r *Record) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return ErrEmptySessionID
	}
	if strings.TrimSpace(r.PlayerID) == "" {
		return ErrEmptyPlayerID
	}
	if !IsValidStatus(r.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// SameSlot reports whether r and other describe the same (session, player) pair.
func (r *Record) SameSlot(other Record) bool {
	return r.SessionID == other.SessionID && r.PlayerID == other.PlayerID
}

// IsPresent returns true only for an on-time present mark.
func (r *Record) IsPresent() bool {
	return r.Status == StatusPresent
}

// Attended returns true if the player turned up, on time or late.
func (r *Record) Attended() bool {
	return r.Status == StatusPresent || r.Status == StatusLate
}

// RecordID derives the conventional record ID for a (session, player) pair.
func RecordID(sessionID, playerID string) string {
	return "att_" + sessionID + "_" + playerID
}

// IsValidStatus reports whether s is a known attendance status.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
