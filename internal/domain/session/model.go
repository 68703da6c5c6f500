package session

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar date format used across the academy (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// TimeLayout is the start time format (HH:MM).
const TimeLayout = "15:04"

// Domain errors
var (
	ErrInvalidDate     = errors.New("session date must be YYYY-MM-DD")
	ErrInvalidTime     = errors.New("session time must be HH:MM")
	ErrInvalidDuration = errors.New("session duration must be positive")
	ErrInvalidCapacity = errors.New("session capacity cannot be negative")
)

// Session is a single scheduled practice.
// Capacity is informational; RegisteredPlayerIDs may exceed it.
type Session struct {
	ID                  string   `json:"id" yaml:"id"`
	Date                string   `json:"date" yaml:"date"` // YYYY-MM-DD
	Time                string   `json:"time" yaml:"time"` // HH:MM
	DurationMinutes     int      `json:"durationMinutes" yaml:"durationMinutes"`
	CoachID             string   `json:"coachId" yaml:"coachId"`
	Court               string   `json:"court" yaml:"court"`
	Capacity            int      `json:"capacity" yaml:"capacity"`
	RegisteredPlayerIDs []string `json:"registeredPlayerIds" yaml:"registeredPlayerIds"`
	BatchID             string   `json:"batchId,omitempty" yaml:"batchId"`
}

// Validate checks if the Session has valid data.
// PRE: Session struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Session) Validate() error {
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return ErrInvalidDate
	}
	if _, err := time.Parse(TimeLayout, strings.TrimSpace(s.Time)); err != nil {
		return ErrInvalidTime
	}
	if s.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if s.Capacity < 0 {
		return ErrInvalidCapacity
	}
	return nil
}

// DurationHours returns the session length in hours.
func (s *Session) DurationHours() float64 {
	return float64(s.DurationMinutes) / 60
}

// IsOn reports whether the session takes place on date (YYYY-MM-DD).
func (s *Session) IsOn(date string) bool {
	return s.Date == date
}

// IsFull reports whether registrations have reached capacity.
// A zero capacity never counts as full.
func (s *Session) IsFull() bool {
	return s.Capacity > 0 && len(s.RegisteredPlayerIDs) >= s.Capacity
}

// FormatDate renders t as a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Month truncates a YYYY-MM-DD date to its YYYY-MM month key.
// Shorter inputs are returned unchanged.
func Month(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
