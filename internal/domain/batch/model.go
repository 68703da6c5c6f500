package batch

import (
	"errors"
	"strings"
)

// Sport constants
const (
	SportBadminton  = "badminton"
	SportVolleyball = "volleyball"
	SportOther      = "other"
)

// ValidSports contains all valid sport values.
var ValidSports = []string{SportBadminton, SportVolleyball, SportOther}

// Domain errors
var (
	ErrEmptyName    = errors.New("batch name cannot be empty")
	ErrInvalidSport = errors.New("sport must be one of: badminton, volleyball, other")
	ErrNegativeFee  = errors.New("monthly fee cannot be negative")
)

// Batch is a named training group with a coach and a monthly fee.
type Batch struct {
	ID                  string `json:"id" yaml:"id"`
	Name                string `json:"name" yaml:"name"`
	Sport               string `json:"sport" yaml:"sport"`
	CoachID             string `json:"coachId" yaml:"coachId"`
	ScheduleDescription string `json:"scheduleDescription" yaml:"scheduleDescription"` // e.g. "Mon/Wed 16:00"
	MonthlyFee          int    `json:"monthlyFee" yaml:"monthlyFee"`
}

// Validate checks if the Batch has valid data.
// PRE: Batch struct is populated
// POST: Returns nil if valid, error otherwise
func (b *Batch) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}
	if !IsValidSport(b.Sport) {
		return ErrInvalidSport
	}
	if b.MonthlyFee < 0 {
		return ErrNegativeFee
	}
	return nil
}

// IsValidSport reports whether s is a known sport.
func IsValidSport(s string) bool {
	for _, v := range ValidSports {
		if v == s {
			return true
		}
	}
	return false
}
