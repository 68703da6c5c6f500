package lead

import (
	"errors"
	"strings"
)

// Lead statuses. The usual progression is new -> contacted -> converted,
// with dropped possible at any point; transitions are not enforced.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusConverted = "converted"
	StatusDropped   = "dropped"
)

// ValidStatuses contains all valid lead statuses in pipeline order.
var ValidStatuses = []string{StatusNew, StatusContacted, StatusConverted, StatusDropped}

// Domain errors
var (
	ErrEmptyName     = errors.New("lead name cannot be empty")
	ErrEmptyContact  = errors.New("lead contact cannot be empty")
	ErrInvalidStatus = errors.New("lead status must be one of: new, contacted, converted, dropped")
)

// Lead is a prospective student.
type Lead struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Contact         string `json:"contact" yaml:"contact"`
	SportOfInterest string `json:"sportOfInterest" yaml:"sportOfInterest"`
	Notes           string `json:"notes" yaml:"notes"`
	Date            string `json:"date" yaml:"date"`
	Status          string `json:"status" yaml:"status"`
}

// Validate checks if the Lead has valid data.
// PRE: Lead struct is populated
// POST: Returns nil if valid, error otherwise
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(l.Contact) == "" {
		return ErrEmptyContact
	}
	if !IsValidStatus(l.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// IsOpen returns true while the lead still needs follow-up.
func (l *Lead) IsOpen() bool {
	return l.Status == StatusNew || l.Status == StatusContacted
}

// IsValidStatus reports whether s is a known lead status.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
