package settings

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyAcademyName   = errors.New("academy name cannot be empty")
	ErrNegativeDefaultFee = errors.New("default monthly fee cannot be negative")
	ErrInvalidReminderDay = errors.New("payment reminder day must be between 1 and 28")
)

// Settings is the academy-wide configuration singleton.
// It is always replaced as a whole, never patched field by field.
type Settings struct {
	AcademyName        string `json:"academyName" yaml:"academyName"`
	Address            string `json:"address" yaml:"address"`
	ContactPhone       string `json:"contactPhone" yaml:"contactPhone"`
	DefaultMonthlyFee  int    `json:"defaultMonthlyFee" yaml:"defaultMonthlyFee"`
	PaymentReminderDay int    `json:"paymentReminderDay" yaml:"paymentReminderDay"` // day of month
	AppVersion         string `json:"appVersion" yaml:"appVersion"`
	LogoURL            string `json:"logoUrl,omitempty" yaml:"logoUrl"`
}

// Validate checks if the Settings have valid data.
// PRE: Settings struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.AcademyName) == "" {
		return ErrEmptyAcademyName
	}
	if s.DefaultMonthlyFee < 0 {
		return ErrNegativeDefaultFee
	}
	if s.PaymentReminderDay < 1 || s.PaymentReminderDay > 28 {
		return ErrInvalidReminderDay
	}
	return nil
}

// HasCustomLogo returns true when a logo has been uploaded.
func (s *Settings) HasCustomLogo() bool {
	return s.LogoURL != ""
}

// IsReminderDay reports whether dayOfMonth is the configured reminder day.
func (s *Settings) IsReminderDay(dayOfMonth int) bool {
	return s.PaymentReminderDay == dayOfMonth
}
