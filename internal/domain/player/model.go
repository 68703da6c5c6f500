package player

import (
	"errors"
	"fmt"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Business rule constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("player name cannot be empty")
	ErrNameTooLong   = errors.New("player name cannot exceed 100 characters")
	ErrInvalidStatus = errors.New("status must be 'active' or 'inactive'")
	ErrNegativeFee   = errors.New("fee amount cannot be negative")
	ErrInvalidEmail  = errors.New("contact email must be valid")
)

// Player is a registered student.
// Balance is a signed running amount: negative means the player owes the academy.
// INVARIANT: Balance only changes when a payment is recorded for the player.
type Player struct {
	ID            string `json:"id" yaml:"id"`
	StudentID     string `json:"studentId" yaml:"studentId"`
	Name          string `json:"name" yaml:"name"`
	DOB           string `json:"dob" yaml:"dob"`
	ContactEmail  string `json:"contactEmail" yaml:"contactEmail"`
	ContactPhone  string `json:"contactPhone" yaml:"contactPhone"`
	GuardianName  string `json:"guardianName,omitempty" yaml:"guardianName"`
	GuardianPhone string `json:"guardianPhone,omitempty" yaml:"guardianPhone"`
	PhotoURL      string `json:"photoUrl" yaml:"photoUrl"`
	FeeAmount     int    `json:"feeAmount" yaml:"feeAmount"`
	Balance       int    `json:"balance" yaml:"balance"`
	JoinedDate    string `json:"joinedDate" yaml:"joinedDate"`
	Status        string `json:"status" yaml:"status"`
	BatchID       string `json:"batchId,omitempty" yaml:"batchId"`
}

// Validate checks if the Player has valid data.
// PRE: Player struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Name must not be empty, Status must be active or inactive
func (p *Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if len(p.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if p.Status != StatusActive && p.Status != StatusInactive {
		return ErrInvalidStatus
	}
	if p.FeeAmount < 0 {
		return ErrNegativeFee
	}
	if p.ContactEmail != "" && !strings.Contains(p.ContactEmail, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// IsActive returns true if the player is currently training.
// INVARIANT: Status field is not mutated
func (p *Player) IsActive() bool {
	return p.Status == StatusActive
}

// Owes returns the amount the player owes, or 0 when the balance is settled or in credit.
func (p *Player) Owes() int {
	if p.Balance < 0 {
		return -p.Balance
	}
	return 0
}

// ReminderAddress returns the best email for fee reminders.
// Guardians have no email on file, so the contact email is used for everyone.
func (p *Player) ReminderAddress() string {
	return strings.TrimSpace(p.ContactEmail)
}

// ReminderName returns whom a reminder should be addressed to.
func (p *Player) ReminderName() string {
	if p.GuardianName != "" {
		return p.GuardianName
	}
	return p.Name
}

// FormatStudentID renders the visible student number.
// PRE: n is a five-digit number
// POST: Returns "STU-nnnnn"
func FormatStudentID(n int) string {
	return fmt.Sprintf("STU-%05d", n)
}
