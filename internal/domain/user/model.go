package user

import (
	"errors"
	"net/url"
	"strings"
)

// Role constants
const (
	RoleAdmin  = "admin"
	RoleCoach  = "coach"
	RoleParent = "parent"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleAdmin, RoleCoach, RoleParent}

// Domain errors
var (
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidEmail = errors.New("email must contain '@'")
	ErrEmptyName    = errors.New("user name cannot be empty")
	ErrInvalidRole  = errors.New("role must be one of: admin, coach, parent")
	ErrNegativeRate = errors.New("hourly rate cannot be negative")
)

// User is a staff member or parent who can sign in to the dashboard.
// HourlyRate is only meaningful for coaches; zero means unset.
type User struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Email      string  `json:"email" yaml:"email"`
	Role       string  `json:"role" yaml:"role"`
	AvatarURL  string  `json:"avatarUrl,omitempty" yaml:"avatarUrl"`
	Phone      string  `json:"phone,omitempty" yaml:"phone"`
	HourlyRate float64 `json:"hourlyRate,omitempty" yaml:"hourlyRate"`
}

// Validate checks if the User has valid data.
// PRE: User struct is populated
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if !IsValidRole(u.Role) {
		return ErrInvalidRole
	}
	if u.HourlyRate < 0 {
		return ErrNegativeRate
	}
	return nil
}

// IsCoach returns true for users who run sessions and appear on the coach roster.
// Admins coach too in a small academy.
func (u *User) IsCoach() bool {
	return u.Role == RoleCoach || u.Role == RoleAdmin
}

// MatchesEmail reports whether email identifies this user, ignoring case and surrounding space.
func (u *User) MatchesEmail(email string) bool {
	return strings.EqualFold(strings.TrimSpace(u.Email), strings.TrimSpace(email))
}

// IsValidRole reports whether role is one of the known role labels.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// DisplayNameFromEmail returns the local part of an email address.
// PRE: none
// POST: Returns the text before the first '@', or the whole input if there is none
func DisplayNameFromEmail(email string) string {
	email = strings.TrimSpace(email)
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// AvatarURL builds a generated initials avatar for name.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name)
}

// Ephemeral builds the session-only user synthesized when someone signs in
// with an email that does not belong to a known user.
// PRE: email is the address typed at sign-in
// POST: Returns a user whose Name is the email local part and whose Role is role
func Ephemeral(email, role string) User {
	email = strings.TrimSpace(email)
	return User{
		ID:        "guest:" + email,
		Name:      DisplayNameFromEmail(email),
		Email:     email,
		Role:      role,
		AvatarURL: AvatarURL(email),
	}
}
