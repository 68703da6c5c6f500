package user_test

import (
	"testing"

	"academy/internal/domain/user"
)

// TestUserValidation tests validation of User.
func TestUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		user    user.User
		wantErr error
	}{
		{"valid coach", user.User{Name: "Coach Mike", Email: "coach@lolo.com", Role: user.RoleCoach, HourlyRate: 50}, nil},
		{"valid parent", user.User{Name: "Parent John", Email: "parent@lolo.com", Role: user.RoleParent}, nil},
		{"empty name", user.User{Email: "a@b.com", Role: user.RoleAdmin}, user.ErrEmptyName},
		{"empty email", user.User{Name: "A", Role: user.RoleAdmin}, user.ErrEmptyEmail},
		{"invalid email", user.User{Name: "A", Email: "nope", Role: user.RoleAdmin}, user.ErrInvalidEmail},
		{"invalid role", user.User{Name: "A", Email: "a@b.com", Role: "member"}, user.ErrInvalidRole},
		{"negative rate", user.User{Name: "A", Email: "a@b.com", Role: user.RoleCoach, HourlyRate: -1}, user.ErrNegativeRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.user.Validate(); err != tt.wantErr {
				t.Errorf("User.Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestDisplayNameFromEmail tests local-part extraction.
func TestDisplayNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"newcoach@lolo.com", "newcoach"},
		{"  spaced@lolo.com ", "spaced"},
		{"no-at-sign", "no-at-sign"},
		{"@lolo.com", ""},
		{"a@b@c", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := user.DisplayNameFromEmail(tt.email); got != tt.want {
				t.Errorf("DisplayNameFromEmail(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}

// TestEphemeral verifies the synthesized sign-in user.
func TestEphemeral(t *testing.T) {
	u := user.Ephemeral("visitor@example.com", user.RoleParent)
	if u.Name != "visitor" {
		t.Errorf("Name = %q, want visitor", u.Name)
	}
	if u.Role != user.RoleParent {
		t.Errorf("Role = %q, want %q", u.Role, user.RoleParent)
	}
	if u.Email != "visitor@example.com" {
		t.Errorf("Email = %q", u.Email)
	}
	if u.ID == "" {
		t.Error("expected a non-empty ID")
	}
}

// TestUserIsCoach tests roster membership by role.
func TestUserIsCoach(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{user.RoleCoach, true},
		{user.RoleAdmin, true},
		{user.RoleParent, false},
	}
	for _, tt := range tests {
		u := user.User{Role: tt.role}
		if got := u.IsCoach(); got != tt.want {
			t.Errorf("IsCoach() for %s = %v, want %v", tt.role, got, tt.want)
		}
	}
}

// TestUserMatchesEmail tests case-insensitive email matching.
func TestUserMatchesEmail(t *testing.T) {
	u := user.User{Email: "Coach@Lolo.com"}
	if !u.MatchesEmail(" coach@lolo.com") {
		t.Error("expected match ignoring case and space")
	}
	if u.MatchesEmail("other@lolo.com") {
		t.Error("expected no match for a different address")
	}
}
