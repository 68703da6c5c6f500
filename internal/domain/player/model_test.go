package player_test

import (
	"testing"

	"academy/internal/domain/player"
)

// TestPlayerValidation tests validation of Player.
func TestPlayerValidation(t *testing.T) {
	long := make([]byte, player.MaxNameLength+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name    string
		player  player.Player
		wantErr error
	}{
		{
			name:    "valid player",
			player:  player.Player{ID: "p1", Name: "Alice Chen", Status: player.StatusActive, FeeAmount: 300, ContactEmail: "parent.chen@example.com"},
			wantErr: nil,
		},
		{
			name:    "valid inactive player without email",
			player:  player.Player{ID: "p4", Name: "Diana Prince", Status: player.StatusInactive},
			wantErr: nil,
		},
		{
			name:    "empty name",
			player:  player.Player{ID: "p1", Status: player.StatusActive},
			wantErr: player.ErrEmptyName,
		},
		{
			name:    "name too long",
			player:  player.Player{ID: "p1", Name: string(long), Status: player.StatusActive},
			wantErr: player.ErrNameTooLong,
		},
		{
			name:    "invalid status",
			player:  player.Player{ID: "p1", Name: "Bob", Status: "archived"},
			wantErr: player.ErrInvalidStatus,
		},
		{
			name:    "negative fee",
			player:  player.Player{ID: "p1", Name: "Bob", Status: player.StatusActive, FeeAmount: -1},
			wantErr: player.ErrNegativeFee,
		},
		{
			name:    "invalid email",
			player:  player.Player{ID: "p1", Name: "Bob", Status: player.StatusActive, ContactEmail: "bob"},
			wantErr: player.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.player.Validate(); err != tt.wantErr {
				t.Errorf("Player.Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestPlayerOwes tests the owed amount derived from the balance.
func TestPlayerOwes(t *testing.T) {
	tests := []struct {
		balance int
		want    int
	}{
		{-300, 300},
		{0, 0},
		{150, 0},
	}
	for _, tt := range tests {
		p := player.Player{Balance: tt.balance}
		if got := p.Owes(); got != tt.want {
			t.Errorf("Owes() with balance %d = %d, want %d", tt.balance, got, tt.want)
		}
	}
}

// TestPlayerReminderName prefers the guardian.
func TestPlayerReminderName(t *testing.T) {
	p := player.Player{Name: "Bob Smith", GuardianName: "Mr. Smith"}
	if got := p.ReminderName(); got != "Mr. Smith" {
		t.Errorf("ReminderName() = %q, want Mr. Smith", got)
	}
	p.GuardianName = ""
	if got := p.ReminderName(); got != "Bob Smith" {
		t.Errorf("ReminderName() = %q, want Bob Smith", got)
	}
}

// TestFormatStudentID pads to five digits.
func TestFormatStudentID(t *testing.T) {
	if got := player.FormatStudentID(23001); got != "STU-23001" {
		t.Errorf("FormatStudentID = %q", got)
	}
	if got := player.FormatStudentID(42); got != "STU-00042" {
		t.Errorf("FormatStudentID = %q", got)
	}
}
