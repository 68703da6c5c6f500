package tournament

import (
	"errors"
	"strings"
)

// Achievements, ordered best first.
const (
	AchievementWinner       = "Winner"
	AchievementRunnerUp     = "Runner-up"
	AchievementSemiFinalist = "Semi-Finalist"
	AchievementParticipant  = "Participant"
)

// ValidAchievements contains all valid achievements, best first.
var ValidAchievements = []string{AchievementWinner, AchievementRunnerUp, AchievementSemiFinalist, AchievementParticipant}

// Domain errors
var (
	ErrEmptyName          = errors.New("tournament name cannot be empty")
	ErrEmptyTournamentID  = errors.New("result must reference a tournament")
	ErrEmptyPlayerID      = errors.New("result must reference a player")
	ErrInvalidAchievement = errors.New("achievement must be one of: Winner, Runner-up, Semi-Finalist, Participant")
)

// Tournament is an external competition the academy's players enter.
type Tournament struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Date     string `json:"date" yaml:"date"`
	Location string `json:"location" yaml:"location"`
}

// Validate checks if the Tournament has valid data.
// PRE: Tournament struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Tournament) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Result records how a player placed in a tournament category.
type Result struct {
	ID           string `json:"id" yaml:"id"`
	TournamentID string `json:"tournamentId" yaml:"tournamentId"`
	PlayerID     string `json:"playerId" yaml:"playerId"`
	Category     string `json:"category" yaml:"category"` // e.g. "U13 Boys Singles"
	Achievement  string `json:"achievement" yaml:"achievement"`
}

// Validate checks if the Result has valid data.
// PRE: Result struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Result) Validate() error {
	if strings.TrimSpace(r.TournamentID) == "" {
		return ErrEmptyTournamentID
	}
	if strings.TrimSpace(r.PlayerID) == "" {
		return ErrEmptyPlayerID
	}
	if Rank(r.Achievement) < 0 {
		return ErrInvalidAchievement
	}
	return nil
}

// IsPodium returns true for winners and runners-up.
func (r *Result) IsPodium() bool {
	return r.Achievement == AchievementWinner || r.Achievement == AchievementRunnerUp
}

// Rank returns the position of achievement in ValidAchievements, or -1 if unknown.
func Rank(achievement string) int {
	for i, v := range ValidAchievements {
		if v == achievement {
			return i
		}
	}
	return -1
}
