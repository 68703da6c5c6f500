package store

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"academy/internal/domain/announcement"
	"academy/internal/domain/attendance"
	"academy/internal/domain/batch"
	"academy/internal/domain/inventory"
	"academy/internal/domain/lead"
	"academy/internal/domain/payment"
	"academy/internal/domain/player"
	"academy/internal/domain/session"
	"academy/internal/domain/settings"
	"academy/internal/domain/tournament"
	"academy/internal/domain/user"
)

//go:embed seed.yaml
var bundledSeed []byte

// seedFile mirrors seed.yaml.
type seedFile struct {
	Users             []user.User                 `yaml:"users"`
	Batches           []batch.Batch               `yaml:"batches"`
	Players           []player.Player             `yaml:"players"`
	Sessions          []seedSession               `yaml:"sessions"`
	Leads             []lead.Lead                 `yaml:"leads"`
	Attendance        []attendance.Record         `yaml:"attendance"`
	Payments          []payment.Payment           `yaml:"payments"`
	Announcements     []announcement.Announcement `yaml:"announcements"`
	Tournaments       []tournament.Tournament     `yaml:"tournaments"`
	TournamentResults []tournament.Result         `yaml:"tournamentResults"`
	Inventory         []inventory.Item            `yaml:"inventory"`
	Settings          settings.Settings           `yaml:"settings"`
}

// seedSession lets a seeded session be placed relative to the load date
// instead of on a fixed calendar date.
type seedSession struct {
	session.Session `yaml:",inline"`
	DayOffset       int `yaml:"dayOffset"`
}

// LoadSeed returns the bundled demo academy.
// PRE: now is the current time; sessions without a date are placed at now + dayOffset
// POST: Returns a complete anonymous snapshot
func LoadSeed(now time.Time) (Snapshot, error) {
	return ParseSeed(bundledSeed, now)
}

// ParseSeed decodes a seed document.
// PRE: data is YAML in the seed.yaml layout
// POST: Returns the snapshot, or an error if the document cannot be decoded
func ParseSeed(data []byte, now time.Time) (Snapshot, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode seed: %w", err)
	}

	sessions := make([]session.Session, 0, len(f.Sessions))
	for _, s := range f.Sessions {
		sess := s.Session
		if sess.Date == "" {
			sess.Date = session.FormatDate(now.AddDate(0, 0, s.DayOffset))
		}
		if sess.RegisteredPlayerIDs == nil {
			sess.RegisteredPlayerIDs = []string{}
		}
		sessions = append(sessions, sess)
	}

	return Snapshot{
		Users:             f.Users,
		Players:           f.Players,
		Sessions:          sessions,
		Attendance:        f.Attendance,
		Payments:          f.Payments,
		Announcements:     f.Announcements,
		Batches:           f.Batches,
		Leads:             f.Leads,
		Tournaments:       f.Tournaments,
		TournamentResults: f.TournamentResults,
		Inventory:         f.Inventory,
		Settings:          f.Settings,
	}, nil
}
