package orchestrators

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"academy/internal/domain/session"
)

// Lookup errors returned when an input references something the snapshot does not hold.
var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrLeadNotFound       = errors.New("lead not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrTournamentNotFound = errors.New("tournament not found")
)

// Clock supplies IDs and the current time to orchestrators. Zero values fall back to
// uuid.New and time.Now.
type Clock struct {
	GenerateID func() string
	Now        func() time.Time
}

func (c Clock) id() string {
	if c.GenerateID != nil {
		return c.GenerateID()
	}
	return uuid.New().String()
}

func (c Clock) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c Clock) today() string {
	return session.FormatDate(c.now())
}
