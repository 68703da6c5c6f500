package projections

import (
	"academy/internal/application/store"
)

// CoachPayResult is the pay estimate for one coach.
type CoachPayResult struct {
	CoachID    string  `json:"coachId"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Role       string  `json:"role"`
	HourlyRate float64 `json:"hourlyRate"`
	Sessions   int     `json:"sessions"`
	Hours      float64 `json:"hours"`
	Pay        float64 `json:"pay"`
}

// CoachPay estimates what coachID has earned from assigned sessions.
// PRE: none
// POST: Returns sum(duration hours) * hourly rate; an unknown coach or unset rate yields 0
func CoachPay(snap store.Snapshot, coachID string) float64 {
	u, ok := snap.FindUser(coachID)
	if !ok {
		return 0
	}
	return coachHours(snap, coachID) * u.HourlyRate
}

// QueryGetCoachPayEstimates lists every user who coaches with their hours and pay.
// INVARIANT: admins are included; they run sessions too
func QueryGetCoachPayEstimates(snap store.Snapshot) []CoachPayResult {
	var out []CoachPayResult
	for _, u := range snap.Users {
		if !u.IsCoach() {
			continue
		}
		sessions := 0
		for _, s := range snap.Sessions {
			if s.CoachID == u.ID {
				sessions++
			}
		}
		hours := coachHours(snap, u.ID)
		out = append(out, CoachPayResult{
			CoachID:    u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Phone:      u.Phone,
			Role:       u.Role,
			HourlyRate: u.HourlyRate,
			Sessions:   sessions,
			Hours:      hours,
			Pay:        hours * u.HourlyRate,
		})
	}
	return out
}

func coachHours(snap store.Snapshot, coachID string) float64 {
	hours := 0.0
	for _, s := range snap.Sessions {
		if s.CoachID == coachID {
			hours += s.DurationHours()
		}
	}
	return hours
}
