package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"academy/internal/application/store"
	"academy/internal/domain/lead"
	"academy/internal/domain/player"
)

// AddLeadInput carries input for the lead capture orchestrator.
type AddLeadInput struct {
	Name            string
	Contact         string
	SportOfInterest string
	Notes           string
}

// LeadDeps holds dependencies for the lead orchestrators.
type LeadDeps struct {
	Store store.ReadDispatcher
	Clock Clock
}

// ExecuteAddLead records a new enquiry.
// PRE: Name and Contact are non-empty
// POST: Lead appended with status new and today's date
func ExecuteAddLead(ctx context.Context, input AddLeadInput, deps LeadDeps) (lead.Lead, error) {
	l := lead.Lead{
		ID:              deps.Clock.id(),
		Name:            strings.TrimSpace(input.Name),
		Contact:         strings.TrimSpace(input.Contact),
		SportOfInterest: input.SportOfInterest,
		Notes:           input.Notes,
		Date:            deps.Clock.today(),
		Status:          lead.StatusNew,
	}
	if err := l.Validate(); err != nil {
		return lead.Lead{}, err
	}
	deps.Store.Dispatch(ctx, store.AddLead{Lead: l})
	slog.InfoContext(ctx, "lead_event", "event", "lead_added", "lead_id", l.ID, "sport", l.SportOfInterest)
	return l, nil
}

// ExecuteSetLeadStatus moves a lead to status.
// PRE: id names an existing lead; status is a known lead status
// POST: Only the lead's status changes; any transition is allowed
func ExecuteSetLeadStatus(ctx context.Context, id, status string, deps LeadDeps) error {
	if !lead.IsValidStatus(status) {
		return lead.ErrInvalidStatus
	}
	existing, ok := deps.Store.Snapshot().FindLead(id)
	if !ok {
		return ErrLeadNotFound
	}
	deps.Store.Dispatch(ctx, store.SetLeadStatus{ID: id, Status: status})
	slog.InfoContext(ctx, "lead_event", "event", "lead_status_changed", "lead_id", id, "from", existing.Status, "to", status)
	return nil
}

// ConvertLeadInput carries the details needed to enrol a lead.
type ConvertLeadInput struct {
	LeadID       string
	BatchID      string
	DOB          string
	ContactEmail string
	GuardianName string
}

// ConvertLeadDeps holds dependencies for ConvertLead.
type ConvertLeadDeps struct {
	Store         store.ReadDispatcher
	Clock         Clock
	StudentNumber func() int
}

// ExecuteConvertLead enrols a lead as a player and marks the lead converted.
// PRE: LeadID names an existing lead
// POST: A new active player exists with the lead's name and contact; the lead's status is converted
func ExecuteConvertLead(ctx context.Context, input ConvertLeadInput, deps ConvertLeadDeps) (player.Player, error) {
	l, ok := deps.Store.Snapshot().FindLead(input.LeadID)
	if !ok {
		return player.Player{}, ErrLeadNotFound
	}

	reg := RegisterPlayerInput{
		Name:         l.Name,
		DOB:          input.DOB,
		ContactEmail: input.ContactEmail,
		GuardianName: input.GuardianName,
		BatchID:      input.BatchID,
	}
	// The lead's contact is either an email or a phone number.
	if strings.Contains(l.Contact, "@") {
		if reg.ContactEmail == "" {
			reg.ContactEmail = l.Contact
		}
	} else {
		reg.ContactPhone = l.Contact
	}

	p, err := ExecuteRegisterPlayer(ctx, reg, RegisterPlayerDeps{Store: deps.Store, Clock: deps.Clock, StudentNumber: deps.StudentNumber})
	if err != nil {
		return player.Player{}, err
	}
	deps.Store.Dispatch(ctx, store.SetLeadStatus{ID: l.ID, Status: lead.StatusConverted})

	slog.InfoContext(ctx, "lead_event", "event", "lead_converted", "lead_id", l.ID, "player_id", p.ID)
	return p, nil
}
