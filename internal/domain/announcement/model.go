package announcement

import (
	"errors"
	"strings"
)

// Target audiences
const (
	AudienceAll     = "all"
	AudienceCoaches = "coaches"
	AudienceParents = "parents"
	AudienceBatch   = "batch"
)

// ValidAudiences contains all valid audience tags.
var ValidAudiences = []string{AudienceAll, AudienceCoaches, AudienceParents, AudienceBatch}

// DefaultTitle is used when an announcement is posted without a topic.
const DefaultTitle = "New Announcement"

// Domain errors
var (
	ErrEmptyTitle      = errors.New("announcement title cannot be empty")
	ErrEmptyMessage    = errors.New("announcement message cannot be empty")
	ErrInvalidAudience = errors.New("announcement audience must be one of: all, coaches, parents, batch")
)

// Announcement is a message posted to the academy notice board.
// Message supports Markdown formatting.
type Announcement struct {
	ID             string `json:"id" yaml:"id"`
	Title          string `json:"title" yaml:"title"`
	Message        string `json:"message" yaml:"message"`
	Date           string `json:"date" yaml:"date"`
	TargetAudience string `json:"targetAudience" yaml:"targetAudience"`
	AuthorID       string `json:"authorId" yaml:"authorId"`
}

// Validate checks if the Announcement has valid data.
// PRE: Announcement struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Announcement) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(a.Message) == "" {
		return ErrEmptyMessage
	}
	if !IsValidAudience(a.TargetAudience) {
		return ErrInvalidAudience
	}
	return nil
}

// IsValidAudience reports whether a is a known audience tag.
func IsValidAudience(a string) bool {
	for _, v := range ValidAudiences {
		if v == a {
			return true
		}
	}
	return false
}
