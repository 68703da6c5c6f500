package inventory

import (
	"errors"
	"strings"
)

// Item categories
const (
	CategoryEquipment  = "Equipment"
	CategoryConsumable = "Consumable"
	CategoryApparel    = "Apparel"
)

// ValidCategories contains all valid item categories.
var ValidCategories = []string{CategoryEquipment, CategoryConsumable, CategoryApparel}

// Domain errors
var (
	ErrEmptyName         = errors.New("item name cannot be empty")
	ErrInvalidCategory   = errors.New("category must be one of: Equipment, Consumable, Apparel")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrNegativeThreshold = errors.New("minimum threshold cannot be negative")
)

// Item is a stock line in the academy store room.
type Item struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Category     string `json:"category" yaml:"category"`
	Quantity     int    `json:"quantity" yaml:"quantity"`
	MinThreshold int    `json:"minThreshold" yaml:"minThreshold"`
	LastUpdated  string `json:"lastUpdated" yaml:"lastUpdated"`
}

// Validate checks if the Item has valid data.
// PRE: Item struct is populated
// POST: Returns nil if valid, error otherwise
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if !IsValidCategory(i.Category) {
		return ErrInvalidCategory
	}
	if i.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if i.MinThreshold < 0 {
		return ErrNegativeThreshold
	}
	return nil
}

// IsLowStock reports whether the item needs restocking.
// INVARIANT: the threshold itself counts as low (quantity <= MinThreshold)
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.MinThreshold
}

// Adjusted returns a copy with quantity moved by delta and stamped with date.
// PRE: date is YYYY-MM-DD
// POST: Quantity never drops below zero; the receiver is unchanged
func (i Item) Adjusted(delta int, date string) Item {
	i.Quantity += delta
	if i.Quantity < 0 {
		i.Quantity = 0
	}
	i.LastUpdated = date
	return i
}

// IsValidCategory reports whether c is a known category.
func IsValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}
