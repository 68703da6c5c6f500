package inventory_test

import (
	"testing"

	"academy/internal/domain/inventory"
)

// TestItemValidation tests validation of Item.
func TestItemValidation(t *testing.T) {
	tests := []struct {
		name    string
		item    inventory.Item
		wantErr error
	}{
		{"valid", inventory.Item{Name: "Shuttle tube", Category: inventory.CategoryConsumable, Quantity: 12, MinThreshold: 5}, nil},
		{"empty name", inventory.Item{Category: inventory.CategoryApparel}, inventory.ErrEmptyName},
		{"bad category", inventory.Item{Name: "Net", Category: "Furniture"}, inventory.ErrInvalidCategory},
		{"negative quantity", inventory.Item{Name: "Net", Category: inventory.CategoryEquipment, Quantity: -1}, inventory.ErrNegativeQuantity},
		{"negative threshold", inventory.Item{Name: "Net", Category: inventory.CategoryEquipment, MinThreshold: -1}, inventory.ErrNegativeThreshold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.item.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestItemIsLowStock checks the inclusive threshold boundary.
func TestItemIsLowStock(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold int
		want      bool
	}{
		{"above threshold", 6, 5, false},
		{"at threshold", 5, 5, true},
		{"below threshold", 4, 5, true},
		{"zero threshold empty", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := inventory.Item{Quantity: tt.quantity, MinThreshold: tt.threshold}
			if got := i.IsLowStock(); got != tt.want {
				t.Errorf("IsLowStock() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestItemAdjusted clamps at zero and leaves the original untouched.
func TestItemAdjusted(t *testing.T) {
	orig := inventory.Item{ID: "i2", Quantity: 1, LastUpdated: "2023-10-20"}

	down := orig.Adjusted(-3, "2024-01-02")
	if down.Quantity != 0 {
		t.Errorf("Quantity = %d, want 0", down.Quantity)
	}
	if down.LastUpdated != "2024-01-02" {
		t.Errorf("LastUpdated = %q", down.LastUpdated)
	}
	if orig.Quantity != 1 || orig.LastUpdated != "2023-10-20" {
		t.Errorf("original mutated: %+v", orig)
	}

	up := orig.Adjusted(4, "2024-01-03")
	if up.Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", up.Quantity)
	}
}
