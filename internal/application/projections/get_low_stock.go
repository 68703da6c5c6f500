package projections

import (
	"academy/internal/application/store"
	"academy/internal/domain/inventory"
)

// LowStockItems returns the items at or below their reorder threshold.
// PRE: none
// POST: Items with Quantity <= MinThreshold, in collection order
func LowStockItems(snap store.Snapshot) []inventory.Item {
	out := []inventory.Item{}
	for _, it := range snap.Inventory {
		if it.IsLowStock() {
			out = append(out, it)
		}
	}
	return out
}
