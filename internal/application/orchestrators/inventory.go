package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"academy/internal/application/store"
	"academy/internal/domain/inventory"
)

// InventoryDeps holds dependencies for the inventory orchestrators.
type InventoryDeps struct {
	Store store.ReadDispatcher
	Clock Clock
}

// ExecuteSaveItem creates an item, or replaces the one with the same ID.
// PRE: item passes Validate; an empty ID creates a new item
// POST: Item upserted with LastUpdated = today
func ExecuteSaveItem(ctx context.Context, item inventory.Item, deps InventoryDeps) (inventory.Item, error) {
	created := item.ID == ""
	if created {
		item.ID = deps.Clock.id()
	}
	item.Name = strings.TrimSpace(item.Name)
	item.LastUpdated = deps.Clock.today()
	if err := item.Validate(); err != nil {
		return inventory.Item{}, err
	}
	deps.Store.Dispatch(ctx, store.UpsertInventoryItem{Item: item})
	slog.InfoContext(ctx, "inventory_event", "event", "item_saved", "item_id", item.ID, "created", created, "quantity", item.Quantity)
	return item, nil
}

// ExecuteAdjustStock moves an item's quantity by delta.
// PRE: id names an existing item
// POST: Quantity = max(0, quantity + delta); LastUpdated = today
func ExecuteAdjustStock(ctx context.Context, id string, delta int, deps InventoryDeps) (inventory.Item, error) {
	existing, ok := deps.Store.Snapshot().FindItem(id)
	if !ok {
		return inventory.Item{}, ErrItemNotFound
	}
	adjusted := existing.Adjusted(delta, deps.Clock.today())
	deps.Store.Dispatch(ctx, store.UpsertInventoryItem{Item: adjusted})

	slog.InfoContext(ctx, "inventory_event", "event", "stock_adjusted", "item_id", id, "delta", delta, "quantity", adjusted.Quantity, "low_stock", adjusted.IsLowStock())
	return adjusted, nil
}
