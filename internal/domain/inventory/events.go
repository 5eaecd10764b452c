package inventory

import (
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeInventoryItem = "InventoryItem"

// Event type constants
const EventTypeStockBelowMinimum = "StockBelowMinimum"

// StockBelowMinimumEvent is published when an item's stock falls to or
// below its reorder point
type StockBelowMinimumEvent struct {
	shared.BaseDomainEvent
	ItemID          uuid.UUID `json:"item_id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	MinimumQuantity int       `json:"minimum_quantity"`
}

// NewStockBelowMinimumEvent creates a new StockBelowMinimumEvent
func NewStockBelowMinimumEvent(item *Item) *StockBelowMinimumEvent {
	return &StockBelowMinimumEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockBelowMinimum, AggregateTypeInventoryItem, item.ID),
		ItemID:          item.ID,
		SKU:             item.SKU,
		Name:            item.Name,
		Quantity:        item.Quantity,
		MinimumQuantity: item.MinimumQuantity,
	}
}
