package inventory

import (
	"context"

	"github.com/assettrack/backend/internal/domain/inventory"
	"github.com/assettrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LowStockAlertHandler logs a warning whenever an item's stock falls to or
// below its reorder point. Subscribed to the event bus at startup.
type LowStockAlertHandler struct {
	logger *zap.Logger
}

// NewLowStockAlertHandler creates a new LowStockAlertHandler
func NewLowStockAlertHandler(logger *zap.Logger) *LowStockAlertHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LowStockAlertHandler{logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *LowStockAlertHandler) EventTypes() []string {
	return []string{inventory.EventTypeStockBelowMinimum}
}

// Handle logs the low-stock alert
func (h *LowStockAlertHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	lowStock, ok := event.(*inventory.StockBelowMinimumEvent)
	if !ok {
		return nil
	}

	h.logger.Warn("inventory item below minimum stock",
		zap.String("item_id", lowStock.ItemID.String()),
		zap.String("sku", lowStock.SKU),
		zap.String("name", lowStock.Name),
		zap.Int("quantity", lowStock.Quantity),
		zap.Int("minimum_quantity", lowStock.MinimumQuantity))

	return nil
}

var _ shared.EventHandler = (*LowStockAlertHandler)(nil)
