package inventory

import (
	"time"

	"github.com/assettrack/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateItemRequest registers a new inventory item with zero stock
type CreateItemRequest struct {
	SKU             string           `json:"sku" binding:"required,min=1,max=50"`
	Name            string           `json:"name" binding:"required,min=1,max=150"`
	Description     string           `json:"description" binding:"max=2000"`
	MinimumQuantity int              `json:"minimum_quantity" binding:"omitempty,min=0"`
	UnitCost        *decimal.Decimal `json:"unit_cost"`
	CreatedBy       *uuid.UUID       `json:"-"`
}

// UpdateItemRequest edits an item's descriptive fields; stock only moves
// through stock operations
type UpdateItemRequest struct {
	Name            string           `json:"name" binding:"required,min=1,max=150"`
	Description     string           `json:"description" binding:"max=2000"`
	MinimumQuantity int              `json:"minimum_quantity" binding:"omitempty,min=0"`
	UnitCost        *decimal.Decimal `json:"unit_cost"`
}

// ReceiveStockRequest adds stock to an item
type ReceiveStockRequest struct {
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Reason    string `json:"reason" binding:"max=255"`
	CreatedBy string `json:"-"`
}

// ConsumeStockRequest removes stock from an item
type ConsumeStockRequest struct {
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Reference string `json:"reference" binding:"max=100"`
	Reason    string `json:"reason" binding:"max=255"`
	CreatedBy string `json:"-"`
}

// AdjustStockRequest corrects an item's quantity by a signed delta
type AdjustStockRequest struct {
	Delta     int    `json:"delta" binding:"required"`
	Reason    string `json:"reason" binding:"required,min=1,max=255"`
	CreatedBy string `json:"-"`
}

// ItemResponse represents an inventory item in API responses
type ItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Quantity        int             `json:"quantity"`
	MinimumQuantity int             `json:"minimum_quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	Status          string          `json:"status"`
	BelowMinimum    bool            `json:"below_minimum"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Version         int             `json:"version"`
}

// TransactionResponse represents a stock movement in API responses
type TransactionResponse struct {
	ID             uuid.UUID `json:"id"`
	ItemID         uuid.UUID `json:"item_id"`
	SKU            string    `json:"sku"`
	Type           string    `json:"type"`
	Quantity       int       `json:"quantity"`
	QuantityBefore int       `json:"quantity_before"`
	QuantityAfter  int       `json:"quantity_after"`
	Reference      string    `json:"reference"`
	Reason         string    `json:"reason"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// ItemListFilter represents filter options for item listing
type ItemListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToItemResponse converts a domain Item to ItemResponse
func ToItemResponse(i *inventory.Item) *ItemResponse {
	return &ItemResponse{
		ID:              i.ID,
		SKU:             i.SKU,
		Name:            i.Name,
		Description:     i.Description,
		Quantity:        i.Quantity,
		MinimumQuantity: i.MinimumQuantity,
		UnitCost:        i.UnitCost,
		Status:          string(i.Status),
		BelowMinimum:    i.IsBelowMinimum(),
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
		Version:         i.Version,
	}
}

// ToTransactionResponse converts a domain Transaction to TransactionResponse
func ToTransactionResponse(tx *inventory.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:             tx.ID,
		ItemID:         tx.ItemID,
		SKU:            tx.SKU,
		Type:           string(tx.Type),
		Quantity:       tx.Quantity,
		QuantityBefore: tx.QuantityBefore,
		QuantityAfter:  tx.QuantityAfter,
		Reference:      tx.Reference,
		Reason:         tx.Reason,
		CreatedBy:      tx.CreatedBy,
		CreatedAt:      tx.CreatedAt,
	}
}
