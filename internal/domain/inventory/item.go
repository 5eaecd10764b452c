package inventory

import (
	"strconv"
	"strings"
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemStatus represents the status of an inventory item
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusInactive ItemStatus = "inactive"
)

// Item is a stocked consumable or spare part
type Item struct {
	shared.TrackedAggregateRoot
	SKU             string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name            string          `gorm:"type:varchar(150);not null"`
	Description     string          `gorm:"type:text"`
	Quantity        int             `gorm:"not null;default:0"`
	MinimumQuantity int             `gorm:"not null;default:0"`
	UnitCost        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status          ItemStatus      `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "inventory_items"
}

// NewItem creates a new inventory item with zero stock
func NewItem(sku, name, description string, minimumQuantity int, unitCost decimal.Decimal) (*Item, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 150 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot exceed 150 characters")
	}
	if minimumQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_MINIMUM", "Minimum quantity cannot be negative")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	return &Item{
		TrackedAggregateRoot: shared.NewTrackedAggregateRoot(),
		SKU:                  strings.ToUpper(sku),
		Name:                 name,
		Description:          description,
		Quantity:             0,
		MinimumQuantity:      minimumQuantity,
		UnitCost:             unitCost,
		Status:               ItemStatusActive,
	}, nil
}

// Update edits the item's descriptive fields; stock only moves via transactions
func (i *Item) Update(name, description string, minimumQuantity int, unitCost decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if minimumQuantity < 0 {
		return shared.NewDomainError("INVALID_MINIMUM", "Minimum quantity cannot be negative")
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	i.Name = name
	i.Description = description
	i.MinimumQuantity = minimumQuantity
	i.UnitCost = unitCost
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// Receive adds stock and returns the IN transaction recording the movement
func (i *Item) Receive(quantity int, reason, createdBy string) (*Transaction, error) {
	if i.Status != ItemStatusActive {
		return nil, shared.NewDomainError("ITEM_INACTIVE", "Cannot move stock on an inactive item")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Receive quantity must be positive")
	}

	before := i.Quantity
	i.Quantity += quantity
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return newTransaction(i, TransactionTypeIn, quantity, before, "", reason, createdBy), nil
}

// Consume removes stock and returns the OUT transaction. It fails when the
// available quantity is insufficient; nothing is changed in that case.
func (i *Item) Consume(quantity int, reference, reason, createdBy string) (*Transaction, error) {
	if i.Status != ItemStatusActive {
		return nil, shared.NewDomainError("ITEM_INACTIVE", "Cannot move stock on an inactive item")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Consume quantity must be positive")
	}
	if quantity > i.Quantity {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
			"Insufficient stock for "+i.SKU+": have "+strconv.Itoa(i.Quantity)+", need "+strconv.Itoa(quantity))
	}

	before := i.Quantity
	i.Quantity -= quantity
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	tx := newTransaction(i, TransactionTypeOut, quantity, before, reference, reason, createdBy)
	i.raiseLowStockIfNeeded()

	return tx, nil
}

// Adjust applies a signed correction. The resulting quantity is floored at
// zero by rejection, not clamping.
func (i *Item) Adjust(delta int, reason, createdBy string) (*Transaction, error) {
	if i.Status != ItemStatusActive {
		return nil, shared.NewDomainError("ITEM_INACTIVE", "Cannot move stock on an inactive item")
	}
	if delta == 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Adjustment delta cannot be zero")
	}
	if i.Quantity+delta < 0 {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
			"Adjustment would take "+i.SKU+" below zero")
	}
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Adjustments require a reason")
	}

	before := i.Quantity
	i.Quantity += delta
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	tx := newTransaction(i, TransactionTypeAdjust, delta, before, "", reason, createdBy)
	if delta < 0 {
		i.raiseLowStockIfNeeded()
	}

	return tx, nil
}

// IsBelowMinimum reports whether the stock is at or below the reorder point
func (i *Item) IsBelowMinimum() bool {
	return i.MinimumQuantity > 0 && i.Quantity <= i.MinimumQuantity
}

// Deactivate retires the item from stock movements
func (i *Item) Deactivate() error {
	if i.Status == ItemStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Item is already inactive")
	}
	i.Status = ItemStatusInactive
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// Activate reinstates the item
func (i *Item) Activate() error {
	if i.Status == ItemStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Item is already active")
	}
	i.Status = ItemStatusActive
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

func (i *Item) raiseLowStockIfNeeded() {
	if i.IsBelowMinimum() {
		i.AddDomainEvent(NewStockBelowMinimumEvent(i))
	}
}

func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
