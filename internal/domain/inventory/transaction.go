package inventory

import (
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionType classifies a stock movement
type TransactionType string

const (
	TransactionTypeIn     TransactionType = "IN"
	TransactionTypeOut    TransactionType = "OUT"
	TransactionTypeAdjust TransactionType = "ADJUST"
)

// Transaction is an append-only record of a stock movement. Transactions are
// only created through the Item aggregate so the before/after quantities are
// always consistent with the item.
type Transaction struct {
	shared.BaseEntity
	ItemID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	SKU            string          `gorm:"type:varchar(50);not null;index"`
	Type           TransactionType `gorm:"type:varchar(10);not null"`
	Quantity       int             `gorm:"not null"`
	QuantityBefore int             `gorm:"not null"`
	QuantityAfter  int             `gorm:"not null"`
	Reference      string          `gorm:"type:varchar(100);index"`
	Reason         string          `gorm:"type:varchar(255)"`
	CreatedBy      string          `gorm:"type:varchar(150)"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "inventory_transactions"
}

func newTransaction(item *Item, txType TransactionType, quantity, before int, reference, reason, createdBy string) *Transaction {
	return &Transaction{
		BaseEntity:     shared.NewBaseEntity(),
		ItemID:         item.ID,
		SKU:            item.SKU,
		Type:           txType,
		Quantity:       quantity,
		QuantityBefore: before,
		QuantityAfter:  item.Quantity,
		Reference:      reference,
		Reason:         reason,
		CreatedBy:      createdBy,
	}
}
