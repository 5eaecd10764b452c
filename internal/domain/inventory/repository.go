package inventory

import (
	"context"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ItemRepository defines the interface for inventory item persistence
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindBySKU(ctx context.Context, sku string) (*Item, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Item, error)
	Save(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)

	// FindBelowMinimum returns active items at or below their reorder point
	FindBelowMinimum(ctx context.Context) ([]Item, error)

	// FindByIDForUpdate loads an item with a row lock for use inside a
	// transaction scope
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Item, error)
}

// TransactionRepository defines the interface for the append-only stock ledger
type TransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]Transaction, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Transaction, error)
	Save(ctx context.Context, tx *Transaction) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByItem(ctx context.Context, itemID uuid.UUID) (int64, error)
}
