package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/assettrack/backend/internal/domain/shared"
)

func newMockItemRepository(t *testing.T) (*GormInventoryItemRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormInventoryItemRepository(gormDB), mock, mockDB
}

func TestGormInventoryItemRepository_FindBySKU(t *testing.T) {
	t.Run("finds existing item", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "sku", "name", "quantity", "minimum_quantity", "status"}).
			AddRow(itemID, "FLT-OIL-01", "Oil Filter", 14, 5, "active")

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE sku = \$1 .*LIMIT .*`).
			WithArgs("FLT-OIL-01", 1).
			WillReturnRows(rows)

		item, err := repo.FindBySKU(context.Background(), "FLT-OIL-01")

		assert.NoError(t, err)
		assert.Equal(t, itemID, item.ID)
		assert.Equal(t, 14, item.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for unknown SKU", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE sku = \$1 .*LIMIT .*`).
			WithArgs("NO-SUCH-SKU", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		item, err := repo.FindBySKU(context.Background(), "NO-SUCH-SKU")

		assert.Nil(t, item)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryItemRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("issues a row lock", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "sku", "quantity"}).
			AddRow(itemID, "FLT-OIL-01", 14)

		mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE id = \$1 .*FOR UPDATE`).
			WithArgs(itemID, 1).
			WillReturnRows(rows)

		item, err := repo.FindByIDForUpdate(context.Background(), itemID)

		assert.NoError(t, err)
		assert.Equal(t, itemID, item.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryItemRepository_FindBelowMinimum(t *testing.T) {
	repo, mock, mockDB := newMockItemRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "sku", "quantity", "minimum_quantity", "status"}).
		AddRow(uuid.New(), "BELT-V-02", 2, 5, "active")

	// Items without a configured reorder point (minimum_quantity = 0) must
	// be filtered out in SQL, not just by Item.IsBelowMinimum.
	mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE status = \$1 AND minimum_quantity > 0 AND quantity <= minimum_quantity ORDER BY sku ASC`).
		WithArgs("active").
		WillReturnRows(rows)

	items, err := repo.FindBelowMinimum(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "BELT-V-02", items[0].SKU)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormInventoryItemRepository_ExistsBySKU(t *testing.T) {
	repo, mock, mockDB := newMockItemRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(1)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "inventory_items" WHERE sku = \$1`).
		WithArgs("FLT-OIL-01").
		WillReturnRows(rows)

	exists, err := repo.ExistsBySKU(context.Background(), "FLT-OIL-01")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
