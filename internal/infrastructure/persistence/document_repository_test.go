package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/assettrack/backend/internal/domain/asset"
)

func newMockDocumentRepository(t *testing.T) (*GormDocumentRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormDocumentRepository(gormDB), mock, mockDB
}

func TestGormDocumentRepository_FindByAsset(t *testing.T) {
	t.Run("returns all documents for the asset", func(t *testing.T) {
		repo, mock, mockDB := newMockDocumentRepository(t)
		defer mockDB.Close()

		assetID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "asset_id", "file_name", "status"}).
			AddRow(uuid.New(), assetID, "invoice.pdf", "active").
			AddRow(uuid.New(), assetID, "manual.pdf", "pending")

		mock.ExpectQuery(`SELECT \* FROM "asset_documents" WHERE asset_id = \$1 ORDER BY created_at DESC`).
			WithArgs(assetID).
			WillReturnRows(rows)

		docs, err := repo.FindByAsset(context.Background(), assetID, false)

		assert.NoError(t, err)
		assert.Len(t, docs, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("restricts to active documents when asked", func(t *testing.T) {
		repo, mock, mockDB := newMockDocumentRepository(t)
		defer mockDB.Close()

		assetID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "asset_id", "file_name", "status"}).
			AddRow(uuid.New(), assetID, "invoice.pdf", "active")

		mock.ExpectQuery(`SELECT \* FROM "asset_documents" WHERE asset_id = \$1 AND status = \$2 ORDER BY created_at DESC`).
			WithArgs(assetID, asset.DocumentStatusActive).
			WillReturnRows(rows)

		docs, err := repo.FindByAsset(context.Background(), assetID, true)

		assert.NoError(t, err)
		assert.Len(t, docs, 1)
		assert.Equal(t, asset.DocumentStatusActive, docs[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormDocumentRepository_FindStalePending(t *testing.T) {
	repo, mock, mockDB := newMockDocumentRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "asset_id", "file_name", "status"}).
		AddRow(uuid.New(), uuid.New(), "abandoned.pdf", "pending")

	mock.ExpectQuery(`SELECT \* FROM "asset_documents" WHERE status = \$1 AND created_at < \$2 ORDER BY created_at ASC`).
		WithArgs(asset.DocumentStatusPending, sqlmock.AnyArg()).
		WillReturnRows(rows)

	docs, err := repo.FindStalePending(context.Background(), 24*time.Hour)

	assert.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, asset.DocumentStatusPending, docs[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDocumentRepository_FindByStorageKey(t *testing.T) {
	repo, mock, mockDB := newMockDocumentRepository(t)
	defer mockDB.Close()

	docID := uuid.New()
	key := "assets/" + uuid.NewString() + "/invoice.pdf"

	rows := sqlmock.NewRows([]string{"id", "storage_key", "file_name"}).
		AddRow(docID, key, "invoice.pdf")

	mock.ExpectQuery(`SELECT \* FROM "asset_documents" WHERE storage_key = \$1 .*LIMIT .*`).
		WithArgs(key, 1).
		WillReturnRows(rows)

	doc, err := repo.FindByStorageKey(context.Background(), key)

	assert.NoError(t, err)
	assert.Equal(t, docID, doc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
