package asset

import (
	"context"
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for asset persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Asset, error)
	FindByTagID(ctx context.Context, tagID string) (*Asset, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Asset, error)
	Save(ctx context.Context, a *Asset) error

	// Delete soft-deletes the asset
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByTagID(ctx context.Context, tagID string) (bool, error)

	// CountByCategory counts non-deleted assets referencing the category
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// CountBySubCategory counts non-deleted assets referencing the subcategory
	CountBySubCategory(ctx context.Context, subCategoryID uuid.UUID) (int64, error)

	// CountByDepartment counts non-deleted assets referencing the department
	CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int64, error)

	// CountBySite counts non-deleted assets referencing the site
	CountBySite(ctx context.Context, siteID uuid.UUID) (int64, error)
}

// AuditRecordRepository defines the interface for audit record persistence.
// Audit records are append-only.
type AuditRecordRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuditRecord, error)
	FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]AuditRecord, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]AuditRecord, error)
	Save(ctx context.Context, record *AuditRecord) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error)
}

// DocumentRepository defines the interface for asset document persistence
type DocumentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)
	FindByStorageKey(ctx context.Context, storageKey string) (*Document, error)

	// FindByAsset returns the asset's documents, optionally restricted to active ones
	FindByAsset(ctx context.Context, assetID uuid.UUID, activeOnly bool) ([]Document, error)

	FindAll(ctx context.Context, filter shared.Filter) ([]Document, error)
	Save(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindStalePending returns pending documents older than the given age,
	// for cleanup of uploads that were never confirmed
	FindStalePending(ctx context.Context, olderThan time.Duration) ([]Document, error)
}
