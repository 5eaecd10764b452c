package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/shared"
)

// GormDocumentRepository implements asset.DocumentRepository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GORM document repository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// FindByID finds a document by ID
func (r *GormDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*asset.Document, error) {
	var doc asset.Document
	err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindByStorageKey finds a document by its storage key
func (r *GormDocumentRepository) FindByStorageKey(ctx context.Context, storageKey string) (*asset.Document, error) {
	var doc asset.Document
	err := r.db.WithContext(ctx).First(&doc, "storage_key = ?", storageKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindByAsset returns the asset's documents, optionally restricted to active ones
func (r *GormDocumentRepository) FindByAsset(ctx context.Context, assetID uuid.UUID, activeOnly bool) ([]asset.Document, error) {
	var docs []asset.Document
	query := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("created_at DESC")
	if activeOnly {
		query = query.Where("status = ?", asset.DocumentStatusActive)
	}
	if err := query.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// FindAll finds all documents matching the filter
func (r *GormDocumentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]asset.Document, error) {
	var docs []asset.Document
	query := r.applyFilter(r.db.WithContext(ctx), filter)
	if err := query.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Save creates or updates a document
func (r *GormDocumentRepository) Save(ctx context.Context, doc *asset.Document) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

// Delete removes a document row
func (r *GormDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&asset.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts documents matching the filter
func (r *GormDocumentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&asset.Document{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindStalePending returns pending documents created before now - olderThan.
// These are uploads that were announced but never confirmed.
func (r *GormDocumentRepository) FindStalePending(ctx context.Context, olderThan time.Duration) ([]asset.Document, error) {
	var docs []asset.Document
	cutoff := time.Now().Add(-olderThan)
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", asset.DocumentStatusPending, cutoff).
		Order("created_at ASC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *GormDocumentRepository) applyFilter(db *gorm.DB, filter shared.Filter) *gorm.DB {
	query := r.applyFilterWithoutPagination(db, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CommonSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	return query
}

func (r *GormDocumentRepository) applyFilterWithoutPagination(db *gorm.DB, filter shared.Filter) *gorm.DB {
	query := db

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("file_name ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "asset_id":
			query = query.Where("asset_id = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

// Ensure GormDocumentRepository implements asset.DocumentRepository
var _ asset.DocumentRepository = (*GormDocumentRepository)(nil)
