package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/shared"
)

// GormAuditRecordRepository implements asset.AuditRecordRepository using GORM.
// Audit records are append-only; there is no update or delete path.
type GormAuditRecordRepository struct {
	db *gorm.DB
}

// NewGormAuditRecordRepository creates a new GORM audit record repository
func NewGormAuditRecordRepository(db *gorm.DB) *GormAuditRecordRepository {
	return &GormAuditRecordRepository{db: db}
}

// FindByID finds an audit record by ID
func (r *GormAuditRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*asset.AuditRecord, error) {
	var record asset.AuditRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByAsset finds audit records for an asset
func (r *GormAuditRecordRepository) FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]asset.AuditRecord, error) {
	var records []asset.AuditRecord
	query := r.applyFilter(r.db.WithContext(ctx), filter).Where("asset_id = ?", assetID)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindAll finds all audit records matching the filter
func (r *GormAuditRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]asset.AuditRecord, error) {
	var records []asset.AuditRecord
	query := r.applyFilter(r.db.WithContext(ctx), filter)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save persists an audit record
func (r *GormAuditRecordRepository) Save(ctx context.Context, record *asset.AuditRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Count counts audit records matching the filter
func (r *GormAuditRecordRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&asset.AuditRecord{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByAsset counts audit records for an asset
func (r *GormAuditRecordRepository) CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&asset.AuditRecord{}).
		Where("asset_id = ?", assetID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAuditRecordRepository) applyFilter(db *gorm.DB, filter shared.Filter) *gorm.DB {
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

func (r *GormAuditRecordRepository) applyFilterWithoutPagination(db *gorm.DB, filter shared.Filter) *gorm.DB {
	query := db

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where(
			"audited_by ILIKE ? OR location_note ILIKE ? OR notes ILIKE ?",
			searchPattern, searchPattern, searchPattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "asset_id":
			query = query.Where("asset_id = ?", value)
		case "condition":
			query = query.Where("condition = ?", value)
		case "discrepancy":
			query = query.Where("discrepancy_flg = ?", value)
		}
	}

	return query
}

// Ensure GormAuditRecordRepository implements asset.AuditRecordRepository
var _ asset.AuditRecordRepository = (*GormAuditRecordRepository)(nil)
