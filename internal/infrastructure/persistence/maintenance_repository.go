package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assettrack/backend/internal/domain/maintenance"
	"github.com/assettrack/backend/internal/domain/shared"
)

// GormMaintenanceRepository implements maintenance.Repository using GORM
type GormMaintenanceRepository struct {
	db *gorm.DB
}

// NewGormMaintenanceRepository creates a new GORM maintenance repository
func NewGormMaintenanceRepository(db *gorm.DB) *GormMaintenanceRepository {
	return &GormMaintenanceRepository{db: db}
}

// FindByID finds a maintenance record by ID, including consumed parts
func (r *GormMaintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Record, error) {
	var record maintenance.Record
	err := r.db.WithContext(ctx).Preload("Parts").First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByAsset finds maintenance records for an asset
func (r *GormMaintenanceRepository) FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]maintenance.Record, error) {
	var records []maintenance.Record
	query := r.applyFilter(r.db.WithContext(ctx), filter).Where("asset_id = ?", assetID)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindAll finds all maintenance records matching the filter
func (r *GormMaintenanceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]maintenance.Record, error) {
	var records []maintenance.Record
	query := r.applyFilter(r.db.WithContext(ctx), filter)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save creates or updates a maintenance record along with its parts
func (r *GormMaintenanceRepository) Save(ctx context.Context, record *maintenance.Record) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(record).Error
}

// Delete removes a maintenance record and its parts
func (r *GormMaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&maintenance.Part{}, "maintenance_record_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&maintenance.Record{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts maintenance records matching the filter
func (r *GormMaintenanceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&maintenance.Record{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByAsset counts maintenance records for an asset
func (r *GormMaintenanceRepository) CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&maintenance.Record{}).
		Where("asset_id = ?", assetID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindDue returns scheduled records whose ScheduledAt is before the cutoff
func (r *GormMaintenanceRepository) FindDue(ctx context.Context, cutoff time.Time) ([]maintenance.Record, error) {
	var records []maintenance.Record
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at < ?", maintenance.MaintenanceStatusScheduled, cutoff).
		Order("scheduled_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// HasOpenForAsset reports whether the asset has a scheduled or in-progress
// maintenance record
func (r *GormMaintenanceRepository) HasOpenForAsset(ctx context.Context, assetID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&maintenance.Record{}).
		Where("asset_id = ? AND status IN ?", assetID, []maintenance.MaintenanceStatus{
			maintenance.MaintenanceStatusScheduled,
			maintenance.MaintenanceStatusInProgress,
		}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormMaintenanceRepository) applyFilter(db *gorm.DB, filter shared.Filter) *gorm.DB {
	query := r.applyFilterWithoutPagination(db, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, MaintenanceSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	return query
}

func (r *GormMaintenanceRepository) applyFilterWithoutPagination(db *gorm.DB, filter shared.Filter) *gorm.DB {
	query := db

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR performed_by ILIKE ?",
			searchPattern, searchPattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "asset_id":
			query = query.Where("asset_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "scheduled_before":
			query = query.Where("scheduled_at < ?", value)
		case "scheduled_after":
			query = query.Where("scheduled_at > ?", value)
		}
	}

	return query
}

// Ensure GormMaintenanceRepository implements maintenance.Repository
var _ maintenance.Repository = (*GormMaintenanceRepository)(nil)
