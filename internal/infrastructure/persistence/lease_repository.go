package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assettrack/backend/internal/domain/lease"
	"github.com/assettrack/backend/internal/domain/shared"
)

// GormLeaseRepository implements lease.Repository using GORM
type GormLeaseRepository struct {
	db *gorm.DB
}

// NewGormLeaseRepository creates a new GORM lease repository
func NewGormLeaseRepository(db *gorm.DB) *GormLeaseRepository {
	return &GormLeaseRepository{db: db}
}

// FindByID finds a lease by ID
func (r *GormLeaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*lease.Lease, error) {
	var l lease.Lease
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// FindByAsset finds leases for an asset
func (r *GormLeaseRepository) FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]lease.Lease, error) {
	var leases []lease.Lease
	query := r.applyFilter(r.db.WithContext(ctx), filter).Where("asset_id = ?", assetID)
	if err := query.Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

// FindAll finds all leases matching the filter
func (r *GormLeaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]lease.Lease, error) {
	var leases []lease.Lease
	query := r.applyFilter(r.db.WithContext(ctx), filter)
	if err := query.Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

// Save creates or updates a lease
func (r *GormLeaseRepository) Save(ctx context.Context, l *lease.Lease) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// Delete removes a lease
func (r *GormLeaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&lease.Lease{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts leases matching the filter
func (r *GormLeaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&lease.Lease{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByAsset counts leases for an asset
func (r *GormLeaseRepository) CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&lease.Lease{}).
		Where("asset_id = ?", assetID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindOpenByAsset returns the active or overdue lease holding the asset,
// or shared.ErrNotFound when the asset is not leased out
func (r *GormLeaseRepository) FindOpenByAsset(ctx context.Context, assetID uuid.UUID) (*lease.Lease, error) {
	var l lease.Lease
	err := r.db.WithContext(ctx).
		Where("asset_id = ? AND status IN ?", assetID, []lease.LeaseStatus{lease.LeaseStatusActive, lease.LeaseStatusOverdue}).
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// FindExpiredActive returns active leases whose end date is before the cutoff
func (r *GormLeaseRepository) FindExpiredActive(ctx context.Context, cutoff time.Time) ([]lease.Lease, error) {
	var leases []lease.Lease
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date < ?", lease.LeaseStatusActive, cutoff).
		Order("end_date ASC").
		Find(&leases).Error
	if err != nil {
		return nil, err
	}
	return leases, nil
}

func (r *GormLeaseRepository) applyFilter(db *gorm.DB, filter shared.Filter) *gorm.DB {
	query := r.applyFilterWithoutPagination(db, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, LeaseSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	return query
}

func (r *GormLeaseRepository) applyFilterWithoutPagination(db *gorm.DB, filter shared.Filter) *gorm.DB {
	query := db

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where(
			"lessee_name ILIKE ? OR lessee_contact ILIKE ?",
			searchPattern, searchPattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "asset_id":
			query = query.Where("asset_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "end_date_before":
			query = query.Where("end_date < ?", value)
		case "end_date_after":
			query = query.Where("end_date > ?", value)
		}
	}

	return query
}

// Ensure GormLeaseRepository implements lease.Repository
var _ lease.Repository = (*GormLeaseRepository)(nil)
