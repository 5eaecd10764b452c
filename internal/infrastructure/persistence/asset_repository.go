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

// GormAssetRepository implements asset.Repository using GORM
type GormAssetRepository struct {
	db *gorm.DB
}

// NewGormAssetRepository creates a new GORM asset repository
func NewGormAssetRepository(db *gorm.DB) *GormAssetRepository {
	return &GormAssetRepository{db: db}
}

// FindByID finds an asset by ID
func (r *GormAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	var a asset.Asset
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByTagID finds an asset by its tag identifier
func (r *GormAssetRepository) FindByTagID(ctx context.Context, tagID string) (*asset.Asset, error) {
	var a asset.Asset
	err := r.db.WithContext(ctx).First(&a, "tag_id = ?", tagID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindAll finds all assets matching the filter
func (r *GormAssetRepository) FindAll(ctx context.Context, filter shared.Filter) ([]asset.Asset, error) {
	var assets []asset.Asset
	query := r.applyFilter(r.db.WithContext(ctx), filter)
	if err := query.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// Save creates or updates an asset
func (r *GormAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete soft-deletes an asset
func (r *GormAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&asset.Asset{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts assets matching the filter
func (r *GormAssetRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&asset.Asset{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByTagID checks if an asset with the given tag exists
func (r *GormAssetRepository) ExistsByTagID(ctx context.Context, tagID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&asset.Asset{}).
		Where("tag_id = ?", tagID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByCategory counts non-deleted assets referencing the category
func (r *GormAssetRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return r.countWhere(ctx, "category_id = ?", categoryID)
}

// CountBySubCategory counts non-deleted assets referencing the subcategory
func (r *GormAssetRepository) CountBySubCategory(ctx context.Context, subCategoryID uuid.UUID) (int64, error) {
	return r.countWhere(ctx, "sub_category_id = ?", subCategoryID)
}

// CountByDepartment counts non-deleted assets referencing the department
func (r *GormAssetRepository) CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int64, error) {
	return r.countWhere(ctx, "department_id = ?", departmentID)
}

// CountBySite counts non-deleted assets referencing the site
func (r *GormAssetRepository) CountBySite(ctx context.Context, siteID uuid.UUID) (int64, error) {
	return r.countWhere(ctx, "site_id = ?", siteID)
}

func (r *GormAssetRepository) countWhere(ctx context.Context, query string, arg interface{}) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&asset.Asset{}).
		Where(query, arg).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies query filters including pagination
func (r *GormAssetRepository) applyFilter(db *gorm.DB, filter shared.Filter) *gorm.DB {
	query := r.applyFilterWithoutPagination(db, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, AssetSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	return query
}

// applyFilterWithoutPagination applies query filters without pagination
func (r *GormAssetRepository) applyFilterWithoutPagination(db *gorm.DB, filter shared.Filter) *gorm.DB {
	query := db

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where(
			"tag_id ILIKE ? OR name ILIKE ? OR serial_number ILIKE ? OR assigned_to ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern,
		)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "category_id":
			query = query.Where("category_id = ?", value)
		case "sub_category_id":
			query = query.Where("sub_category_id = ?", value)
		case "department_id":
			query = query.Where("department_id = ?", value)
		case "site_id":
			query = query.Where("site_id = ?", value)
		case "assigned_to":
			query = query.Where("assigned_to = ?", value)
		case "manufacturer":
			query = query.Where("manufacturer = ?", value)
		}
	}

	return query
}

// Ensure GormAssetRepository implements asset.Repository
var _ asset.Repository = (*GormAssetRepository)(nil)
