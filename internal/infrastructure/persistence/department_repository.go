package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assettrack/backend/internal/domain/org"
	"github.com/assettrack/backend/internal/domain/shared"
)

// GormDepartmentRepository implements org.DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GORM department repository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// FindByID finds a department by ID
func (r *GormDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*org.Department, error) {
	var dept org.Department
	err := r.db.WithContext(ctx).First(&dept, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &dept, nil
}

// FindByName finds a department by name
func (r *GormDepartmentRepository) FindByName(ctx context.Context, name string) (*org.Department, error) {
	var dept org.Department
	err := r.db.WithContext(ctx).First(&dept, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &dept, nil
}

// FindAll finds all departments matching the filter
func (r *GormDepartmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]org.Department, error) {
	var depts []org.Department
	query := r.applyFilter(r.db.WithContext(ctx), filter)
	if err := query.Find(&depts).Error; err != nil {
		return nil, err
	}
	return depts, nil
}

// Save creates or updates a department
func (r *GormDepartmentRepository) Save(ctx context.Context, dept *org.Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

// Delete removes a department
func (r *GormDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&org.Department{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts departments matching the filter
func (r *GormDepartmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&org.Department{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks if a department with the given name exists
func (r *GormDepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&org.Department{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormDepartmentRepository) applyFilter(db *gorm.DB, filter shared.Filter) *gorm.DB {
	query := r.applyFilterWithoutPagination(db, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, map[string]bool{
		"id": true, "created_at": true, "updated_at": true, "name": true,
	}, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	return query
}

func (r *GormDepartmentRepository) applyFilterWithoutPagination(db *gorm.DB, filter shared.Filter) *gorm.DB {
	query := db

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR manager_name ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

// Ensure GormDepartmentRepository implements org.DepartmentRepository
var _ org.DepartmentRepository = (*GormDepartmentRepository)(nil)
