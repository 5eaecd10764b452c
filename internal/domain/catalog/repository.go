package catalog

import (
	"context"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindByCode finds a category by its code
	FindByCode(ctx context.Context, code string) (*Category, error)

	// FindAll finds all categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts categories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByCode checks if a category with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// HasSubCategories checks if a category has any subcategories
	HasSubCategories(ctx context.Context, categoryID uuid.UUID) (bool, error)
}

// SubCategoryRepository defines the interface for subcategory persistence
type SubCategoryRepository interface {
	// FindByID finds a subcategory by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*SubCategory, error)

	// FindByCategory finds all subcategories under a category
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]SubCategory, error)

	// FindAll finds all subcategories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]SubCategory, error)

	// Save creates or updates a subcategory
	Save(ctx context.Context, subCategory *SubCategory) error

	// Delete deletes a subcategory
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts subcategories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByCode checks if a subcategory code exists within a category
	ExistsByCode(ctx context.Context, categoryID uuid.UUID, code string) (bool, error)
}
