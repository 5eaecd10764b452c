package catalog

import (
	"context"
	"errors"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/catalog"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SubCategoryService handles subcategory-related business operations
type SubCategoryService struct {
	categoryRepo    catalog.CategoryRepository
	subCategoryRepo catalog.SubCategoryRepository
	assetRepo       asset.Repository
}

// NewSubCategoryService creates a new SubCategoryService
func NewSubCategoryService(
	categoryRepo catalog.CategoryRepository,
	subCategoryRepo catalog.SubCategoryRepository,
	assetRepo asset.Repository,
) *SubCategoryService {
	return &SubCategoryService{
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		assetRepo:       assetRepo,
	}
}

// Create creates a new subcategory under an existing category
func (s *SubCategoryService) Create(ctx context.Context, req CreateSubCategoryRequest) (*SubCategoryResponse, error) {
	parent, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PARENT", "Parent category not found")
		}
		return nil, err
	}

	exists, err := s.subCategoryRepo.ExistsByCode(ctx, req.CategoryID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Subcategory with this code already exists in the category")
	}

	subCategory, err := catalog.NewSubCategory(parent, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := subCategory.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if req.CreatedBy != nil {
		subCategory.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.subCategoryRepo.Save(ctx, subCategory); err != nil {
		return nil, err
	}

	return ToSubCategoryResponse(subCategory), nil
}

// GetByID retrieves a subcategory by ID
func (s *SubCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*SubCategoryResponse, error) {
	subCategory, err := s.subCategoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToSubCategoryResponse(subCategory), nil
}

// ListByCategory retrieves all subcategories under a category
func (s *SubCategoryService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]SubCategoryResponse, error) {
	subCategories, err := s.subCategoryRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	responses := make([]SubCategoryResponse, len(subCategories))
	for i := range subCategories {
		responses[i] = *ToSubCategoryResponse(&subCategories[i])
	}

	return responses, nil
}

// List retrieves subcategories matching the filter
func (s *SubCategoryService) List(ctx context.Context, filter CategoryListFilter) ([]SubCategoryResponse, int64, error) {
	domainFilter := buildFilter(filter.Search, filter.Status, filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)

	subCategories, err := s.subCategoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.subCategoryRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SubCategoryResponse, len(subCategories))
	for i := range subCategories {
		responses[i] = *ToSubCategoryResponse(&subCategories[i])
	}

	return responses, total, nil
}

// Update updates an existing subcategory
func (s *SubCategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateSubCategoryRequest) (*SubCategoryResponse, error) {
	subCategory, err := s.subCategoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := subCategory.Update(req.Name, req.Description); err != nil {
		return nil, err
	}

	if err := s.subCategoryRepo.Save(ctx, subCategory); err != nil {
		return nil, err
	}

	return ToSubCategoryResponse(subCategory), nil
}

// Delete removes a subcategory not referenced by any asset
func (s *SubCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.subCategoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	assetCount, err := s.assetRepo.CountBySubCategory(ctx, id)
	if err != nil {
		return err
	}
	if assetCount > 0 {
		return shared.NewDomainError("SUBCATEGORY_IN_USE", "Subcategory is referenced by assets and cannot be deleted")
	}

	return s.subCategoryRepo.Delete(ctx, id)
}
