package asset

import (
	"context"
	"errors"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/catalog"
	"github.com/assettrack/backend/internal/domain/lease"
	"github.com/assettrack/backend/internal/domain/org"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AssetService handles asset lifecycle operations
type AssetService struct {
	assetRepo       asset.Repository
	categoryRepo    catalog.CategoryRepository
	subCategoryRepo catalog.SubCategoryRepository
	departmentRepo  org.DepartmentRepository
	siteRepo        org.SiteRepository
	leaseRepo       lease.Repository
	eventPublisher  shared.EventPublisher
}

// NewAssetService creates a new AssetService
func NewAssetService(
	assetRepo asset.Repository,
	categoryRepo catalog.CategoryRepository,
	subCategoryRepo catalog.SubCategoryRepository,
	departmentRepo org.DepartmentRepository,
	siteRepo org.SiteRepository,
	leaseRepo lease.Repository,
) *AssetService {
	return &AssetService{
		assetRepo:       assetRepo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		departmentRepo:  departmentRepo,
		siteRepo:        siteRepo,
		leaseRepo:       leaseRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *AssetService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new asset
func (s *AssetService) Create(ctx context.Context, req CreateAssetRequest) (*AssetResponse, error) {
	exists, err := s.assetRepo.ExistsByTagID(ctx, req.TagID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Asset with this tag ID already exists")
	}

	if err := s.validateClassification(ctx, req.CategoryID, req.SubCategoryID); err != nil {
		return nil, err
	}
	if err := s.validateLocation(ctx, req.DepartmentID, req.SiteID); err != nil {
		return nil, err
	}

	details := asset.AssetDetails{
		Description:    req.Description,
		SerialNumber:   req.SerialNumber,
		Model:          req.Model,
		Manufacturer:   req.Manufacturer,
		PurchaseDate:   req.PurchaseDate,
		WarrantyExpiry: req.WarrantyExpiry,
		Notes:          req.Notes,
	}
	if req.PurchasePrice != nil {
		details.PurchasePrice = *req.PurchasePrice
	}

	a, err := asset.NewAsset(req.TagID, req.Name, req.CategoryID, details)
	if err != nil {
		return nil, err
	}

	a.SubCategoryID = req.SubCategoryID
	a.DepartmentID = req.DepartmentID
	a.SiteID = req.SiteID
	if req.CreatedBy != nil {
		a.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, a)

	return ToAssetResponse(a), nil
}

// GetByID retrieves an asset by ID
func (s *AssetService) GetByID(ctx context.Context, id uuid.UUID) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToAssetResponse(a), nil
}

// GetByTagID retrieves an asset by its tag ID
func (s *AssetService) GetByTagID(ctx context.Context, tagID string) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByTagID(ctx, tagID)
	if err != nil {
		return nil, err
	}

	return ToAssetResponse(a), nil
}

// List retrieves assets matching the filter
func (s *AssetService) List(ctx context.Context, filter AssetListFilter) ([]AssetResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.DepartmentID != nil {
		domainFilter.Filters["department_id"] = *filter.DepartmentID
	}
	if filter.SiteID != nil {
		domainFilter.Filters["site_id"] = *filter.SiteID
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}

	assets, err := s.assetRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.assetRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AssetResponse, len(assets))
	for i := range assets {
		responses[i] = *ToAssetResponse(&assets[i])
	}

	return responses, total, nil
}

// Update updates an asset's descriptive fields
func (s *AssetService) Update(ctx context.Context, id uuid.UUID, req UpdateAssetRequest) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Update(req.Name, toDetails(req)); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	return ToAssetResponse(a), nil
}

// Classify moves an asset to a different category/subcategory
func (s *AssetService) Classify(ctx context.Context, id uuid.UUID, req ClassifyAssetRequest) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateClassification(ctx, req.CategoryID, req.SubCategoryID); err != nil {
		return nil, err
	}

	if err := a.Classify(req.CategoryID, req.SubCategoryID); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	return ToAssetResponse(a), nil
}

// Relocate moves an asset to a different department/site
func (s *AssetService) Relocate(ctx context.Context, id uuid.UUID, req RelocateAssetRequest) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateLocation(ctx, req.DepartmentID, req.SiteID); err != nil {
		return nil, err
	}

	if err := a.Relocate(req.DepartmentID, req.SiteID); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	return ToAssetResponse(a), nil
}

// Assign assigns an available asset to a person or team
func (s *AssetService) Assign(ctx context.Context, id uuid.UUID, req AssignAssetRequest) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Assign(req.AssignedTo); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, a)

	return ToAssetResponse(a), nil
}

// Unassign returns an assigned asset to the available pool
func (s *AssetService) Unassign(ctx context.Context, id uuid.UUID) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Unassign(); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, a)

	return ToAssetResponse(a), nil
}

// Dispose permanently retires an asset. Assets held by an open lease
// must be returned first.
func (s *AssetService) Dispose(ctx context.Context, id uuid.UUID, req DisposeAssetRequest) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.leaseRepo.FindOpenByAsset(ctx, id); err == nil {
		return nil, shared.NewDomainError("ASSET_LEASED", "Asset is held by an open lease and cannot be disposed")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := a.Dispose(req.Reason); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, a)

	return ToAssetResponse(a), nil
}

// Restore brings a disposed asset back into the available pool.
func (s *AssetService) Restore(ctx context.Context, id uuid.UUID) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Restore(); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.publishDomainEvents(ctx, a)

	return ToAssetResponse(a), nil
}

// UpdateTagID re-tags an asset, enforcing tag uniqueness.
func (s *AssetService) UpdateTagID(ctx context.Context, id uuid.UUID, req UpdateTagIDRequest) (*AssetResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.TagID == req.TagID {
		return ToAssetResponse(a), nil
	}

	exists, err := s.assetRepo.ExistsByTagID(ctx, req.TagID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Asset with this tag ID already exists")
	}

	if err := a.UpdateTagID(req.TagID); err != nil {
		return nil, err
	}

	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	return ToAssetResponse(a), nil
}

// Delete soft-deletes an asset. Only disposed assets can be deleted.
func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) error {
	a, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if a.Status != asset.AssetStatusDisposed {
		return shared.NewDomainError("INVALID_STATE", "Only disposed assets can be deleted")
	}

	return s.assetRepo.Delete(ctx, id)
}

func (s *AssetService) validateClassification(ctx context.Context, categoryID uuid.UUID, subCategoryID *uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_CATEGORY", "Category not found")
		}
		return err
	}
	if !category.IsActive() {
		return shared.NewDomainError("INVALID_CATEGORY", "Category is not active")
	}

	if subCategoryID != nil {
		subCategory, err := s.subCategoryRepo.FindByID(ctx, *subCategoryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_SUBCATEGORY", "Subcategory not found")
			}
			return err
		}
		if subCategory.CategoryID != categoryID {
			return shared.NewDomainError("INVALID_SUBCATEGORY", "Subcategory does not belong to the category")
		}
	}

	return nil
}

func (s *AssetService) validateLocation(ctx context.Context, departmentID, siteID *uuid.UUID) error {
	if departmentID != nil {
		if _, err := s.departmentRepo.FindByID(ctx, *departmentID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_DEPARTMENT", "Department not found")
			}
			return err
		}
	}
	if siteID != nil {
		if _, err := s.siteRepo.FindByID(ctx, *siteID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_SITE", "Site not found")
			}
			return err
		}
	}
	return nil
}

// publishDomainEvents publishes pending events from the asset aggregate
func (s *AssetService) publishDomainEvents(ctx context.Context, a *asset.Asset) {
	if s.eventPublisher == nil {
		return
	}
	events := a.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	a.ClearDomainEvents()
}
