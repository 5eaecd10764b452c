package org

import (
	"context"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/org"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SiteService handles site-related business operations
type SiteService struct {
	siteRepo  org.SiteRepository
	assetRepo asset.Repository
}

// NewSiteService creates a new SiteService
func NewSiteService(siteRepo org.SiteRepository, assetRepo asset.Repository) *SiteService {
	return &SiteService{
		siteRepo:  siteRepo,
		assetRepo: assetRepo,
	}
}

// Create creates a new site
func (s *SiteService) Create(ctx context.Context, req CreateSiteRequest) (*SiteResponse, error) {
	exists, err := s.siteRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Site with this name already exists")
	}

	site, err := org.NewSite(req.Name, org.SiteDetails{
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		ContactName: req.ContactName,
		Phone:       req.Phone,
	})
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		site.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.siteRepo.Save(ctx, site); err != nil {
		return nil, err
	}

	return ToSiteResponse(site), nil
}

// GetByID retrieves a site by ID
func (s *SiteService) GetByID(ctx context.Context, id uuid.UUID) (*SiteResponse, error) {
	site, err := s.siteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToSiteResponse(site), nil
}

// List retrieves sites matching the filter
func (s *SiteService) List(ctx context.Context, filter ListFilter) ([]SiteResponse, int64, error) {
	domainFilter := buildFilter(filter)

	sites, err := s.siteRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.siteRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SiteResponse, len(sites))
	for i := range sites {
		responses[i] = *ToSiteResponse(&sites[i])
	}

	return responses, total, nil
}

// Update updates an existing site
func (s *SiteService) Update(ctx context.Context, id uuid.UUID, req UpdateSiteRequest) (*SiteResponse, error) {
	site, err := s.siteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if site.Name != req.Name {
		exists, err := s.siteRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Site with this name already exists")
		}
	}

	err = site.Update(req.Name, org.SiteDetails{
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		ContactName: req.ContactName,
		Phone:       req.Phone,
	})
	if err != nil {
		return nil, err
	}

	if err := s.siteRepo.Save(ctx, site); err != nil {
		return nil, err
	}

	return ToSiteResponse(site), nil
}

// Delete removes a site not referenced by any asset
func (s *SiteService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.siteRepo.FindByID(ctx, id); err != nil {
		return err
	}

	assetCount, err := s.assetRepo.CountBySite(ctx, id)
	if err != nil {
		return err
	}
	if assetCount > 0 {
		return shared.NewDomainError("SITE_IN_USE", "Site is referenced by assets and cannot be deleted")
	}

	return s.siteRepo.Delete(ctx, id)
}
