package org

import (
	"context"

	"github.com/assettrack/backend/internal/domain/org"
	"github.com/assettrack/backend/internal/domain/shared"
)

// CompanyService manages the single company profile
type CompanyService struct {
	companyRepo org.CompanyInfoRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo org.CompanyInfoRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// Get returns the company profile. Returns shared.ErrNotFound until a
// profile has been created.
func (s *CompanyService) Get(ctx context.Context) (*CompanyInfoResponse, error) {
	info, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	return ToCompanyInfoResponse(info), nil
}

// Create creates the company profile. Fails once one exists.
func (s *CompanyService) Create(ctx context.Context, req CompanyInfoRequest) (*CompanyInfoResponse, error) {
	exists, err := s.companyRepo.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Company profile already exists")
	}

	info, err := org.NewCompanyInfo(toProfile(req))
	if err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, info); err != nil {
		return nil, err
	}

	return ToCompanyInfoResponse(info), nil
}

// Update replaces the company profile fields
func (s *CompanyService) Update(ctx context.Context, req CompanyInfoRequest) (*CompanyInfoResponse, error) {
	info, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := info.Update(toProfile(req)); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, info); err != nil {
		return nil, err
	}

	return ToCompanyInfoResponse(info), nil
}

// SetLogo records the object storage key of the company logo
func (s *CompanyService) SetLogo(ctx context.Context, storageKey string) (*CompanyInfoResponse, error) {
	if storageKey == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}

	info, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	info.SetLogoKey(storageKey)

	if err := s.companyRepo.Save(ctx, info); err != nil {
		return nil, err
	}

	return ToCompanyInfoResponse(info), nil
}
