package org

import (
	"context"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DepartmentRepository defines the interface for department persistence
type DepartmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	FindByName(ctx context.Context, name string) (*Department, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Department, error)
	Save(ctx context.Context, department *Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// SiteRepository defines the interface for site persistence
type SiteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Site, error)
	FindByName(ctx context.Context, name string) (*Site, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Site, error)
	Save(ctx context.Context, site *Site) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// CompanyInfoRepository defines the interface for the single company profile
type CompanyInfoRepository interface {
	// Get returns the company profile, or shared.ErrNotFound when none exists
	Get(ctx context.Context) (*CompanyInfo, error)

	// Exists reports whether a company profile has been created
	Exists(ctx context.Context) (bool, error)

	// Save creates or updates the company profile
	Save(ctx context.Context, info *CompanyInfo) error
}
