package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/assettrack/backend/internal/domain/org"
	"github.com/assettrack/backend/internal/domain/shared"
)

// GormCompanyInfoRepository implements org.CompanyInfoRepository using GORM.
// There is at most one company profile row.
type GormCompanyInfoRepository struct {
	db *gorm.DB
}

// NewGormCompanyInfoRepository creates a new GORM company info repository
func NewGormCompanyInfoRepository(db *gorm.DB) *GormCompanyInfoRepository {
	return &GormCompanyInfoRepository{db: db}
}

// Get returns the company profile, or shared.ErrNotFound when none exists
func (r *GormCompanyInfoRepository) Get(ctx context.Context) (*org.CompanyInfo, error) {
	var info org.CompanyInfo
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

// Exists reports whether a company profile has been created
func (r *GormCompanyInfoRepository) Exists(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&org.CompanyInfo{}).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates the company profile
func (r *GormCompanyInfoRepository) Save(ctx context.Context, info *org.CompanyInfo) error {
	return r.db.WithContext(ctx).Save(info).Error
}

// Ensure GormCompanyInfoRepository implements org.CompanyInfoRepository
var _ org.CompanyInfoRepository = (*GormCompanyInfoRepository)(nil)
