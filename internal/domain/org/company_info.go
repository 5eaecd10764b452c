package org

import (
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
)

// CompanyInfo holds the single company profile for the deployment.
// At most one row exists; creation fails once a profile is present.
type CompanyInfo struct {
	shared.BaseAggregateRoot
	Name       string `gorm:"type:varchar(150);not null"`
	LegalName  string `gorm:"type:varchar(150)"`
	TaxID      string `gorm:"type:varchar(50)"`
	Address    string `gorm:"type:text"`
	City       string `gorm:"type:varchar(100)"`
	Country    string `gorm:"type:varchar(100)"`
	Phone      string `gorm:"type:varchar(30)"`
	Email      string `gorm:"type:varchar(150)"`
	Website    string `gorm:"type:varchar(200)"`
	LogoKey    string `gorm:"type:varchar(500)"`
	FiscalYear string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (CompanyInfo) TableName() string {
	return "company_info"
}

// CompanyProfile carries the mutable fields of the company record
type CompanyProfile struct {
	Name       string
	LegalName  string
	TaxID      string
	Address    string
	City       string
	Country    string
	Phone      string
	Email      string
	Website    string
	FiscalYear string
}

// NewCompanyInfo creates the company profile
func NewCompanyInfo(profile CompanyProfile) (*CompanyInfo, error) {
	if err := validateOrgName(profile.Name); err != nil {
		return nil, err
	}

	return &CompanyInfo{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              profile.Name,
		LegalName:         profile.LegalName,
		TaxID:             profile.TaxID,
		Address:           profile.Address,
		City:              profile.City,
		Country:           profile.Country,
		Phone:             profile.Phone,
		Email:             profile.Email,
		Website:           profile.Website,
		FiscalYear:        profile.FiscalYear,
	}, nil
}

// Update replaces the company profile fields
func (c *CompanyInfo) Update(profile CompanyProfile) error {
	if err := validateOrgName(profile.Name); err != nil {
		return err
	}

	c.Name = profile.Name
	c.LegalName = profile.LegalName
	c.TaxID = profile.TaxID
	c.Address = profile.Address
	c.City = profile.City
	c.Country = profile.Country
	c.Phone = profile.Phone
	c.Email = profile.Email
	c.Website = profile.Website
	c.FiscalYear = profile.FiscalYear
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetLogoKey records the object storage key of the company logo
func (c *CompanyInfo) SetLogoKey(key string) {
	c.LogoKey = key
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
