package org

import (
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
)

// SiteStatus represents the status of a site
type SiteStatus string

const (
	SiteStatusActive   SiteStatus = "active"
	SiteStatusInactive SiteStatus = "inactive"
)

// Site represents a physical location where assets are kept
type Site struct {
	shared.TrackedAggregateRoot
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Address     string     `gorm:"type:text"`
	City        string     `gorm:"type:varchar(100)"`
	Country     string     `gorm:"type:varchar(100)"`
	ContactName string     `gorm:"type:varchar(100)"`
	Phone       string     `gorm:"type:varchar(30)"`
	Status      SiteStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Site) TableName() string {
	return "sites"
}

// SiteDetails carries the mutable fields of a site
type SiteDetails struct {
	Address     string
	City        string
	Country     string
	ContactName string
	Phone       string
}

// NewSite creates a new site
func NewSite(name string, details SiteDetails) (*Site, error) {
	if err := validateOrgName(name); err != nil {
		return nil, err
	}

	return &Site{
		TrackedAggregateRoot: shared.NewTrackedAggregateRoot(),
		Name:                 name,
		Address:              details.Address,
		City:                 details.City,
		Country:              details.Country,
		ContactName:          details.ContactName,
		Phone:                details.Phone,
		Status:               SiteStatusActive,
	}, nil
}

// Update updates the site's details
func (s *Site) Update(name string, details SiteDetails) error {
	if err := validateOrgName(name); err != nil {
		return err
	}

	s.Name = name
	s.Address = details.Address
	s.City = details.City
	s.Country = details.Country
	s.ContactName = details.ContactName
	s.Phone = details.Phone
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Deactivate deactivates the site
func (s *Site) Deactivate() error {
	if s.Status == SiteStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Site is already inactive")
	}
	s.Status = SiteStatusInactive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Activate activates the site
func (s *Site) Activate() error {
	if s.Status == SiteStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Site is already active")
	}
	s.Status = SiteStatusActive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// IsActive returns true if the site is active
func (s *Site) IsActive() bool {
	return s.Status == SiteStatusActive
}
