package org

import (
	"time"

	"github.com/assettrack/backend/internal/domain/org"
	"github.com/google/uuid"
)

// CreateDepartmentRequest represents a request to create a department
type CreateDepartmentRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=100"`
	Description string     `json:"description" binding:"max=2000"`
	ManagerName string     `json:"manager_name" binding:"max=100"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// UpdateDepartmentRequest represents a request to update a department
type UpdateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
	ManagerName string `json:"manager_name" binding:"max=100"`
}

// DepartmentResponse represents a department in API responses
type DepartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ManagerName string    `json:"manager_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// CreateSiteRequest represents a request to create a site
type CreateSiteRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=100"`
	Address     string     `json:"address" binding:"max=2000"`
	City        string     `json:"city" binding:"max=100"`
	Country     string     `json:"country" binding:"max=100"`
	ContactName string     `json:"contact_name" binding:"max=100"`
	Phone       string     `json:"phone" binding:"max=30"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// UpdateSiteRequest represents a request to update a site
type UpdateSiteRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Address     string `json:"address" binding:"max=2000"`
	City        string `json:"city" binding:"max=100"`
	Country     string `json:"country" binding:"max=100"`
	ContactName string `json:"contact_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=30"`
}

// SiteResponse represents a site in API responses
type SiteResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// ListFilter represents common filter options for org listings
type ListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CompanyInfoRequest represents the create/update payload for the company profile
type CompanyInfoRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	LegalName  string `json:"legal_name" binding:"max=150"`
	TaxID      string `json:"tax_id" binding:"max=50"`
	Address    string `json:"address" binding:"max=2000"`
	City       string `json:"city" binding:"max=100"`
	Country    string `json:"country" binding:"max=100"`
	Phone      string `json:"phone" binding:"max=30"`
	Email      string `json:"email" binding:"omitempty,email,max=150"`
	Website    string `json:"website" binding:"max=200"`
	FiscalYear string `json:"fiscal_year" binding:"max=20"`
}

// CompanyInfoResponse represents the company profile in API responses
type CompanyInfoResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	LegalName  string    `json:"legal_name"`
	TaxID      string    `json:"tax_id"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Website    string    `json:"website"`
	LogoKey    string    `json:"logo_key"`
	FiscalYear string    `json:"fiscal_year"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Version    int       `json:"version"`
}

// ToDepartmentResponse converts a domain Department to DepartmentResponse
func ToDepartmentResponse(d *org.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ManagerName: d.ManagerName,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		Version:     d.Version,
	}
}

// ToSiteResponse converts a domain Site to SiteResponse
func ToSiteResponse(s *org.Site) *SiteResponse {
	return &SiteResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		City:        s.City,
		Country:     s.Country,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Version:     s.Version,
	}
}

// ToCompanyInfoResponse converts a domain CompanyInfo to CompanyInfoResponse
func ToCompanyInfoResponse(c *org.CompanyInfo) *CompanyInfoResponse {
	return &CompanyInfoResponse{
		ID:         c.ID,
		Name:       c.Name,
		LegalName:  c.LegalName,
		TaxID:      c.TaxID,
		Address:    c.Address,
		City:       c.City,
		Country:    c.Country,
		Phone:      c.Phone,
		Email:      c.Email,
		Website:    c.Website,
		LogoKey:    c.LogoKey,
		FiscalYear: c.FiscalYear,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		Version:    c.Version,
	}
}

func toProfile(req CompanyInfoRequest) org.CompanyProfile {
	return org.CompanyProfile{
		Name:       req.Name,
		LegalName:  req.LegalName,
		TaxID:      req.TaxID,
		Address:    req.Address,
		City:       req.City,
		Country:    req.Country,
		Phone:      req.Phone,
		Email:      req.Email,
		Website:    req.Website,
		FiscalYear: req.FiscalYear,
	}
}
