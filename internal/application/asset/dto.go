package asset

import (
	"time"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest represents a request to register a new asset
type CreateAssetRequest struct {
	TagID          string           `json:"tag_id" binding:"required,min=1,max=50"`
	Name           string           `json:"name" binding:"required,min=1,max=150"`
	Description    string           `json:"description" binding:"max=2000"`
	SerialNumber   string           `json:"serial_number" binding:"max=100"`
	Model          string           `json:"model" binding:"max=100"`
	Manufacturer   string           `json:"manufacturer" binding:"max=100"`
	CategoryID     uuid.UUID        `json:"category_id" binding:"required"`
	SubCategoryID  *uuid.UUID       `json:"sub_category_id"`
	DepartmentID   *uuid.UUID       `json:"department_id"`
	SiteID         *uuid.UUID       `json:"site_id"`
	PurchaseDate   *time.Time       `json:"purchase_date"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	WarrantyExpiry *time.Time       `json:"warranty_expiry"`
	Notes          string           `json:"notes" binding:"max=4000"`
	CreatedBy      *uuid.UUID       `json:"-"`
}

// UpdateAssetRequest represents a request to update an asset's details
type UpdateAssetRequest struct {
	Name           string           `json:"name" binding:"required,min=1,max=150"`
	Description    string           `json:"description" binding:"max=2000"`
	SerialNumber   string           `json:"serial_number" binding:"max=100"`
	Model          string           `json:"model" binding:"max=100"`
	Manufacturer   string           `json:"manufacturer" binding:"max=100"`
	PurchaseDate   *time.Time       `json:"purchase_date"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	WarrantyExpiry *time.Time       `json:"warranty_expiry"`
	Notes          string           `json:"notes" binding:"max=4000"`
}

// ClassifyAssetRequest moves an asset to a different category
type ClassifyAssetRequest struct {
	CategoryID    uuid.UUID  `json:"category_id" binding:"required"`
	SubCategoryID *uuid.UUID `json:"sub_category_id"`
}

// RelocateAssetRequest moves an asset to a different department/site
type RelocateAssetRequest struct {
	DepartmentID *uuid.UUID `json:"department_id"`
	SiteID       *uuid.UUID `json:"site_id"`
}

// AssignAssetRequest assigns an asset to a person or team
type AssignAssetRequest struct {
	AssignedTo string `json:"assigned_to" binding:"required,min=1,max=150"`
}

// DisposeAssetRequest retires an asset permanently
type DisposeAssetRequest struct {
	Reason string `json:"reason" binding:"max=2000"`
}

// UpdateTagIDRequest re-tags an asset
type UpdateTagIDRequest struct {
	TagID string `json:"tag_id" binding:"required,min=1,max=50"`
}

// AssetResponse represents an asset in API responses
type AssetResponse struct {
	ID             uuid.UUID       `json:"id"`
	TagID          string          `json:"tag_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	SerialNumber   string          `json:"serial_number"`
	Model          string          `json:"model"`
	Manufacturer   string          `json:"manufacturer"`
	CategoryID     uuid.UUID       `json:"category_id"`
	SubCategoryID  *uuid.UUID      `json:"sub_category_id"`
	DepartmentID   *uuid.UUID      `json:"department_id"`
	SiteID         *uuid.UUID      `json:"site_id"`
	Status         string          `json:"status"`
	PurchaseDate   *time.Time      `json:"purchase_date"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	WarrantyExpiry *time.Time      `json:"warranty_expiry"`
	AssignedTo     string          `json:"assigned_to"`
	Notes          string          `json:"notes"`
	DisposedAt     *time.Time      `json:"disposed_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// AssetListFilter represents filter options for asset listing
type AssetListFilter struct {
	Search       string     `form:"search"`
	Status       string     `form:"status" binding:"omitempty,oneof=available assigned leased under_maintenance disposed"`
	CategoryID   *uuid.UUID `form:"category_id"`
	DepartmentID *uuid.UUID `form:"department_id"`
	SiteID       *uuid.UUID `form:"site_id"`
	Page         int        `form:"page" binding:"omitempty,min=1"`
	PageSize     int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string     `form:"order_by"`
	OrderDir     string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CreateAuditRequest records a physical audit of an asset
type CreateAuditRequest struct {
	Condition    string `json:"condition" binding:"required,oneof=excellent good fair poor missing"`
	LocationNote string `json:"location_note" binding:"max=200"`
	Notes        string `json:"notes" binding:"max=4000"`
	AuditedBy    string `json:"audited_by" binding:"required,min=1,max=150"`
}

// AuditResponse represents an audit record in API responses
type AuditResponse struct {
	ID           uuid.UUID `json:"id"`
	AssetID      uuid.UUID `json:"asset_id"`
	Condition    string    `json:"condition"`
	LocationNote string    `json:"location_note"`
	Notes        string    `json:"notes"`
	AuditedBy    string    `json:"audited_by"`
	Discrepancy  bool      `json:"discrepancy"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitiateUploadRequest starts a document upload for an asset
type InitiateUploadRequest struct {
	Type        string `json:"type" binding:"required,oneof=image invoice manual other"`
	FileName    string `json:"file_name" binding:"required,min=1,max=255"`
	FileSize    int64  `json:"file_size" binding:"required,min=1"`
	ContentType string `json:"content_type" binding:"required"`
}

// InitiateUploadResponse carries the presigned upload URL
type InitiateUploadResponse struct {
	DocumentID uuid.UUID `json:"document_id"`
	UploadURL  string    `json:"upload_url"`
	StorageKey string    `json:"storage_key"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// DocumentResponse represents a document in API responses
type DocumentResponse struct {
	ID          uuid.UUID `json:"id"`
	AssetID     uuid.UUID `json:"asset_id"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	FileName    string    `json:"file_name"`
	FileSize    int64     `json:"file_size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DownloadURLResponse carries a presigned download URL
type DownloadURLResponse struct {
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ToAssetResponse converts a domain Asset to AssetResponse
func ToAssetResponse(a *asset.Asset) *AssetResponse {
	return &AssetResponse{
		ID:             a.ID,
		TagID:          a.TagID,
		Name:           a.Name,
		Description:    a.Description,
		SerialNumber:   a.SerialNumber,
		Model:          a.Model,
		Manufacturer:   a.Manufacturer,
		CategoryID:     a.CategoryID,
		SubCategoryID:  a.SubCategoryID,
		DepartmentID:   a.DepartmentID,
		SiteID:         a.SiteID,
		Status:         string(a.Status),
		PurchaseDate:   a.PurchaseDate,
		PurchasePrice:  a.PurchasePrice,
		WarrantyExpiry: a.WarrantyExpiry,
		AssignedTo:     a.AssignedTo,
		Notes:          a.Notes,
		DisposedAt:     a.DisposedAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		Version:        a.Version,
	}
}

// ToAuditResponse converts a domain AuditRecord to AuditResponse
func ToAuditResponse(r *asset.AuditRecord) *AuditResponse {
	return &AuditResponse{
		ID:           r.ID,
		AssetID:      r.AssetID,
		Condition:    string(r.Condition),
		LocationNote: r.LocationNote,
		Notes:        r.Notes,
		AuditedBy:    r.AuditedBy,
		Discrepancy:  r.DiscrepancyFlg,
		CreatedAt:    r.CreatedAt,
	}
}

// ToDocumentResponse converts a domain Document to DocumentResponse
func ToDocumentResponse(d *asset.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:          d.ID,
		AssetID:     d.AssetID,
		Type:        string(d.Type),
		Status:      string(d.Status),
		FileName:    d.FileName,
		FileSize:    d.FileSize,
		ContentType: d.ContentType,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDetails(req UpdateAssetRequest) asset.AssetDetails {
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
	return details
}
