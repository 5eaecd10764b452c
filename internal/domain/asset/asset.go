package asset

import (
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssetStatus represents the lifecycle status of an asset
type AssetStatus string

const (
	AssetStatusAvailable        AssetStatus = "available"
	AssetStatusAssigned         AssetStatus = "assigned"
	AssetStatusLeased           AssetStatus = "leased"
	AssetStatusUnderMaintenance AssetStatus = "under_maintenance"
	AssetStatusDisposed         AssetStatus = "disposed"
)

// validTransitions maps each status to the statuses it may move to.
// Disposed is terminal.
var validTransitions = map[AssetStatus][]AssetStatus{
	AssetStatusAvailable:        {AssetStatusAssigned, AssetStatusLeased, AssetStatusUnderMaintenance, AssetStatusDisposed},
	AssetStatusAssigned:         {AssetStatusAvailable, AssetStatusUnderMaintenance, AssetStatusDisposed},
	AssetStatusLeased:           {AssetStatusAvailable, AssetStatusUnderMaintenance, AssetStatusDisposed},
	AssetStatusUnderMaintenance: {AssetStatusAvailable, AssetStatusAssigned, AssetStatusLeased, AssetStatusDisposed},
	AssetStatusDisposed:         {},
}

// Asset is the central aggregate tracking a physical asset through its lifecycle
type Asset struct {
	shared.TrackedAggregateRoot
	TagID          string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_assets_tag_id,where:deleted_at IS NULL"`
	Name           string          `gorm:"type:varchar(150);not null"`
	Description    string          `gorm:"type:text"`
	SerialNumber   string          `gorm:"type:varchar(100);index"`
	Model          string          `gorm:"type:varchar(100)"`
	Manufacturer   string          `gorm:"type:varchar(100)"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	SubCategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	DepartmentID   *uuid.UUID      `gorm:"type:uuid;index"`
	SiteID         *uuid.UUID      `gorm:"type:uuid;index"`
	Status         AssetStatus     `gorm:"type:varchar(30);not null;default:'available';index"`
	PurchaseDate   *time.Time      `gorm:""`
	PurchasePrice  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	WarrantyExpiry *time.Time      `gorm:""`
	AssignedTo     string          `gorm:"type:varchar(150)"`
	Notes          string          `gorm:"type:text"`
	DisposedAt     *time.Time      `gorm:""`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for GORM
func (Asset) TableName() string {
	return "assets"
}

// AssetDetails carries the descriptive fields of an asset
type AssetDetails struct {
	Description    string
	SerialNumber   string
	Model          string
	Manufacturer   string
	PurchaseDate   *time.Time
	PurchasePrice  decimal.Decimal
	WarrantyExpiry *time.Time
	Notes          string
}

// NewAsset creates a new asset in the available status
func NewAsset(tagID, name string, categoryID uuid.UUID, details AssetDetails) (*Asset, error) {
	if err := validateTagID(tagID); err != nil {
		return nil, err
	}
	if err := validateAssetName(name); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category is required")
	}
	if details.PurchasePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}

	asset := &Asset{
		TrackedAggregateRoot: shared.NewTrackedAggregateRoot(),
		TagID:                tagID,
		Name:                 name,
		Description:          details.Description,
		SerialNumber:         details.SerialNumber,
		Model:                details.Model,
		Manufacturer:         details.Manufacturer,
		CategoryID:           categoryID,
		Status:               AssetStatusAvailable,
		PurchaseDate:         details.PurchaseDate,
		PurchasePrice:        details.PurchasePrice,
		WarrantyExpiry:       details.WarrantyExpiry,
		Notes:                details.Notes,
	}
	asset.AddDomainEvent(NewAssetCreatedEvent(asset))

	return asset, nil
}

// Update updates the asset's descriptive fields
func (a *Asset) Update(name string, details AssetDetails) error {
	if a.Status == AssetStatusDisposed {
		return shared.NewDomainError("ASSET_DISPOSED", "Disposed assets cannot be modified")
	}
	if err := validateAssetName(name); err != nil {
		return err
	}
	if details.PurchasePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}

	a.Name = name
	a.Description = details.Description
	a.SerialNumber = details.SerialNumber
	a.Model = details.Model
	a.Manufacturer = details.Manufacturer
	a.PurchaseDate = details.PurchaseDate
	a.PurchasePrice = details.PurchasePrice
	a.WarrantyExpiry = details.WarrantyExpiry
	a.Notes = details.Notes
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// Classify moves the asset to a different category and subcategory
func (a *Asset) Classify(categoryID uuid.UUID, subCategoryID *uuid.UUID) error {
	if a.Status == AssetStatusDisposed {
		return shared.NewDomainError("ASSET_DISPOSED", "Disposed assets cannot be modified")
	}
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Category is required")
	}

	a.CategoryID = categoryID
	a.SubCategoryID = subCategoryID
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// Relocate moves the asset to a different department and site
func (a *Asset) Relocate(departmentID, siteID *uuid.UUID) error {
	if a.Status == AssetStatusDisposed {
		return shared.NewDomainError("ASSET_DISPOSED", "Disposed assets cannot be modified")
	}

	a.DepartmentID = departmentID
	a.SiteID = siteID
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// canTransitionTo reports whether a status transition is allowed
func (a *Asset) canTransitionTo(target AssetStatus) bool {
	for _, allowed := range validTransitions[a.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// transitionTo performs a validated status transition and records the event
func (a *Asset) transitionTo(target AssetStatus) error {
	if !a.canTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot change asset status from "+string(a.Status)+" to "+string(target))
	}

	from := a.Status
	a.Status = target
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	a.AddDomainEvent(NewAssetStatusChangedEvent(a, from, target))

	return nil
}

// Assign assigns the asset to a person or team
func (a *Asset) Assign(assignee string) error {
	if assignee == "" {
		return shared.NewDomainError("INVALID_ASSIGNEE", "Assignee cannot be empty")
	}
	if err := a.transitionTo(AssetStatusAssigned); err != nil {
		return err
	}
	a.AssignedTo = assignee
	return nil
}

// Unassign returns the asset to the available pool
func (a *Asset) Unassign() error {
	if a.Status != AssetStatusAssigned {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Asset is not assigned")
	}
	if err := a.transitionTo(AssetStatusAvailable); err != nil {
		return err
	}
	a.AssignedTo = ""
	return nil
}

// MarkLeased marks the asset as leased out
func (a *Asset) MarkLeased() error {
	return a.transitionTo(AssetStatusLeased)
}

// MarkReturned returns a leased asset to the available pool
func (a *Asset) MarkReturned() error {
	if a.Status != AssetStatusLeased {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Asset is not leased")
	}
	return a.transitionTo(AssetStatusAvailable)
}

// StartMaintenance moves the asset into maintenance
func (a *Asset) StartMaintenance() error {
	return a.transitionTo(AssetStatusUnderMaintenance)
}

// FinishMaintenance returns the asset from maintenance to the available pool
func (a *Asset) FinishMaintenance() error {
	if a.Status != AssetStatusUnderMaintenance {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Asset is not under maintenance")
	}
	if a.AssignedTo != "" {
		return a.transitionTo(AssetStatusAssigned)
	}
	return a.transitionTo(AssetStatusAvailable)
}

// Dispose permanently retires the asset
func (a *Asset) Dispose(reason string) error {
	if err := a.transitionTo(AssetStatusDisposed); err != nil {
		return err
	}
	now := time.Now()
	a.DisposedAt = &now
	a.AssignedTo = ""
	if reason != "" {
		a.Notes = reason
	}
	a.AddDomainEvent(NewAssetDisposedEvent(a, reason))
	return nil
}

// Restore brings a disposed asset back into service. It is the only
// transition out of the disposed status.
func (a *Asset) Restore() error {
	if a.Status != AssetStatusDisposed {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Asset is not disposed")
	}

	a.Status = AssetStatusAvailable
	a.DisposedAt = nil
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	a.AddDomainEvent(NewAssetStatusChangedEvent(a, AssetStatusDisposed, AssetStatusAvailable))

	return nil
}

// UpdateTagID replaces the asset tag after a physical re-tag. Uniqueness
// of the new tag is checked at the application layer.
func (a *Asset) UpdateTagID(tagID string) error {
	if a.Status == AssetStatusDisposed {
		return shared.NewDomainError("ASSET_DISPOSED", "Disposed assets cannot be modified")
	}
	if err := validateTagID(tagID); err != nil {
		return err
	}

	a.TagID = tagID
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// IsAvailable reports whether the asset can be assigned or leased
func (a *Asset) IsAvailable() bool {
	return a.Status == AssetStatusAvailable
}

func validateTagID(tagID string) error {
	if tagID == "" {
		return shared.NewDomainError("INVALID_TAG_ID", "Tag ID cannot be empty")
	}
	if len(tagID) > 50 {
		return shared.NewDomainError("INVALID_TAG_ID", "Tag ID cannot exceed 50 characters")
	}
	for _, r := range tagID {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_TAG_ID", "Tag ID can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateAssetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 150 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 150 characters")
	}
	return nil
}
