package catalog

import (
	"strings"
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SubCategory represents a second-level classification under a category
type SubCategory struct {
	shared.TrackedAggregateRoot
	CategoryID  uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_subcategory_category_code,priority:1"`
	Code        string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_subcategory_category_code,priority:2"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	Status      CategoryStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (SubCategory) TableName() string {
	return "sub_categories"
}

// NewSubCategory creates a new subcategory under an active parent category
func NewSubCategory(parent *Category, code, name string) (*SubCategory, error) {
	if parent == nil {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent category is required")
	}
	if !parent.IsActive() {
		return nil, shared.NewDomainError("INVALID_PARENT", "Parent category is not active")
	}
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &SubCategory{
		TrackedAggregateRoot: shared.NewTrackedAggregateRoot(),
		CategoryID:           parent.ID,
		Code:                 strings.ToUpper(code),
		Name:                 name,
		Status:               CategoryStatusActive,
	}, nil
}

// Update updates the subcategory's basic information
func (s *SubCategory) Update(name, description string) error {
	if err := validateName(name); err != nil {
		return err
	}

	s.Name = name
	s.Description = description
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Activate activates the subcategory
func (s *SubCategory) Activate() error {
	if s.Status == CategoryStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Subcategory is already active")
	}
	s.Status = CategoryStatusActive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Deactivate deactivates the subcategory
func (s *SubCategory) Deactivate() error {
	if s.Status == CategoryStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Subcategory is already inactive")
	}
	s.Status = CategoryStatusInactive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
