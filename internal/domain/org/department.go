package org

import (
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
)

// DepartmentStatus represents the status of a department
type DepartmentStatus string

const (
	DepartmentStatusActive   DepartmentStatus = "active"
	DepartmentStatusInactive DepartmentStatus = "inactive"
)

// Department represents an organizational unit that assets can be assigned to
type Department struct {
	shared.TrackedAggregateRoot
	Name        string           `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string           `gorm:"type:text"`
	ManagerName string           `gorm:"type:varchar(100)"`
	Status      DepartmentStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Department) TableName() string {
	return "departments"
}

// NewDepartment creates a new department
func NewDepartment(name, description, managerName string) (*Department, error) {
	if err := validateOrgName(name); err != nil {
		return nil, err
	}

	return &Department{
		TrackedAggregateRoot: shared.NewTrackedAggregateRoot(),
		Name:                 name,
		Description:          description,
		ManagerName:          managerName,
		Status:               DepartmentStatusActive,
	}, nil
}

// Update updates the department's details
func (d *Department) Update(name, description, managerName string) error {
	if err := validateOrgName(name); err != nil {
		return err
	}

	d.Name = name
	d.Description = description
	d.ManagerName = managerName
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return nil
}

// Deactivate deactivates the department
func (d *Department) Deactivate() error {
	if d.Status == DepartmentStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Department is already inactive")
	}
	d.Status = DepartmentStatusInactive
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// Activate activates the department
func (d *Department) Activate() error {
	if d.Status == DepartmentStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Department is already active")
	}
	d.Status = DepartmentStatusActive
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// IsActive returns true if the department is active
func (d *Department) IsActive() bool {
	return d.Status == DepartmentStatusActive
}

// validateOrgName validates a department or site name
func validateOrgName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}
