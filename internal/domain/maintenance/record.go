package maintenance

import (
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaintenanceType classifies the work performed
type MaintenanceType string

const (
	MaintenanceTypePreventive MaintenanceType = "preventive"
	MaintenanceTypeCorrective MaintenanceType = "corrective"
	MaintenanceTypeInspection MaintenanceType = "inspection"
)

// IsValid checks if the maintenance type is valid
func (t MaintenanceType) IsValid() bool {
	switch t {
	case MaintenanceTypePreventive, MaintenanceTypeCorrective, MaintenanceTypeInspection:
		return true
	default:
		return false
	}
}

// MaintenanceStatus represents the status of a maintenance record
type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

// Part is a line of spare parts consumed by a maintenance record
type Part struct {
	shared.BaseEntity
	MaintenanceRecordID uuid.UUID `gorm:"type:uuid;not null;index"`
	InventoryItemID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity            int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Part) TableName() string {
	return "maintenance_parts"
}

// Record is a unit of maintenance work against an asset
type Record struct {
	shared.TrackedAggregateRoot
	AssetID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	Title       string            `gorm:"type:varchar(150);not null"`
	Description string            `gorm:"type:text"`
	Type        MaintenanceType   `gorm:"type:varchar(20);not null"`
	Status      MaintenanceStatus `gorm:"type:varchar(20);not null;default:'scheduled';index"`
	ScheduledAt time.Time         `gorm:"not null;index"`
	StartedAt   *time.Time        `gorm:""`
	CompletedAt *time.Time        `gorm:""`
	Cost        decimal.Decimal   `gorm:"type:decimal(15,2);not null;default:0"`
	PerformedBy string            `gorm:"type:varchar(150)"`
	Notes       string            `gorm:"type:text"`
	Parts       []Part            `gorm:"foreignKey:MaintenanceRecordID"`
}

// TableName returns the table name for GORM
func (Record) TableName() string {
	return "maintenance_records"
}

// PartLine is an input line when scheduling maintenance
type PartLine struct {
	InventoryItemID uuid.UUID
	Quantity        int
}

// NewRecord schedules maintenance work for an asset
func NewRecord(assetID uuid.UUID, title string, mType MaintenanceType, scheduledAt time.Time, description string, parts []PartLine) (*Record, error) {
	if assetID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSET", "Asset is required")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 150 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 150 characters")
	}
	if !mType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown maintenance type: "+string(mType))
	}
	if scheduledAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_SCHEDULE", "Scheduled time is required")
	}

	record := &Record{
		TrackedAggregateRoot: shared.NewTrackedAggregateRoot(),
		AssetID:              assetID,
		Title:                title,
		Description:          description,
		Type:                 mType,
		Status:               MaintenanceStatusScheduled,
		ScheduledAt:          scheduledAt,
		Cost:                 decimal.Zero,
	}

	for _, line := range parts {
		if err := record.AddPart(line.InventoryItemID, line.Quantity); err != nil {
			return nil, err
		}
	}

	record.AddDomainEvent(NewMaintenanceScheduledEvent(record))

	return record, nil
}

// AddPart adds a spare-part line; only allowed before the work is completed
func (r *Record) AddPart(inventoryItemID uuid.UUID, quantity int) error {
	if r.Status == MaintenanceStatusCompleted || r.Status == MaintenanceStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cannot modify parts of a closed maintenance record")
	}
	if inventoryItemID == uuid.Nil {
		return shared.NewDomainError("INVALID_ITEM", "Inventory item is required")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Part quantity must be positive")
	}

	for i := range r.Parts {
		if r.Parts[i].InventoryItemID == inventoryItemID {
			r.Parts[i].Quantity += quantity
			return nil
		}
	}

	r.Parts = append(r.Parts, Part{
		BaseEntity:          shared.NewBaseEntity(),
		MaintenanceRecordID: r.ID,
		InventoryItemID:     inventoryItemID,
		Quantity:            quantity,
	})

	return nil
}

// Update edits the descriptive fields; only allowed before completion
func (r *Record) Update(title, description string, scheduledAt time.Time) error {
	if r.Status == MaintenanceStatusCompleted || r.Status == MaintenanceStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cannot modify a closed maintenance record")
	}
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if scheduledAt.IsZero() {
		return shared.NewDomainError("INVALID_SCHEDULE", "Scheduled time is required")
	}

	r.Title = title
	r.Description = description
	r.ScheduledAt = scheduledAt
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// Start moves the record from scheduled to in_progress
func (r *Record) Start(performedBy string) error {
	if r.Status != MaintenanceStatusScheduled {
		return shared.NewDomainError("INVALID_STATE", "Only scheduled maintenance can be started")
	}

	now := time.Now()
	r.Status = MaintenanceStatusInProgress
	r.StartedAt = &now
	r.PerformedBy = performedBy
	r.UpdatedAt = now
	r.IncrementVersion()
	r.AddDomainEvent(NewMaintenanceStartedEvent(r))

	return nil
}

// Complete closes the record as completed. Stock consumption for the part
// lines is handled by the application layer inside the same transaction.
func (r *Record) Complete(cost decimal.Decimal, notes string) error {
	if r.Status != MaintenanceStatusInProgress {
		return shared.NewDomainError("INVALID_STATE", "Only in-progress maintenance can be completed")
	}
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Cost cannot be negative")
	}

	now := time.Now()
	r.Status = MaintenanceStatusCompleted
	r.CompletedAt = &now
	r.Cost = cost
	if notes != "" {
		r.Notes = notes
	}
	r.UpdatedAt = now
	r.IncrementVersion()
	r.AddDomainEvent(NewMaintenanceCompletedEvent(r))

	return nil
}

// Cancel closes the record as cancelled
func (r *Record) Cancel(reason string) error {
	if r.Status != MaintenanceStatusScheduled && r.Status != MaintenanceStatusInProgress {
		return shared.NewDomainError("INVALID_STATE", "Only scheduled or in-progress maintenance can be cancelled")
	}

	wasInProgress := r.Status == MaintenanceStatusInProgress
	now := time.Now()
	r.Status = MaintenanceStatusCancelled
	if reason != "" {
		r.Notes = reason
	}
	r.UpdatedAt = now
	r.IncrementVersion()
	r.AddDomainEvent(NewMaintenanceCancelledEvent(r, wasInProgress))

	return nil
}

// IsDue reports whether scheduled work has passed its scheduled time
func (r *Record) IsDue(now time.Time) bool {
	return r.Status == MaintenanceStatusScheduled && r.ScheduledAt.Before(now)
}

// InProgress reports whether the work has been started and not closed
func (r *Record) InProgress() bool {
	return r.Status == MaintenanceStatusInProgress
}
