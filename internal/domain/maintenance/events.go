package maintenance

import (
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeMaintenanceRecord = "MaintenanceRecord"

// Event type constants
const (
	EventTypeMaintenanceScheduled = "MaintenanceScheduled"
	EventTypeMaintenanceStarted   = "MaintenanceStarted"
	EventTypeMaintenanceCompleted = "MaintenanceCompleted"
	EventTypeMaintenanceCancelled = "MaintenanceCancelled"
)

// MaintenanceScheduledEvent is published when maintenance work is scheduled
type MaintenanceScheduledEvent struct {
	shared.BaseDomainEvent
	RecordID uuid.UUID       `json:"record_id"`
	AssetID  uuid.UUID       `json:"asset_id"`
	Type     MaintenanceType `json:"type"`
}

// NewMaintenanceScheduledEvent creates a new MaintenanceScheduledEvent
func NewMaintenanceScheduledEvent(r *Record) *MaintenanceScheduledEvent {
	return &MaintenanceScheduledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaintenanceScheduled, AggregateTypeMaintenanceRecord, r.ID),
		RecordID:        r.ID,
		AssetID:         r.AssetID,
		Type:            r.Type,
	}
}

// MaintenanceStartedEvent is published when work begins
type MaintenanceStartedEvent struct {
	shared.BaseDomainEvent
	RecordID    uuid.UUID `json:"record_id"`
	AssetID     uuid.UUID `json:"asset_id"`
	PerformedBy string    `json:"performed_by"`
}

// NewMaintenanceStartedEvent creates a new MaintenanceStartedEvent
func NewMaintenanceStartedEvent(r *Record) *MaintenanceStartedEvent {
	return &MaintenanceStartedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaintenanceStarted, AggregateTypeMaintenanceRecord, r.ID),
		RecordID:        r.ID,
		AssetID:         r.AssetID,
		PerformedBy:     r.PerformedBy,
	}
}

// MaintenanceCompletedEvent is published when work is completed
type MaintenanceCompletedEvent struct {
	shared.BaseDomainEvent
	RecordID  uuid.UUID `json:"record_id"`
	AssetID   uuid.UUID `json:"asset_id"`
	Cost      string    `json:"cost"`
	PartCount int       `json:"part_count"`
}

// NewMaintenanceCompletedEvent creates a new MaintenanceCompletedEvent
func NewMaintenanceCompletedEvent(r *Record) *MaintenanceCompletedEvent {
	return &MaintenanceCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaintenanceCompleted, AggregateTypeMaintenanceRecord, r.ID),
		RecordID:        r.ID,
		AssetID:         r.AssetID,
		Cost:            r.Cost.String(),
		PartCount:       len(r.Parts),
	}
}

// MaintenanceCancelledEvent is published when a record is cancelled
type MaintenanceCancelledEvent struct {
	shared.BaseDomainEvent
	RecordID      uuid.UUID `json:"record_id"`
	AssetID       uuid.UUID `json:"asset_id"`
	WasInProgress bool      `json:"was_in_progress"`
}

// NewMaintenanceCancelledEvent creates a new MaintenanceCancelledEvent
func NewMaintenanceCancelledEvent(r *Record, wasInProgress bool) *MaintenanceCancelledEvent {
	return &MaintenanceCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaintenanceCancelled, AggregateTypeMaintenanceRecord, r.ID),
		RecordID:        r.ID,
		AssetID:         r.AssetID,
		WasInProgress:   wasInProgress,
	}
}
