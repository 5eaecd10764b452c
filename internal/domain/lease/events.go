package lease

import (
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeLease = "Lease"

// Event type constants
const (
	EventTypeLeaseCreated   = "LeaseCreated"
	EventTypeLeaseReturned  = "LeaseReturned"
	EventTypeLeaseCancelled = "LeaseCancelled"
	EventTypeLeaseOverdue   = "LeaseOverdue"
)

// LeaseCreatedEvent is published when an asset is leased out
type LeaseCreatedEvent struct {
	shared.BaseDomainEvent
	LeaseID    uuid.UUID `json:"lease_id"`
	AssetID    uuid.UUID `json:"asset_id"`
	LesseeName string    `json:"lessee_name"`
	EndDate    time.Time `json:"end_date"`
}

// NewLeaseCreatedEvent creates a new LeaseCreatedEvent
func NewLeaseCreatedEvent(l *Lease) *LeaseCreatedEvent {
	return &LeaseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseCreated, AggregateTypeLease, l.ID),
		LeaseID:         l.ID,
		AssetID:         l.AssetID,
		LesseeName:      l.LesseeName,
		EndDate:         l.EndDate,
	}
}

// LeaseReturnedEvent is published when a leased asset comes back
type LeaseReturnedEvent struct {
	shared.BaseDomainEvent
	LeaseID uuid.UUID `json:"lease_id"`
	AssetID uuid.UUID `json:"asset_id"`
}

// NewLeaseReturnedEvent creates a new LeaseReturnedEvent
func NewLeaseReturnedEvent(l *Lease) *LeaseReturnedEvent {
	return &LeaseReturnedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseReturned, AggregateTypeLease, l.ID),
		LeaseID:         l.ID,
		AssetID:         l.AssetID,
	}
}

// LeaseCancelledEvent is published when a lease is voided
type LeaseCancelledEvent struct {
	shared.BaseDomainEvent
	LeaseID uuid.UUID `json:"lease_id"`
	AssetID uuid.UUID `json:"asset_id"`
}

// NewLeaseCancelledEvent creates a new LeaseCancelledEvent
func NewLeaseCancelledEvent(l *Lease) *LeaseCancelledEvent {
	return &LeaseCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseCancelled, AggregateTypeLease, l.ID),
		LeaseID:         l.ID,
		AssetID:         l.AssetID,
	}
}

// LeaseOverdueEvent is published when the daily sweep flags a lease
type LeaseOverdueEvent struct {
	shared.BaseDomainEvent
	LeaseID    uuid.UUID `json:"lease_id"`
	AssetID    uuid.UUID `json:"asset_id"`
	LesseeName string    `json:"lessee_name"`
	EndDate    time.Time `json:"end_date"`
}

// NewLeaseOverdueEvent creates a new LeaseOverdueEvent
func NewLeaseOverdueEvent(l *Lease) *LeaseOverdueEvent {
	return &LeaseOverdueEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseOverdue, AggregateTypeLease, l.ID),
		LeaseID:         l.ID,
		AssetID:         l.AssetID,
		LesseeName:      l.LesseeName,
		EndDate:         l.EndDate,
	}
}
