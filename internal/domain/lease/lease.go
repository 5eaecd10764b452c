package lease

import (
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaseStatus represents the status of a lease
type LeaseStatus string

const (
	LeaseStatusActive    LeaseStatus = "active"
	LeaseStatusReturned  LeaseStatus = "returned"
	LeaseStatusOverdue   LeaseStatus = "overdue"
	LeaseStatusCancelled LeaseStatus = "cancelled"
)

// Lease records an asset being leased out to an external party
type Lease struct {
	shared.TrackedAggregateRoot
	AssetID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	LesseeName    string          `gorm:"type:varchar(150);not null"`
	LesseeContact string          `gorm:"type:varchar(200)"`
	StartDate     time.Time       `gorm:"not null"`
	EndDate       time.Time       `gorm:"not null;index"`
	MonthlyRate   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Deposit       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status        LeaseStatus     `gorm:"type:varchar(20);not null;default:'active';index"`
	ReturnedAt    *time.Time      `gorm:""`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Lease) TableName() string {
	return "leases"
}

// Terms carries the financial terms of a lease
type Terms struct {
	StartDate   time.Time
	EndDate     time.Time
	MonthlyRate decimal.Decimal
	Deposit     decimal.Decimal
	Notes       string
}

// NewLease creates an active lease. The caller is responsible for verifying
// the asset is available and flipping it to leased in the same transaction.
func NewLease(assetID uuid.UUID, lesseeName, lesseeContact string, terms Terms) (*Lease, error) {
	if assetID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSET", "Asset is required")
	}
	if lesseeName == "" {
		return nil, shared.NewDomainError("INVALID_LESSEE", "Lessee name cannot be empty")
	}
	if len(lesseeName) > 150 {
		return nil, shared.NewDomainError("INVALID_LESSEE", "Lessee name cannot exceed 150 characters")
	}
	if terms.StartDate.IsZero() || terms.EndDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Start and end dates are required")
	}
	if !terms.EndDate.After(terms.StartDate) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "End date must be after start date")
	}
	if terms.MonthlyRate.IsNegative() || terms.Deposit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Monthly rate and deposit cannot be negative")
	}

	l := &Lease{
		TrackedAggregateRoot: shared.NewTrackedAggregateRoot(),
		AssetID:              assetID,
		LesseeName:           lesseeName,
		LesseeContact:        lesseeContact,
		StartDate:            terms.StartDate,
		EndDate:              terms.EndDate,
		MonthlyRate:          terms.MonthlyRate,
		Deposit:              terms.Deposit,
		Status:               LeaseStatusActive,
		Notes:                terms.Notes,
	}
	l.AddDomainEvent(NewLeaseCreatedEvent(l))

	return l, nil
}

// Return closes the lease; works from active or overdue
func (l *Lease) Return(notes string) error {
	if l.Status != LeaseStatusActive && l.Status != LeaseStatusOverdue {
		return shared.NewDomainError("INVALID_STATE", "Only active or overdue leases can be returned")
	}

	now := time.Now()
	l.Status = LeaseStatusReturned
	l.ReturnedAt = &now
	if notes != "" {
		l.Notes = notes
	}
	l.UpdatedAt = now
	l.IncrementVersion()
	l.AddDomainEvent(NewLeaseReturnedEvent(l))

	return nil
}

// Cancel voids an active lease before any return
func (l *Lease) Cancel(reason string) error {
	if l.Status != LeaseStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active leases can be cancelled")
	}

	l.Status = LeaseStatusCancelled
	if reason != "" {
		l.Notes = reason
	}
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	l.AddDomainEvent(NewLeaseCancelledEvent(l))

	return nil
}

// MarkOverdue flips an active lease past its end date to overdue.
// The asset stays leased until it is actually returned.
func (l *Lease) MarkOverdue(now time.Time) error {
	if l.Status != LeaseStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active leases can become overdue")
	}
	if !l.EndDate.Before(now) {
		return shared.NewDomainError("NOT_EXPIRED", "Lease end date has not passed")
	}

	l.Status = LeaseStatusOverdue
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
	l.AddDomainEvent(NewLeaseOverdueEvent(l))

	return nil
}

// ExtendTo moves the end date of an active lease forward
func (l *Lease) ExtendTo(newEndDate time.Time) error {
	if l.Status != LeaseStatusActive && l.Status != LeaseStatusOverdue {
		return shared.NewDomainError("INVALID_STATE", "Only open leases can be extended")
	}
	if !newEndDate.After(l.EndDate) {
		return shared.NewDomainError("INVALID_PERIOD", "New end date must be after the current end date")
	}

	l.EndDate = newEndDate
	if l.Status == LeaseStatusOverdue {
		l.Status = LeaseStatusActive
	}
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

// IsOpen reports whether the lease still holds the asset
func (l *Lease) IsOpen() bool {
	return l.Status == LeaseStatusActive || l.Status == LeaseStatusOverdue
}
