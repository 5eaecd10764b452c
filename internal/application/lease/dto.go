package lease

import (
	"time"

	"github.com/assettrack/backend/internal/domain/lease"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateLeaseRequest opens a lease on an available asset
type CreateLeaseRequest struct {
	AssetID       uuid.UUID        `json:"asset_id" binding:"required"`
	LesseeName    string           `json:"lessee_name" binding:"required,min=1,max=150"`
	LesseeContact string           `json:"lessee_contact" binding:"max=200"`
	StartDate     time.Time        `json:"start_date" binding:"required"`
	EndDate       time.Time        `json:"end_date" binding:"required"`
	MonthlyRate   *decimal.Decimal `json:"monthly_rate"`
	Deposit       *decimal.Decimal `json:"deposit"`
	Notes         string           `json:"notes" binding:"max=4000"`
	CreatedBy     *uuid.UUID       `json:"-"`
}

// ReturnLeaseRequest closes a lease and frees the asset
type ReturnLeaseRequest struct {
	Notes string `json:"notes" binding:"max=4000"`
}

// CancelLeaseRequest voids an active lease
type CancelLeaseRequest struct {
	Reason string `json:"reason" binding:"max=2000"`
}

// ExtendLeaseRequest moves a lease's end date forward
type ExtendLeaseRequest struct {
	EndDate time.Time `json:"end_date" binding:"required"`
}

// LeaseResponse represents a lease in API responses
type LeaseResponse struct {
	ID            uuid.UUID       `json:"id"`
	AssetID       uuid.UUID       `json:"asset_id"`
	LesseeName    string          `json:"lessee_name"`
	LesseeContact string          `json:"lessee_contact"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	MonthlyRate   decimal.Decimal `json:"monthly_rate"`
	Deposit       decimal.Decimal `json:"deposit"`
	Status        string          `json:"status"`
	ReturnedAt    *time.Time      `json:"returned_at"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// LeaseListFilter represents filter options for lease listing
type LeaseListFilter struct {
	Search   string     `form:"search"`
	Status   string     `form:"status" binding:"omitempty,oneof=active returned overdue cancelled"`
	AssetID  *uuid.UUID `form:"asset_id"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SweepResult reports the outcome of an overdue sweep
type SweepResult struct {
	Checked int `json:"checked"`
	Marked  int `json:"marked"`
}

// ToLeaseResponse converts a domain Lease to LeaseResponse
func ToLeaseResponse(l *lease.Lease) *LeaseResponse {
	return &LeaseResponse{
		ID:            l.ID,
		AssetID:       l.AssetID,
		LesseeName:    l.LesseeName,
		LesseeContact: l.LesseeContact,
		StartDate:     l.StartDate,
		EndDate:       l.EndDate,
		MonthlyRate:   l.MonthlyRate,
		Deposit:       l.Deposit,
		Status:        string(l.Status),
		ReturnedAt:    l.ReturnedAt,
		Notes:         l.Notes,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
		Version:       l.Version,
	}
}

func toTerms(req CreateLeaseRequest) lease.Terms {
	terms := lease.Terms{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	}
	if req.MonthlyRate != nil {
		terms.MonthlyRate = *req.MonthlyRate
	}
	if req.Deposit != nil {
		terms.Deposit = *req.Deposit
	}
	return terms
}
