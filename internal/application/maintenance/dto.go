package maintenance

import (
	"time"

	"github.com/assettrack/backend/internal/domain/maintenance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartLineRequest is one spare-part line when scheduling maintenance
type PartLineRequest struct {
	InventoryItemID uuid.UUID `json:"inventory_item_id" binding:"required"`
	Quantity        int       `json:"quantity" binding:"required,min=1"`
}

// ScheduleRequest schedules maintenance work for an asset
type ScheduleRequest struct {
	AssetID     uuid.UUID         `json:"asset_id" binding:"required"`
	Title       string            `json:"title" binding:"required,min=1,max=150"`
	Description string            `json:"description" binding:"max=4000"`
	Type        string            `json:"type" binding:"required,oneof=preventive corrective inspection"`
	ScheduledAt time.Time         `json:"scheduled_at" binding:"required"`
	Parts       []PartLineRequest `json:"parts" binding:"omitempty,dive"`
	CreatedBy   *uuid.UUID        `json:"-"`
}

// UpdateRequest edits an open maintenance record
type UpdateRequest struct {
	Title       string    `json:"title" binding:"required,min=1,max=150"`
	Description string    `json:"description" binding:"max=4000"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// StartRequest moves a record to in_progress
type StartRequest struct {
	PerformedBy string `json:"performed_by" binding:"required,min=1,max=150"`
}

// CompleteRequest closes a record as completed, consuming its part lines
type CompleteRequest struct {
	Cost  *decimal.Decimal `json:"cost"`
	Notes string           `json:"notes" binding:"max=4000"`
}

// CancelRequest closes a record as cancelled
type CancelRequest struct {
	Reason string `json:"reason" binding:"max=2000"`
}

// PartLineResponse represents a part line in API responses
type PartLineResponse struct {
	InventoryItemID uuid.UUID `json:"inventory_item_id"`
	Quantity        int       `json:"quantity"`
}

// RecordResponse represents a maintenance record in API responses
type RecordResponse struct {
	ID          uuid.UUID          `json:"id"`
	AssetID     uuid.UUID          `json:"asset_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Type        string             `json:"type"`
	Status      string             `json:"status"`
	ScheduledAt time.Time          `json:"scheduled_at"`
	StartedAt   *time.Time         `json:"started_at"`
	CompletedAt *time.Time         `json:"completed_at"`
	Cost        decimal.Decimal    `json:"cost"`
	PerformedBy string             `json:"performed_by"`
	Notes       string             `json:"notes"`
	Parts       []PartLineResponse `json:"parts"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Version     int                `json:"version"`
}

// ListFilter represents filter options for maintenance listing
type ListFilter struct {
	Search   string     `form:"search"`
	Status   string     `form:"status" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Type     string     `form:"type" binding:"omitempty,oneof=preventive corrective inspection"`
	AssetID  *uuid.UUID `form:"asset_id"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SweepResult reports the outcome of a due-maintenance sweep
type SweepResult struct {
	Checked int `json:"checked"`
	Due     int `json:"due"`
}

// ToRecordResponse converts a domain Record to RecordResponse
func ToRecordResponse(r *maintenance.Record) *RecordResponse {
	parts := make([]PartLineResponse, len(r.Parts))
	for i, p := range r.Parts {
		parts[i] = PartLineResponse{
			InventoryItemID: p.InventoryItemID,
			Quantity:        p.Quantity,
		}
	}

	return &RecordResponse{
		ID:          r.ID,
		AssetID:     r.AssetID,
		Title:       r.Title,
		Description: r.Description,
		Type:        string(r.Type),
		Status:      string(r.Status),
		ScheduledAt: r.ScheduledAt,
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
		Cost:        r.Cost,
		PerformedBy: r.PerformedBy,
		Notes:       r.Notes,
		Parts:       parts,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Version:     r.Version,
	}
}

func toPartLines(parts []PartLineRequest) []maintenance.PartLine {
	lines := make([]maintenance.PartLine, len(parts))
	for i, p := range parts {
		lines[i] = maintenance.PartLine{
			InventoryItemID: p.InventoryItemID,
			Quantity:        p.Quantity,
		}
	}
	return lines
}
