package asset

import (
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeAsset         = "Asset"
	AggregateTypeAssetDocument = "AssetDocument"
)

// Event type constants
const (
	EventTypeAssetCreated       = "AssetCreated"
	EventTypeAssetStatusChanged = "AssetStatusChanged"
	EventTypeAssetDisposed      = "AssetDisposed"
	EventTypeAssetAudited       = "AssetAudited"
	EventTypeDocumentUploaded   = "AssetDocumentUploaded"
)

// AssetCreatedEvent is published when a new asset is registered
type AssetCreatedEvent struct {
	shared.BaseDomainEvent
	AssetID    uuid.UUID `json:"asset_id"`
	TagID      string    `json:"tag_id"`
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"category_id"`
}

// NewAssetCreatedEvent creates a new AssetCreatedEvent
func NewAssetCreatedEvent(a *Asset) *AssetCreatedEvent {
	return &AssetCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssetCreated, AggregateTypeAsset, a.ID),
		AssetID:         a.ID,
		TagID:           a.TagID,
		Name:            a.Name,
		CategoryID:      a.CategoryID,
	}
}

// AssetStatusChangedEvent is published on every status transition
type AssetStatusChangedEvent struct {
	shared.BaseDomainEvent
	AssetID    uuid.UUID   `json:"asset_id"`
	TagID      string      `json:"tag_id"`
	FromStatus AssetStatus `json:"from_status"`
	ToStatus   AssetStatus `json:"to_status"`
}

// NewAssetStatusChangedEvent creates a new AssetStatusChangedEvent
func NewAssetStatusChangedEvent(a *Asset, from, to AssetStatus) *AssetStatusChangedEvent {
	return &AssetStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssetStatusChanged, AggregateTypeAsset, a.ID),
		AssetID:         a.ID,
		TagID:           a.TagID,
		FromStatus:      from,
		ToStatus:        to,
	}
}

// AssetDisposedEvent is published when an asset is permanently retired
type AssetDisposedEvent struct {
	shared.BaseDomainEvent
	AssetID uuid.UUID `json:"asset_id"`
	TagID   string    `json:"tag_id"`
	Reason  string    `json:"reason"`
}

// NewAssetDisposedEvent creates a new AssetDisposedEvent
func NewAssetDisposedEvent(a *Asset, reason string) *AssetDisposedEvent {
	return &AssetDisposedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssetDisposed, AggregateTypeAsset, a.ID),
		AssetID:         a.ID,
		TagID:           a.TagID,
		Reason:          reason,
	}
}

// AssetAuditedEvent is published when an audit record is written for an asset
type AssetAuditedEvent struct {
	shared.BaseDomainEvent
	AssetID   uuid.UUID `json:"asset_id"`
	AuditID   uuid.UUID `json:"audit_id"`
	Condition string    `json:"condition"`
	AuditedBy string    `json:"audited_by"`
}

// NewAssetAuditedEvent creates a new AssetAuditedEvent
func NewAssetAuditedEvent(record *AuditRecord) *AssetAuditedEvent {
	return &AssetAuditedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAssetAudited, AggregateTypeAsset, record.AssetID),
		AssetID:         record.AssetID,
		AuditID:         record.ID,
		Condition:       string(record.Condition),
		AuditedBy:       record.AuditedBy,
	}
}

// DocumentUploadedEvent is published when a document upload is confirmed
type DocumentUploadedEvent struct {
	shared.BaseDomainEvent
	DocumentID uuid.UUID `json:"document_id"`
	AssetID    uuid.UUID `json:"asset_id"`
	FileName   string    `json:"file_name"`
}

// NewDocumentUploadedEvent creates a new DocumentUploadedEvent
func NewDocumentUploadedEvent(doc *Document) *DocumentUploadedEvent {
	return &DocumentUploadedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDocumentUploaded, AggregateTypeAssetDocument, doc.ID),
		DocumentID:      doc.ID,
		AssetID:         doc.AssetID,
		FileName:        doc.FileName,
	}
}
