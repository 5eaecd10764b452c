package asset

import (
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AuditCondition grades the physical condition found during an audit
type AuditCondition string

const (
	AuditConditionExcellent AuditCondition = "excellent"
	AuditConditionGood      AuditCondition = "good"
	AuditConditionFair      AuditCondition = "fair"
	AuditConditionPoor      AuditCondition = "poor"
	AuditConditionMissing   AuditCondition = "missing"
)

var auditConditions = map[AuditCondition]bool{
	AuditConditionExcellent: true,
	AuditConditionGood:      true,
	AuditConditionFair:      true,
	AuditConditionPoor:      true,
	AuditConditionMissing:   true,
}

// AuditRecord is an immutable record of a physical verification of an asset.
// Records are append-only; there is no update or delete path.
type AuditRecord struct {
	shared.BaseAggregateRoot
	AssetID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Condition      AuditCondition `gorm:"type:varchar(20);not null"`
	LocationNote   string         `gorm:"type:varchar(200)"`
	Notes          string         `gorm:"type:text"`
	AuditedBy      string         `gorm:"type:varchar(150);not null"`
	DiscrepancyFlg bool           `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (AuditRecord) TableName() string {
	return "asset_audit_records"
}

// NewAuditRecord records an audit of an asset
func NewAuditRecord(assetID uuid.UUID, condition AuditCondition, auditedBy, locationNote, notes string) (*AuditRecord, error) {
	if assetID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSET", "Asset is required")
	}
	if !auditConditions[condition] {
		return nil, shared.NewDomainError("INVALID_CONDITION", "Unknown audit condition: "+string(condition))
	}
	if auditedBy == "" {
		return nil, shared.NewDomainError("INVALID_AUDITOR", "Auditor name cannot be empty")
	}

	record := &AuditRecord{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AssetID:           assetID,
		Condition:         condition,
		LocationNote:      locationNote,
		Notes:             notes,
		AuditedBy:         auditedBy,
		DiscrepancyFlg:    condition == AuditConditionPoor || condition == AuditConditionMissing,
	}
	record.AddDomainEvent(NewAssetAuditedEvent(record))

	return record, nil
}
