package asset

import (
	"context"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AuditService records and lists physical asset audits. Audit records are
// append-only; there is no update or delete operation.
type AuditService struct {
	auditRepo      asset.AuditRecordRepository
	assetRepo      asset.Repository
	eventPublisher shared.EventPublisher
}

// NewAuditService creates a new AuditService
func NewAuditService(auditRepo asset.AuditRecordRepository, assetRepo asset.Repository) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		assetRepo: assetRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *AuditService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Record writes an audit record for an asset
func (s *AuditService) Record(ctx context.Context, assetID uuid.UUID, req CreateAuditRequest) (*AuditResponse, error) {
	if _, err := s.assetRepo.FindByID(ctx, assetID); err != nil {
		return nil, err
	}

	record, err := asset.NewAuditRecord(assetID, asset.AuditCondition(req.Condition), req.AuditedBy, req.LocationNote, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.auditRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, record.GetDomainEvents()...)
		record.ClearDomainEvents()
	}

	return ToAuditResponse(record), nil
}

// GetByID retrieves a single audit record
func (s *AuditService) GetByID(ctx context.Context, id uuid.UUID) (*AuditResponse, error) {
	record, err := s.auditRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToAuditResponse(record), nil
}

// ListByAsset retrieves audit records for an asset, newest first
func (s *AuditService) ListByAsset(ctx context.Context, assetID uuid.UUID, page, pageSize int) ([]AuditResponse, int64, error) {
	if _, err := s.assetRepo.FindByID(ctx, assetID); err != nil {
		return nil, 0, err
	}

	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	records, err := s.auditRepo.FindByAsset(ctx, assetID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.auditRepo.CountByAsset(ctx, assetID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AuditResponse, len(records))
	for i := range records {
		responses[i] = *ToAuditResponse(&records[i])
	}

	return responses, total, nil
}

// List retrieves audit records across all assets, newest first
func (s *AuditService) List(ctx context.Context, page, pageSize int) ([]AuditResponse, int64, error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	records, err := s.auditRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.auditRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AuditResponse, len(records))
	for i := range records {
		responses[i] = *ToAuditResponse(&records[i])
	}

	return responses, total, nil
}
