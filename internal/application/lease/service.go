package lease

import (
	"context"
	"errors"
	"time"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/lease"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles lease lifecycle operations
type Service struct {
	leaseRepo      lease.Repository
	assetRepo      asset.Repository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewService creates a new lease Service
func NewService(leaseRepo lease.Repository, assetRepo asset.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		leaseRepo: leaseRepo,
		assetRepo: assetRepo,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create opens a lease on an available asset and flips the asset to leased
func (s *Service) Create(ctx context.Context, req CreateLeaseRequest) (*LeaseResponse, error) {
	a, err := s.assetRepo.FindByID(ctx, req.AssetID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ASSET_NOT_FOUND", "Asset not found")
		}
		return nil, err
	}

	if !a.IsAvailable() {
		return nil, shared.NewDomainError("ASSET_NOT_AVAILABLE", "Asset is not available for lease")
	}

	l, err := lease.NewLease(req.AssetID, req.LesseeName, req.LesseeContact, toTerms(req))
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		l.SetCreatedBy(*req.CreatedBy)
	}

	if err := a.MarkLeased(); err != nil {
		return nil, err
	}

	if err := s.leaseRepo.Save(ctx, l); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, l.GetDomainEvents(), a.GetDomainEvents())
	l.ClearDomainEvents()
	a.ClearDomainEvents()

	return ToLeaseResponse(l), nil
}

// GetByID retrieves a lease by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*LeaseResponse, error) {
	l, err := s.leaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToLeaseResponse(l), nil
}

// List retrieves leases matching the filter
func (s *Service) List(ctx context.Context, filter LeaseListFilter) ([]LeaseResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.AssetID != nil {
		domainFilter.Filters["asset_id"] = *filter.AssetID
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}

	leases, err := s.leaseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.leaseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]LeaseResponse, len(leases))
	for i := range leases {
		responses[i] = *ToLeaseResponse(&leases[i])
	}

	return responses, total, nil
}

// Return closes a lease and frees the asset
func (s *Service) Return(ctx context.Context, id uuid.UUID, req ReturnLeaseRequest) (*LeaseResponse, error) {
	l, err := s.leaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := l.Return(req.Notes); err != nil {
		return nil, err
	}

	a, err := s.assetRepo.FindByID(ctx, l.AssetID)
	if err != nil {
		return nil, err
	}
	if err := a.MarkReturned(); err != nil {
		return nil, err
	}

	if err := s.leaseRepo.Save(ctx, l); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, l.GetDomainEvents(), a.GetDomainEvents())
	l.ClearDomainEvents()
	a.ClearDomainEvents()

	return ToLeaseResponse(l), nil
}

// Cancel voids an active lease and frees the asset
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, req CancelLeaseRequest) (*LeaseResponse, error) {
	l, err := s.leaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := l.Cancel(req.Reason); err != nil {
		return nil, err
	}

	a, err := s.assetRepo.FindByID(ctx, l.AssetID)
	if err != nil {
		return nil, err
	}
	if err := a.MarkReturned(); err != nil {
		return nil, err
	}

	if err := s.leaseRepo.Save(ctx, l); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, l.GetDomainEvents(), a.GetDomainEvents())
	l.ClearDomainEvents()
	a.ClearDomainEvents()

	return ToLeaseResponse(l), nil
}

// Extend moves a lease's end date forward, reactivating an overdue lease
func (s *Service) Extend(ctx context.Context, id uuid.UUID, req ExtendLeaseRequest) (*LeaseResponse, error) {
	l, err := s.leaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := l.ExtendTo(req.EndDate); err != nil {
		return nil, err
	}

	if err := s.leaseRepo.Save(ctx, l); err != nil {
		return nil, err
	}

	return ToLeaseResponse(l), nil
}

// SweepOverdue marks expired active leases as overdue. The asset stays
// leased until the lease is actually returned. Failures on individual
// leases are logged and do not stop the sweep.
func (s *Service) SweepOverdue(ctx context.Context, now time.Time) (*SweepResult, error) {
	expired, err := s.leaseRepo.FindExpiredActive(ctx, now)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Checked: len(expired)}
	for i := range expired {
		l := &expired[i]
		if err := l.MarkOverdue(now); err != nil {
			s.logger.Warn("skipping lease during overdue sweep",
				zap.String("lease_id", l.ID.String()),
				zap.Error(err))
			continue
		}
		if err := s.leaseRepo.Save(ctx, l); err != nil {
			s.logger.Error("failed to persist overdue lease",
				zap.String("lease_id", l.ID.String()),
				zap.Error(err))
			continue
		}
		s.publishEvents(ctx, l.GetDomainEvents(), nil)
		l.ClearDomainEvents()
		result.Marked++
	}

	if result.Marked > 0 {
		s.logger.Info("overdue lease sweep completed",
			zap.Int("checked", result.Checked),
			zap.Int("marked", result.Marked))
	}

	return result, nil
}

func (s *Service) publishEvents(ctx context.Context, groups ...[]shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	for _, events := range groups {
		if len(events) == 0 {
			continue
		}
		_ = s.eventPublisher.Publish(ctx, events...)
	}
}
