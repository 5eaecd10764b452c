package maintenance

import (
	"context"
	"errors"
	"time"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/inventory"
	"github.com/assettrack/backend/internal/domain/maintenance"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service handles maintenance record operations. Completion consumes the
// record's spare-part lines from inventory atomically through a
// TransactionScope.
type Service struct {
	maintenanceRepo maintenance.Repository
	assetRepo       asset.Repository
	itemRepo        inventory.ItemRepository
	txScope         TransactionScope
	eventPublisher  shared.EventPublisher
	logger          *zap.Logger
}

// NewService creates a new maintenance Service
func NewService(
	maintenanceRepo maintenance.Repository,
	assetRepo asset.Repository,
	itemRepo inventory.ItemRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		maintenanceRepo: maintenanceRepo,
		assetRepo:       assetRepo,
		itemRepo:        itemRepo,
		txScope:         txScope,
		logger:          logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Schedule creates a maintenance record for an asset
func (s *Service) Schedule(ctx context.Context, req ScheduleRequest) (*RecordResponse, error) {
	if _, err := s.assetRepo.FindByID(ctx, req.AssetID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ASSET_NOT_FOUND", "Asset not found")
		}
		return nil, err
	}

	for _, line := range req.Parts {
		if _, err := s.itemRepo.FindByID(ctx, line.InventoryItemID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_ITEM", "Inventory item not found: "+line.InventoryItemID.String())
			}
			return nil, err
		}
	}

	record, err := maintenance.NewRecord(req.AssetID, req.Title, maintenance.MaintenanceType(req.Type), req.ScheduledAt, req.Description, toPartLines(req.Parts))
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		record.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.maintenanceRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, record.GetDomainEvents())
	record.ClearDomainEvents()

	return ToRecordResponse(record), nil
}

// GetByID retrieves a maintenance record by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*RecordResponse, error) {
	record, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToRecordResponse(record), nil
}

// List retrieves maintenance records matching the filter
func (s *Service) List(ctx context.Context, filter ListFilter) ([]RecordResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
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

	records, err := s.maintenanceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.maintenanceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]RecordResponse, len(records))
	for i := range records {
		responses[i] = *ToRecordResponse(&records[i])
	}

	return responses, total, nil
}

// Update edits an open maintenance record
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*RecordResponse, error) {
	record, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := record.Update(req.Title, req.Description, req.ScheduledAt); err != nil {
		return nil, err
	}

	if err := s.maintenanceRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	return ToRecordResponse(record), nil
}

// Start moves a record to in_progress and flips the asset to
// under_maintenance
func (s *Service) Start(ctx context.Context, id uuid.UUID, req StartRequest) (*RecordResponse, error) {
	record, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a, err := s.assetRepo.FindByID(ctx, record.AssetID)
	if err != nil {
		return nil, err
	}

	if err := a.StartMaintenance(); err != nil {
		return nil, err
	}
	if err := record.Start(req.PerformedBy); err != nil {
		return nil, err
	}

	if err := s.maintenanceRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	if err := s.assetRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, record.GetDomainEvents())
	s.publishEvents(ctx, a.GetDomainEvents())
	record.ClearDomainEvents()
	a.ClearDomainEvents()

	return ToRecordResponse(record), nil
}

// Complete closes an in-progress record. The part lines are consumed from
// inventory, the ledger entries written, the record closed and the asset
// released in one transaction. Insufficient stock on any line rolls the
// whole completion back.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) (*RecordResponse, error) {
	cost := decimal.Zero
	if req.Cost != nil {
		cost = *req.Cost
	}

	var (
		completed *maintenance.Record
		events    []shared.DomainEvent
	)

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		record, err := repos.MaintenanceRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := record.Complete(cost, req.Notes); err != nil {
			return err
		}

		for _, part := range record.Parts {
			item, err := repos.ItemRepo().FindByIDForUpdate(ctx, part.InventoryItemID)
			if err != nil {
				return err
			}

			stockTx, err := item.Consume(part.Quantity, record.ID.String(), "maintenance parts", record.PerformedBy)
			if err != nil {
				return err
			}

			if err := repos.ItemRepo().Save(ctx, item); err != nil {
				return err
			}
			if err := repos.StockTransactionRepo().Save(ctx, stockTx); err != nil {
				return err
			}

			events = append(events, item.GetDomainEvents()...)
			item.ClearDomainEvents()
		}

		a, err := repos.AssetRepo().FindByID(ctx, record.AssetID)
		if err != nil {
			return err
		}
		if err := a.FinishMaintenance(); err != nil {
			return err
		}

		if err := repos.MaintenanceRepo().Save(ctx, record); err != nil {
			return err
		}
		if err := repos.AssetRepo().Save(ctx, a); err != nil {
			return err
		}

		events = append(events, record.GetDomainEvents()...)
		events = append(events, a.GetDomainEvents()...)
		record.ClearDomainEvents()
		a.ClearDomainEvents()

		completed = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Events go out only after the transaction committed
	s.publishEvents(ctx, events)

	return ToRecordResponse(completed), nil
}

// Cancel closes a record as cancelled. Cancelling in-progress work releases
// the asset from under_maintenance.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, req CancelRequest) (*RecordResponse, error) {
	record, err := s.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasInProgress := record.InProgress()

	if err := record.Cancel(req.Reason); err != nil {
		return nil, err
	}

	if wasInProgress {
		a, err := s.assetRepo.FindByID(ctx, record.AssetID)
		if err != nil {
			return nil, err
		}
		if err := a.FinishMaintenance(); err != nil {
			return nil, err
		}
		if err := s.assetRepo.Save(ctx, a); err != nil {
			return nil, err
		}
		s.publishEvents(ctx, a.GetDomainEvents())
		a.ClearDomainEvents()
	}

	if err := s.maintenanceRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, record.GetDomainEvents())
	record.ClearDomainEvents()

	return ToRecordResponse(record), nil
}

// ListByAsset retrieves maintenance records for an asset
func (s *Service) ListByAsset(ctx context.Context, assetID uuid.UUID, page, pageSize int) ([]RecordResponse, int64, error) {
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

	records, err := s.maintenanceRepo.FindByAsset(ctx, assetID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.maintenanceRepo.CountByAsset(ctx, assetID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]RecordResponse, len(records))
	for i := range records {
		responses[i] = *ToRecordResponse(&records[i])
	}

	return responses, total, nil
}

// SweepDue logs scheduled maintenance whose scheduled time has passed.
// The sweep never mutates records; it surfaces overdue work for operators.
func (s *Service) SweepDue(ctx context.Context, now time.Time) (*SweepResult, error) {
	due, err := s.maintenanceRepo.FindDue(ctx, now)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Checked: len(due)}
	for i := range due {
		record := &due[i]
		if !record.IsDue(now) {
			continue
		}
		s.logger.Warn("maintenance past its scheduled time",
			zap.String("record_id", record.ID.String()),
			zap.String("asset_id", record.AssetID.String()),
			zap.String("title", record.Title),
			zap.Time("scheduled_at", record.ScheduledAt))
		result.Due++
	}

	return result, nil
}

func (s *Service) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}
