package inventory

import (
	"context"

	"github.com/assettrack/backend/internal/domain/inventory"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service handles inventory item and stock operations. Stock only moves
// through Receive, Consume and Adjust so every movement leaves a ledger
// entry with consistent before/after quantities.
type Service struct {
	itemRepo       inventory.ItemRepository
	txRepo         inventory.TransactionRepository
	eventPublisher shared.EventPublisher
}

// NewService creates a new inventory Service
func NewService(itemRepo inventory.ItemRepository, txRepo inventory.TransactionRepository) *Service {
	return &Service{
		itemRepo: itemRepo,
		txRepo:   txRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateItem registers a new inventory item with zero stock
func (s *Service) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	exists, err := s.itemRepo.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Item with this SKU already exists")
	}

	unitCost := decimal.Zero
	if req.UnitCost != nil {
		unitCost = *req.UnitCost
	}

	item, err := inventory.NewItem(req.SKU, req.Name, req.Description, req.MinimumQuantity, unitCost)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		item.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return ToItemResponse(item), nil
}

// GetItem retrieves an item by ID
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToItemResponse(item), nil
}

// GetItemBySKU retrieves an item by its SKU
func (s *Service) GetItemBySKU(ctx context.Context, sku string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	return ToItemResponse(item), nil
}

// ListItems retrieves items matching the filter
func (s *Service) ListItems(ctx context.Context, filter ItemListFilter) ([]ItemResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
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

	items, err := s.itemRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.itemRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = *ToItemResponse(&items[i])
	}

	return responses, total, nil
}

// ListBelowMinimum retrieves active items at or below their reorder point
func (s *Service) ListBelowMinimum(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = *ToItemResponse(&items[i])
	}

	return responses, nil
}

// UpdateItem edits an item's descriptive fields
func (s *Service) UpdateItem(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unitCost := item.UnitCost
	if req.UnitCost != nil {
		unitCost = *req.UnitCost
	}

	if err := item.Update(req.Name, req.Description, req.MinimumQuantity, unitCost); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	s.publishItemEvents(ctx, item)

	return ToItemResponse(item), nil
}

// DeactivateItem takes an item out of circulation; its ledger history stays
func (s *Service) DeactivateItem(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return ToItemResponse(item), nil
}

// ActivateItem puts an inactive item back into circulation
func (s *Service) ActivateItem(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Activate(); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return ToItemResponse(item), nil
}

// ReceiveStock adds stock to an item and writes the IN ledger entry
func (s *Service) ReceiveStock(ctx context.Context, id uuid.UUID, req ReceiveStockRequest) (*TransactionResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := item.Receive(req.Quantity, req.Reason, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	if err := s.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}
	s.publishItemEvents(ctx, item)

	return ToTransactionResponse(tx), nil
}

// ConsumeStock removes stock from an item and writes the OUT ledger entry.
// Insufficient stock fails the operation without touching the item.
func (s *Service) ConsumeStock(ctx context.Context, id uuid.UUID, req ConsumeStockRequest) (*TransactionResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := item.Consume(req.Quantity, req.Reference, req.Reason, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	if err := s.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}
	s.publishItemEvents(ctx, item)

	return ToTransactionResponse(tx), nil
}

// AdjustStock corrects an item's quantity by a signed delta and writes the
// ADJUST ledger entry. A reason is mandatory.
func (s *Service) AdjustStock(ctx context.Context, id uuid.UUID, req AdjustStockRequest) (*TransactionResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := item.Adjust(req.Delta, req.Reason, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	if err := s.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}
	s.publishItemEvents(ctx, item)

	return ToTransactionResponse(tx), nil
}

// ListTransactions retrieves an item's ledger entries, newest first
func (s *Service) ListTransactions(ctx context.Context, itemID uuid.UUID, page, pageSize int) ([]TransactionResponse, int64, error) {
	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		return nil, 0, err
	}

	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	txs, err := s.txRepo.FindByItem(ctx, itemID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.txRepo.CountByItem(ctx, itemID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TransactionResponse, len(txs))
	for i := range txs {
		responses[i] = *ToTransactionResponse(&txs[i])
	}

	return responses, total, nil
}

// ListAllTransactions retrieves the full ledger across items, newest first
func (s *Service) ListAllTransactions(ctx context.Context, page, pageSize int) ([]TransactionResponse, int64, error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	txs, err := s.txRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.txRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TransactionResponse, len(txs))
	for i := range txs {
		responses[i] = *ToTransactionResponse(&txs[i])
	}

	return responses, total, nil
}

func (s *Service) publishItemEvents(ctx context.Context, item *inventory.Item) {
	if s.eventPublisher == nil {
		return
	}
	events := item.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	item.ClearDomainEvents()
}
