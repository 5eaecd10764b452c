package maintenance

import (
	"context"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/inventory"
	"github.com/assettrack/backend/internal/domain/maintenance"
)

// TransactionScope provides transactional access to the repositories touched
// by maintenance completion. All repository operations inside Execute share
// one database transaction and commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories scoped to
// the current transaction. Completing maintenance mutates three aggregates:
// the maintenance record, the consumed inventory items (plus their ledger
// entries), and the asset returning from under_maintenance.
type TransactionalRepositories interface {
	MaintenanceRepo() maintenance.Repository
	ItemRepo() inventory.ItemRepository
	StockTransactionRepo() inventory.TransactionRepository
	AssetRepo() asset.Repository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	maintenanceRepo maintenance.Repository
	itemRepo        inventory.ItemRepository
	stockTxRepo     inventory.TransactionRepository
	assetRepo       asset.Repository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	maintenanceRepo maintenance.Repository,
	itemRepo inventory.ItemRepository,
	stockTxRepo inventory.TransactionRepository,
	assetRepo asset.Repository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		maintenanceRepo: maintenanceRepo,
		itemRepo:        itemRepo,
		stockTxRepo:     stockTxRepo,
		assetRepo:       assetRepo,
	}
}

// Execute runs the function without transaction boundaries.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// MaintenanceRepo returns the maintenance record repository.
func (s *NoOpTransactionScope) MaintenanceRepo() maintenance.Repository {
	return s.maintenanceRepo
}

// ItemRepo returns the inventory item repository.
func (s *NoOpTransactionScope) ItemRepo() inventory.ItemRepository {
	return s.itemRepo
}

// StockTransactionRepo returns the stock ledger repository.
func (s *NoOpTransactionScope) StockTransactionRepo() inventory.TransactionRepository {
	return s.stockTxRepo
}

// AssetRepo returns the asset repository.
func (s *NoOpTransactionScope) AssetRepo() asset.Repository {
	return s.assetRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
