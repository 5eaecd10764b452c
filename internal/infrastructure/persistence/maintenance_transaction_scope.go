package persistence

import (
	"context"

	"gorm.io/gorm"

	appmaintenance "github.com/assettrack/backend/internal/application/maintenance"
	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/inventory"
	"github.com/assettrack/backend/internal/domain/maintenance"
)

// GormTransactionScope implements appmaintenance.TransactionScope by running
// the callback inside a database transaction and handing it repositories
// bound to that transaction.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GORM transaction scope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction. Any error from fn rolls the
// transaction back; a nil return commits it.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appmaintenance.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories builds repositories on the transaction handle
// so every repository call inside the scope shares one transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) MaintenanceRepo() maintenance.Repository {
	return NewGormMaintenanceRepository(r.tx)
}

func (r *gormTransactionalRepositories) ItemRepo() inventory.ItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

func (r *gormTransactionalRepositories) StockTransactionRepo() inventory.TransactionRepository {
	return NewGormInventoryTransactionRepository(r.tx)
}

func (r *gormTransactionalRepositories) AssetRepo() asset.Repository {
	return NewGormAssetRepository(r.tx)
}

// Interface checks
var (
	_ appmaintenance.TransactionScope          = (*GormTransactionScope)(nil)
	_ appmaintenance.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
