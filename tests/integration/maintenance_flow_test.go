package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	maintapp "github.com/assettrack/backend/internal/application/maintenance"
	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/inventory"
	"github.com/assettrack/backend/internal/domain/maintenance"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/assettrack/backend/internal/infrastructure/persistence"
)

type maintenanceFixture struct {
	service   *maintapp.Service
	assetRepo *persistence.GormAssetRepository
	itemRepo  *persistence.GormInventoryItemRepository
	txRepo    *persistence.GormInventoryTransactionRepository
}

func newMaintenanceFixture(tdb *TestDB) *maintenanceFixture {
	assetRepo := persistence.NewGormAssetRepository(tdb.DB)
	itemRepo := persistence.NewGormInventoryItemRepository(tdb.DB)
	txRepo := persistence.NewGormInventoryTransactionRepository(tdb.DB)
	maintenanceRepo := persistence.NewGormMaintenanceRepository(tdb.DB)
	txScope := persistence.NewGormTransactionScope(tdb.DB)

	return &maintenanceFixture{
		service:   maintapp.NewService(maintenanceRepo, assetRepo, itemRepo, txScope, zap.NewNop()),
		assetRepo: assetRepo,
		itemRepo:  itemRepo,
		txRepo:    txRepo,
	}
}

func (f *maintenanceFixture) seedItem(t *testing.T, tdb *TestDB, sku string, quantity int) *inventory.Item {
	t.Helper()
	ctx := context.Background()

	item, err := inventory.NewItem(sku, "Air filter", "", 1, decimal.NewFromInt(25))
	require.NoError(t, err)

	tx, err := item.Receive(quantity, "initial stock", "setup")
	require.NoError(t, err)
	item.ClearDomainEvents()

	require.NoError(t, f.itemRepo.Save(ctx, item))
	require.NoError(t, f.txRepo.Save(ctx, tx))
	return item
}

func TestMaintenanceCompletion_ConsumesParts(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()
	ctx := context.Background()

	f := newMaintenanceFixture(tdb)
	categoryID := tdb.CreateTestCategory("HVAC", "HVAC Equipment")

	a := newTestAsset(t, "HVAC-0001", categoryID)
	require.NoError(t, f.assetRepo.Save(ctx, a))

	item := f.seedItem(t, tdb, "FILTER-01", 10)

	record, err := f.service.Schedule(ctx, maintapp.ScheduleRequest{
		AssetID:     a.ID,
		Title:       "Quarterly filter change",
		Type:        string(maintenance.MaintenanceTypePreventive),
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Parts: []maintapp.PartLineRequest{
			{InventoryItemID: item.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	_, err = f.service.Start(ctx, record.ID, maintapp.StartRequest{PerformedBy: "tech1"})
	require.NoError(t, err)

	// Starting maintenance pulls the asset out of circulation
	updated, err := f.assetRepo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.AssetStatusUnderMaintenance, updated.Status)

	cost := decimal.NewFromInt(150)
	completed, err := f.service.Complete(ctx, record.ID, maintapp.CompleteRequest{Cost: &cost})
	require.NoError(t, err)
	assert.Equal(t, string(maintenance.MaintenanceStatusCompleted), completed.Status)

	// Stock went down and the ledger recorded the consumption
	after, err := f.itemRepo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, after.Quantity)

	txs, err := f.txRepo.FindByItem(ctx, item.ID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, txs, 2)

	// The asset is released
	released, err := f.assetRepo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.AssetStatusAvailable, released.Status)
}

func TestMaintenanceCompletion_InsufficientStockRollsBack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()
	ctx := context.Background()

	f := newMaintenanceFixture(tdb)
	categoryID := tdb.CreateTestCategory("HVAC", "HVAC Equipment")

	a := newTestAsset(t, "HVAC-0002", categoryID)
	require.NoError(t, f.assetRepo.Save(ctx, a))

	item := f.seedItem(t, tdb, "FILTER-02", 2)

	record, err := f.service.Schedule(ctx, maintapp.ScheduleRequest{
		AssetID:     a.ID,
		Title:       "Filter change",
		Type:        string(maintenance.MaintenanceTypeCorrective),
		ScheduledAt: time.Now().Add(time.Hour),
		Parts: []maintapp.PartLineRequest{
			{InventoryItemID: item.ID, Quantity: 5},
		},
	})
	require.NoError(t, err)

	_, err = f.service.Start(ctx, record.ID, maintapp.StartRequest{PerformedBy: "tech1"})
	require.NoError(t, err)

	_, err = f.service.Complete(ctx, record.ID, maintapp.CompleteRequest{})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)

	// Nothing moved: stock, record and asset are untouched
	after, err := f.itemRepo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.Quantity)

	got, err := f.service.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, string(maintenance.MaintenanceStatusInProgress), got.Status)

	stillHeld, err := f.assetRepo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.AssetStatusUnderMaintenance, stillHeld.Status)
}
