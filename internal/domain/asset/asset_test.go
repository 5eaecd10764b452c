package asset

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAsset(t *testing.T) *Asset {
	t.Helper()
	a, err := NewAsset("IT-0001", "ThinkPad X1", uuid.New(), AssetDetails{
		SerialNumber:  "SN123456",
		Manufacturer:  "Lenovo",
		PurchasePrice: decimal.NewFromFloat(1499.99),
	})
	require.NoError(t, err)
	return a
}

func TestNewAsset(t *testing.T) {
	t.Run("creates asset in available status", func(t *testing.T) {
		a := newTestAsset(t)

		assert.Equal(t, "IT-0001", a.TagID)
		assert.Equal(t, "ThinkPad X1", a.Name)
		assert.Equal(t, AssetStatusAvailable, a.Status)
		assert.True(t, a.IsAvailable())
		assert.True(t, decimal.NewFromFloat(1499.99).Equal(a.PurchasePrice))
	})

	t.Run("publishes AssetCreated event", func(t *testing.T) {
		a := newTestAsset(t)

		events := a.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeAssetCreated, events[0].EventType())
	})

	t.Run("fails with empty tag ID", func(t *testing.T) {
		_, err := NewAsset("", "ThinkPad", uuid.New(), AssetDetails{})
		require.Error(t, err)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewAsset("IT-0001", "", uuid.New(), AssetDetails{})
		require.Error(t, err)
	})

	t.Run("fails with nil category", func(t *testing.T) {
		_, err := NewAsset("IT-0001", "ThinkPad", uuid.Nil, AssetDetails{})
		require.Error(t, err)
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewAsset("IT-0001", "ThinkPad", uuid.New(), AssetDetails{
			PurchasePrice: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
	})
}

func TestAssetAssignment(t *testing.T) {
	t.Run("assign and unassign", func(t *testing.T) {
		a := newTestAsset(t)

		require.NoError(t, a.Assign("alice@corp.example"))
		assert.Equal(t, AssetStatusAssigned, a.Status)
		assert.Equal(t, "alice@corp.example", a.AssignedTo)

		require.NoError(t, a.Unassign())
		assert.Equal(t, AssetStatusAvailable, a.Status)
		assert.Empty(t, a.AssignedTo)
	})

	t.Run("fails with empty assignee", func(t *testing.T) {
		a := newTestAsset(t)
		require.Error(t, a.Assign(""))
	})

	t.Run("cannot assign already assigned asset", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.Assign("alice"))
		require.Error(t, a.Assign("bob"))
	})

	t.Run("cannot unassign available asset", func(t *testing.T) {
		a := newTestAsset(t)
		require.Error(t, a.Unassign())
	})

	t.Run("publishes status changed event", func(t *testing.T) {
		a := newTestAsset(t)
		a.ClearDomainEvents()

		require.NoError(t, a.Assign("alice"))

		events := a.GetDomainEvents()
		require.Len(t, events, 1)
		evt, ok := events[0].(*AssetStatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, AssetStatusAvailable, evt.FromStatus)
		assert.Equal(t, AssetStatusAssigned, evt.ToStatus)
	})
}

func TestAssetLeasing(t *testing.T) {
	t.Run("lease and return", func(t *testing.T) {
		a := newTestAsset(t)

		require.NoError(t, a.MarkLeased())
		assert.Equal(t, AssetStatusLeased, a.Status)

		require.NoError(t, a.MarkReturned())
		assert.Equal(t, AssetStatusAvailable, a.Status)
	})

	t.Run("cannot lease assigned asset", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.Assign("alice"))
		require.Error(t, a.MarkLeased())
	})

	t.Run("cannot return non-leased asset", func(t *testing.T) {
		a := newTestAsset(t)
		require.Error(t, a.MarkReturned())
	})
}

func TestAssetMaintenance(t *testing.T) {
	t.Run("maintenance from available returns to available", func(t *testing.T) {
		a := newTestAsset(t)

		require.NoError(t, a.StartMaintenance())
		assert.Equal(t, AssetStatusUnderMaintenance, a.Status)

		require.NoError(t, a.FinishMaintenance())
		assert.Equal(t, AssetStatusAvailable, a.Status)
	})

	t.Run("maintenance from assigned returns to assigned", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.Assign("alice"))

		require.NoError(t, a.StartMaintenance())
		require.NoError(t, a.FinishMaintenance())
		assert.Equal(t, AssetStatusAssigned, a.Status)
		assert.Equal(t, "alice", a.AssignedTo)
	})

	t.Run("cannot finish maintenance when not under maintenance", func(t *testing.T) {
		a := newTestAsset(t)
		require.Error(t, a.FinishMaintenance())
	})
}

func TestAssetDisposal(t *testing.T) {
	t.Run("dispose from any non-terminal status", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.Assign("alice"))

		require.NoError(t, a.Dispose("end of life"))
		assert.Equal(t, AssetStatusDisposed, a.Status)
		assert.NotNil(t, a.DisposedAt)
		assert.Empty(t, a.AssignedTo)
	})

	t.Run("disposed is terminal", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.Dispose(""))

		require.Error(t, a.Assign("alice"))
		require.Error(t, a.MarkLeased())
		require.Error(t, a.StartMaintenance())
		require.Error(t, a.Dispose("again"))
	})

	t.Run("disposed asset rejects updates", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.Dispose(""))

		require.Error(t, a.Update("New Name", AssetDetails{}))
		require.Error(t, a.Classify(uuid.New(), nil))
		require.Error(t, a.Relocate(nil, nil))
	})

	t.Run("restore is the only way out of disposed", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.Dispose("end of life"))
		a.ClearDomainEvents()

		require.NoError(t, a.Restore())
		assert.Equal(t, AssetStatusAvailable, a.Status)
		assert.Nil(t, a.DisposedAt)

		events := a.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeAssetStatusChanged, events[0].EventType())
	})

	t.Run("restore rejects non-disposed assets", func(t *testing.T) {
		a := newTestAsset(t)
		require.Error(t, a.Restore())
	})

	t.Run("publishes disposed event", func(t *testing.T) {
		a := newTestAsset(t)
		a.ClearDomainEvents()

		require.NoError(t, a.Dispose("stolen"))

		var found bool
		for _, evt := range a.GetDomainEvents() {
			if evt.EventType() == EventTypeAssetDisposed {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestAssetUpdate(t *testing.T) {
	a := newTestAsset(t)
	v := a.Version

	require.NoError(t, a.Update("ThinkPad X1 Carbon", AssetDetails{
		Model:         "X1C-G11",
		PurchasePrice: decimal.NewFromInt(1600),
	}))

	assert.Equal(t, "ThinkPad X1 Carbon", a.Name)
	assert.Equal(t, "X1C-G11", a.Model)
	assert.Equal(t, v+1, a.Version)
}

func TestAssetUpdateTagID(t *testing.T) {
	t.Run("replaces the tag", func(t *testing.T) {
		a := newTestAsset(t)
		v := a.Version

		require.NoError(t, a.UpdateTagID("IT-0002"))
		assert.Equal(t, "IT-0002", a.TagID)
		assert.Equal(t, v+1, a.Version)
	})

	t.Run("rejects invalid tags", func(t *testing.T) {
		a := newTestAsset(t)
		require.Error(t, a.UpdateTagID(""))
		require.Error(t, a.UpdateTagID("bad tag with spaces"))
	})

	t.Run("rejects disposed assets", func(t *testing.T) {
		a := newTestAsset(t)
		require.NoError(t, a.Dispose(""))
		require.Error(t, a.UpdateTagID("IT-0002"))
	})
}

func TestAssetRelocate(t *testing.T) {
	a := newTestAsset(t)
	deptID := uuid.New()
	siteID := uuid.New()

	require.NoError(t, a.Relocate(&deptID, &siteID))
	require.NotNil(t, a.DepartmentID)
	require.NotNil(t, a.SiteID)
	assert.Equal(t, deptID, *a.DepartmentID)
	assert.Equal(t, siteID, *a.SiteID)
}
