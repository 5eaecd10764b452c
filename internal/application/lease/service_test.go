package lease

import (
	"context"
	"testing"
	"time"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/lease"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLeaseService() (*Service, *MockLeaseRepository, *MockAssetRepository) {
	leaseRepo := new(MockLeaseRepository)
	assetRepo := new(MockAssetRepository)
	svc := NewService(leaseRepo, assetRepo, zap.NewNop())
	return svc, leaseRepo, assetRepo
}

func availableAsset(t *testing.T) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset("IT-0002", "Projector", uuid.New(), asset.AssetDetails{})
	require.NoError(t, err)
	a.ClearDomainEvents()
	return a
}

func activeLease(t *testing.T, assetID uuid.UUID) *lease.Lease {
	t.Helper()
	l, err := lease.NewLease(assetID, "Acme Ltd", "ops@acme.test", lease.Terms{
		StartDate: time.Now().AddDate(0, -1, 0),
		EndDate:   time.Now().AddDate(0, 5, 0),
	})
	require.NoError(t, err)
	l.ClearDomainEvents()
	return l
}

func TestLeaseService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("leases available asset", func(t *testing.T) {
		svc, leaseRepo, assetRepo := newLeaseService()
		a := availableAsset(t)

		assetRepo.On("FindByID", ctx, a.ID).Return(a, nil)
		leaseRepo.On("Save", ctx, mock.AnythingOfType("*lease.Lease")).Return(nil)
		assetRepo.On("Save", ctx, a).Return(nil)

		resp, err := svc.Create(ctx, CreateLeaseRequest{
			AssetID:    a.ID,
			LesseeName: "Acme Ltd",
			StartDate:  time.Now(),
			EndDate:    time.Now().AddDate(0, 6, 0),
		})

		require.NoError(t, err)
		assert.Equal(t, string(lease.LeaseStatusActive), resp.Status)
		assert.Equal(t, asset.AssetStatusLeased, a.Status)
	})

	t.Run("rejects lease on unavailable asset", func(t *testing.T) {
		svc, leaseRepo, assetRepo := newLeaseService()
		a := availableAsset(t)
		require.NoError(t, a.Assign("jordan.lee"))

		assetRepo.On("FindByID", ctx, a.ID).Return(a, nil)

		_, err := svc.Create(ctx, CreateLeaseRequest{
			AssetID:    a.ID,
			LesseeName: "Acme Ltd",
			StartDate:  time.Now(),
			EndDate:    time.Now().AddDate(0, 6, 0),
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ASSET_NOT_AVAILABLE", domainErr.Code)
		leaseRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects lease on unknown asset", func(t *testing.T) {
		svc, _, assetRepo := newLeaseService()
		assetID := uuid.New()

		assetRepo.On("FindByID", ctx, assetID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, CreateLeaseRequest{
			AssetID:    assetID,
			LesseeName: "Acme Ltd",
			StartDate:  time.Now(),
			EndDate:    time.Now().AddDate(0, 6, 0),
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ASSET_NOT_FOUND", domainErr.Code)
	})

	t.Run("rejects inverted period", func(t *testing.T) {
		svc, _, assetRepo := newLeaseService()
		a := availableAsset(t)

		assetRepo.On("FindByID", ctx, a.ID).Return(a, nil)

		_, err := svc.Create(ctx, CreateLeaseRequest{
			AssetID:    a.ID,
			LesseeName: "Acme Ltd",
			StartDate:  time.Now().AddDate(0, 6, 0),
			EndDate:    time.Now(),
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PERIOD", domainErr.Code)
	})
}

func TestLeaseService_Return(t *testing.T) {
	ctx := context.Background()

	t.Run("returns lease and frees asset", func(t *testing.T) {
		svc, leaseRepo, assetRepo := newLeaseService()
		a := availableAsset(t)
		require.NoError(t, a.MarkLeased())
		a.ClearDomainEvents()
		l := activeLease(t, a.ID)

		leaseRepo.On("FindByID", ctx, l.ID).Return(l, nil)
		assetRepo.On("FindByID", ctx, a.ID).Return(a, nil)
		leaseRepo.On("Save", ctx, l).Return(nil)
		assetRepo.On("Save", ctx, a).Return(nil)

		resp, err := svc.Return(ctx, l.ID, ReturnLeaseRequest{Notes: "returned in good shape"})

		require.NoError(t, err)
		assert.Equal(t, string(lease.LeaseStatusReturned), resp.Status)
		assert.NotNil(t, resp.ReturnedAt)
		assert.Equal(t, asset.AssetStatusAvailable, a.Status)
	})

	t.Run("returns overdue lease", func(t *testing.T) {
		svc, leaseRepo, assetRepo := newLeaseService()
		a := availableAsset(t)
		require.NoError(t, a.MarkLeased())
		a.ClearDomainEvents()
		l := activeLease(t, a.ID)
		l.EndDate = time.Now().AddDate(0, 0, -1)
		require.NoError(t, l.MarkOverdue(time.Now()))
		l.ClearDomainEvents()

		leaseRepo.On("FindByID", ctx, l.ID).Return(l, nil)
		assetRepo.On("FindByID", ctx, a.ID).Return(a, nil)
		leaseRepo.On("Save", ctx, l).Return(nil)
		assetRepo.On("Save", ctx, a).Return(nil)

		resp, err := svc.Return(ctx, l.ID, ReturnLeaseRequest{})

		require.NoError(t, err)
		assert.Equal(t, string(lease.LeaseStatusReturned), resp.Status)
	})

	t.Run("rejects returning a returned lease", func(t *testing.T) {
		svc, leaseRepo, _ := newLeaseService()
		l := activeLease(t, uuid.New())
		require.NoError(t, l.Return(""))
		l.ClearDomainEvents()

		leaseRepo.On("FindByID", ctx, l.ID).Return(l, nil)

		_, err := svc.Return(ctx, l.ID, ReturnLeaseRequest{})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})
}

func TestLeaseService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels active lease and frees asset", func(t *testing.T) {
		svc, leaseRepo, assetRepo := newLeaseService()
		a := availableAsset(t)
		require.NoError(t, a.MarkLeased())
		a.ClearDomainEvents()
		l := activeLease(t, a.ID)

		leaseRepo.On("FindByID", ctx, l.ID).Return(l, nil)
		assetRepo.On("FindByID", ctx, a.ID).Return(a, nil)
		leaseRepo.On("Save", ctx, l).Return(nil)
		assetRepo.On("Save", ctx, a).Return(nil)

		resp, err := svc.Cancel(ctx, l.ID, CancelLeaseRequest{Reason: "signed in error"})

		require.NoError(t, err)
		assert.Equal(t, string(lease.LeaseStatusCancelled), resp.Status)
		assert.Equal(t, asset.AssetStatusAvailable, a.Status)
	})
}

func TestLeaseService_Extend(t *testing.T) {
	ctx := context.Background()

	t.Run("extends and reactivates an overdue lease", func(t *testing.T) {
		svc, leaseRepo, _ := newLeaseService()
		l := activeLease(t, uuid.New())
		l.EndDate = time.Now().AddDate(0, 0, -1)
		require.NoError(t, l.MarkOverdue(time.Now()))
		l.ClearDomainEvents()

		leaseRepo.On("FindByID", ctx, l.ID).Return(l, nil)
		leaseRepo.On("Save", ctx, l).Return(nil)

		newEnd := time.Now().AddDate(0, 3, 0)
		resp, err := svc.Extend(ctx, l.ID, ExtendLeaseRequest{EndDate: newEnd})

		require.NoError(t, err)
		assert.Equal(t, string(lease.LeaseStatusActive), resp.Status)
	})

	t.Run("rejects shortening the lease", func(t *testing.T) {
		svc, leaseRepo, _ := newLeaseService()
		l := activeLease(t, uuid.New())

		leaseRepo.On("FindByID", ctx, l.ID).Return(l, nil)

		_, err := svc.Extend(ctx, l.ID, ExtendLeaseRequest{EndDate: l.EndDate.AddDate(0, -1, 0)})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PERIOD", domainErr.Code)
	})
}

func TestLeaseService_SweepOverdue(t *testing.T) {
	ctx := context.Background()

	t.Run("marks expired leases overdue", func(t *testing.T) {
		svc, leaseRepo, _ := newLeaseService()
		now := time.Now()
		l := activeLease(t, uuid.New())
		l.EndDate = now.AddDate(0, 0, -2)

		leaseRepo.On("FindExpiredActive", ctx, now).Return([]lease.Lease{*l}, nil)
		leaseRepo.On("Save", ctx, mock.AnythingOfType("*lease.Lease")).Return(nil)

		result, err := svc.SweepOverdue(ctx, now)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Checked)
		assert.Equal(t, 1, result.Marked)
	})

	t.Run("continues past save failures", func(t *testing.T) {
		svc, leaseRepo, _ := newLeaseService()
		now := time.Now()
		first := activeLease(t, uuid.New())
		first.EndDate = now.AddDate(0, 0, -2)
		second := activeLease(t, uuid.New())
		second.EndDate = now.AddDate(0, 0, -3)

		leaseRepo.On("FindExpiredActive", ctx, now).Return([]lease.Lease{*first, *second}, nil)
		leaseRepo.On("Save", ctx, mock.MatchedBy(func(l *lease.Lease) bool { return l.ID == first.ID })).
			Return(assert.AnError)
		leaseRepo.On("Save", ctx, mock.MatchedBy(func(l *lease.Lease) bool { return l.ID == second.ID })).
			Return(nil)

		result, err := svc.SweepOverdue(ctx, now)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Checked)
		assert.Equal(t, 1, result.Marked)
	})

	t.Run("empty sweep is a no-op", func(t *testing.T) {
		svc, leaseRepo, _ := newLeaseService()
		now := time.Now()

		leaseRepo.On("FindExpiredActive", ctx, now).Return([]lease.Lease{}, nil)

		result, err := svc.SweepOverdue(ctx, now)

		require.NoError(t, err)
		assert.Zero(t, result.Marked)
	})
}
