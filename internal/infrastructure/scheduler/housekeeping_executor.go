package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	assetapp "github.com/assettrack/backend/internal/application/asset"
	leaseapp "github.com/assettrack/backend/internal/application/lease"
	maintenanceapp "github.com/assettrack/backend/internal/application/maintenance"
)

// LeaseSweeper marks active leases past their end date as overdue
type LeaseSweeper interface {
	SweepOverdue(ctx context.Context, now time.Time) (*leaseapp.SweepResult, error)
}

// MaintenanceSweeper flags scheduled maintenance whose time has come
type MaintenanceSweeper interface {
	SweepDue(ctx context.Context, now time.Time) (*maintenanceapp.SweepResult, error)
}

// DocumentCleaner removes pending document uploads that were never confirmed
type DocumentCleaner interface {
	CleanupStalePending(ctx context.Context, olderThan time.Duration) (int, error)
}

// HousekeepingExecutor dispatches housekeeping jobs to the application
// services
type HousekeepingExecutor struct {
	leases            LeaseSweeper
	maintenance       MaintenanceSweeper
	documents         DocumentCleaner
	staleUploadMaxAge time.Duration
	logger            *zap.Logger
}

// NewHousekeepingExecutor creates an executor over the three services
func NewHousekeepingExecutor(
	leases LeaseSweeper,
	maintenance MaintenanceSweeper,
	documents DocumentCleaner,
	staleUploadMaxAge time.Duration,
	logger *zap.Logger,
) *HousekeepingExecutor {
	if staleUploadMaxAge <= 0 {
		staleUploadMaxAge = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HousekeepingExecutor{
		leases:            leases,
		maintenance:       maintenance,
		documents:         documents,
		staleUploadMaxAge: staleUploadMaxAge,
		logger:            logger,
	}
}

// Execute runs the job matching its type
func (e *HousekeepingExecutor) Execute(ctx context.Context, job *Job) error {
	switch job.Type {
	case JobTypeLeaseSweep:
		result, err := e.leases.SweepOverdue(ctx, time.Now())
		if err != nil {
			return err
		}
		e.logger.Info("Lease sweep finished",
			zap.Int("checked", result.Checked),
			zap.Int("marked_overdue", result.Marked),
		)
		return nil

	case JobTypeMaintenanceSweep:
		result, err := e.maintenance.SweepDue(ctx, time.Now())
		if err != nil {
			return err
		}
		e.logger.Info("Maintenance sweep finished",
			zap.Int("checked", result.Checked),
			zap.Int("due", result.Due),
		)
		return nil

	case JobTypeDocumentCleanup:
		removed, err := e.documents.CleanupStalePending(ctx, e.staleUploadMaxAge)
		if err != nil {
			return err
		}
		e.logger.Info("Stale upload cleanup finished",
			zap.Int("removed", removed),
			zap.Duration("max_age", e.staleUploadMaxAge),
		)
		return nil

	default:
		return ErrUnknownJobType
	}
}

// Ensure the application services satisfy the executor interfaces
var (
	_ LeaseSweeper       = (*leaseapp.Service)(nil)
	_ MaintenanceSweeper = (*maintenanceapp.Service)(nil)
	_ DocumentCleaner    = (*assetapp.DocumentService)(nil)
)

// Ensure HousekeepingExecutor implements JobExecutor
var _ JobExecutor = (*HousekeepingExecutor)(nil)
