package maintenance

import (
	"context"
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for maintenance record persistence
type Repository interface {
	// FindByID loads a record including its part lines
	FindByID(ctx context.Context, id uuid.UUID) (*Record, error)

	FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]Record, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Record, error)
	Save(ctx context.Context, record *Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error)

	// FindDue returns scheduled records whose ScheduledAt is before the cutoff
	FindDue(ctx context.Context, cutoff time.Time) ([]Record, error)

	// HasOpenForAsset reports whether the asset has a scheduled or
	// in-progress record
	HasOpenForAsset(ctx context.Context, assetID uuid.UUID) (bool, error)
}
