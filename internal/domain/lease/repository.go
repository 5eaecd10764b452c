package lease

import (
	"context"
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for lease persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Lease, error)
	FindByAsset(ctx context.Context, assetID uuid.UUID, filter shared.Filter) ([]Lease, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Lease, error)
	Save(ctx context.Context, l *Lease) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error)

	// FindOpenByAsset returns the active or overdue lease holding the asset,
	// or shared.ErrNotFound when the asset is not leased
	FindOpenByAsset(ctx context.Context, assetID uuid.UUID) (*Lease, error)

	// FindExpiredActive returns active leases whose end date is before the cutoff
	FindExpiredActive(ctx context.Context, cutoff time.Time) ([]Lease, error)
}
