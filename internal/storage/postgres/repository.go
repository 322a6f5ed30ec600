package postgres

import (
	"context"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"

	"github.com/google/uuid"
)

// MissionRepository owns the missions table. Every mutating method is a
// single guarded UPDATE so the row write is the linearization point for the
// claim engine; a mutation whose guard no longer holds affects zero rows and
// is classified into a typed error instead of being retried blindly.
type MissionRepository interface {
	Create(ctx context.Context, m *domain.Mission) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Mission, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Mission, error)

	ListAvailable(ctx context.Context, filter domain.AvailableFilter) ([]*domain.Mission, error)
	ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*domain.Mission, error)
	ListByStatus(ctx context.Context, status *domain.MissionStatus) ([]*domain.Mission, error)
	ListStale(ctx context.Context, olderThan time.Time) ([]*domain.Mission, error)
	CountAvailable(ctx context.Context) (int64, error)

	// StatsByCourier aggregates delivered-mission totals for one courier;
	// earnings are summed only over missions completed at or after
	// earningsSince.
	StatsByCourier(ctx context.Context, courierID uuid.UUID, earningsSince time.Time) (*domain.CourierStats, error)

	// Claim performs the atomic ownership transfer: AVAILABLE + no courier
	// -> CLAIMED + courierID. Exactly one of N concurrent calls wins.
	Claim(ctx context.Context, id, courierID uuid.UUID, meta map[string]any) (*domain.Mission, error)

	// Release returns a CLAIMED/PICKED_UP mission to the pool. When forced
	// is false the caller must be the current owner.
	Release(ctx context.Context, id, courierID uuid.UUID, forced bool, meta map[string]any) (*domain.Mission, error)

	// Transition moves status from -> to, applying the patch in the same
	// statement. Fails with ErrVersionConflict if the row moved on.
	Transition(ctx context.Context, id uuid.UUID, from, to domain.MissionStatus, patch domain.MissionPatch) (*domain.Mission, error)

	// UpdateMetadata merges meta into the jsonb column iff the stored
	// version still matches expectedVersion.
	UpdateMetadata(ctx context.Context, id uuid.UUID, expectedVersion int64, meta map[string]any) (*domain.Mission, error)
}

type CourierRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Courier, error)
	ListPending(ctx context.Context) ([]*domain.Courier, error)
	SetVerification(ctx context.Context, id uuid.UUID, status domain.CourierStatus) (*domain.Courier, error)
}
