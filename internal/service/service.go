package service

//go:generate mockgen -source=service.go -destination=mocks/mock.go

import (
	"context"
	"log/slog"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/config"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"

	"github.com/google/uuid"
)

// MissionRepository is the storage port the dispatch engine runs on. The
// mutating methods are compare-and-set primitives: each one is a single
// guarded write, so the winner of any race is decided by the store, not by
// this process.
type MissionRepository interface {
	Create(ctx context.Context, m *domain.Mission) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Mission, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Mission, error)

	ListAvailable(ctx context.Context, filter domain.AvailableFilter) ([]*domain.Mission, error)
	ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*domain.Mission, error)
	ListByStatus(ctx context.Context, status *domain.MissionStatus) ([]*domain.Mission, error)
	ListStale(ctx context.Context, olderThan time.Time) ([]*domain.Mission, error)
	CountAvailable(ctx context.Context) (int64, error)
	StatsByCourier(ctx context.Context, courierID uuid.UUID, earningsSince time.Time) (*domain.CourierStats, error)

	Claim(ctx context.Context, id, courierID uuid.UUID, meta map[string]any) (*domain.Mission, error)
	Release(ctx context.Context, id, courierID uuid.UUID, forced bool, meta map[string]any) (*domain.Mission, error)
	Transition(ctx context.Context, id uuid.UUID, from, to domain.MissionStatus, patch domain.MissionPatch) (*domain.Mission, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, expectedVersion int64, meta map[string]any) (*domain.Mission, error)
}

type CourierRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Courier, error)
	ListPending(ctx context.Context) ([]*domain.Courier, error)
	SetVerification(ctx context.Context, id uuid.UUID, status domain.CourierStatus) (*domain.Courier, error)
}

// PoolCache shortcuts unfiltered discovery polls. A miss or error always
// falls through to the repository.
type PoolCache interface {
	GetAvailable(ctx context.Context) ([]*domain.Mission, error)
	SetAvailable(ctx context.Context, missions []*domain.Mission, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// Broadcaster fans committed mission changes out to live subscribers.
type Broadcaster interface {
	PublishMission(ctx context.Context, ev domain.MissionEvent)
	PublishLocation(ctx context.Context, ev domain.LocationEvent)
}

// Notifier hands events to the out-of-process notification pipeline.
type Notifier interface {
	NotifyMissionEvent(ctx context.Context, ev domain.MissionEvent)
}

// CallbackEnqueuer buffers order-status callbacks for async delivery.
type CallbackEnqueuer interface {
	Enqueue(ctx context.Context, payload domain.OrderCallback) error
}

// Service bundles every use-case group behind one wiring point.
type Service struct {
	Missions     *MissionService
	Pool         *PoolService
	Dispatch     *DispatchService
	Lifecycle    *LifecycleService
	Verification *VerificationService
	Location     *LocationService
	Couriers     *CourierService
}

type Deps struct {
	Missions  MissionRepository
	Couriers  CourierRepository
	Cache     PoolCache
	Broadcast Broadcaster
	Notify    Notifier
	Callbacks CallbackEnqueuer
}

func New(logger *slog.Logger, cfg config.DispatchConfig, d Deps) *Service {
	emitter := NewEmitter(logger, d.Cache, d.Broadcast, d.Notify, d.Callbacks)

	return &Service{
		Missions:     NewMissionService(logger, d.Missions, emitter),
		Pool:         NewPoolService(logger, d.Missions, d.Cache, cfg.PoolCacheTTL, cfg.DefaultRadiusKM),
		Dispatch:     NewDispatchService(logger, d.Missions, d.Couriers, emitter),
		Lifecycle:    NewLifecycleService(logger, d.Missions, emitter),
		Verification: NewVerificationService(logger, d.Missions, emitter, cfg.OtpMaxAttempts),
		Location:     NewLocationService(logger, d.Missions, d.Broadcast),
		Couriers:     NewCourierService(logger, d.Couriers, d.Missions),
	}
}
