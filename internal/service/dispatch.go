package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"

	"github.com/google/uuid"
)

// DispatchService owns mission ownership changes: claim, release, admin
// assignment and forced release. Ownership is decided by the store's guarded
// writes, so these methods stay correct when several instances of the service
// race on the same mission.
type DispatchService struct {
	logger   *slog.Logger
	missions MissionRepository
	couriers CourierRepository
	emitter  *Emitter
}

func NewDispatchService(logger *slog.Logger, missions MissionRepository, couriers CourierRepository, emitter *Emitter) *DispatchService {
	return &DispatchService{
		logger:   logger,
		missions: missions,
		couriers: couriers,
		emitter:  emitter,
	}
}

// Claim gives the mission to courierID if it is still unowned. Eligibility
// is re-checked here on every call, never trusted from a cached pool view.
func (s *DispatchService) Claim(ctx context.Context, missionID, courierID uuid.UUID) (*domain.Mission, error) {
	const op = "service.Dispatch.Claim"

	mission, err := s.missions.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}

	courier, err := s.couriers.Get(ctx, courierID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Wrap(op, e.ErrCourierNotEligible)
		}
		return nil, err
	}
	if !courier.Verified() || !courier.IsOnline || !courier.Accepts(mission.Type) {
		s.logger.Info("claim rejected, courier not eligible",
			slog.String("op", op),
			slog.String("mission_id", missionID.String()),
			slog.String("courier_id", courierID.String()),
			slog.String("courier_status", string(courier.CourierStatus)),
		)
		return nil, e.Wrap(op, e.ErrCourierNotEligible)
	}

	claimed, err := s.missions.Claim(ctx, missionID, courierID, nil)
	if err != nil {
		return nil, err
	}

	s.logger.Info("mission claimed",
		slog.String("op", op),
		slog.String("mission_id", missionID.String()),
		slog.String("courier_id", courierID.String()),
	)

	s.emitter.PoolChanged(ctx)
	s.emitter.MissionChanged(ctx, domain.EventMissionClaimed, claimed)
	s.emitter.SyncOrder(ctx, claimed)
	return claimed, nil
}

// Release hands a CLAIMED or PICKED_UP mission back to the pool. Only the
// owning courier may release; anyone else gets ErrNotOwner no matter the
// mission state.
func (s *DispatchService) Release(ctx context.Context, missionID, courierID uuid.UUID, reason string) (*domain.Mission, error) {
	const op = "service.Dispatch.Release"

	meta := map[string]any{domain.MetaReleaseBy: courierID.String()}
	if reason != "" {
		meta[domain.MetaCancelReason] = reason
	}

	released, err := s.missions.Release(ctx, missionID, courierID, false, meta)
	if err != nil {
		return nil, err
	}

	s.logger.Info("mission released",
		slog.String("op", op),
		slog.String("mission_id", missionID.String()),
		slog.String("courier_id", courierID.String()),
	)

	s.emitter.PoolChanged(ctx)
	s.emitter.MissionChanged(ctx, domain.EventMissionAvailable, released)
	s.emitter.SyncOrder(ctx, released)
	return released, nil
}

// Assign is the admin override: it claims on behalf of a courier with the
// same atomicity as a self-claim. The courier must be verified but need not
// be online; dispatchers assign to couriers they have reached out of band.
func (s *DispatchService) Assign(ctx context.Context, missionID, courierID, adminID uuid.UUID) (*domain.Mission, error) {
	const op = "service.Dispatch.Assign"

	courier, err := s.couriers.Get(ctx, courierID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.Wrap(op, e.ErrCourierNotEligible)
		}
		return nil, err
	}
	if !courier.Verified() {
		return nil, e.Wrap(op, e.ErrCourierNotEligible)
	}

	meta := map[string]any{domain.MetaAssignedBy: adminID.String()}
	assigned, err := s.missions.Claim(ctx, missionID, courierID, meta)
	if err != nil {
		return nil, err
	}

	s.logger.Info("mission assigned by admin",
		slog.String("op", op),
		slog.String("mission_id", missionID.String()),
		slog.String("courier_id", courierID.String()),
		slog.String("admin_id", adminID.String()),
	)

	s.emitter.PoolChanged(ctx)
	s.emitter.MissionChanged(ctx, domain.EventMissionClaimed, assigned)
	s.emitter.SyncOrder(ctx, assigned)
	return assigned, nil
}

// ForceRelease returns a mission to the pool regardless of owner. Used by
// the stale-claim reaper and the admin surface.
func (s *DispatchService) ForceRelease(ctx context.Context, missionID uuid.UUID, reason string) (*domain.Mission, error) {
	const op = "service.Dispatch.ForceRelease"

	meta := map[string]any{domain.MetaReleaseBy: "system"}
	if reason != "" {
		meta[domain.MetaCancelReason] = reason
	}

	released, err := s.missions.Release(ctx, missionID, uuid.Nil, true, meta)
	if err != nil {
		return nil, err
	}

	s.logger.Info("mission force-released",
		slog.String("op", op),
		slog.String("mission_id", missionID.String()),
		slog.String("reason", reason),
	)

	s.emitter.PoolChanged(ctx)
	s.emitter.MissionChanged(ctx, domain.EventMissionAvailable, released)
	s.emitter.SyncOrder(ctx, released)
	return released, nil
}
