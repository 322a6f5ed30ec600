package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"

	"github.com/google/uuid"
)

// LifecycleService drives the mission status machine for everything that is
// not an ownership change: pickup, cancellation, failure and order-driven
// sync. DELIVERED is deliberately unreachable from here; only the
// verification service may complete a mission.
type LifecycleService struct {
	logger   *slog.Logger
	missions MissionRepository
	emitter  *Emitter
}

func NewLifecycleService(logger *slog.Logger, missions MissionRepository, emitter *Emitter) *LifecycleService {
	return &LifecycleService{
		logger:   logger,
		missions: missions,
		emitter:  emitter,
	}
}

// UpdateStatus is the courier-facing transition: the caller must own the
// mission, the target must be adjacent, and DELIVERED/AVAILABLE are refused
// here because they have dedicated paths (verification and release).
func (s *LifecycleService) UpdateStatus(ctx context.Context, missionID, courierID uuid.UUID, req domain.UpdateStatusRequest) (*domain.Mission, error) {
	const op = "service.Lifecycle.UpdateStatus"

	target := req.Status
	if !target.Valid() {
		return nil, e.Wrap(op, fmt.Errorf("%w: unknown status %q", e.ErrInvalidInput, target))
	}
	if target == domain.MissionDelivered || target == domain.MissionAvailable {
		return nil, e.Wrap(op, e.ErrIllegalTransition)
	}

	mission, err := s.missions.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if !mission.OwnedBy(courierID) {
		return nil, e.Wrap(op, e.ErrNotOwner)
	}
	if !mission.Status.CanTransitionTo(target) {
		return nil, e.Wrap(op, fmt.Errorf("%w: %s -> %s", e.ErrIllegalTransition, mission.Status, target))
	}

	patch := domain.MissionPatch{MetadataMerge: req.Metadata}
	if target == domain.MissionPickedUp {
		now := time.Now().UTC()
		patch.PickedUpAt = &now
	}

	updated, err := s.missions.Transition(ctx, missionID, mission.Status, target, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("mission status updated",
		slog.String("op", op),
		slog.String("mission_id", missionID.String()),
		slog.String("from", string(mission.Status)),
		slog.String("to", string(target)),
	)

	s.emitter.MissionChanged(ctx, domain.EventMissionUpdated, updated)
	s.emitter.SyncOrder(ctx, updated)
	return updated, nil
}

// ForceCancel terminates a mission from any live state. Admin only.
func (s *LifecycleService) ForceCancel(ctx context.Context, missionID, adminID uuid.UUID, reason string) (*domain.Mission, error) {
	const op = "service.Lifecycle.ForceCancel"

	mission, err := s.missions.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission.Status.Terminal() {
		return nil, e.Wrap(op, fmt.Errorf("%w: mission already %s", e.ErrIllegalTransition, mission.Status))
	}

	meta := map[string]any{domain.MetaCancelReason: reason}
	if adminID != uuid.Nil {
		meta[domain.MetaCancelledBy] = adminID.String()
	}

	updated, err := s.missions.Transition(ctx, missionID, mission.Status, domain.MissionCancelled, domain.MissionPatch{MetadataMerge: meta})
	if err != nil {
		return nil, err
	}

	s.logger.Info("mission force-cancelled",
		slog.String("op", op),
		slog.String("mission_id", missionID.String()),
		slog.String("from", string(mission.Status)),
		slog.String("reason", reason),
	)

	if mission.Status == domain.MissionAvailable {
		s.emitter.PoolChanged(ctx)
	}
	s.emitter.MissionChanged(ctx, domain.EventMissionUpdated, updated)
	s.emitter.SyncOrder(ctx, updated)
	return updated, nil
}

// SyncStatusByOrder lets the orders collaborator push a status for the
// mission tied to one of its orders. Repeating the current status is a
// no-op, so retried callbacks stay harmless.
func (s *LifecycleService) SyncStatusByOrder(ctx context.Context, orderID uuid.UUID, target domain.MissionStatus, meta map[string]any) (*domain.Mission, error) {
	const op = "service.Lifecycle.SyncStatusByOrder"

	if !target.Valid() {
		return nil, e.Wrap(op, fmt.Errorf("%w: unknown status %q", e.ErrInvalidInput, target))
	}

	mission, err := s.missions.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if mission.Status == target {
		return mission, nil
	}
	if !mission.Status.CanTransitionTo(target) {
		return nil, e.Wrap(op, fmt.Errorf("%w: %s -> %s", e.ErrIllegalTransition, mission.Status, target))
	}

	updated, err := s.missions.Transition(ctx, mission.ID, mission.Status, target, domain.MissionPatch{MetadataMerge: meta})
	if err != nil {
		return nil, err
	}

	s.logger.Info("mission synced from order",
		slog.String("op", op),
		slog.String("order_id", orderID.String()),
		slog.String("mission_id", mission.ID.String()),
		slog.String("to", string(target)),
	)

	if mission.Status == domain.MissionAvailable || target == domain.MissionAvailable {
		s.emitter.PoolChanged(ctx)
	}
	s.emitter.MissionChanged(ctx, domain.EventMissionUpdated, updated)
	return updated, nil
}

// CancelByOrder cancels the mission behind a cancelled order. Terminal
// missions are left alone, so a late cancellation cannot resurrect anything.
func (s *LifecycleService) CancelByOrder(ctx context.Context, orderID uuid.UUID, reason string) (*domain.Mission, error) {
	const op = "service.Lifecycle.CancelByOrder"

	mission, err := s.missions.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if mission.Status.Terminal() {
		return mission, nil
	}

	meta := map[string]any{domain.MetaCancelReason: reason}
	updated, err := s.missions.Transition(ctx, mission.ID, mission.Status, domain.MissionCancelled, domain.MissionPatch{MetadataMerge: meta})
	if err != nil {
		return nil, err
	}

	s.logger.Info("mission cancelled by order",
		slog.String("op", op),
		slog.String("order_id", orderID.String()),
		slog.String("mission_id", mission.ID.String()),
	)

	if mission.Status == domain.MissionAvailable {
		s.emitter.PoolChanged(ctx)
	}
	s.emitter.MissionChanged(ctx, domain.EventMissionUpdated, updated)
	return updated, nil
}
