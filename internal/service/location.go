package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/geo"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"

	"github.com/google/uuid"
)

// LocationService relays courier position reports to mission watchers.
// Broadcast is the point; the last known position is additionally stamped on
// the row best-effort so a fresh subscriber has a starting point.
type LocationService struct {
	logger    *slog.Logger
	missions  MissionRepository
	broadcast Broadcaster
}

func NewLocationService(logger *slog.Logger, missions MissionRepository, broadcast Broadcaster) *LocationService {
	return &LocationService{
		logger:    logger,
		missions:  missions,
		broadcast: broadcast,
	}
}

func (s *LocationService) UpdateLocation(ctx context.Context, missionID uuid.UUID, req domain.LocationUpdateRequest) error {
	const op = "service.Location.UpdateLocation"

	if !geo.ValidPoint(req.Lat, req.Lng) {
		return e.Wrap(op, e.ErrInvalidCoordinates)
	}

	mission, err := s.missions.Get(ctx, missionID)
	if err != nil {
		return err
	}
	if !mission.Status.Releasable() {
		return e.Wrap(op, fmt.Errorf("%w: mission is %s, not in transit", e.ErrIllegalTransition, mission.Status))
	}

	s.broadcast.PublishLocation(ctx, domain.LocationEvent{
		MissionID: mission.ID,
		OrderID:   mission.OrderID,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Status:    mission.Status,
		At:        time.Now().UTC(),
	})

	// A lost version race only means a newer report landed first.
	if _, err := s.missions.UpdateMetadata(ctx, missionID, mission.Version, map[string]any{
		domain.MetaCurrentLat: req.Lat,
		domain.MetaCurrentLng: req.Lng,
	}); err != nil && !errors.Is(err, e.ErrVersionConflict) {
		s.logger.Warn("location persist failed",
			slog.String("op", op),
			slog.String("mission_id", missionID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}
