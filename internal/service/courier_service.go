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

// CourierService backs the admin verification queue and the courier's own
// stats panel.
type CourierService struct {
	logger   *slog.Logger
	couriers CourierRepository
	missions MissionRepository
}

func NewCourierService(logger *slog.Logger, couriers CourierRepository, missions MissionRepository) *CourierService {
	return &CourierService{logger: logger, couriers: couriers, missions: missions}
}

func (s *CourierService) Get(ctx context.Context, id uuid.UUID) (*domain.Courier, error) {
	return s.couriers.Get(ctx, id)
}

func (s *CourierService) ListPending(ctx context.Context) ([]*domain.Courier, error) {
	return s.couriers.ListPending(ctx)
}

// Stats returns the courier's delivered-mission totals. "Today" is the UTC
// calendar day; the aggregate lives in one query on the mission store.
func (s *CourierService) Stats(ctx context.Context, courierID uuid.UUID) (*domain.CourierStats, error) {
	since := time.Now().UTC().Truncate(24 * time.Hour)
	return s.missions.StatsByCourier(ctx, courierID, since)
}

// SetVerification resolves a pending application to VERIFIED or REJECTED.
func (s *CourierService) SetVerification(ctx context.Context, id uuid.UUID, status domain.CourierStatus) (*domain.Courier, error) {
	const op = "service.Couriers.SetVerification"

	if status != domain.CourierVerified && status != domain.CourierRejected {
		return nil, e.Wrap(op, fmt.Errorf("%w: verification status must be %s or %s",
			e.ErrInvalidInput, domain.CourierVerified, domain.CourierRejected))
	}

	courier, err := s.couriers.SetVerification(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("courier verification updated",
		slog.String("op", op),
		slog.String("courier_id", id.String()),
		slog.String("status", string(status)),
	)
	return courier, nil
}
