package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/geo"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/pricing"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/validator"

	"github.com/google/uuid"
)

// MissionService creates missions and answers read queries that are not
// pool discovery.
type MissionService struct {
	logger   *slog.Logger
	missions MissionRepository
	emitter  *Emitter
}

func NewMissionService(logger *slog.Logger, missions MissionRepository, emitter *Emitter) *MissionService {
	return &MissionService{
		logger:   logger,
		missions: missions,
		emitter:  emitter,
	}
}

// Create builds a new AVAILABLE mission: validates coordinates, prices the
// run, generates the delivery OTP and announces the mission to the pool.
// Creation is idempotent per order: a second call with the same order id
// returns the existing mission untouched.
func (s *MissionService) Create(ctx context.Context, req domain.CreateMissionRequest) (*domain.Mission, error) {
	const op = "service.Missions.Create"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: %v", e.ErrInvalidInput, err))
	}
	if !geo.ValidPoint(req.OriginLat, req.OriginLng) || !geo.ValidPoint(req.DestinationLat, req.DestinationLng) {
		return nil, e.Wrap(op, e.ErrInvalidCoordinates)
	}
	if req.Type == domain.FoodDelivery && req.OrderID == nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: food delivery requires an order id", e.ErrInvalidInput))
	}

	if req.OrderID != nil {
		existing, err := s.missions.GetByOrderID(ctx, *req.OrderID)
		if err == nil {
			s.logger.Info("mission already exists for order, returning it",
				slog.String("op", op),
				slog.String("order_id", req.OrderID.String()),
				slog.String("mission_id", existing.ID.String()),
			)
			return existing, nil
		}
		if !errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
	}

	distance := geo.HaversineKM(req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng)

	surge := false
	if count, err := s.missions.CountAvailable(ctx); err != nil {
		s.logger.Warn("pool count failed, pricing without surge", slog.String("op", op), slog.Any("error", err))
	} else {
		surge = pricing.IsSurge(int(count))
	}

	earnings := pricing.CourierEarnings(distance, surge, req.CourierTip)
	price := req.EstimatedPrice
	if price <= 0 {
		price = pricing.DeliveryFee(distance, surge)
	}

	otp, err := generateOtp()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	meta := make(map[string]any, len(req.Metadata)+4)
	for k, v := range req.Metadata {
		meta[k] = v
	}
	meta[domain.MetaDeliveryOtp] = otp
	meta[domain.MetaOtpAttempts] = 0
	meta[domain.MetaIsSurge] = surge
	if req.CourierTip > 0 {
		meta[domain.MetaCourierTip] = req.CourierTip
	}

	m := &domain.Mission{
		ID:         uuid.New(),
		Type:       req.Type,
		Status:     domain.MissionAvailable,
		OrderID:    req.OrderID,
		ClientID:   req.ClientID,
		MerchantID: req.MerchantID,

		OriginAddress:      req.OriginAddress,
		OriginLat:          req.OriginLat,
		OriginLng:          req.OriginLng,
		DestinationAddress: req.DestinationAddress,
		DestinationLat:     req.DestinationLat,
		DestinationLng:     req.DestinationLng,

		EstimatedDistanceKM: distance,
		EstimatedPrice:      price,
		CourierEarnings:     earnings,
		EstimatedMinutes:    pricing.EstimatedMinutes(distance),

		Metadata: meta,
	}

	if err := s.missions.Create(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("mission created",
		slog.String("op", op),
		slog.String("mission_id", m.ID.String()),
		slog.String("type", string(m.Type)),
		slog.Float64("distance_km", distance),
		slog.Bool("surge", surge),
	)

	s.emitter.PoolChanged(ctx)
	s.emitter.MissionChanged(ctx, domain.EventMissionAvailable, m)
	return m, nil
}

func (s *MissionService) Get(ctx context.Context, id uuid.UUID) (*domain.Mission, error) {
	return s.missions.Get(ctx, id)
}

func (s *MissionService) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Mission, error) {
	return s.missions.GetByOrderID(ctx, orderID)
}

func (s *MissionService) ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*domain.Mission, error) {
	return s.missions.ListByCourier(ctx, courierID)
}

// ListAll serves the admin board, optionally filtered by status.
func (s *MissionService) ListAll(ctx context.Context, status *domain.MissionStatus) ([]*domain.Mission, error) {
	const op = "service.Missions.ListAll"
	if status != nil && !status.Valid() {
		return nil, e.Wrap(op, fmt.Errorf("%w: unknown status %q", e.ErrInvalidInput, *status))
	}
	return s.missions.ListByStatus(ctx, status)
}

// generateOtp returns a 4-digit code with a leading non-zero digit, from
// crypto/rand so codes are not guessable across missions.
func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("otp generation: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}
