package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/geo"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/pricing"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/validator"

	"github.com/google/uuid"
)

// VerificationService is the only way a mission reaches DELIVERED. The
// courier proves hand-off with the OTP generated at creation; failed
// attempts are counted and throttled.
type VerificationService struct {
	logger      *slog.Logger
	missions    MissionRepository
	emitter     *Emitter
	maxAttempts int
}

func NewVerificationService(logger *slog.Logger, missions MissionRepository, emitter *Emitter, maxAttempts int) *VerificationService {
	return &VerificationService{
		logger:      logger,
		missions:    missions,
		emitter:     emitter,
		maxAttempts: maxAttempts,
	}
}

// VerifyDelivery checks the OTP and, on success, completes the mission in a
// single guarded transition: PICKED_UP -> DELIVERED with the final distance
// and earnings stamped on the row.
func (s *VerificationService) VerifyDelivery(ctx context.Context, missionID, courierID uuid.UUID, req domain.VerifyDeliveryRequest) (*domain.Mission, error) {
	const op = "service.Verification.VerifyDelivery"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: %v", e.ErrInvalidInput, err))
	}

	mission, err := s.missions.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if !mission.OwnedBy(courierID) {
		return nil, e.Wrap(op, e.ErrNotOwner)
	}
	if mission.Status != domain.MissionPickedUp {
		return nil, e.Wrap(op, fmt.Errorf("%w: mission is %s, expected %s",
			e.ErrIllegalTransition, mission.Status, domain.MissionPickedUp))
	}

	attempts := mission.MetaInt(domain.MetaOtpAttempts)
	if attempts >= s.maxAttempts {
		return nil, e.Wrap(op, e.ErrOtpThrottled)
	}

	stored := mission.MetaString(domain.MetaDeliveryOtp)
	if stored == "" {
		s.logger.Error("mission has no delivery otp", slog.String("op", op), slog.String("mission_id", missionID.String()))
		return nil, e.Wrap(op, e.ErrInternal)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(req.Otp)) != 1 {
		// Record the failed attempt; a lost race on version just means a
		// parallel attempt already bumped the counter.
		if _, uerr := s.missions.UpdateMetadata(ctx, missionID, mission.Version, map[string]any{
			domain.MetaOtpAttempts: attempts + 1,
		}); uerr != nil {
			s.logger.Warn("otp attempt counter update failed",
				slog.String("op", op),
				slog.String("mission_id", missionID.String()),
				slog.Any("error", uerr),
			)
		}

		s.logger.Info("delivery otp rejected",
			slog.String("op", op),
			slog.String("mission_id", missionID.String()),
			slog.Int("attempts", attempts+1),
		)

		if attempts+1 >= s.maxAttempts {
			return nil, e.Wrap(op, e.ErrOtpThrottled)
		}
		return nil, e.Wrap(op, e.ErrInvalidOtp)
	}

	now := time.Now().UTC()
	actual := geo.HaversineKM(mission.OriginLat, mission.OriginLng, mission.DestinationLat, mission.DestinationLng)
	earnings := pricing.CourierEarnings(actual, mission.MetaBool(domain.MetaIsSurge), mission.MetaFloat(domain.MetaCourierTip))

	meta := map[string]any{domain.MetaVerifiedAt: now.Format(time.RFC3339)}
	for k, v := range req.Proof {
		meta["proof_"+k] = v
	}

	patch := domain.MissionPatch{
		CompletedAt:      &now,
		ActualDistanceKM: &actual,
		CourierEarnings:  &earnings,
		MetadataMerge:    meta,
	}

	delivered, err := s.missions.Transition(ctx, missionID, domain.MissionPickedUp, domain.MissionDelivered, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("delivery verified",
		slog.String("op", op),
		slog.String("mission_id", missionID.String()),
		slog.String("courier_id", courierID.String()),
		slog.Float64("earnings", earnings),
	)

	s.emitter.MissionChanged(ctx, domain.EventMissionUpdated, delivered)
	s.emitter.SyncOrder(ctx, delivered)
	return delivered, nil
}
