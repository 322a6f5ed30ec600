package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/geo"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"
)

const poolFetchLimit = 100

// PoolService answers courier discovery queries. Radius searches always hit
// the store (the geography index does the work); plain polls go through the
// short-TTL cache. Staleness is acceptable here because the claim CAS is the
// authority on who gets the mission.
type PoolService struct {
	logger        *slog.Logger
	missions      MissionRepository
	cache         PoolCache
	cacheTTL      time.Duration
	defaultRadius float64
}

func NewPoolService(logger *slog.Logger, missions MissionRepository, cache PoolCache, cacheTTL time.Duration, defaultRadius float64) *PoolService {
	return &PoolService{
		logger:        logger,
		missions:      missions,
		cache:         cache,
		cacheTTL:      cacheTTL,
		defaultRadius: defaultRadius,
	}
}

func (s *PoolService) ListAvailable(ctx context.Context, filter domain.AvailableFilter) ([]*domain.Mission, error) {
	const op = "service.Pool.ListAvailable"

	if filter.Type != nil && !filter.Type.Valid() {
		return nil, e.Wrap(op, fmt.Errorf("%w: unknown mission type %q", e.ErrInvalidInput, *filter.Type))
	}

	if filter.Lat != nil && filter.Lng != nil {
		if !geo.ValidPoint(*filter.Lat, *filter.Lng) {
			return nil, e.Wrap(op, e.ErrInvalidCoordinates)
		}
		if filter.RadiusKM <= 0 {
			filter.RadiusKM = s.defaultRadius
		}
		return s.missions.ListAvailable(ctx, filter)
	}

	cached, err := s.cache.GetAvailable(ctx)
	if err != nil {
		s.logger.Warn("pool cache read failed", slog.String("op", op), slog.Any("error", err))
	}
	if cached != nil {
		return narrowPool(cached, filter), nil
	}

	missions, err := s.missions.ListAvailable(ctx, domain.AvailableFilter{Limit: poolFetchLimit})
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetAvailable(ctx, missions, s.cacheTTL); err != nil {
		s.logger.Warn("pool cache write failed", slog.String("op", op), slog.Any("error", err))
	}

	return narrowPool(missions, filter), nil
}

// narrowPool applies type and limit filters to a cached snapshot.
func narrowPool(missions []*domain.Mission, filter domain.AvailableFilter) []*domain.Mission {
	out := make([]*domain.Mission, 0, len(missions))
	for _, m := range missions {
		if filter.Type != nil && m.Type != *filter.Type {
			continue
		}
		out = append(out, m)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out
}
