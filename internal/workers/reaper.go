package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"

	"github.com/google/uuid"
)

// StaleLister finds claimed missions whose courier went dark.
type StaleLister interface {
	ListStale(ctx context.Context, olderThan time.Time) ([]*domain.Mission, error)
}

// Releaser returns a mission to the pool regardless of owner.
type Releaser interface {
	ForceRelease(ctx context.Context, missionID uuid.UUID, reason string) (*domain.Mission, error)
}

// Reaper sweeps CLAIMED/PICKED_UP missions that sat past the claim SLA and
// force-releases them so other couriers can pick them up. The release is the
// same guarded write couriers use, so a courier finishing the mission right
// as the sweep runs simply wins the race.
type Reaper struct {
	logger   *slog.Logger
	missions StaleLister
	dispatch Releaser
	sla      time.Duration
	interval time.Duration
}

func NewReaper(logger *slog.Logger, missions StaleLister, dispatch Releaser, sla, interval time.Duration) *Reaper {
	return &Reaper{
		logger:   logger,
		missions: missions,
		dispatch: dispatch,
		sla:      sla,
		interval: interval,
	}
}

func (r *Reaper) Run(ctx context.Context) {
	r.logger.Info("stale claim reaper started",
		slog.Duration("sla", r.sla),
		slog.Duration("interval", r.interval),
	)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stale claim reaper stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reaper) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-r.sla)

	stale, err := r.missions.ListStale(ctx, cutoff)
	if err != nil {
		r.logger.Error("stale claim sweep failed", slog.Any("error", err))
		return
	}
	if len(stale) == 0 {
		return
	}

	r.logger.Info("sweeping stale claims", slog.Int("count", len(stale)))

	for _, m := range stale {
		if _, err := r.dispatch.ForceRelease(ctx, m.ID, "claim expired"); err != nil {
			// The mission moved between the listing and the release.
			// That is the desired outcome, just not ours to log loudly.
			r.logger.Debug("stale release skipped",
				slog.String("mission_id", m.ID.String()),
				slog.Any("error", err),
			)
			continue
		}
		r.logger.Info("stale claim released",
			slog.String("mission_id", m.ID.String()),
			slog.String("status_was", string(m.Status)),
		)
	}
}
