package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
)

// Emitter is the shared after-commit plumbing: cache invalidation, websocket
// broadcast, AMQP notification and order callback enqueue. Everything here is
// best-effort; the mission row has already committed, so failures are logged
// and never surfaced to the caller.
type Emitter struct {
	logger    *slog.Logger
	cache     PoolCache
	broadcast Broadcaster
	notify    Notifier
	callbacks CallbackEnqueuer
}

func NewEmitter(logger *slog.Logger, cache PoolCache, broadcast Broadcaster, notify Notifier, callbacks CallbackEnqueuer) *Emitter {
	return &Emitter{
		logger:    logger,
		cache:     cache,
		broadcast: broadcast,
		notify:    notify,
		callbacks: callbacks,
	}
}

// MissionChanged publishes a committed mutation to live subscribers and the
// notification exchange. The mission is redacted first: couriers sit in the
// pool and mission rooms, so events must never carry the delivery OTP.
func (em *Emitter) MissionChanged(ctx context.Context, kind domain.EventKind, m *domain.Mission) {
	ev := domain.MissionEvent{
		Kind:    kind,
		Mission: m.Redacted(),
		At:      time.Now().UTC(),
	}
	em.broadcast.PublishMission(ctx, ev)
	em.notify.NotifyMissionEvent(ctx, ev)
}

// PoolChanged drops the cached discovery snapshot.
func (em *Emitter) PoolChanged(ctx context.Context) {
	if err := em.cache.Invalidate(ctx); err != nil {
		em.logger.Warn("pool cache invalidation failed", slog.Any("error", err))
	}
}

// SyncOrder queues a status callback for the upstream order, if any.
func (em *Emitter) SyncOrder(ctx context.Context, m *domain.Mission) {
	if m.OrderID == nil {
		return
	}
	cb := domain.OrderCallback{
		OrderID:     *m.OrderID,
		MissionID:   m.ID,
		Status:      m.Status,
		DeliveryOtp: m.MetaString(domain.MetaDeliveryOtp),
		At:          time.Now().UTC(),
	}
	if err := em.callbacks.Enqueue(ctx, cb); err != nil {
		em.logger.Error("order callback enqueue failed",
			slog.String("order_id", m.OrderID.String()),
			slog.String("mission_id", m.ID.String()),
			slog.Any("error", err),
		)
	}
}
