package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/config"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Routing keys on the dispatch events exchange, consumed by the
// notifications service for push/email fan-out.
const (
	KeyMissionAvailable = "mission.available"
	KeyMissionClaimed   = "mission.claimed"
	KeyMissionDelivered = "mission.delivered"
	KeyMissionCancelled = "mission.cancelled"
	KeyMissionUpdated   = "mission.updated"
)

type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *slog.Logger
}

func NewPublisher(cfg config.AMQPConfig, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp exchange declare: %w", err)
	}

	logger.Info("Connected to RabbitMQ successfully", slog.String("exchange", cfg.Exchange))

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: cfg.Exchange,
		logger:   logger,
	}, nil
}

func routingKey(ev domain.MissionEvent) string {
	switch ev.Kind {
	case domain.EventMissionAvailable:
		return KeyMissionAvailable
	case domain.EventMissionClaimed:
		return KeyMissionClaimed
	}
	switch ev.Mission.Status {
	case domain.MissionDelivered:
		return KeyMissionDelivered
	case domain.MissionCancelled, domain.MissionFailed:
		return KeyMissionCancelled
	}
	return KeyMissionUpdated
}

// NotifyMissionEvent publishes to the topic exchange. Notification delivery
// is best-effort: errors are logged, never returned to the claim path.
func (p *Publisher) NotifyMissionEvent(ctx context.Context, ev domain.MissionEvent) {
	body, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("amqp marshal failed", slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := routingKey(ev)
	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("amqp publish failed",
			slog.String("routing_key", key),
			slog.String("mission_id", ev.Mission.ID.String()),
			slog.Any("error", err),
		)
		return
	}

	p.logger.Debug("amqp event published",
		slog.String("routing_key", key),
		slog.String("mission_id", ev.Mission.ID.String()),
	)
}

func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
