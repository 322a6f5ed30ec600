package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/api"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/config"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/mq"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/redis"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/service"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/storage/postgres"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/workers"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/ws"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/logger"
)

type Components struct {
	logger *slog.Logger

	HttpServer     *api.Server
	Hub            *ws.Hub
	Reaper         *workers.Reaper
	CallbackSender *workers.CallbackSender

	Postgres  *postgres.Postgres
	Redis     *redis.Redis
	Publisher *mq.Publisher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	poolCache := redis.NewPoolCache(redisClient)
	callbackQueue := redis.NewCallbackQueue(redisClient.Client, "callbacks:orders")

	var notifier service.Notifier = noopNotifier{}
	var publisher *mq.Publisher
	if !cfg.AMQP.Disabled {
		publisher, err = mq.NewPublisher(cfg.AMQP, logger)
		if err != nil {
			storage.Pool.Close()
			_ = redisClient.Close()
			return nil, fmt.Errorf("failed to init amqp publisher: %w", err)
		}
		notifier = publisher
	} else {
		logger.Info("AMQP publisher disabled")
	}

	hub := ws.NewHub(logger)

	svc := service.New(logger, cfg.Dispatch, service.Deps{
		Missions:  storage.Missions,
		Couriers:  storage.Couriers,
		Cache:     poolCache,
		Broadcast: hub,
		Notify:    notifier,
		Callbacks: callbackQueue,
	})

	hub.SetLocationFunc(svc.Location.UpdateLocation)

	reaper := workers.NewReaper(logger, storage.Missions, svc.Dispatch, cfg.Dispatch.ClaimSLA, cfg.Dispatch.ReaperInterval)
	callbackSender := workers.NewCallbackSender(logger, callbackQueue, cfg.Callback)

	httpServer := api.NewServer(cfg, logger, svc, hub)
	logger.Info("Initialized server")

	return &Components{
		logger:         logger,
		HttpServer:     httpServer,
		Hub:            hub,
		Reaper:         reaper,
		CallbackSender: callbackSender,
		Postgres:       storage,
		Redis:          redisClient,
		Publisher:      publisher,
	}, nil
}

// noopNotifier stands in when AMQP is disabled.
type noopNotifier struct{}

func (noopNotifier) NotifyMissionEvent(context.Context, domain.MissionEvent) {}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			c.logger.Error("AMQP close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
