package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/api/handlers/http/admin"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/api/handlers/http/courier"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/api/handlers/http/system"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/config"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/middleware"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/service"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/ws"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, hub *ws.Hub) *Server {
	courierHandler := courier.NewHandler(logger, svc.Pool, svc.Missions, svc.Dispatch, svc.Lifecycle, svc.Verification, svc.Location, svc.Couriers)
	adminHandler := admin.NewHandler(logger, svc.Missions, svc.Dispatch, svc.Lifecycle, svc.Couriers)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, courierHandler, adminHandler, systemHandler, hub, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, courierHandler *courier.Handler, adminHandler *admin.Handler, systemHandler *system.Handler, hub *ws.Hub, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// COURIER
		api.Route("/missions", func(mr chi.Router) {
			mr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			mr.Get("/available", courierHandler.PoolList)

			mr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", courierHandler.MissionGet)
				ir.Post("/location", courierHandler.MissionLocation)

				// Ownership-changing routes need the courier identity.
				ir.Group(func(or chi.Router) {
					or.Use(middleware.CourierIdentity)
					or.Post("/claim", courierHandler.MissionClaim)
					or.Post("/release", courierHandler.MissionRelease)
					or.Post("/status", courierHandler.MissionStatus)
					or.Post("/verify", courierHandler.MissionVerifyDelivery)
				})
			})
		})

		api.Group(func(cr chi.Router) {
			cr.Use(middleware.CourierIdentity)
			cr.Get("/couriers/me/missions", courierHandler.MyMissions)
			cr.Get("/couriers/me/stats", courierHandler.MyStats)
		})

		// ADMIN + internal order sync
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(5, 10, 10*time.Minute, logger))

			ar.Route("/missions", func(mr chi.Router) {
				mr.Post("/", adminHandler.MissionCreate)
				mr.Get("/", adminHandler.MissionList)

				mr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.MissionGet)
					rr.Post("/assign", adminHandler.MissionAssign)
					rr.Post("/force-release", adminHandler.MissionForceRelease)
					rr.Post("/cancel", adminHandler.MissionForceCancel)
				})
			})

			ar.Route("/orders/{orderID}", func(or chi.Router) {
				or.Post("/sync", adminHandler.OrderSync)
				or.Post("/cancel", adminHandler.OrderCancel)
			})

			ar.Route("/couriers", func(cr chi.Router) {
				cr.Get("/pending", adminHandler.CouriersPending)
				cr.Patch("/{id}/verification", adminHandler.CourierVerification)
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	r.Get("/ws", hub.ServeWS)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
