package courier

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PoolLister interface {
	ListAvailable(ctx context.Context, filter domain.AvailableFilter) ([]*domain.Mission, error)
}

type MissionReader interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Mission, error)
	ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*domain.Mission, error)
}

type Dispatcher interface {
	Claim(ctx context.Context, missionID, courierID uuid.UUID) (*domain.Mission, error)
	Release(ctx context.Context, missionID, courierID uuid.UUID, reason string) (*domain.Mission, error)
}

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, missionID, courierID uuid.UUID, req domain.UpdateStatusRequest) (*domain.Mission, error)
}

type DeliveryVerifier interface {
	VerifyDelivery(ctx context.Context, missionID, courierID uuid.UUID, req domain.VerifyDeliveryRequest) (*domain.Mission, error)
}

type LocationUpdater interface {
	UpdateLocation(ctx context.Context, missionID uuid.UUID, req domain.LocationUpdateRequest) error
}

type StatsReader interface {
	Stats(ctx context.Context, courierID uuid.UUID) (*domain.CourierStats, error)
}

type Handler struct {
	logger   *slog.Logger
	Pool     PoolLister
	Missions MissionReader
	Dispatch Dispatcher
	Status   StatusUpdater
	Verify   DeliveryVerifier
	Location LocationUpdater
	Stats    StatsReader
}

func NewHandler(logger *slog.Logger, pool PoolLister, missions MissionReader, dispatch Dispatcher, status StatusUpdater, verify DeliveryVerifier, location LocationUpdater, stats StatsReader) *Handler {
	return &Handler{
		logger:   logger,
		Pool:     pool,
		Missions: missions,
		Dispatch: dispatch,
		Status:   status,
		Verify:   verify,
		Location: location,
		Stats:    stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// PoolList handles GET /missions/available with optional type, lat/lng,
// radius_km and limit query params.
func (h *Handler) PoolList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	var filter domain.AvailableFilter

	if t := q.Get("type"); t != "" {
		mt := domain.MissionType(t)
		filter.Type = &mt
	}
	if latStr, lngStr := q.Get("lat"), q.Get("lng"); latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid lat/lng"})
			return
		}
		filter.Lat = &lat
		filter.Lng = &lng
	}
	if radStr := q.Get("radius_km"); radStr != "" {
		rad, err := strconv.ParseFloat(radStr, 64)
		if err != nil || rad < 0 {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid radius_km"})
			return
		}
		filter.RadiusKM = rad
	}
	filter.Limit = parseInt(q.Get("limit"), 0)

	missions, err := h.Pool.ListAvailable(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("pool listed", slog.Int("count", len(missions)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"missions": presentMissions(missions),
		"count":    len(missions),
	})
}

func (h *Handler) MissionGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.missionID(w, r)
	if !ok {
		return
	}

	mission, err := h.Missions.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, presentMission(mission))
}

func (h *Handler) MyMissions(w http.ResponseWriter, r *http.Request) {
	courierID, ok := h.courierID(w, r)
	if !ok {
		return
	}

	missions, err := h.Missions.ListByCourier(r.Context(), courierID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"missions": presentMissions(missions),
		"count":    len(missions),
	})
}

// MyStats handles GET /couriers/me/stats: delivered total plus today's
// earnings for the authenticated courier.
func (h *Handler) MyStats(w http.ResponseWriter, r *http.Request) {
	courierID, ok := h.courierID(w, r)
	if !ok {
		return
	}

	stats, err := h.Stats.Stats(r.Context(), courierID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) MissionClaim(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.missionID(w, r)
	if !ok {
		return
	}
	courierID, ok := h.courierID(w, r)
	if !ok {
		return
	}

	mission, err := h.Dispatch.Claim(r.Context(), id, courierID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("mission claimed",
		slog.String("mission_id", id.String()),
		slog.String("courier_id", courierID.String()),
	)
	h.writeJSON(w, http.StatusOK, presentMission(mission))
}

func (h *Handler) MissionRelease(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.missionID(w, r)
	if !ok {
		return
	}
	courierID, ok := h.courierID(w, r)
	if !ok {
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	// Release body is optional.
	_ = json.NewDecoder(r.Body).Decode(&body)

	mission, err := h.Dispatch.Release(r.Context(), id, courierID, body.Reason)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("mission released",
		slog.String("mission_id", id.String()),
		slog.String("courier_id", courierID.String()),
	)
	h.writeJSON(w, http.StatusOK, presentMission(mission))
}

func (h *Handler) MissionStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.missionID(w, r)
	if !ok {
		return
	}
	courierID, ok := h.courierID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	mission, err := h.Status.UpdateStatus(r.Context(), id, courierID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, presentMission(mission))
}

func (h *Handler) MissionVerifyDelivery(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.missionID(w, r)
	if !ok {
		return
	}
	courierID, ok := h.courierID(w, r)
	if !ok {
		return
	}

	var req domain.VerifyDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	mission, err := h.Verify.VerifyDelivery(r.Context(), id, courierID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("delivery verified", slog.String("mission_id", id.String()))
	h.writeJSON(w, http.StatusOK, presentMission(mission))
}

func (h *Handler) MissionLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.missionID(w, r)
	if !ok {
		return
	}

	var req domain.LocationUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Location.UpdateLocation(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *Handler) missionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid mission id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid mission id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) courierID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.CourierIDFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "courier identity required"})
		return uuid.Nil, false
	}
	return id, true
}
