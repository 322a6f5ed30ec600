package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type MissionAdmin interface {
	Create(ctx context.Context, req domain.CreateMissionRequest) (*domain.Mission, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Mission, error)
	ListAll(ctx context.Context, status *domain.MissionStatus) ([]*domain.Mission, error)
}

type DispatchAdmin interface {
	Assign(ctx context.Context, missionID, courierID, adminID uuid.UUID) (*domain.Mission, error)
	ForceRelease(ctx context.Context, missionID uuid.UUID, reason string) (*domain.Mission, error)
}

type LifecycleAdmin interface {
	ForceCancel(ctx context.Context, missionID, adminID uuid.UUID, reason string) (*domain.Mission, error)
	SyncStatusByOrder(ctx context.Context, orderID uuid.UUID, target domain.MissionStatus, meta map[string]any) (*domain.Mission, error)
	CancelByOrder(ctx context.Context, orderID uuid.UUID, reason string) (*domain.Mission, error)
}

type CourierAdmin interface {
	ListPending(ctx context.Context) ([]*domain.Courier, error)
	SetVerification(ctx context.Context, id uuid.UUID, status domain.CourierStatus) (*domain.Courier, error)
}

type Handler struct {
	logger    *slog.Logger
	Missions  MissionAdmin
	Dispatch  DispatchAdmin
	Lifecycle LifecycleAdmin
	Couriers  CourierAdmin
}

func NewHandler(logger *slog.Logger, missions MissionAdmin, dispatch DispatchAdmin, lifecycle LifecycleAdmin, couriers CourierAdmin) *Handler {
	return &Handler{
		logger:    logger,
		Missions:  missions,
		Dispatch:  dispatch,
		Lifecycle: lifecycle,
		Couriers:  couriers,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) MissionCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("creating mission",
		slog.String("type", string(req.Type)),
		slog.Float64("origin_lat", req.OriginLat),
		slog.Float64("origin_lng", req.OriginLng),
	)

	mission, err := h.Missions.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("mission created", slog.String("id", mission.ID.String()))
	h.writeJSON(w, http.StatusCreated, mission)
}

func (h *Handler) MissionList(w http.ResponseWriter, r *http.Request) {
	var status *domain.MissionStatus
	if s := r.URL.Query().Get("status"); s != "" {
		ms := domain.MissionStatus(s)
		status = &ms
	}

	missions, err := h.Missions.ListAll(r.Context(), status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"missions": missions,
		"count":    len(missions),
	})
}

func (h *Handler) MissionGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}

	mission, err := h.Missions.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, mission)
}

func (h *Handler) MissionAssign(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}

	var body struct {
		CourierID uuid.UUID `json:"courier_id"`
		AdminID   uuid.UUID `json:"admin_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.CourierID == uuid.Nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "courier_id required"})
		return
	}

	mission, err := h.Dispatch.Assign(r.Context(), id, body.CourierID, body.AdminID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("mission assigned",
		slog.String("mission_id", id.String()),
		slog.String("courier_id", body.CourierID.String()),
	)
	h.writeJSON(w, http.StatusOK, mission)
}

func (h *Handler) MissionForceRelease(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.Reason == "" {
		body.Reason = "released by admin"
	}

	mission, err := h.Dispatch.ForceRelease(r.Context(), id, body.Reason)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("mission force-released", slog.String("mission_id", id.String()))
	h.writeJSON(w, http.StatusOK, mission)
}

func (h *Handler) MissionForceCancel(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}

	var body struct {
		AdminID uuid.UUID `json:"admin_id"`
		Reason  string    `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.Reason == "" {
		body.Reason = "cancelled by admin"
	}

	mission, err := h.Lifecycle.ForceCancel(r.Context(), id, body.AdminID, body.Reason)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("mission force-cancelled", slog.String("mission_id", id.String()))
	h.writeJSON(w, http.StatusOK, mission)
}

// OrderSync lets the orders service push a mission status for one of its
// orders, keyed by order id rather than mission id.
func (h *Handler) OrderSync(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.uuidParam(w, r, "orderID")
	if !ok {
		return
	}

	var body struct {
		Status   domain.MissionStatus `json:"status"`
		Metadata map[string]any       `json:"metadata,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status required"})
		return
	}

	mission, err := h.Lifecycle.SyncStatusByOrder(r.Context(), orderID, body.Status, body.Metadata)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, mission)
}

func (h *Handler) OrderCancel(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.uuidParam(w, r, "orderID")
	if !ok {
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.Reason == "" {
		body.Reason = "order cancelled"
	}

	mission, err := h.Lifecycle.CancelByOrder(r.Context(), orderID, body.Reason)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, mission)
}

func (h *Handler) CouriersPending(w http.ResponseWriter, r *http.Request) {
	couriers, err := h.Couriers.ListPending(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"couriers": couriers,
		"count":    len(couriers),
	})
}

func (h *Handler) CourierVerification(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.uuidParam(w, r, "id")
	if !ok {
		return
	}

	var body struct {
		Status domain.CourierStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status required"})
		return
	}

	courier, err := h.Couriers.SetVerification(r.Context(), id, body.Status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("courier verification set",
		slog.String("courier_id", id.String()),
		slog.String("status", string(body.Status)),
	)
	h.writeJSON(w, http.StatusOK, courier)
}

func (h *Handler) uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		h.log(r).Warn("invalid uuid param", slog.String("param", name), slog.String("value", raw))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
