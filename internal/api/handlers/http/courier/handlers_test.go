package courier_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/api/handlers/http/courier"
	mock_courier "github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/api/handlers/http/courier/mocks"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/middleware"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type handlerMocks struct {
	pool     *mock_courier.MockPoolLister
	missions *mock_courier.MockMissionReader
	dispatch *mock_courier.MockDispatcher
	status   *mock_courier.MockStatusUpdater
	verify   *mock_courier.MockDeliveryVerifier
	location *mock_courier.MockLocationUpdater
	stats    *mock_courier.MockStatsReader
}

func newHandler(ctrl *gomock.Controller) (*courier.Handler, handlerMocks) {
	m := handlerMocks{
		pool:     mock_courier.NewMockPoolLister(ctrl),
		missions: mock_courier.NewMockMissionReader(ctrl),
		dispatch: mock_courier.NewMockDispatcher(ctrl),
		status:   mock_courier.NewMockStatusUpdater(ctrl),
		verify:   mock_courier.NewMockDeliveryVerifier(ctrl),
		location: mock_courier.NewMockLocationUpdater(ctrl),
		stats:    mock_courier.NewMockStatsReader(ctrl),
	}
	h := courier.NewHandler(newTestLogger(), m.pool, m.missions, m.dispatch, m.status, m.verify, m.location, m.stats)
	return h, m
}

// addChiURLParam attaches a chi route context so handlers can read URL params
// without spinning up the full router.
func addChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func asCourier(h http.HandlerFunc, r *http.Request, courierID uuid.UUID) *httptest.ResponseRecorder {
	r.Header.Set("X-Courier-ID", courierID.String())
	w := httptest.NewRecorder()
	middleware.CourierIdentity(h).ServeHTTP(w, r)
	return w
}

func decodeJSON[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestPoolList_QueryParsing(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	m.pool.EXPECT().
		ListAvailable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.AvailableFilter) ([]*domain.Mission, error) {
			if f.Type == nil || *f.Type != domain.FoodDelivery {
				t.Errorf("type filter not forwarded: %+v", f.Type)
			}
			if f.Lat == nil || *f.Lat != 9.65 || f.Lng == nil || *f.Lng != -82.75 {
				t.Errorf("coordinates not forwarded: %+v", f)
			}
			if f.RadiusKM != 5 || f.Limit != 10 {
				t.Errorf("radius/limit not forwarded: %+v", f)
			}
			return []*domain.Mission{{ID: uuid.New()}}, nil
		})

	r := httptest.NewRequest(http.MethodGet, "/missions/available?type=FOOD_DELIVERY&lat=9.65&lng=-82.75&radius_km=5&limit=10", nil)
	w := httptest.NewRecorder()
	h.PoolList(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeJSON[map[string]any](t, w.Body)
	if resp["count"].(float64) != 1 {
		t.Fatalf("count = %v, want 1", resp["count"])
	}
}

func TestPoolList_BadRadius(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _ := newHandler(ctrl)

	r := httptest.NewRequest(http.MethodGet, "/missions/available?radius_km=-1", nil)
	w := httptest.NewRecorder()
	h.PoolList(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMissionClaim_OK(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	missionID := uuid.New()
	courierID := uuid.New()
	m.dispatch.EXPECT().
		Claim(gomock.Any(), missionID, courierID).
		Return(&domain.Mission{ID: missionID, Status: domain.MissionClaimed, CourierID: &courierID}, nil)

	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/claim", nil)
	r = addChiURLParam(r, "id", missionID.String())
	w := asCourier(h.MissionClaim, r, courierID)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	mission := decodeJSON[domain.Mission](t, w.Body)
	if mission.Status != domain.MissionClaimed {
		t.Fatalf("status = %s, want CLAIMED", mission.Status)
	}
}

// TestMissionClaim_HidesDeliveryCode pins that the claim response never
// leaks the recipient's delivery code or the attempt counter, while the rest
// of the metadata stays visible.
func TestMissionClaim_HidesDeliveryCode(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	missionID := uuid.New()
	courierID := uuid.New()
	m.dispatch.EXPECT().
		Claim(gomock.Any(), missionID, courierID).
		Return(&domain.Mission{
			ID:        missionID,
			Status:    domain.MissionClaimed,
			CourierID: &courierID,
			Metadata: map[string]any{
				domain.MetaDeliveryOtp: "4821",
				domain.MetaOtpAttempts: 0,
				domain.MetaIsSurge:     true,
			},
		}, nil)

	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/claim", nil)
	r = addChiURLParam(r, "id", missionID.String())
	w := asCourier(h.MissionClaim, r, courierID)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	mission := decodeJSON[domain.Mission](t, w.Body)
	if _, ok := mission.Metadata[domain.MetaDeliveryOtp]; ok {
		t.Error("claim response exposes the delivery code")
	}
	if _, ok := mission.Metadata[domain.MetaOtpAttempts]; ok {
		t.Error("claim response exposes the attempt counter")
	}
	if v, ok := mission.Metadata[domain.MetaIsSurge]; !ok || v != true {
		t.Errorf("surge flag lost in redaction: %v", mission.Metadata)
	}
}

func TestMissionClaim_Conflict(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	missionID := uuid.New()
	m.dispatch.EXPECT().
		Claim(gomock.Any(), missionID, gomock.Any()).
		Return(nil, e.ErrAlreadyClaimed)

	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/claim", nil)
	r = addChiURLParam(r, "id", missionID.String())
	w := asCourier(h.MissionClaim, r, uuid.New())

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestMissionClaim_NoIdentity(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _ := newHandler(ctrl)

	missionID := uuid.New()
	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/claim", nil)
	r = addChiURLParam(r, "id", missionID.String())
	w := httptest.NewRecorder()
	middleware.CourierIdentity(http.HandlerFunc(h.MissionClaim)).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestMissionClaim_BadID(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _ := newHandler(ctrl)

	r := httptest.NewRequest(http.MethodPost, "/missions/not-a-uuid/claim", nil)
	r = addChiURLParam(r, "id", "not-a-uuid")
	w := asCourier(h.MissionClaim, r, uuid.New())

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMissionRelease_NotOwner(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	missionID := uuid.New()
	m.dispatch.EXPECT().
		Release(gomock.Any(), missionID, gomock.Any(), "").
		Return(nil, e.ErrNotOwner)

	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/release", nil)
	r = addChiURLParam(r, "id", missionID.String())
	w := asCourier(h.MissionRelease, r, uuid.New())

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestMissionRelease_ReasonForwarded(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	missionID := uuid.New()
	courierID := uuid.New()
	m.dispatch.EXPECT().
		Release(gomock.Any(), missionID, courierID, "flat tire").
		Return(&domain.Mission{ID: missionID, Status: domain.MissionAvailable}, nil)

	body := bytes.NewBufferString(`{"reason":"flat tire"}`)
	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/release", body)
	r = addChiURLParam(r, "id", missionID.String())
	w := asCourier(h.MissionRelease, r, courierID)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestMissionStatus_OK(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	missionID := uuid.New()
	courierID := uuid.New()
	m.status.EXPECT().
		UpdateStatus(gomock.Any(), missionID, courierID, domain.UpdateStatusRequest{Status: domain.MissionPickedUp}).
		Return(&domain.Mission{ID: missionID, Status: domain.MissionPickedUp}, nil)

	body := bytes.NewBufferString(`{"status":"PICKED_UP"}`)
	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/status", body)
	r = addChiURLParam(r, "id", missionID.String())
	w := asCourier(h.MissionStatus, r, courierID)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestMissionStatus_IllegalTransition(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	missionID := uuid.New()
	m.status.EXPECT().
		UpdateStatus(gomock.Any(), missionID, gomock.Any(), gomock.Any()).
		Return(nil, e.ErrIllegalTransition)

	body := bytes.NewBufferString(`{"status":"DELIVERED"}`)
	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/status", body)
	r = addChiURLParam(r, "id", missionID.String())
	w := asCourier(h.MissionStatus, r, uuid.New())

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestMissionStatus_BadJSON(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _ := newHandler(ctrl)

	missionID := uuid.New()
	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/status", bytes.NewBufferString("{"))
	r = addChiURLParam(r, "id", missionID.String())
	w := asCourier(h.MissionStatus, r, uuid.New())

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestVerifyDelivery_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"wrong code", e.ErrInvalidOtp, http.StatusBadRequest},
		{"throttled", e.ErrOtpThrottled, http.StatusTooManyRequests},
		{"not owner", e.ErrNotOwner, http.StatusForbidden},
		{"not picked up", e.ErrIllegalTransition, http.StatusConflict},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			h, m := newHandler(ctrl)

			missionID := uuid.New()
			m.verify.EXPECT().
				VerifyDelivery(gomock.Any(), missionID, gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			body := bytes.NewBufferString(`{"otp":"1234"}`)
			r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/verify", body)
			r = addChiURLParam(r, "id", missionID.String())
			w := asCourier(h.MissionVerifyDelivery, r, uuid.New())

			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestVerifyDelivery_OK(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	missionID := uuid.New()
	courierID := uuid.New()
	m.verify.EXPECT().
		VerifyDelivery(gomock.Any(), missionID, courierID, domain.VerifyDeliveryRequest{Otp: "4821"}).
		Return(&domain.Mission{ID: missionID, Status: domain.MissionDelivered}, nil)

	body := bytes.NewBufferString(`{"otp":"4821"}`)
	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/verify", body)
	r = addChiURLParam(r, "id", missionID.String())
	w := asCourier(h.MissionVerifyDelivery, r, courierID)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	mission := decodeJSON[domain.Mission](t, w.Body)
	if mission.Status != domain.MissionDelivered {
		t.Fatalf("status = %s, want DELIVERED", mission.Status)
	}
}

func TestMissionLocation_Accepted(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	missionID := uuid.New()
	m.location.EXPECT().
		UpdateLocation(gomock.Any(), missionID, domain.LocationUpdateRequest{Lat: 9.95, Lng: -83.03}).
		Return(nil)

	body := bytes.NewBufferString(`{"lat":9.95,"lng":-83.03}`)
	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/location", body)
	r = addChiURLParam(r, "id", missionID.String())
	w := httptest.NewRecorder()
	h.MissionLocation(w, r)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
}

func TestMissionLocation_BadCoordinates(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	missionID := uuid.New()
	m.location.EXPECT().
		UpdateLocation(gomock.Any(), missionID, gomock.Any()).
		Return(e.ErrInvalidCoordinates)

	body := bytes.NewBufferString(`{"lat":0,"lng":0}`)
	r := httptest.NewRequest(http.MethodPost, "/missions/"+missionID.String()+"/location", body)
	r = addChiURLParam(r, "id", missionID.String())
	w := httptest.NewRecorder()
	h.MissionLocation(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestMissionGet_NotFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	missionID := uuid.New()
	m.missions.EXPECT().Get(gomock.Any(), missionID).Return(nil, e.ErrNotFound)

	r := httptest.NewRequest(http.MethodGet, "/missions/"+missionID.String(), nil)
	r = addChiURLParam(r, "id", missionID.String())
	w := httptest.NewRecorder()
	h.MissionGet(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestMyStats_OK(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	courierID := uuid.New()
	m.stats.EXPECT().
		Stats(gomock.Any(), courierID).
		Return(&domain.CourierStats{CourierID: courierID, Delivered: 7, EarningsToday: 10010}, nil)

	r := httptest.NewRequest(http.MethodGet, "/couriers/me/stats", nil)
	w := asCourier(h.MyStats, r, courierID)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	stats := decodeJSON[domain.CourierStats](t, w.Body)
	if stats.Delivered != 7 || stats.EarningsToday != 10010 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestMyStats_NoIdentity(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _ := newHandler(ctrl)

	r := httptest.NewRequest(http.MethodGet, "/couriers/me/stats", nil)
	w := httptest.NewRecorder()
	middleware.CourierIdentity(http.HandlerFunc(h.MyStats)).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestMyMissions_OK(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newHandler(ctrl)

	courierID := uuid.New()
	m.missions.EXPECT().
		ListByCourier(gomock.Any(), courierID).
		Return([]*domain.Mission{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/couriers/me/missions", nil)
	w := asCourier(h.MyMissions, r, courierID)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeJSON[map[string]any](t, w.Body)
	if resp["count"].(float64) != 2 {
		t.Fatalf("count = %v, want 2", resp["count"])
	}
}
