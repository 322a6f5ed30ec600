package service_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/service"
	mock_service "github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/service/mocks"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

// quietEmitter builds an emitter whose side effects are allowed but not
// asserted, for tests that only care about the dispatch outcome.
func quietEmitter(ctrl *gomock.Controller) *service.Emitter {
	cache := mock_service.NewMockPoolCache(ctrl)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).AnyTimes()

	broadcast := mock_service.NewMockBroadcaster(ctrl)
	broadcast.EXPECT().PublishMission(gomock.Any(), gomock.Any()).AnyTimes()
	broadcast.EXPECT().PublishLocation(gomock.Any(), gomock.Any()).AnyTimes()

	notify := mock_service.NewMockNotifier(ctrl)
	notify.EXPECT().NotifyMissionEvent(gomock.Any(), gomock.Any()).AnyTimes()

	callbacks := mock_service.NewMockCallbackEnqueuer(ctrl)
	callbacks.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.NewEmitter(newTestLogger(), cache, broadcast, notify, callbacks)
}

// fakeStore is an in-memory MissionRepository with the same guarded-write
// semantics as the postgres implementation. The mutex makes each mutation
// atomic, which is exactly what the single-statement UPDATEs give us in
// production, so races between goroutines here model races between service
// instances there.
type fakeStore struct {
	mu       sync.Mutex
	missions map[uuid.UUID]*domain.Mission
}

func newFakeStore(missions ...*domain.Mission) *fakeStore {
	s := &fakeStore{missions: make(map[uuid.UUID]*domain.Mission)}
	for _, m := range missions {
		cp := *m
		s.missions[m.ID] = &cp
	}
	return s
}

func (s *fakeStore) clone(m *domain.Mission) *domain.Mission {
	cp := *m
	if m.Metadata != nil {
		cp.Metadata = make(map[string]any, len(m.Metadata))
		for k, v := range m.Metadata {
			cp.Metadata[k] = v
		}
	}
	return &cp
}

func (s *fakeStore) mergeMeta(m *domain.Mission, meta map[string]any) {
	if len(meta) == 0 {
		return
	}
	if m.Metadata == nil {
		m.Metadata = make(map[string]any, len(meta))
	}
	for k, v := range meta {
		m.Metadata[k] = v
	}
}

func (s *fakeStore) Create(_ context.Context, m *domain.Mission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	m.Version = 1
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Status == "" {
		m.Status = domain.MissionAvailable
	}
	s.missions[m.ID] = s.clone(m)
	return nil
}

func (s *fakeStore) Get(_ context.Context, id uuid.UUID) (*domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.missions[id]
	if !ok {
		return nil, fmt.Errorf("fakeStore.Get: %w", e.ErrNotFound)
	}
	return s.clone(m), nil
}

func (s *fakeStore) GetByOrderID(_ context.Context, orderID uuid.UUID) (*domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.missions {
		if m.OrderID != nil && *m.OrderID == orderID {
			return s.clone(m), nil
		}
	}
	return nil, fmt.Errorf("fakeStore.GetByOrderID: %w", e.ErrNotFound)
}

func (s *fakeStore) ListAvailable(_ context.Context, filter domain.AvailableFilter) ([]*domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Mission
	for _, m := range s.missions {
		if m.Status != domain.MissionAvailable || m.CourierID != nil {
			continue
		}
		if filter.Type != nil && m.Type != *filter.Type {
			continue
		}
		out = append(out, s.clone(m))
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *fakeStore) ListByCourier(_ context.Context, courierID uuid.UUID) ([]*domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Mission
	for _, m := range s.missions {
		if m.CourierID != nil && *m.CourierID == courierID {
			out = append(out, s.clone(m))
		}
	}
	return out, nil
}

func (s *fakeStore) ListByStatus(_ context.Context, status *domain.MissionStatus) ([]*domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Mission
	for _, m := range s.missions {
		if status == nil || m.Status == *status {
			out = append(out, s.clone(m))
		}
	}
	return out, nil
}

func (s *fakeStore) ListStale(_ context.Context, olderThan time.Time) ([]*domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Mission
	for _, m := range s.missions {
		if !m.Status.Releasable() || m.ClaimedAt == nil {
			continue
		}
		if m.ClaimedAt.Before(olderThan) {
			out = append(out, s.clone(m))
		}
	}
	return out, nil
}

func (s *fakeStore) CountAvailable(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, m := range s.missions {
		if m.Status == domain.MissionAvailable && m.CourierID == nil {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) StatsByCourier(_ context.Context, courierID uuid.UUID, earningsSince time.Time) (*domain.CourierStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &domain.CourierStats{CourierID: courierID}
	for _, m := range s.missions {
		if m.Status != domain.MissionDelivered || m.CourierID == nil || *m.CourierID != courierID {
			continue
		}
		stats.Delivered++
		if m.CompletedAt != nil && !m.CompletedAt.Before(earningsSince) {
			stats.EarningsToday += m.CourierEarnings
		}
	}
	return stats, nil
}

func (s *fakeStore) Claim(_ context.Context, id, courierID uuid.UUID, meta map[string]any) (*domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.missions[id]
	if !ok {
		return nil, fmt.Errorf("fakeStore.Claim: %w", e.ErrNotFound)
	}
	if m.Status != domain.MissionAvailable || m.CourierID != nil {
		if m.CourierID != nil {
			return nil, fmt.Errorf("fakeStore.Claim: %w", e.ErrAlreadyClaimed)
		}
		return nil, fmt.Errorf("fakeStore.Claim: %w", e.ErrNotAvailable)
	}
	now := time.Now().UTC()
	cid := courierID
	m.Status = domain.MissionClaimed
	m.CourierID = &cid
	m.ClaimedAt = &now
	m.ReleasedAt = nil
	s.mergeMeta(m, meta)
	m.Version++
	m.UpdatedAt = now
	return s.clone(m), nil
}

func (s *fakeStore) Release(_ context.Context, id, courierID uuid.UUID, forced bool, meta map[string]any) (*domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.missions[id]
	if !ok {
		return nil, fmt.Errorf("fakeStore.Release: %w", e.ErrNotFound)
	}
	if !m.Status.Releasable() {
		return nil, fmt.Errorf("fakeStore.Release: %w", e.ErrIllegalTransition)
	}
	if !forced && (m.CourierID == nil || *m.CourierID != courierID) {
		return nil, fmt.Errorf("fakeStore.Release: %w", e.ErrNotOwner)
	}
	now := time.Now().UTC()
	m.Status = domain.MissionAvailable
	m.CourierID = nil
	m.ClaimedAt = nil
	m.PickedUpAt = nil
	m.ReleasedAt = &now
	s.mergeMeta(m, meta)
	m.Version++
	m.UpdatedAt = now
	return s.clone(m), nil
}

func (s *fakeStore) Transition(_ context.Context, id uuid.UUID, from, to domain.MissionStatus, patch domain.MissionPatch) (*domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.missions[id]
	if !ok {
		return nil, fmt.Errorf("fakeStore.Transition: %w", e.ErrNotFound)
	}
	if m.Status != from {
		return nil, fmt.Errorf("fakeStore.Transition: %w", e.ErrVersionConflict)
	}
	m.Status = to
	if patch.PickedUpAt != nil {
		m.PickedUpAt = patch.PickedUpAt
	}
	if patch.CompletedAt != nil {
		m.CompletedAt = patch.CompletedAt
	}
	if patch.ActualDistanceKM != nil {
		m.ActualDistanceKM = patch.ActualDistanceKM
	}
	if patch.CourierEarnings != nil {
		m.CourierEarnings = *patch.CourierEarnings
	}
	s.mergeMeta(m, patch.MetadataMerge)
	m.Version++
	m.UpdatedAt = time.Now().UTC()
	return s.clone(m), nil
}

func (s *fakeStore) UpdateMetadata(_ context.Context, id uuid.UUID, expectedVersion int64, meta map[string]any) (*domain.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.missions[id]
	if !ok {
		return nil, fmt.Errorf("fakeStore.UpdateMetadata: %w", e.ErrNotFound)
	}
	if m.Version != expectedVersion {
		return nil, fmt.Errorf("fakeStore.UpdateMetadata: %w", e.ErrVersionConflict)
	}
	s.mergeMeta(m, meta)
	m.Version++
	m.UpdatedAt = time.Now().UTC()
	return s.clone(m), nil
}

// verifiedCourier builds a courier snapshot eligible for every mission type.
func verifiedCourier(id uuid.UUID) *domain.Courier {
	return &domain.Courier{
		ID:            id,
		FullName:      "Test Courier",
		CourierStatus: domain.CourierVerified,
		IsOnline:      true,
		AcceptsFood:   true,
		AcceptsParcel: true,
		AcceptsRides:  true,
		CreatedAt:     time.Now().UTC(),
	}
}

// availableMission builds a claimable mission at the given coordinates.
func availableMission(lat, lng float64) *domain.Mission {
	return &domain.Mission{
		ID:                  uuid.New(),
		Type:                domain.FoodDelivery,
		Status:              domain.MissionAvailable,
		ClientID:            uuid.New(),
		OriginAddress:       "Mercado Central",
		OriginLat:           lat,
		OriginLng:           lng,
		DestinationAddress:  "Playa Bonita",
		DestinationLat:      lat + 0.02,
		DestinationLng:      lng + 0.02,
		EstimatedDistanceKM: 3.1,
		EstimatedPrice:      1600,
		CourierEarnings:     1430,
		EstimatedMinutes:    15,
		Metadata: map[string]any{
			domain.MetaDeliveryOtp: "4821",
			domain.MetaOtpAttempts: 0,
		},
		Version:   1,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

// fakeCouriers serves static courier snapshots.
type fakeCouriers struct {
	mu       sync.Mutex
	couriers map[uuid.UUID]*domain.Courier
}

func newFakeCouriers(couriers ...*domain.Courier) *fakeCouriers {
	s := &fakeCouriers{couriers: make(map[uuid.UUID]*domain.Courier)}
	for _, c := range couriers {
		cp := *c
		s.couriers[c.ID] = &cp
	}
	return s
}

func (s *fakeCouriers) Get(_ context.Context, id uuid.UUID) (*domain.Courier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.couriers[id]
	if !ok {
		return nil, fmt.Errorf("fakeCouriers.Get: %w", e.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (s *fakeCouriers) ListPending(_ context.Context) ([]*domain.Courier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Courier
	for _, c := range s.couriers {
		if c.CourierStatus == domain.CourierPending {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeCouriers) SetVerification(_ context.Context, id uuid.UUID, status domain.CourierStatus) (*domain.Courier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.couriers[id]
	if !ok {
		return nil, fmt.Errorf("fakeCouriers.SetVerification: %w", e.ErrNotFound)
	}
	c.CourierStatus = status
	cp := *c
	return &cp, nil
}
