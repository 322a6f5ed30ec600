//go:build integration

package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;

		CREATE TABLE IF NOT EXISTS missions (
			id uuid PRIMARY KEY,
			type text NOT NULL,
			status text NOT NULL,
			order_id uuid UNIQUE,
			client_id uuid NOT NULL,
			merchant_id uuid,
			courier_id uuid,
			origin_address text NOT NULL,
			origin_lat double precision NOT NULL,
			origin_lng double precision NOT NULL,
			destination_address text NOT NULL,
			destination_lat double precision NOT NULL,
			destination_lng double precision NOT NULL,
			estimated_distance_km double precision NOT NULL DEFAULT 0,
			actual_distance_km double precision,
			estimated_price double precision NOT NULL DEFAULT 0,
			courier_earnings double precision NOT NULL DEFAULT 0,
			estimated_minutes integer NOT NULL DEFAULT 0,
			metadata jsonb NOT NULL DEFAULT '{}'::jsonb,
			version bigint NOT NULL DEFAULT 1,
			claimed_at timestamptz,
			picked_up_at timestamptz,
			released_at timestamptz,
			completed_at timestamptz,
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_missions_pool
			ON missions (status, created_at DESC) WHERE courier_id IS NULL;

		CREATE TABLE IF NOT EXISTS couriers (
			id uuid PRIMARY KEY,
			full_name text NOT NULL,
			courier_status text NOT NULL DEFAULT 'PENDING',
			is_online boolean NOT NULL DEFAULT false,
			accepts_food boolean NOT NULL DEFAULT true,
			accepts_parcel boolean NOT NULL DEFAULT true,
			accepts_rides boolean NOT NULL DEFAULT false,
			created_at timestamptz NOT NULL DEFAULT now()
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE missions, couriers`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func testRepoLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func seedMission(t *testing.T, repo *MissionRepo) *domain.Mission {
	t.Helper()
	m := &domain.Mission{
		ID:                  uuid.New(),
		Type:                domain.FoodDelivery,
		Status:              domain.MissionAvailable,
		ClientID:            uuid.New(),
		OriginAddress:       "Mercado Central, Limón",
		OriginLat:           9.65,
		OriginLng:           -82.75,
		DestinationAddress:  "Playa Bonita",
		DestinationLat:      9.67,
		DestinationLng:      -82.77,
		EstimatedDistanceKM: 3.2,
		EstimatedPrice:      1700,
		CourierEarnings:     1460,
		EstimatedMinutes:    15,
		Metadata: map[string]any{
			domain.MetaDeliveryOtp: "5512",
			domain.MetaOtpAttempts: 0,
		},
	}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("seed mission: %v", err)
	}
	return m
}

func TestMissionRepo_CreateAndGet(t *testing.T) {
	truncateAll(t)

	repo := NewMissionRepo(testPool, testRepoLogger())
	m := seedMission(t, repo)

	got, err := repo.Get(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.MissionAvailable {
		t.Fatalf("expected AVAILABLE, got %s", got.Status)
	}
	if got.Version != 1 {
		t.Fatalf("expected version 1, got %d", got.Version)
	}
	if got.MetaString(domain.MetaDeliveryOtp) != "5512" {
		t.Fatalf("metadata lost on round trip: %v", got.Metadata)
	}
}

func TestMissionRepo_ClaimCAS(t *testing.T) {
	truncateAll(t)

	repo := NewMissionRepo(testPool, testRepoLogger())
	m := seedMission(t, repo)
	ctx := context.Background()

	first := uuid.New()
	claimed, err := repo.Claim(ctx, m.ID, first, nil)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if claimed.Status != domain.MissionClaimed || claimed.CourierID == nil || *claimed.CourierID != first {
		t.Fatalf("claim did not take: %+v", claimed)
	}
	if claimed.Version != 2 {
		t.Fatalf("expected version 2 after claim, got %d", claimed.Version)
	}

	_, err = repo.Claim(ctx, m.ID, uuid.New(), nil)
	if !errors.Is(err, e.ErrAlreadyClaimed) {
		t.Fatalf("expected ErrAlreadyClaimed, got %v", err)
	}
}

// TestMissionRepo_ClaimConcurrent hammers one row from many connections.
// The row-level UPDATE guard must admit exactly one winner.
func TestMissionRepo_ClaimConcurrent(t *testing.T) {
	truncateAll(t)

	repo := NewMissionRepo(testPool, testRepoLogger())
	m := seedMission(t, repo)
	ctx := context.Background()

	const contenders = 16

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  int
		rejected int
	)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Claim(ctx, m.ID, uuid.New(), nil)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errors.Is(err, e.ErrAlreadyClaimed):
				rejected++
			default:
				t.Errorf("unexpected claim error: %v", err)
			}
		}()
	}
	wg.Wait()

	if winners != 1 {
		t.Fatalf("expected exactly 1 winner, got %d", winners)
	}
	if rejected != contenders-1 {
		t.Fatalf("expected %d rejections, got %d", contenders-1, rejected)
	}
}

func TestMissionRepo_ReleaseGuards(t *testing.T) {
	truncateAll(t)

	repo := NewMissionRepo(testPool, testRepoLogger())
	m := seedMission(t, repo)
	ctx := context.Background()

	owner := uuid.New()
	if _, err := repo.Claim(ctx, m.ID, owner, nil); err != nil {
		t.Fatalf("claim: %v", err)
	}

	// A stranger cannot release.
	_, err := repo.Release(ctx, m.ID, uuid.New(), false, nil)
	if !errors.Is(err, e.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	// The owner can, and the mission comes back clean.
	released, err := repo.Release(ctx, m.ID, owner, false, map[string]any{domain.MetaReleaseBy: owner.String()})
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if released.Status != domain.MissionAvailable || released.CourierID != nil || released.ClaimedAt != nil {
		t.Fatalf("release left residue: %+v", released)
	}
	if released.ReleasedAt == nil {
		t.Fatal("released_at not set")
	}

	// And a second claim works.
	if _, err := repo.Claim(ctx, m.ID, uuid.New(), nil); err != nil {
		t.Fatalf("reclaim after release: %v", err)
	}

	// A forced release ignores ownership.
	if _, err := repo.Release(ctx, m.ID, uuid.Nil, true, nil); err != nil {
		t.Fatalf("forced release: %v", err)
	}

	// But even forced, an AVAILABLE mission cannot be released again.
	_, err = repo.Release(ctx, m.ID, uuid.Nil, true, nil)
	if !errors.Is(err, e.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestMissionRepo_TransitionGuard(t *testing.T) {
	truncateAll(t)

	repo := NewMissionRepo(testPool, testRepoLogger())
	m := seedMission(t, repo)
	ctx := context.Background()

	owner := uuid.New()
	if _, err := repo.Claim(ctx, m.ID, owner, nil); err != nil {
		t.Fatalf("claim: %v", err)
	}

	now := time.Now().UTC()
	picked, err := repo.Transition(ctx, m.ID, domain.MissionClaimed, domain.MissionPickedUp, domain.MissionPatch{PickedUpAt: &now})
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if picked.Status != domain.MissionPickedUp || picked.PickedUpAt == nil {
		t.Fatalf("pickup not recorded: %+v", picked)
	}

	// A stale transition from CLAIMED must lose.
	_, err = repo.Transition(ctx, m.ID, domain.MissionClaimed, domain.MissionCancelled, domain.MissionPatch{})
	if !errors.Is(err, e.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	dist := 3.4
	earn := 1520.0
	done, err := repo.Transition(ctx, m.ID, domain.MissionPickedUp, domain.MissionDelivered, domain.MissionPatch{
		CompletedAt:      &now,
		ActualDistanceKM: &dist,
		CourierEarnings:  &earn,
		MetadataMerge:    map[string]any{domain.MetaVerifiedAt: now.Format(time.RFC3339)},
	})
	if err != nil {
		t.Fatalf("deliver transition: %v", err)
	}
	if done.ActualDistanceKM == nil || *done.ActualDistanceKM != dist {
		t.Fatalf("actual distance not stored: %v", done.ActualDistanceKM)
	}
	if done.CourierEarnings != earn {
		t.Fatalf("earnings not stored: %f", done.CourierEarnings)
	}
}

func TestMissionRepo_UpdateMetadataVersionGuard(t *testing.T) {
	truncateAll(t)

	repo := NewMissionRepo(testPool, testRepoLogger())
	m := seedMission(t, repo)
	ctx := context.Background()

	updated, err := repo.UpdateMetadata(ctx, m.ID, 1, map[string]any{domain.MetaOtpAttempts: 1})
	if err != nil {
		t.Fatalf("update metadata: %v", err)
	}
	if updated.MetaInt(domain.MetaOtpAttempts) != 1 {
		t.Fatalf("attempts not merged: %v", updated.Metadata)
	}
	// Existing keys survive the merge.
	if updated.MetaString(domain.MetaDeliveryOtp) != "5512" {
		t.Fatalf("merge clobbered otp: %v", updated.Metadata)
	}

	_, err = repo.UpdateMetadata(ctx, m.ID, 1, map[string]any{domain.MetaOtpAttempts: 2})
	if !errors.Is(err, e.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict on stale version, got %v", err)
	}
}

func TestMissionRepo_ListAvailableRadius(t *testing.T) {
	truncateAll(t)

	repo := NewMissionRepo(testPool, testRepoLogger())
	ctx := context.Background()

	near := seedMission(t, repo) // Limón centro

	far := &domain.Mission{
		ID:                 uuid.New(),
		Type:               domain.FoodDelivery,
		Status:             domain.MissionAvailable,
		ClientID:           uuid.New(),
		OriginAddress:      "San José centro",
		OriginLat:          9.9326,
		OriginLng:          -84.0787,
		DestinationAddress: "Escazú",
		DestinationLat:     9.9189,
		DestinationLng:     -84.1398,
	}
	if err := repo.Create(ctx, far); err != nil {
		t.Fatalf("seed far mission: %v", err)
	}

	lat, lng := 9.65, -82.75
	got, err := repo.ListAvailable(ctx, domain.AvailableFilter{Lat: &lat, Lng: &lng, RadiusKM: 10})
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(got) != 1 || got[0].ID != near.ID {
		t.Fatalf("radius filter wrong, got %d missions", len(got))
	}

	// Without coordinates both show up.
	all, err := repo.ListAvailable(ctx, domain.AvailableFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 missions, got %d", len(all))
	}
}

func TestMissionRepo_OrderUnique(t *testing.T) {
	truncateAll(t)

	repo := NewMissionRepo(testPool, testRepoLogger())
	ctx := context.Background()

	orderID := uuid.New()
	m := seedMission(t, repo)
	_ = m

	withOrder := &domain.Mission{
		ID:                 uuid.New(),
		Type:               domain.FoodDelivery,
		Status:             domain.MissionAvailable,
		OrderID:            &orderID,
		ClientID:           uuid.New(),
		OriginAddress:      "a",
		OriginLat:          9.9,
		OriginLng:          -84.0,
		DestinationAddress: "b",
		DestinationLat:     9.91,
		DestinationLng:     -84.01,
	}
	if err := repo.Create(ctx, withOrder); err != nil {
		t.Fatalf("create with order: %v", err)
	}

	dup := *withOrder
	dup.ID = uuid.New()
	err := repo.Create(ctx, &dup)
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got %v", err)
	}

	got, err := repo.GetByOrderID(ctx, orderID)
	if err != nil {
		t.Fatalf("get by order: %v", err)
	}
	if got.ID != withOrder.ID {
		t.Fatalf("wrong mission for order: %s", got.ID)
	}
}

func TestMissionRepo_StatsByCourier(t *testing.T) {
	truncateAll(t)

	repo := NewMissionRepo(testPool, testRepoLogger())
	ctx := context.Background()
	courierID := uuid.New()
	otherID := uuid.New()

	deliver := func(cid uuid.UUID, earnings float64, completedAt time.Time) {
		t.Helper()
		m := seedMission(t, repo)
		if _, err := repo.Claim(ctx, m.ID, cid, nil); err != nil {
			t.Fatalf("claim: %v", err)
		}
		if _, err := repo.Transition(ctx, m.ID, domain.MissionClaimed, domain.MissionDelivered, domain.MissionPatch{
			CompletedAt:     &completedAt,
			CourierEarnings: &earnings,
		}); err != nil {
			t.Fatalf("transition: %v", err)
		}
	}

	now := time.Now().UTC()
	deliver(courierID, 1430, now)
	deliver(courierID, 1000, now.Add(-48*time.Hour))
	deliver(otherID, 900, now)

	// A claimed mission must not count as delivered.
	open := seedMission(t, repo)
	if _, err := repo.Claim(ctx, open.ID, courierID, nil); err != nil {
		t.Fatalf("claim: %v", err)
	}

	since := now.Truncate(24 * time.Hour)
	stats, err := repo.StatsByCourier(ctx, courierID, since)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Delivered != 2 {
		t.Fatalf("delivered = %d, want 2", stats.Delivered)
	}
	if stats.EarningsToday != 1430 {
		t.Fatalf("earnings today = %.2f, want 1430", stats.EarningsToday)
	}
}

func TestCourierRepo_Verification(t *testing.T) {
	truncateAll(t)

	repo := NewCourierRepo(testPool, testRepoLogger())
	ctx := context.Background()

	id := uuid.New()
	_, err := testPool.Exec(ctx, `
		INSERT INTO couriers (id, full_name, courier_status, is_online, accepts_food, accepts_parcel, accepts_rides, created_at)
		VALUES ($1, 'María Jiménez', 'PENDING', true, true, true, false, now())
	`, id)
	if err != nil {
		t.Fatalf("seed courier: %v", err)
	}

	pending, err := repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != id {
		t.Fatalf("expected the seeded courier pending, got %d", len(pending))
	}

	verified, err := repo.SetVerification(ctx, id, domain.CourierVerified)
	if err != nil {
		t.Fatalf("set verification: %v", err)
	}
	if !verified.Verified() {
		t.Fatalf("courier not verified: %s", verified.CourierStatus)
	}

	pending, err = repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected empty pending queue, got %d", len(pending))
	}
}
