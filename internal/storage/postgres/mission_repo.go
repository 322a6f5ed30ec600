package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const missionColumns = `
	id, type, status, order_id, client_id, merchant_id, courier_id,
	origin_address, origin_lat, origin_lng,
	destination_address, destination_lat, destination_lng,
	estimated_distance_km, actual_distance_km,
	estimated_price, courier_earnings, estimated_minutes,
	metadata, version,
	claimed_at, picked_up_at, released_at, completed_at,
	created_at, updated_at`

type MissionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewMissionRepo(pool *pgxpool.Pool, logger *slog.Logger) *MissionRepo {
	return &MissionRepo{pool: pool, logger: logger}
}

func scanMission(row pgx.Row) (*domain.Mission, error) {
	var m domain.Mission
	var metaRaw []byte
	err := row.Scan(
		&m.ID, &m.Type, &m.Status, &m.OrderID, &m.ClientID, &m.MerchantID, &m.CourierID,
		&m.OriginAddress, &m.OriginLat, &m.OriginLng,
		&m.DestinationAddress, &m.DestinationLat, &m.DestinationLng,
		&m.EstimatedDistanceKM, &m.ActualDistanceKM,
		&m.EstimatedPrice, &m.CourierEarnings, &m.EstimatedMinutes,
		&metaRaw, &m.Version,
		&m.ClaimedAt, &m.PickedUpAt, &m.ReleasedAt, &m.CompletedAt,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(metaRaw) > 0 {
		if err := json.Unmarshal(metaRaw, &m.Metadata); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

func marshalMeta(meta map[string]any) ([]byte, error) {
	if meta == nil {
		meta = map[string]any{}
	}
	return json.Marshal(meta)
}

func (p *MissionRepo) Create(ctx context.Context, m *domain.Mission) error {
	const op = "postgres.Mission.Create"

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	m.UpdatedAt = m.CreatedAt
	if m.Status == "" {
		m.Status = domain.MissionAvailable
	}
	if m.Version == 0 {
		m.Version = 1
	}

	metaRaw, err := marshalMeta(m.Metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO missions (
			id, type, status, order_id, client_id, merchant_id, courier_id,
			origin_address, origin_lat, origin_lng,
			destination_address, destination_lat, destination_lng,
			estimated_distance_km, estimated_price, courier_earnings, estimated_minutes,
			metadata, version, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,NULL,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$19)
	`

	_, err = p.pool.Exec(ctx, query,
		m.ID, m.Type, m.Status, m.OrderID, m.ClientID, m.MerchantID,
		m.OriginAddress, m.OriginLat, m.OriginLng,
		m.DestinationAddress, m.DestinationLat, m.DestinationLng,
		m.EstimatedDistanceKM, m.EstimatedPrice, m.CourierEarnings, m.EstimatedMinutes,
		metaRaw, m.Version, m.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *MissionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Mission, error) {
	const op = "postgres.Mission.Get"

	query := `SELECT ` + missionColumns + ` FROM missions WHERE id = $1`

	m, err := scanMission(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return m, nil
}

func (p *MissionRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Mission, error) {
	const op = "postgres.Mission.GetByOrderID"

	query := `SELECT ` + missionColumns + ` FROM missions WHERE order_id = $1`

	m, err := scanMission(p.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return m, nil
}

func (p *MissionRepo) queryMissions(ctx context.Context, op, query string, args ...any) ([]*domain.Mission, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var missions []*domain.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		missions = append(missions, m)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return missions, nil
}

// ListAvailable surfaces the claimable pool. Coordinates are stored as plain
// columns; the radius search builds the geography point inline and compares
// against the mission origin with ST_DWithin.
func (p *MissionRepo) ListAvailable(ctx context.Context, filter domain.AvailableFilter) ([]*domain.Mission, error) {
	const op = "postgres.Mission.ListAvailable"

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `SELECT ` + missionColumns + `
		FROM missions
		WHERE status = 'AVAILABLE' AND courier_id IS NULL
		  AND ($1::text IS NULL OR type = $1)
		  AND (
			$2::float8 IS NULL
			OR ST_DWithin(
				ST_SetSRID(ST_MakePoint(origin_lng, origin_lat), 4326)::geography,
				ST_SetSRID(ST_MakePoint($3, $2), 4326)::geography,
				$4 * 1000
			)
		  )
		ORDER BY created_at DESC
		LIMIT $5`

	var typeArg *string
	if filter.Type != nil {
		s := string(*filter.Type)
		typeArg = &s
	}

	radius := filter.RadiusKM
	if radius <= 0 {
		radius = 5
	}

	return p.queryMissions(ctx, op, query, typeArg, filter.Lat, filter.Lng, radius, limit)
}

func (p *MissionRepo) ListByCourier(ctx context.Context, courierID uuid.UUID) ([]*domain.Mission, error) {
	const op = "postgres.Mission.ListByCourier"

	query := `SELECT ` + missionColumns + ` FROM missions WHERE courier_id = $1 ORDER BY updated_at DESC`
	return p.queryMissions(ctx, op, query, courierID)
}

func (p *MissionRepo) ListByStatus(ctx context.Context, status *domain.MissionStatus) ([]*domain.Mission, error) {
	const op = "postgres.Mission.ListByStatus"

	query := `SELECT ` + missionColumns + `
		FROM missions
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY updated_at DESC`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}
	return p.queryMissions(ctx, op, query, statusArg)
}

// ListStale finds missions stuck in CLAIMED/PICKED_UP whose last update
// predates the SLA cutoff. Consumed by the reaper.
func (p *MissionRepo) ListStale(ctx context.Context, olderThan time.Time) ([]*domain.Mission, error) {
	const op = "postgres.Mission.ListStale"

	query := `SELECT ` + missionColumns + `
		FROM missions
		WHERE status IN ('CLAIMED','PICKED_UP') AND updated_at < $1
		ORDER BY updated_at ASC`

	return p.queryMissions(ctx, op, query, olderThan)
}

func (p *MissionRepo) CountAvailable(ctx context.Context) (int64, error) {
	const op = "postgres.Mission.CountAvailable"

	var n int64
	err := p.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM missions WHERE status = 'AVAILABLE' AND courier_id IS NULL`,
	).Scan(&n)
	if err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return n, nil
}

// StatsByCourier aggregates the courier's delivered missions: lifetime count
// plus earnings on missions completed at or after earningsSince.
func (p *MissionRepo) StatsByCourier(ctx context.Context, courierID uuid.UUID, earningsSince time.Time) (*domain.CourierStats, error) {
	const op = "postgres.Mission.StatsByCourier"

	const query = `
		SELECT COUNT(*),
			COALESCE(SUM(courier_earnings) FILTER (WHERE completed_at >= $2), 0)
		FROM missions
		WHERE courier_id = $1 AND status = 'DELIVERED'`

	stats := domain.CourierStats{CourierID: courierID}
	err := p.pool.QueryRow(ctx, query, courierID, earningsSince).Scan(&stats.Delivered, &stats.EarningsToday)
	if err != nil {
		p.logger.Error("db stats failed", slog.String("op", op), slog.Any("error", err), slog.String("courier_id", courierID.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return &stats, nil
}

// Claim is the single compare-and-swap every ownership transfer funnels
// through. The WHERE clause is the race arbiter: of N concurrent claims on
// one mission, exactly one UPDATE matches the row.
func (p *MissionRepo) Claim(ctx context.Context, id, courierID uuid.UUID, meta map[string]any) (*domain.Mission, error) {
	const op = "postgres.Mission.Claim"

	metaRaw, err := marshalMeta(meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	query := `
		UPDATE missions
		SET status = 'CLAIMED',
			courier_id = $2,
			claimed_at = now(),
			released_at = NULL,
			metadata = COALESCE(metadata, '{}'::jsonb) || $3::jsonb,
			version = version + 1,
			updated_at = now()
		WHERE id = $1 AND status = 'AVAILABLE' AND courier_id IS NULL
		RETURNING ` + missionColumns

	m, err := scanMission(p.pool.QueryRow(ctx, query, id, courierID, metaRaw))
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db claim failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	// Zero rows: classify why the guard did not hold.
	current, err := p.Get(ctx, id)
	if err != nil {
		return nil, err // already wrapped, NotFound included
	}
	if current.CourierID != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrAlreadyClaimed)
	}
	return nil, fmt.Errorf("%s: %w", op, e.ErrNotAvailable)
}

// Release returns a mission to the pool through the same guarded-update
// shape as Claim. Courier-initiated and reaper-forced releases share this
// one code path.
func (p *MissionRepo) Release(ctx context.Context, id, courierID uuid.UUID, forced bool, meta map[string]any) (*domain.Mission, error) {
	const op = "postgres.Mission.Release"

	metaRaw, err := marshalMeta(meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	query := `
		UPDATE missions
		SET status = 'AVAILABLE',
			courier_id = NULL,
			claimed_at = NULL,
			picked_up_at = NULL,
			released_at = now(),
			metadata = COALESCE(metadata, '{}'::jsonb) || $3::jsonb,
			version = version + 1,
			updated_at = now()
		WHERE id = $1
		  AND status IN ('CLAIMED','PICKED_UP')
		  AND ($4 OR courier_id = $2)
		RETURNING ` + missionColumns

	m, err := scanMission(p.pool.QueryRow(ctx, query, id, courierID, metaRaw, forced))
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db release failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	current, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.Releasable() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrIllegalTransition)
	}
	return nil, fmt.Errorf("%s: %w", op, e.ErrNotOwner)
}

// Transition applies from -> to plus the patch in one statement. The from
// guard makes stale writes lose cleanly instead of clobbering newer state.
func (p *MissionRepo) Transition(ctx context.Context, id uuid.UUID, from, to domain.MissionStatus, patch domain.MissionPatch) (*domain.Mission, error) {
	const op = "postgres.Mission.Transition"

	metaRaw, err := marshalMeta(patch.MetadataMerge)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	query := `
		UPDATE missions
		SET status = $3,
			picked_up_at = COALESCE($4, picked_up_at),
			completed_at = COALESCE($5, completed_at),
			actual_distance_km = COALESCE($6, actual_distance_km),
			courier_earnings = COALESCE($7, courier_earnings),
			metadata = COALESCE(metadata, '{}'::jsonb) || $8::jsonb,
			version = version + 1,
			updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING ` + missionColumns

	m, err := scanMission(p.pool.QueryRow(ctx, query,
		id, from, to,
		patch.PickedUpAt, patch.CompletedAt,
		patch.ActualDistanceKM, patch.CourierEarnings,
		metaRaw,
	))
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db transition failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	if _, err := p.Get(ctx, id); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%s: %w", op, e.ErrVersionConflict)
}

func (p *MissionRepo) UpdateMetadata(ctx context.Context, id uuid.UUID, expectedVersion int64, meta map[string]any) (*domain.Mission, error) {
	const op = "postgres.Mission.UpdateMetadata"

	metaRaw, err := marshalMeta(meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	query := `
		UPDATE missions
		SET metadata = COALESCE(metadata, '{}'::jsonb) || $3::jsonb,
			version = version + 1,
			updated_at = now()
		WHERE id = $1 AND version = $2
		RETURNING ` + missionColumns

	m, err := scanMission(p.pool.QueryRow(ctx, query, id, expectedVersion, metaRaw))
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db metadata update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	if _, err := p.Get(ctx, id); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%s: %w", op, e.ErrVersionConflict)
}
