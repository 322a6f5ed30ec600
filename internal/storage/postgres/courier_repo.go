package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const courierColumns = `
	id, full_name, courier_status, is_online,
	accepts_food, accepts_parcel, accepts_rides, created_at`

type CourierRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCourierRepo(pool *pgxpool.Pool, logger *slog.Logger) *CourierRepo {
	return &CourierRepo{pool: pool, logger: logger}
}

func scanCourier(row pgx.Row) (*domain.Courier, error) {
	var c domain.Courier
	err := row.Scan(
		&c.ID, &c.FullName, &c.CourierStatus, &c.IsOnline,
		&c.AcceptsFood, &c.AcceptsParcel, &c.AcceptsRides, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (p *CourierRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Courier, error) {
	const op = "postgres.Courier.Get"

	query := `SELECT ` + courierColumns + ` FROM couriers WHERE id = $1`

	c, err := scanCourier(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}

func (p *CourierRepo) ListPending(ctx context.Context) ([]*domain.Courier, error) {
	const op = "postgres.Courier.ListPending"

	query := `SELECT ` + courierColumns + ` FROM couriers WHERE courier_status = 'PENDING' ORDER BY created_at ASC`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var couriers []*domain.Courier
	for rows.Next() {
		c, err := scanCourier(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		couriers = append(couriers, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return couriers, nil
}

func (p *CourierRepo) SetVerification(ctx context.Context, id uuid.UUID, status domain.CourierStatus) (*domain.Courier, error) {
	const op = "postgres.Courier.SetVerification"

	query := `
		UPDATE couriers
		SET courier_status = $2
		WHERE id = $1
		RETURNING ` + courierColumns

	c, err := scanCourier(p.pool.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return c, nil
}
