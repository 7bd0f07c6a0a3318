package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"github.com/ozzus/hotetec-gateway/internal/domain/models"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Repository, error) {
	poolCfg, err := buildPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{db: pool}, nil
}

func buildPoolConfig(dsn string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.StatementCacheCapacity = 0
	poolCfg.ConnConfig.DescriptionCacheCapacity = 0

	return poolCfg, nil
}

func (r *Repository) Close() {
	r.db.Close()
}

// Upsert stores the latest provider view of a reservation. A cancellation
// already recorded for the locator is kept.
func (r *Repository) Upsert(ctx context.Context, reservation models.Reservation) error {
	args, err := upsertArgs(reservation)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO reservations (
			locator,
			status,
			start_date,
			end_date,
			currency,
			total_amount,
			payload,
			created_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT (locator) DO UPDATE SET
			status = EXCLUDED.status,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			currency = EXCLUDED.currency,
			total_amount = EXCLUDED.total_amount,
			payload = EXCLUDED.payload,
			updated_at = now()
	`

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert reservation: %w", err)
	}

	return nil
}

// upsertArgs builds the Upsert parameters. The payload goes out as text: under
// the simple protocol pgx sends []byte as a bytea literal, which jsonb rejects.
func upsertArgs(reservation models.Reservation) ([]any, error) {
	locator := strings.TrimSpace(reservation.Locator)
	if locator == "" {
		return nil, fmt.Errorf("upsert reservation: empty locator")
	}
	reservation.Locator = locator
	reservation.Cancellation = nil

	payload, err := json.Marshal(reservation)
	if err != nil {
		return nil, fmt.Errorf("marshal reservation: %w", err)
	}

	return []any{
		locator,
		reservation.Status,
		dateOrNil(reservation.StartDate),
		dateOrNil(reservation.EndDate),
		reservation.Currency,
		reservation.TotalAmount,
		string(payload),
	}, nil
}

func (r *Repository) MarkCancelled(ctx context.Context, cancellation models.Cancellation) error {
	locator := strings.TrimSpace(cancellation.Locator)
	if locator == "" {
		return fmt.Errorf("mark reservation cancelled: empty locator")
	}

	const query = `
		INSERT INTO reservations (
			locator,
			currency,
			payload,
			cancelled_at,
			cancellation_amount,
			created_at,
			updated_at
		)
		VALUES ($1, $2, '{}'::jsonb, now(), $3, now(), now())
		ON CONFLICT (locator) DO UPDATE SET
			cancelled_at = now(),
			cancellation_amount = EXCLUDED.cancellation_amount,
			updated_at = now()
	`

	if _, err := r.db.Exec(ctx, query, locator, cancellation.Currency, cancellation.Amount); err != nil {
		return fmt.Errorf("mark reservation cancelled: %w", err)
	}

	return nil
}

// GetByLocator returns the reservation recorded by Upsert. Rows created only by
// MarkCancelled carry no reservation and read as not found.
func (r *Repository) GetByLocator(ctx context.Context, locator string) (models.Reservation, error) {
	const query = `
		SELECT payload, currency, cancelled_at, cancellation_amount
		FROM reservations
		WHERE locator = $1
	`

	var row storedReservation
	err := r.db.QueryRow(ctx, query, strings.TrimSpace(locator)).
		Scan(&row.payload, &row.currency, &row.cancelledAt, &row.cancellationAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Reservation{}, derr.ErrReservationNotFound
		}
		return models.Reservation{}, fmt.Errorf("query reservation by locator: %w", err)
	}

	return row.decode()
}

type storedReservation struct {
	payload            []byte
	currency           string
	cancelledAt        *time.Time
	cancellationAmount *float64
}

func (s storedReservation) decode() (models.Reservation, error) {
	var reservation models.Reservation
	if err := json.Unmarshal(s.payload, &reservation); err != nil {
		return models.Reservation{}, fmt.Errorf("unmarshal reservation payload: %w", err)
	}
	if reservation.Locator == "" {
		return models.Reservation{}, derr.ErrReservationNotFound
	}

	if s.cancelledAt != nil {
		cancellation := &models.Cancellation{
			Locator:     reservation.Locator,
			Currency:    s.currency,
			CancelledAt: s.cancelledAt,
		}
		if s.cancellationAmount != nil {
			cancellation.Amount = *s.cancellationAmount
		}
		reservation.Cancellation = cancellation
	}

	return reservation, nil
}

func dateOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
