package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ClassRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClassRepo(db *dbpg.DB) *ClassRepository {
	return &ClassRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ClassRepository) Create(ctx context.Context, cl *domain.Class) error {
	query := `INSERT INTO classes (id, host_id, title, description, starts_at, ends_at,
			  max_seats, price_per_seat, auto_approve, retired, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		cl.ID, cl.HostID, cl.Title, cl.Description, cl.StartsAt, cl.EndsAt,
		cl.MaxSeats, cl.PricePerSeat, cl.AutoApprove, cl.Retired, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert class: %w", err)
	}

	return nil
}

func (r *ClassRepository) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	query := `SELECT id, host_id, title, description, starts_at, ends_at, max_seats,
			  		price_per_seat, auto_approve, retired, created_at, updated_at
			  FROM classes
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}

	var cl domain.Class
	if err = row.Scan(
		&cl.ID, &cl.HostID, &cl.Title, &cl.Description, &cl.StartsAt, &cl.EndsAt,
		&cl.MaxSeats, &cl.PricePerSeat, &cl.AutoApprove, &cl.Retired, &cl.CreatedAt, &cl.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("scan class: %w", err)
	}

	return &cl, nil
}

func (r *ClassRepository) List(ctx context.Context) ([]*domain.Class, error) {
	query := `SELECT id, host_id, title, description, starts_at, ends_at, max_seats,
			  		price_per_seat, auto_approve, retired, created_at, updated_at
			  FROM classes
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var res []*domain.Class
	for rows.Next() {
		var cl domain.Class
		if err = rows.Scan(
			&cl.ID, &cl.HostID, &cl.Title, &cl.Description, &cl.StartsAt, &cl.EndsAt,
			&cl.MaxSeats, &cl.PricePerSeat, &cl.AutoApprove, &cl.Retired, &cl.CreatedAt, &cl.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		res = append(res, &cl)
	}

	return res, rows.Err()
}

func (r *ClassRepository) SeatsTaken(ctx context.Context, classID string) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM bookings
			  WHERE class_id = $1 AND status = ANY($2)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, classID, pq.Array(domain.SeatCountedStatuses))
	if err != nil {
		return 0, fmt.Errorf("seats taken: %w", err)
	}

	var taken int
	if err = row.Scan(&taken); err != nil {
		return 0, fmt.Errorf("scan seats taken: %w", err)
	}

	return taken, nil
}

func (r *ClassRepository) GetDetails(ctx context.Context, classID string) (*domain.ClassDetails, error) {
	query := `
		SELECT
            c.id, c.host_id, c.title, c.description, c.starts_at, c.ends_at,
            c.max_seats, c.price_per_seat, c.auto_approve, c.retired,
            c.created_at, c.updated_at,
            GREATEST(c.max_seats - COALESCE(SUM(b.quantity), 0), 0) AS available_seats
        FROM classes c
        LEFT JOIN bookings b
            ON b.class_id = c.id
            AND b.status = ANY($2)
        WHERE c.id = $1
        GROUP BY c.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, classID, pq.Array(domain.SeatCountedStatuses))
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	var d domain.ClassDetails
	err = row.Scan(
		&d.Class.ID, &d.Class.HostID, &d.Class.Title, &d.Class.Description,
		&d.Class.StartsAt, &d.Class.EndsAt, &d.Class.MaxSeats, &d.Class.PricePerSeat,
		&d.Class.AutoApprove, &d.Class.Retired, &d.Class.CreatedAt, &d.Class.UpdatedAt,
		&d.AvailableSeats,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("scan class details: %w", err)
	}

	return &d, nil
}
