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

const bookingColumns = `id, class_id, guest_id, quantity, occupants, total_paid, platform_fee,
			  host_payout, status, payment_status, checkout_ref, denial_reason,
			  reversal_flagged, created_at, approved_at, denied_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.ClassID, b.GuestID, b.Quantity, pq.Array(b.Occupants),
		b.TotalPaid, b.PlatformFee, b.HostPayout,
		b.Status, b.PaymentStatus, b.CheckoutRef, b.DenialReason,
		b.ReversalFlagged, b.CreatedAt, b.ApprovedAt, b.DeniedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAttemptAlreadyClaimed
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

// CreateCapacityChecked holds the class row for the duration of the
// transaction so two checkout completions racing for the last seats
// serialize, and only one insert can win.
func (r *BookingRepository) CreateCapacityChecked(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	maxSeats, taken, err := lockClassSeats(ctx, tx, b.ClassID)
	if err != nil {
		return err
	}

	if taken+b.Quantity > maxSeats {
		return domain.ErrCapacityExceeded
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.ClassID, b.GuestID, b.Quantity, pq.Array(b.Occupants),
		b.TotalPaid, b.PlatformFee, b.HostPayout,
		b.Status, b.PaymentStatus, b.CheckoutRef, b.DenialReason,
		b.ReversalFlagged, b.CreatedAt, b.ApprovedAt, b.DeniedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAttemptAlreadyClaimed
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// Transition applies one state-machine edge. The status guard in the WHERE
// clause is what rejects stale or concurrent attempts; when the target status
// occupies seats the class row is locked and capacity re-checked first.
func (r *BookingRepository) Transition(
	ctx context.Context,
	id string,
	from, to domain.BookingStatus,
	payment domain.PaymentStatus,
	reason *string,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var classID string
	var quantity int
	lockQuery := `SELECT class_id, quantity FROM bookings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&classID, &quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("lock booking: %w", err)
	}

	if seatCounted(to) {
		maxSeats, taken, err := lockClassSeats(ctx, tx, classID)
		if err != nil {
			return err
		}
		if taken+quantity > maxSeats {
			return domain.ErrCapacityExceeded
		}
	}

	query := `UPDATE bookings
			  SET status = $3,
			      payment_status = $4,
			      denial_reason = COALESCE($5, denial_reason),
			      approved_at = CASE WHEN $3 = 'approved' THEN NOW() ELSE approved_at END,
			      denied_at = CASE WHEN $3 = 'denied' THEN NOW() ELSE denied_at END,
			      updated_at = NOW()
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(ctx, query, id, from, to, payment, reason)
	if err != nil {
		return fmt.Errorf("transition booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		// The row exists (locked above), so the status guard missed.
		return domain.ErrInvalidTransition
	}

	return tx.Commit()
}

func (r *BookingRepository) ListByGuest(ctx context.Context, guestID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE guest_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, guestID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by guest: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByClass(ctx context.Context, classID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE class_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, classID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by class: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) DenyLapsed(ctx context.Context, reason string) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings b
        SET status = $2, payment_status = $3, denial_reason = $4,
            denied_at = NOW(), updated_at = NOW()
        FROM classes c
        WHERE b.class_id = c.id
          AND b.status = $1
          AND c.ends_at < NOW()
        RETURNING b.id, b.class_id, b.guest_id, b.quantity, b.occupants, b.total_paid,
                  b.platform_fee, b.host_payout, b.status, b.payment_status, b.checkout_ref,
                  b.denial_reason, b.reversal_flagged, b.created_at, b.approved_at,
                  b.denied_at, b.updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusDenied,
		domain.PaymentStatusRefunded, reason,
	)
	if err != nil {
		return nil, fmt.Errorf("deny lapsed: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func lockClassSeats(ctx context.Context, tx *sql.Tx, classID string) (maxSeats, taken int, err error) {
	seatQuery := `SELECT max_seats FROM classes WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, seatQuery, classID).Scan(&maxSeats); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, domain.ErrClassNotFound
		}
		return 0, 0, fmt.Errorf("get max seats: %w", err)
	}

	takenQuery := `SELECT COALESCE(SUM(quantity), 0) FROM bookings
              WHERE class_id = $1 AND status = ANY($2)`
	if err = tx.QueryRowContext(
		ctx, takenQuery, classID,
		pq.Array(domain.SeatCountedStatuses),
	).Scan(&taken); err != nil {
		return 0, 0, fmt.Errorf("sum booked seats: %w", err)
	}

	return maxSeats, taken, nil
}

func seatCounted(s domain.BookingStatus) bool {
	for _, c := range domain.SeatCountedStatuses {
		if s == c {
			return true
		}
	}
	return false
}

func scanBooking(scan func(...any) error) (*domain.Booking, error) {
	var b domain.Booking
	err := scan(
		&b.ID, &b.ClassID, &b.GuestID, &b.Quantity, pq.Array(&b.Occupants),
		&b.TotalPaid, &b.PlatformFee, &b.HostPayout,
		&b.Status, &b.PaymentStatus, &b.CheckoutRef, &b.DenialReason,
		&b.ReversalFlagged, &b.CreatedAt, &b.ApprovedAt, &b.DeniedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
