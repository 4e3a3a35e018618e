package ports

import (
	"context"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
)

type BookingRepo interface {
	// Create inserts the booking as-is, with no capacity gate. Used for
	// pending (manual-approval) bookings and for failed markers.
	Create(ctx context.Context, b *domain.Booking) error
	// CreateCapacityChecked inserts the booking atomically against the seat
	// count of its class, returning domain.ErrCapacityExceeded when the
	// requested quantity no longer fits.
	CreateCapacityChecked(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Transition applies a status/payment-status pair guarded on the current
	// status; a guard miss surfaces as domain.ErrInvalidTransition and an
	// unknown booking as domain.ErrBookingNotFound. Capacity is re-checked
	// when the target status occupies seats.
	Transition(ctx context.Context, id string, from, to domain.BookingStatus, payment domain.PaymentStatus, reason *string) error
	ListByGuest(ctx context.Context, guestID string) ([]*domain.Booking, error)
	ListByClass(ctx context.Context, classID string) ([]*domain.Booking, error)
	// DenyLapsed sweeps pending bookings whose class has ended into
	// denied/refunded and returns the swept rows.
	DenyLapsed(ctx context.Context, reason string) ([]*domain.Booking, error)
}
