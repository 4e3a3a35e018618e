package ports

import (
	"context"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
)

// CheckoutInput is what the processor needs to open a checkout attempt. The
// metadata round-trips through the processor and comes back on the
// checkout.completed event.
type CheckoutInput struct {
	ClassID   string
	GuestID   string
	Quantity  int
	Occupants []string
	Total     int64
	HoldToken string
}

// PaymentProvider is the external processor. Creating a checkout returns the
// redirect URL plus the attempt id that later keys the booking; Refund issues
// a refund instruction for a completed attempt.
type PaymentProvider interface {
	CreateCheckout(ctx context.Context, in CheckoutInput) (*domain.CheckoutSession, error)
	Refund(ctx context.Context, checkoutRef string) error
}
