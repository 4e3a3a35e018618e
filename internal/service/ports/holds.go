package ports

import (
	"context"
	"time"
)

// HoldStore parks provisional seat holds while a guest is out at the
// processor's checkout page. Holds expire on their own; they narrow the
// window in which two checkouts can race for the last seats, the database
// transaction stays authoritative.
type HoldStore interface {
	// Place reserves seats for a class and returns a hold token.
	Place(ctx context.Context, classID string, seats int, ttl time.Duration) (string, error)
	// ActiveSeats is the live held seat count for a class.
	ActiveSeats(ctx context.Context, classID string) (int, error)
	// Release drops a hold early, e.g. when checkout creation fails.
	Release(ctx context.Context, classID, token string) error
}
