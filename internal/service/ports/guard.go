package ports

import (
	"context"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
)

// EventGuard deduplicates inbound processor traffic at two granularities:
// one per delivered event, one per checkout attempt. Both report whether the
// key was new; a repeat is a no-op, not an error. The Release pair undoes a
// record whose downstream work failed, so the key is free again when the
// processor redelivers.
type EventGuard interface {
	RecordEvent(ctx context.Context, ev *domain.PaymentEvent) (isNew bool, err error)
	ClaimAttempt(ctx context.Context, attemptID string) (claimed bool, err error)
	ReleaseEvent(ctx context.Context, providerEventID string) error
	ReleaseAttempt(ctx context.Context, attemptID string) error
}
