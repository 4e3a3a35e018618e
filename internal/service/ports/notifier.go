package ports

import (
	"context"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
)

// Notifier enqueues jobs for the external notification dispatcher. Calls are
// fire-and-forget: implementations log enqueue failures and never surface
// them to the booking flow.
type Notifier interface {
	NotifyBookingPending(ctx context.Context, b *domain.Booking)
	NotifyBookingApproved(ctx context.Context, b *domain.Booking)
	NotifyBookingDenied(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking)
	NotifyBookingFailed(ctx context.Context, b *domain.Booking)
	NotifyBookingSettled(ctx context.Context, b *domain.Booking)
}

// OpsAlerter pages the operator channel about conditions that need a human,
// like a lost capacity race waiting on a manual reversal.
type OpsAlerter interface {
	Alert(ctx context.Context, text string)
}
