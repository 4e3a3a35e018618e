package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const DefaultQueueKey = "herd:notifications"

// Job is the payload pushed onto the notification queue. The external
// dispatcher owns delivery; we only guarantee enqueue-or-log.
type Job struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	BookingID  string    `json:"booking_id"`
	ClassID    string    `json:"class_id"`
	GuestID    string    `json:"guest_id"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason,omitempty"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// QueueNotifier publishes booking lifecycle jobs to a Redis list. Enqueue
// failures are logged and swallowed so a dead Redis never blocks a booking.
type QueueNotifier struct {
	client *redis.Client
	key    string
	logger logger.Logger
}

func NewQueueNotifier(client *redis.Client, key string, log logger.Logger) *QueueNotifier {
	if key == "" {
		key = DefaultQueueKey
	}
	return &QueueNotifier{
		client: client,
		key:    key,
		logger: log,
	}
}

func (n *QueueNotifier) NotifyBookingPending(ctx context.Context, b *domain.Booking) {
	n.enqueue(ctx, "booking.pending", b)
}

func (n *QueueNotifier) NotifyBookingApproved(ctx context.Context, b *domain.Booking) {
	n.enqueue(ctx, "booking.approved", b)
}

func (n *QueueNotifier) NotifyBookingDenied(ctx context.Context, b *domain.Booking) {
	n.enqueue(ctx, "booking.denied", b)
}

func (n *QueueNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	n.enqueue(ctx, "booking.cancelled", b)
}

func (n *QueueNotifier) NotifyBookingFailed(ctx context.Context, b *domain.Booking) {
	n.enqueue(ctx, "booking.failed", b)
}

func (n *QueueNotifier) NotifyBookingSettled(ctx context.Context, b *domain.Booking) {
	n.enqueue(ctx, "booking.settled", b)
}

func (n *QueueNotifier) enqueue(ctx context.Context, kind string, b *domain.Booking) {
	if n.client == nil {
		n.logger.Debug("notification skipped (queue disabled)",
			logger.String("kind", kind),
			logger.String("booking_id", b.ID),
		)
		return
	}

	job := Job{
		ID:         uuid.NewString(),
		Kind:       kind,
		BookingID:  b.ID,
		ClassID:    b.ClassID,
		GuestID:    b.GuestID,
		Status:     string(b.Status),
		EnqueuedAt: time.Now().UTC(),
	}
	if b.DenialReason != nil {
		job.Reason = *b.DenialReason
	}

	data, err := json.Marshal(job)
	if err != nil {
		n.logger.Error("failed to marshal notification job",
			logger.String("kind", kind),
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	if err := n.client.LPush(ctx, n.key, data).Err(); err != nil {
		n.logger.Error("failed to enqueue notification job",
			logger.String("kind", kind),
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	n.logger.Debug("notification job enqueued",
		logger.String("kind", kind),
		logger.String("booking_id", b.ID),
	)
}
