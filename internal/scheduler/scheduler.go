package scheduler

import (
	"context"
	"time"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type lapsedDenier interface {
	DenyLapsed(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler sweeps pending bookings whose class already ended. The host can
// no longer usefully answer, so the sweep denies them and triggers refunds.
type Scheduler struct {
	bookingService lapsedDenier
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService lapsedDenier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	denied, err := s.bookingService.DenyLapsed(ctx)
	if err != nil {
		s.logger.Error("failed to deny lapsed bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range denied {
		s.logger.Info("pending booking lapsed",
			logger.String("booking_id", b.ID),
			logger.String("guest_id", b.GuestID),
			logger.String("class_id", b.ClassID),
		)
	}
}
