package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const lapsedDenialReason = "host did not respond before the class ended"

// CheckoutCompletedInput is the metadata carried by a checkout.completed
// event, already shape-checked at the webhook boundary.
type CheckoutCompletedInput struct {
	CheckoutRef string
	ClassID     string
	GuestID     string
	Quantity    int
	Occupants   []string
	TotalPaid   int64
}

type BookingService struct {
	bookingRepo ports.BookingRepo
	classRepo   ports.ClassRepo
	notifier    ports.Notifier
	alerter     ports.OpsAlerter
	provider    ports.PaymentProvider
	feeRate     float64
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	classRepo ports.ClassRepo,
	notifier ports.Notifier,
	alerter ports.OpsAlerter,
	provider ports.PaymentProvider,
	feeRate float64,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		classRepo:   classRepo,
		notifier:    notifier,
		alerter:     alerter,
		provider:    provider,
		feeRate:     feeRate,
		logger:      logger,
	}
}

// CreateFromCheckout turns one completed checkout into a durable booking.
// Auto-approve classes go straight to approved/held behind the capacity
// check; a lost race still produces a booking row, marked failed and flagged
// for out-of-band reversal, so the attempt stays auditable.
func (s *BookingService) CreateFromCheckout(ctx context.Context, in CheckoutCompletedInput) (*domain.Booking, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if len(in.Occupants) != in.Quantity {
		return nil, fmt.Errorf("%w: occupant list must match quantity", domain.ErrValidation)
	}
	if in.TotalPaid <= 0 {
		return nil, fmt.Errorf("%w: total paid must be positive", domain.ErrValidation)
	}

	class, err := s.classRepo.GetByID(ctx, in.ClassID)
	if err != nil {
		return nil, fmt.Errorf("check class: %w", err)
	}

	fee, payout := domain.SplitTotal(in.TotalPaid, s.feeRate)

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		ClassID:       in.ClassID,
		GuestID:       in.GuestID,
		Quantity:      in.Quantity,
		Occupants:     in.Occupants,
		TotalPaid:     in.TotalPaid,
		PlatformFee:   fee,
		HostPayout:    payout,
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		CheckoutRef:   in.CheckoutRef,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if !class.AutoApprove {
		if err = s.bookingRepo.Create(ctx, booking); err != nil {
			return nil, fmt.Errorf("create booking: %w", err)
		}

		s.logger.Info("booking created pending review",
			logger.String("booking_id", booking.ID),
			logger.String("class_id", in.ClassID),
			logger.String("checkout_ref", in.CheckoutRef),
		)

		go s.notifier.NotifyBookingPending(context.WithoutCancel(ctx), booking)
		return booking, nil
	}

	booking.Status = domain.BookingStatusApproved
	booking.PaymentStatus = domain.PaymentStatusHeld
	booking.ApprovedAt = &now

	err = s.bookingRepo.CreateCapacityChecked(ctx, booking)
	if errors.Is(err, domain.ErrCapacityExceeded) {
		return s.markCapacityLost(ctx, booking)
	}
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking auto-approved",
		logger.String("booking_id", booking.ID),
		logger.String("class_id", in.ClassID),
		logger.String("checkout_ref", in.CheckoutRef),
	)

	go s.notifier.NotifyBookingApproved(context.WithoutCancel(ctx), booking)
	return booking, nil
}

// markCapacityLost records the losing side of a capacity race. The guest has
// already paid, so the row is kept for audit and the payment is flagged for
// reversal by the back office; this service never issues the reversal.
func (s *BookingService) markCapacityLost(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	reason := "class filled before payment completed"
	booking.Status = domain.BookingStatusFailed
	booking.PaymentStatus = domain.PaymentStatusFailed
	booking.ApprovedAt = nil
	booking.ReversalFlagged = true
	booking.DenialReason = &reason

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("record failed booking: %w", err)
	}

	s.logger.Warn("capacity race lost, booking failed",
		logger.String("booking_id", booking.ID),
		logger.String("class_id", booking.ClassID),
		logger.String("checkout_ref", booking.CheckoutRef),
	)

	bg := context.WithoutCancel(ctx)
	go s.alerter.Alert(bg, fmt.Sprintf(
		"capacity race lost: booking %s (checkout %s) needs a manual reversal",
		booking.ID, booking.CheckoutRef,
	))
	go s.notifier.NotifyBookingFailed(bg, booking)

	return booking, nil
}

func (s *BookingService) Approve(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, domain.BookingStatusApproved, nil)
}

func (s *BookingService) Deny(ctx context.Context, bookingID, reason string) (*domain.Booking, error) {
	var r *string
	if reason != "" {
		r = &reason
	}
	return s.transition(ctx, bookingID, domain.BookingStatusDenied, r)
}

func (s *BookingService) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	class, err := s.classRepo.GetByID(ctx, booking.ClassID)
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}
	if !time.Now().UTC().Before(class.StartsAt) {
		return nil, fmt.Errorf("%w: class already started", domain.ErrValidation)
	}

	return s.transition(ctx, bookingID, domain.BookingStatusCancelled, nil)
}

func (s *BookingService) Settle(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, domain.BookingStatusPaid, nil)
}

func (s *BookingService) transition(ctx context.Context, bookingID string, to domain.BookingStatus, reason *string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	payment, ok := domain.NextPayment(booking.Status, to)
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, booking.Status, to)
	}

	if err = s.bookingRepo.Transition(ctx, bookingID, booking.Status, to, payment, reason); err != nil {
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	from := booking.Status
	booking.Status = to
	booking.PaymentStatus = payment
	if reason != nil {
		booking.DenialReason = reason
	}

	s.logger.Info("booking transitioned",
		logger.String("booking_id", booking.ID),
		logger.String("from", string(from)),
		logger.String("to", string(to)),
	)

	bg := context.WithoutCancel(ctx)
	switch to {
	case domain.BookingStatusApproved:
		go s.notifier.NotifyBookingApproved(bg, booking)
	case domain.BookingStatusDenied:
		s.refund(bg, booking)
		go s.notifier.NotifyBookingDenied(bg, booking)
	case domain.BookingStatusCancelled:
		s.refund(bg, booking)
		go s.notifier.NotifyBookingCancelled(bg, booking)
	case domain.BookingStatusPaid:
		go s.notifier.NotifyBookingSettled(bg, booking)
	}

	return booking, nil
}

// refund is best-effort: the stored refunded payment status is the source of
// truth and the instruction can be replayed by the back office if it fails.
func (s *BookingService) refund(ctx context.Context, booking *domain.Booking) {
	if err := s.provider.Refund(ctx, booking.CheckoutRef); err != nil {
		s.logger.Error("refund instruction failed",
			logger.String("booking_id", booking.ID),
			logger.String("checkout_ref", booking.CheckoutRef),
			logger.String("error", err.Error()),
		)
		go s.alerter.Alert(ctx, fmt.Sprintf(
			"refund instruction failed for booking %s (checkout %s)",
			booking.ID, booking.CheckoutRef,
		))
	}
}

// DenyLapsed sweeps pending bookings for classes that ended without host
// action. Runs from the scheduler, not the ingestion path.
func (s *BookingService) DenyLapsed(ctx context.Context) ([]*domain.Booking, error) {
	denied, err := s.bookingRepo.DenyLapsed(ctx, lapsedDenialReason)
	if err != nil {
		return nil, fmt.Errorf("deny lapsed: %w", err)
	}

	if len(denied) > 0 {
		s.logger.Info("lapsed pending bookings denied",
			logger.Int("count", len(denied)),
		)

		bg := context.WithoutCancel(ctx)
		go func() {
			for _, b := range denied {
				s.refund(bg, b)
				s.notifier.NotifyBookingDenied(bg, b)
			}
		}()
	}

	return denied, nil
}

func (s *BookingService) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *BookingService) ListByGuest(ctx context.Context, guestID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByGuest(ctx, guestID)
}

func (s *BookingService) ListByClass(ctx context.Context, classID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByClass(ctx, classID)
}
