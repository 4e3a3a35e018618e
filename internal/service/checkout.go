package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CheckoutService struct {
	classRepo ports.ClassRepo
	holds     ports.HoldStore
	provider  ports.PaymentProvider
	feeRate   float64
	holdTTL   time.Duration
	logger    logger.Logger
}

func NewCheckoutService(
	classRepo ports.ClassRepo,
	holds ports.HoldStore,
	provider ports.PaymentProvider,
	feeRate float64,
	holdTTL time.Duration,
	logger logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		classRepo: classRepo,
		holds:     holds,
		provider:  provider,
		feeRate:   feeRate,
		holdTTL:   holdTTL,
		logger:    logger,
	}
}

// Initiate opens a checkout attempt at the processor after parking a
// provisional hold on the seats. The hold expires on its own if the guest
// abandons the checkout page; the attempt id in the returned session is the
// key reconciliation will see on the completion event.
func (s *CheckoutService) Initiate(ctx context.Context, classID, guestID string, quantity int, occupants []string) (*domain.CheckoutSession, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if len(occupants) != quantity {
		return nil, fmt.Errorf("%w: occupant list must match quantity", domain.ErrValidation)
	}

	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("check class: %w", err)
	}
	if class.Retired || !time.Now().UTC().Before(class.StartsAt) {
		return nil, domain.ErrClassNotBookable
	}

	taken, err := s.classRepo.SeatsTaken(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("seats taken: %w", err)
	}

	held, err := s.holds.ActiveSeats(ctx, classID)
	if err != nil {
		// Degrade to the database view; the insert transaction still owns
		// the capacity invariant.
		s.logger.Warn("hold store unavailable",
			logger.String("class_id", classID),
			logger.String("error", err.Error()),
		)
		held = 0
	}

	if taken+held+quantity > class.MaxSeats {
		return nil, domain.ErrHoldUnavailable
	}

	token, err := s.holds.Place(ctx, classID, quantity, s.holdTTL)
	if err != nil {
		s.logger.Warn("placing seat hold failed",
			logger.String("class_id", classID),
			logger.String("error", err.Error()),
		)
		token = ""
	}

	total := domain.QuoteTotal(class.PricePerSeat*int64(quantity), s.feeRate)

	// The hold token rides the processor metadata so reconciliation can
	// release the hold as soon as the completion event lands.
	session, err := s.provider.CreateCheckout(ctx, ports.CheckoutInput{
		ClassID:   classID,
		GuestID:   guestID,
		Quantity:  quantity,
		Occupants: occupants,
		Total:     total,
		HoldToken: token,
	})
	if err != nil {
		if token != "" {
			if relErr := s.holds.Release(ctx, classID, token); relErr != nil {
				s.logger.Warn("releasing seat hold failed",
					logger.String("class_id", classID),
					logger.String("error", relErr.Error()),
				)
			}
		}
		return nil, fmt.Errorf("create checkout: %w", err)
	}

	s.logger.Info("checkout initiated",
		logger.String("class_id", classID),
		logger.String("guest_id", guestID),
		logger.Int("quantity", quantity),
		logger.String("attempt_id", session.AttemptID),
	)

	return session, nil
}
