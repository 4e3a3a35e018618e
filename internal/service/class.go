package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service/ports"
)

type ClassService struct {
	repo        ports.ClassRepo
	bookingRepo ports.BookingRepo
	holds       ports.HoldStore
	feeRate     float64
}

func NewClassService(repo ports.ClassRepo, bookingRepo ports.BookingRepo, holds ports.HoldStore, feeRate float64) *ClassService {
	return &ClassService{
		repo:        repo,
		bookingRepo: bookingRepo,
		holds:       holds,
		feeRate:     feeRate,
	}
}

func (s *ClassService) CreateClass(ctx context.Context, input domain.CreateClassInput) (*domain.Class, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.HostID == "" {
		return nil, fmt.Errorf("%w: host_id is required", domain.ErrValidation)
	}
	if input.MaxSeats <= 0 {
		return nil, fmt.Errorf("%w: max_seats must be positive", domain.ErrValidation)
	}
	if input.PricePerSeat < 0 {
		return nil, fmt.Errorf("%w: price_per_seat must not be negative", domain.ErrValidation)
	}
	if !input.StartsAt.Before(input.EndsAt) {
		return nil, fmt.Errorf("%w: starts_at must be before ends_at", domain.ErrValidation)
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}

	class := &domain.Class{
		ID:           uuid.New().String(),
		HostID:       input.HostID,
		Title:        input.Title,
		Description:  input.Description,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
		MaxSeats:     input.MaxSeats,
		PricePerSeat: input.PricePerSeat,
		AutoApprove:  input.AutoApprove,
	}

	if err := s.repo.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}

	return class, nil
}

func (s *ClassService) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClassService) List(ctx context.Context) ([]*domain.Class, error) {
	return s.repo.List(ctx)
}

func (s *ClassService) GetDetails(ctx context.Context, id string) (*domain.ClassDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	held, err := s.holds.ActiveSeats(ctx, id)
	if err == nil {
		details.AvailableSeats -= held
		if details.AvailableSeats < 0 {
			details.AvailableSeats = 0
		}
	}

	bookings, err := s.bookingRepo.ListByClass(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details.Bookings = make([]domain.Booking, len(bookings))
	for i, b := range bookings {
		details.Bookings[i] = *b
	}

	return details, nil
}

// Availability is the number the booking UI shows before letting a guest
// pick a seat count: confirmed seats and live checkout holds both count
// against capacity. Hold-store failures degrade to the database view.
func (s *ClassService) Availability(ctx context.Context, classID string) (int, error) {
	class, err := s.repo.GetByID(ctx, classID)
	if err != nil {
		return 0, err
	}

	taken, err := s.repo.SeatsTaken(ctx, classID)
	if err != nil {
		return 0, fmt.Errorf("seats taken: %w", err)
	}

	held, err := s.holds.ActiveSeats(ctx, classID)
	if err != nil {
		held = 0
	}

	available := class.MaxSeats - taken - held
	if available < 0 {
		available = 0
	}

	return available, nil
}

// Quote prices a seat count with the fee layered on top of the host's asking
// price, then splits the total with the same function reconciliation uses,
// so the estimate always matches the authoritative breakdown.
func (s *ClassService) Quote(ctx context.Context, classID string, quantity int) (*domain.Quote, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	class, err := s.repo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	total := domain.QuoteTotal(class.PricePerSeat*int64(quantity), s.feeRate)
	fee, payout := domain.SplitTotal(total, s.feeRate)

	return &domain.Quote{
		ClassID:     classID,
		Quantity:    quantity,
		Total:       total,
		PlatformFee: fee,
		HostPayout:  payout,
	}, nil
}
