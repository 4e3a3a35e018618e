package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type classFixtures struct {
	repo        *mocks.MockClassRepo
	bookingRepo *mocks.MockBookingRepo
	holds       *mocks.MockHoldStore
	svc         *ClassService
}

func newClassFixtures(t *testing.T) *classFixtures {
	t.Helper()
	f := &classFixtures{
		repo:        mocks.NewMockClassRepo(t),
		bookingRepo: mocks.NewMockBookingRepo(t),
		holds:       mocks.NewMockHoldStore(t),
	}
	f.svc = NewClassService(f.repo, f.bookingRepo, f.holds, 0.15)
	return f
}

func validClassInput() domain.CreateClassInput {
	return domain.CreateClassInput{
		HostID:       uuid.NewString(),
		Title:        "Pasture-raised poultry basics",
		Description:  "A half-day walk-through of the brooder and field pens.",
		StartsAt:     time.Now().Add(72 * time.Hour),
		EndsAt:       time.Now().Add(76 * time.Hour),
		MaxSeats:     12,
		PricePerSeat: 4500,
		AutoApprove:  false,
	}
}

func TestCreateClass(t *testing.T) {
	f := newClassFixtures(t)

	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validClassInput()
	class, err := f.svc.CreateClass(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, class.ID)
	assert.Equal(t, input.HostID, class.HostID)
	assert.Equal(t, input.MaxSeats, class.MaxSeats)
	assert.Equal(t, input.PricePerSeat, class.PricePerSeat)
}

func TestCreateClass_Validation(t *testing.T) {
	f := newClassFixtures(t)

	tests := []struct {
		name   string
		mutate func(*domain.CreateClassInput)
	}{
		{name: "empty title", mutate: func(in *domain.CreateClassInput) { in.Title = "" }},
		{name: "empty host", mutate: func(in *domain.CreateClassInput) { in.HostID = "" }},
		{name: "zero seats", mutate: func(in *domain.CreateClassInput) { in.MaxSeats = 0 }},
		{name: "negative price", mutate: func(in *domain.CreateClassInput) { in.PricePerSeat = -1 }},
		{name: "ends before starts", mutate: func(in *domain.CreateClassInput) { in.EndsAt = in.StartsAt.Add(-time.Hour) }},
		{name: "starts in the past", mutate: func(in *domain.CreateClassInput) {
			in.StartsAt = time.Now().Add(-time.Hour)
			in.EndsAt = time.Now().Add(time.Hour)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validClassInput()
			tt.mutate(&input)

			_, err := f.svc.CreateClass(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAvailability(t *testing.T) {
	classID := uuid.NewString()

	tests := []struct {
		name     string
		maxSeats int
		taken    int
		held     int
		holdErr  error
		want     int
	}{
		{name: "seats remain", maxSeats: 10, taken: 4, held: 3, want: 3},
		{name: "holds exhaust capacity", maxSeats: 10, taken: 6, held: 5, want: 0},
		{name: "hold store down degrades to db view", maxSeats: 10, taken: 4, held: 0, holdErr: assert.AnError, want: 6},
		{name: "fully booked", maxSeats: 8, taken: 8, held: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newClassFixtures(t)
			f.repo.EXPECT().GetByID(mock.Anything, classID).
				Return(&domain.Class{ID: classID, MaxSeats: tt.maxSeats}, nil)
			f.repo.EXPECT().SeatsTaken(mock.Anything, classID).Return(tt.taken, nil)
			f.holds.EXPECT().ActiveSeats(mock.Anything, classID).Return(tt.held, tt.holdErr)

			got, err := f.svc.Availability(context.Background(), classID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailability_ClassNotFound(t *testing.T) {
	f := newClassFixtures(t)

	classID := uuid.NewString()
	f.repo.EXPECT().GetByID(mock.Anything, classID).Return(nil, domain.ErrClassNotFound)

	_, err := f.svc.Availability(context.Background(), classID)
	assert.ErrorIs(t, err, domain.ErrClassNotFound)
}

func TestQuote(t *testing.T) {
	f := newClassFixtures(t)

	classID := uuid.NewString()
	f.repo.EXPECT().GetByID(mock.Anything, classID).
		Return(&domain.Class{ID: classID, PricePerSeat: 2000}, nil)

	quote, err := f.svc.Quote(context.Background(), classID, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(11500), quote.Total)
	assert.Equal(t, int64(1500), quote.PlatformFee)
	assert.Equal(t, int64(10000), quote.HostPayout)
	assert.Equal(t, 5, quote.Quantity)
}

func TestQuote_ZeroQuantity(t *testing.T) {
	f := newClassFixtures(t)

	_, err := f.svc.Quote(context.Background(), uuid.NewString(), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetDetails(t *testing.T) {
	f := newClassFixtures(t)

	classID := uuid.NewString()
	f.repo.EXPECT().GetDetails(mock.Anything, classID).
		Return(&domain.ClassDetails{
			Class:          domain.Class{ID: classID, MaxSeats: 10},
			AvailableSeats: 5,
		}, nil)
	f.holds.EXPECT().ActiveSeats(mock.Anything, classID).Return(2, nil)
	f.bookingRepo.EXPECT().ListByClass(mock.Anything, classID).
		Return([]*domain.Booking{
			{ID: "b1", Status: domain.BookingStatusApproved},
			{ID: "b2", Status: domain.BookingStatusPending},
		}, nil)

	details, err := f.svc.GetDetails(context.Background(), classID)

	require.NoError(t, err)
	assert.Equal(t, 3, details.AvailableSeats, "live holds shrink the db view")
	require.Len(t, details.Bookings, 2)
	assert.Equal(t, "b1", details.Bookings[0].ID)
}

func TestGetDetails_HoldStoreDown(t *testing.T) {
	f := newClassFixtures(t)

	classID := uuid.NewString()
	f.repo.EXPECT().GetDetails(mock.Anything, classID).
		Return(&domain.ClassDetails{
			Class:          domain.Class{ID: classID, MaxSeats: 10},
			AvailableSeats: 5,
		}, nil)
	f.holds.EXPECT().ActiveSeats(mock.Anything, classID).Return(0, assert.AnError)
	f.bookingRepo.EXPECT().ListByClass(mock.Anything, classID).Return(nil, nil)

	details, err := f.svc.GetDetails(context.Background(), classID)

	require.NoError(t, err)
	assert.Equal(t, 5, details.AvailableSeats)
}
