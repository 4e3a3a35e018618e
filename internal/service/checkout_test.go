package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service/ports"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixtures struct {
	classRepo *mocks.MockClassRepo
	holds     *mocks.MockHoldStore
	provider  *mocks.MockPaymentProvider
	svc       *CheckoutService
}

func newCheckoutFixtures(t *testing.T) *checkoutFixtures {
	t.Helper()
	f := &checkoutFixtures{
		classRepo: mocks.NewMockClassRepo(t),
		holds:     mocks.NewMockHoldStore(t),
		provider:  mocks.NewMockPaymentProvider(t),
	}
	f.svc = NewCheckoutService(f.classRepo, f.holds, f.provider, 0.15, 15*time.Minute, newTestLogger(t))
	return f
}

func bookableClass(id string) *domain.Class {
	return &domain.Class{
		ID:           id,
		MaxSeats:     10,
		PricePerSeat: 2000,
		StartsAt:     time.Now().Add(48 * time.Hour),
	}
}

func TestInitiate(t *testing.T) {
	f := newCheckoutFixtures(t)

	classID := uuid.NewString()
	guestID := uuid.NewString()
	f.classRepo.EXPECT().GetByID(mock.Anything, classID).Return(bookableClass(classID), nil)
	f.classRepo.EXPECT().SeatsTaken(mock.Anything, classID).Return(3, nil)
	f.holds.EXPECT().ActiveSeats(mock.Anything, classID).Return(2, nil)
	f.holds.EXPECT().Place(mock.Anything, classID, 2, 15*time.Minute).Return("hold-token", nil)
	f.provider.EXPECT().CreateCheckout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, in ports.CheckoutInput) (*domain.CheckoutSession, error) {
			assert.Equal(t, int64(4600), in.Total, "fee is layered on top of the host price")
			assert.Equal(t, guestID, in.GuestID)
			assert.Equal(t, "hold-token", in.HoldToken, "the token rides the processor metadata")
			return &domain.CheckoutSession{AttemptID: "cs_123", RedirectURL: "https://pay.example/cs_123"}, nil
		})

	session, err := f.svc.Initiate(context.Background(), classID, guestID, 2, []string{"Ann", "Ben"})

	require.NoError(t, err)
	assert.Equal(t, "cs_123", session.AttemptID)
	assert.NotEmpty(t, session.RedirectURL)
}

func TestInitiate_Validation(t *testing.T) {
	f := newCheckoutFixtures(t)

	_, err := f.svc.Initiate(context.Background(), uuid.NewString(), uuid.NewString(), 0, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.Initiate(context.Background(), uuid.NewString(), uuid.NewString(), 2, []string{"Ann"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInitiate_ClassNotBookable(t *testing.T) {
	tests := []struct {
		name  string
		class func(id string) *domain.Class
	}{
		{name: "retired", class: func(id string) *domain.Class {
			c := bookableClass(id)
			c.Retired = true
			return c
		}},
		{name: "already started", class: func(id string) *domain.Class {
			c := bookableClass(id)
			c.StartsAt = time.Now().Add(-time.Hour)
			return c
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixtures(t)

			classID := uuid.NewString()
			f.classRepo.EXPECT().GetByID(mock.Anything, classID).Return(tt.class(classID), nil)

			_, err := f.svc.Initiate(context.Background(), classID, uuid.NewString(), 1, []string{"Ann"})
			assert.ErrorIs(t, err, domain.ErrClassNotBookable)
		})
	}
}

func TestInitiate_NotEnoughSeats(t *testing.T) {
	f := newCheckoutFixtures(t)

	classID := uuid.NewString()
	f.classRepo.EXPECT().GetByID(mock.Anything, classID).Return(bookableClass(classID), nil)
	f.classRepo.EXPECT().SeatsTaken(mock.Anything, classID).Return(6, nil)
	f.holds.EXPECT().ActiveSeats(mock.Anything, classID).Return(3, nil)

	_, err := f.svc.Initiate(context.Background(), classID, uuid.NewString(), 2, []string{"Ann", "Ben"})
	assert.ErrorIs(t, err, domain.ErrHoldUnavailable)
}

func TestInitiate_HoldStoreDownStillSells(t *testing.T) {
	f := newCheckoutFixtures(t)

	classID := uuid.NewString()
	f.classRepo.EXPECT().GetByID(mock.Anything, classID).Return(bookableClass(classID), nil)
	f.classRepo.EXPECT().SeatsTaken(mock.Anything, classID).Return(3, nil)
	f.holds.EXPECT().ActiveSeats(mock.Anything, classID).Return(0, assert.AnError)
	f.holds.EXPECT().Place(mock.Anything, classID, 1, mock.Anything).Return("", assert.AnError)
	f.provider.EXPECT().CreateCheckout(mock.Anything, mock.Anything).
		Return(&domain.CheckoutSession{AttemptID: "cs_456", RedirectURL: "https://pay.example/cs_456"}, nil)

	session, err := f.svc.Initiate(context.Background(), classID, uuid.NewString(), 1, []string{"Ann"})

	require.NoError(t, err)
	assert.Equal(t, "cs_456", session.AttemptID)
}

func TestInitiate_ProviderFailureReleasesHold(t *testing.T) {
	f := newCheckoutFixtures(t)

	classID := uuid.NewString()
	f.classRepo.EXPECT().GetByID(mock.Anything, classID).Return(bookableClass(classID), nil)
	f.classRepo.EXPECT().SeatsTaken(mock.Anything, classID).Return(0, nil)
	f.holds.EXPECT().ActiveSeats(mock.Anything, classID).Return(0, nil)
	f.holds.EXPECT().Place(mock.Anything, classID, 1, mock.Anything).Return("hold-token", nil)
	f.provider.EXPECT().CreateCheckout(mock.Anything, mock.Anything).Return(nil, assert.AnError)
	f.holds.EXPECT().Release(mock.Anything, classID, "hold-token").Return(nil)

	_, err := f.svc.Initiate(context.Background(), classID, uuid.NewString(), 1, []string{"Ann"})
	assert.Error(t, err)
}
