package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPayment(t *testing.T) {
	tests := []struct {
		name        string
		from, to    BookingStatus
		wantPayment PaymentStatus
		wantOK      bool
	}{
		{name: "pending to approved holds funds", from: BookingStatusPending, to: BookingStatusApproved, wantPayment: PaymentStatusHeld, wantOK: true},
		{name: "pending to denied refunds", from: BookingStatusPending, to: BookingStatusDenied, wantPayment: PaymentStatusRefunded, wantOK: true},
		{name: "pending to cancelled refunds", from: BookingStatusPending, to: BookingStatusCancelled, wantPayment: PaymentStatusRefunded, wantOK: true},
		{name: "approved to paid settles", from: BookingStatusApproved, to: BookingStatusPaid, wantPayment: PaymentStatusPaid, wantOK: true},
		{name: "approved to cancelled refunds", from: BookingStatusApproved, to: BookingStatusCancelled, wantPayment: PaymentStatusRefunded, wantOK: true},
		{name: "pending cannot settle directly", from: BookingStatusPending, to: BookingStatusPaid, wantOK: false},
		{name: "approved cannot be denied", from: BookingStatusApproved, to: BookingStatusDenied, wantOK: false},
		{name: "denied is terminal", from: BookingStatusDenied, to: BookingStatusApproved, wantOK: false},
		{name: "paid cannot be cancelled", from: BookingStatusPaid, to: BookingStatusCancelled, wantOK: false},
		{name: "failed is terminal", from: BookingStatusFailed, to: BookingStatusApproved, wantOK: false},
		{name: "no self transition", from: BookingStatusPending, to: BookingStatusPending, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, ok := NextPayment(tt.from, tt.to)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPayment, payment)
			}
		})
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	terminal := []BookingStatus{
		BookingStatusDenied,
		BookingStatusFailed,
		BookingStatusPaid,
		BookingStatusCancelled,
		BookingStatusRefunded,
	}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), "status %s", s)
	}

	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusApproved.Terminal())
}

// A terminal status must have no outgoing transitions; otherwise the state
// machine could resurrect a closed booking.
func TestTerminalStatusesHaveNoExits(t *testing.T) {
	all := []BookingStatus{
		BookingStatusPending, BookingStatusApproved, BookingStatusDenied,
		BookingStatusFailed, BookingStatusPaid, BookingStatusCancelled,
		BookingStatusRefunded,
	}

	for _, from := range all {
		if !from.Terminal() {
			continue
		}
		for _, to := range all {
			_, ok := NextPayment(from, to)
			assert.False(t, ok, "%s -> %s should be rejected", from, to)
		}
	}
}

func TestSeatCountedStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]BookingStatus{BookingStatusApproved, BookingStatusPaid},
		SeatCountedStatuses,
	)
}
