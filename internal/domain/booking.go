package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusDenied    BookingStatus = "denied"
	BookingStatusFailed    BookingStatus = "failed"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusRefunded  BookingStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusHeld      PaymentStatus = "held"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// SeatCountedStatuses are the booking statuses that occupy seats.
var SeatCountedStatuses = []BookingStatus{BookingStatusApproved, BookingStatusPaid}

type Booking struct {
	ID              string        `json:"id"`
	ClassID         string        `json:"class_id"`
	GuestID         string        `json:"guest_id"`
	Quantity        int           `json:"quantity"`
	Occupants       []string      `json:"occupants"`
	TotalPaid       int64         `json:"total_paid"`
	PlatformFee     int64         `json:"platform_fee"`
	HostPayout      int64         `json:"host_payout"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	CheckoutRef     string        `json:"checkout_ref"`
	DenialReason    *string       `json:"denial_reason,omitempty"`
	ReversalFlagged bool          `json:"reversal_flagged"`
	CreatedAt       time.Time     `json:"created_at"`
	ApprovedAt      *time.Time    `json:"approved_at,omitempty"`
	DeniedAt        *time.Time    `json:"denied_at,omitempty"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// transitions maps a current booking status to the states it may move to,
// paired with the payment status applied alongside. Anything absent here is
// an invalid transition; failed and the terminal states have no outgoing
// edges.
var transitions = map[BookingStatus]map[BookingStatus]PaymentStatus{
	BookingStatusPending: {
		BookingStatusApproved:  PaymentStatusHeld,
		BookingStatusDenied:    PaymentStatusRefunded,
		BookingStatusCancelled: PaymentStatusRefunded,
	},
	BookingStatusApproved: {
		BookingStatusPaid:      PaymentStatusPaid,
		BookingStatusCancelled: PaymentStatusRefunded,
	},
}

// NextPayment reports whether a booking may move from one status to another
// and, if so, the payment status that accompanies the move.
func NextPayment(from, to BookingStatus) (PaymentStatus, bool) {
	p, ok := transitions[from][to]
	return p, ok
}

// Terminal reports whether no transition leads out of the status.
func (s BookingStatus) Terminal() bool {
	return len(transitions[s]) == 0
}
