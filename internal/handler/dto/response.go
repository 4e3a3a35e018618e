package dto

import (
	"time"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
)

type ClassResponse struct {
	ID           string `json:"id"`
	HostID       string `json:"host_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	StartsAt     string `json:"starts_at"`
	EndsAt       string `json:"ends_at"`
	MaxSeats     int    `json:"max_seats"`
	PricePerSeat int64  `json:"price_per_seat"`
	AutoApprove  bool   `json:"auto_approve"`
	Retired      bool   `json:"retired"`
	CreatedAt    string `json:"created_at"`
}

type ClassDetailsResponse struct {
	Class          ClassResponse     `json:"class"`
	AvailableSeats int               `json:"available_seats"`
	Bookings       []BookingResponse `json:"bookings"`
}

type AvailabilityResponse struct {
	ClassID        string `json:"class_id"`
	AvailableSeats int    `json:"available_seats"`
}

type QuoteResponse struct {
	ClassID     string `json:"class_id"`
	Quantity    int    `json:"quantity"`
	Total       int64  `json:"total"`
	PlatformFee int64  `json:"platform_fee"`
	HostPayout  int64  `json:"host_payout"`
}

type CheckoutSessionResponse struct {
	AttemptID   string `json:"attempt_id"`
	RedirectURL string `json:"redirect_url"`
}

type BookingResponse struct {
	ID            string   `json:"id"`
	ClassID       string   `json:"class_id"`
	GuestID       string   `json:"guest_id"`
	Quantity      int      `json:"quantity"`
	Occupants     []string `json:"occupants"`
	TotalPaid     int64    `json:"total_paid"`
	PlatformFee   int64    `json:"platform_fee"`
	HostPayout    int64    `json:"host_payout"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"payment_status"`
	DenialReason  *string  `json:"denial_reason,omitempty"`
	CreatedAt     string   `json:"created_at"`
	ApprovedAt    *string  `json:"approved_at,omitempty"`
	DeniedAt      *string  `json:"denied_at,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToClassResponse(c *domain.Class) ClassResponse {
	return ClassResponse{
		ID:           c.ID,
		HostID:       c.HostID,
		Title:        c.Title,
		Description:  c.Description,
		StartsAt:     c.StartsAt.Format(time.RFC3339),
		EndsAt:       c.EndsAt.Format(time.RFC3339),
		MaxSeats:     c.MaxSeats,
		PricePerSeat: c.PricePerSeat,
		AutoApprove:  c.AutoApprove,
		Retired:      c.Retired,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}

func ToClassDetailsResponse(d *domain.ClassDetails) ClassDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return ClassDetailsResponse{
		Class:          ToClassResponse(&d.Class),
		AvailableSeats: d.AvailableSeats,
		Bookings:       bookings,
	}
}

func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ClassID:     q.ClassID,
		Quantity:    q.Quantity,
		Total:       q.Total,
		PlatformFee: q.PlatformFee,
		HostPayout:  q.HostPayout,
	}
}

func ToCheckoutSessionResponse(s *domain.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		AttemptID:   s.AttemptID,
		RedirectURL: s.RedirectURL,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		ClassID:       b.ClassID,
		GuestID:       b.GuestID,
		Quantity:      b.Quantity,
		Occupants:     b.Occupants,
		TotalPaid:     b.TotalPaid,
		PlatformFee:   b.PlatformFee,
		HostPayout:    b.HostPayout,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		DenialReason:  b.DenialReason,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if b.ApprovedAt != nil {
		s := b.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	if b.DeniedAt != nil {
		s := b.DeniedAt.Format(time.RFC3339)
		resp.DeniedAt = &s
	}
	return resp
}
