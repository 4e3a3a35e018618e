package domain

import "time"

type Class struct {
	ID           string    `json:"id"`
	HostID       string    `json:"host_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	MaxSeats     int       `json:"max_seats"`
	PricePerSeat int64     `json:"price_per_seat"`
	AutoApprove  bool      `json:"auto_approve"`
	Retired      bool      `json:"retired"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ClassDetails struct {
	Class          Class     `json:"class"`
	AvailableSeats int       `json:"available_seats"`
	Bookings       []Booking `json:"bookings"`
}

type CreateClassInput struct {
	HostID       string
	Title        string
	Description  string
	StartsAt     time.Time
	EndsAt       time.Time
	MaxSeats     int
	PricePerSeat int64
	AutoApprove  bool
}

// Quote is the guest-facing price estimate for a seat count. The same split
// function that reconciles completed payments produces the breakdown, so the
// estimate and the authoritative numbers always agree.
type Quote struct {
	ClassID     string `json:"class_id"`
	Quantity    int    `json:"quantity"`
	Total       int64  `json:"total"`
	PlatformFee int64  `json:"platform_fee"`
	HostPayout  int64  `json:"host_payout"`
}
