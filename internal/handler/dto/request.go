package dto

type CreateClassRequest struct {
	HostID       string `json:"host_id" binding:"required,uuid"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	StartsAt     string `json:"starts_at" binding:"required"`
	EndsAt       string `json:"ends_at" binding:"required"`
	MaxSeats     int    `json:"max_seats" binding:"required,gt=0"`
	PricePerSeat int64  `json:"price_per_seat" binding:"required,gt=0"`
	AutoApprove  bool   `json:"auto_approve"`
}

type CheckoutRequest struct {
	GuestID   string   `json:"guest_id" binding:"required,uuid"`
	Quantity  int      `json:"quantity" binding:"required,gt=0"`
	Occupants []string `json:"occupants" binding:"required"`
}

type DenyRequest struct {
	Reason string `json:"reason"`
}
