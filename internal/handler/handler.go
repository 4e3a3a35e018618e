package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ClassSvc interface {
	CreateClass(ctx context.Context, input domain.CreateClassInput) (*domain.Class, error)
	List(ctx context.Context) ([]*domain.Class, error)
	GetDetails(ctx context.Context, id string) (*domain.ClassDetails, error)
	Availability(ctx context.Context, classID string) (int, error)
	Quote(ctx context.Context, classID string, quantity int) (*domain.Quote, error)
}

type BookingSvc interface {
	Approve(ctx context.Context, bookingID string) (*domain.Booking, error)
	Deny(ctx context.Context, bookingID, reason string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*domain.Booking, error)
	Settle(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListByGuest(ctx context.Context, guestID string) ([]*domain.Booking, error)
	ListByClass(ctx context.Context, classID string) ([]*domain.Booking, error)
}

type CheckoutSvc interface {
	Initiate(ctx context.Context, classID, guestID string, quantity int, occupants []string) (*domain.CheckoutSession, error)
}

type Handler struct {
	classService    ClassSvc
	bookingService  BookingSvc
	checkoutService CheckoutSvc
}

func NewHandler(classService ClassSvc, bookingService BookingSvc, checkoutService CheckoutSvc) *Handler {
	return &Handler{
		classService:    classService,
		bookingService:  bookingService,
		checkoutService: checkoutService,
	}
}

// Classes

func (h *Handler) CreateClass(c *ginext.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid ends_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateClassInput{
		HostID:       req.HostID,
		Title:        req.Title,
		Description:  req.Description,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
		MaxSeats:     req.MaxSeats,
		PricePerSeat: req.PricePerSeat,
		AutoApprove:  req.AutoApprove,
	}

	class, err := h.classService.CreateClass(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClassResponse(class))
}

func (h *Handler) GetClass(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	details, err := h.classService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassDetailsResponse(details))
}

func (h *Handler) ListClasses(c *ginext.Context) {
	classes, err := h.classService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ClassResponse, 0, len(classes))
	for _, cl := range classes {
		resp = append(resp, dto.ToClassResponse(cl))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	seats, err := h.classService.Availability(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{ClassID: id, AvailableSeats: seats})
}

func (h *Handler) GetQuote(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	var query struct {
		Quantity int `form:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "quantity must be a positive integer"})
		return
	}

	quote, err := h.classService.Quote(c.Request.Context(), id, query.Quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// Checkout

func (h *Handler) InitiateCheckout(c *ginext.Context) {
	classID := c.Param("id")
	if _, err := uuid.Parse(classID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.checkoutService.Initiate(c.Request.Context(), classID, req.GuestID, req.Quantity, req.Occupants)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCheckoutSessionResponse(session))
}

// Bookings

func (h *Handler) ApproveBooking(c *ginext.Context) {
	h.transition(c, func(ctx context.Context, id string) (*domain.Booking, error) {
		return h.bookingService.Approve(ctx, id)
	})
}

func (h *Handler) DenyBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	// The reason is optional; a deny with no body at all is fine too.
	var req dto.DenyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Deny(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.transition(c, func(ctx context.Context, id string) (*domain.Booking, error) {
		return h.bookingService.Cancel(ctx, id)
	})
}

func (h *Handler) SettleBooking(c *ginext.Context) {
	h.transition(c, func(ctx context.Context, id string) (*domain.Booking, error) {
		return h.bookingService.Settle(ctx, id)
	})
}

func (h *Handler) transition(c *ginext.Context, fn func(ctx context.Context, id string) (*domain.Booking, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := fn(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetGuestBookings(c *ginext.Context) {
	guestID := c.Param("id")
	if _, err := uuid.Parse(guestID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guest id"})
		return
	}

	bookings, err := h.bookingService.ListByGuest(c.Request.Context(), guestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetClassBookings(c *ginext.Context) {
	classID := c.Param("id")
	if _, err := uuid.Parse(classID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid class id"})
		return
	}

	bookings, err := h.bookingService.ListByClass(c.Request.Context(), classID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrClassNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAttemptAlreadyClaimed),
		errors.Is(err, domain.ErrClassNotBookable),
		errors.Is(err, domain.ErrHoldUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
