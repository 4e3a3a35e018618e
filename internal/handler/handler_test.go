package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/handler/dto"
	hmocks "github.com/jpdougherty96/HERD-DEV-sub000/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockClassSvc, *hmocks.MockBookingSvc, *hmocks.MockCheckoutSvc, http.Handler) {
	t.Helper()
	classSvc := hmocks.NewMockClassSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	checkoutSvc := hmocks.NewMockCheckoutSvc(t)

	h := NewHandler(classSvc, bookingSvc, checkoutSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/classes", h.CreateClass)
		api.GET("/classes", h.ListClasses)
		api.GET("/classes/:id", h.GetClass)
		api.GET("/classes/:id/availability", h.GetAvailability)
		api.GET("/classes/:id/quote", h.GetQuote)
		api.GET("/classes/:id/bookings", h.GetClassBookings)
		api.POST("/classes/:id/checkout", h.InitiateCheckout)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/deny", h.DenyBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/settle", h.SettleBooking)
		api.GET("/guests/:id/bookings", h.GetGuestBookings)
	}

	return classSvc, bookingSvc, checkoutSvc, r
}

// --- Classes ---

func TestHandler_CreateClass_Success(t *testing.T) {
	classSvc, _, _, r := setupRouter(t)

	starts := time.Now().Add(72 * time.Hour)
	class := &domain.Class{
		ID:           uuid.New().String(),
		HostID:       uuid.New().String(),
		Title:        "Sourdough for beginners",
		StartsAt:     starts,
		EndsAt:       starts.Add(3 * time.Hour),
		MaxSeats:     8,
		PricePerSeat: 4500,
		CreatedAt:    time.Now(),
	}

	classSvc.EXPECT().CreateClass(mock.Anything, mock.Anything).Return(class, nil)

	body, _ := json.Marshal(dto.CreateClassRequest{
		HostID:       class.HostID,
		Title:        "Sourdough for beginners",
		StartsAt:     starts.Format(time.RFC3339),
		EndsAt:       starts.Add(3 * time.Hour).Format(time.RFC3339),
		MaxSeats:     8,
		PricePerSeat: 4500,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/classes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ClassResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sourdough for beginners", resp.Title)
}

func TestHandler_CreateClass_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/classes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateClass_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"host_id":"` + uuid.New().String() + `","title":"X","starts_at":"not-a-date","ends_at":"also-not","max_seats":5,"price_per_seat":100}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/classes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetClass_Success(t *testing.T) {
	classSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	details := &domain.ClassDetails{
		Class:          domain.Class{ID: classID, Title: "Sourdough", MaxSeats: 8, StartsAt: time.Now(), EndsAt: time.Now(), CreatedAt: time.Now()},
		AvailableSeats: 5,
		Bookings:       []domain.Booking{},
	}

	classSvc.EXPECT().GetDetails(mock.Anything, classID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classes/"+classID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ClassDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.AvailableSeats)
}

func TestHandler_GetClass_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classes/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetClass_NotFound(t *testing.T) {
	classSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	classSvc.EXPECT().GetDetails(mock.Anything, classID).Return(nil, domain.ErrClassNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classes/"+classID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetAvailability_Success(t *testing.T) {
	classSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	classSvc.EXPECT().Availability(mock.Anything, classID).Return(3, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classes/"+classID+"/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.AvailableSeats)
}

func TestHandler_GetQuote_Success(t *testing.T) {
	classSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	classSvc.EXPECT().Quote(mock.Anything, classID, 5).Return(&domain.Quote{
		ClassID:     classID,
		Quantity:    5,
		Total:       11500,
		PlatformFee: 1500,
		HostPayout:  10000,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classes/"+classID+"/quote?quantity=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11500), resp.Total)
	assert.Equal(t, int64(1500), resp.PlatformFee)
}

func TestHandler_GetQuote_MissingQuantity(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classes/"+uuid.New().String()+"/quote", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Checkout ---

func TestHandler_InitiateCheckout_Success(t *testing.T) {
	_, _, checkoutSvc, r := setupRouter(t)

	classID := uuid.New().String()
	guestID := uuid.New().String()

	checkoutSvc.EXPECT().Initiate(mock.Anything, classID, guestID, 2, []string{"Ann", "Ben"}).
		Return(&domain.CheckoutSession{AttemptID: "cs_123", RedirectURL: "https://pay.example/cs_123"}, nil)

	body, _ := json.Marshal(dto.CheckoutRequest{
		GuestID:   guestID,
		Quantity:  2,
		Occupants: []string{"Ann", "Ben"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/classes/"+classID+"/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CheckoutSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cs_123", resp.AttemptID)
}

func TestHandler_InitiateCheckout_NoSeats(t *testing.T) {
	_, _, checkoutSvc, r := setupRouter(t)

	classID := uuid.New().String()
	guestID := uuid.New().String()

	checkoutSvc.EXPECT().Initiate(mock.Anything, classID, guestID, 4, mock.Anything).
		Return(nil, domain.ErrHoldUnavailable)

	body, _ := json.Marshal(dto.CheckoutRequest{
		GuestID:   guestID,
		Quantity:  4,
		Occupants: []string{"A", "B", "C", "D"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/classes/"+classID+"/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_InitiateCheckout_ClassStarted(t *testing.T) {
	_, _, checkoutSvc, r := setupRouter(t)

	classID := uuid.New().String()

	checkoutSvc.EXPECT().Initiate(mock.Anything, classID, mock.Anything, 1, mock.Anything).
		Return(nil, domain.ErrClassNotBookable)

	body, _ := json.Marshal(dto.CheckoutRequest{
		GuestID:   uuid.New().String(),
		Quantity:  1,
		Occupants: []string{"Ann"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/classes/"+classID+"/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Bookings ---

func TestHandler_ApproveBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:            bookingID,
		Status:        domain.BookingStatusApproved,
		PaymentStatus: domain.PaymentStatusHeld,
		CreatedAt:     time.Now(),
	}

	bookingSvc.EXPECT().Approve(mock.Anything, bookingID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "held", resp.PaymentStatus)
}

func TestHandler_ApproveBooking_InvalidTransition(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Approve(mock.Anything, bookingID).Return(nil, domain.ErrInvalidTransition)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DenyBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	reason := "class is full that day"
	booking := &domain.Booking{
		ID:            bookingID,
		Status:        domain.BookingStatusDenied,
		PaymentStatus: domain.PaymentStatusRefunded,
		DenialReason:  &reason,
		CreatedAt:     time.Now(),
	}

	bookingSvc.EXPECT().Deny(mock.Anything, bookingID, reason).Return(booking, nil)

	body, _ := json.Marshal(dto.DenyRequest{Reason: reason})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/deny", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "denied", resp.Status)
	require.NotNil(t, resp.DenialReason)
	assert.Equal(t, reason, *resp.DenialReason)
}

func TestHandler_DenyBooking_WithoutReason(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:            bookingID,
		Status:        domain.BookingStatusDenied,
		PaymentStatus: domain.PaymentStatusRefunded,
		CreatedAt:     time.Now(),
	}

	bookingSvc.EXPECT().Deny(mock.Anything, bookingID, "").Return(booking, nil).Times(2)

	// Empty object and no body at all both mean "deny, no reason given".
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/deny", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/deny", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_ClassStarted(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID).Return(nil, domain.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SettleBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:            bookingID,
		Status:        domain.BookingStatusPaid,
		PaymentStatus: domain.PaymentStatusPaid,
		CreatedAt:     time.Now(),
	}

	bookingSvc.EXPECT().Settle(mock.Anything, bookingID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/settle", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/bad-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetGuestBookings_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	guestID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: "b1", ClassID: "c1", GuestID: guestID, Status: domain.BookingStatusPending, CreatedAt: time.Now()},
	}

	bookingSvc.EXPECT().ListByGuest(mock.Anything, guestID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/guests/"+guestID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetClassBookings_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	classID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: "b1", ClassID: classID, Status: domain.BookingStatusApproved, CreatedAt: time.Now()},
		{ID: "b2", ClassID: classID, Status: domain.BookingStatusPending, CreatedAt: time.Now()},
	}

	bookingSvc.EXPECT().ListByClass(mock.Anything, classID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classes/"+classID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	classSvc, _, _, r := setupRouter(t)

	classID := uuid.New().String()
	classSvc.EXPECT().GetDetails(mock.Anything, classID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/classes/"+classID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
