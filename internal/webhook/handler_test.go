package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service"
	portmocks "github.com/jpdougherty96/HERD-DEV-sub000/internal/service/ports/mocks"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "whsec_test"

type webhookFixtures struct {
	guard    *portmocks.MockEventGuard
	bookings *mocks.MockBookingCreator
	accounts *mocks.MockAccountSyncer
	holds    *portmocks.MockHoldStore
	engine   *ginext.Engine
}

func setupWebhook(t *testing.T) *webhookFixtures {
	t.Helper()

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	f := &webhookFixtures{
		guard:    portmocks.NewMockEventGuard(t),
		bookings: mocks.NewMockBookingCreator(t),
		accounts: mocks.NewMockAccountSyncer(t),
		holds:    portmocks.NewMockHoldStore(t),
	}

	h := NewHandler(f.guard, f.bookings, f.accounts, f.holds, testSecret, log)

	f.engine = ginext.New("test")
	f.engine.POST("/webhooks/payments", h.Handle)
	return f
}

func (f *webhookFixtures) deliver(t *testing.T, body []byte, sign bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", bytes.NewReader(body))
	if sign {
		req.Header.Set(SignatureHeader, Sign(testSecret, body))
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func eventBody(t *testing.T, id, eventType string, data any) []byte {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"id":   id,
		"type": eventType,
		"data": json.RawMessage(raw),
	})
	require.NoError(t, err)
	return body
}

func checkoutData() map[string]any {
	return map[string]any{
		"checkout_ref": "cs_1",
		"class_id":     "class-1",
		"guest_id":     "guest-1",
		"quantity":     2,
		"occupants":    []string{"Ann", "Ben"},
		"total_paid":   11500,
	}
}

func TestHandle_BadSignature(t *testing.T) {
	f := setupWebhook(t)

	w := f.deliver(t, eventBody(t, "evt_1", EventCheckoutCompleted, checkoutData()), false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_MalformedEnvelope(t *testing.T) {
	f := setupWebhook(t)

	w := f.deliver(t, []byte("not json"), true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.deliver(t, []byte(`{"type":"checkout.completed","data":{}}`), true)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing event id")
}

func TestHandle_RecordFailureForcesRedelivery(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(false, assert.AnError)

	w := f.deliver(t, eventBody(t, "evt_2", EventCheckoutCompleted, checkoutData()), true)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandle_DuplicateEvent(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(false, nil)

	w := f.deliver(t, eventBody(t, "evt_3", EventCheckoutCompleted, checkoutData()), true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "duplicate")
}

func TestHandle_UnknownEventType(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil)

	w := f.deliver(t, eventBody(t, "evt_4", "payout.created", map[string]any{}), true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestCheckoutCompleted(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, ev *domain.PaymentEvent) (bool, error) {
			assert.Equal(t, "evt_5", ev.ProviderEventID)
			assert.Equal(t, EventCheckoutCompleted, ev.EventType)
			assert.NotEmpty(t, ev.Payload)
			return true, nil
		})
	f.guard.EXPECT().ClaimAttempt(mock.Anything, "cs_1").Return(true, nil)
	f.bookings.EXPECT().CreateFromCheckout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, in service.CheckoutCompletedInput) (*domain.Booking, error) {
			assert.Equal(t, "cs_1", in.CheckoutRef)
			assert.Equal(t, "class-1", in.ClassID)
			assert.Equal(t, 2, in.Quantity)
			assert.Equal(t, int64(11500), in.TotalPaid)
			return &domain.Booking{ID: "booking-1"}, nil
		})

	w := f.deliver(t, eventBody(t, "evt_5", EventCheckoutCompleted, checkoutData()), true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "booking-1")
}

func TestCheckoutCompleted_UnusableMetadata(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil)

	data := checkoutData()
	delete(data, "class_id")

	w := f.deliver(t, eventBody(t, "evt_6", EventCheckoutCompleted, data), true)

	assert.Equal(t, http.StatusOK, w.Code, "retrying cannot repair the payload")
	assert.Contains(t, w.Body.String(), "unprocessable")
}

func TestCheckoutCompleted_AttemptAlreadyClaimed(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil)
	f.guard.EXPECT().ClaimAttempt(mock.Anything, "cs_1").Return(false, nil)

	w := f.deliver(t, eventBody(t, "evt_7", EventCheckoutCompleted, checkoutData()), true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "duplicate")
}

func TestCheckoutCompleted_ClaimFailure(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil)
	f.guard.EXPECT().ClaimAttempt(mock.Anything, "cs_1").Return(false, assert.AnError)
	f.guard.EXPECT().ReleaseEvent(mock.Anything, "evt_8").Return(nil)

	w := f.deliver(t, eventBody(t, "evt_8", EventCheckoutCompleted, checkoutData()), true)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCheckoutCompleted_UnknownClass(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil)
	f.guard.EXPECT().ClaimAttempt(mock.Anything, "cs_1").Return(true, nil)
	f.bookings.EXPECT().CreateFromCheckout(mock.Anything, mock.Anything).
		Return(nil, domain.ErrClassNotFound)

	w := f.deliver(t, eventBody(t, "evt_9", EventCheckoutCompleted, checkoutData()), true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unprocessable")
}

func TestCheckoutCompleted_PersistenceFailure(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil)
	f.guard.EXPECT().ClaimAttempt(mock.Anything, "cs_1").Return(true, nil)
	f.bookings.EXPECT().CreateFromCheckout(mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	f.guard.EXPECT().ReleaseAttempt(mock.Anything, "cs_1").Return(nil)
	f.guard.EXPECT().ReleaseEvent(mock.Anything, "evt_10").Return(nil)

	w := f.deliver(t, eventBody(t, "evt_10", EventCheckoutCompleted, checkoutData()), true)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

// A transient booking failure must not spend the event id: the guard rows are
// released with the 502, so the processor's redelivery of the same body is
// processed from scratch and ends with exactly one booking.
func TestCheckoutCompleted_RedeliveryAfterTransientFailure(t *testing.T) {
	f := setupWebhook(t)

	body := eventBody(t, "evt_14", EventCheckoutCompleted, checkoutData())

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.guard.EXPECT().ClaimAttempt(mock.Anything, "cs_1").Return(true, nil).Once()
	f.bookings.EXPECT().CreateFromCheckout(mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()
	f.guard.EXPECT().ReleaseAttempt(mock.Anything, "cs_1").Return(nil).Once()
	f.guard.EXPECT().ReleaseEvent(mock.Anything, "evt_14").Return(nil).Once()

	w := f.deliver(t, body, true)
	require.Equal(t, http.StatusBadGateway, w.Code)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.guard.EXPECT().ClaimAttempt(mock.Anything, "cs_1").Return(true, nil).Once()
	f.bookings.EXPECT().CreateFromCheckout(mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: "booking-2"}, nil).Once()

	w = f.deliver(t, body, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "booking-2")
	f.bookings.AssertNumberOfCalls(t, "CreateFromCheckout", 2)
}

func TestCheckoutCompleted_ReleasesSeatHold(t *testing.T) {
	f := setupWebhook(t)

	data := checkoutData()
	data["hold_token"] = "hold-tok"

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil)
	f.guard.EXPECT().ClaimAttempt(mock.Anything, "cs_1").Return(true, nil)
	f.bookings.EXPECT().CreateFromCheckout(mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: "booking-3"}, nil)
	f.holds.EXPECT().Release(mock.Anything, "class-1", "hold-tok").Return(nil)

	w := f.deliver(t, eventBody(t, "evt_15", EventCheckoutCompleted, data), true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "booking-3")
}

func TestAccountUpdated(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil)
	f.accounts.EXPECT().SyncStatus(mock.Anything, "acct_1", true, "host-1").Return(nil)

	body := eventBody(t, "evt_11", EventAccountUpdated, map[string]any{
		"external_account_id": "acct_1",
		"details_submitted":   true,
		"host_id":             "host-1",
	})
	w := f.deliver(t, body, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "processed")
}

func TestAccountUpdated_UnknownAccount(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil)
	f.accounts.EXPECT().SyncStatus(mock.Anything, "acct_2", false, "").
		Return(domain.ErrAccountNotFound)

	body := eventBody(t, "evt_12", EventAccountUpdated, map[string]any{
		"external_account_id": "acct_2",
		"details_submitted":   false,
	})
	w := f.deliver(t, body, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unprocessable")
}

func TestAccountUpdated_SyncFailure(t *testing.T) {
	f := setupWebhook(t)

	f.guard.EXPECT().RecordEvent(mock.Anything, mock.Anything).Return(true, nil)
	f.accounts.EXPECT().SyncStatus(mock.Anything, "acct_3", true, "").Return(assert.AnError)
	f.guard.EXPECT().ReleaseEvent(mock.Anything, "evt_13").Return(nil)

	body := eventBody(t, "evt_13", EventAccountUpdated, map[string]any{
		"external_account_id": "acct_3",
		"details_submitted":   true,
	})
	w := f.deliver(t, body, true)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
