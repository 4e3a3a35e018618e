package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service/ports"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type BookingCreator interface {
	CreateFromCheckout(ctx context.Context, in service.CheckoutCompletedInput) (*domain.Booking, error)
}

type AccountSyncer interface {
	SyncStatus(ctx context.Context, externalAccountID string, detailsSubmitted bool, hostID string) error
}

// Handler terminates the payment processor's webhook endpoint. The contract
// with the processor: 2xx means "delivered, never send again", anything else
// means "retry later". So a response is only 200 once the event row is durable,
// and persistence failures after that release the guard rows and surface as
// 502, so the redelivery reprocesses from scratch instead of collapsing into
// a duplicate.
type Handler struct {
	guard    ports.EventGuard
	bookings BookingCreator
	accounts AccountSyncer
	holds    ports.HoldStore
	secret   string
	logger   logger.Logger
}

func NewHandler(guard ports.EventGuard, bookings BookingCreator, accounts AccountSyncer, holds ports.HoldStore, secret string, log logger.Logger) *Handler {
	return &Handler{
		guard:    guard,
		bookings: bookings,
		accounts: accounts,
		holds:    holds,
		secret:   secret,
		logger:   log,
	}
}

func (h *Handler) Handle(c *ginext.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "unreadable body"})
		return
	}

	if !VerifySignature(h.secret, body, c.GetHeader(SignatureHeader)) {
		h.logger.Warn("webhook rejected: bad signature",
			logger.String("remote_addr", c.ClientIP()),
		)
		c.JSON(http.StatusUnauthorized, ginext.H{"error": "invalid signature"})
		return
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "malformed event"})
		return
	}
	if env.ID == "" || env.Type == "" {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "event id and type are required"})
		return
	}

	ctx := c.Request.Context()

	isNew, err := h.guard.RecordEvent(ctx, &domain.PaymentEvent{
		ProviderEventID: env.ID,
		EventType:       env.Type,
		Payload:         json.RawMessage(body),
		ReceivedAt:      time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error("webhook event record failed",
			logger.String("event_id", env.ID),
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusBadGateway, ginext.H{"error": "event not recorded"})
		return
	}
	if !isNew {
		h.logger.Info("webhook event replayed, skipping",
			logger.String("event_id", env.ID),
			logger.String("event_type", env.Type),
		)
		c.JSON(http.StatusOK, ginext.H{"status": "duplicate"})
		return
	}

	switch env.Type {
	case EventCheckoutCompleted:
		h.handleCheckoutCompleted(c, env)
	case EventAccountUpdated:
		h.handleAccountUpdated(c, env)
	default:
		h.logger.Debug("webhook event type ignored",
			logger.String("event_id", env.ID),
			logger.String("event_type", env.Type),
		)
		c.JSON(http.StatusOK, ginext.H{"status": "ignored"})
	}
}

func (h *Handler) handleCheckoutCompleted(c *ginext.Context, env envelope) {
	ctx := c.Request.Context()

	ev, err := decodeCheckoutCompleted(env.Data)
	if err != nil {
		// The money moved but the metadata is unusable. Retrying cannot fix
		// that, so acknowledge and leave the trail in payment_events.
		h.logger.Error("checkout event has unusable metadata",
			logger.String("event_id", env.ID),
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusOK, ginext.H{"status": "unprocessable"})
		return
	}

	claimed, err := h.guard.ClaimAttempt(ctx, ev.CheckoutRef)
	if err != nil {
		h.logger.Error("checkout claim failed",
			logger.String("event_id", env.ID),
			logger.String("checkout_ref", ev.CheckoutRef),
			logger.String("error", err.Error()),
		)
		h.releaseEvent(ctx, env.ID)
		c.JSON(http.StatusBadGateway, ginext.H{"error": "claim not recorded"})
		return
	}
	if !claimed {
		h.logger.Info("checkout attempt already claimed",
			logger.String("event_id", env.ID),
			logger.String("checkout_ref", ev.CheckoutRef),
		)
		c.JSON(http.StatusOK, ginext.H{"status": "duplicate"})
		return
	}

	booking, err := h.bookings.CreateFromCheckout(ctx, service.CheckoutCompletedInput{
		CheckoutRef: ev.CheckoutRef,
		ClassID:     ev.ClassID,
		GuestID:     ev.GuestID,
		Quantity:    ev.Quantity,
		Occupants:   ev.Occupants,
		TotalPaid:   ev.TotalPaid,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrClassNotFound) {
			h.logger.Error("checkout event rejected",
				logger.String("event_id", env.ID),
				logger.String("checkout_ref", ev.CheckoutRef),
				logger.String("error", err.Error()),
			)
			c.JSON(http.StatusOK, ginext.H{"status": "unprocessable"})
			return
		}
		h.logger.Error("booking creation failed",
			logger.String("event_id", env.ID),
			logger.String("checkout_ref", ev.CheckoutRef),
			logger.String("error", err.Error()),
		)
		h.releaseAttempt(ctx, ev.CheckoutRef)
		h.releaseEvent(ctx, env.ID)
		c.JSON(http.StatusBadGateway, ginext.H{"error": "booking not recorded"})
		return
	}

	if ev.HoldToken != "" {
		if relErr := h.holds.Release(ctx, ev.ClassID, ev.HoldToken); relErr != nil {
			h.logger.Warn("releasing checkout seat hold failed",
				logger.String("class_id", ev.ClassID),
				logger.String("error", relErr.Error()),
			)
		}
	}

	c.JSON(http.StatusOK, ginext.H{"status": "processed", "booking_id": booking.ID})
}

// releaseEvent and releaseAttempt undo guard rows on a 502 path. Best-effort:
// if the delete itself fails the event stays recorded and an operator has the
// payment_events row to replay from.
func (h *Handler) releaseEvent(ctx context.Context, eventID string) {
	if err := h.guard.ReleaseEvent(ctx, eventID); err != nil {
		h.logger.Error("releasing event record failed",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	}
}

func (h *Handler) releaseAttempt(ctx context.Context, attemptID string) {
	if err := h.guard.ReleaseAttempt(ctx, attemptID); err != nil {
		h.logger.Error("releasing attempt claim failed",
			logger.String("checkout_ref", attemptID),
			logger.String("error", err.Error()),
		)
	}
}

func (h *Handler) handleAccountUpdated(c *ginext.Context, env envelope) {
	ev, err := decodeAccountUpdated(env.Data)
	if err != nil {
		h.logger.Error("account event has unusable metadata",
			logger.String("event_id", env.ID),
			logger.String("error", err.Error()),
		)
		c.JSON(http.StatusOK, ginext.H{"status": "unprocessable"})
		return
	}

	err = h.accounts.SyncStatus(c.Request.Context(), ev.ExternalAccountID, ev.DetailsSubmitted, ev.HostID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			h.logger.Warn("account event for unknown host account",
				logger.String("event_id", env.ID),
				logger.String("external_account_id", ev.ExternalAccountID),
			)
			c.JSON(http.StatusOK, ginext.H{"status": "unprocessable"})
			return
		}
		h.logger.Error("account sync failed",
			logger.String("event_id", env.ID),
			logger.String("external_account_id", ev.ExternalAccountID),
			logger.String("error", err.Error()),
		)
		h.releaseEvent(c.Request.Context(), env.ID)
		c.JSON(http.StatusBadGateway, ginext.H{"error": "account not updated"})
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "processed"})
}
