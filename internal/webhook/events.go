package webhook

import (
	"encoding/json"
	"fmt"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
)

const (
	EventCheckoutCompleted = "checkout.completed"
	EventAccountUpdated    = "account.updated"
)

// envelope is the outer shape every processor event shares.
type envelope struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// checkoutCompleted is the strict shape of a checkout.completed payload.
// Decoding fails closed: any missing or mistyped required field makes the
// whole event malformed instead of creating a half-populated booking.
type checkoutCompleted struct {
	CheckoutRef string   `json:"checkout_ref"`
	ClassID     string   `json:"class_id"`
	GuestID     string   `json:"guest_id"`
	Quantity    int      `json:"quantity"`
	Occupants   []string `json:"occupants"`
	TotalPaid   int64    `json:"total_paid"`
	// HoldToken identifies the provisional seat hold parked at checkout
	// initiation; optional since holds are best-effort and expire on TTL.
	HoldToken string `json:"hold_token"`
}

func decodeCheckoutCompleted(data json.RawMessage) (*checkoutCompleted, error) {
	var ev checkoutCompleted
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	switch {
	case ev.CheckoutRef == "":
		return nil, fmt.Errorf("%w: checkout_ref is required", domain.ErrValidation)
	case ev.ClassID == "":
		return nil, fmt.Errorf("%w: class_id is required", domain.ErrValidation)
	case ev.GuestID == "":
		return nil, fmt.Errorf("%w: guest_id is required", domain.ErrValidation)
	case ev.Quantity <= 0:
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	case len(ev.Occupants) != ev.Quantity:
		return nil, fmt.Errorf("%w: occupant list must match quantity", domain.ErrValidation)
	case ev.TotalPaid <= 0:
		return nil, fmt.Errorf("%w: total_paid must be positive", domain.ErrValidation)
	}

	return &ev, nil
}

// accountUpdated is the strict shape of an account.updated payload. HostID
// is the fallback linkage carried in metadata; it is allowed to be empty.
type accountUpdated struct {
	ExternalAccountID string `json:"external_account_id"`
	DetailsSubmitted  bool   `json:"details_submitted"`
	HostID            string `json:"host_id"`
}

func decodeAccountUpdated(data json.RawMessage) (*accountUpdated, error) {
	var ev accountUpdated
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if ev.ExternalAccountID == "" {
		return nil, fmt.Errorf("%w: external_account_id is required", domain.ErrValidation)
	}

	return &ev, nil
}
