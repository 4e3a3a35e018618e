package domain

import (
	"encoding/json"
	"time"
)

// HostPayoutAccount links a host to their account at the payment processor.
// PayoutEligible mirrors the processor's verification state and is mutated
// only by account-status events.
type HostPayoutAccount struct {
	HostID            string    `json:"host_id"`
	ExternalAccountID string    `json:"external_account_id"`
	PayoutEligible    bool      `json:"payout_eligible"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PaymentEvent is the idempotency record for one inbound processor event.
// Rows are append-only; a second insert for the same provider event id is a
// no-op, never an error.
type PaymentEvent struct {
	ProviderEventID string          `json:"provider_event_id"`
	EventType       string          `json:"event_type"`
	Payload         json.RawMessage `json:"payload"`
	ReceivedAt      time.Time       `json:"received_at"`
}

// CheckoutSession is what the external processor returns when asked to start
// a checkout attempt. AttemptID becomes the booking's checkout_ref.
type CheckoutSession struct {
	AttemptID   string `json:"attempt_id"`
	RedirectURL string `json:"redirect_url"`
}
