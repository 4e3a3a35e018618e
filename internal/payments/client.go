package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service/ports"
	"github.com/wb-go/wbf/retry"
)

// Client talks to the payment processor's REST API. Refunds are retried with
// backoff since they are idempotent on the processor side; checkout creation
// is not retried, a failed attempt is simply surfaced to the guest.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	strategy   retry.Strategy
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type checkoutRequest struct {
	ClassID   string   `json:"class_id"`
	GuestID   string   `json:"guest_id"`
	Quantity  int      `json:"quantity"`
	Occupants []string `json:"occupants"`
	Total     int64    `json:"total"`
	HoldToken string   `json:"hold_token,omitempty"`
}

type checkoutResponse struct {
	AttemptID   string `json:"attempt_id"`
	RedirectURL string `json:"redirect_url"`
}

func (c *Client) CreateCheckout(ctx context.Context, in ports.CheckoutInput) (*domain.CheckoutSession, error) {
	body := checkoutRequest{
		ClassID:   in.ClassID,
		GuestID:   in.GuestID,
		Quantity:  in.Quantity,
		Occupants: in.Occupants,
		Total:     in.Total,
		HoldToken: in.HoldToken,
	}

	var resp checkoutResponse
	if err := c.post(ctx, "/v1/checkouts", body, &resp); err != nil {
		return nil, fmt.Errorf("create checkout: %w", err)
	}
	if resp.AttemptID == "" || resp.RedirectURL == "" {
		return nil, fmt.Errorf("create checkout: processor returned incomplete session")
	}

	return &domain.CheckoutSession{
		AttemptID:   resp.AttemptID,
		RedirectURL: resp.RedirectURL,
	}, nil
}

func (c *Client) Refund(ctx context.Context, checkoutRef string) error {
	body := map[string]string{"checkout_ref": checkoutRef}

	err := retry.Do(func() error {
		return c.post(ctx, "/v1/refunds", body, nil)
	}, c.strategy)
	if err != nil {
		return fmt.Errorf("refund %s: %w", checkoutRef, err)
	}

	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("processor request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("processor returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
