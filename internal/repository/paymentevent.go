package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// PaymentEventRepository is the idempotency guard. Both tables carry a
// primary key on the dedup key and inserts go through ON CONFLICT DO NOTHING,
// so duplicate deliveries collapse in the database rather than in application
// logic, surviving concurrent redelivery across workers.
type PaymentEventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentEventRepo(db *dbpg.DB) *PaymentEventRepository {
	return &PaymentEventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentEventRepository) RecordEvent(ctx context.Context, ev *domain.PaymentEvent) (bool, error) {
	query := `INSERT INTO payment_events (provider_event_id, event_type, payload, received_at)
			  VALUES ($1, $2, $3, NOW())
			  ON CONFLICT (provider_event_id) DO NOTHING`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, ev.ProviderEventID, ev.EventType, []byte(ev.Payload))
	if err != nil {
		return false, fmt.Errorf("record event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("record event rows affected: %w", err)
	}

	return rows == 1, nil
}

func (r *PaymentEventRepository) ClaimAttempt(ctx context.Context, attemptID string) (bool, error) {
	query := `INSERT INTO checkout_claims (attempt_id, claimed_at)
			  VALUES ($1, NOW())
			  ON CONFLICT (attempt_id) DO NOTHING`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, attemptID)
	if err != nil {
		return false, fmt.Errorf("claim attempt: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim attempt rows affected: %w", err)
	}

	return rows == 1, nil
}

// ReleaseEvent removes a recorded event whose processing could not complete,
// so the processor's redelivery of the same id is treated as new again.
func (r *PaymentEventRepository) ReleaseEvent(ctx context.Context, providerEventID string) error {
	query := `DELETE FROM payment_events WHERE provider_event_id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, providerEventID); err != nil {
		return fmt.Errorf("release event: %w", err)
	}
	return nil
}

func (r *PaymentEventRepository) ReleaseAttempt(ctx context.Context, attemptID string) error {
	query := `DELETE FROM checkout_claims WHERE attempt_id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, attemptID); err != nil {
		return fmt.Errorf("release attempt: %w", err)
	}
	return nil
}
