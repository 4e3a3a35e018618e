package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AccountRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAccountRepo(db *dbpg.DB) *AccountRepository {
	return &AccountRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AccountRepository) GetByExternalID(ctx context.Context, externalAccountID string) (*domain.HostPayoutAccount, error) {
	query := `SELECT host_id, external_account_id, payout_eligible, updated_at
			  FROM host_payout_accounts
			  WHERE external_account_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, externalAccountID)
	if err != nil {
		return nil, fmt.Errorf("get payout account: %w", err)
	}

	var a domain.HostPayoutAccount
	if err = row.Scan(&a.HostID, &a.ExternalAccountID, &a.PayoutEligible, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan payout account: %w", err)
	}

	return &a, nil
}

func (r *AccountRepository) SetEligibility(ctx context.Context, externalAccountID string, eligible bool) error {
	query := `UPDATE host_payout_accounts
			  SET payout_eligible = $2, updated_at = NOW()
			  WHERE external_account_id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, externalAccountID, eligible)
	if err != nil {
		return fmt.Errorf("set eligibility: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("eligibility rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// Upsert keys on host_id: the processor can report an account before the
// linkage row exists, and a repeated fallback must not create a second row
// for the same host.
func (r *AccountRepository) Upsert(ctx context.Context, acct *domain.HostPayoutAccount) error {
	query := `INSERT INTO host_payout_accounts (host_id, external_account_id, payout_eligible, updated_at)
			  VALUES ($1, $2, $3, NOW())
			  ON CONFLICT (host_id) DO UPDATE
			  SET external_account_id = EXCLUDED.external_account_id,
			      payout_eligible = EXCLUDED.payout_eligible,
			      updated_at = NOW()`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, acct.HostID, acct.ExternalAccountID, acct.PayoutEligible)
	if err != nil {
		return fmt.Errorf("upsert payout account: %w", err)
	}

	return nil
}
