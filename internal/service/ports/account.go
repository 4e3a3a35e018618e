package ports

import (
	"context"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
)

type AccountRepo interface {
	GetByExternalID(ctx context.Context, externalAccountID string) (*domain.HostPayoutAccount, error)
	SetEligibility(ctx context.Context, externalAccountID string, eligible bool) error
	// Upsert creates or replaces the linkage keyed by host id, so a repeated
	// fallback sync never produces duplicate rows for one host.
	Upsert(ctx context.Context, acct *domain.HostPayoutAccount) error
}
