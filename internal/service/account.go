package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AccountService struct {
	repo   ports.AccountRepo
	logger logger.Logger
}

func NewAccountService(repo ports.AccountRepo, logger logger.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// SyncStatus applies an account-status event. The linkage row may not exist
// yet when the processor reports first, in which case the host id carried in
// the event metadata seeds it; the upsert keys on host id so replays never
// create duplicates.
func (s *AccountService) SyncStatus(ctx context.Context, externalAccountID string, detailsSubmitted bool, hostID string) error {
	err := s.repo.SetEligibility(ctx, externalAccountID, detailsSubmitted)
	if err == nil {
		s.logger.Info("payout eligibility updated",
			logger.String("external_account_id", externalAccountID),
			logger.Any("payout_eligible", detailsSubmitted),
		)
		return nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return fmt.Errorf("set eligibility: %w", err)
	}

	if hostID == "" {
		return domain.ErrAccountNotFound
	}

	acct := &domain.HostPayoutAccount{
		HostID:            hostID,
		ExternalAccountID: externalAccountID,
		PayoutEligible:    detailsSubmitted,
	}
	if err = s.repo.Upsert(ctx, acct); err != nil {
		return fmt.Errorf("upsert payout account: %w", err)
	}

	s.logger.Info("payout account linked",
		logger.String("host_id", hostID),
		logger.String("external_account_id", externalAccountID),
		logger.Any("payout_eligible", detailsSubmitted),
	)

	return nil
}
