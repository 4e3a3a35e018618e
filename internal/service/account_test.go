package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountService(t *testing.T) (*AccountService, *mocks.MockAccountRepo) {
	t.Helper()
	repo := mocks.NewMockAccountRepo(t)
	return NewAccountService(repo, newTestLogger(t)), repo
}

func TestSyncStatus_KnownAccount(t *testing.T) {
	svc, repo := newAccountService(t)

	repo.EXPECT().SetEligibility(mock.Anything, "acct_1", true).Return(nil)

	err := svc.SyncStatus(context.Background(), "acct_1", true, "")
	assert.NoError(t, err)
}

func TestSyncStatus_UnknownAccountWithoutHost(t *testing.T) {
	svc, repo := newAccountService(t)

	repo.EXPECT().SetEligibility(mock.Anything, "acct_2", false).Return(domain.ErrAccountNotFound)

	err := svc.SyncStatus(context.Background(), "acct_2", false, "")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestSyncStatus_UnknownAccountSeedsLinkage(t *testing.T) {
	svc, repo := newAccountService(t)

	hostID := uuid.NewString()
	repo.EXPECT().SetEligibility(mock.Anything, "acct_3", true).Return(domain.ErrAccountNotFound)
	repo.EXPECT().Upsert(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, acct *domain.HostPayoutAccount) error {
			assert.Equal(t, hostID, acct.HostID)
			assert.Equal(t, "acct_3", acct.ExternalAccountID)
			assert.True(t, acct.PayoutEligible)
			return nil
		})

	err := svc.SyncStatus(context.Background(), "acct_3", true, hostID)
	require.NoError(t, err)
}

func TestSyncStatus_RepoError(t *testing.T) {
	svc, repo := newAccountService(t)

	repo.EXPECT().SetEligibility(mock.Anything, "acct_4", true).Return(assert.AnError)

	err := svc.SyncStatus(context.Background(), "acct_4", true, uuid.NewString())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestSyncStatus_UpsertError(t *testing.T) {
	svc, repo := newAccountService(t)

	repo.EXPECT().SetEligibility(mock.Anything, "acct_5", false).Return(domain.ErrAccountNotFound)
	repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(assert.AnError)

	err := svc.SyncStatus(context.Background(), "acct_5", false, uuid.NewString())
	assert.Error(t, err)
}
