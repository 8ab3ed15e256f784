package service

import (
	"context"
	"testing"
	"time"

	"mobile-wallet-core/config"
	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports/mocks"
	"mobile-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testTransferConfig() config.TransferConfig {
	return config.TransferConfig{
		MinAmountMinor:          100,
		MaxAmountMinor:          500_000,
		AbsoluteMaxMinor:        250_000,
		DailyLimitMinor:         1_000_000,
		HighValueThresholdMinor: 100_000,
	}
}

func setupWalletService(t *testing.T) (
	*WalletServiceImpl,
	*mocks.MockWalletRepository,
	*mocks.MockWalletTransactionRepository,
	*mocks.MockUserRepository,
	*gomock.Controller,
) {
	ctrl := gomock.NewController(t)
	walletRepo := mocks.NewMockWalletRepository(ctrl)
	txRepo := mocks.NewMockWalletTransactionRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewWalletService(walletRepo, txRepo, userRepo, testTransferConfig(), "vnd", zerolog.Nop())
	return svc, walletRepo, txRepo, userRepo, ctrl
}

func activeWallet(userID uuid.UUID) *domain.Wallet {
	return &domain.Wallet{
		ID:                    uuid.New(),
		UserID:                userID,
		Currency:              "VND",
		Status:                domain.WalletStatusActive,
		AvailableBalanceMinor: 500_000,
	}
}

func TestWalletService_GetOrCreateWallet_UppercasesCurrency(t *testing.T) {
	svc, walletRepo, _, _, ctrl := setupWalletService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	wallet := activeWallet(userID)

	walletRepo.EXPECT().GetOrCreateByUserID(ctx, userID, "VND").Return(wallet, nil)

	got, err := svc.GetOrCreateWallet(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, got.ID)
}

func TestWalletService_GetWalletView_PerTxMaxIsTighterBound(t *testing.T) {
	svc, walletRepo, txRepo, _, ctrl := setupWalletService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	wallet := activeWallet(userID)

	walletRepo.EXPECT().GetOrCreateByUserID(ctx, userID, "VND").Return(wallet, nil)
	txRepo.EXPECT().DailyOutgoingTotal(ctx, wallet.ID, gomock.Any()).Return(int64(40_000), nil)

	view, err := svc.GetWalletView(ctx, userID)
	require.NoError(t, err)
	// absolute_max_minor (250k) undercuts max_amount_minor (500k).
	assert.Equal(t, int64(250_000), view.Limits.PerTransactionMaxMinor)
	assert.Equal(t, int64(100), view.Limits.MinAmountMinor)
	assert.Equal(t, int64(1_000_000), view.Limits.DailyMaxMinor)
	assert.Equal(t, int64(40_000), view.Limits.DailyUsedMinor)
}

func TestWalletService_DailyOutgoingTotal_SinceUTCMidnight(t *testing.T) {
	svc, _, txRepo, _, ctrl := setupWalletService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	txRepo.EXPECT().DailyOutgoingTotal(ctx, walletID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, since time.Time) (int64, error) {
			now := time.Now().UTC()
			want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			assert.Equal(t, want, since)
			return int64(12_345), nil
		})

	total, err := svc.DailyOutgoingTotal(ctx, walletID)
	require.NoError(t, err)
	assert.Equal(t, int64(12_345), total)
}

func TestWalletService_ListTransactions_DefaultAndMaxLimit(t *testing.T) {
	svc, walletRepo, txRepo, _, ctrl := setupWalletService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	wallet := activeWallet(userID)

	walletRepo.EXPECT().GetOrCreateByUserID(ctx, userID, "VND").Return(wallet, nil).Times(2)
	txRepo.EXPECT().ListForWallet(ctx, wallet.ID, nil, defaultPageLimit+1).Return(nil, nil)
	txRepo.EXPECT().ListForWallet(ctx, wallet.ID, nil, maxPageLimit+1).Return(nil, nil)

	page, err := svc.ListTransactions(ctx, userID, "", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultPageLimit, page.Limit)

	page, err = svc.ListTransactions(ctx, userID, "", 500)
	require.NoError(t, err)
	assert.Equal(t, maxPageLimit, page.Limit)
}

func TestWalletService_ListTransactions_MalformedCursor(t *testing.T) {
	svc, walletRepo, _, _, ctrl := setupWalletService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	wallet := activeWallet(userID)

	walletRepo.EXPECT().GetOrCreateByUserID(ctx, userID, "VND").Return(wallet, nil)

	_, err := svc.ListTransactions(ctx, userID, "!!not-base64!!", 10)
	requireAppErrorCode(t, err, apperror.CodeValidationFailed)
}

func TestWalletService_ListTransactions_NextCursorRoundTrip(t *testing.T) {
	svc, walletRepo, txRepo, userRepo, ctrl := setupWalletService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	wallet := activeWallet(userID)
	otherWallet := activeWallet(uuid.New())
	counterparty := &domain.User{ID: otherWallet.UserID, Email: "bob@example.com"}

	now := time.Now().UTC()
	txns := []domain.WalletTransaction{
		{ID: uuid.New(), FromWalletID: wallet.ID, ToWalletID: otherWallet.ID, AmountMinor: 1000, Currency: "VND", CreatedAt: now},
		{ID: uuid.New(), FromWalletID: otherWallet.ID, ToWalletID: wallet.ID, AmountMinor: 2000, Currency: "VND", CreatedAt: now.Add(-time.Minute)},
		{ID: uuid.New(), FromWalletID: wallet.ID, ToWalletID: otherWallet.ID, AmountMinor: 3000, Currency: "VND", CreatedAt: now.Add(-2 * time.Minute)},
	}

	walletRepo.EXPECT().GetOrCreateByUserID(ctx, userID, "VND").Return(wallet, nil)
	// limit 2 plus the look-ahead row.
	txRepo.EXPECT().ListForWallet(ctx, wallet.ID, nil, 3).Return(txns, nil)
	walletRepo.EXPECT().GetByID(ctx, otherWallet.ID).Return(otherWallet, nil).Times(2)
	userRepo.EXPECT().GetByID(ctx, otherWallet.UserID).Return(counterparty, nil).Times(2)

	page, err := svc.ListTransactions(ctx, userID, "", 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, domain.TransferRoleSender, page.Items[0].Role)
	assert.Equal(t, domain.TransferRoleRecipient, page.Items[1].Role)
	assert.Equal(t, domain.MaskEmail("bob@example.com"), page.Items[0].CounterpartyID)

	require.NotNil(t, page.NextCursor)
	keyset, err := decodeCursor(*page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, txns[1].ID, keyset.ID)
	assert.True(t, keyset.CreatedAt.Equal(txns[1].CreatedAt))
}

func TestWalletService_ListTransactions_LastPageHasNoCursor(t *testing.T) {
	svc, walletRepo, txRepo, userRepo, ctrl := setupWalletService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	wallet := activeWallet(userID)
	otherWallet := activeWallet(uuid.New())

	txns := []domain.WalletTransaction{
		{ID: uuid.New(), FromWalletID: wallet.ID, ToWalletID: otherWallet.ID, AmountMinor: 1000, Currency: "VND", CreatedAt: time.Now().UTC()},
	}

	walletRepo.EXPECT().GetOrCreateByUserID(ctx, userID, "VND").Return(wallet, nil)
	txRepo.EXPECT().ListForWallet(ctx, wallet.ID, nil, 11).Return(txns, nil)
	walletRepo.EXPECT().GetByID(ctx, otherWallet.ID).Return(otherWallet, nil)
	userRepo.EXPECT().GetByID(ctx, otherWallet.UserID).Return(&domain.User{ID: otherWallet.UserID, Email: "bob@example.com"}, nil)

	page, err := svc.ListTransactions(ctx, userID, "", 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Nil(t, page.NextCursor)
}

func TestEncodeDecodeCursor(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 8, 24, 12, 30, 45, 123456789, time.UTC)

	keyset, err := decodeCursor(encodeCursor(at, id))
	require.NoError(t, err)
	assert.Equal(t, id, keyset.ID)
	assert.True(t, keyset.CreatedAt.Equal(at))

	_, err = decodeCursor("bm8tcGlwZS1oZXJl")
	assert.Error(t, err)
}
