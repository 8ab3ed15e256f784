package postgres

import (
	"context"
	"testing"
	"time"

	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(fromWalletID, toWalletID uuid.UUID) *domain.WalletTransaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	ref := "order-42"
	return &domain.WalletTransaction{
		ID:              uuid.New(),
		Type:            domain.TransactionTypeP2PTransfer,
		Status:          domain.TransactionStatusCompleted,
		FromWalletID:    fromWalletID,
		ToWalletID:      toWalletID,
		AmountMinor:     50_000,
		FeeMinor:        0,
		Currency:        "VND",
		ClientReference: &ref,
		StepUpUsed:      true,
		CreatedAt:       now,
		CompletedAt:     &now,
	}
}

func walletTxTestColumns() []string {
	return []string{
		"id", "type", "status", "from_wallet_id", "to_wallet_id",
		"amount_minor", "fee_minor", "currency", "note",
		"client_reference", "step_up_used", "created_at", "completed_at",
	}
}

func walletTxRow(t *domain.WalletTransaction) *pgxmock.Rows {
	return pgxmock.NewRows(walletTxTestColumns()).AddRow(
		t.ID, t.Type, t.Status, t.FromWalletID, t.ToWalletID,
		t.AmountMinor, t.FeeMinor, t.Currency, t.Note,
		t.ClientReference, t.StepUpUsed, t.CreatedAt, t.CompletedAt,
	)
}

func TestWalletTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletTransactionRepo(mock)
	txn := newTestTransaction(uuid.New(), uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallet_transactions").
		WithArgs(txn.ID, txn.Type, txn.Status, txn.FromWalletID, txn.ToWalletID,
			txn.AmountMinor, txn.FeeMinor, txn.Currency, txn.Note,
			txn.ClientReference, txn.StepUpUsed, txn.CreatedAt, txn.CompletedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletTransactionRepo_CreateLedgerEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletTransactionRepo(mock)
	txnID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	entries := []domain.WalletLedgerEntry{
		{ID: uuid.New(), TransactionID: txnID, WalletID: uuid.New(), Direction: domain.LedgerDirectionDebit, AmountMinor: 50_000, BalanceAfterMinor: 450_000, CreatedAt: now},
		{ID: uuid.New(), TransactionID: txnID, WalletID: uuid.New(), Direction: domain.LedgerDirectionCredit, AmountMinor: 50_000, BalanceAfterMinor: 250_000, CreatedAt: now},
	}

	mock.ExpectBegin()
	for _, e := range entries {
		mock.ExpectExec("INSERT INTO wallet_ledger_entries").
			WithArgs(e.ID, e.TransactionID, e.WalletID, e.Direction,
				e.AmountMinor, e.BalanceAfterMinor, e.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.CreateLedgerEntries(context.Background(), tx, entries)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletTransactionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletTransactionRepo(mock)
	txn := newTestTransaction(uuid.New(), uuid.New())

	mock.ExpectQuery("SELECT .+ FROM wallet_transactions WHERE id").
		WithArgs(txn.ID).
		WillReturnRows(walletTxRow(txn))

	result, err := repo.GetByID(context.Background(), txn.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.ID, result.ID)
	assert.True(t, result.StepUpUsed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletTransactionRepo_GetByClientReference_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletTransactionRepo(mock)
	fromWalletID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM wallet_transactions\\s+WHERE from_wallet_id .+ client_reference").
		WithArgs(fromWalletID, "order-42").
		WillReturnRows(pgxmock.NewRows(walletTxTestColumns()))

	result, err := repo.GetByClientReference(context.Background(), fromWalletID, "order-42")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletTransactionRepo_DailyOutgoingTotal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletTransactionRepo(mock)
	walletID := uuid.New()
	since := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount_minor\\), 0\\) FROM wallet_transactions").
		WithArgs(walletID, domain.TransactionStatusCompleted, since).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(120_000)))

	total, err := repo.DailyOutgoingTotal(context.Background(), walletID, since)
	require.NoError(t, err)
	assert.Equal(t, int64(120_000), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletTransactionRepo_ListForWallet_FirstPage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletTransactionRepo(mock)
	walletID := uuid.New()
	first := newTestTransaction(walletID, uuid.New())
	second := newTestTransaction(uuid.New(), walletID)

	rows := walletTxRow(first).AddRow(
		second.ID, second.Type, second.Status, second.FromWalletID, second.ToWalletID,
		second.AmountMinor, second.FeeMinor, second.Currency, second.Note,
		second.ClientReference, second.StepUpUsed, second.CreatedAt, second.CompletedAt,
	)

	mock.ExpectQuery("SELECT .+ FROM wallet_transactions\\s+WHERE \\(from_wallet_id = \\$1 OR to_wallet_id = \\$1\\)\\s+ORDER BY created_at DESC").
		WithArgs(walletID, 21).
		WillReturnRows(rows)

	txns, err := repo.ListForWallet(context.Background(), walletID, nil, 21)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, first.ID, txns[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletTransactionRepo_ListForWallet_WithCursor(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletTransactionRepo(mock)
	walletID := uuid.New()
	cursor := &ports.TransactionCursor{
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		ID:        uuid.New(),
	}

	mock.ExpectQuery("SELECT .+ FROM wallet_transactions\\s+WHERE \\(from_wallet_id = \\$1 OR to_wallet_id = \\$1\\)\\s+AND \\(created_at, id\\) < \\(\\$2, \\$3\\)").
		WithArgs(walletID, cursor.CreatedAt, cursor.ID, 21).
		WillReturnRows(pgxmock.NewRows(walletTxTestColumns()))

	txns, err := repo.ListForWallet(context.Background(), walletID, cursor, 21)
	require.NoError(t, err)
	assert.Empty(t, txns)
	assert.NoError(t, mock.ExpectationsWereMet())
}
