package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletTransactionRepo implements ports.WalletTransactionRepository.
type WalletTransactionRepo struct {
	pool Pool
}

// NewWalletTransactionRepo creates a new WalletTransactionRepo.
func NewWalletTransactionRepo(pool Pool) *WalletTransactionRepo {
	return &WalletTransactionRepo{pool: pool}
}

const walletTxColumns = `id, type, status, from_wallet_id, to_wallet_id, amount_minor, fee_minor, currency, note, client_reference, step_up_used, created_at, completed_at`

func scanWalletTransaction(row pgx.Row) (*domain.WalletTransaction, error) {
	t := &domain.WalletTransaction{}
	err := row.Scan(
		&t.ID, &t.Type, &t.Status, &t.FromWalletID, &t.ToWalletID,
		&t.AmountMinor, &t.FeeMinor, &t.Currency, &t.Note,
		&t.ClientReference, &t.StepUpUsed, &t.CreatedAt, &t.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// Create inserts a transaction within a database transaction.
func (r *WalletTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.WalletTransaction) error {
	query := `INSERT INTO wallet_transactions (id, type, status, from_wallet_id, to_wallet_id, amount_minor, fee_minor, currency, note, client_reference, step_up_used, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.Type, t.Status, t.FromWalletID, t.ToWalletID,
		t.AmountMinor, t.FeeMinor, t.Currency, t.Note,
		t.ClientReference, t.StepUpUsed, t.CreatedAt, t.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}
	return nil
}

// CreateLedgerEntries inserts the double-entry rows within a database
// transaction.
func (r *WalletTransactionRepo) CreateLedgerEntries(ctx context.Context, tx pgx.Tx, entries []domain.WalletLedgerEntry) error {
	query := `INSERT INTO wallet_ledger_entries (id, transaction_id, wallet_id, direction, amount_minor, balance_after_minor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, e := range entries {
		if _, err := tx.Exec(ctx, query,
			e.ID, e.TransactionID, e.WalletID, e.Direction,
			e.AmountMinor, e.BalanceAfterMinor, e.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert ledger entry: %w", err)
		}
	}
	return nil
}

// GetByID fetches a transaction by id.
func (r *WalletTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTransaction, error) {
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions WHERE id = $1`
	t, err := scanWalletTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get wallet transaction: %w", err)
	}
	return t, nil
}

// GetByClientReference fetches the sender-scoped idempotent prior, if
// any.
func (r *WalletTransactionRepo) GetByClientReference(ctx context.Context, fromWalletID uuid.UUID, clientReference string) (*domain.WalletTransaction, error) {
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions
		WHERE from_wallet_id = $1 AND client_reference = $2`

	t, err := scanWalletTransaction(r.pool.QueryRow(ctx, query, fromWalletID, clientReference))
	if err != nil {
		return nil, fmt.Errorf("get transaction by client reference: %w", err)
	}
	return t, nil
}

// DailyOutgoingTotal sums completed outgoing transfer amounts created
// at or after the given instant.
func (r *WalletTransactionRepo) DailyOutgoingTotal(ctx context.Context, walletID uuid.UUID, since time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(amount_minor), 0) FROM wallet_transactions
		WHERE from_wallet_id = $1 AND status = $2 AND created_at >= $3`

	var total int64
	err := r.pool.QueryRow(ctx, query, walletID, domain.TransactionStatusCompleted, since).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("daily outgoing total: %w", err)
	}
	return total, nil
}

// ListForWallet returns transactions where the wallet is a party,
// keyset-paginated on (created_at DESC, id DESC).
func (r *WalletTransactionRepo) ListForWallet(ctx context.Context, walletID uuid.UUID, cursor *ports.TransactionCursor, limit int) ([]domain.WalletTransaction, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if cursor != nil {
		query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions
			WHERE (from_wallet_id = $1 OR to_wallet_id = $1)
			AND (created_at, id) < ($2, $3)
			ORDER BY created_at DESC, id DESC LIMIT $4`
		rows, err = r.pool.Query(ctx, query, walletID, cursor.CreatedAt, cursor.ID, limit)
	} else {
		query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions
			WHERE (from_wallet_id = $1 OR to_wallet_id = $1)
			ORDER BY created_at DESC, id DESC LIMIT $2`
		rows, err = r.pool.Query(ctx, query, walletID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.WalletTransaction
	for rows.Next() {
		t := domain.WalletTransaction{}
		if err := rows.Scan(
			&t.ID, &t.Type, &t.Status, &t.FromWalletID, &t.ToWalletID,
			&t.AmountMinor, &t.FeeMinor, &t.Currency, &t.Note,
			&t.ClientReference, &t.StepUpUsed, &t.CreatedAt, &t.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan wallet transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
