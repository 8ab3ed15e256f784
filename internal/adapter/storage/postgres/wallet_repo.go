package postgres

import (
	"context"
	"errors"
	"fmt"

	"mobile-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, user_id, currency, status, available_balance_minor, created_at, updated_at`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.Currency, &w.Status,
		&w.AvailableBalanceMinor, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}

// GetOrCreateByUserID upserts the user's wallet keyed by the unique
// user_id, creating it ACTIVE with zero balance on first use.
func (r *WalletRepo) GetOrCreateByUserID(ctx context.Context, userID uuid.UUID, currency string) (*domain.Wallet, error) {
	query := `INSERT INTO wallets (id, user_id, currency, status, available_balance_minor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET updated_at = wallets.updated_at
		RETURNING ` + walletColumns

	w, err := scanWallet(r.pool.QueryRow(ctx, query, uuid.New(), userID, currency, domain.WalletStatusActive))
	if err != nil {
		return nil, fmt.Errorf("get or create wallet: %w", err)
	}
	return w, nil
}

// GetByID fetches a wallet by id (non-locking read).
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`
	w, err := scanWallet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// GetByUserID fetches a wallet by owner (non-locking read).
func (r *WalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`
	w, err := scanWallet(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("get wallet by user id: %w", err)
	}
	return w, nil
}

// GetByIDForUpdate fetches a wallet by id with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`
	w, err := scanWallet(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// UpdateBalance sets a wallet's balance within a transaction.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balanceMinor int64) error {
	query := `UPDATE wallets SET available_balance_minor = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balanceMinor, walletID)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}
