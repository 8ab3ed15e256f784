package ports

import (
	"context"
	"time"

	"mobile-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetEmailVerified(ctx context.Context, id uuid.UUID) error
	SetVerificationRequestedAt(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// CredentialRepository defines persistence for WebAuthn credentials.
type CredentialRepository interface {
	// Upsert inserts the credential, or on an existing credential id
	// reassigns it to the given user, refreshes the public key and
	// clears any revocation. Runs on the given transaction so the
	// credential and its first device commit together.
	Upsert(ctx context.Context, tx pgx.Tx, cred *domain.Credential) error
	GetByID(ctx context.Context, credentialID string) (*domain.Credential, error)
	// ListUsableByUser returns non-revoked credentials that have at
	// least one active device.
	ListUsableByUser(ctx context.Context, userID uuid.UUID) ([]domain.Credential, error)
	// UpdateSignCount moves the stored counter to a strictly larger
	// value after a successful assertion.
	UpdateSignCount(ctx context.Context, credentialID string, signCount uint32) error
	// Revoke atomically marks the credential revoked and deactivates
	// every device referencing it with the given reason.
	Revoke(ctx context.Context, credentialID string, reason string) error
}

// DeviceRepository defines persistence for device records.
type DeviceRepository interface {
	// Create runs on the given transaction; see
	// CredentialRepository.Upsert.
	Create(ctx context.Context, tx pgx.Tx, device *domain.Device) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Device, error)
	CountActiveByCredential(ctx context.Context, credentialID string) (int64, error)
	Deactivate(ctx context.Context, id uuid.UUID, reason string) error
}

// RefreshTokenRepository defines persistence for refresh-token records.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RefreshToken, error)
	// Revoke flips revoked=true and reports whether this call did the
	// flip. Concurrent presenters race on this single UPDATE; the
	// loser sees false.
	Revoke(ctx context.Context, id uuid.UUID) (bool, error)
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

// PendingTokenRepository defines persistence for one-shot
// email-verification and password-reset tokens.
type PendingTokenRepository interface {
	Create(ctx context.Context, kind domain.PendingTokenKind, token *domain.PendingToken) error
	GetByID(ctx context.Context, kind domain.PendingTokenKind, id uuid.UUID) (*domain.PendingToken, error)
	// Consume sets consumed_at and reports whether this call consumed
	// the token. Already-consumed tokens return false.
	Consume(ctx context.Context, kind domain.PendingTokenKind, id uuid.UUID) (bool, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking.
type WalletRepository interface {
	// GetOrCreateByUserID upserts the user's wallet, creating it with
	// the given currency, ACTIVE status and zero balance on first use.
	GetOrCreateByUserID(ctx context.Context, userID uuid.UUID, currency string) (*domain.Wallet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balanceMinor int64) error
}

// TransactionCursor is the keyset cursor for history pagination
// (created_at DESC, id DESC).
type TransactionCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// WalletTransactionRepository defines persistence for transactions and
// their double-entry ledger rows.
type WalletTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, txn *domain.WalletTransaction) error
	CreateLedgerEntries(ctx context.Context, tx pgx.Tx, entries []domain.WalletLedgerEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTransaction, error)
	GetByClientReference(ctx context.Context, fromWalletID uuid.UUID, clientReference string) (*domain.WalletTransaction, error)
	// DailyOutgoingTotal sums amount_minor over completed outgoing
	// transfers created at or after the given instant.
	DailyOutgoingTotal(ctx context.Context, walletID uuid.UUID, since time.Time) (int64, error)
	ListForWallet(ctx context.Context, walletID uuid.UUID, cursor *TransactionCursor, limit int) ([]domain.WalletTransaction, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
