package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// WalletStatus represents the lifecycle state of a wallet.
type WalletStatus string

const (
	WalletStatusActive  WalletStatus = "ACTIVE"
	WalletStatusBlocked WalletStatus = "BLOCKED"
	WalletStatusClosed  WalletStatus = "CLOSED"
)

// Wallet holds one user's balance in minor currency units. The
// committed balance is never negative.
type Wallet struct {
	ID                    uuid.UUID    `json:"id"`
	UserID                uuid.UUID    `json:"user_id"`
	Currency              string       `json:"currency"`
	Status                WalletStatus `json:"status"`
	AvailableBalanceMinor int64        `json:"available_balance_minor"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

// CurrencyMatches compares currencies case-insensitively.
func (w *Wallet) CurrencyMatches(currency string) bool {
	return strings.EqualFold(w.Currency, currency)
}

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeP2PTransfer TransactionType = "P2P_TRANSFER"
)

// TransactionStatus represents the lifecycle state of a transaction.
// Transfers commit terminally as COMPLETED; PENDING is reserved for
// future async paths.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// WalletTransaction is an immutable record of one transfer.
// ClientReference is unique per (FromWalletID, ClientReference).
type WalletTransaction struct {
	ID              uuid.UUID         `json:"id"`
	Type            TransactionType   `json:"type"`
	Status          TransactionStatus `json:"status"`
	FromWalletID    uuid.UUID         `json:"from_wallet_id"`
	ToWalletID      uuid.UUID         `json:"to_wallet_id"`
	AmountMinor     int64             `json:"amount_minor"`
	FeeMinor        int64             `json:"fee_minor"`
	Currency        string            `json:"currency"`
	Note            *string           `json:"note,omitempty"`
	ClientReference *string           `json:"client_reference,omitempty"`
	StepUpUsed      bool              `json:"step_up_used"`
	CreatedAt       time.Time         `json:"created_at"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
}

// LedgerDirection is the side of a double-entry pair.
type LedgerDirection string

const (
	LedgerDirectionDebit  LedgerDirection = "DEBIT"
	LedgerDirectionCredit LedgerDirection = "CREDIT"
)

// WalletLedgerEntry is one side of the double-entry pair written for
// every committed transaction. BalanceAfterMinor snapshots the
// wallet's committed post-state.
type WalletLedgerEntry struct {
	ID                uuid.UUID       `json:"id"`
	TransactionID     uuid.UUID       `json:"transaction_id"`
	WalletID          uuid.UUID       `json:"wallet_id"`
	Direction         LedgerDirection `json:"direction"`
	AmountMinor       int64           `json:"amount_minor"`
	BalanceAfterMinor int64           `json:"balance_after_minor"`
	CreatedAt         time.Time       `json:"created_at"`
}

// TransferRole is the caller's side of a transaction.
type TransferRole string

const (
	TransferRoleSender    TransferRole = "SENDER"
	TransferRoleRecipient TransferRole = "RECIPIENT"
)
