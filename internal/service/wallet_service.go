package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"mobile-wallet-core/config"
	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.WalletTransactionRepository
	userRepo   ports.UserRepository
	transfer   config.TransferConfig
	currency   string
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	txRepo ports.WalletTransactionRepository,
	userRepo ports.UserRepository,
	transfer config.TransferConfig,
	defaultCurrency string,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		userRepo:   userRepo,
		transfer:   transfer,
		currency:   defaultCurrency,
		log:        log,
	}
}

// GetOrCreateWallet upserts the user's wallet, creating it ACTIVE with
// zero balance and the default currency on first use.
func (s *WalletServiceImpl) GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetOrCreateByUserID(ctx, userID, strings.ToUpper(s.currency))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get or create wallet: %w", err))
	}
	return wallet, nil
}

// GetWalletView returns the wallet with its configured limits and the
// amount already consumed today.
func (s *WalletServiceImpl) GetWalletView(ctx context.Context, userID uuid.UUID) (*ports.WalletView, error) {
	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	dailyUsed, err := s.DailyOutgoingTotal(ctx, wallet.ID)
	if err != nil {
		return nil, err
	}

	perTxMax := s.transfer.MaxAmountMinor
	if s.transfer.AbsoluteMaxMinor < perTxMax {
		perTxMax = s.transfer.AbsoluteMaxMinor
	}

	return &ports.WalletView{
		Wallet: wallet,
		Limits: ports.WalletLimits{
			MinAmountMinor:         s.transfer.MinAmountMinor,
			PerTransactionMaxMinor: perTxMax,
			DailyMaxMinor:          s.transfer.DailyLimitMinor,
			DailyUsedMinor:         dailyUsed,
		},
	}, nil
}

// DailyOutgoingTotal sums completed outgoing transfers since UTC
// midnight today.
func (s *WalletServiceImpl) DailyOutgoingTotal(ctx context.Context, walletID uuid.UUID) (int64, error) {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	total, err := s.txRepo.DailyOutgoingTotal(ctx, walletID, midnight)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("daily outgoing total: %w", err))
	}
	return total, nil
}

// ListTransactions returns the wallet's history newest-first with the
// counterparty identity masked.
func (s *WalletServiceImpl) ListTransactions(ctx context.Context, userID uuid.UUID, cursor string, limit int) (*ports.TransactionPage, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	var keyset *ports.TransactionCursor
	if cursor != "" {
		keyset, err = decodeCursor(cursor)
		if err != nil {
			return nil, apperror.Validation("malformed cursor")
		}
	}

	// Fetch one extra row to decide whether a next page exists.
	txns, err := s.txRepo.ListForWallet(ctx, wallet.ID, keyset, limit+1)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}

	var nextCursor *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		c := encodeCursor(last.CreatedAt, last.ID)
		nextCursor = &c
	}

	items := make([]ports.TransactionListItem, 0, len(txns))
	for i := range txns {
		txn := txns[i]
		item := ports.TransactionListItem{Transaction: &txns[i]}

		counterpartyWalletID := txn.ToWalletID
		if txn.FromWalletID == wallet.ID {
			item.Role = domain.TransferRoleSender
		} else {
			item.Role = domain.TransferRoleRecipient
			counterpartyWalletID = txn.FromWalletID
		}

		if counterparty, err := s.counterpartyIdentity(ctx, counterpartyWalletID); err == nil && counterparty != nil {
			item.CounterpartyID = domain.MaskEmail(counterparty.Email)
			item.CounterpartyName = domain.MaskName(counterparty.FirstName, counterparty.LastName)
		}

		items = append(items, item)
	}

	return &ports.TransactionPage{
		Items:      items,
		NextCursor: nextCursor,
		Limit:      limit,
	}, nil
}

func (s *WalletServiceImpl) counterpartyIdentity(ctx context.Context, walletID uuid.UUID) (*domain.User, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil || wallet == nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, wallet.UserID)
}

// encodeCursor packs the keyset position as an opaque token.
func encodeCursor(createdAt time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%s|%s", createdAt.UTC().Format(time.RFC3339Nano), id)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(cursor string) (*ports.TransactionCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("decoding cursor: %w", err)
	}
	createdAtStr, idStr, found := strings.Cut(string(raw), "|")
	if !found {
		return nil, fmt.Errorf("malformed cursor")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing cursor timestamp: %w", err)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parsing cursor id: %w", err)
	}
	return &ports.TransactionCursor{CreatedAt: createdAt, ID: id}, nil
}
