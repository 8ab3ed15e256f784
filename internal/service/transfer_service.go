package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"mobile-wallet-core/config"
	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// stepUpPurposeTransfer is the purpose fragment a step-up token must
// carry to authorize a transfer.
const stepUpPurposeTransfer = "transaction:transfer"

// TransferServiceImpl implements ports.TransferService: validated,
// atomic, idempotent internal transfers with step-up gating.
type TransferServiceImpl struct {
	userRepo   ports.UserRepository
	walletRepo ports.WalletRepository
	txRepo     ports.WalletTransactionRepository
	walletSvc  ports.WalletService
	tokenSvc   ports.TokenService
	transactor ports.DBTransactor
	cfg        config.TransferConfig
	currency   string
	log        zerolog.Logger
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	userRepo ports.UserRepository,
	walletRepo ports.WalletRepository,
	txRepo ports.WalletTransactionRepository,
	walletSvc ports.WalletService,
	tokenSvc ports.TokenService,
	transactor ports.DBTransactor,
	cfg config.TransferConfig,
	defaultCurrency string,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		txRepo:     txRepo,
		walletSvc:  walletSvc,
		tokenSvc:   tokenSvc,
		transactor: transactor,
		cfg:        cfg,
		currency:   strings.ToUpper(defaultCurrency),
		log:        log,
	}
}

// ResolveRecipient looks up a recipient by userId or email and returns
// a masked identity preview. The sender's own account is rejected.
func (s *TransferServiceImpl) ResolveRecipient(ctx context.Context, senderUserID uuid.UUID, identifier ports.RecipientIdentifier) (*ports.RecipientInfo, error) {
	recipient, err := s.lookupRecipient(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if recipient.ID == senderUserID {
		return nil, apperror.ErrSameWalletTransfer()
	}

	wallet, err := s.walletRepo.GetOrCreateByUserID(ctx, recipient.ID, s.defaultCurrency())
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve recipient wallet: %w", err))
	}

	return &ports.RecipientInfo{
		UserID:           recipient.ID,
		MaskedIdentifier: domain.MaskEmail(recipient.Email),
		MaskedName:       domain.MaskName(recipient.FirstName, recipient.LastName),
		WalletStatus:     wallet.Status,
	}, nil
}

// Transfer runs the full preflight outside the DB transaction, then
// commits the balance movement atomically under row locks.
func (s *TransferServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*ports.TransferResult, error) {
	// Preflight 1-2: resolve both parties and their wallets.
	senderWallet, err := s.walletRepo.GetOrCreateByUserID(ctx, req.SenderUserID, s.defaultCurrency())
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve sender wallet: %w", err))
	}

	recipient, err := s.lookupRecipient(ctx, req.Recipient)
	if err != nil {
		return nil, err
	}
	if recipient.ID == req.SenderUserID {
		return nil, apperror.ErrSameWalletTransfer()
	}

	recipientWallet, err := s.walletRepo.GetOrCreateByUserID(ctx, recipient.ID, s.defaultCurrency())
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve recipient wallet: %w", err))
	}

	if senderWallet.Status != domain.WalletStatusActive {
		return nil, apperror.ErrWalletBlocked()
	}
	if recipientWallet.Status == domain.WalletStatusClosed {
		return nil, apperror.ErrWalletBlocked()
	}

	// Preflight 3: currency agreement across both wallets and the request.
	if !senderWallet.CurrencyMatches(req.Currency) || !recipientWallet.CurrencyMatches(req.Currency) {
		return nil, apperror.Validation("currency mismatch")
	}

	// Preflight 4: per-transaction bounds.
	maxAmount := s.cfg.MaxAmountMinor
	if s.cfg.AbsoluteMaxMinor < maxAmount {
		maxAmount = s.cfg.AbsoluteMaxMinor
	}
	if req.AmountMinor < s.cfg.MinAmountMinor || req.AmountMinor > maxAmount {
		return nil, apperror.ErrLimitExceeded(fmt.Sprintf(
			"amount must be between %d and %d minor units", s.cfg.MinAmountMinor, maxAmount))
	}

	// Preflight 5: daily limit.
	dailyTotal, err := s.walletSvc.DailyOutgoingTotal(ctx, senderWallet.ID)
	if err != nil {
		return nil, err
	}
	if dailyTotal+req.AmountMinor > s.cfg.DailyLimitMinor {
		return nil, apperror.ErrLimitExceeded("daily transfer limit exceeded")
	}

	// Preflight 6: optimistic balance check; re-verified under lock.
	if senderWallet.AvailableBalanceMinor < req.AmountMinor {
		return nil, apperror.ErrInsufficientFunds()
	}

	// Preflight 7: step-up gate.
	stepUpRequired := req.AmountMinor >= s.cfg.HighValueThresholdMinor ||
		10*(dailyTotal+req.AmountMinor) >= 8*s.cfg.DailyLimitMinor
	if stepUpRequired {
		if err := s.verifyStepUp(req.SenderUserID, req.StepUpToken); err != nil {
			return nil, err
		}
	}

	// Preflight 8: client-reference idempotency.
	if req.ClientReference != nil && *req.ClientReference != "" {
		prior, err := s.txRepo.GetByClientReference(ctx, senderWallet.ID, *req.ClientReference)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("idempotency lookup: %w", err))
		}
		if prior != nil {
			if prior.ToWalletID == recipientWallet.ID &&
				prior.AmountMinor == req.AmountMinor &&
				strings.EqualFold(prior.Currency, req.Currency) {
				return &ports.TransferResult{Transaction: prior, Role: domain.TransferRoleSender}, nil
			}
			return nil, apperror.Conflict("clientReference already used with different parameters")
		}
	}

	txn, err := s.commitTransfer(ctx, senderWallet.ID, recipientWallet.ID, req, stepUpRequired)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("from_wallet", senderWallet.ID.String()).
		Str("to_wallet", recipientWallet.ID.String()).
		Int64("amount_minor", txn.AmountMinor).
		Bool("step_up_used", txn.StepUpUsed).
		Msg("transfer completed")

	return &ports.TransferResult{Transaction: txn, Role: domain.TransferRoleSender}, nil
}

// commitTransfer is the atomic half: lock both wallets in id order,
// re-verify funds, write the transaction, its double-entry pair and
// both balances in one DB transaction.
func (s *TransferServiceImpl) commitTransfer(ctx context.Context, fromWalletID, toWalletID uuid.UUID, req ports.TransferRequest, stepUpUsed bool) (*domain.WalletTransaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Deterministic lock order prevents deadlock between opposing
	// concurrent transfers.
	lockOrder := []uuid.UUID{fromWalletID, toWalletID}
	sort.Slice(lockOrder, func(i, j int) bool {
		return lockOrder[i].String() < lockOrder[j].String()
	})

	locked := make(map[uuid.UUID]*domain.Wallet, 2)
	for _, id := range lockOrder {
		w, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, id)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
		}
		if w == nil {
			return nil, apperror.NotFound("wallet")
		}
		locked[id] = w
	}

	sender := locked[fromWalletID]
	recipient := locked[toWalletID]

	// Funds re-check under lock is authoritative.
	if sender.AvailableBalanceMinor < req.AmountMinor {
		return nil, apperror.ErrInsufficientFunds()
	}

	senderBalance := sender.AvailableBalanceMinor - req.AmountMinor
	recipientBalance := recipient.AvailableBalanceMinor + req.AmountMinor

	now := time.Now().UTC()
	txn := &domain.WalletTransaction{
		ID:              uuid.New(),
		Type:            domain.TransactionTypeP2PTransfer,
		Status:          domain.TransactionStatusCompleted,
		FromWalletID:    fromWalletID,
		ToWalletID:      toWalletID,
		AmountMinor:     req.AmountMinor,
		FeeMinor:        0,
		Currency:        strings.ToUpper(req.Currency),
		Note:            req.Note,
		ClientReference: req.ClientReference,
		StepUpUsed:      stepUpUsed,
		CreatedAt:       now,
		CompletedAt:     &now,
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Conflict("clientReference already used")
		}
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	entries := []domain.WalletLedgerEntry{
		{
			ID:                uuid.New(),
			TransactionID:     txn.ID,
			WalletID:          fromWalletID,
			Direction:         domain.LedgerDirectionDebit,
			AmountMinor:       req.AmountMinor,
			BalanceAfterMinor: senderBalance,
			CreatedAt:         now,
		},
		{
			ID:                uuid.New(),
			TransactionID:     txn.ID,
			WalletID:          toWalletID,
			Direction:         domain.LedgerDirectionCredit,
			AmountMinor:       req.AmountMinor,
			BalanceAfterMinor: recipientBalance,
			CreatedAt:         now,
		},
	}
	if err := s.txRepo.CreateLedgerEntries(ctx, dbTx, entries); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create ledger entries: %w", err))
	}

	if err := s.walletRepo.UpdateBalance(ctx, dbTx, fromWalletID, senderBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update sender balance: %w", err))
	}
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, toWalletID, recipientBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update recipient balance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return txn, nil
}

// GetTransactionForUser returns a transaction only when the caller's
// wallet is a party, with the role computed from the sender side.
func (s *TransferServiceImpl) GetTransactionForUser(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID) (*ports.TransferResult, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.NotFound("transaction")
	}

	txn, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find transaction: %w", err))
	}
	if txn == nil || (txn.FromWalletID != wallet.ID && txn.ToWalletID != wallet.ID) {
		return nil, apperror.NotFound("transaction")
	}

	role := domain.TransferRoleRecipient
	if txn.FromWalletID == wallet.ID {
		role = domain.TransferRoleSender
	}
	return &ports.TransferResult{Transaction: txn, Role: role}, nil
}

// verifyStepUp enforces the step-up token contract: present, valid,
// type step_up, issued to the sender, and scoped to transfers when a
// purpose is carried.
func (s *TransferServiceImpl) verifyStepUp(senderUserID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return apperror.Unauthorized("step-up required for this transfer")
	}

	claims, err := s.tokenSvc.ValidateStepUp(token)
	if err != nil {
		return apperror.Unauthorized("invalid step-up token")
	}
	if claims.UserID != senderUserID {
		return apperror.Unauthorized("invalid step-up token")
	}
	if claims.Purpose != "" && !strings.Contains(claims.Purpose, stepUpPurposeTransfer) {
		return apperror.Forbidden("step-up token purpose does not cover transfers")
	}
	return nil
}

func (s *TransferServiceImpl) lookupRecipient(ctx context.Context, identifier ports.RecipientIdentifier) (*domain.User, error) {
	if (identifier.UserID == nil) == (identifier.Email == nil) {
		return nil, apperror.Validation("exactly one of userId or email is required")
	}

	var (
		user *domain.User
		err  error
	)
	if identifier.UserID != nil {
		user, err = s.userRepo.GetByID(ctx, *identifier.UserID)
	} else {
		user, err = s.userRepo.GetByEmail(ctx, domain.NormalizeEmail(*identifier.Email))
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find recipient: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrRecipientNotFound()
	}
	return user, nil
}

func (s *TransferServiceImpl) defaultCurrency() string {
	return s.currency
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). Concurrent inserts racing on the same
// clientReference land here.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
