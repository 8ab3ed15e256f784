package ports

import (
	"context"
	"encoding/json"
	"time"

	"mobile-wallet-core/internal/core/domain"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"
)

// HashService handles Argon2id hashing for passwords, refresh tokens
// and pending-token secrets.
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// Claim payloads carried by the three token kinds.
type (
	AccessClaims struct {
		UserID uuid.UUID
	}
	RefreshClaims struct {
		UserID  uuid.UUID
		TokenID uuid.UUID // jti
	}
	StepUpClaims struct {
		UserID      uuid.UUID
		Purpose     string
		ChallengeID string
	}
)

// TokenService mints and verifies the HMAC-signed access, refresh and
// step-up tokens. Verification failures (bad signature, expiry, type
// mismatch) surface as UNAUTHORIZED.
type TokenService interface {
	GenerateAccess(userID uuid.UUID) (string, time.Time, error)
	GenerateRefresh(userID uuid.UUID, tokenID uuid.UUID) (string, time.Time, error)
	GenerateStepUp(userID uuid.UUID, purpose string, challengeID string) (string, time.Time, error)
	ValidateAccess(token string) (*AccessClaims, error)
	ValidateRefresh(token string) (*RefreshClaims, error)
	ValidateStepUp(token string) (*StepUpClaims, error)
}

// PendingTokenService issues and one-shot-consumes the
// "<id>.<secret_hex>" composites backing email verification and
// password reset.
type PendingTokenService interface {
	Create(ctx context.Context, kind domain.PendingTokenKind, userID uuid.UUID, ttl time.Duration) (string, error)
	// Consume returns the owning user id. ok=false for missing,
	// expired, already consumed or mismatched tokens; replay after a
	// successful consume also yields ok=false.
	Consume(ctx context.Context, kind domain.PendingTokenKind, composite string) (userID uuid.UUID, ok bool, err error)
}

// SignCountMode selects the reaction to an authenticator sign-count
// regression.
type SignCountMode string

const (
	SignCountModeStrict  SignCountMode = "STRICT"
	SignCountModeLenient SignCountMode = "LENIENT"
)

// RegistrationResult is the verified outcome of an attestation.
type RegistrationResult struct {
	CredentialID string
	PublicKey    []byte
	SignCount    uint32
	AAGUID       string
	Transports   []string
}

// AssertionResult is the verified outcome of an assertion.
type AssertionResult struct {
	CredentialID string
	NewSignCount uint32
}

// WebAuthnProvider is the boundary over the WebAuthn primitive
// library: generate options, verify responses, expose relying-party
// configuration. Swappable by a test double.
type WebAuthnProvider interface {
	BeginRegistration(user *domain.User, exclude []domain.Credential) (*protocol.CredentialCreation, *webauthn.SessionData, error)
	FinishRegistration(user *domain.User, session webauthn.SessionData, response json.RawMessage) (*RegistrationResult, error)
	BeginLogin(user *domain.User, allow []domain.Credential) (*protocol.CredentialAssertion, *webauthn.SessionData, error)
	FinishLogin(user *domain.User, cred *domain.Credential, session webauthn.SessionData, response json.RawMessage) (*AssertionResult, error)
	ChallengeTTL() time.Duration
	SignCountMode() SignCountMode
}

// MailSender delivers account emails. Swappable by a test double.
type MailSender interface {
	SendVerification(ctx context.Context, email string, token string) error
	SendPasswordReset(ctx context.Context, email string, token string) error
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimiter is a fixed-window counter per composite key. Counters
// are not refunded on downstream failure.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// ChallengeStore holds WebAuthn challenge state with TTL.
type ChallengeStore interface {
	Put(ctx context.Context, challengeID string, state *domain.ChallengeState, ttl time.Duration) error
	// Take fetch-and-deletes the state; a second concurrent taker sees
	// nil. Returns nil, nil when missing or expired.
	Take(ctx context.Context, challengeID string) (*domain.ChallengeState, error)
}

// IdempotencyCache is the ephemeral-store side of the HTTP idempotency
// gate: cached responses plus an in-flight lock.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil when absent
	AcquireLock(ctx context.Context, lockKey string, ttl time.Duration) (bool, error)
	// StoreAndUnlock writes the cached response and deletes the lock
	// in one multi-op.
	StoreAndUnlock(ctx context.Context, key string, value []byte, ttl time.Duration, lockKey string) error
	Unlock(ctx context.Context, lockKey string) error
}

// --- Service Ports (Business Logic) ---

// TokenPair is an access+refresh issuance.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// AuthResult is a successful authentication outcome.
type AuthResult struct {
	User   *domain.User
	Tokens TokenPair
}

// RegisterRequest holds validated input for user registration.
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

// PasswordAuthService defines the knowledge-factor ladder.
type PasswordAuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password, clientIP string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken, clientIP string) (*TokenPair, error)
	// Logout best-effort revokes the referenced record; it never fails
	// the caller.
	Logout(ctx context.Context, refreshToken string) error
	// RequestVerification and RequestPasswordReset succeed silently
	// regardless of whether the email exists.
	RequestVerification(ctx context.Context, email string) error
	ConfirmVerification(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

// LoginChallengeRequest resolves the user by email XOR userId.
type LoginChallengeRequest struct {
	Email    *string
	UserID   *uuid.UUID
	ClientIP string
}

// ChallengeResponse carries the challenge handle and the
// publicKeyCredential options to hand to the client.
type ChallengeResponse struct {
	ChallengeID string
	Options     any
}

// BiometricAuthService defines the possession/biometric ladder: login
// producing session tokens and step-up producing a purpose-scoped
// short-lived token.
type BiometricAuthService interface {
	BeginLogin(ctx context.Context, req LoginChallengeRequest) (*ChallengeResponse, error)
	FinishLogin(ctx context.Context, challengeID string, credential json.RawMessage) (*AuthResult, error)
	BeginStepUp(ctx context.Context, userID uuid.UUID, purpose *string, clientIP string) (*ChallengeResponse, error)
	FinishStepUp(ctx context.Context, userID uuid.UUID, challengeID string, credential json.RawMessage) (string, time.Time, error)
}

// EnrollmentResult is the outcome of a completed enrollment.
type EnrollmentResult struct {
	CredentialID string
	DeviceID     uuid.UUID
}

// EnrollmentService binds a new credential and device to a user.
type EnrollmentService interface {
	BeginEnrollment(ctx context.Context, userID uuid.UUID, deviceName *string, clientIP string) (*ChallengeResponse, error)
	FinishEnrollment(ctx context.Context, challengeID string, credential json.RawMessage) (*EnrollmentResult, error)
}

// CredentialService applies the sign-count policy and manages devices.
type CredentialService interface {
	// ReconcileSignCount applies the post-assertion policy: advance on
	// increase, no-op on equality, revoke-and-fail (STRICT) or
	// log-and-continue (LENIENT) on regression.
	ReconcileSignCount(ctx context.Context, cred *domain.Credential, newSignCount uint32) error
	ListDevices(ctx context.Context, userID uuid.UUID) ([]domain.Device, error)
	RevokeDevice(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID) error
}

// WalletLimits is the configured+consumed limit view.
type WalletLimits struct {
	MinAmountMinor         int64
	PerTransactionMaxMinor int64
	DailyMaxMinor          int64
	DailyUsedMinor         int64
}

// WalletView is the balance+limits projection for the owner.
type WalletView struct {
	Wallet *domain.Wallet
	Limits WalletLimits
}

// TransactionListItem is one history row with the counterparty masked.
type TransactionListItem struct {
	Transaction      *domain.WalletTransaction
	Role             domain.TransferRole
	CounterpartyID   string // masked email
	CounterpartyName string // masked name
}

// TransactionPage is a cursor-paginated history slice.
type TransactionPage struct {
	Items      []TransactionListItem
	NextCursor *string
	Limit      int
}

// WalletService defines wallet views and history.
type WalletService interface {
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetWalletView(ctx context.Context, userID uuid.UUID) (*WalletView, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, cursor string, limit int) (*TransactionPage, error)
	DailyOutgoingTotal(ctx context.Context, walletID uuid.UUID) (int64, error)
}

// RecipientIdentifier resolves a recipient by userId or email.
type RecipientIdentifier struct {
	UserID *uuid.UUID
	Email  *string
}

// RecipientInfo is the masked identity returned by recipient
// resolution.
type RecipientInfo struct {
	UserID           uuid.UUID
	MaskedIdentifier string
	MaskedName       string
	WalletStatus     domain.WalletStatus
}

// TransferRequest holds validated input for an internal transfer.
type TransferRequest struct {
	SenderUserID    uuid.UUID
	Recipient       RecipientIdentifier
	AmountMinor     int64
	Currency        string
	Note            *string
	ClientReference *string
	// StepUpToken is the header token when present, otherwise the body
	// token.
	StepUpToken string
}

// TransferResult is the caller-scoped view of a transaction.
type TransferResult struct {
	Transaction *domain.WalletTransaction
	Role        domain.TransferRole
}

// TransferService defines the validated, atomic, idempotent internal
// transfer with step-up gating.
type TransferService interface {
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
	GetTransactionForUser(ctx context.Context, userID uuid.UUID, transactionID uuid.UUID) (*TransferResult, error)
	ResolveRecipient(ctx context.Context, senderUserID uuid.UUID, identifier RecipientIdentifier) (*RecipientInfo, error)
}
