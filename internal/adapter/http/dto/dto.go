package dto

import "encoding/json"

// ---- Password auth ----

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Email     string  `json:"email" binding:"required,email,max=254"`
	Password  string  `json:"password" binding:"required,min=8,max=128"`
	FirstName *string `json:"firstName,omitempty" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName,omitempty" binding:"omitempty,max=100"`
}

// LoginRequest is the request body for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the raw refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// EmailRequest is the body for verification/reset requests.
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ConfirmTokenRequest carries a pending-token composite.
type ConfirmTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ConfirmResetRequest carries a reset composite and the new password.
type ConfirmResetRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=128"`
}

// TokenPairResponse is the issued session pair.
type TokenPairResponse struct {
	AccessToken      string `json:"accessToken"`
	AccessExpiresAt  string `json:"accessExpiresAt"`
	RefreshToken     string `json:"refreshToken"`
	RefreshExpiresAt string `json:"refreshExpiresAt"`
}

// UserResponse is the public projection of an account.
type UserResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	EmailVerified bool    `json:"emailVerified"`
	CreatedAt     string  `json:"createdAt"`
}

// AuthResponse pairs the user with the issued tokens.
type AuthResponse struct {
	User   UserResponse      `json:"user"`
	Tokens TokenPairResponse `json:"tokens"`
}

// SuccessResponse is the body for silent-success endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ---- Biometric auth & enrollment ----

// ChallengeRequest resolves a user by email XOR userId.
type ChallengeRequest struct {
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	UserID *string `json:"userId,omitempty" binding:"omitempty,uuid"`
}

// ChallengeResponse carries the handle and the credential options to
// feed the platform authenticator.
type ChallengeResponse struct {
	ChallengeID                string `json:"challengeId"`
	PublicKeyCredentialOptions any    `json:"publicKeyCredentialOptions"`
}

// VerifyRequest carries the challenge handle and the authenticator's
// response, passed through opaquely.
type VerifyRequest struct {
	ChallengeID string          `json:"challengeId" binding:"required"`
	Credential  json.RawMessage `json:"credential" binding:"required"`
}

// StepUpChallengeRequest optionally scopes the resulting token.
type StepUpChallengeRequest struct {
	Purpose *string `json:"purpose,omitempty" binding:"omitempty,max=100"`
}

// StepUpTokenResponse carries the minted step-up token.
type StepUpTokenResponse struct {
	StepUpToken string `json:"stepUpToken"`
	ExpiresAt   string `json:"expiresAt"`
}

// EnrollChallengeRequest optionally labels the device being enrolled.
type EnrollChallengeRequest struct {
	DeviceName *string `json:"deviceName,omitempty" binding:"omitempty,max=100"`
}

// EnrollResultResponse identifies the stored credential and device.
type EnrollResultResponse struct {
	CredentialID string `json:"credentialId"`
	DeviceID     string `json:"deviceId"`
}

// DeviceResponse is one device record.
type DeviceResponse struct {
	ID                string  `json:"id"`
	CredentialID      string  `json:"credentialId"`
	Label             *string `json:"label,omitempty"`
	Active            bool    `json:"active"`
	DeactivatedReason *string `json:"deactivatedReason,omitempty"`
	CreatedAt         string  `json:"createdAt"`
}

// ---- Wallet & transfers ----

// WalletResponse is the owner's balance+limits view.
type WalletResponse struct {
	ID                    string               `json:"id"`
	Currency              string               `json:"currency"`
	Status                string               `json:"status"`
	AvailableBalanceMinor int64                `json:"availableBalanceMinor"`
	Limits                WalletLimitsResponse `json:"limits"`
}

// WalletLimitsResponse is the configured+consumed limits block.
type WalletLimitsResponse struct {
	MinAmountMinor         int64 `json:"minAmountMinor"`
	PerTransactionMaxMinor int64 `json:"perTransactionMaxMinor"`
	DailyMaxMinor          int64 `json:"dailyMaxMinor"`
	DailyUsedMinor         int64 `json:"dailyUsedMinor"`
}

// RecipientIdentifierDTO selects a recipient by userId or email.
type RecipientIdentifierDTO struct {
	UserID *string `json:"userId,omitempty" binding:"omitempty,uuid"`
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
}

// ResolveRecipientRequest is the body for recipient resolution.
type ResolveRecipientRequest struct {
	Identifier RecipientIdentifierDTO `json:"identifier" binding:"required"`
}

// RecipientResponse is the masked recipient preview.
type RecipientResponse struct {
	UserID           string `json:"userId"`
	MaskedIdentifier string `json:"maskedIdentifier"`
	MaskedName       string `json:"maskedName"`
	WalletStatus     string `json:"walletStatus"`
}

// CreateTransferRequest is the body for an internal transfer.
type CreateTransferRequest struct {
	Recipient       RecipientIdentifierDTO `json:"recipient" binding:"required"`
	AmountMinor     int64                  `json:"amountMinor" binding:"required,gt=0"`
	Currency        string                 `json:"currency" binding:"required,len=3"`
	Note            *string                `json:"note,omitempty" binding:"omitempty,max=200"`
	ClientReference *string                `json:"clientReference,omitempty" binding:"omitempty,safe_id,max=100"`
	StepUpToken     *string                `json:"stepUpToken,omitempty"`
}

// TransactionResponse is the caller-scoped view of a transaction.
type TransactionResponse struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	Role            string  `json:"role"`
	AmountMinor     int64   `json:"amountMinor"`
	FeeMinor        int64   `json:"feeMinor"`
	Currency        string  `json:"currency"`
	Note            *string `json:"note,omitempty"`
	ClientReference *string `json:"clientReference,omitempty"`
	StepUpUsed      bool    `json:"stepUpUsed"`
	CreatedAt       string  `json:"createdAt"`
	CompletedAt     *string `json:"completedAt,omitempty"`
}

// TransactionListItemResponse is one history row with a masked
// counterparty.
type TransactionListItemResponse struct {
	TransactionResponse
	CounterpartyID   string `json:"counterpartyId,omitempty"`
	CounterpartyName string `json:"counterpartyName,omitempty"`
}
