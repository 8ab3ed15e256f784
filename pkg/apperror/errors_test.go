package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New(CodeInsufficientFunds, "Insufficient balance in wallet", http.StatusUnprocessableEntity),
			expected: "[INSUFFICIENT_FUNDS] Insufficient balance in wallet",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[INTERNAL] Internal server error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(CodeInternal, "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_NilUnwrap(t *testing.T) {
	appErr := New(CodeValidationFailed, "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Unauthorized", Unauthorized(""), "UNAUTHORIZED", 401},
		{"Forbidden", Forbidden(""), "FORBIDDEN", 403},
		{"EmailNotVerified", ErrEmailNotVerified(), "EMAIL_NOT_VERIFIED", 403},
		{"InvalidToken", ErrInvalidToken(), "UNAUTHORIZED", 401},
		{"NoCredentials", ErrNoCredentials(), "NO_CREDENTIALS", 400},
		{"ChallengeExpired", ErrChallengeExpired(), "CHALLENGE_EXPIRED", 400},
		{"CredentialCompromised", ErrCredentialCompromised(), "CREDENTIAL_COMPROMISED", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestTransferErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientFunds", ErrInsufficientFunds(), "INSUFFICIENT_FUNDS", 422},
		{"LimitExceeded", ErrLimitExceeded(""), "LIMIT_EXCEEDED", 422},
		{"WalletBlocked", ErrWalletBlocked(), "WALLET_BLOCKED", 403},
		{"SameWalletTransfer", ErrSameWalletTransfer(), "SAME_WALLET_TRANSFER", 400},
		{"RecipientNotFound", ErrRecipientNotFound(), "RECIPIENT_NOT_FOUND", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestGenericErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", Validation("bad input"), "VALIDATION_FAILED", 400},
		{"Conflict", Conflict("duplicate"), "CONFLICT", 409},
		{"NotFound", NotFound("Device"), "NOT_FOUND", 404},
		{"RateLimited", ErrRateLimited(), "RATE_LIMITED", 429},
		{"IdempotencyInProgress", ErrIdempotencyInProgress(), "IDEMPOTENCY_IN_PROGRESS", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "Invalid credentials", Unauthorized("").Message)
	assert.Equal(t, "Session expired", Unauthorized("Session expired").Message)
	assert.Equal(t, "Operation not permitted", Forbidden("").Message)
	assert.Equal(t, "Transfer limit exceeded", ErrLimitExceeded("").Message)
	assert.Equal(t, "Daily limit exceeded", ErrLimitExceeded("Daily limit exceeded").Message)
}

func TestNotFoundEntity(t *testing.T) {
	err := NotFound("Transaction")
	assert.Contains(t, err.Message, "Transaction")
	assert.Equal(t, CodeNotFound, err.Code)
}

func TestInternalError(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	appErr := InternalError(inner)

	assert.Equal(t, CodeInternal, appErr.Code)
	assert.Equal(t, 500, appErr.HTTPStatus)
	assert.True(t, errors.Is(appErr, inner))
}
