package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP problem responses.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Closed code set surfaced in problem.code.
const (
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeEmailNotVerified      = "EMAIL_NOT_VERIFIED"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeConflict              = "CONFLICT"
	CodeNotFound              = "NOT_FOUND"
	CodeRateLimited           = "RATE_LIMITED"
	CodeIdempotencyInProgress = "IDEMPOTENCY_IN_PROGRESS"
	CodeInternal              = "INTERNAL"
	CodeNoCredentials         = "NO_CREDENTIALS"
	CodeChallengeExpired      = "CHALLENGE_EXPIRED"
	CodeCredentialCompromised = "CREDENTIAL_COMPROMISED"
	CodeInsufficientFunds     = "INSUFFICIENT_FUNDS"
	CodeLimitExceeded         = "LIMIT_EXCEEDED"
	CodeWalletBlocked         = "WALLET_BLOCKED"
	CodeSameWalletTransfer    = "SAME_WALLET_TRANSFER"
	CodeRecipientNotFound     = "RECIPIENT_NOT_FOUND"
)

// ---- Authentication ----

func Unauthorized(message string) *AppError {
	if message == "" {
		message = "Invalid credentials"
	}
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func Forbidden(message string) *AppError {
	if message == "" {
		message = "Operation not permitted"
	}
	return New(CodeForbidden, message, http.StatusForbidden)
}

func ErrEmailNotVerified() *AppError {
	return New(CodeEmailNotVerified, "Email address is not verified", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New(CodeUnauthorized, "Invalid or expired token", http.StatusUnauthorized)
}

func ErrNoCredentials() *AppError {
	return New(CodeNoCredentials, "No usable credentials enrolled", http.StatusBadRequest)
}

func ErrChallengeExpired() *AppError {
	return New(CodeChallengeExpired, "Challenge has expired", http.StatusBadRequest)
}

func ErrCredentialCompromised() *AppError {
	return New(CodeCredentialCompromised, "Credential sign counter regressed; credential revoked", http.StatusUnauthorized)
}

// ---- Generic domain ----

func Validation(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func NotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrRateLimited() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

func ErrIdempotencyInProgress() *AppError {
	return New(CodeIdempotencyInProgress, "A request with this idempotency key is still in progress", http.StatusConflict)
}

// ---- Wallet & transfer ----

func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "Insufficient balance in wallet", http.StatusUnprocessableEntity)
}

func ErrLimitExceeded(message string) *AppError {
	if message == "" {
		message = "Transfer limit exceeded"
	}
	return New(CodeLimitExceeded, message, http.StatusUnprocessableEntity)
}

func ErrWalletBlocked() *AppError {
	return New(CodeWalletBlocked, "Wallet is not active", http.StatusForbidden)
}

func ErrSameWalletTransfer() *AppError {
	return New(CodeSameWalletTransfer, "Cannot transfer to your own wallet", http.StatusBadRequest)
}

func ErrRecipientNotFound() *AppError {
	return New(CodeRecipientNotFound, "Recipient not found", http.StatusNotFound)
}

// ---- System ----

// InternalError wraps an internal error. Collaborator failures (store
// unreachable, crypto failure) all surface through here.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
