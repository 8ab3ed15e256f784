package domain

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the persisted side of a refresh JWT. The ID equals
// the token's jti claim; only an Argon2id hash of the raw string is
// stored. A successful refresh flips Revoked before a new pair is
// issued, so each token is usable at most once.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// IsUsable reports whether the record can still back a refresh.
func (t *RefreshToken) IsUsable(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}

// PendingTokenKind selects the pending-token table.
type PendingTokenKind string

const (
	PendingTokenEmailVerification PendingTokenKind = "email_verification"
	PendingTokenPasswordReset     PendingTokenKind = "password_reset"
)

// PendingToken backs email-verification and password-reset composites
// of the form "<id>.<secret_hex>". Only the Argon2id hash of the
// secret half is stored; consumption is one-shot.
type PendingToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
