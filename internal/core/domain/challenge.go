package domain

import (
	"time"

	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"
)

// ChallengeContext distinguishes what a WebAuthn challenge may be
// redeemed for.
type ChallengeContext string

const (
	ChallengeContextEnroll ChallengeContext = "enroll"
	ChallengeContextLogin  ChallengeContext = "login"
)

// ChallengeState is the ephemeral material persisted between the
// challenge and verify halves of a WebAuthn ceremony. It is stored
// under a generated challengeId with the configured challenge TTL and
// consumed with a fetch-and-delete, so each challenge verifies at
// most once.
type ChallengeState struct {
	Context    ChallengeContext     `json:"context"`
	UserID     uuid.UUID            `json:"user_id"`
	Email      string               `json:"email"`
	Purpose    *string              `json:"purpose,omitempty"`
	DeviceName *string              `json:"device_name,omitempty"`
	Session    webauthn.SessionData `json:"session"`
	CreatedAt  time.Time            `json:"created_at"`
}

// Expired reports whether the state outlived its TTL.
func (s *ChallengeState) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}
