package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credential is one enrolled WebAuthn authenticator. The ID is the
// opaque credential id emitted by the authenticator (base64url).
type Credential struct {
	ID         string     `json:"credential_id"`
	UserID     uuid.UUID  `json:"user_id"`
	PublicKey  []byte     `json:"-"`
	SignCount  uint32     `json:"sign_count"`
	AAGUID     *string    `json:"aaguid,omitempty"`
	Transports []string   `json:"transports,omitempty"`
	DeviceName *string    `json:"device_name,omitempty"`
	Revoked    bool       `json:"revoked"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsUsable reports whether the credential may authenticate.
func (c *Credential) IsUsable() bool {
	return !c.Revoked
}

// Device deactivation reasons.
const (
	DeviceReasonSignCountRegression = "sign_count_regression"
	DeviceReasonUserRevoked         = "user_revoked"
)

// Device is the client-visible record bound to a credential. When a
// credential is revoked every device referencing it goes inactive.
type Device struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	CredentialID      string     `json:"credential_id"`
	Label             *string    `json:"label,omitempty"`
	Active            bool       `json:"active"`
	DeactivatedAt     *time.Time `json:"deactivated_at,omitempty"`
	DeactivatedReason *string    `json:"deactivated_reason,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
