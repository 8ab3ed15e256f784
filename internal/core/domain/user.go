package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a wallet account holder. Users are never hard-deleted.
type User struct {
	ID                      uuid.UUID  `json:"id"`
	Email                   string     `json:"email"` // normalized: trimmed + lowercased
	FirstName               *string    `json:"first_name,omitempty"`
	LastName                *string    `json:"last_name,omitempty"`
	PasswordHash            *string    `json:"-"` // Argon2id, nil for passkey-only accounts
	EmailVerified           bool       `json:"email_verified"`
	VerificationRequestedAt *time.Time `json:"-"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// NormalizeEmail applies the canonical email normalization used at
// every boundary: trim then lowercase.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MaskEmail masks an address for counterparty display:
// "alexander@example.com" -> "ale***@example.com".
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	local, domainPart := email[:at], email[at+1:]
	visible := local
	if len(visible) > 3 {
		visible = visible[:3]
	}
	return visible + "***@" + domainPart
}

// MaskName renders "<first> <last-initial>." for counterparty display.
func MaskName(firstName, lastName *string) string {
	first := ""
	if firstName != nil {
		first = strings.TrimSpace(*firstName)
	}
	if lastName != nil {
		last := strings.TrimSpace(*lastName)
		if last != "" {
			if first == "" {
				return string(last[0]) + "."
			}
			return first + " " + string(last[0]) + "."
		}
	}
	return first
}
