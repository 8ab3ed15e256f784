package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"mobile-wallet-core/config"
	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"
)

// GoWebAuthnProvider implements ports.WebAuthnProvider on top of the
// go-webauthn library. User verification is always required: every
// ceremony is a biometric (or PIN) check, not mere possession.
type GoWebAuthnProvider struct {
	webAuthn      *webauthn.WebAuthn
	challengeTTL  time.Duration
	signCountMode ports.SignCountMode
}

// NewGoWebAuthnProvider builds the relying-party instance from config.
func NewGoWebAuthnProvider(cfg config.WebAuthnConfig) (*GoWebAuthnProvider, error) {
	wa, err := webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.RPName,
		RPID:          cfg.RPID,
		RPOrigins:     cfg.OriginList(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating webauthn instance: %w", err)
	}

	return &GoWebAuthnProvider{
		webAuthn:      wa,
		challengeTTL:  time.Duration(cfg.ChallengeTTLMs) * time.Millisecond,
		signCountMode: ports.SignCountMode(cfg.SignCountMode),
	}, nil
}

// ChallengeTTL returns the configured challenge lifetime.
func (p *GoWebAuthnProvider) ChallengeTTL() time.Duration {
	return p.challengeTTL
}

// SignCountMode returns the configured regression policy.
func (p *GoWebAuthnProvider) SignCountMode() ports.SignCountMode {
	return p.signCountMode
}

// waUser adapts a domain user plus their usable credentials to the
// webauthn.User interface.
type waUser struct {
	user  *domain.User
	creds []domain.Credential
}

func (u *waUser) WebAuthnID() []byte {
	return u.user.ID[:]
}

func (u *waUser) WebAuthnName() string {
	return u.user.Email
}

func (u *waUser) WebAuthnDisplayName() string {
	if u.user.FirstName != nil && *u.user.FirstName != "" {
		return *u.user.FirstName
	}
	return u.user.Email
}

func (u *waUser) WebAuthnCredentials() []webauthn.Credential {
	out := make([]webauthn.Credential, 0, len(u.creds))
	for _, c := range u.creds {
		wc, err := toLibraryCredential(&c)
		if err != nil {
			continue
		}
		out = append(out, *wc)
	}
	return out
}

var _ webauthn.User = (*waUser)(nil)

func toLibraryCredential(c *domain.Credential) (*webauthn.Credential, error) {
	rawID, err := base64.RawURLEncoding.DecodeString(c.ID)
	if err != nil {
		return nil, fmt.Errorf("decoding credential id: %w", err)
	}

	transports := make([]protocol.AuthenticatorTransport, 0, len(c.Transports))
	for _, t := range c.Transports {
		transports = append(transports, protocol.AuthenticatorTransport(t))
	}

	return &webauthn.Credential{
		ID:        rawID,
		PublicKey: c.PublicKey,
		Transport: transports,
		// Backup flags are not persisted; without them the library
		// rejects synced passkeys.
		Flags: webauthn.CredentialFlags{
			BackupEligible: true,
			BackupState:    true,
		},
		Authenticator: webauthn.Authenticator{
			SignCount: c.SignCount,
		},
	}, nil
}

// BeginRegistration generates attestation options excluding the user's
// existing credentials so an authenticator is enrolled at most once.
func (p *GoWebAuthnProvider) BeginRegistration(user *domain.User, exclude []domain.Credential) (*protocol.CredentialCreation, *webauthn.SessionData, error) {
	exclusions := make([]protocol.CredentialDescriptor, 0, len(exclude))
	for _, c := range exclude {
		rawID, err := base64.RawURLEncoding.DecodeString(c.ID)
		if err != nil {
			continue
		}
		exclusions = append(exclusions, protocol.CredentialDescriptor{
			Type:         protocol.PublicKeyCredentialType,
			CredentialID: rawID,
		})
	}

	opts := []webauthn.RegistrationOption{
		webauthn.WithExclusions(exclusions),
		webauthn.WithAuthenticatorSelection(protocol.AuthenticatorSelection{
			AuthenticatorAttachment: protocol.Platform,
			ResidentKey:             protocol.ResidentKeyRequirementPreferred,
			UserVerification:        protocol.VerificationRequired,
		}),
	}

	creation, session, err := p.webAuthn.BeginRegistration(&waUser{user: user}, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning registration: %w", err)
	}
	return creation, session, nil
}

// FinishRegistration verifies an attestation response against the
// stored session and returns the extracted credential material.
func (p *GoWebAuthnProvider) FinishRegistration(user *domain.User, session webauthn.SessionData, response json.RawMessage) (*ports.RegistrationResult, error) {
	parsed, err := protocol.ParseCredentialCreationResponseBody(bytes.NewReader(response))
	if err != nil {
		return nil, fmt.Errorf("parsing attestation response: %w", err)
	}

	cred, err := p.webAuthn.CreateCredential(&waUser{user: user}, session, parsed)
	if err != nil {
		return nil, fmt.Errorf("verifying attestation: %w", err)
	}

	transports := make([]string, 0, len(cred.Transport))
	for _, t := range cred.Transport {
		transports = append(transports, string(t))
	}

	result := &ports.RegistrationResult{
		CredentialID: base64.RawURLEncoding.EncodeToString(cred.ID),
		PublicKey:    cred.PublicKey,
		SignCount:    cred.Authenticator.SignCount,
		Transports:   transports,
	}
	if aaguid, err := uuid.FromBytes(cred.Authenticator.AAGUID); err == nil && aaguid != uuid.Nil {
		result.AAGUID = aaguid.String()
	}
	return result, nil
}

// BeginLogin generates assertion options allowing the given usable
// credentials.
func (p *GoWebAuthnProvider) BeginLogin(user *domain.User, allow []domain.Credential) (*protocol.CredentialAssertion, *webauthn.SessionData, error) {
	assertion, session, err := p.webAuthn.BeginLogin(
		&waUser{user: user, creds: allow},
		webauthn.WithUserVerification(protocol.VerificationRequired),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning login: %w", err)
	}
	return assertion, session, nil
}

// FinishLogin verifies an assertion response against the stored session
// and the presented credential. The sign-count policy is applied by the
// caller; the library's own regression check is bypassed by reporting
// the stored counter alongside the asserted one.
func (p *GoWebAuthnProvider) FinishLogin(user *domain.User, cred *domain.Credential, session webauthn.SessionData, response json.RawMessage) (*ports.AssertionResult, error) {
	parsed, err := protocol.ParseCredentialRequestResponseBody(bytes.NewReader(response))
	if err != nil {
		return nil, fmt.Errorf("parsing assertion response: %w", err)
	}

	validated, err := p.webAuthn.ValidateLogin(&waUser{user: user, creds: []domain.Credential{*cred}}, session, parsed)
	if err != nil {
		return nil, fmt.Errorf("verifying assertion: %w", err)
	}

	return &ports.AssertionResult{
		CredentialID: base64.RawURLEncoding.EncodeToString(validated.ID),
		NewSignCount: parsed.Response.AuthenticatorData.Counter,
	}, nil
}
