package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const pendingSecretLen = 32

// PendingTokenService issues and consumes the "<id>.<secret_hex>"
// composites used for email verification and password reset. Only the
// Argon2id hash of the secret is persisted, so a database leak does
// not yield redeemable tokens.
type PendingTokenService struct {
	repo ports.PendingTokenRepository
	hash ports.HashService
	log  zerolog.Logger
}

// NewPendingTokenService creates a new pending-token service.
func NewPendingTokenService(repo ports.PendingTokenRepository, hash ports.HashService, log zerolog.Logger) *PendingTokenService {
	return &PendingTokenService{repo: repo, hash: hash, log: log}
}

// Create mints a fresh composite for the user and stores its hashed
// record with the given TTL.
func (s *PendingTokenService) Create(ctx context.Context, kind domain.PendingTokenKind, userID uuid.UUID, ttl time.Duration) (string, error) {
	secret := make([]byte, pendingSecretLen)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("generating token secret: %w", err)
	}
	secretHex := hex.EncodeToString(secret)

	tokenHash, err := s.hash.Hash(secretHex)
	if err != nil {
		return "", fmt.Errorf("hashing token secret: %w", err)
	}

	token := &domain.PendingToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().UTC().Add(ttl),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, kind, token); err != nil {
		return "", fmt.Errorf("storing pending token: %w", err)
	}

	return fmt.Sprintf("%s.%s", token.ID, secretHex), nil
}

// Consume validates and one-shot-consumes a composite. ok=false covers
// malformed, unknown, expired, secret-mismatched and already-consumed
// tokens alike; callers map all of those to the same rejection.
func (s *PendingTokenService) Consume(ctx context.Context, kind domain.PendingTokenKind, composite string) (uuid.UUID, bool, error) {
	idPart, secretHex, found := strings.Cut(composite, ".")
	if !found || secretHex == "" {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return uuid.Nil, false, nil
	}

	token, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("loading pending token: %w", err)
	}
	if token == nil {
		return uuid.Nil, false, nil
	}
	if time.Now().After(token.ExpiresAt) || token.ConsumedAt != nil {
		return uuid.Nil, false, nil
	}

	match, err := s.hash.Verify(secretHex, token.TokenHash)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("verifying pending token: %w", err)
	}
	if !match {
		return uuid.Nil, false, nil
	}

	// The guarded UPDATE decides races between concurrent redeemers.
	consumed, err := s.repo.Consume(ctx, kind, id)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("consuming pending token: %w", err)
	}
	if !consumed {
		s.log.Debug().Str("kind", string(kind)).Str("token_id", id.String()).Msg("pending token lost consume race")
		return uuid.Nil, false, nil
	}

	return token.UserID, true, nil
}
