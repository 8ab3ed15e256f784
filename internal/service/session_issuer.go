package service

import (
	"context"
	"fmt"
	"time"

	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"

	"github.com/google/uuid"
)

// issueTokenPair mints an access+refresh pair and persists the hashed
// refresh record under its jti. Shared by password and biometric login.
func issueTokenPair(
	ctx context.Context,
	tokenSvc ports.TokenService,
	hashSvc ports.HashService,
	refreshRepo ports.RefreshTokenRepository,
	userID uuid.UUID,
) (*ports.TokenPair, error) {
	accessToken, accessExp, err := tokenSvc.GenerateAccess(userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate access token: %w", err))
	}

	tokenID := uuid.New()
	refreshToken, refreshExp, err := tokenSvc.GenerateRefresh(userID, tokenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate refresh token: %w", err))
	}

	tokenHash, err := hashSvc.Hash(refreshToken)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash refresh token: %w", err))
	}

	record := &domain.RefreshToken{
		ID:        tokenID,
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: refreshExp,
		CreatedAt: time.Now().UTC(),
	}
	if err := refreshRepo.Create(ctx, record); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store refresh record: %w", err))
	}

	return &ports.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}
