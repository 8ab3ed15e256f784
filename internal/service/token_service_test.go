package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() *JWTTokenService {
	return NewJWTTokenService(
		"access-secret-at-least-32-chars!",
		"refresh-secret-at-least-32-chars",
		"mobile-wallet-core",
		15*time.Minute,
		7*24*time.Hour,
		5*time.Minute,
	)
}

func TestJWTTokenService_AccessRoundTrip(t *testing.T) {
	svc := newTestTokenService()
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateAccess(userID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.ValidateAccess(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTTokenService_RefreshCarriesTokenID(t *testing.T) {
	svc := newTestTokenService()
	userID := uuid.New()
	tokenID := uuid.New()

	token, _, err := svc.GenerateRefresh(userID, tokenID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestJWTTokenService_StepUpCarriesPurposeAndChallenge(t *testing.T) {
	svc := newTestTokenService()
	userID := uuid.New()

	token, _, err := svc.GenerateStepUp(userID, "transaction:transfer", "challenge-1")
	require.NoError(t, err)

	claims, err := svc.ValidateStepUp(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "transaction:transfer", claims.Purpose)
	assert.Equal(t, "challenge-1", claims.ChallengeID)
}

func TestJWTTokenService_StepUpWithoutPurpose(t *testing.T) {
	svc := newTestTokenService()

	token, _, err := svc.GenerateStepUp(uuid.New(), "", "challenge-1")
	require.NoError(t, err)

	claims, err := svc.ValidateStepUp(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Purpose)
}

func TestJWTTokenService_TypeClaimsDoNotCross(t *testing.T) {
	svc := newTestTokenService()
	userID := uuid.New()

	access, _, err := svc.GenerateAccess(userID)
	require.NoError(t, err)
	refresh, _, err := svc.GenerateRefresh(userID, uuid.New())
	require.NoError(t, err)
	stepUp, _, err := svc.GenerateStepUp(userID, "transaction:transfer", "challenge-1")
	require.NoError(t, err)

	// Access and step-up share a signing secret; the type claim keeps
	// them apart.
	_, err = svc.ValidateAccess(stepUp)
	assert.Error(t, err)
	_, err = svc.ValidateStepUp(access)
	assert.Error(t, err)
	_, err = svc.ValidateRefresh(access)
	assert.Error(t, err)
	_, err = svc.ValidateAccess(refresh)
	assert.Error(t, err)
}

func TestJWTTokenService_WrongSecretRejected(t *testing.T) {
	svc := newTestTokenService()
	other := NewJWTTokenService(
		"completely-different-access-key!!",
		"completely-different-refresh-key",
		"mobile-wallet-core",
		15*time.Minute, 7*24*time.Hour, 5*time.Minute,
	)

	token, _, err := svc.GenerateAccess(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateAccess(token)
	assert.Error(t, err)
}

func TestJWTTokenService_ExpiredTokenRejected(t *testing.T) {
	svc := NewJWTTokenService(
		"access-secret-at-least-32-chars!",
		"refresh-secret-at-least-32-chars",
		"mobile-wallet-core",
		-time.Minute, -time.Minute, -time.Minute,
	)

	token, _, err := svc.GenerateAccess(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccess(token)
	assert.Error(t, err)
}

func TestJWTTokenService_GarbageRejected(t *testing.T) {
	svc := newTestTokenService()

	_, err := svc.ValidateAccess("not.a.jwt")
	assert.Error(t, err)
	_, err = svc.ValidateRefresh("")
	assert.Error(t, err)
}
