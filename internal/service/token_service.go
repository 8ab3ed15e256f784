package service

import (
	"fmt"
	"time"

	"mobile-wallet-core/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type discriminators carried in the "type" claim. A token of
// one kind never validates as another.
const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
	tokenTypeStepUp  = "step_up"
)

// JWTTokenService implements ports.TokenService using HS256 JWT.
// Access and step-up tokens share the access secret; refresh tokens
// are signed with a separate secret.
type JWTTokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	stepUpTTL     time.Duration
	issuer        string
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL, stepUpTTL time.Duration) *JWTTokenService {
	return &JWTTokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		stepUpTTL:     stepUpTTL,
		issuer:        issuer,
	}
}

// GenerateAccess creates a signed access token for the given user.
func (s *JWTTokenService) GenerateAccess(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": tokenTypeAccess,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"iss":  s.issuer,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing access token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// GenerateRefresh creates a signed refresh token carrying the server-side
// record id as jti.
func (s *JWTTokenService) GenerateRefresh(userID uuid.UUID, tokenID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.refreshTTL)

	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"jti":  tokenID.String(),
		"type": tokenTypeRefresh,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"iss":  s.issuer,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.refreshSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing refresh token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// GenerateStepUp creates a short-lived step-up token bound to a purpose
// and the biometric challenge that produced it.
func (s *JWTTokenService) GenerateStepUp(userID uuid.UUID, purpose string, challengeID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.stepUpTTL)

	claims := jwt.MapClaims{
		"sub":          userID.String(),
		"type":         tokenTypeStepUp,
		"challenge_id": challengeID,
		"iat":          now.Unix(),
		"exp":          expiresAt.Unix(),
		"iss":          s.issuer,
	}
	if purpose != "" {
		claims["purpose"] = purpose
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing step-up token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// ValidateAccess parses and validates an access token.
func (s *JWTTokenService) ValidateAccess(tokenString string) (*ports.AccessClaims, error) {
	claims, err := s.parse(tokenString, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return nil, err
	}

	userID, err := subjectUUID(claims)
	if err != nil {
		return nil, err
	}
	return &ports.AccessClaims{UserID: userID}, nil
}

// ValidateRefresh parses and validates a refresh token.
func (s *JWTTokenService) ValidateRefresh(tokenString string) (*ports.RefreshClaims, error) {
	claims, err := s.parse(tokenString, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	userID, err := subjectUUID(claims)
	if err != nil {
		return nil, err
	}

	jti, ok := claims["jti"].(string)
	if !ok {
		return nil, fmt.Errorf("missing jti claim")
	}
	tokenID, err := uuid.Parse(jti)
	if err != nil {
		return nil, fmt.Errorf("invalid jti in token: %w", err)
	}

	return &ports.RefreshClaims{UserID: userID, TokenID: tokenID}, nil
}

// ValidateStepUp parses and validates a step-up token.
func (s *JWTTokenService) ValidateStepUp(tokenString string) (*ports.StepUpClaims, error) {
	claims, err := s.parse(tokenString, s.accessSecret, tokenTypeStepUp)
	if err != nil {
		return nil, err
	}

	userID, err := subjectUUID(claims)
	if err != nil {
		return nil, err
	}

	purpose, _ := claims["purpose"].(string)
	challengeID, _ := claims["challenge_id"].(string)

	return &ports.StepUpClaims{
		UserID:      userID,
		Purpose:     purpose,
		ChallengeID: challengeID,
	}, nil
}

func (s *JWTTokenService) parse(tokenString string, secret []byte, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if typ, _ := claims["type"].(string); typ != wantType {
		return nil, fmt.Errorf("unexpected token type: %q", typ)
	}
	return claims, nil
}

func subjectUUID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing subject claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID in token: %w", err)
	}
	return userID, nil
}
