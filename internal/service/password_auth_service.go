package service

import (
	"context"
	"fmt"
	"time"

	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	verificationTokenTTL = 24 * time.Hour
	resetTokenTTL        = 30 * time.Minute

	loginRateLimit   = 5
	refreshRateLimit = 20
	rateLimitWindow  = time.Minute
)

// PasswordAuthServiceImpl implements ports.PasswordAuthService.
type PasswordAuthServiceImpl struct {
	userRepo    ports.UserRepository
	refreshRepo ports.RefreshTokenRepository
	hashSvc     ports.HashService
	tokenSvc    ports.TokenService
	pendingSvc  ports.PendingTokenService
	mailSvc     ports.MailSender
	limiter     ports.RateLimiter
	refreshTTL  time.Duration
	log         zerolog.Logger
}

// NewPasswordAuthService creates a new PasswordAuthServiceImpl.
func NewPasswordAuthService(
	userRepo ports.UserRepository,
	refreshRepo ports.RefreshTokenRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	pendingSvc ports.PendingTokenService,
	mailSvc ports.MailSender,
	limiter ports.RateLimiter,
	refreshTTL time.Duration,
	log zerolog.Logger,
) *PasswordAuthServiceImpl {
	return &PasswordAuthServiceImpl{
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		hashSvc:     hashSvc,
		tokenSvc:    tokenSvc,
		pendingSvc:  pendingSvc,
		mailSvc:     mailSvc,
		limiter:     limiter,
		refreshTTL:  refreshTTL,
		log:         log,
	}
}

// Register creates an unverified user, issues a session and emits a
// verification token.
func (s *PasswordAuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.AuthResult, error) {
	email := domain.NormalizeEmail(req.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check email: %w", err))
	}
	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:            uuid.New(),
		Email:         email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PasswordHash:  &passwordHash,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// Verification email is best-effort; the account exists either way
	// and the user can re-request.
	s.sendVerificationToken(ctx, user)

	return &ports.AuthResult{User: user, Tokens: *tokens}, nil
}

// Login authenticates with email and password. Unverified users are
// rejected after the password check so the error does not leak account
// existence to unauthenticated callers.
func (s *PasswordAuthServiceImpl) Login(ctx context.Context, email, password, clientIP string) (*ports.AuthResult, error) {
	email = domain.NormalizeEmail(email)

	if err := s.checkRate(ctx, fmt.Sprintf("login:%s:%s", email, clientIP), loginRateLimit); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil || user.PasswordHash == nil {
		return nil, apperror.Unauthorized("")
	}

	valid, err := s.hashSvc.Verify(password, *user.PasswordHash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return nil, apperror.Unauthorized("")
	}

	if !user.EmailVerified {
		return nil, apperror.ErrEmailNotVerified()
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID.String()).Msg("password login succeeded")
	return &ports.AuthResult{User: user, Tokens: *tokens}, nil
}

// Refresh rotates a refresh token. The presented record is revoked with
// a guarded UPDATE before a new pair is issued, so each raw token
// refreshes at most once even under concurrent presentation.
func (s *PasswordAuthServiceImpl) Refresh(ctx context.Context, refreshToken, clientIP string) (*ports.TokenPair, error) {
	claims, err := s.tokenSvc.ValidateRefresh(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken()
	}

	if err := s.checkRate(ctx, fmt.Sprintf("refresh:%s:%s", claims.TokenID, clientIP), refreshRateLimit); err != nil {
		return nil, err
	}

	record, err := s.refreshRepo.GetByID(ctx, claims.TokenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find refresh record: %w", err))
	}
	if record == nil || record.UserID != claims.UserID || !record.IsUsable(time.Now()) {
		return nil, apperror.ErrInvalidToken()
	}

	match, err := s.hashSvc.Verify(refreshToken, record.TokenHash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("verify refresh hash: %w", err))
	}
	if !match {
		return nil, apperror.ErrInvalidToken()
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken()
	}
	if !user.EmailVerified {
		return nil, apperror.ErrEmailNotVerified()
	}

	// The guarded UPDATE decides races; the loser fails here.
	revoked, err := s.refreshRepo.Revoke(ctx, record.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("revoke refresh record: %w", err))
	}
	if !revoked {
		return nil, apperror.ErrInvalidToken()
	}

	return s.issueTokens(ctx, user.ID)
}

// Logout best-effort revokes the referenced record. It never fails the
// caller: an invalid or already-revoked token is a no-op.
func (s *PasswordAuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokenSvc.ValidateRefresh(refreshToken)
	if err != nil {
		return nil
	}
	if _, err := s.refreshRepo.Revoke(ctx, claims.TokenID); err != nil {
		s.log.Warn().Err(err).Str("jti", claims.TokenID.String()).Msg("logout revoke failed")
	}
	return nil
}

// RequestVerification issues a fresh verification token. Succeeds
// silently whether or not the email exists, so the endpoint cannot be
// used to enumerate accounts.
func (s *PasswordAuthServiceImpl) RequestVerification(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil || user.EmailVerified {
		return nil
	}

	s.sendVerificationToken(ctx, user)
	return nil
}

// ConfirmVerification consumes a verification token and marks the
// account verified.
func (s *PasswordAuthServiceImpl) ConfirmVerification(ctx context.Context, token string) error {
	userID, ok, err := s.pendingSvc.Consume(ctx, domain.PendingTokenEmailVerification, token)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("consume verification token: %w", err))
	}
	if !ok {
		return apperror.Validation("invalid or expired verification token")
	}

	if err := s.userRepo.SetEmailVerified(ctx, userID); err != nil {
		return apperror.InternalError(fmt.Errorf("mark verified: %w", err))
	}

	s.log.Info().Str("user_id", userID.String()).Msg("email verified")
	return nil
}

// RequestPasswordReset issues a reset token. Silent success mirrors
// RequestVerification.
func (s *PasswordAuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return nil
	}

	composite, err := s.pendingSvc.Create(ctx, domain.PendingTokenPasswordReset, user.ID, resetTokenTTL)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID.String()).Msg("creating reset token failed")
		return nil
	}
	if err := s.mailSvc.SendPasswordReset(ctx, user.Email, composite); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("sending reset email failed")
	}
	return nil
}

// ConfirmPasswordReset consumes a reset token, replaces the password
// and invalidates every outstanding session.
func (s *PasswordAuthServiceImpl) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	userID, ok, err := s.pendingSvc.Consume(ctx, domain.PendingTokenPasswordReset, token)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("consume reset token: %w", err))
	}
	if !ok {
		return apperror.Validation("invalid or expired reset token")
	}

	passwordHash, err := s.hashSvc.Hash(newPassword)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		return apperror.InternalError(fmt.Errorf("update password: %w", err))
	}

	if err := s.refreshRepo.RevokeAllForUser(ctx, userID); err != nil {
		return apperror.InternalError(fmt.Errorf("revoke sessions: %w", err))
	}

	s.log.Info().Str("user_id", userID.String()).Msg("password reset completed")
	return nil
}

func (s *PasswordAuthServiceImpl) issueTokens(ctx context.Context, userID uuid.UUID) (*ports.TokenPair, error) {
	return issueTokenPair(ctx, s.tokenSvc, s.hashSvc, s.refreshRepo, userID)
}

func (s *PasswordAuthServiceImpl) sendVerificationToken(ctx context.Context, user *domain.User) {
	composite, err := s.pendingSvc.Create(ctx, domain.PendingTokenEmailVerification, user.ID, verificationTokenTTL)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID.String()).Msg("creating verification token failed")
		return
	}
	if err := s.userRepo.SetVerificationRequestedAt(ctx, user.ID, time.Now().UTC()); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("recording verification request failed")
	}
	if err := s.mailSvc.SendVerification(ctx, user.Email, composite); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("sending verification email failed")
	}
}

func (s *PasswordAuthServiceImpl) checkRate(ctx context.Context, key string, limit int64) error {
	result, err := s.limiter.Allow(ctx, key, limit, rateLimitWindow)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("rate limit check: %w", err))
	}
	if !result.Allowed {
		return apperror.ErrRateLimited()
	}
	return nil
}
