package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	loginChallengeRateLimit  = 10
	stepUpChallengeRateLimit = 20
)

// BiometricAuthServiceImpl implements ports.BiometricAuthService. Login
// and step-up share the same challenge cache and verification path;
// they differ in what a successful assertion mints.
type BiometricAuthServiceImpl struct {
	userRepo    ports.UserRepository
	credRepo    ports.CredentialRepository
	deviceRepo  ports.DeviceRepository
	refreshRepo ports.RefreshTokenRepository
	hashSvc     ports.HashService
	tokenSvc    ports.TokenService
	credSvc     ports.CredentialService
	provider    ports.WebAuthnProvider
	challenges  ports.ChallengeStore
	limiter     ports.RateLimiter
	log         zerolog.Logger
}

// NewBiometricAuthService creates a new BiometricAuthServiceImpl.
func NewBiometricAuthService(
	userRepo ports.UserRepository,
	credRepo ports.CredentialRepository,
	deviceRepo ports.DeviceRepository,
	refreshRepo ports.RefreshTokenRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	credSvc ports.CredentialService,
	provider ports.WebAuthnProvider,
	challenges ports.ChallengeStore,
	limiter ports.RateLimiter,
	log zerolog.Logger,
) *BiometricAuthServiceImpl {
	return &BiometricAuthServiceImpl{
		userRepo:    userRepo,
		credRepo:    credRepo,
		deviceRepo:  deviceRepo,
		refreshRepo: refreshRepo,
		hashSvc:     hashSvc,
		tokenSvc:    tokenSvc,
		credSvc:     credSvc,
		provider:    provider,
		challenges:  challenges,
		limiter:     limiter,
		log:         log,
	}
}

// BeginLogin resolves the user by email XOR userId and issues assertion
// options under a fresh challenge id.
func (s *BiometricAuthServiceImpl) BeginLogin(ctx context.Context, req ports.LoginChallengeRequest) (*ports.ChallengeResponse, error) {
	if (req.Email == nil) == (req.UserID == nil) {
		return nil, apperror.Validation("exactly one of email or userId is required")
	}

	var (
		user       *domain.User
		identifier string
		err        error
	)
	if req.Email != nil {
		identifier = domain.NormalizeEmail(*req.Email)
		user, err = s.userRepo.GetByEmail(ctx, identifier)
	} else {
		identifier = req.UserID.String()
		user, err = s.userRepo.GetByID(ctx, *req.UserID)
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}
	if !user.EmailVerified {
		return nil, apperror.ErrEmailNotVerified()
	}

	key := fmt.Sprintf("login-challenge:%s:%s:%s", user.ID, identifier, req.ClientIP)
	if err := s.checkRate(ctx, key, loginChallengeRateLimit); err != nil {
		return nil, err
	}

	return s.createChallenge(ctx, user, nil)
}

// FinishLogin verifies an assertion against a pending login challenge
// and issues a session pair.
func (s *BiometricAuthServiceImpl) FinishLogin(ctx context.Context, challengeID string, credential json.RawMessage) (*ports.AuthResult, error) {
	_, user, cred, err := s.verifyAssertion(ctx, challengeID, credential)
	if err != nil {
		return nil, err
	}

	tokens, err := issueTokenPair(ctx, s.tokenSvc, s.hashSvc, s.refreshRepo, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", user.ID.String()).
		Str("credential_id", cred.ID).
		Msg("biometric login succeeded")

	return &ports.AuthResult{User: user, Tokens: *tokens}, nil
}

// BeginStepUp issues assertion options for an authenticated user about
// to perform a sensitive operation.
func (s *BiometricAuthServiceImpl) BeginStepUp(ctx context.Context, userID uuid.UUID, purpose *string, clientIP string) (*ports.ChallengeResponse, error) {
	p := ""
	if purpose != nil {
		p = *purpose
	}
	key := fmt.Sprintf("stepup-challenge:%s:%s:%s", userID, p, clientIP)
	if err := s.checkRate(ctx, key, stepUpChallengeRateLimit); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return nil, apperror.Unauthorized("")
	}
	if !user.EmailVerified {
		return nil, apperror.ErrEmailNotVerified()
	}

	return s.createChallenge(ctx, user, purpose)
}

// FinishStepUp verifies an assertion and mints a purpose-scoped step-up
// token. The challenge must belong to the requesting user.
func (s *BiometricAuthServiceImpl) FinishStepUp(ctx context.Context, userID uuid.UUID, challengeID string, credential json.RawMessage) (string, time.Time, error) {
	state, user, cred, err := s.verifyAssertion(ctx, challengeID, credential)
	if err != nil {
		return "", time.Time{}, err
	}
	if state.UserID != userID {
		return "", time.Time{}, apperror.Forbidden("challenge does not belong to the caller")
	}

	purpose := ""
	if state.Purpose != nil {
		purpose = *state.Purpose
	}
	token, expiresAt, err := s.tokenSvc.GenerateStepUp(user.ID, purpose, challengeID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate step-up token: %w", err))
	}

	s.log.Info().
		Str("user_id", user.ID.String()).
		Str("credential_id", cred.ID).
		Str("purpose", purpose).
		Msg("step-up verified")

	return token, expiresAt, nil
}

// createChallenge generates assertion options over the user's usable
// credentials and persists the ceremony state.
func (s *BiometricAuthServiceImpl) createChallenge(ctx context.Context, user *domain.User, purpose *string) (*ports.ChallengeResponse, error) {
	creds, err := s.credRepo.ListUsableByUser(ctx, user.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list credentials: %w", err))
	}
	if len(creds) == 0 {
		return nil, apperror.ErrNoCredentials()
	}

	options, session, err := s.provider.BeginLogin(user, creds)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin login ceremony: %w", err))
	}

	challengeID := uuid.NewString()
	state := &domain.ChallengeState{
		Context:   domain.ChallengeContextLogin,
		UserID:    user.ID,
		Email:     user.Email,
		Purpose:   purpose,
		Session:   *session,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.challenges.Put(ctx, challengeID, state, s.provider.ChallengeTTL()); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store challenge state: %w", err))
	}

	return &ports.ChallengeResponse{ChallengeID: challengeID, Options: options}, nil
}

// assertionEnvelope is the slice of the client response needed to look
// up the presented credential before full verification.
type assertionEnvelope struct {
	ID string `json:"id"`
}

// verifyAssertion is the shared verify half: consume the challenge,
// enforce its TTL, re-check the user, validate the presented credential
// and run the cryptographic verification plus sign-count policy.
func (s *BiometricAuthServiceImpl) verifyAssertion(ctx context.Context, challengeID string, credential json.RawMessage) (*domain.ChallengeState, *domain.User, *domain.Credential, error) {
	state, err := s.challenges.Take(ctx, challengeID)
	if err != nil {
		return nil, nil, nil, apperror.InternalError(fmt.Errorf("take challenge state: %w", err))
	}
	if state == nil || state.Context != domain.ChallengeContextLogin {
		return nil, nil, nil, apperror.NotFound("challenge")
	}
	if state.Expired(time.Now().UTC(), s.provider.ChallengeTTL()) {
		return nil, nil, nil, apperror.ErrChallengeExpired()
	}

	user, err := s.userRepo.GetByID(ctx, state.UserID)
	if err != nil {
		return nil, nil, nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return nil, nil, nil, apperror.Unauthorized("")
	}
	if !user.EmailVerified {
		return nil, nil, nil, apperror.ErrEmailNotVerified()
	}

	var envelope assertionEnvelope
	if err := json.Unmarshal(credential, &envelope); err != nil || envelope.ID == "" {
		return nil, nil, nil, apperror.Validation("malformed credential response")
	}

	cred, err := s.credRepo.GetByID(ctx, envelope.ID)
	if err != nil {
		return nil, nil, nil, apperror.InternalError(fmt.Errorf("find credential: %w", err))
	}
	if cred == nil || cred.UserID != user.ID || !cred.IsUsable() {
		return nil, nil, nil, apperror.Unauthorized("credential not usable")
	}

	activeDevices, err := s.deviceRepo.CountActiveByCredential(ctx, cred.ID)
	if err != nil {
		return nil, nil, nil, apperror.InternalError(fmt.Errorf("count active devices: %w", err))
	}
	if activeDevices == 0 {
		return nil, nil, nil, apperror.Unauthorized("credential not usable")
	}

	result, err := s.provider.FinishLogin(user, cred, state.Session, credential)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("assertion verification failed")
		return nil, nil, nil, apperror.Unauthorized("assertion verification failed")
	}

	if err := s.credSvc.ReconcileSignCount(ctx, cred, result.NewSignCount); err != nil {
		return nil, nil, nil, err
	}

	return state, user, cred, nil
}

func (s *BiometricAuthServiceImpl) checkRate(ctx context.Context, key string, limit int64) error {
	result, err := s.limiter.Allow(ctx, key, limit, rateLimitWindow)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("rate limit check: %w", err))
	}
	if !result.Allowed {
		return apperror.ErrRateLimited()
	}
	return nil
}
