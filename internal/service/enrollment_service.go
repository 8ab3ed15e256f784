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

const enrollRateLimit = 10

// EnrollmentServiceImpl implements ports.EnrollmentService: binding a
// new WebAuthn credential and device record to a verified user.
type EnrollmentServiceImpl struct {
	userRepo   ports.UserRepository
	credRepo   ports.CredentialRepository
	deviceRepo ports.DeviceRepository
	provider   ports.WebAuthnProvider
	challenges ports.ChallengeStore
	limiter    ports.RateLimiter
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentServiceImpl.
func NewEnrollmentService(
	userRepo ports.UserRepository,
	credRepo ports.CredentialRepository,
	deviceRepo ports.DeviceRepository,
	provider ports.WebAuthnProvider,
	challenges ports.ChallengeStore,
	limiter ports.RateLimiter,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *EnrollmentServiceImpl {
	return &EnrollmentServiceImpl{
		userRepo:   userRepo,
		credRepo:   credRepo,
		deviceRepo: deviceRepo,
		provider:   provider,
		challenges: challenges,
		limiter:    limiter,
		transactor: transactor,
		log:        log,
	}
}

// BeginEnrollment generates attestation options for a verified user,
// excluding already-enrolled credentials.
func (s *EnrollmentServiceImpl) BeginEnrollment(ctx context.Context, userID uuid.UUID, deviceName *string, clientIP string) (*ports.ChallengeResponse, error) {
	key := fmt.Sprintf("enroll:%s:%s", userID, clientIP)
	result, err := s.limiter.Allow(ctx, key, enrollRateLimit, rateLimitWindow)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("rate limit check: %w", err))
	}
	if !result.Allowed {
		return nil, apperror.ErrRateLimited()
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

	exclude, err := s.credRepo.ListUsableByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list credentials: %w", err))
	}

	options, session, err := s.provider.BeginRegistration(user, exclude)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin registration ceremony: %w", err))
	}

	challengeID := uuid.NewString()
	state := &domain.ChallengeState{
		Context:    domain.ChallengeContextEnroll,
		UserID:     user.ID,
		Email:      user.Email,
		DeviceName: deviceName,
		Session:    *session,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.challenges.Put(ctx, challengeID, state, s.provider.ChallengeTTL()); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store challenge state: %w", err))
	}

	return &ports.ChallengeResponse{ChallengeID: challengeID, Options: options}, nil
}

// FinishEnrollment verifies an attestation, upserts the credential and
// registers an active device for it. The enrolling user comes from the
// consumed challenge state, not from the request. A credential id
// already bound to a different user is rejected with CONFLICT.
func (s *EnrollmentServiceImpl) FinishEnrollment(ctx context.Context, challengeID string, credential json.RawMessage) (*ports.EnrollmentResult, error) {
	state, err := s.challenges.Take(ctx, challengeID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("take challenge state: %w", err))
	}
	if state == nil || state.Context != domain.ChallengeContextEnroll {
		return nil, apperror.NotFound("challenge")
	}
	if state.Expired(time.Now().UTC(), s.provider.ChallengeTTL()) {
		return nil, apperror.ErrChallengeExpired()
	}

	user, err := s.userRepo.GetByID(ctx, state.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return nil, apperror.Unauthorized("")
	}

	result, err := s.provider.FinishRegistration(user, state.Session, credential)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("attestation verification failed")
		return nil, apperror.Validation("attestation verification failed")
	}

	existing, err := s.credRepo.GetByID(ctx, result.CredentialID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check existing credential: %w", err))
	}
	if existing != nil && existing.UserID != user.ID {
		return nil, apperror.Conflict("credential already enrolled by another account")
	}

	now := time.Now().UTC()
	cred := &domain.Credential{
		ID:         result.CredentialID,
		UserID:     user.ID,
		PublicKey:  result.PublicKey,
		SignCount:  result.SignCount,
		Transports: result.Transports,
		DeviceName: state.DeviceName,
		CreatedAt:  now,
	}
	if result.AAGUID != "" {
		cred.AAGUID = &result.AAGUID
	}
	device := &domain.Device{
		ID:           uuid.New(),
		UserID:       user.ID,
		CredentialID: cred.ID,
		Label:        state.DeviceName,
		Active:       true,
		CreatedAt:    now,
	}

	// The credential and its first device commit together: a credential
	// row without an active device would be unusable for login.
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin enrollment tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.credRepo.Upsert(ctx, tx, cred); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("upsert credential: %w", err))
	}
	if err := s.deviceRepo.Create(ctx, tx, device); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create device: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit enrollment tx: %w", err))
	}

	s.log.Info().
		Str("user_id", user.ID.String()).
		Str("credential_id", cred.ID).
		Str("device_id", device.ID.String()).
		Msg("credential enrolled")

	return &ports.EnrollmentResult{CredentialID: cred.ID, DeviceID: device.ID}, nil
}
