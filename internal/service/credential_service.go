package service

import (
	"context"
	"fmt"

	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CredentialServiceImpl implements ports.CredentialService: sign-count
// policy enforcement and device management.
type CredentialServiceImpl struct {
	credRepo   ports.CredentialRepository
	deviceRepo ports.DeviceRepository
	mode       ports.SignCountMode
	log        zerolog.Logger
}

// NewCredentialService creates a new CredentialServiceImpl.
func NewCredentialService(
	credRepo ports.CredentialRepository,
	deviceRepo ports.DeviceRepository,
	mode ports.SignCountMode,
	log zerolog.Logger,
) *CredentialServiceImpl {
	return &CredentialServiceImpl{
		credRepo:   credRepo,
		deviceRepo: deviceRepo,
		mode:       mode,
		log:        log,
	}
}

// ReconcileSignCount applies the post-assertion counter policy.
// An increase advances the stored counter. Equality (including the
// both-zero case of authenticators that never count) is a no-op. A
// regression signals possible credential cloning: STRICT revokes the
// credential and fails the authentication, LENIENT logs and continues
// without touching the counter.
func (s *CredentialServiceImpl) ReconcileSignCount(ctx context.Context, cred *domain.Credential, newSignCount uint32) error {
	switch {
	case newSignCount > cred.SignCount:
		if err := s.credRepo.UpdateSignCount(ctx, cred.ID, newSignCount); err != nil {
			return apperror.InternalError(fmt.Errorf("update sign count: %w", err))
		}
		return nil

	case newSignCount == cred.SignCount:
		// Authenticators without a counter report zero forever.
		return nil

	default:
		if s.mode == ports.SignCountModeLenient {
			s.log.Warn().
				Str("credential_id", cred.ID).
				Uint32("stored", cred.SignCount).
				Uint32("asserted", newSignCount).
				Msg("sign count regression (lenient mode, continuing)")
			return nil
		}

		s.log.Error().
			Str("credential_id", cred.ID).
			Str("user_id", cred.UserID.String()).
			Uint32("stored", cred.SignCount).
			Uint32("asserted", newSignCount).
			Msg("sign count regression, revoking credential")

		if err := s.credRepo.Revoke(ctx, cred.ID, domain.DeviceReasonSignCountRegression); err != nil {
			return apperror.InternalError(fmt.Errorf("revoke compromised credential: %w", err))
		}
		return apperror.ErrCredentialCompromised()
	}
}

// ListDevices returns all of the user's device records, active and not.
func (s *CredentialServiceImpl) ListDevices(ctx context.Context, userID uuid.UUID) ([]domain.Device, error) {
	devices, err := s.deviceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list devices: %w", err))
	}
	return devices, nil
}

// RevokeDevice deactivates a device owned by the user. When it was the
// credential's last active device the credential is revoked too, so a
// fully-revoked authenticator cannot pass the usable-credential check.
func (s *CredentialServiceImpl) RevokeDevice(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find device: %w", err))
	}
	if device == nil || device.UserID != userID {
		return apperror.NotFound("device")
	}
	if !device.Active {
		return nil
	}

	if err := s.deviceRepo.Deactivate(ctx, deviceID, domain.DeviceReasonUserRevoked); err != nil {
		return apperror.InternalError(fmt.Errorf("deactivate device: %w", err))
	}

	remaining, err := s.deviceRepo.CountActiveByCredential(ctx, device.CredentialID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("count active devices: %w", err))
	}
	if remaining == 0 {
		if err := s.credRepo.Revoke(ctx, device.CredentialID, domain.DeviceReasonUserRevoked); err != nil {
			return apperror.InternalError(fmt.Errorf("revoke credential: %w", err))
		}
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("device_id", deviceID.String()).
		Msg("device revoked")
	return nil
}
