package service

import (
	"context"
	"testing"
	"time"

	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/internal/core/ports/mocks"
	"mobile-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupCredentialService(t *testing.T, mode ports.SignCountMode) (
	*CredentialServiceImpl,
	*mocks.MockCredentialRepository,
	*mocks.MockDeviceRepository,
	*gomock.Controller,
) {
	ctrl := gomock.NewController(t)
	credRepo := mocks.NewMockCredentialRepository(ctrl)
	deviceRepo := mocks.NewMockDeviceRepository(ctrl)
	svc := NewCredentialService(credRepo, deviceRepo, mode, zerolog.Nop())
	return svc, credRepo, deviceRepo, ctrl
}

func TestCredentialService_ReconcileSignCount_Increase(t *testing.T) {
	svc, credRepo, _, ctrl := setupCredentialService(t, ports.SignCountModeStrict)
	defer ctrl.Finish()

	ctx := context.Background()
	cred := &domain.Credential{ID: "cred-1", UserID: uuid.New(), SignCount: 4}

	credRepo.EXPECT().UpdateSignCount(ctx, "cred-1", uint32(5)).Return(nil)
	require.NoError(t, svc.ReconcileSignCount(ctx, cred, 5))
}

func TestCredentialService_ReconcileSignCount_EqualZeroIsNoop(t *testing.T) {
	svc, _, _, ctrl := setupCredentialService(t, ports.SignCountModeStrict)
	defer ctrl.Finish()

	// Authenticators without a counter report zero on every assertion.
	cred := &domain.Credential{ID: "cred-1", UserID: uuid.New(), SignCount: 0}
	require.NoError(t, svc.ReconcileSignCount(context.Background(), cred, 0))
}

func TestCredentialService_ReconcileSignCount_RegressionStrict(t *testing.T) {
	svc, credRepo, _, ctrl := setupCredentialService(t, ports.SignCountModeStrict)
	defer ctrl.Finish()

	ctx := context.Background()
	cred := &domain.Credential{ID: "cred-1", UserID: uuid.New(), SignCount: 10}

	credRepo.EXPECT().Revoke(ctx, "cred-1", domain.DeviceReasonSignCountRegression).Return(nil)

	err := svc.ReconcileSignCount(ctx, cred, 3)
	requireAppErrorCode(t, err, apperror.CodeCredentialCompromised)
}

func TestCredentialService_ReconcileSignCount_RegressionLenient(t *testing.T) {
	svc, _, _, ctrl := setupCredentialService(t, ports.SignCountModeLenient)
	defer ctrl.Finish()

	cred := &domain.Credential{ID: "cred-1", UserID: uuid.New(), SignCount: 10}
	require.NoError(t, svc.ReconcileSignCount(context.Background(), cred, 3))
}

func TestCredentialService_ListDevices(t *testing.T) {
	svc, _, deviceRepo, ctrl := setupCredentialService(t, ports.SignCountModeStrict)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	devices := []domain.Device{
		{ID: uuid.New(), UserID: userID, CredentialID: "cred-1", Active: true},
		{ID: uuid.New(), UserID: userID, CredentialID: "cred-2", Active: false},
	}

	deviceRepo.EXPECT().ListByUser(ctx, userID).Return(devices, nil)

	got, err := svc.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCredentialService_RevokeDevice_LastDeviceRevokesCredential(t *testing.T) {
	svc, credRepo, deviceRepo, ctrl := setupCredentialService(t, ports.SignCountModeStrict)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	device := &domain.Device{ID: deviceID, UserID: userID, CredentialID: "cred-1", Active: true}

	deviceRepo.EXPECT().GetByID(ctx, deviceID).Return(device, nil)
	deviceRepo.EXPECT().Deactivate(ctx, deviceID, domain.DeviceReasonUserRevoked).Return(nil)
	deviceRepo.EXPECT().CountActiveByCredential(ctx, "cred-1").Return(int64(0), nil)
	credRepo.EXPECT().Revoke(ctx, "cred-1", domain.DeviceReasonUserRevoked).Return(nil)

	require.NoError(t, svc.RevokeDevice(ctx, userID, deviceID))
}

func TestCredentialService_RevokeDevice_OtherDevicesKeepCredential(t *testing.T) {
	svc, _, deviceRepo, ctrl := setupCredentialService(t, ports.SignCountModeStrict)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	device := &domain.Device{ID: deviceID, UserID: userID, CredentialID: "cred-1", Active: true}

	deviceRepo.EXPECT().GetByID(ctx, deviceID).Return(device, nil)
	deviceRepo.EXPECT().Deactivate(ctx, deviceID, domain.DeviceReasonUserRevoked).Return(nil)
	deviceRepo.EXPECT().CountActiveByCredential(ctx, "cred-1").Return(int64(1), nil)

	require.NoError(t, svc.RevokeDevice(ctx, userID, deviceID))
}

func TestCredentialService_RevokeDevice_ForeignDeviceNotFound(t *testing.T) {
	svc, _, deviceRepo, ctrl := setupCredentialService(t, ports.SignCountModeStrict)
	defer ctrl.Finish()

	ctx := context.Background()
	deviceID := uuid.New()
	device := &domain.Device{ID: deviceID, UserID: uuid.New(), CredentialID: "cred-1", Active: true}

	deviceRepo.EXPECT().GetByID(ctx, deviceID).Return(device, nil)

	err := svc.RevokeDevice(ctx, uuid.New(), deviceID)
	requireAppErrorCode(t, err, apperror.CodeNotFound)
}

func TestCredentialService_RevokeDevice_InactiveIsIdempotent(t *testing.T) {
	svc, _, deviceRepo, ctrl := setupCredentialService(t, ports.SignCountModeStrict)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	now := time.Now().UTC()
	device := &domain.Device{ID: deviceID, UserID: userID, CredentialID: "cred-1", Active: false, DeactivatedAt: &now}

	deviceRepo.EXPECT().GetByID(ctx, deviceID).Return(device, nil)

	require.NoError(t, svc.RevokeDevice(ctx, userID, deviceID))
}
