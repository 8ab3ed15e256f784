package postgres

import (
	"context"
	"testing"
	"time"

	"mobile-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDevice() *domain.Device {
	label := "Personal phone"
	return &domain.Device{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		CredentialID: "cred-abc123",
		Label:        &label,
		Active:       true,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func deviceTestColumns() []string {
	return []string{"id", "user_id", "credential_id", "label", "active", "deactivated_at", "deactivated_reason", "created_at"}
}

func deviceRow(d *domain.Device) *pgxmock.Rows {
	return pgxmock.NewRows(deviceTestColumns()).AddRow(
		d.ID, d.UserID, d.CredentialID, d.Label, d.Active,
		d.DeactivatedAt, d.DeactivatedReason, d.CreatedAt,
	)
}

func TestDeviceRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDeviceRepo(mock)
	d := newTestDevice()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO devices").
		WithArgs(d.ID, d.UserID, d.CredentialID, d.Label, d.Active,
			d.DeactivatedAt, d.DeactivatedReason, d.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), tx, d)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDeviceRepo(mock)
	d := newTestDevice()

	mock.ExpectQuery("SELECT .+ FROM devices WHERE id").
		WithArgs(d.ID).
		WillReturnRows(deviceRow(d))

	result, err := repo.GetByID(context.Background(), d.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, d.CredentialID, result.CredentialID)
	assert.True(t, result.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDeviceRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM devices WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(deviceTestColumns()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepo_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDeviceRepo(mock)
	userID := uuid.New()

	newer := newTestDevice()
	newer.UserID = userID
	older := newTestDevice()
	older.UserID = userID
	older.CreatedAt = newer.CreatedAt.Add(-time.Hour)

	rows := pgxmock.NewRows(deviceTestColumns()).
		AddRow(newer.ID, newer.UserID, newer.CredentialID, newer.Label, newer.Active,
			newer.DeactivatedAt, newer.DeactivatedReason, newer.CreatedAt).
		AddRow(older.ID, older.UserID, older.CredentialID, older.Label, older.Active,
			older.DeactivatedAt, older.DeactivatedReason, older.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM devices WHERE user_id = \\$1 ORDER BY created_at DESC").
		WithArgs(userID).
		WillReturnRows(rows)

	devices, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, newer.ID, devices[0].ID)
	assert.Equal(t, older.ID, devices[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepo_CountActiveByCredential(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDeviceRepo(mock)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM devices WHERE credential_id = \\$1 AND active = TRUE").
		WithArgs("cred-abc123").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountActiveByCredential(context.Background(), "cred-abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepo_Deactivate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDeviceRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE devices SET active = FALSE").
		WithArgs(domain.DeviceReasonUserRevoked, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Deactivate(context.Background(), id, domain.DeviceReasonUserRevoked)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepo_Deactivate_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDeviceRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE devices SET active = FALSE").
		WithArgs(domain.DeviceReasonUserRevoked, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Deactivate(context.Background(), id, domain.DeviceReasonUserRevoked)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
