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

func newTestCredential() *domain.Credential {
	name := "Pixel 9"
	return &domain.Credential{
		ID:         "cred-abc123",
		UserID:     uuid.New(),
		PublicKey:  []byte{0x01, 0x02, 0x03},
		SignCount:  7,
		Transports: []string{"internal"},
		DeviceName: &name,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func credentialTestColumns() []string {
	return []string{"credential_id", "user_id", "public_key", "sign_count", "aaguid", "transports", "device_name", "revoked", "revoked_at", "created_at"}
}

func credentialRow(c *domain.Credential) *pgxmock.Rows {
	return pgxmock.NewRows(credentialTestColumns()).AddRow(
		c.ID, c.UserID, c.PublicKey, c.SignCount, c.AAGUID,
		c.Transports, c.DeviceName, c.Revoked, c.RevokedAt, c.CreatedAt,
	)
}

func TestCredentialRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)
	c := newTestCredential()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO credentials .+ ON CONFLICT \\(credential_id\\) DO UPDATE").
		WithArgs(c.ID, c.UserID, c.PublicKey, c.SignCount, c.AAGUID,
			c.Transports, c.DeviceName, c.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Upsert(context.Background(), tx, c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)
	c := newTestCredential()

	mock.ExpectQuery("SELECT .+ FROM credentials WHERE credential_id").
		WithArgs(c.ID).
		WillReturnRows(credentialRow(c))

	result, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, c.UserID, result.UserID)
	assert.Equal(t, uint32(7), result.SignCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM credentials WHERE credential_id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(credentialTestColumns()))

	result, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_ListUsableByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)
	userID := uuid.New()

	first := newTestCredential()
	first.UserID = userID
	second := newTestCredential()
	second.ID = "cred-def456"
	second.UserID = userID

	rows := pgxmock.NewRows(credentialTestColumns()).
		AddRow(first.ID, first.UserID, first.PublicKey, first.SignCount, first.AAGUID,
			first.Transports, first.DeviceName, first.Revoked, first.RevokedAt, first.CreatedAt).
		AddRow(second.ID, second.UserID, second.PublicKey, second.SignCount, second.AAGUID,
			second.Transports, second.DeviceName, second.Revoked, second.RevokedAt, second.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM credentials c\\s+WHERE c.user_id = \\$1 AND c.revoked = FALSE\\s+AND EXISTS").
		WithArgs(userID).
		WillReturnRows(rows)

	creds, err := repo.ListUsableByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, creds, 2)
	assert.Equal(t, "cred-abc123", creds[0].ID)
	assert.Equal(t, "cred-def456", creds[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_UpdateSignCount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)

	mock.ExpectExec("UPDATE credentials SET sign_count = \\$1 WHERE credential_id = \\$2 AND sign_count < \\$1").
		WithArgs(uint32(9), "cred-abc123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateSignCount(context.Background(), "cred-abc123", 9)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_Revoke_DeactivatesDevicesAtomically(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE credentials SET revoked = TRUE").
		WithArgs("cred-abc123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE devices SET active = FALSE").
		WithArgs(domain.DeviceReasonSignCountRegression, "cred-abc123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectCommit()

	err = repo.Revoke(context.Background(), "cred-abc123", domain.DeviceReasonSignCountRegression)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_Revoke_RollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE credentials SET revoked = TRUE").
		WithArgs("cred-abc123").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = repo.Revoke(context.Background(), "cred-abc123", domain.DeviceReasonUserRevoked)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
