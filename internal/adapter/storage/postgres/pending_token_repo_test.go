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

func newTestPendingToken() *domain.PendingToken {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.PendingToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: "$argon2id$...",
		ExpiresAt: now.Add(24 * time.Hour),
		CreatedAt: now,
	}
}

func TestPendingTokenRepo_Create_VerificationTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingTokenRepo(mock)
	tok := newTestPendingToken()

	mock.ExpectExec("INSERT INTO email_verification_tokens").
		WithArgs(tok.ID, tok.UserID, tok.TokenHash, tok.ExpiresAt, tok.ConsumedAt, tok.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), domain.PendingTokenEmailVerification, tok)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingTokenRepo_Create_ResetTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingTokenRepo(mock)
	tok := newTestPendingToken()

	mock.ExpectExec("INSERT INTO password_reset_tokens").
		WithArgs(tok.ID, tok.UserID, tok.TokenHash, tok.ExpiresAt, tok.ConsumedAt, tok.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), domain.PendingTokenPasswordReset, tok)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingTokenRepo_Create_UnknownKind(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingTokenRepo(mock)

	err = repo.Create(context.Background(), domain.PendingTokenKind("MAGIC_LINK"), newTestPendingToken())
	assert.Error(t, err)
}

func TestPendingTokenRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingTokenRepo(mock)
	tok := newTestPendingToken()

	rows := pgxmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "consumed_at", "created_at"}).
		AddRow(tok.ID, tok.UserID, tok.TokenHash, tok.ExpiresAt, tok.ConsumedAt, tok.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM email_verification_tokens WHERE id").
		WithArgs(tok.ID).
		WillReturnRows(rows)

	result, err := repo.GetByID(context.Background(), domain.PendingTokenEmailVerification, tok.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, tok.UserID, result.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingTokenRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingTokenRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM password_reset_tokens WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "consumed_at", "created_at"}))

	result, err := repo.GetByID(context.Background(), domain.PendingTokenPasswordReset, id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingTokenRepo_Consume_WinnerAndLoser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPendingTokenRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE email_verification_tokens SET consumed_at = NOW\\(\\) WHERE id = \\$1 AND consumed_at IS NULL").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE email_verification_tokens SET consumed_at = NOW\\(\\) WHERE id = \\$1 AND consumed_at IS NULL").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	won, err := repo.Consume(context.Background(), domain.PendingTokenEmailVerification, id)
	require.NoError(t, err)
	assert.True(t, won)

	won, err = repo.Consume(context.Background(), domain.PendingTokenEmailVerification, id)
	require.NoError(t, err)
	assert.False(t, won)

	assert.NoError(t, mock.ExpectationsWereMet())
}
