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

func newTestUser() *domain.User {
	first := "Alice"
	hash := "$argon2id$..."
	return &domain.User{
		ID:            uuid.New(),
		Email:         "alice@example.com",
		FirstName:     &first,
		PasswordHash:  &hash,
		EmailVerified: true,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func userTestColumns() []string {
	return []string{"id", "email", "first_name", "last_name", "password_hash", "email_verified", "verification_requested_at", "created_at", "updated_at"}
}

func userRow(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(userTestColumns()).AddRow(
		u.ID, u.Email, u.FirstName, u.LastName, u.PasswordHash,
		u.EmailVerified, u.VerificationRequestedAt, u.CreatedAt, u.UpdatedAt,
	)
}

func TestUserRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	u := newTestUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID, u.Email, u.FirstName, u.LastName, u.PasswordHash,
			u.EmailVerified, u.VerificationRequestedAt, u.CreatedAt, u.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), u)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	u := newTestUser()

	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs(u.Email).
		WillReturnRows(userRow(u))

	result, err := repo.GetByEmail(context.Background(), u.Email)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, u.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnRows(pgxmock.NewRows(userTestColumns()))

	result, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetEmailVerified(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	userID := uuid.New()

	mock.ExpectExec("UPDATE users SET email_verified = TRUE").
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SetEmailVerified(context.Background(), userID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdatePasswordHash_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	userID := uuid.New()

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("$argon2id$new", userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdatePasswordHash(context.Background(), userID, "$argon2id$new")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
