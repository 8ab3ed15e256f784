package postgres

import (
	"context"
	"errors"
	"fmt"

	"mobile-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RefreshTokenRepo implements ports.RefreshTokenRepository.
type RefreshTokenRepo struct {
	pool Pool
}

// NewRefreshTokenRepo creates a new RefreshTokenRepo.
func NewRefreshTokenRepo(pool Pool) *RefreshTokenRepo {
	return &RefreshTokenRepo{pool: pool}
}

// Create inserts a new refresh-token record.
func (r *RefreshTokenRepo) Create(ctx context.Context, t *domain.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, revoked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.Revoked, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

// GetByID fetches a refresh-token record by jti.
func (r *RefreshTokenRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RefreshToken, error) {
	query := `SELECT id, user_id, token_hash, expires_at, revoked, created_at
		FROM refresh_tokens WHERE id = $1`

	t := &domain.RefreshToken{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.Revoked, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refresh token: %w", err)
	}
	return t, nil
}

// Revoke flips revoked=true in a single UPDATE. Under concurrent
// presentation exactly one caller gets true; the loser fails its
// refresh.
func (r *RefreshTokenRepo) Revoke(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE refresh_tokens SET revoked = TRUE WHERE id = $1 AND revoked = FALSE`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("revoke refresh token: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RevokeAllForUser revokes every live refresh record for a user (used
// after a password reset).
func (r *RefreshTokenRepo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE refresh_tokens SET revoked = TRUE WHERE user_id = $1 AND revoked = FALSE`

	if _, err := r.pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("revoke refresh tokens for user: %w", err)
	}
	return nil
}
