package postgres

import (
	"context"
	"errors"
	"fmt"

	"mobile-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PendingTokenRepo implements ports.PendingTokenRepository over the
// email-verification and password-reset tables.
type PendingTokenRepo struct {
	pool Pool
}

// NewPendingTokenRepo creates a new PendingTokenRepo.
func NewPendingTokenRepo(pool Pool) *PendingTokenRepo {
	return &PendingTokenRepo{pool: pool}
}

func pendingTokenTable(kind domain.PendingTokenKind) (string, error) {
	switch kind {
	case domain.PendingTokenEmailVerification:
		return "email_verification_tokens", nil
	case domain.PendingTokenPasswordReset:
		return "password_reset_tokens", nil
	default:
		return "", fmt.Errorf("unknown pending token kind: %s", kind)
	}
}

// Create inserts a pending token.
func (r *PendingTokenRepo) Create(ctx context.Context, kind domain.PendingTokenKind, t *domain.PendingToken) error {
	table, err := pendingTokenTable(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, user_id, token_hash, expires_at, consumed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`, table)

	if _, err := r.pool.Exec(ctx, query, t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.ConsumedAt, t.CreatedAt); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// GetByID fetches a pending token by id.
func (r *PendingTokenRepo) GetByID(ctx context.Context, kind domain.PendingTokenKind, id uuid.UUID) (*domain.PendingToken, error) {
	table, err := pendingTokenTable(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT id, user_id, token_hash, expires_at, consumed_at, created_at
		FROM %s WHERE id = $1`, table)

	t := &domain.PendingToken{}
	err = r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.ConsumedAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", table, err)
	}
	return t, nil
}

// Consume sets consumed_at in a single guarded UPDATE, so a token is
// consumable at most once across all requests.
func (r *PendingTokenRepo) Consume(ctx context.Context, kind domain.PendingTokenKind, id uuid.UUID) (bool, error) {
	table, err := pendingTokenTable(kind)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`UPDATE %s SET consumed_at = NOW() WHERE id = $1 AND consumed_at IS NULL`, table)

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("consume %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}
