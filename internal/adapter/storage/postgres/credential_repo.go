package postgres

import (
	"context"
	"errors"
	"fmt"

	"mobile-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CredentialRepo implements ports.CredentialRepository.
type CredentialRepo struct {
	pool Pool
}

// NewCredentialRepo creates a new CredentialRepo.
func NewCredentialRepo(pool Pool) *CredentialRepo {
	return &CredentialRepo{pool: pool}
}

const credentialColumns = `credential_id, user_id, public_key, sign_count, aaguid, transports, device_name, revoked, revoked_at, created_at`

func scanCredential(row pgx.Row) (*domain.Credential, error) {
	c := &domain.Credential{}
	err := row.Scan(
		&c.ID, &c.UserID, &c.PublicKey, &c.SignCount, &c.AAGUID,
		&c.Transports, &c.DeviceName, &c.Revoked, &c.RevokedAt, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Upsert inserts the credential; on an existing credential id it
// reassigns ownership, refreshes the public key and clears any
// revocation. Runs on the caller's transaction.
func (r *CredentialRepo) Upsert(ctx context.Context, tx pgx.Tx, c *domain.Credential) error {
	query := `INSERT INTO credentials (credential_id, user_id, public_key, sign_count, aaguid, transports, device_name, revoked, revoked_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, NULL, $8)
		ON CONFLICT (credential_id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			public_key = EXCLUDED.public_key,
			sign_count = EXCLUDED.sign_count,
			aaguid = EXCLUDED.aaguid,
			transports = EXCLUDED.transports,
			device_name = EXCLUDED.device_name,
			revoked = FALSE,
			revoked_at = NULL`

	_, err := tx.Exec(ctx, query,
		c.ID, c.UserID, c.PublicKey, c.SignCount, c.AAGUID,
		c.Transports, c.DeviceName, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert credential: %w", err)
	}
	return nil
}

// GetByID fetches a credential by its opaque id.
func (r *CredentialRepo) GetByID(ctx context.Context, credentialID string) (*domain.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE credential_id = $1`
	c, err := scanCredential(r.pool.QueryRow(ctx, query, credentialID))
	if err != nil {
		return nil, fmt.Errorf("get credential by id: %w", err)
	}
	return c, nil
}

// ListUsableByUser returns non-revoked credentials that have at least
// one active device.
func (r *CredentialRepo) ListUsableByUser(ctx context.Context, userID uuid.UUID) ([]domain.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials c
		WHERE c.user_id = $1 AND c.revoked = FALSE
		AND EXISTS (SELECT 1 FROM devices d WHERE d.credential_id = c.credential_id AND d.active = TRUE)
		ORDER BY c.created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list usable credentials: %w", err)
	}
	defer rows.Close()

	var creds []domain.Credential
	for rows.Next() {
		c := domain.Credential{}
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.PublicKey, &c.SignCount, &c.AAGUID,
			&c.Transports, &c.DeviceName, &c.Revoked, &c.RevokedAt, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		creds = append(creds, c)
	}
	return creds, rows.Err()
}

// UpdateSignCount advances the stored counter. The WHERE guard keeps
// the counter monotonic under concurrent assertions.
func (r *CredentialRepo) UpdateSignCount(ctx context.Context, credentialID string, signCount uint32) error {
	query := `UPDATE credentials SET sign_count = $1 WHERE credential_id = $2 AND sign_count < $1`
	_, err := r.pool.Exec(ctx, query, signCount, credentialID)
	if err != nil {
		return fmt.Errorf("update sign count: %w", err)
	}
	return nil
}

// Revoke marks the credential revoked and deactivates every device
// referencing it, in one transaction.
func (r *CredentialRepo) Revoke(ctx context.Context, credentialID string, reason string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin revoke tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx,
		`UPDATE credentials SET revoked = TRUE, revoked_at = NOW() WHERE credential_id = $1`,
		credentialID,
	)
	if err != nil {
		return fmt.Errorf("revoke credential: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE devices SET active = FALSE, deactivated_at = NOW(), deactivated_reason = $1
			WHERE credential_id = $2 AND active = TRUE`,
		reason, credentialID,
	)
	if err != nil {
		return fmt.Errorf("deactivate devices: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit revoke tx: %w", err)
	}
	return nil
}
