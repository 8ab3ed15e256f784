package postgres

import (
	"context"
	"errors"
	"fmt"

	"mobile-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DeviceRepo implements ports.DeviceRepository.
type DeviceRepo struct {
	pool Pool
}

// NewDeviceRepo creates a new DeviceRepo.
func NewDeviceRepo(pool Pool) *DeviceRepo {
	return &DeviceRepo{pool: pool}
}

const deviceColumns = `id, user_id, credential_id, label, active, deactivated_at, deactivated_reason, created_at`

// Create inserts a new device record on the caller's transaction.
func (r *DeviceRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.Device) error {
	query := `INSERT INTO devices (id, user_id, credential_id, label, active, deactivated_at, deactivated_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		d.ID, d.UserID, d.CredentialID, d.Label, d.Active,
		d.DeactivatedAt, d.DeactivatedReason, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert device: %w", err)
	}
	return nil
}

// GetByID fetches a device by id.
func (r *DeviceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	d := &domain.Device{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.UserID, &d.CredentialID, &d.Label, &d.Active,
		&d.DeactivatedAt, &d.DeactivatedReason, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get device by id: %w", err)
	}
	return d, nil
}

// ListByUser returns all of a user's devices, newest first.
func (r *DeviceRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()

	var devices []domain.Device
	for rows.Next() {
		d := domain.Device{}
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.CredentialID, &d.Label, &d.Active,
			&d.DeactivatedAt, &d.DeactivatedReason, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

// CountActiveByCredential counts active devices referencing the
// credential.
func (r *DeviceRepo) CountActiveByCredential(ctx context.Context, credentialID string) (int64, error) {
	query := `SELECT COUNT(*) FROM devices WHERE credential_id = $1 AND active = TRUE`

	var count int64
	if err := r.pool.QueryRow(ctx, query, credentialID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active devices: %w", err)
	}
	return count, nil
}

// Deactivate marks a device inactive with a reason.
func (r *DeviceRepo) Deactivate(ctx context.Context, id uuid.UUID, reason string) error {
	query := `UPDATE devices SET active = FALSE, deactivated_at = NOW(), deactivated_reason = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, reason, id)
	if err != nil {
		return fmt.Errorf("deactivate device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("device not found: %s", id)
	}
	return nil
}
