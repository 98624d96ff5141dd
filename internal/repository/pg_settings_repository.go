package repository

import (
	"context"
	"errors"
	"time"

	"github.com/formdrop/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// adminSettingsKey identifies the singleton admin settings row.
const adminSettingsKey = "admin"

// SettingsRepository defines the persistence interface for the singleton
// admin credential record.
type SettingsRepository interface {
	GetAdminCredential(ctx context.Context) (*model.AdminCredential, error)
	UpsertAdminCredential(ctx context.Context, password string, updatedAt time.Time) error
}

// PgSettingsRepository is the PostgreSQL implementation of SettingsRepository.
type PgSettingsRepository struct {
	pool *pgxpool.Pool
}

// NewPgSettingsRepository creates a PgSettingsRepository backed by the given pool.
func NewPgSettingsRepository(pool *pgxpool.Pool) *PgSettingsRepository {
	return &PgSettingsRepository{pool: pool}
}

// Ensure PgSettingsRepository implements SettingsRepository at compile time.
var _ SettingsRepository = (*PgSettingsRepository)(nil)

// GetAdminCredential returns the stored admin credential, or ErrNotFound
// when no override has been persisted yet.
func (r *PgSettingsRepository) GetAdminCredential(ctx context.Context) (*model.AdminCredential, error) {
	var c model.AdminCredential
	err := r.pool.QueryRow(ctx,
		`SELECT password, updated_at FROM admin_settings WHERE key = $1`,
		adminSettingsKey,
	).Scan(&c.Password, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertAdminCredential replaces or creates the singleton credential row.
// Uniqueness of the key column enforces the singleton invariant.
func (r *PgSettingsRepository) UpsertAdminCredential(ctx context.Context, password string, updatedAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO admin_settings (key, password, updated_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET password = EXCLUDED.password, updated_at = EXCLUDED.updated_at`,
		adminSettingsKey, password, updatedAt,
	)
	return err
}
