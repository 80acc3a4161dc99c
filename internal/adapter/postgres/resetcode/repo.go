// Package resetcode implements the password reset code repository using PostgreSQL.
// Codes are single-use and time-bounded; expired or used rows are purged by the
// cleanup-codes binary.
package resetcode

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dukedan/consensus-backend/internal/adapter/postgres"
	"github.com/dukedan/consensus-backend/internal/domain"
)

// Repo provides reset code persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reset code repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const codeColumns = `id, user_id, code, expires_at, is_used, created_at, updated_at`

const createSQL = `
INSERT INTO password_reset_codes (user_id, code, expires_at)
VALUES ($1, $2, $3)
RETURNING ` + codeColumns

const getActiveByCodeSQL = `
SELECT ` + codeColumns + `
FROM password_reset_codes
WHERE code = $1 AND is_used = FALSE`

const markUsedSQL = `
UPDATE password_reset_codes SET is_used = TRUE, updated_at = now()
WHERE id = $1 AND is_used = FALSE`

const deleteStaleSQL = `
DELETE FROM password_reset_codes
WHERE is_used = TRUE OR expires_at < $1`

// Create stores a new reset code for the user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) (*domain.PasswordResetCode, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rc, err := scanCode(querier.QueryRow(ctx, createSQL, userID, code, expiresAt))
	if err != nil {
		return nil, postgres.MapError(err, "password_reset_code", userID)
	}

	return &rc, nil
}

// GetActiveByCode returns an unused reset code by its value.
// Expiry is NOT checked here — the service compares ExpiresAt against its clock.
func (r *Repo) GetActiveByCode(ctx context.Context, code string) (*domain.PasswordResetCode, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rc, err := scanCode(querier.QueryRow(ctx, getActiveByCodeSQL, code))
	if err != nil {
		return nil, postgres.MapError(err, "password_reset_code", uuid.Nil)
	}

	return &rc, nil
}

// MarkUsed flags a code as consumed. Returns domain.ErrNotFound if the code
// does not exist or was already used (lost race with a concurrent reset).
func (r *Repo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markUsedSQL, id)
	if err != nil {
		return postgres.MapError(err, "password_reset_code", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("password_reset_code %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteStale removes used codes and codes that expired before the given time.
// Returns the number of rows deleted.
func (r *Repo) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteStaleSQL, before)
	if err != nil {
		return 0, fmt.Errorf("delete stale reset codes: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanCode(row pgx.Row) (domain.PasswordResetCode, error) {
	var rc domain.PasswordResetCode
	err := row.Scan(&rc.ID, &rc.UserID, &rc.Code, &rc.ExpiresAt, &rc.IsUsed, &rc.CreatedAt, &rc.UpdatedAt)
	if err != nil {
		return domain.PasswordResetCode{}, err
	}
	return rc, nil
}
