// Package user implements the User repository using PostgreSQL.
package user

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

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const userColumns = `id, email, name, password_hash, created_at, updated_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const createSQL = `
INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + userColumns

const updatePasswordSQL = `
UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

const getIdentitiesByIDsSQL = `
SELECT id, name, email FROM users WHERE id = ANY($1::uuid[])`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists when the email is already taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(querier.QueryRow(ctx, createSQL,
		u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return &created, nil
}

// UpdatePasswordHash replaces the stored password hash for the given user.
func (r *Repo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updatePasswordSQL, id, hash)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// GetIdentitiesByIDs returns the public identities for multiple users in one
// query (batch for bundle assembly). Missing ids are simply absent from the map.
func (r *Repo) GetIdentitiesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Identity, error) {
	result := make(map[uuid.UUID]domain.Identity, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getIdentitiesByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get identities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ident domain.Identity
		if err := rows.Scan(&ident.ID, &ident.Name, &ident.Email); err != nil {
			return nil, fmt.Errorf("get identities: %w", err)
		}
		result[ident.ID] = ident
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get identities: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u         domain.User
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &createdAt, &updatedAt); err != nil {
		return domain.User{}, err
	}
	u.CreatedAt = createdAt
	u.UpdatedAt = updatedAt
	return u, nil
}
