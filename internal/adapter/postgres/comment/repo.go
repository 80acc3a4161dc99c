// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dukedan/consensus-backend/internal/adapter/postgres"
	"github.com/dukedan/consensus-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const commentColumns = `id, argument_id, parent_id, body, created_by, is_removed, created_at, updated_at`

const getByIDSQL = `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

const createSQL = `
INSERT INTO comments (argument_id, parent_id, body, created_by)
VALUES ($1, $2, $3, $4)
RETURNING ` + commentColumns

const listByArgumentIDsSQL = `
SELECT ` + commentColumns + `
FROM comments
WHERE argument_id = ANY($1::uuid[]) AND is_removed = FALSE
ORDER BY created_at
LIMIT $2`

const softRemoveSQL = `
UPDATE comments SET is_removed = TRUE, updated_at = now()
WHERE id = $1 AND is_removed = FALSE`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByID returns a comment by primary key, removed or not.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanComment(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}

	return &c, nil
}

// Create inserts a new comment and returns the persisted domain.Comment.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanComment(querier.QueryRow(ctx, createSQL,
		c.ArgumentID, c.ParentID, c.Body, c.CreatedBy))
	if err != nil {
		return nil, postgres.MapError(err, "comment", uuid.Nil)
	}

	return &created, nil
}

// ListByArgumentIDs returns live comments for multiple arguments in one query
// (batch for bundle assembly), ordered oldest first, capped at limit rows
// across ALL requested arguments. The cap is resource protection for the
// bundle payload, not a business rule.
func (r *Repo) ListByArgumentIDs(ctx context.Context, argumentIDs []uuid.UUID, limit int) ([]domain.Comment, error) {
	if len(argumentIDs) == 0 {
		return []domain.Comment{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByArgumentIDsSQL, argumentIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("list comments by argument_ids: %w", err)
	}
	defer rows.Close()

	result := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArgumentID, &c.ParentID, &c.Body, &c.CreatedBy,
			&c.IsRemoved, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list comments by argument_ids: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments by argument_ids: %w", err)
	}

	return result, nil
}

// SoftRemove flags a comment as removed.
// Returns domain.ErrNotFound if the comment does not exist or is already removed.
func (r *Repo) SoftRemove(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, softRemoveSQL, id)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.ArgumentID, &c.ParentID, &c.Body, &c.CreatedBy,
		&c.IsRemoved, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}
