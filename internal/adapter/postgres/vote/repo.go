// Package vote implements the Vote ledger repository using PostgreSQL.
// The (user_id, target_type, target_id) unique constraint is the single
// enforcement point of the one-vote-per-user-per-target invariant; GetForUpdate
// takes a row lock so a vote change and its counter deltas commit atomically.
package vote

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dukedan/consensus-backend/internal/adapter/postgres"
	"github.com/dukedan/consensus-backend/internal/domain"
)

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const voteColumns = `id, user_id, target_type, target_id, value, created_at, updated_at`

const getForUpdateSQL = `
SELECT ` + voteColumns + `
FROM votes
WHERE user_id = $1 AND target_type = $2 AND target_id = $3
FOR UPDATE`

const insertSQL = `
INSERT INTO votes (user_id, target_type, target_id, value)
VALUES ($1, $2, $3, $4)
RETURNING ` + voteColumns

const updateValueSQL = `
UPDATE votes SET value = $2, updated_at = now() WHERE id = $1`

const deleteSQL = `
DELETE FROM votes
WHERE user_id = $1 AND target_type = $2 AND target_id = $3
RETURNING value`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetForUpdate returns the user's existing vote on a target, locking the row
// for the rest of the transaction. Returns domain.ErrNotFound when the user
// has not voted on this target.
func (r *Repo) GetForUpdate(ctx context.Context, userID uuid.UUID, targetType domain.VoteTarget, targetID uuid.UUID) (*domain.Vote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanVote(querier.QueryRow(ctx, getForUpdateSQL, userID, targetType, targetID))
	if err != nil {
		return nil, postgres.MapError(err, "vote", targetID)
	}

	return &v, nil
}

// Insert records a new vote. A unique-constraint violation (two first votes
// racing on the same target) maps to domain.ErrAlreadyExists; the service
// retries the whole transaction.
func (r *Repo) Insert(ctx context.Context, v *domain.Vote) (*domain.Vote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanVote(querier.QueryRow(ctx, insertSQL,
		v.UserID, v.TargetType, v.TargetID, v.Value))
	if err != nil {
		return nil, postgres.MapError(err, "vote", v.TargetID)
	}

	return &created, nil
}

// UpdateValue flips the direction of an existing vote.
func (r *Repo) UpdateValue(ctx context.Context, id uuid.UUID, value domain.VoteValue) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateValueSQL, id, value)
	if err != nil {
		return postgres.MapError(err, "vote", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vote %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the user's vote on a target and returns the value it had,
// so the caller can reverse the counters. Returns domain.ErrNotFound when no
// vote exists.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, targetType domain.VoteTarget, targetID uuid.UUID) (domain.VoteValue, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var value domain.VoteValue
	err := querier.QueryRow(ctx, deleteSQL, userID, targetType, targetID).Scan(&value)
	if err != nil {
		return 0, postgres.MapError(err, "vote", targetID)
	}

	return value, nil
}

func scanVote(row pgx.Row) (domain.Vote, error) {
	var v domain.Vote
	err := row.Scan(&v.ID, &v.UserID, &v.TargetType, &v.TargetID, &v.Value, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return domain.Vote{}, err
	}
	return v, nil
}
