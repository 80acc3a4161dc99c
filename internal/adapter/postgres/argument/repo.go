// Package argument implements the Argument repository using PostgreSQL.
// The topic-page listing is built with squirrel because ordering and limit are
// dynamic; everything else is raw SQL. Vote counters are only ever changed by
// UpdateVoteCounters, which recomputes score from the counters in the same
// statement — score cannot drift.
package argument

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dukedan/consensus-backend/internal/adapter/postgres"
	"github.com/dukedan/consensus-backend/internal/domain"
)

// Repo provides argument persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new argument repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const argumentColumns = `id, topic_id, side, body, created_by,
upvote_count, downvote_count, score, is_removed, edited_at, created_at, updated_at`

const getByIDSQL = `SELECT ` + argumentColumns + ` FROM arguments WHERE id = $1`

const createSQL = `
INSERT INTO arguments (topic_id, side, body, created_by)
VALUES ($1, $2, $3, $4)
RETURNING ` + argumentColumns

const updateVoteCountersSQL = `
UPDATE arguments SET
    upvote_count   = upvote_count + $2,
    downvote_count = downvote_count + $3,
    score          = (upvote_count + $2) - (downvote_count + $3),
    updated_at     = now()
WHERE id = $1
RETURNING topic_id, upvote_count, downvote_count, score`

const softRemoveSQL = `
UPDATE arguments SET is_removed = TRUE, updated_at = now()
WHERE id = $1 AND is_removed = FALSE
RETURNING topic_id, side, score`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an argument by primary key, removed or not.
// Callers that must not see removed arguments check IsRemoved themselves.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Argument, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanArgument(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "argument", id)
	}

	return &a, nil
}

// ListByTopic returns up to limit live arguments of a topic under the given
// ordering:
//   - relevant: score DESC, created_at DESC (newest of equal score wins)
//   - newest:   created_at DESC, score ignored
func (r *Repo) ListByTopic(ctx context.Context, topicID uuid.UUID, ordering domain.BundleOrdering, limit int) ([]domain.Argument, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := psql.
		Select("id", "topic_id", "side", "body", "created_by",
			"upvote_count", "downvote_count", "score", "is_removed",
			"edited_at", "created_at", "updated_at").
		From("arguments").
		Where(sq.Eq{"topic_id": topicID, "is_removed": false}).
		Limit(uint64(limit))

	if ordering == domain.OrderingRelevant {
		query = query.OrderBy("score DESC", "created_at DESC")
	} else {
		query = query.OrderBy("created_at DESC")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build arguments query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list arguments: %w", err)
	}
	defer rows.Close()

	result := []domain.Argument{}
	for rows.Next() {
		a, err := scanArgumentFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("list arguments: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list arguments: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new argument and returns the persisted domain.Argument.
// The owning topic's argument counters are adjusted by the service in the
// same transaction.
func (r *Repo) Create(ctx context.Context, a *domain.Argument) (*domain.Argument, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanArgument(querier.QueryRow(ctx, createSQL,
		a.TopicID, a.Side, a.Body, a.CreatedBy))
	if err != nil {
		return nil, postgres.MapError(err, "argument", uuid.Nil)
	}

	return &created, nil
}

// UpdateVoteCounters atomically shifts the vote counters and recomputes score
// from them in the same statement. Returns the owning topic id (for the
// topic-level score aggregate) plus the updated counters.
func (r *Repo) UpdateVoteCounters(ctx context.Context, id uuid.UUID, upDelta, downDelta int) (uuid.UUID, domain.VoteCounters, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		topicID uuid.UUID
		c       domain.VoteCounters
	)
	err := querier.QueryRow(ctx, updateVoteCountersSQL, id, upDelta, downDelta).
		Scan(&topicID, &c.UpvoteCount, &c.DownvoteCount, &c.Score)
	if err != nil {
		return uuid.Nil, domain.VoteCounters{}, postgres.MapError(err, "argument", id)
	}

	return topicID, c, nil
}

// SoftRemove flags an argument as removed and returns its topic id, side and
// score so the caller can reverse the topic aggregates in the same transaction.
// Returns domain.ErrNotFound if the argument does not exist or is already removed.
func (r *Repo) SoftRemove(ctx context.Context, id uuid.UUID) (uuid.UUID, domain.ArgumentSide, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		topicID uuid.UUID
		side    domain.ArgumentSide
		score   int
	)
	err := querier.QueryRow(ctx, softRemoveSQL, id).Scan(&topicID, &side, &score)
	if err != nil {
		return uuid.Nil, "", 0, postgres.MapError(err, "argument", id)
	}

	return topicID, side, score, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanArgument(row pgx.Row) (domain.Argument, error) {
	var a domain.Argument
	err := row.Scan(
		&a.ID, &a.TopicID, &a.Side, &a.Body, &a.CreatedBy,
		&a.UpvoteCount, &a.DownvoteCount, &a.Score, &a.IsRemoved,
		&a.EditedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Argument{}, err
	}
	return a, nil
}

func scanArgumentFromRows(rows pgx.Rows) (domain.Argument, error) {
	var a domain.Argument
	err := rows.Scan(
		&a.ID, &a.TopicID, &a.Side, &a.Body, &a.CreatedBy,
		&a.UpvoteCount, &a.DownvoteCount, &a.Score, &a.IsRemoved,
		&a.EditedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Argument{}, err
	}
	return a, nil
}
