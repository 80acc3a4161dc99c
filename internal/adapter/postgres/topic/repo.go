// Package topic implements the Topic repository using PostgreSQL.
// Fixed-shape queries use raw SQL constants; the top-topics ranking is built
// with squirrel. Aggregate columns (argument counts, score, vote counters) are
// only ever changed through the atomic Adjust*/UpdateVoteCounters statements.
package topic

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/dukedan/consensus-backend/internal/adapter/postgres"
	"github.com/dukedan/consensus-backend/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const topicColumns = `id, title, description, slug, created_by, is_active, tags,
pro_count, con_count, total_count, score, upvote_count, downvote_count,
created_at, updated_at`

const getByIDSQL = `SELECT ` + topicColumns + ` FROM topics WHERE id = $1`

const getBySlugSQL = `SELECT ` + topicColumns + ` FROM topics WHERE slug = $1`

const createSQL = `
INSERT INTO topics (title, description, slug, created_by, tags)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + topicColumns

const adjustArgumentCountsSQL = `
UPDATE topics SET
    pro_count   = pro_count + $2,
    con_count   = con_count + $3,
    total_count = total_count + $2 + $3,
    updated_at  = now()
WHERE id = $1`

const adjustScoreSQL = `
UPDATE topics SET score = score + $2, updated_at = now() WHERE id = $1`

const updateVoteCountersSQL = `
UPDATE topics SET
    upvote_count   = upvote_count + $2,
    downvote_count = downvote_count + $3,
    updated_at     = now()
WHERE id = $1
RETURNING upvote_count, downvote_count`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	return &t, nil
}

// GetBySlug returns a topic by its friendly slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTopic(querier.QueryRow(ctx, getBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}

	return &t, nil
}

// ListTop returns topics ranked by their own vote totals: totalVotes DESC,
// ties broken by created_at DESC, truncated to limit. The creator's display
// name is resolved in the same query, falling back to "Unknown" when the
// user record is missing.
func (r *Repo) ListTop(ctx context.Context, limit int) ([]domain.TopicSummary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := psql.
		Select(
			"t.id", "t.title",
			"t.upvote_count", "t.downvote_count",
			"t.upvote_count + t.downvote_count AS total_votes",
			fmt.Sprintf("COALESCE(u.name, '%s') AS creator_name", domain.UnknownCreatorName),
			"t.created_at",
		).
		From("topics t").
		LeftJoin("users u ON u.id = t.created_by").
		OrderBy("total_votes DESC", "t.created_at DESC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top topics query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list top topics: %w", err)
	}
	defer rows.Close()

	result := []domain.TopicSummary{}
	for rows.Next() {
		var s domain.TopicSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.UpvoteCount, &s.DownvoteCount,
			&s.TotalVotes, &s.CreatorName, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("list top topics: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list top topics: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// maxSlugAttempts bounds the numeric-suffix probing on slug collision.
const maxSlugAttempts = 5

// Create inserts a new topic, deriving a unique slug from the title.
// On slug collision a numeric suffix is appended (the-question, the-question-2, …);
// after maxSlugAttempts a short random suffix is used.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	base := domain.Slugify(t.Title)
	if base == "" {
		base = "topic"
	}

	slug := base
	for attempt := 2; ; attempt++ {
		created, err := scanTopic(querier.QueryRow(ctx, createSQL,
			t.Title, t.Description, slug, t.CreatedBy, tagsOrEmpty(t.Tags)))
		if err == nil {
			return &created, nil
		}

		mapped := postgres.MapError(err, "topic", uuid.Nil)
		if !errors.Is(mapped, domain.ErrAlreadyExists) {
			return nil, mapped
		}

		if attempt > maxSlugAttempts {
			slug = fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
		} else {
			slug = fmt.Sprintf("%s-%d", base, attempt)
		}
	}
}

// AdjustArgumentCounts atomically shifts the live-argument counters.
// proDelta/conDelta are ±1 (argument created / soft-removed); total_count
// follows from the same statement, so the CHECK invariant cannot be broken.
func (r *Repo) AdjustArgumentCounts(ctx context.Context, id uuid.UUID, proDelta, conDelta int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, adjustArgumentCountsSQL, id, proDelta, conDelta)
	if err != nil {
		return postgres.MapError(err, "topic", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// AdjustScore atomically shifts the topic's maintained score aggregate.
func (r *Repo) AdjustScore(ctx context.Context, id uuid.UUID, delta int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, adjustScoreSQL, id, delta)
	if err != nil {
		return postgres.MapError(err, "topic", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateVoteCounters atomically shifts the topic's own vote counters and
// returns the updated pair. Deltas are computed by the vote service from the
// prior vote state; the increments happen server-side, so concurrent votes on
// the same topic never lose updates.
func (r *Repo) UpdateVoteCounters(ctx context.Context, id uuid.UUID, upDelta, downDelta int) (domain.VoteCounters, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.VoteCounters
	err := querier.QueryRow(ctx, updateVoteCountersSQL, id, upDelta, downDelta).
		Scan(&c.UpvoteCount, &c.DownvoteCount)
	if err != nil {
		return domain.VoteCounters{}, postgres.MapError(err, "topic", id)
	}
	c.Score = c.UpvoteCount - c.DownvoteCount

	return c, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanTopic(row pgx.Row) (domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Slug, &t.CreatedBy, &t.IsActive, &t.Tags,
		&t.ArgumentCounts.Pro, &t.ArgumentCounts.Con, &t.ArgumentCounts.Total,
		&t.Score, &t.UpvoteCount, &t.DownvoteCount,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Topic{}, err
	}
	return t, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
