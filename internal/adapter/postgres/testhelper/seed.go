package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway bcrypt-shaped hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$testtesttesttesttesttestte/hash" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTopic creates an active topic owned by the given user.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Topic {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	topic := domain.Topic{
		ID:        uuid.New(),
		Title:     "Test Topic " + suffix,
		Slug:      "test-topic-" + suffix,
		CreatedBy: createdBy,
		IsActive:  true,
		Tags:      []string{"test"},
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO topics (id, title, slug, created_by, tags)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		topic.ID, topic.Title, topic.Slug, topic.CreatedBy, topic.Tags,
	).Scan(&topic.CreatedAt, &topic.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}

	return topic
}

// SeedArgument creates a live argument on the given topic with preset counters.
// Topic aggregates are NOT adjusted — tests that care seed those explicitly.
func SeedArgument(t *testing.T, pool *pgxpool.Pool, topicID, createdBy uuid.UUID, side domain.ArgumentSide, up, down int) domain.Argument {
	t.Helper()
	ctx := context.Background()

	arg := domain.Argument{
		ID:            uuid.New(),
		TopicID:       topicID,
		Side:          side,
		Body:          "test argument " + uniqueSuffix(),
		CreatedBy:     createdBy,
		UpvoteCount:   up,
		DownvoteCount: down,
		Score:         up - down,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO arguments (id, topic_id, side, body, created_by, upvote_count, downvote_count, score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		arg.ID, arg.TopicID, arg.Side, arg.Body, arg.CreatedBy, arg.UpvoteCount, arg.DownvoteCount, arg.Score,
	).Scan(&arg.CreatedAt, &arg.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedArgument insert argument: %v", err)
	}

	return arg
}

// SeedComment creates a live comment on the given argument.
func SeedComment(t *testing.T, pool *pgxpool.Pool, argumentID, createdBy uuid.UUID, parentID *uuid.UUID) domain.Comment {
	t.Helper()
	ctx := context.Background()

	c := domain.Comment{
		ID:         uuid.New(),
		ArgumentID: argumentID,
		ParentID:   parentID,
		Body:       "test comment " + uniqueSuffix(),
		CreatedBy:  createdBy,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO comments (id, argument_id, parent_id, body, created_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		c.ID, c.ArgumentID, c.ParentID, c.Body, c.CreatedBy,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert comment: %v", err)
	}

	return c
}

// SetTopicVoteCounters overrides a topic's own vote counters (for ranking tests).
func SetTopicVoteCounters(t *testing.T, pool *pgxpool.Pool, topicID uuid.UUID, up, down int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE topics SET upvote_count = $2, downvote_count = $3 WHERE id = $1`,
		topicID, up, down)
	if err != nil {
		t.Fatalf("testhelper: SetTopicVoteCounters: %v", err)
	}
}

// SetCreatedAt backdates a row's created_at (for tie-break ordering tests).
func SetCreatedAt(t *testing.T, pool *pgxpool.Pool, table string, id uuid.UUID, at time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE `+table+` SET created_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		t.Fatalf("testhelper: SetCreatedAt %s: %v", table, err)
	}
}
