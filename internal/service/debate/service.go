// Package debate implements the debate aggregation engine: topic bundle
// retrieval, top-topic ranking, authoring of topics/arguments/comments, and
// vote application with atomic counter maintenance.
package debate

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
	"github.com/dukedan/consensus-backend/internal/notify"
)

// Pagination and payload limits. The comment cap bounds bundle payload size;
// it is resource protection, not a business rule.
const (
	MinArgumentLimit     = 1
	MaxArgumentLimit     = 50
	DefaultArgumentLimit = 10
	BundleCommentCap     = 500
	TopTopicsLimit       = 50
)

// voteRetryAttempts bounds internal retries of a vote transaction that lost a
// serialization race before the failure surfaces as domain.ErrConflict.
const voteRetryAttempts = 3

type topicRepo interface {
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	ListTop(ctx context.Context, limit int) ([]domain.TopicSummary, error)
	AdjustArgumentCounts(ctx context.Context, id uuid.UUID, proDelta, conDelta int) error
	AdjustScore(ctx context.Context, id uuid.UUID, delta int) error
	UpdateVoteCounters(ctx context.Context, id uuid.UUID, upDelta, downDelta int) (domain.VoteCounters, error)
}

type argumentRepo interface {
	Create(ctx context.Context, a *domain.Argument) (*domain.Argument, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Argument, error)
	ListByTopic(ctx context.Context, topicID uuid.UUID, ordering domain.BundleOrdering, limit int) ([]domain.Argument, error)
	UpdateVoteCounters(ctx context.Context, id uuid.UUID, upDelta, downDelta int) (uuid.UUID, domain.VoteCounters, error)
	SoftRemove(ctx context.Context, id uuid.UUID) (uuid.UUID, domain.ArgumentSide, int, error)
}

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByArgumentIDs(ctx context.Context, argumentIDs []uuid.UUID, limit int) ([]domain.Comment, error)
	SoftRemove(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	GetIdentitiesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Identity, error)
}

type voteRepo interface {
	GetForUpdate(ctx context.Context, userID uuid.UUID, targetType domain.VoteTarget, targetID uuid.UUID) (*domain.Vote, error)
	Insert(ctx context.Context, v *domain.Vote) (*domain.Vote, error)
	UpdateValue(ctx context.Context, id uuid.UUID, value domain.VoteValue) error
	Delete(ctx context.Context, userID uuid.UUID, targetType domain.VoteTarget, targetID uuid.UUID) (domain.VoteValue, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the debate aggregation and vote operations.
type Service struct {
	topics    topicRepo
	arguments argumentRepo
	comments  commentRepo
	users     userRepo
	votes     voteRepo
	tx        txManager
	sink      notify.Sink
	log       *slog.Logger
}

// NewService creates a new debate service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	arguments argumentRepo,
	comments commentRepo,
	users userRepo,
	votes voteRepo,
	tx txManager,
	sink notify.Sink,
) *Service {
	return &Service{
		topics:    topics,
		arguments: arguments,
		comments:  comments,
		users:     users,
		votes:     votes,
		tx:        tx,
		sink:      sink,
		log:       log.With("service", "debate"),
	}
}
