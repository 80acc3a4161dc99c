package debate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// GetTopicBundle assembles the full read model for a topic page: the topic
// itself, up to the requested number of live arguments in the requested
// ordering, and each argument's comments (oldest first, capped across the
// whole bundle). All reads run outside a transaction; the bundle is a
// point-in-time snapshot, not a serializable view.
func (s *Service) GetTopicBundle(ctx context.Context, input GetTopicBundleInput) (*TopicBundle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := NormalizeArgumentLimit(input.ArgumentLimit)
	ordering := NormalizeOrdering(input.Ordering)

	topic, err := s.topics.GetByID(ctx, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	args, err := s.arguments.ListByTopic(ctx, topic.ID, ordering, limit)
	if err != nil {
		return nil, fmt.Errorf("list arguments: %w", err)
	}

	argIDs := make([]uuid.UUID, len(args))
	for i, a := range args {
		argIDs[i] = a.ID
	}

	var comments []domain.Comment
	if len(argIDs) > 0 {
		comments, err = s.comments.ListByArgumentIDs(ctx, argIDs, BundleCommentCap)
		if err != nil {
			return nil, fmt.Errorf("list comments: %w", err)
		}
	}

	identities, err := s.loadCreators(ctx, topic, args, comments)
	if err != nil {
		return nil, fmt.Errorf("load creators: %w", err)
	}

	commentsByArg := make(map[uuid.UUID][]CommentView, len(args))
	for _, c := range comments {
		commentsByArg[c.ArgumentID] = append(commentsByArg[c.ArgumentID], CommentView{
			ID:        c.ID,
			ParentID:  c.ParentID,
			Body:      c.Body,
			Creator:   identityOrUnknown(identities, c.CreatedBy),
			CreatedAt: c.CreatedAt,
		})
	}

	argViews := make([]ArgumentView, len(args))
	for i, a := range args {
		argViews[i] = ArgumentView{
			ID:            a.ID,
			Side:          a.Side,
			Body:          a.Body,
			Creator:       identityOrUnknown(identities, a.CreatedBy),
			UpvoteCount:   a.UpvoteCount,
			DownvoteCount: a.DownvoteCount,
			Score:         a.Score,
			Comments:      commentsByArg[a.ID],
			CreatedAt:     a.CreatedAt,
		}
	}

	return &TopicBundle{
		Topic: TopicView{
			ID:             topic.ID,
			Title:          topic.Title,
			Description:    topic.Description,
			Slug:           topic.Slug,
			Creator:        identityOrUnknown(identities, topic.CreatedBy),
			IsActive:       topic.IsActive,
			Tags:           topic.Tags,
			ArgumentCounts: topic.ArgumentCounts,
			Score:          topic.Score,
			UpvoteCount:    topic.UpvoteCount,
			DownvoteCount:  topic.DownvoteCount,
			CreatedAt:      topic.CreatedAt,
			UpdatedAt:      topic.UpdatedAt,
		},
		Arguments: argViews,
		Meta: BundleMeta{
			Ordering:           ordering,
			RequestedArguments: limit,
			ReturnedArguments:  len(args),
		},
	}, nil
}

// loadCreators batch-fetches the identities of every author appearing in the
// bundle. Missing users are simply absent from the map; the assembly
// substitutes the "Unknown" placeholder.
func (s *Service) loadCreators(ctx context.Context, topic *domain.Topic, args []domain.Argument, comments []domain.Comment) (map[uuid.UUID]domain.Identity, error) {
	seen := map[uuid.UUID]struct{}{topic.CreatedBy: {}}
	for _, a := range args {
		seen[a.CreatedBy] = struct{}{}
	}
	for _, c := range comments {
		seen[c.CreatedBy] = struct{}{}
	}

	ids := make([]uuid.UUID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	return s.users.GetIdentitiesByIDs(ctx, ids)
}
