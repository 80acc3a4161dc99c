package debate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// CreateTopic opens a new debate topic owned by the caller. The repository
// derives the slug from the title and resolves collisions with a numeric
// suffix; the service only rejects titles that cannot produce a slug.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if domain.Slugify(title) == "" {
		return nil, domain.NewValidationError("title", "must contain at least one letter or digit")
	}

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		tags = append(tags, strings.TrimSpace(tag))
	}

	// Slug derivation is owned by the repository, which also resolves collisions.
	topic, err := s.topics.Create(ctx, &domain.Topic{
		Title:       title,
		Description: input.Description,
		CreatedBy:   userID,
		IsActive:    true,
		Tags:        tags,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", topic.ID.String()),
		slog.String("slug", topic.Slug),
	)

	return topic, nil
}
