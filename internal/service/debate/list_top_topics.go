package debate

import (
	"context"
	"fmt"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// ListTopTopics returns up to 50 topics ranked by total vote volume
// (upvotes plus downvotes) descending, newest first on ties. The creator
// name falls back to "Unknown" when the user record no longer exists; the
// repository resolves that in the same query.
func (s *Service) ListTopTopics(ctx context.Context) ([]domain.TopicSummary, error) {
	topics, err := s.topics.ListTop(ctx, TopTopicsLimit)
	if err != nil {
		return nil, fmt.Errorf("list top topics: %w", err)
	}
	return topics, nil
}
