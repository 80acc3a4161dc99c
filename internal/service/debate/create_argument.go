package debate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// CreateArgument posts a pro or con argument on an active topic. The insert
// and the topic's argument-count aggregate move in the same transaction, so
// the counts never drift from the live rows.
func (s *Service) CreateArgument(ctx context.Context, input CreateArgumentInput) (*domain.Argument, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var created *domain.Argument
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		topic, err := s.topics.GetByID(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("get topic: %w", err)
		}
		if !topic.IsActive {
			return domain.NewValidationError("topic_id", "topic is closed")
		}

		created, err = s.arguments.Create(txCtx, &domain.Argument{
			TopicID:   topic.ID,
			Side:      input.Side,
			Body:      strings.TrimSpace(input.Body),
			CreatedBy: userID,
		})
		if err != nil {
			return fmt.Errorf("create argument: %w", err)
		}

		proDelta, conDelta := 0, 1
		if input.Side == domain.SidePro {
			proDelta, conDelta = 1, 0
		}
		if err := s.topics.AdjustArgumentCounts(txCtx, topic.ID, proDelta, conDelta); err != nil {
			return fmt.Errorf("adjust argument counts: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "argument created",
		slog.String("argument_id", created.ID.String()),
		slog.String("topic_id", created.TopicID.String()),
		slog.String("side", created.Side.String()),
	)

	return created, nil
}
