package debate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// RemoveArgument soft-removes an argument the caller owns. The removal takes
// the argument out of bundles, decrements the topic's argument counts, and
// backs the argument's score out of the topic aggregate, all in one
// transaction. The row itself stays for the comment thread's referential
// integrity.
func (s *Service) RemoveArgument(ctx context.Context, argumentID uuid.UUID) error {
	if argumentID == uuid.Nil {
		return domain.NewValidationError("argument_id", "required")
	}

	userID, err := userFromCtx(ctx)
	if err != nil {
		return err
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		arg, err := s.arguments.GetByID(txCtx, argumentID)
		if err != nil {
			return fmt.Errorf("get argument: %w", err)
		}
		if arg.IsRemoved {
			return fmt.Errorf("argument %s: %w", argumentID, domain.ErrNotFound)
		}
		if arg.CreatedBy != userID {
			return fmt.Errorf("argument %s belongs to another user: %w", argumentID, domain.ErrForbidden)
		}

		topicID, side, score, err := s.arguments.SoftRemove(txCtx, argumentID)
		if err != nil {
			return fmt.Errorf("remove argument: %w", err)
		}

		proDelta, conDelta := 0, -1
		if side == domain.SidePro {
			proDelta, conDelta = -1, 0
		}
		if err := s.topics.AdjustArgumentCounts(txCtx, topicID, proDelta, conDelta); err != nil {
			return fmt.Errorf("adjust argument counts: %w", err)
		}

		if score != 0 {
			if err := s.topics.AdjustScore(txCtx, topicID, -score); err != nil {
				return fmt.Errorf("adjust topic score: %w", err)
			}
		}

		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.log.InfoContext(ctx, "argument removed",
		slog.String("argument_id", argumentID.String()),
	)

	return nil
}
