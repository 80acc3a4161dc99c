package debate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// RemoveComment soft-removes a comment the caller owns. Replies to the
// removed comment stay visible; only the body disappears from bundles.
func (s *Service) RemoveComment(ctx context.Context, commentID uuid.UUID) error {
	if commentID == uuid.Nil {
		return domain.NewValidationError("comment_id", "required")
	}

	userID, err := userFromCtx(ctx)
	if err != nil {
		return err
	}

	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if c.IsRemoved {
		return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}
	if c.CreatedBy != userID {
		return fmt.Errorf("comment %s belongs to another user: %w", commentID, domain.ErrForbidden)
	}

	if err := s.comments.SoftRemove(ctx, commentID); err != nil {
		return fmt.Errorf("remove comment: %w", err)
	}

	return nil
}
