package debate

import (
	"context"
	"fmt"
	"strings"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// CreateComment attaches a comment to a live argument, optionally as a reply
// to another comment on the same argument. Comments are never re-parented, so
// validating the parent at creation is what keeps threads acyclic.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	arg, err := s.arguments.GetByID(ctx, input.ArgumentID)
	if err != nil {
		return nil, fmt.Errorf("get argument: %w", err)
	}
	if arg.IsRemoved {
		return nil, fmt.Errorf("argument %s: %w", input.ArgumentID, domain.ErrNotFound)
	}

	if input.ParentID != nil {
		parent, err := s.comments.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("get parent comment: %w", err)
		}
		if parent.ArgumentID != input.ArgumentID {
			return nil, domain.NewValidationError("parent_id", "parent belongs to a different argument")
		}
		if parent.IsRemoved {
			return nil, domain.NewValidationError("parent_id", "parent comment was removed")
		}
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		ArgumentID: input.ArgumentID,
		ParentID:   input.ParentID,
		Body:       strings.TrimSpace(input.Body),
		CreatedBy:  userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return created, nil
}
