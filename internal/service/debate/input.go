package debate

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Limit and ordering normalization
// ---------------------------------------------------------------------------

// NormalizeArgumentLimit clamps a requested argument count to [1, 50].
// Zero means "not specified" and resolves to the default of 10; negative
// values clamp up to 1.
func NormalizeArgumentLimit(limit int) int {
	if limit == 0 {
		return DefaultArgumentLimit
	}
	if limit < MinArgumentLimit {
		return MinArgumentLimit
	}
	if limit > MaxArgumentLimit {
		return MaxArgumentLimit
	}
	return limit
}

// ParseArgumentLimit interprets a raw query-string value. Anything that does
// not parse as an integer falls back to the default rather than erroring.
func ParseArgumentLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultArgumentLimit
	}
	return NormalizeArgumentLimit(n)
}

// ParseOrdering interprets a raw ordering value. Only "newest" switches the
// ordering; everything else, including empty, means relevance.
func ParseOrdering(raw string) domain.BundleOrdering {
	if strings.TrimSpace(raw) == string(domain.OrderingNewest) {
		return domain.OrderingNewest
	}
	return domain.OrderingRelevant
}

// NormalizeOrdering applies the same fallback to an already-typed value:
// anything but newest, including garbage, reads as relevance.
func NormalizeOrdering(o domain.BundleOrdering) domain.BundleOrdering {
	if o == domain.OrderingNewest {
		return domain.OrderingNewest
	}
	return domain.OrderingRelevant
}

// ---------------------------------------------------------------------------
// GetTopicBundleInput
// ---------------------------------------------------------------------------

// GetTopicBundleInput holds the parameters for assembling a topic bundle.
type GetTopicBundleInput struct {
	TopicID       uuid.UUID
	ArgumentLimit int
	Ordering      domain.BundleOrdering
}

// Validate checks all fields and collects all errors. Ordering is never
// rejected: unrecognized values fall back to relevance, like the limit.
func (i GetTopicBundleInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// ApplyVoteInput
// ---------------------------------------------------------------------------

// ApplyVoteInput holds the parameters for casting or changing a vote.
type ApplyVoteInput struct {
	TargetType domain.VoteTarget
	TargetID   uuid.UUID
	Value      domain.VoteValue
}

// Validate checks all fields and collects all errors.
func (i ApplyVoteInput) Validate() error {
	var errs []domain.FieldError

	if !i.TargetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_type", Message: "must be 'topic' or 'argument'"})
	}

	if i.TargetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}

	if !i.Value.IsValid() {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be 1 or -1"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// RemoveVoteInput
// ---------------------------------------------------------------------------

// RemoveVoteInput holds the parameters for retracting a vote.
type RemoveVoteInput struct {
	TargetType domain.VoteTarget
	TargetID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemoveVoteInput) Validate() error {
	var errs []domain.FieldError

	if !i.TargetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_type", Message: "must be 'topic' or 'argument'"})
	}

	if i.TargetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// CreateTopicInput
// ---------------------------------------------------------------------------

// CreateTopicInput holds the parameters for opening a new debate topic.
type CreateTopicInput struct {
	Title       string
	Description *string
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	trimmed := strings.TrimSpace(i.Title)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > domain.MaxTopicTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 180)"})
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 2000)"})
	}

	if len(i.Tags) > 10 {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many (max 10)"})
	}

	for idx, tag := range i.Tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, domain.FieldError{
				Field:   "tags[" + strconv.Itoa(idx) + "]",
				Message: "required",
			})
		}
		if len(tag) > 50 {
			errs = append(errs, domain.FieldError{
				Field:   "tags[" + strconv.Itoa(idx) + "]",
				Message: "too long (max 50)",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// CreateArgumentInput
// ---------------------------------------------------------------------------

// CreateArgumentInput holds the parameters for posting an argument on a topic.
type CreateArgumentInput struct {
	TopicID uuid.UUID
	Side    domain.ArgumentSide
	Body    string
}

// Validate checks all fields and collects all errors.
func (i CreateArgumentInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}

	if !i.Side.IsValid() {
		errs = append(errs, domain.FieldError{Field: "side", Message: "must be 'pro' or 'con'"})
	}

	trimmed := strings.TrimSpace(i.Body)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(i.Body) > domain.MaxArgumentBodyLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "too long (max 10000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// CreateCommentInput
// ---------------------------------------------------------------------------

// CreateCommentInput holds the parameters for commenting on an argument.
type CreateCommentInput struct {
	ArgumentID uuid.UUID
	ParentID   *uuid.UUID
	Body       string
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.ArgumentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "argument_id", Message: "required"})
	}

	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "must not be the zero UUID"})
	}

	trimmed := strings.TrimSpace(i.Body)
	if trimmed == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(i.Body) > domain.MaxCommentBodyLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
