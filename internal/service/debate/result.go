package debate

import (
	"time"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Topic bundle read models
// ---------------------------------------------------------------------------

// TopicBundle is everything a topic page needs in one response: the topic,
// its selected arguments with their comments, and pagination metadata.
type TopicBundle struct {
	Topic     TopicView
	Arguments []ArgumentView
	Meta      BundleMeta
}

// BundleMeta reports how the argument selection was made.
type BundleMeta struct {
	Ordering           domain.BundleOrdering
	RequestedArguments int
	ReturnedArguments  int
}

// TopicView is the topic as presented in a bundle.
type TopicView struct {
	ID             uuid.UUID
	Title          string
	Description    *string
	Slug           string
	Creator        domain.Identity
	IsActive       bool
	Tags           []string
	ArgumentCounts domain.ArgumentCounts
	Score          int
	UpvoteCount    int
	DownvoteCount  int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ArgumentView is an argument plus its creator and attached comments.
type ArgumentView struct {
	ID            uuid.UUID
	Side          domain.ArgumentSide
	Body          string
	Creator       domain.Identity
	UpvoteCount   int
	DownvoteCount int
	Score         int
	Comments      []CommentView
	CreatedAt     time.Time
}

// CommentView is a comment plus its creator, ordered oldest-first.
type CommentView struct {
	ID        uuid.UUID
	ParentID  *uuid.UUID
	Body      string
	Creator   domain.Identity
	CreatedAt time.Time
}

// ---------------------------------------------------------------------------
// Vote results
// ---------------------------------------------------------------------------

// VoteResult reports the target's counters after a vote operation. Changed is
// false when the vote already matched the requested value and nothing moved.
type VoteResult struct {
	TargetType domain.VoteTarget
	TargetID   uuid.UUID
	Counters   domain.VoteCounters
	Changed    bool
}

// identityOrUnknown resolves a creator ID against a batch-loaded identity map,
// substituting the "Unknown" placeholder when the user record is gone.
func identityOrUnknown(identities map[uuid.UUID]domain.Identity, id uuid.UUID) domain.Identity {
	if ident, ok := identities[id]; ok {
		return ident
	}
	return domain.Identity{ID: id, Name: domain.UnknownCreatorName}
}
