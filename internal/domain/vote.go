package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote records one user's directional vote on exactly one target.
// At most one vote may exist per (user, target type, target id); the votes
// table enforces this with a unique constraint over the three columns.
type Vote struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TargetType VoteTarget
	TargetID   uuid.UUID
	Value      VoteValue
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VoteCounters is the counter pair a vote operation returns to the caller.
// Score is derived from the counters in the same update statement.
type VoteCounters struct {
	UpvoteCount   int
	DownvoteCount int
	Score         int
}
