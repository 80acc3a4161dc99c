package domain

import (
	"time"

	"github.com/google/uuid"
)

// Argument is a pro/con position statement attached to a topic.
type Argument struct {
	ID            uuid.UUID
	TopicID       uuid.UUID
	Side          ArgumentSide
	Body          string
	CreatedBy     uuid.UUID
	UpvoteCount   int
	DownvoteCount int
	// Score is always recomputed from the two counters (up - down) by the
	// same statement that updates them. It never drifts independently.
	Score     int
	IsRemoved bool
	EditedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
