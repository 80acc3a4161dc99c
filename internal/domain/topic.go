package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Limits for user-supplied text. Enforced at validation time and mirrored by
// CHECK constraints in the schema.
const (
	MaxTopicTitleLen   = 180
	MaxArgumentBodyLen = 10000
	MaxCommentBodyLen  = 5000
)

// ArgumentCounts is the per-topic aggregate of live (non-removed) arguments.
// Invariant: Total == Pro + Con.
type ArgumentCounts struct {
	Pro   int
	Con   int
	Total int
}

// Topic is a debate question, the root entity arguments attach to.
type Topic struct {
	ID             uuid.UUID
	Title          string
	Description    *string
	Slug           string
	CreatedBy      uuid.UUID
	IsActive       bool
	Tags           []string
	ArgumentCounts ArgumentCounts
	// Score is a maintained aggregate (net score across the topic's live
	// arguments). It is adjusted by vote and removal operations, never
	// recomputed on read.
	Score         int
	UpvoteCount   int
	DownvoteCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TotalVotes counts the topic's own top-level votes (not its arguments' votes).
func (t *Topic) TotalVotes() int {
	return t.UpvoteCount + t.DownvoteCount
}

// TopicSummary is the read model returned by the top-topics ranking: topic
// vote totals plus the creator's display name ("Unknown" when the creator
// record is missing).
type TopicSummary struct {
	ID            uuid.UUID
	Title         string
	UpvoteCount   int
	DownvoteCount int
	TotalVotes    int
	CreatorName   string
	CreatedAt     time.Time
}

// Slugify derives a URL-friendly slug from a topic title:
//   - lowercases
//   - replaces runs of non-alphanumeric runes with single hyphens
//   - trims leading/trailing hyphens
//
// Uniqueness across topics is the repository's job (numeric suffix on collision).
func Slugify(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(title))
	prevHyphen := false
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
