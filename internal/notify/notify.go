// Package notify defines the post-commit event hook the debate service fires
// after a vote lands. Sinks run synchronously but their failure never rolls
// back or fails the primary operation — the service logs and moves on.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
)

// VoteEvent describes a recorded (or removed) vote.
type VoteEvent struct {
	UserID     uuid.UUID
	TargetType domain.VoteTarget
	TargetID   uuid.UUID
	Value      domain.VoteValue
	Removed    bool
}

// Sink receives post-commit events.
type Sink interface {
	VoteRecorded(ctx context.Context, ev VoteEvent) error
}

// LogSink is the default Sink: it writes events to the structured log.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With("sink", "log")}
}

// VoteRecorded logs the event at debug level.
func (s *LogSink) VoteRecorded(ctx context.Context, ev VoteEvent) error {
	s.log.DebugContext(ctx, "vote recorded",
		slog.String("user_id", ev.UserID.String()),
		slog.String("target_type", ev.TargetType.String()),
		slog.String("target_id", ev.TargetID.String()),
		slog.Int("value", int(ev.Value)),
		slog.Bool("removed", ev.Removed),
	)
	return nil
}
