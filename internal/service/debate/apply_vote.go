package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
	"github.com/dukedan/consensus-backend/internal/notify"
	"github.com/dukedan/consensus-backend/pkg/ctxutil"
)

// ApplyVote casts, flips, or confirms the caller's vote on a topic or
// argument. The whole mutation runs in one transaction: the existing vote row
// is locked, the vote is inserted or updated, and the target's counters (and
// the parent topic's score, for argument votes) move by the exact delta the
// transition implies. Re-voting the same direction is a no-op that still
// returns the current counters.
//
// Two first votes racing on the same target both pass the lock lookup and one
// insert loses on the unique constraint; the loser's transaction is retried
// from scratch a bounded number of times before surfacing as a conflict.
func (s *Service) ApplyVote(ctx context.Context, input ApplyVoteInput) (*VoteResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var result *VoteResult
	for attempt := 1; ; attempt++ {
		result, err = s.applyVoteOnce(ctx, userID, input)
		if err == nil {
			break
		}
		if attempt < voteRetryAttempts && isVoteRace(err) {
			s.log.DebugContext(ctx, "vote transaction lost a race, retrying",
				slog.Int("attempt", attempt),
				slog.String("target_id", input.TargetID.String()),
			)
			continue
		}
		if isVoteRace(err) {
			return nil, fmt.Errorf("apply vote for %s %s: %w", input.TargetType, input.TargetID, domain.ErrConflict)
		}
		return nil, err
	}

	if result.Changed {
		s.fireVoteEvent(ctx, notify.VoteEvent{
			UserID:     userID,
			TargetType: input.TargetType,
			TargetID:   input.TargetID,
			Value:      input.Value,
		})
	}

	return result, nil
}

func (s *Service) applyVoteOnce(ctx context.Context, userID uuid.UUID, input ApplyVoteInput) (*VoteResult, error) {
	var result *VoteResult

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkVoteTarget(txCtx, input.TargetType, input.TargetID); err != nil {
			return err
		}

		existing, err := s.votes.GetForUpdate(txCtx, userID, input.TargetType, input.TargetID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("lock vote: %w", err)
		}

		switch {
		case existing == nil:
			if _, err := s.votes.Insert(txCtx, &domain.Vote{
				UserID:     userID,
				TargetType: input.TargetType,
				TargetID:   input.TargetID,
				Value:      input.Value,
			}); err != nil {
				return fmt.Errorf("insert vote: %w", err)
			}

		case existing.Value == input.Value:
			// Idempotent re-vote: counters stay put.
			counters, err := s.currentCounters(txCtx, input.TargetType, input.TargetID)
			if err != nil {
				return err
			}
			result = &VoteResult{
				TargetType: input.TargetType,
				TargetID:   input.TargetID,
				Counters:   counters,
			}
			return nil

		default:
			if err := s.votes.UpdateValue(txCtx, existing.ID, input.Value); err != nil {
				return fmt.Errorf("update vote: %w", err)
			}
		}

		upDelta, downDelta := voteDeltas(existing, input.Value)

		counters, err := s.moveCounters(txCtx, input.TargetType, input.TargetID, upDelta, downDelta)
		if err != nil {
			return err
		}

		result = &VoteResult{
			TargetType: input.TargetType,
			TargetID:   input.TargetID,
			Counters:   counters,
			Changed:    true,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return result, nil
}

// RemoveVote retracts the caller's vote and reverses the counters it
// contributed. Returns domain.ErrNotFound when there is no vote to retract.
func (s *Service) RemoveVote(ctx context.Context, input RemoveVoteInput) (*VoteResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var result *VoteResult
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		value, err := s.votes.Delete(txCtx, userID, input.TargetType, input.TargetID)
		if err != nil {
			return fmt.Errorf("delete vote: %w", err)
		}

		upDelta, downDelta := 0, -1
		if value == domain.VoteUp {
			upDelta, downDelta = -1, 0
		}

		counters, err := s.moveCounters(txCtx, input.TargetType, input.TargetID, upDelta, downDelta)
		if err != nil {
			return err
		}

		result = &VoteResult{
			TargetType: input.TargetType,
			TargetID:   input.TargetID,
			Counters:   counters,
			Changed:    true,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.fireVoteEvent(ctx, notify.VoteEvent{
		UserID:     userID,
		TargetType: input.TargetType,
		TargetID:   input.TargetID,
		Removed:    true,
	})

	return result, nil
}

// checkVoteTarget verifies the target exists and accepts votes: topics must be
// active, arguments must not be removed.
func (s *Service) checkVoteTarget(ctx context.Context, targetType domain.VoteTarget, targetID uuid.UUID) error {
	switch targetType {
	case domain.VoteTargetTopic:
		topic, err := s.topics.GetByID(ctx, targetID)
		if err != nil {
			return fmt.Errorf("get topic: %w", err)
		}
		if !topic.IsActive {
			return domain.NewValidationError("target_id", "topic is closed")
		}
	case domain.VoteTargetArgument:
		arg, err := s.arguments.GetByID(ctx, targetID)
		if err != nil {
			return fmt.Errorf("get argument: %w", err)
		}
		if arg.IsRemoved {
			return fmt.Errorf("argument %s: %w", targetID, domain.ErrNotFound)
		}
	}
	return nil
}

// moveCounters applies the vote deltas to the target's counters. The same SQL
// statement recomputes the score from the updated counters, and for argument
// votes the parent topic's aggregate score moves by the net score change.
func (s *Service) moveCounters(ctx context.Context, targetType domain.VoteTarget, targetID uuid.UUID, upDelta, downDelta int) (domain.VoteCounters, error) {
	if targetType == domain.VoteTargetTopic {
		counters, err := s.topics.UpdateVoteCounters(ctx, targetID, upDelta, downDelta)
		if err != nil {
			return domain.VoteCounters{}, fmt.Errorf("update topic counters: %w", err)
		}
		return counters, nil
	}

	topicID, counters, err := s.arguments.UpdateVoteCounters(ctx, targetID, upDelta, downDelta)
	if err != nil {
		return domain.VoteCounters{}, fmt.Errorf("update argument counters: %w", err)
	}

	if scoreDelta := upDelta - downDelta; scoreDelta != 0 {
		if err := s.topics.AdjustScore(ctx, topicID, scoreDelta); err != nil {
			return domain.VoteCounters{}, fmt.Errorf("adjust topic score: %w", err)
		}
	}

	return counters, nil
}

func (s *Service) currentCounters(ctx context.Context, targetType domain.VoteTarget, targetID uuid.UUID) (domain.VoteCounters, error) {
	if targetType == domain.VoteTargetTopic {
		topic, err := s.topics.GetByID(ctx, targetID)
		if err != nil {
			return domain.VoteCounters{}, fmt.Errorf("get topic: %w", err)
		}
		return domain.VoteCounters{
			UpvoteCount:   topic.UpvoteCount,
			DownvoteCount: topic.DownvoteCount,
			Score:         topic.UpvoteCount - topic.DownvoteCount,
		}, nil
	}

	arg, err := s.arguments.GetByID(ctx, targetID)
	if err != nil {
		return domain.VoteCounters{}, fmt.Errorf("get argument: %w", err)
	}
	return domain.VoteCounters{
		UpvoteCount:   arg.UpvoteCount,
		DownvoteCount: arg.DownvoteCount,
		Score:         arg.Score,
	}, nil
}

// voteDeltas computes the counter movement for a vote transition: a first
// vote adds one to its side, a flip moves one from the old side to the new.
func voteDeltas(existing *domain.Vote, value domain.VoteValue) (upDelta, downDelta int) {
	if value == domain.VoteUp {
		upDelta = 1
	} else {
		downDelta = 1
	}
	if existing != nil {
		if existing.Value == domain.VoteUp {
			upDelta--
		} else {
			downDelta--
		}
	}
	return upDelta, downDelta
}

// isVoteRace reports whether a vote transaction failed because of a
// concurrent writer rather than a permanent condition.
func isVoteRace(err error) bool {
	return errors.Is(err, domain.ErrAlreadyExists) || errors.Is(err, domain.ErrConflict)
}

// fireVoteEvent delivers the post-commit hook. Sink failures are logged and
// swallowed; the vote has already committed.
func (s *Service) fireVoteEvent(ctx context.Context, ev notify.VoteEvent) {
	if s.sink == nil {
		return
	}
	if err := s.sink.VoteRecorded(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "vote event sink failed",
			slog.String("target_id", ev.TargetID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// userFromCtx extracts the authenticated user ID placed in the context by the
// auth middleware.
func userFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
