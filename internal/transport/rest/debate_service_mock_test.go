package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
	"github.com/dukedan/consensus-backend/internal/service/debate"
)

var _ debateService = &debateServiceMock{}

type debateServiceMock struct {
	GetTopicBundleFunc func(ctx context.Context, input debate.GetTopicBundleInput) (*debate.TopicBundle, error)
	ListTopTopicsFunc  func(ctx context.Context) ([]domain.TopicSummary, error)
	CreateTopicFunc    func(ctx context.Context, input debate.CreateTopicInput) (*domain.Topic, error)
	CreateArgumentFunc func(ctx context.Context, input debate.CreateArgumentInput) (*domain.Argument, error)
	RemoveArgumentFunc func(ctx context.Context, argumentID uuid.UUID) error
	CreateCommentFunc  func(ctx context.Context, input debate.CreateCommentInput) (*domain.Comment, error)
	RemoveCommentFunc  func(ctx context.Context, commentID uuid.UUID) error
	ApplyVoteFunc      func(ctx context.Context, input debate.ApplyVoteInput) (*debate.VoteResult, error)
	RemoveVoteFunc     func(ctx context.Context, input debate.RemoveVoteInput) (*debate.VoteResult, error)

	calls struct {
		GetTopicBundle []struct {
			Ctx   context.Context
			Input debate.GetTopicBundleInput
		}
		ListTopTopics []struct {
			Ctx context.Context
		}
		CreateTopic []struct {
			Ctx   context.Context
			Input debate.CreateTopicInput
		}
		CreateArgument []struct {
			Ctx   context.Context
			Input debate.CreateArgumentInput
		}
		RemoveArgument []struct {
			Ctx        context.Context
			ArgumentID uuid.UUID
		}
		CreateComment []struct {
			Ctx   context.Context
			Input debate.CreateCommentInput
		}
		RemoveComment []struct {
			Ctx       context.Context
			CommentID uuid.UUID
		}
		ApplyVote []struct {
			Ctx   context.Context
			Input debate.ApplyVoteInput
		}
		RemoveVote []struct {
			Ctx   context.Context
			Input debate.RemoveVoteInput
		}
	}
	lock sync.RWMutex
}

func (mock *debateServiceMock) GetTopicBundle(ctx context.Context, input debate.GetTopicBundleInput) (*debate.TopicBundle, error) {
	if mock.GetTopicBundleFunc == nil {
		panic("debateServiceMock.GetTopicBundleFunc: method is nil but debateService.GetTopicBundle was just called")
	}
	mock.lock.Lock()
	mock.calls.GetTopicBundle = append(mock.calls.GetTopicBundle, struct {
		Ctx   context.Context
		Input debate.GetTopicBundleInput
	}{Ctx: ctx, Input: input})
	mock.lock.Unlock()
	return mock.GetTopicBundleFunc(ctx, input)
}

func (mock *debateServiceMock) GetTopicBundleCalls() []struct {
	Ctx   context.Context
	Input debate.GetTopicBundleInput
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetTopicBundle
}

func (mock *debateServiceMock) ListTopTopics(ctx context.Context) ([]domain.TopicSummary, error) {
	if mock.ListTopTopicsFunc == nil {
		panic("debateServiceMock.ListTopTopicsFunc: method is nil but debateService.ListTopTopics was just called")
	}
	mock.lock.Lock()
	mock.calls.ListTopTopics = append(mock.calls.ListTopTopics, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lock.Unlock()
	return mock.ListTopTopicsFunc(ctx)
}

func (mock *debateServiceMock) ListTopTopicsCalls() []struct {
	Ctx context.Context
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListTopTopics
}

func (mock *debateServiceMock) CreateTopic(ctx context.Context, input debate.CreateTopicInput) (*domain.Topic, error) {
	if mock.CreateTopicFunc == nil {
		panic("debateServiceMock.CreateTopicFunc: method is nil but debateService.CreateTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateTopic = append(mock.calls.CreateTopic, struct {
		Ctx   context.Context
		Input debate.CreateTopicInput
	}{Ctx: ctx, Input: input})
	mock.lock.Unlock()
	return mock.CreateTopicFunc(ctx, input)
}

func (mock *debateServiceMock) CreateTopicCalls() []struct {
	Ctx   context.Context
	Input debate.CreateTopicInput
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateTopic
}

func (mock *debateServiceMock) CreateArgument(ctx context.Context, input debate.CreateArgumentInput) (*domain.Argument, error) {
	if mock.CreateArgumentFunc == nil {
		panic("debateServiceMock.CreateArgumentFunc: method is nil but debateService.CreateArgument was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateArgument = append(mock.calls.CreateArgument, struct {
		Ctx   context.Context
		Input debate.CreateArgumentInput
	}{Ctx: ctx, Input: input})
	mock.lock.Unlock()
	return mock.CreateArgumentFunc(ctx, input)
}

func (mock *debateServiceMock) CreateArgumentCalls() []struct {
	Ctx   context.Context
	Input debate.CreateArgumentInput
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateArgument
}

func (mock *debateServiceMock) RemoveArgument(ctx context.Context, argumentID uuid.UUID) error {
	if mock.RemoveArgumentFunc == nil {
		panic("debateServiceMock.RemoveArgumentFunc: method is nil but debateService.RemoveArgument was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveArgument = append(mock.calls.RemoveArgument, struct {
		Ctx        context.Context
		ArgumentID uuid.UUID
	}{Ctx: ctx, ArgumentID: argumentID})
	mock.lock.Unlock()
	return mock.RemoveArgumentFunc(ctx, argumentID)
}

func (mock *debateServiceMock) RemoveArgumentCalls() []struct {
	Ctx        context.Context
	ArgumentID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RemoveArgument
}

func (mock *debateServiceMock) CreateComment(ctx context.Context, input debate.CreateCommentInput) (*domain.Comment, error) {
	if mock.CreateCommentFunc == nil {
		panic("debateServiceMock.CreateCommentFunc: method is nil but debateService.CreateComment was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateComment = append(mock.calls.CreateComment, struct {
		Ctx   context.Context
		Input debate.CreateCommentInput
	}{Ctx: ctx, Input: input})
	mock.lock.Unlock()
	return mock.CreateCommentFunc(ctx, input)
}

func (mock *debateServiceMock) CreateCommentCalls() []struct {
	Ctx   context.Context
	Input debate.CreateCommentInput
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateComment
}

func (mock *debateServiceMock) RemoveComment(ctx context.Context, commentID uuid.UUID) error {
	if mock.RemoveCommentFunc == nil {
		panic("debateServiceMock.RemoveCommentFunc: method is nil but debateService.RemoveComment was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveComment = append(mock.calls.RemoveComment, struct {
		Ctx       context.Context
		CommentID uuid.UUID
	}{Ctx: ctx, CommentID: commentID})
	mock.lock.Unlock()
	return mock.RemoveCommentFunc(ctx, commentID)
}

func (mock *debateServiceMock) RemoveCommentCalls() []struct {
	Ctx       context.Context
	CommentID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RemoveComment
}

func (mock *debateServiceMock) ApplyVote(ctx context.Context, input debate.ApplyVoteInput) (*debate.VoteResult, error) {
	if mock.ApplyVoteFunc == nil {
		panic("debateServiceMock.ApplyVoteFunc: method is nil but debateService.ApplyVote was just called")
	}
	mock.lock.Lock()
	mock.calls.ApplyVote = append(mock.calls.ApplyVote, struct {
		Ctx   context.Context
		Input debate.ApplyVoteInput
	}{Ctx: ctx, Input: input})
	mock.lock.Unlock()
	return mock.ApplyVoteFunc(ctx, input)
}

func (mock *debateServiceMock) ApplyVoteCalls() []struct {
	Ctx   context.Context
	Input debate.ApplyVoteInput
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ApplyVote
}

func (mock *debateServiceMock) RemoveVote(ctx context.Context, input debate.RemoveVoteInput) (*debate.VoteResult, error) {
	if mock.RemoveVoteFunc == nil {
		panic("debateServiceMock.RemoveVoteFunc: method is nil but debateService.RemoveVote was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveVote = append(mock.calls.RemoveVote, struct {
		Ctx   context.Context
		Input debate.RemoveVoteInput
	}{Ctx: ctx, Input: input})
	mock.lock.Unlock()
	return mock.RemoveVoteFunc(ctx, input)
}

func (mock *debateServiceMock) RemoveVoteCalls() []struct {
	Ctx   context.Context
	Input debate.RemoveVoteInput
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RemoveVote
}
