package debate

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
	"github.com/dukedan/consensus-backend/internal/notify"
)

// ---------------------------------------------------------------------------
// topicRepoMock
// ---------------------------------------------------------------------------

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateFunc               func(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	ListTopFunc              func(ctx context.Context, limit int) ([]domain.TopicSummary, error)
	AdjustArgumentCountsFunc func(ctx context.Context, id uuid.UUID, proDelta, conDelta int) error
	AdjustScoreFunc          func(ctx context.Context, id uuid.UUID, delta int) error
	UpdateVoteCountersFunc   func(ctx context.Context, id uuid.UUID, upDelta, downDelta int) (domain.VoteCounters, error)

	calls struct {
		Create               []struct{ Topic *domain.Topic }
		GetByID              []struct{ ID uuid.UUID }
		ListTop              []struct{ Limit int }
		AdjustArgumentCounts []struct {
			ID                 uuid.UUID
			ProDelta, ConDelta int
		}
		AdjustScore []struct {
			ID    uuid.UUID
			Delta int
		}
		UpdateVoteCounters []struct {
			ID                 uuid.UUID
			UpDelta, DownDelta int
		}
	}
	lock sync.RWMutex
}

func (mock *topicRepoMock) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Topic *domain.Topic }{Topic: t})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *topicRepoMock) CreateCalls() []struct{ Topic *domain.Topic } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *topicRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *topicRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *topicRepoMock) ListTop(ctx context.Context, limit int) ([]domain.TopicSummary, error) {
	if mock.ListTopFunc == nil {
		panic("topicRepoMock.ListTopFunc: method is nil but topicRepo.ListTop was just called")
	}
	mock.lock.Lock()
	mock.calls.ListTop = append(mock.calls.ListTop, struct{ Limit int }{Limit: limit})
	mock.lock.Unlock()
	return mock.ListTopFunc(ctx, limit)
}

func (mock *topicRepoMock) ListTopCalls() []struct{ Limit int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListTop
}

func (mock *topicRepoMock) AdjustArgumentCounts(ctx context.Context, id uuid.UUID, proDelta, conDelta int) error {
	if mock.AdjustArgumentCountsFunc == nil {
		panic("topicRepoMock.AdjustArgumentCountsFunc: method is nil but topicRepo.AdjustArgumentCounts was just called")
	}
	mock.lock.Lock()
	mock.calls.AdjustArgumentCounts = append(mock.calls.AdjustArgumentCounts, struct {
		ID                 uuid.UUID
		ProDelta, ConDelta int
	}{ID: id, ProDelta: proDelta, ConDelta: conDelta})
	mock.lock.Unlock()
	return mock.AdjustArgumentCountsFunc(ctx, id, proDelta, conDelta)
}

func (mock *topicRepoMock) AdjustArgumentCountsCalls() []struct {
	ID                 uuid.UUID
	ProDelta, ConDelta int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdjustArgumentCounts
}

func (mock *topicRepoMock) AdjustScore(ctx context.Context, id uuid.UUID, delta int) error {
	if mock.AdjustScoreFunc == nil {
		panic("topicRepoMock.AdjustScoreFunc: method is nil but topicRepo.AdjustScore was just called")
	}
	mock.lock.Lock()
	mock.calls.AdjustScore = append(mock.calls.AdjustScore, struct {
		ID    uuid.UUID
		Delta int
	}{ID: id, Delta: delta})
	mock.lock.Unlock()
	return mock.AdjustScoreFunc(ctx, id, delta)
}

func (mock *topicRepoMock) AdjustScoreCalls() []struct {
	ID    uuid.UUID
	Delta int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdjustScore
}

func (mock *topicRepoMock) UpdateVoteCounters(ctx context.Context, id uuid.UUID, upDelta, downDelta int) (domain.VoteCounters, error) {
	if mock.UpdateVoteCountersFunc == nil {
		panic("topicRepoMock.UpdateVoteCountersFunc: method is nil but topicRepo.UpdateVoteCounters was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateVoteCounters = append(mock.calls.UpdateVoteCounters, struct {
		ID                 uuid.UUID
		UpDelta, DownDelta int
	}{ID: id, UpDelta: upDelta, DownDelta: downDelta})
	mock.lock.Unlock()
	return mock.UpdateVoteCountersFunc(ctx, id, upDelta, downDelta)
}

func (mock *topicRepoMock) UpdateVoteCountersCalls() []struct {
	ID                 uuid.UUID
	UpDelta, DownDelta int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateVoteCounters
}

// ---------------------------------------------------------------------------
// argumentRepoMock
// ---------------------------------------------------------------------------

var _ argumentRepo = &argumentRepoMock{}

type argumentRepoMock struct {
	CreateFunc             func(ctx context.Context, a *domain.Argument) (*domain.Argument, error)
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Argument, error)
	ListByTopicFunc        func(ctx context.Context, topicID uuid.UUID, ordering domain.BundleOrdering, limit int) ([]domain.Argument, error)
	UpdateVoteCountersFunc func(ctx context.Context, id uuid.UUID, upDelta, downDelta int) (uuid.UUID, domain.VoteCounters, error)
	SoftRemoveFunc         func(ctx context.Context, id uuid.UUID) (uuid.UUID, domain.ArgumentSide, int, error)

	calls struct {
		Create      []struct{ Argument *domain.Argument }
		GetByID     []struct{ ID uuid.UUID }
		ListByTopic []struct {
			TopicID  uuid.UUID
			Ordering domain.BundleOrdering
			Limit    int
		}
		UpdateVoteCounters []struct {
			ID                 uuid.UUID
			UpDelta, DownDelta int
		}
		SoftRemove []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *argumentRepoMock) Create(ctx context.Context, a *domain.Argument) (*domain.Argument, error) {
	if mock.CreateFunc == nil {
		panic("argumentRepoMock.CreateFunc: method is nil but argumentRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Argument *domain.Argument }{Argument: a})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *argumentRepoMock) CreateCalls() []struct{ Argument *domain.Argument } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *argumentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Argument, error) {
	if mock.GetByIDFunc == nil {
		panic("argumentRepoMock.GetByIDFunc: method is nil but argumentRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *argumentRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *argumentRepoMock) ListByTopic(ctx context.Context, topicID uuid.UUID, ordering domain.BundleOrdering, limit int) ([]domain.Argument, error) {
	if mock.ListByTopicFunc == nil {
		panic("argumentRepoMock.ListByTopicFunc: method is nil but argumentRepo.ListByTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByTopic = append(mock.calls.ListByTopic, struct {
		TopicID  uuid.UUID
		Ordering domain.BundleOrdering
		Limit    int
	}{TopicID: topicID, Ordering: ordering, Limit: limit})
	mock.lock.Unlock()
	return mock.ListByTopicFunc(ctx, topicID, ordering, limit)
}

func (mock *argumentRepoMock) ListByTopicCalls() []struct {
	TopicID  uuid.UUID
	Ordering domain.BundleOrdering
	Limit    int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByTopic
}

func (mock *argumentRepoMock) UpdateVoteCounters(ctx context.Context, id uuid.UUID, upDelta, downDelta int) (uuid.UUID, domain.VoteCounters, error) {
	if mock.UpdateVoteCountersFunc == nil {
		panic("argumentRepoMock.UpdateVoteCountersFunc: method is nil but argumentRepo.UpdateVoteCounters was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateVoteCounters = append(mock.calls.UpdateVoteCounters, struct {
		ID                 uuid.UUID
		UpDelta, DownDelta int
	}{ID: id, UpDelta: upDelta, DownDelta: downDelta})
	mock.lock.Unlock()
	return mock.UpdateVoteCountersFunc(ctx, id, upDelta, downDelta)
}

func (mock *argumentRepoMock) UpdateVoteCountersCalls() []struct {
	ID                 uuid.UUID
	UpDelta, DownDelta int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateVoteCounters
}

func (mock *argumentRepoMock) SoftRemove(ctx context.Context, id uuid.UUID) (uuid.UUID, domain.ArgumentSide, int, error) {
	if mock.SoftRemoveFunc == nil {
		panic("argumentRepoMock.SoftRemoveFunc: method is nil but argumentRepo.SoftRemove was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftRemove = append(mock.calls.SoftRemove, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.SoftRemoveFunc(ctx, id)
}

func (mock *argumentRepoMock) SoftRemoveCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SoftRemove
}

// ---------------------------------------------------------------------------
// commentRepoMock
// ---------------------------------------------------------------------------

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc            func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByArgumentIDsFunc func(ctx context.Context, argumentIDs []uuid.UUID, limit int) ([]domain.Comment, error)
	SoftRemoveFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create            []struct{ Comment *domain.Comment }
		GetByID           []struct{ ID uuid.UUID }
		ListByArgumentIDs []struct {
			ArgumentIDs []uuid.UUID
			Limit       int
		}
		SoftRemove []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Comment *domain.Comment }{Comment: c})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct{ Comment *domain.Comment } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *commentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *commentRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *commentRepoMock) ListByArgumentIDs(ctx context.Context, argumentIDs []uuid.UUID, limit int) ([]domain.Comment, error) {
	if mock.ListByArgumentIDsFunc == nil {
		panic("commentRepoMock.ListByArgumentIDsFunc: method is nil but commentRepo.ListByArgumentIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByArgumentIDs = append(mock.calls.ListByArgumentIDs, struct {
		ArgumentIDs []uuid.UUID
		Limit       int
	}{ArgumentIDs: argumentIDs, Limit: limit})
	mock.lock.Unlock()
	return mock.ListByArgumentIDsFunc(ctx, argumentIDs, limit)
}

func (mock *commentRepoMock) ListByArgumentIDsCalls() []struct {
	ArgumentIDs []uuid.UUID
	Limit       int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByArgumentIDs
}

func (mock *commentRepoMock) SoftRemove(ctx context.Context, id uuid.UUID) error {
	if mock.SoftRemoveFunc == nil {
		panic("commentRepoMock.SoftRemoveFunc: method is nil but commentRepo.SoftRemove was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftRemove = append(mock.calls.SoftRemove, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.SoftRemoveFunc(ctx, id)
}

func (mock *commentRepoMock) SoftRemoveCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SoftRemove
}

// ---------------------------------------------------------------------------
// userRepoMock
// ---------------------------------------------------------------------------

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetIdentitiesByIDsFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Identity, error)

	calls struct {
		GetIdentitiesByIDs []struct{ IDs []uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetIdentitiesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Identity, error) {
	if mock.GetIdentitiesByIDsFunc == nil {
		panic("userRepoMock.GetIdentitiesByIDsFunc: method is nil but userRepo.GetIdentitiesByIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.GetIdentitiesByIDs = append(mock.calls.GetIdentitiesByIDs, struct{ IDs []uuid.UUID }{IDs: ids})
	mock.lock.Unlock()
	return mock.GetIdentitiesByIDsFunc(ctx, ids)
}

func (mock *userRepoMock) GetIdentitiesByIDsCalls() []struct{ IDs []uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetIdentitiesByIDs
}

// ---------------------------------------------------------------------------
// voteRepoMock
// ---------------------------------------------------------------------------

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	GetForUpdateFunc func(ctx context.Context, userID uuid.UUID, targetType domain.VoteTarget, targetID uuid.UUID) (*domain.Vote, error)
	InsertFunc       func(ctx context.Context, v *domain.Vote) (*domain.Vote, error)
	UpdateValueFunc  func(ctx context.Context, id uuid.UUID, value domain.VoteValue) error
	DeleteFunc       func(ctx context.Context, userID uuid.UUID, targetType domain.VoteTarget, targetID uuid.UUID) (domain.VoteValue, error)

	calls struct {
		GetForUpdate []struct {
			UserID     uuid.UUID
			TargetType domain.VoteTarget
			TargetID   uuid.UUID
		}
		Insert      []struct{ Vote *domain.Vote }
		UpdateValue []struct {
			ID    uuid.UUID
			Value domain.VoteValue
		}
		Delete []struct {
			UserID     uuid.UUID
			TargetType domain.VoteTarget
			TargetID   uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *voteRepoMock) GetForUpdate(ctx context.Context, userID uuid.UUID, targetType domain.VoteTarget, targetID uuid.UUID) (*domain.Vote, error) {
	if mock.GetForUpdateFunc == nil {
		panic("voteRepoMock.GetForUpdateFunc: method is nil but voteRepo.GetForUpdate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, struct {
		UserID     uuid.UUID
		TargetType domain.VoteTarget
		TargetID   uuid.UUID
	}{UserID: userID, TargetType: targetType, TargetID: targetID})
	mock.lock.Unlock()
	return mock.GetForUpdateFunc(ctx, userID, targetType, targetID)
}

func (mock *voteRepoMock) GetForUpdateCalls() []struct {
	UserID     uuid.UUID
	TargetType domain.VoteTarget
	TargetID   uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetForUpdate
}

func (mock *voteRepoMock) Insert(ctx context.Context, v *domain.Vote) (*domain.Vote, error) {
	if mock.InsertFunc == nil {
		panic("voteRepoMock.InsertFunc: method is nil but voteRepo.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct{ Vote *domain.Vote }{Vote: v})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, v)
}

func (mock *voteRepoMock) InsertCalls() []struct{ Vote *domain.Vote } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Insert
}

func (mock *voteRepoMock) UpdateValue(ctx context.Context, id uuid.UUID, value domain.VoteValue) error {
	if mock.UpdateValueFunc == nil {
		panic("voteRepoMock.UpdateValueFunc: method is nil but voteRepo.UpdateValue was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateValue = append(mock.calls.UpdateValue, struct {
		ID    uuid.UUID
		Value domain.VoteValue
	}{ID: id, Value: value})
	mock.lock.Unlock()
	return mock.UpdateValueFunc(ctx, id, value)
}

func (mock *voteRepoMock) UpdateValueCalls() []struct {
	ID    uuid.UUID
	Value domain.VoteValue
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateValue
}

func (mock *voteRepoMock) Delete(ctx context.Context, userID uuid.UUID, targetType domain.VoteTarget, targetID uuid.UUID) (domain.VoteValue, error) {
	if mock.DeleteFunc == nil {
		panic("voteRepoMock.DeleteFunc: method is nil but voteRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID     uuid.UUID
		TargetType domain.VoteTarget
		TargetID   uuid.UUID
	}{UserID: userID, TargetType: targetType, TargetID: targetID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, targetType, targetID)
}

func (mock *voteRepoMock) DeleteCalls() []struct {
	UserID     uuid.UUID
	TargetType domain.VoteTarget
	TargetID   uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}

// ---------------------------------------------------------------------------
// sinkMock
// ---------------------------------------------------------------------------

var _ notify.Sink = &sinkMock{}

type sinkMock struct {
	VoteRecordedFunc func(ctx context.Context, ev notify.VoteEvent) error

	calls struct {
		VoteRecorded []struct{ Event notify.VoteEvent }
	}
	lock sync.RWMutex
}

func (mock *sinkMock) VoteRecorded(ctx context.Context, ev notify.VoteEvent) error {
	if mock.VoteRecordedFunc == nil {
		panic("sinkMock.VoteRecordedFunc: method is nil but notify.Sink.VoteRecorded was just called")
	}
	mock.lock.Lock()
	mock.calls.VoteRecorded = append(mock.calls.VoteRecorded, struct{ Event notify.VoteEvent }{Event: ev})
	mock.lock.Unlock()
	return mock.VoteRecordedFunc(ctx, ev)
}

func (mock *sinkMock) VoteRecordedCalls() []struct{ Event notify.VoteEvent } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.VoteRecorded
}
