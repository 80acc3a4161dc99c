package account

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/auth"
	"github.com/dukedan/consensus-backend/internal/domain"
	"github.com/dukedan/consensus-backend/internal/notify"
)

// ---------------------------------------------------------------------------
// userRepoMock
// ---------------------------------------------------------------------------

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc         func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc             func(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePasswordHashFunc func(ctx context.Context, id uuid.UUID, hash string) error

	calls struct {
		GetByID    []struct{ ID uuid.UUID }
		GetByEmail []struct{ Email string }
		Create     []struct{ User *domain.User }
		UpdatePasswordHash []struct {
			ID   uuid.UUID
			Hash string
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct{ Email string }{Email: email})
	mock.lock.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct{ Email string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByEmail
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ User *domain.User }{User: user})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct{ User *domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	if mock.UpdatePasswordHashFunc == nil {
		panic("userRepoMock.UpdatePasswordHashFunc: method is nil but userRepo.UpdatePasswordHash was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdatePasswordHash = append(mock.calls.UpdatePasswordHash, struct {
		ID   uuid.UUID
		Hash string
	}{ID: id, Hash: hash})
	mock.lock.Unlock()
	return mock.UpdatePasswordHashFunc(ctx, id, hash)
}

func (mock *userRepoMock) UpdatePasswordHashCalls() []struct {
	ID   uuid.UUID
	Hash string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdatePasswordHash
}

// ---------------------------------------------------------------------------
// resetCodeRepoMock
// ---------------------------------------------------------------------------

var _ resetCodeRepo = &resetCodeRepoMock{}

type resetCodeRepoMock struct {
	CreateFunc          func(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) (*domain.PasswordResetCode, error)
	GetActiveByCodeFunc func(ctx context.Context, code string) (*domain.PasswordResetCode, error)
	MarkUsedFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			UserID    uuid.UUID
			Code      string
			ExpiresAt time.Time
		}
		GetActiveByCode []struct{ Code string }
		MarkUsed        []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *resetCodeRepoMock) Create(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) (*domain.PasswordResetCode, error) {
	if mock.CreateFunc == nil {
		panic("resetCodeRepoMock.CreateFunc: method is nil but resetCodeRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		UserID    uuid.UUID
		Code      string
		ExpiresAt time.Time
	}{UserID: userID, Code: code, ExpiresAt: expiresAt})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, code, expiresAt)
}

func (mock *resetCodeRepoMock) CreateCalls() []struct {
	UserID    uuid.UUID
	Code      string
	ExpiresAt time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *resetCodeRepoMock) GetActiveByCode(ctx context.Context, code string) (*domain.PasswordResetCode, error) {
	if mock.GetActiveByCodeFunc == nil {
		panic("resetCodeRepoMock.GetActiveByCodeFunc: method is nil but resetCodeRepo.GetActiveByCode was just called")
	}
	mock.lock.Lock()
	mock.calls.GetActiveByCode = append(mock.calls.GetActiveByCode, struct{ Code string }{Code: code})
	mock.lock.Unlock()
	return mock.GetActiveByCodeFunc(ctx, code)
}

func (mock *resetCodeRepoMock) GetActiveByCodeCalls() []struct{ Code string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetActiveByCode
}

func (mock *resetCodeRepoMock) MarkUsed(ctx context.Context, id uuid.UUID) error {
	if mock.MarkUsedFunc == nil {
		panic("resetCodeRepoMock.MarkUsedFunc: method is nil but resetCodeRepo.MarkUsed was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkUsed = append(mock.calls.MarkUsed, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.MarkUsedFunc(ctx, id)
}

func (mock *resetCodeRepoMock) MarkUsedCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkUsed
}

// ---------------------------------------------------------------------------
// sessionManagerMock
// ---------------------------------------------------------------------------

var _ sessionManager = &sessionManagerMock{}

type sessionManagerMock struct {
	IssueFunc  func(s auth.Session) (string, error)
	VerifyFunc func(token string) (auth.Session, error)

	calls struct {
		Issue  []struct{ Session auth.Session }
		Verify []struct{ Token string }
	}
	lock sync.RWMutex
}

func (mock *sessionManagerMock) Issue(s auth.Session) (string, error) {
	if mock.IssueFunc == nil {
		panic("sessionManagerMock.IssueFunc: method is nil but sessionManager.Issue was just called")
	}
	mock.lock.Lock()
	mock.calls.Issue = append(mock.calls.Issue, struct{ Session auth.Session }{Session: s})
	mock.lock.Unlock()
	return mock.IssueFunc(s)
}

func (mock *sessionManagerMock) IssueCalls() []struct{ Session auth.Session } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Issue
}

func (mock *sessionManagerMock) Verify(token string) (auth.Session, error) {
	if mock.VerifyFunc == nil {
		panic("sessionManagerMock.VerifyFunc: method is nil but sessionManager.Verify was just called")
	}
	mock.lock.Lock()
	mock.calls.Verify = append(mock.calls.Verify, struct{ Token string }{Token: token})
	mock.lock.Unlock()
	return mock.VerifyFunc(token)
}

func (mock *sessionManagerMock) VerifyCalls() []struct{ Token string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Verify
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
// mailerMock
// ---------------------------------------------------------------------------

var _ notify.Mailer = &mailerMock{}

type mailerMock struct {
	SendWelcomeFunc           func(ctx context.Context, email, name string) error
	SendPasswordResetCodeFunc func(ctx context.Context, email, code string) error

	calls struct {
		SendWelcome []struct {
			Email, Name string
		}
		SendPasswordResetCode []struct {
			Email, Code string
		}
	}
	lock sync.RWMutex
}

func (mock *mailerMock) SendWelcome(ctx context.Context, email, name string) error {
	if mock.SendWelcomeFunc == nil {
		panic("mailerMock.SendWelcomeFunc: method is nil but Mailer.SendWelcome was just called")
	}
	mock.lock.Lock()
	mock.calls.SendWelcome = append(mock.calls.SendWelcome, struct{ Email, Name string }{Email: email, Name: name})
	mock.lock.Unlock()
	return mock.SendWelcomeFunc(ctx, email, name)
}

func (mock *mailerMock) SendWelcomeCalls() []struct{ Email, Name string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SendWelcome
}

func (mock *mailerMock) SendPasswordResetCode(ctx context.Context, email, code string) error {
	if mock.SendPasswordResetCodeFunc == nil {
		panic("mailerMock.SendPasswordResetCodeFunc: method is nil but Mailer.SendPasswordResetCode was just called")
	}
	mock.lock.Lock()
	mock.calls.SendPasswordResetCode = append(mock.calls.SendPasswordResetCode, struct{ Email, Code string }{Email: email, Code: code})
	mock.lock.Unlock()
	return mock.SendPasswordResetCodeFunc(ctx, email, code)
}

func (mock *mailerMock) SendPasswordResetCodeCalls() []struct{ Email, Code string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SendPasswordResetCode
}
