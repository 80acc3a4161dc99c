package middleware

import (
	"context"
	"sync"

	"github.com/dukedan/consensus-backend/internal/domain"
)

var _ sessionVerifier = &sessionVerifierMock{}

type sessionVerifierMock struct {
	VerifySessionFunc func(ctx context.Context, token string) (domain.Identity, error)

	calls struct {
		VerifySession []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockVerifySession sync.RWMutex
}

func (mock *sessionVerifierMock) VerifySession(ctx context.Context, token string) (domain.Identity, error) {
	if mock.VerifySessionFunc == nil {
		panic("sessionVerifierMock.VerifySessionFunc: method is nil but sessionVerifier.VerifySession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockVerifySession.Lock()
	mock.calls.VerifySession = append(mock.calls.VerifySession, callInfo)
	mock.lockVerifySession.Unlock()
	return mock.VerifySessionFunc(ctx, token)
}

func (mock *sessionVerifierMock) VerifySessionCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockVerifySession.RLock()
	calls := mock.calls.VerifySession
	mock.lockVerifySession.RUnlock()
	return calls
}
