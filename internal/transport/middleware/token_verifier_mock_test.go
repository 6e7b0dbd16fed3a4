package middleware

import (
	"sync"

	"github.com/postroom/postroom-backend/internal/domain"
)

var _ tokenVerifier = &tokenVerifierMock{}

type tokenVerifierMock struct {
	VerifyAccessTokenFunc func(token string) (domain.Identity, error)

	calls struct {
		VerifyAccessToken []struct{ Token string }
	}
	lock sync.RWMutex
}

func (mock *tokenVerifierMock) VerifyAccessToken(token string) (domain.Identity, error) {
	if mock.VerifyAccessTokenFunc == nil {
		panic("tokenVerifierMock.VerifyAccessTokenFunc: method is nil but tokenVerifier.VerifyAccessToken was just called")
	}
	mock.lock.Lock()
	mock.calls.VerifyAccessToken = append(mock.calls.VerifyAccessToken, struct{ Token string }{Token: token})
	mock.lock.Unlock()
	return mock.VerifyAccessTokenFunc(token)
}

func (mock *tokenVerifierMock) VerifyAccessTokenCalls() []struct{ Token string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.VerifyAccessToken
}
