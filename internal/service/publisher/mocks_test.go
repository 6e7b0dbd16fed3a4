package publisher

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/adapter/channel"
	"github.com/postroom/postroom-backend/internal/domain"
)

var _ draftRepo = &draftRepoMock{}

type draftRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	ClaimFunc         func(ctx context.Context, id uuid.UUID, from domain.Status) error
	MarkPublishedFunc func(ctx context.Context, id uuid.UUID, externalID, externalURL string, at time.Time) error
	MarkFailedFunc    func(ctx context.Context, id uuid.UUID, reason string) error

	calls struct {
		GetByID       []struct{ ID uuid.UUID }
		Claim         []struct {
			ID   uuid.UUID
			From domain.Status
		}
		MarkPublished []struct {
			ID          uuid.UUID
			ExternalID  string
			ExternalURL string
			At          time.Time
		}
		MarkFailed []struct {
			ID     uuid.UUID
			Reason string
		}
	}
	lock sync.RWMutex
}

func (mock *draftRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	if mock.GetByIDFunc == nil {
		panic("draftRepoMock.GetByIDFunc: method is nil but draftRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *draftRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *draftRepoMock) Claim(ctx context.Context, id uuid.UUID, from domain.Status) error {
	if mock.ClaimFunc == nil {
		panic("draftRepoMock.ClaimFunc: method is nil but draftRepo.Claim was just called")
	}
	mock.lock.Lock()
	mock.calls.Claim = append(mock.calls.Claim, struct {
		ID   uuid.UUID
		From domain.Status
	}{ID: id, From: from})
	mock.lock.Unlock()
	return mock.ClaimFunc(ctx, id, from)
}

func (mock *draftRepoMock) ClaimCalls() []struct {
	ID   uuid.UUID
	From domain.Status
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Claim
}

func (mock *draftRepoMock) MarkPublished(ctx context.Context, id uuid.UUID, externalID, externalURL string, at time.Time) error {
	if mock.MarkPublishedFunc == nil {
		panic("draftRepoMock.MarkPublishedFunc: method is nil but draftRepo.MarkPublished was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkPublished = append(mock.calls.MarkPublished, struct {
		ID          uuid.UUID
		ExternalID  string
		ExternalURL string
		At          time.Time
	}{ID: id, ExternalID: externalID, ExternalURL: externalURL, At: at})
	mock.lock.Unlock()
	return mock.MarkPublishedFunc(ctx, id, externalID, externalURL, at)
}

func (mock *draftRepoMock) MarkPublishedCalls() []struct {
	ID          uuid.UUID
	ExternalID  string
	ExternalURL string
	At          time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkPublished
}

func (mock *draftRepoMock) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	if mock.MarkFailedFunc == nil {
		panic("draftRepoMock.MarkFailedFunc: method is nil but draftRepo.MarkFailed was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkFailed = append(mock.calls.MarkFailed, struct {
		ID     uuid.UUID
		Reason string
	}{ID: id, Reason: reason})
	mock.lock.Unlock()
	return mock.MarkFailedFunc(ctx, id, reason)
}

func (mock *draftRepoMock) MarkFailedCalls() []struct {
	ID     uuid.UUID
	Reason string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkFailed
}

var _ publishedRepo = &publishedRepoMock{}

type publishedRepoMock struct {
	CreateFunc func(ctx context.Context, p *domain.PublishedPost) error

	calls struct {
		Create []struct{ Post *domain.PublishedPost }
	}
	lock sync.RWMutex
}

func (mock *publishedRepoMock) Create(ctx context.Context, p *domain.PublishedPost) error {
	if mock.CreateFunc == nil {
		panic("publishedRepoMock.CreateFunc: method is nil but publishedRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Post *domain.PublishedPost }{Post: p})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *publishedRepoMock) CreateCalls() []struct{ Post *domain.PublishedPost } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

// stubAdapter is a channel.Adapter with a programmable outcome.
type stubAdapter struct {
	ch      domain.Channel
	result  *channel.Result
	err     error
	lastIn  channel.Post
	called  int
	lock    sync.Mutex
}

func (s *stubAdapter) Channel() domain.Channel { return s.ch }

func (s *stubAdapter) Publish(_ context.Context, post channel.Post) (*channel.Result, error) {
	s.lock.Lock()
	s.lastIn = post
	s.called++
	s.lock.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

// stubRegistry resolves every channel to the same adapter.
type stubRegistry struct {
	adapter channel.Adapter
	err     error
}

func (s *stubRegistry) For(domain.Channel) (channel.Adapter, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.adapter, nil
}
