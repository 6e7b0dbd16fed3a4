package generation

import (
	"context"
	"sync"

	"github.com/postroom/postroom-backend/internal/domain"
)

var _ publishedRepo = &publishedRepoMock{}

type publishedRepoMock struct {
	ListTopByChannelFunc func(ctx context.Context, channel domain.Channel, limit int) ([]*domain.PublishedPost, error)

	calls struct {
		ListTopByChannel []struct {
			Channel domain.Channel
			Limit   int
		}
	}
	lock sync.RWMutex
}

func (mock *publishedRepoMock) ListTopByChannel(ctx context.Context, channel domain.Channel, limit int) ([]*domain.PublishedPost, error) {
	if mock.ListTopByChannelFunc == nil {
		panic("publishedRepoMock.ListTopByChannelFunc: method is nil but publishedRepo.ListTopByChannel was just called")
	}
	mock.lock.Lock()
	mock.calls.ListTopByChannel = append(mock.calls.ListTopByChannel, struct {
		Channel domain.Channel
		Limit   int
	}{Channel: channel, Limit: limit})
	mock.lock.Unlock()
	return mock.ListTopByChannelFunc(ctx, channel, limit)
}

func (mock *publishedRepoMock) ListTopByChannelCalls() []struct {
	Channel domain.Channel
	Limit   int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListTopByChannel
}

var _ draftRepo = &draftRepoMock{}

type draftRepoMock struct {
	CreateFunc func(ctx context.Context, d *domain.Draft) (*domain.Draft, error)

	calls struct {
		Create []struct{ Draft *domain.Draft }
	}
	lock sync.RWMutex
}

func (mock *draftRepoMock) Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	if mock.CreateFunc == nil {
		panic("draftRepoMock.CreateFunc: method is nil but draftRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Draft *domain.Draft }{Draft: d})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *draftRepoMock) CreateCalls() []struct{ Draft *domain.Draft } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

// stubProvider is a canned council member: it returns a fixed completion
// or error and records the prompts it saw.
type stubProvider struct {
	name    string
	content string
	err     error

	lock    sync.Mutex
	prompts []string
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Complete(_ context.Context, prompt string) (string, error) {
	p.lock.Lock()
	p.prompts = append(p.prompts, prompt)
	p.lock.Unlock()
	if p.err != nil {
		return "", p.err
	}
	return p.content, nil
}

func (p *stubProvider) promptCount() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return len(p.prompts)
}

func (p *stubProvider) lastPrompt() string {
	p.lock.Lock()
	defer p.lock.Unlock()
	if len(p.prompts) == 0 {
		return ""
	}
	return p.prompts[len(p.prompts)-1]
}
