package draft

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

var _ draftRepo = &draftRepoMock{}

type draftRepoMock struct {
	CreateFunc        func(ctx context.Context, d *domain.Draft) (*domain.Draft, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	ListFunc          func(ctx context.Context, filter domain.DraftFilter) ([]*domain.Draft, error)
	MarkApprovedFunc  func(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkRejectedFunc  func(ctx context.Context, id uuid.UUID, reason *string) error
	UpdateContentFunc func(ctx context.Context, id uuid.UUID, content string, at time.Time) error
	SetScheduleFunc   func(ctx context.Context, id uuid.UUID, at time.Time, timezone *string) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create       []struct{ Draft *domain.Draft }
		GetByID      []struct{ ID uuid.UUID }
		List         []struct{ Filter domain.DraftFilter }
		MarkApproved []struct {
			ID uuid.UUID
			At time.Time
		}
		MarkRejected []struct {
			ID     uuid.UUID
			Reason *string
		}
		UpdateContent []struct {
			ID      uuid.UUID
			Content string
			At      time.Time
		}
		SetSchedule []struct {
			ID       uuid.UUID
			At       time.Time
			Timezone *string
		}
		Delete []struct{ ID uuid.UUID }
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

func (mock *draftRepoMock) List(ctx context.Context, filter domain.DraftFilter) ([]*domain.Draft, error) {
	if mock.ListFunc == nil {
		panic("draftRepoMock.ListFunc: method is nil but draftRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Filter domain.DraftFilter }{Filter: filter})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *draftRepoMock) ListCalls() []struct{ Filter domain.DraftFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *draftRepoMock) MarkApproved(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkApprovedFunc == nil {
		panic("draftRepoMock.MarkApprovedFunc: method is nil but draftRepo.MarkApproved was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkApproved = append(mock.calls.MarkApproved, struct {
		ID uuid.UUID
		At time.Time
	}{ID: id, At: at})
	mock.lock.Unlock()
	return mock.MarkApprovedFunc(ctx, id, at)
}

func (mock *draftRepoMock) MarkApprovedCalls() []struct {
	ID uuid.UUID
	At time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkApproved
}

func (mock *draftRepoMock) MarkRejected(ctx context.Context, id uuid.UUID, reason *string) error {
	if mock.MarkRejectedFunc == nil {
		panic("draftRepoMock.MarkRejectedFunc: method is nil but draftRepo.MarkRejected was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkRejected = append(mock.calls.MarkRejected, struct {
		ID     uuid.UUID
		Reason *string
	}{ID: id, Reason: reason})
	mock.lock.Unlock()
	return mock.MarkRejectedFunc(ctx, id, reason)
}

func (mock *draftRepoMock) MarkRejectedCalls() []struct {
	ID     uuid.UUID
	Reason *string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkRejected
}

func (mock *draftRepoMock) UpdateContent(ctx context.Context, id uuid.UUID, content string, at time.Time) error {
	if mock.UpdateContentFunc == nil {
		panic("draftRepoMock.UpdateContentFunc: method is nil but draftRepo.UpdateContent was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateContent = append(mock.calls.UpdateContent, struct {
		ID      uuid.UUID
		Content string
		At      time.Time
	}{ID: id, Content: content, At: at})
	mock.lock.Unlock()
	return mock.UpdateContentFunc(ctx, id, content, at)
}

func (mock *draftRepoMock) UpdateContentCalls() []struct {
	ID      uuid.UUID
	Content string
	At      time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateContent
}

func (mock *draftRepoMock) SetSchedule(ctx context.Context, id uuid.UUID, at time.Time, timezone *string) error {
	if mock.SetScheduleFunc == nil {
		panic("draftRepoMock.SetScheduleFunc: method is nil but draftRepo.SetSchedule was just called")
	}
	mock.lock.Lock()
	mock.calls.SetSchedule = append(mock.calls.SetSchedule, struct {
		ID       uuid.UUID
		At       time.Time
		Timezone *string
	}{ID: id, At: at, Timezone: timezone})
	mock.lock.Unlock()
	return mock.SetScheduleFunc(ctx, id, at, timezone)
}

func (mock *draftRepoMock) SetScheduleCalls() []struct {
	ID       uuid.UUID
	At       time.Time
	Timezone *string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetSchedule
}

func (mock *draftRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("draftRepoMock.DeleteFunc: method is nil but draftRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *draftRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	CreateFunc      func(ctx context.Context, e *domain.EditHistoryEntry) error
	ListByDraftFunc func(ctx context.Context, draftID uuid.UUID) ([]*domain.EditHistoryEntry, error)

	calls struct {
		Create      []struct{ Entry *domain.EditHistoryEntry }
		ListByDraft []struct{ DraftID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *historyRepoMock) Create(ctx context.Context, e *domain.EditHistoryEntry) error {
	if mock.CreateFunc == nil {
		panic("historyRepoMock.CreateFunc: method is nil but historyRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Entry *domain.EditHistoryEntry }{Entry: e})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *historyRepoMock) CreateCalls() []struct{ Entry *domain.EditHistoryEntry } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *historyRepoMock) ListByDraft(ctx context.Context, draftID uuid.UUID) ([]*domain.EditHistoryEntry, error) {
	if mock.ListByDraftFunc == nil {
		panic("historyRepoMock.ListByDraftFunc: method is nil but historyRepo.ListByDraft was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByDraft = append(mock.calls.ListByDraft, struct{ DraftID uuid.UUID }{DraftID: draftID})
	mock.lock.Unlock()
	return mock.ListByDraftFunc(ctx, draftID)
}

func (mock *historyRepoMock) ListByDraftCalls() []struct{ DraftID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByDraft
}

var _ publisher = &publisherMock{}

type publisherMock struct {
	PublishFunc func(ctx context.Context, d *domain.Draft, from domain.Status) (*domain.Draft, error)

	calls struct {
		Publish []struct {
			Draft *domain.Draft
			From  domain.Status
		}
	}
	lock sync.RWMutex
}

func (mock *publisherMock) Publish(ctx context.Context, d *domain.Draft, from domain.Status) (*domain.Draft, error) {
	if mock.PublishFunc == nil {
		panic("publisherMock.PublishFunc: method is nil but publisher.Publish was just called")
	}
	mock.lock.Lock()
	mock.calls.Publish = append(mock.calls.Publish, struct {
		Draft *domain.Draft
		From  domain.Status
	}{Draft: d, From: from})
	mock.lock.Unlock()
	return mock.PublishFunc(ctx, d, from)
}

func (mock *publisherMock) PublishCalls() []struct {
	Draft *domain.Draft
	From  domain.Status
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Publish
}

// txManagerStub runs the function inline, with no transaction underneath.
type txManagerStub struct {
	err error
}

func (s *txManagerStub) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.err != nil {
		return s.err
	}
	return fn(ctx)
}
