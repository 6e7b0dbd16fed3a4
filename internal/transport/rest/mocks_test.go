package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
	"github.com/postroom/postroom-backend/internal/service/draft"
	"github.com/postroom/postroom-backend/internal/service/generation"
	"github.com/postroom/postroom-backend/internal/service/scanner"
)

// draftServiceMock is a mock implementation of draftService.
type draftServiceMock struct {
	CreateFunc     func(ctx context.Context, actor domain.Identity, in draft.CreateInput) (*domain.Draft, error)
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	ListFunc       func(ctx context.Context, filter domain.DraftFilter) ([]*domain.Draft, error)
	HistoryFunc    func(ctx context.Context, id uuid.UUID) ([]*domain.EditHistoryEntry, error)
	EditFunc       func(ctx context.Context, actor domain.Identity, in draft.EditInput) (*domain.Draft, error)
	ApproveFunc    func(ctx context.Context, actor domain.Identity, id uuid.UUID) (*domain.Draft, error)
	RejectFunc     func(ctx context.Context, actor domain.Identity, id uuid.UUID, reason *string) (*domain.Draft, error)
	ScheduleFunc   func(ctx context.Context, in draft.ScheduleInput) (*domain.Draft, error)
	RetryFunc      func(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	PublishNowFunc func(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	DeleteFunc     func(ctx context.Context, actor domain.Identity, id uuid.UUID) error

	calls struct {
		Create []struct {
			Actor domain.Identity
			In    draft.CreateInput
		}
		List   []domain.DraftFilter
		Reject []struct {
			Actor  domain.Identity
			ID     uuid.UUID
			Reason *string
		}
		Schedule []draft.ScheduleInput
	}
	lock sync.RWMutex
}

func (mock *draftServiceMock) Create(ctx context.Context, actor domain.Identity, in draft.CreateInput) (*domain.Draft, error) {
	if mock.CreateFunc == nil {
		panic("draftServiceMock.CreateFunc: method is nil but was called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Actor domain.Identity
		In    draft.CreateInput
	}{actor, in})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, actor, in)
}

func (mock *draftServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	if mock.GetFunc == nil {
		panic("draftServiceMock.GetFunc: method is nil but was called")
	}
	return mock.GetFunc(ctx, id)
}

func (mock *draftServiceMock) List(ctx context.Context, filter domain.DraftFilter) ([]*domain.Draft, error) {
	if mock.ListFunc == nil {
		panic("draftServiceMock.ListFunc: method is nil but was called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, filter)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *draftServiceMock) History(ctx context.Context, id uuid.UUID) ([]*domain.EditHistoryEntry, error) {
	if mock.HistoryFunc == nil {
		panic("draftServiceMock.HistoryFunc: method is nil but was called")
	}
	return mock.HistoryFunc(ctx, id)
}

func (mock *draftServiceMock) Edit(ctx context.Context, actor domain.Identity, in draft.EditInput) (*domain.Draft, error) {
	if mock.EditFunc == nil {
		panic("draftServiceMock.EditFunc: method is nil but was called")
	}
	return mock.EditFunc(ctx, actor, in)
}

func (mock *draftServiceMock) Approve(ctx context.Context, actor domain.Identity, id uuid.UUID) (*domain.Draft, error) {
	if mock.ApproveFunc == nil {
		panic("draftServiceMock.ApproveFunc: method is nil but was called")
	}
	return mock.ApproveFunc(ctx, actor, id)
}

func (mock *draftServiceMock) Reject(ctx context.Context, actor domain.Identity, id uuid.UUID, reason *string) (*domain.Draft, error) {
	if mock.RejectFunc == nil {
		panic("draftServiceMock.RejectFunc: method is nil but was called")
	}
	mock.lock.Lock()
	mock.calls.Reject = append(mock.calls.Reject, struct {
		Actor  domain.Identity
		ID     uuid.UUID
		Reason *string
	}{actor, id, reason})
	mock.lock.Unlock()
	return mock.RejectFunc(ctx, actor, id, reason)
}

func (mock *draftServiceMock) Schedule(ctx context.Context, in draft.ScheduleInput) (*domain.Draft, error) {
	if mock.ScheduleFunc == nil {
		panic("draftServiceMock.ScheduleFunc: method is nil but was called")
	}
	mock.lock.Lock()
	mock.calls.Schedule = append(mock.calls.Schedule, in)
	mock.lock.Unlock()
	return mock.ScheduleFunc(ctx, in)
}

func (mock *draftServiceMock) Retry(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	if mock.RetryFunc == nil {
		panic("draftServiceMock.RetryFunc: method is nil but was called")
	}
	return mock.RetryFunc(ctx, id)
}

func (mock *draftServiceMock) PublishNow(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	if mock.PublishNowFunc == nil {
		panic("draftServiceMock.PublishNowFunc: method is nil but was called")
	}
	return mock.PublishNowFunc(ctx, id)
}

func (mock *draftServiceMock) Delete(ctx context.Context, actor domain.Identity, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("draftServiceMock.DeleteFunc: method is nil but was called")
	}
	return mock.DeleteFunc(ctx, actor, id)
}

var _ draftService = &draftServiceMock{}

// generationServiceMock is a mock implementation of generationService.
type generationServiceMock struct {
	GenerateFunc      func(ctx context.Context, in generation.GenerateInput) (*domain.GenerationMetadata, error)
	GenerateBatchFunc func(ctx context.Context, in generation.BatchInput) (*generation.BatchResult, error)

	calls struct {
		Generate      []generation.GenerateInput
		GenerateBatch []generation.BatchInput
	}
	lock sync.RWMutex
}

func (mock *generationServiceMock) Generate(ctx context.Context, in generation.GenerateInput) (*domain.GenerationMetadata, error) {
	if mock.GenerateFunc == nil {
		panic("generationServiceMock.GenerateFunc: method is nil but was called")
	}
	mock.lock.Lock()
	mock.calls.Generate = append(mock.calls.Generate, in)
	mock.lock.Unlock()
	return mock.GenerateFunc(ctx, in)
}

func (mock *generationServiceMock) GenerateBatch(ctx context.Context, in generation.BatchInput) (*generation.BatchResult, error) {
	if mock.GenerateBatchFunc == nil {
		panic("generationServiceMock.GenerateBatchFunc: method is nil but was called")
	}
	mock.lock.Lock()
	mock.calls.GenerateBatch = append(mock.calls.GenerateBatch, in)
	mock.lock.Unlock()
	return mock.GenerateBatchFunc(ctx, in)
}

var _ generationService = &generationServiceMock{}

// scannerServiceMock is a mock implementation of scannerService.
type scannerServiceMock struct {
	SweepFunc func(ctx context.Context) (scanner.SweepResult, error)
}

func (mock *scannerServiceMock) Sweep(ctx context.Context) (scanner.SweepResult, error) {
	if mock.SweepFunc == nil {
		panic("scannerServiceMock.SweepFunc: method is nil but was called")
	}
	return mock.SweepFunc(ctx)
}

var _ scannerService = &scannerServiceMock{}
