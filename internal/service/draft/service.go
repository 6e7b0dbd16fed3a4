// Package draft implements the publication lifecycle around a draft:
// creation through one of the delivery routes, proofreading edits with a
// history ledger, review decisions, scheduling, and the hand-off to the
// publisher. One file per operation.
package draft

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

type draftRepo interface {
	Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	List(ctx context.Context, filter domain.DraftFilter) ([]*domain.Draft, error)
	MarkApproved(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkRejected(ctx context.Context, id uuid.UUID, reason *string) error
	UpdateContent(ctx context.Context, id uuid.UUID, content string, at time.Time) error
	SetSchedule(ctx context.Context, id uuid.UUID, at time.Time, timezone *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type historyRepo interface {
	Create(ctx context.Context, e *domain.EditHistoryEntry) error
	ListByDraft(ctx context.Context, draftID uuid.UUID) ([]*domain.EditHistoryEntry, error)
}

type publisher interface {
	Publish(ctx context.Context, d *domain.Draft, from domain.Status) (*domain.Draft, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service drives drafts through their lifecycle.
type Service struct {
	drafts     draftRepo
	history    historyRepo
	publisher  publisher
	tx         txManager
	retryDelay time.Duration
	log        *slog.Logger
}

// NewService creates a new draft service. retryDelay is how far into the
// future a failed draft is re-scheduled by Retry.
func NewService(
	log *slog.Logger,
	drafts draftRepo,
	history historyRepo,
	pub publisher,
	tx txManager,
	retryDelay time.Duration,
) *Service {
	return &Service{
		drafts:     drafts,
		history:    history,
		publisher:  pub,
		tx:         tx,
		retryDelay: retryDelay,
		log:        log.With("service", "draft"),
	}
}

// canManage reports whether actor may take review decisions on the draft.
// Council-generated drafts have no owning account and are managed by any
// signed-in reviewer; human drafts only by their author.
func canManage(d *domain.Draft, actor domain.Identity) bool {
	if d.Author.UserID == nil {
		return true
	}
	return d.IsAuthoredBy(actor)
}
