// Package publisher owns the single code path that sends a draft to its
// social network. Approvals, the publish-now operation, and the scheduler
// sweep all converge here, so the claim discipline lives in one place.
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/adapter/channel"
	"github.com/postroom/postroom-backend/internal/domain"
)

type draftRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	Claim(ctx context.Context, id uuid.UUID, from domain.Status) error
	MarkPublished(ctx context.Context, id uuid.UUID, externalID, externalURL string, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

type publishedRepo interface {
	Create(ctx context.Context, p *domain.PublishedPost) error
}

type adapterRegistry interface {
	For(ch domain.Channel) (channel.Adapter, error)
}

// Service publishes drafts through channel adapters.
type Service struct {
	drafts    draftRepo
	published publishedRepo
	registry  adapterRegistry
	timeout   time.Duration
	log       *slog.Logger
}

// NewService creates a new publisher service. timeout bounds each external
// publish call.
func NewService(
	log *slog.Logger,
	drafts draftRepo,
	published publishedRepo,
	registry adapterRegistry,
	timeout time.Duration,
) *Service {
	return &Service{
		drafts:    drafts,
		published: published,
		registry:  registry,
		timeout:   timeout,
		log:       log.With("service", "publisher"),
	}
}

// Publish claims the draft out of the given status and attempts the external
// post. The outcome lands on the draft itself: published with its external
// reference, or failed with a classified reason.
//
// A claim that loses to a concurrent publisher returns
// domain.ErrInvalidTransition and changes nothing; callers treat that as
// "someone else has it".
func (s *Service) Publish(ctx context.Context, d *domain.Draft, from domain.Status) (*domain.Draft, error) {
	adapter, err := s.registry.For(d.Channel)
	if err != nil {
		return nil, fmt.Errorf("resolve channel adapter: %w", err)
	}

	if err := s.drafts.Claim(ctx, d.ID, from); err != nil {
		return nil, fmt.Errorf("claim draft: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, pubErr := adapter.Publish(publishCtx, channel.Post{
		Content: d.EffectiveContent(),
		Media:   d.Media,
	})

	if pubErr != nil {
		reason := domain.PublishErrorText(pubErr)
		s.log.WarnContext(ctx, "publish failed",
			slog.String("draft_id", d.ID.String()),
			slog.String("channel", d.Channel.String()),
			slog.String("reason", reason),
		)
		if err := s.drafts.MarkFailed(ctx, d.ID, reason); err != nil {
			return nil, fmt.Errorf("mark draft failed: %w", err)
		}
		return s.drafts.GetByID(ctx, d.ID)
	}

	now := time.Now().UTC()
	if err := s.drafts.MarkPublished(ctx, d.ID, result.ExternalID, result.ExternalURL, now); err != nil {
		return nil, fmt.Errorf("mark draft published: %w", err)
	}

	// The side record feeds metrics and style examples. The post is already
	// live, so a failure here is logged, not returned.
	record := &domain.PublishedPost{
		ID:          uuid.New(),
		DraftID:     &d.ID,
		Channel:     d.Channel,
		Content:     d.EffectiveContent(),
		ExternalID:  result.ExternalID,
		ExternalURL: result.ExternalURL,
		AuthorEmail: d.Author.Email,
		AuthorName:  d.Author.Name,
		CreatedAt:   now,
	}
	if err := s.published.Create(ctx, record); err != nil {
		s.log.ErrorContext(ctx, "record published post",
			slog.String("draft_id", d.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "draft published",
		slog.String("draft_id", d.ID.String()),
		slog.String("channel", d.Channel.String()),
		slog.String("external_id", result.ExternalID),
	)

	return s.drafts.GetByID(ctx, d.ID)
}
