// Package scanner sweeps due scheduled drafts and hands them to the
// publisher. It is invoked by the cron endpoint and the one-shot binary.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/postroom/postroom-backend/internal/domain"
)

type draftRepo interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.Draft, error)
}

type publisher interface {
	Publish(ctx context.Context, d *domain.Draft, from domain.Status) (*domain.Draft, error)
}

// Service finds due drafts and publishes them with bounded concurrency.
type Service struct {
	drafts      draftRepo
	publisher   publisher
	concurrency int
	sweepLimit  int
	log         *slog.Logger
}

// NewService creates a new scanner service.
func NewService(
	log *slog.Logger,
	drafts draftRepo,
	pub publisher,
	concurrency int,
	sweepLimit int,
) *Service {
	return &Service{
		drafts:      drafts,
		publisher:   pub,
		concurrency: concurrency,
		sweepLimit:  sweepLimit,
		log:         log.With("service", "scanner"),
	}
}

// SweepResult summarizes one sweep.
type SweepResult struct {
	Due       int `json:"due"`
	Published int `json:"published"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Sweep publishes every scheduled draft whose instant has passed. Each draft
// is handled independently: one failure never stops the rest. Drafts claimed
// by a concurrent sweep are counted as skipped.
func (s *Service) Sweep(ctx context.Context) (SweepResult, error) {
	now := time.Now().UTC()

	due, err := s.drafts.ListDue(ctx, now, s.sweepLimit)
	if err != nil {
		return SweepResult{}, fmt.Errorf("list due drafts: %w", err)
	}

	result := SweepResult{Due: len(due)}
	if len(due) == 0 {
		return result, nil
	}

	s.log.InfoContext(ctx, "sweep started", slog.Int("due", len(due)))

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, d := range due {
		g.Go(func() error {
			published, err := s.publisher.Publish(gCtx, d, domain.StatusScheduled)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, domain.ErrInvalidTransition):
				result.Skipped++
			case err != nil:
				result.Failed++
				s.log.ErrorContext(gCtx, "sweep publish error",
					slog.String("draft_id", d.ID.String()),
					slog.String("error", err.Error()),
				)
			case published.Status == domain.StatusPublished:
				result.Published++
			default:
				result.Failed++
			}
			return nil
		})
	}

	// Workers never return errors; the group is used for its limit.
	_ = g.Wait()

	s.log.InfoContext(ctx, "sweep finished",
		slog.Int("due", result.Due),
		slog.Int("published", result.Published),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}
