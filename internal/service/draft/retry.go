package draft

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Retry re-schedules a failed draft for one retry delay from now, keeping
// its display timezone. The failure reason is cleared by the transition.
func (s *Service) Retry(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	d, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d.Status != domain.StatusFailed {
		return nil, fmt.Errorf("draft %s: retry in status %s: %w", d.ID, d.Status, domain.ErrInvalidTransition)
	}

	at := time.Now().UTC().Add(s.retryDelay)
	if err := s.drafts.SetSchedule(ctx, d.ID, at, d.ScheduledTimezone); err != nil {
		return nil, fmt.Errorf("set draft schedule: %w", err)
	}

	s.log.InfoContext(ctx, "draft retry scheduled",
		slog.String("draft_id", d.ID.String()),
		slog.Time("scheduled_for", at),
	)

	return s.drafts.GetByID(ctx, d.ID)
}
