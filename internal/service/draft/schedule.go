package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Schedule defers publication to the given instant. It moves a pending or
// failed draft onto the scheduled route and re-schedules an already
// scheduled one; any stale failure reason is cleared.
func (s *Service) Schedule(ctx context.Context, in ScheduleInput) (*domain.Draft, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	d, err := s.drafts.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if !d.Status.CanTransitionTo(domain.StatusScheduled) {
		return nil, fmt.Errorf("draft %s: schedule in status %s: %w", d.ID, d.Status, domain.ErrInvalidTransition)
	}

	tz := in.Timezone
	if err := s.drafts.SetSchedule(ctx, d.ID, in.At.UTC(), &tz); err != nil {
		return nil, fmt.Errorf("set draft schedule: %w", err)
	}

	s.log.InfoContext(ctx, "draft scheduled",
		slog.String("draft_id", d.ID.String()),
		slog.Time("scheduled_for", in.At.UTC()),
	)

	return s.drafts.GetByID(ctx, d.ID)
}
