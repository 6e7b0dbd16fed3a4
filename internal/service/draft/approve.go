package draft

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Approve accepts a pending draft and publishes it in the same call. The
// returned draft carries the publish outcome: published with its external
// reference, or failed with the classified reason.
func (s *Service) Approve(ctx context.Context, actor domain.Identity, id uuid.UUID) (*domain.Draft, error) {
	d, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canManage(d, actor) {
		return nil, fmt.Errorf("draft %s: approve: %w", d.ID, domain.ErrForbidden)
	}
	if d.Status != domain.StatusPendingReview {
		return nil, fmt.Errorf("draft %s: approve in status %s: %w", d.ID, d.Status, domain.ErrInvalidTransition)
	}

	if err := s.drafts.MarkApproved(ctx, d.ID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("mark draft approved: %w", err)
	}

	s.log.InfoContext(ctx, "draft approved",
		slog.String("draft_id", d.ID.String()),
		slog.String("reviewer", actor.Email),
	)

	approved, err := s.drafts.GetByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	return s.publisher.Publish(ctx, approved, domain.StatusApproved)
}
