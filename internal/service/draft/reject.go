package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Reject declines a pending draft, terminally. The reviewer's reason, if
// given, is kept on the draft as the reason it never shipped.
func (s *Service) Reject(ctx context.Context, actor domain.Identity, id uuid.UUID, reason *string) (*domain.Draft, error) {
	d, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canManage(d, actor) {
		return nil, fmt.Errorf("draft %s: reject: %w", d.ID, domain.ErrForbidden)
	}
	if d.Status != domain.StatusPendingReview {
		return nil, fmt.Errorf("draft %s: reject in status %s: %w", d.ID, d.Status, domain.ErrInvalidTransition)
	}

	if err := s.drafts.MarkRejected(ctx, d.ID, reason); err != nil {
		return nil, fmt.Errorf("mark draft rejected: %w", err)
	}

	s.log.InfoContext(ctx, "draft rejected",
		slog.String("draft_id", d.ID.String()),
		slog.String("reviewer", actor.Email),
	)

	return s.drafts.GetByID(ctx, d.ID)
}
