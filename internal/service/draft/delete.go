package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Delete removes a draft and its history. Terminal drafts are kept as the
// record of what happened, and a draft mid-publish cannot be pulled back,
// so deletion works only on pending, approved, scheduled, and failed drafts.
func (s *Service) Delete(ctx context.Context, actor domain.Identity, id uuid.UUID) error {
	d, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !canManage(d, actor) {
		return fmt.Errorf("draft %s: delete: %w", d.ID, domain.ErrForbidden)
	}
	if d.Status == domain.StatusPublishing || d.Status.IsTerminal() {
		return fmt.Errorf("draft %s: delete in status %s: %w", d.ID, d.Status, domain.ErrInvalidTransition)
	}

	if err := s.drafts.Delete(ctx, d.ID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}

	s.log.InfoContext(ctx, "draft deleted",
		slog.String("draft_id", d.ID.String()),
		slog.String("actor", actor.Email),
	)
	return nil
}
