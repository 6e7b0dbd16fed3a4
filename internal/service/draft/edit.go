package draft

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Edit replaces the draft's effective content and appends a history entry,
// atomically. Only drafts in an editable state accept edits; the original
// content is never touched.
func (s *Service) Edit(ctx context.Context, actor domain.Identity, in EditInput) (*domain.Draft, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	d, err := s.drafts.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if !d.Status.IsEditable() {
		return nil, fmt.Errorf("draft %s: edit in status %s: %w", d.ID, d.Status, domain.ErrInvalidTransition)
	}
	if in.Content == d.EffectiveContent() {
		return nil, domain.NewValidationError("content", "must differ from the current content")
	}

	now := time.Now().UTC()
	entry := &domain.EditHistoryEntry{
		ID:              uuid.New(),
		DraftID:         d.ID,
		Editor:          actor,
		PreviousContent: d.EffectiveContent(),
		NewContent:      in.Content,
		Summary:         in.Summary,
		CreatedAt:       now,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.drafts.UpdateContent(ctx, d.ID, in.Content, now); err != nil {
			return fmt.Errorf("update draft content: %w", err)
		}
		if err := s.history.Create(ctx, entry); err != nil {
			return fmt.Errorf("append history entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "draft edited",
		slog.String("draft_id", d.ID.String()),
		slog.String("editor", actor.Email),
	)

	return s.drafts.GetByID(ctx, d.ID)
}
