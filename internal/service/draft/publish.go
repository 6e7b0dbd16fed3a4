package draft

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

// PublishNow sends the draft to its channel immediately, bypassing any
// schedule. Works from approved, scheduled, and failed.
func (s *Service) PublishNow(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	d, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !d.Status.CanTransitionTo(domain.StatusPublishing) {
		return nil, fmt.Errorf("draft %s: publish in status %s: %w", d.ID, d.Status, domain.ErrInvalidTransition)
	}

	return s.publisher.Publish(ctx, d, d.Status)
}
