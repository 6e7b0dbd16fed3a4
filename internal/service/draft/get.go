package draft

import (
	"context"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Get returns a single draft by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	return s.drafts.GetByID(ctx, id)
}

// History returns the draft's edit ledger in creation order. The draft is
// looked up first so an unknown ID reports not-found rather than an empty
// ledger.
func (s *Service) History(ctx context.Context, id uuid.UUID) ([]*domain.EditHistoryEntry, error) {
	if _, err := s.drafts.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.history.ListByDraft(ctx, id)
}
