package draft

import (
	"context"

	"github.com/postroom/postroom-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// List returns drafts matching the filter, newest first.
func (s *Service) List(ctx context.Context, filter domain.DraftFilter) ([]*domain.Draft, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.drafts.List(ctx, filter)
}
