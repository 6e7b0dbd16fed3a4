package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Create persists a new draft in the state its route dictates. A direct
// draft is handed to the publisher immediately; the returned draft then
// reflects the publish outcome, published or failed.
func (s *Service) Create(ctx context.Context, actor domain.Identity, in CreateInput) (*domain.Draft, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	d := domain.NewDraft(in.Channel, in.Content, in.Media, actor, in.RouteSpec())

	created, err := s.drafts.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}

	s.log.InfoContext(ctx, "draft created",
		slog.String("draft_id", created.ID.String()),
		slog.String("channel", created.Channel.String()),
		slog.String("route", created.Route.String()),
	)

	if created.Route == domain.RouteDirect {
		return s.publisher.Publish(ctx, created, domain.StatusApproved)
	}
	return created, nil
}
