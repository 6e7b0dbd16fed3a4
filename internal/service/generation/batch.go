package generation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

// BatchItemFailure records one inspiration that produced no draft.
type BatchItemFailure struct {
	InspirationID uuid.UUID `json:"inspiration_id"`
	Reason        string    `json:"reason"`
}

// BatchResult reports a campaign run. Drafts and Failures partition the
// input: every inspiration lands in exactly one of them.
type BatchResult struct {
	Drafts   []*domain.Draft    `json:"drafts"`
	Failures []BatchItemFailure `json:"failures"`
}

// GenerateBatch runs one council round per inspiration and creates a
// proofreading draft for each winner, all tagged with the campaign. Items
// are independent: one inspiration failing never blocks the rest.
//
// Rounds run sequentially. Each round already fans out to every provider,
// so running rounds in parallel would multiply the burst against the same
// per-key rate limits.
func (s *Service) GenerateBatch(ctx context.Context, in BatchInput) (*BatchResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "batch generation started",
		slog.String("campaign_id", in.CampaignID.String()),
		slog.String("channel", in.Channel.String()),
		slog.Int("inspirations", len(in.Inspirations)),
	)

	result := &BatchResult{}
	for _, item := range in.Inspirations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		meta, err := s.Generate(ctx, GenerateInput{
			Channel:     in.Channel,
			Inspiration: item.Content,
		})
		if err != nil {
			s.log.WarnContext(ctx, "batch item generation failed",
				slog.String("inspiration_id", item.ID.String()),
				slog.String("error", err.Error()),
			)
			result.Failures = append(result.Failures, BatchItemFailure{
				InspirationID: item.ID,
				Reason:        err.Error(),
			})
			continue
		}

		draft, err := s.drafts.Create(ctx, s.newDraft(in, item, meta))
		if err != nil {
			s.log.ErrorContext(ctx, "batch item draft create failed",
				slog.String("inspiration_id", item.ID.String()),
				slog.String("error", err.Error()),
			)
			result.Failures = append(result.Failures, BatchItemFailure{
				InspirationID: item.ID,
				Reason:        err.Error(),
			})
			continue
		}

		result.Drafts = append(result.Drafts, draft)
	}

	s.log.InfoContext(ctx, "batch generation finished",
		slog.String("campaign_id", in.CampaignID.String()),
		slog.Int("created", len(result.Drafts)),
		slog.Int("failed", len(result.Failures)),
	)
	return result, nil
}
