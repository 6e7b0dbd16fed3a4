// Package generation runs the provider council: the same prompt is fanned
// out to every configured model, the survivors become candidates, and a
// judge model picks the one that ships. The full exchange is preserved as
// draft metadata so reviewers can see what the council saw.
package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/postroom/postroom-backend/internal/adapter/provider"
	"github.com/postroom/postroom-backend/internal/domain"
)

type publishedRepo interface {
	ListTopByChannel(ctx context.Context, channel domain.Channel, limit int) ([]*domain.PublishedPost, error)
}

type draftRepo interface {
	Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error)
}

// aiAuthor is the identity stamped on council-generated drafts. It has no
// user account; a human takes over once the draft reaches review.
var aiAuthor = domain.Identity{
	Email: "council@postroom.app",
	Name:  "AI Council",
}

// Service generates post content through a council of LLM providers.
// The provider set is fixed at construction; the service never builds
// its own clients.
type Service struct {
	drafts          draftRepo
	published       publishedRepo
	providers       []provider.Provider
	judge           provider.Provider
	providerTimeout time.Duration
	judgeTimeout    time.Duration
	styleExamples   int
	log             *slog.Logger
}

// NewService creates a new generation service. providerTimeout bounds each
// council member's call, judgeTimeout the judging call; styleExamples is
// how many top-performing published posts to feed back into the prompt.
func NewService(
	log *slog.Logger,
	drafts draftRepo,
	published publishedRepo,
	providers []provider.Provider,
	judge provider.Provider,
	providerTimeout time.Duration,
	judgeTimeout time.Duration,
	styleExamples int,
) *Service {
	return &Service{
		drafts:          drafts,
		published:       published,
		providers:       providers,
		judge:           judge,
		providerTimeout: providerTimeout,
		judgeTimeout:    judgeTimeout,
		styleExamples:   styleExamples,
		log:             log.With("service", "generation"),
	}
}

func (s *Service) providerNames() []string {
	names := make([]string, len(s.providers))
	for i, p := range s.providers {
		names[i] = p.Name()
	}
	return names
}

func (s *Service) newDraft(in BatchInput, item InspirationInput, meta *domain.GenerationMetadata) *domain.Draft {
	d := domain.NewDraft(in.Channel, meta.Winner.Content, nil, aiAuthor, domain.ProofreadingRoute{})
	campaignID := in.CampaignID
	inspirationID := item.ID
	d.CampaignID = &campaignID
	d.InspirationID = &inspirationID
	d.Generation = meta
	return d
}
