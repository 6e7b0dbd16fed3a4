package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Generate runs one council round: fetch style examples, fan the prompt
// out to every provider, and have the judge pick among the survivors.
// It fails only when no provider produced anything.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (*domain.GenerationMetadata, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	examples, err := s.published.ListTopByChannel(ctx, in.Channel, s.styleExamples)
	if err != nil {
		// Style examples sharpen the prompt but are not required for it.
		s.log.WarnContext(ctx, "load style examples",
			slog.String("channel", in.Channel.String()),
			slog.String("error", err.Error()),
		)
		examples = nil
	}

	prompt := buildPrompt(in.Channel, in.Inspiration, examples)

	candidates := s.collectCandidates(ctx, prompt)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("generate for %s: %w", in.Channel, domain.ErrAllProvidersFailed)
	}

	meta := &domain.GenerationMetadata{
		Prompt:             prompt,
		Platform:           in.Channel.String(),
		InspirationContent: in.Inspiration,
		ProvidersUsed:      s.providerNames(),
		Candidates:         candidates,
		GeneratedAt:        time.Now().UTC(),
	}

	if len(candidates) == 1 {
		c := candidates[0]
		meta.Winner = domain.GenerationWinner{
			ProviderName: c.ProviderName,
			Content:      c.Content,
			Reason:       "Only one model succeeded",
		}
		s.log.InfoContext(ctx, "council finished without judging",
			slog.String("winner", c.ProviderName),
		)
		return meta, nil
	}

	winner, judgePrompt := s.selectWinner(ctx, in.Channel, candidates)
	meta.Winner = winner
	meta.Judge = domain.GenerationJudge{Model: s.judge.Name(), Prompt: judgePrompt}

	s.log.InfoContext(ctx, "council finished",
		slog.Int("candidates", len(candidates)),
		slog.String("winner", winner.ProviderName),
	)
	return meta, nil
}

// collectCandidates calls every provider concurrently with the same prompt
// and keeps whatever came back non-empty, in provider order. Individual
// failures are logged and dropped; the council survives on any subset.
func (s *Service) collectCandidates(ctx context.Context, prompt string) []domain.GenerationCandidate {
	type result struct {
		content string
		err     error
	}
	results := make([]result, len(s.providers))

	var wg sync.WaitGroup
	for i, p := range s.providers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pctx, cancel := context.WithTimeout(ctx, s.providerTimeout)
			defer cancel()

			content, err := p.Complete(pctx, prompt)
			results[i] = result{content: content, err: err}
		}()
	}
	wg.Wait()

	candidates := make([]domain.GenerationCandidate, 0, len(s.providers))
	for i, r := range results {
		name := s.providers[i].Name()
		if r.err != nil {
			s.log.WarnContext(ctx, "provider failed",
				slog.String("provider", name),
				slog.String("error", r.err.Error()),
			)
			continue
		}
		content := strings.TrimSpace(r.content)
		if content == "" {
			s.log.WarnContext(ctx, "provider returned empty content",
				slog.String("provider", name),
			)
			continue
		}
		candidates = append(candidates, domain.GenerationCandidate{
			ProviderName: name,
			Content:      content,
		})
	}
	return candidates
}
