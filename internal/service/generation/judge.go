package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/postroom/postroom-backend/internal/domain"
)

type judgeVerdict struct {
	Winner int    `json:"winner"`
	Reason string `json:"reason"`
}

// selectWinner asks the judge model to rank the candidates. The judge is
// advisory: any failure or malformed verdict falls back to the first
// candidate, so a round never dies after content was already produced.
// The judge prompt is returned for the metadata record either way.
func (s *Service) selectWinner(ctx context.Context, ch domain.Channel, candidates []domain.GenerationCandidate) (domain.GenerationWinner, string) {
	prompt := buildJudgePrompt(ch, candidates)

	jctx, cancel := context.WithTimeout(ctx, s.judgeTimeout)
	defer cancel()

	raw, err := s.judge.Complete(jctx, prompt)
	if err != nil {
		s.log.WarnContext(ctx, "judge call failed", slog.String("error", err.Error()))
		return fallbackWinner(candidates[0], "Judge unavailable"), prompt
	}

	verdict, err := parseVerdict(raw)
	if err != nil || verdict.Winner < 1 || verdict.Winner > len(candidates) {
		s.log.WarnContext(ctx, "judge verdict unusable", slog.String("response", raw))
		return fallbackWinner(candidates[0], "Judge parse error"), prompt
	}

	c := candidates[verdict.Winner-1]
	return domain.GenerationWinner{
		ProviderName: c.ProviderName,
		Content:      c.Content,
		Reason:       verdict.Reason,
	}, prompt
}

func fallbackWinner(c domain.GenerationCandidate, reason string) domain.GenerationWinner {
	return domain.GenerationWinner{
		ProviderName: c.ProviderName,
		Content:      c.Content,
		Reason:       reason,
	}
}

// parseVerdict extracts the verdict object from the judge's reply. Models
// tend to wrap JSON in prose or code fences, so everything outside the
// outermost braces is discarded first.
func parseVerdict(raw string) (*judgeVerdict, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in judge response")
	}

	var verdict judgeVerdict
	if err := json.Unmarshal([]byte(raw[start:end+1]), &verdict); err != nil {
		return nil, fmt.Errorf("unmarshal judge verdict: %w", err)
	}
	return &verdict, nil
}
