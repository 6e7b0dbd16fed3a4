package domain

import "time"

// GenerationCandidate is one generated text option from one provider,
// before judging. Candidates are transient and survive only inside
// GenerationMetadata.
type GenerationCandidate struct {
	ProviderName string `json:"provider_name"`
	Content      string `json:"content"`
}

// GenerationWinner is the candidate the council selected, with the
// judge's (or fallback) reasoning.
type GenerationWinner struct {
	ProviderName string `json:"provider_name"`
	Content      string `json:"content"`
	Reason       string `json:"reason"`
}

// GenerationJudge records which model judged and the exact prompt it saw.
// Prompt is empty when the judge was never invoked (single survivor).
type GenerationJudge struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt,omitempty"`
}

// GenerationMetadata is the complete record of one council generation.
// It is attached to the draft at creation and immutable thereafter;
// the draft's OriginalContent is copied from Winner.Content, so this
// structure is informational from then on.
type GenerationMetadata struct {
	Prompt             string                `json:"prompt"`
	Platform           string                `json:"platform"`
	InspirationContent string                `json:"inspiration_content"`
	ProvidersUsed      []string              `json:"providers_used"`
	Candidates         []GenerationCandidate `json:"candidates"`
	Winner             GenerationWinner      `json:"winner"`
	Judge              GenerationJudge       `json:"judge"`
	GeneratedAt        time.Time             `json:"generated_at"`
}
