package generation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

// GenerateInput holds parameters for a single council generation.
type GenerateInput struct {
	Channel     domain.Channel
	Inspiration string
}

func (in GenerateInput) Validate() error {
	var errs []domain.FieldError

	if !in.Channel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "channel", Message: "must be one of: linkedin, x"})
	}
	if strings.TrimSpace(in.Inspiration) == "" {
		errs = append(errs, domain.FieldError{Field: "inspiration", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// InspirationInput is one source post to generate from in a batch run.
type InspirationInput struct {
	ID      uuid.UUID
	Content string
}

// BatchInput holds parameters for a campaign generation run: one draft
// per inspiration, all tagged with the same campaign.
type BatchInput struct {
	Channel      domain.Channel
	CampaignID   uuid.UUID
	Inspirations []InspirationInput
}

func (in BatchInput) Validate() error {
	var errs []domain.FieldError

	if !in.Channel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "channel", Message: "must be one of: linkedin, x"})
	}
	if in.CampaignID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "campaign_id", Message: "must not be empty"})
	}
	if len(in.Inspirations) == 0 {
		errs = append(errs, domain.FieldError{Field: "inspirations", Message: "must not be empty"})
	}
	for _, item := range in.Inspirations {
		if item.ID == uuid.Nil || strings.TrimSpace(item.Content) == "" {
			errs = append(errs, domain.FieldError{Field: "inspirations", Message: "each item needs an id and content"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
