// Package claude implements the provider contract on the official
// Anthropic SDK.
package claude

import (
	"context"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const maxTokens = 2048

// Provider calls the Anthropic Messages API.
type Provider struct {
	client anthropic.Client
	model  string
	log    *slog.Logger
}

// NewProvider creates a Provider for the given API key and model.
func NewProvider(apiKey, model string, logger *slog.Logger) *Provider {
	return &Provider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		log:    logger.With("adapter", "anthropic"),
	}
}

// Name identifies the provider in candidate metadata and logs.
func (p *Provider) Name() string { return "anthropic" }

// Complete sends the prompt as a single user message and returns the first
// content block's text.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	p.log.DebugContext(ctx, "messages request", slog.String("model", p.model))

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		p.log.ErrorContext(ctx, "messages request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("anthropic: api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("anthropic: empty response")
	}

	text := msg.Content[0].Text
	p.log.DebugContext(ctx, "messages response", slog.Int("chars", len(text)))

	return text, nil
}
