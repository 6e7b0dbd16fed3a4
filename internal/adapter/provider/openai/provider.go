// Package openai implements the provider contract against the OpenAI
// chat completions API. Grok exposes the same wire format, so the x.ai
// endpoint is served by this package too, under a different name and base URL.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the OpenAI API root.
	DefaultBaseURL = "https://api.openai.com/v1"
	// GrokBaseURL is the x.ai API root, wire-compatible with OpenAI.
	GrokBaseURL = "https://api.x.ai/v1"
)

// Provider calls a chat-completions compatible endpoint.
type Provider struct {
	name       string
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider against the OpenAI API.
func NewProvider(apiKey, model string, logger *slog.Logger) *Provider {
	return newProvider("openai", DefaultBaseURL, apiKey, model, logger)
}

// NewGrokProvider creates a Provider against the x.ai API.
func NewGrokProvider(apiKey, model string, logger *slog.Logger) *Provider {
	return newProvider("grok", GrokBaseURL, apiKey, model, logger)
}

// NewProviderWithURL creates a named Provider with a custom base URL (for testing).
func NewProviderWithURL(name, baseURL, apiKey, model string, logger *slog.Logger) *Provider {
	return newProvider(name, baseURL, apiKey, model, logger)
}

func newProvider(name, baseURL, apiKey, model string, logger *slog.Logger) *Provider {
	return &Provider{
		name:       name,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        logger.With("adapter", name),
	}
}

// Name identifies the provider in candidate metadata and logs.
func (p *Provider) Name() string { return p.name }

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt as a single user message and returns the first
// choice's content.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    p.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("%s: marshal request: %w", p.name, err)
	}

	p.log.DebugContext(ctx, "chat completion request", slog.String("model", p.model))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%s: create request: %w", p.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.doWithRetry(ctx, req, payload)
	if err != nil {
		p.log.ErrorContext(ctx, "chat completion request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("%s: request failed: %w", p.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read body: %w", p.name, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%s: decode json: %w", p.name, err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("%s: api error (status %d): %s", p.name, resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("%s: unexpected status %d", p.name, resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%s: empty choices in response", p.name)
	}

	content := parsed.Choices[0].Message.Content
	p.log.DebugContext(ctx, "chat completion response", slog.Int("chars", len(content)))

	return content, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
// The body is rebuilt for the retry since the first attempt consumed it.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, payload []byte) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "chat completion retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retry := req.Clone(ctx)
	retry.Body = io.NopCloser(bytes.NewReader(payload))
	return p.httpClient.Do(retry)
}
