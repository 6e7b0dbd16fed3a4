// Package x publishes tweets through the X API v2 using OAuth 1.0a
// user-context credentials.
package x

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/postroom/postroom-backend/internal/adapter/channel"
	"github.com/postroom/postroom-backend/internal/domain"
)

const defaultBaseURL = "https://api.x.com"

// maxContentLength is the tweet character limit.
const maxContentLength = 280

// Adapter posts tweets on behalf of a configured user.
type Adapter struct {
	baseURL    string
	creds      credentials
	httpClient *http.Client
	log        *slog.Logger
}

// New creates an Adapter with the default X API URL.
func New(apiKey, apiSecret, accessToken, accessTokenSecret string, timeout time.Duration, logger *slog.Logger) *Adapter {
	return NewWithURL(defaultBaseURL, apiKey, apiSecret, accessToken, accessTokenSecret, timeout, logger)
}

// NewWithURL creates an Adapter with a custom base URL (for testing).
func NewWithURL(baseURL, apiKey, apiSecret, accessToken, accessTokenSecret string, timeout time.Duration, logger *slog.Logger) *Adapter {
	return &Adapter{
		baseURL: baseURL,
		creds: credentials{
			consumerKey:    apiKey,
			consumerSecret: apiSecret,
			token:          accessToken,
			tokenSecret:    accessTokenSecret,
		},
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "x"),
	}
}

// Channel reports the network this adapter serves.
func (a *Adapter) Channel() domain.Channel { return domain.ChannelX }

type tweetRequest struct {
	Text string `json:"text"`
}

type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
	Detail string `json:"detail"`
	Title  string `json:"title"`
}

// Publish creates a tweet and returns its external reference.
func (a *Adapter) Publish(ctx context.Context, post channel.Post) (*channel.Result, error) {
	if utf8.RuneCountInString(post.Content) > maxContentLength {
		return nil, domain.NewPublishError(domain.PublishErrValidationRejected,
			"content exceeds %d characters", maxContentLength)
	}

	payload, err := json.Marshal(tweetRequest{Text: post.Content})
	if err != nil {
		return nil, fmt.Errorf("x: marshal tweet: %w", err)
	}

	reqURL := a.baseURL + "/2/tweets"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("x: create request: %w", err)
	}

	authHeader, err := a.creds.authorizationHeader(http.MethodPost, baseURLOf(reqURL))
	if err != nil {
		return nil, fmt.Errorf("x: build oauth header: %w", err)
	}
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Content-Type", "application/json")

	a.log.DebugContext(ctx, "tweet request", slog.Int("chars", utf8.RuneCountInString(post.Content)))

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.log.ErrorContext(ctx, "tweet request failed", slog.String("error", err.Error()))
		return nil, domain.NewPublishError(domain.PublishErrNetwork, "%s", err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewPublishError(domain.PublishErrNetwork, "read response: %s", err.Error())
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		a.log.ErrorContext(ctx, "tweet rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, classifyStatus(resp.StatusCode, body)
	}

	var parsed tweetResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("x: decode response: %w", err)
	}
	if parsed.Data.ID == "" {
		return nil, fmt.Errorf("x: response missing tweet id")
	}

	result := &channel.Result{
		ExternalID:  parsed.Data.ID,
		ExternalURL: "https://x.com/i/status/" + parsed.Data.ID,
	}

	a.log.InfoContext(ctx, "tweet published", slog.String("external_id", result.ExternalID))

	return result, nil
}

func classifyStatus(status int, body []byte) error {
	detail := fmt.Sprintf("unexpected status %d", status)
	var parsed tweetResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		detail = parsed.Detail
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.NewPublishError(domain.PublishErrAuthExpired, "%s", detail)
	case http.StatusTooManyRequests:
		return domain.NewPublishError(domain.PublishErrRateLimited, "rate limit exceeded, try again later")
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.NewPublishError(domain.PublishErrValidationRejected, "%s", detail)
	default:
		return domain.NewPublishError(domain.PublishErrUnknown, "%s", detail)
	}
}
