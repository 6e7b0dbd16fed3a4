// Package linkedin publishes organization posts through the LinkedIn UGC
// Posts API.
package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/postroom/postroom-backend/internal/adapter/channel"
	"github.com/postroom/postroom-backend/internal/domain"
)

const defaultBaseURL = "https://api.linkedin.com"

// maxContentLength is LinkedIn's post body limit.
const maxContentLength = 3000

// Adapter posts on behalf of a LinkedIn organization page.
type Adapter struct {
	baseURL        string
	accessToken    string
	organizationID string
	httpClient     *http.Client
	log            *slog.Logger
}

// New creates an Adapter with the default LinkedIn API URL.
func New(accessToken, organizationID string, timeout time.Duration, logger *slog.Logger) *Adapter {
	return NewWithURL(defaultBaseURL, accessToken, organizationID, timeout, logger)
}

// NewWithURL creates an Adapter with a custom base URL (for testing).
func NewWithURL(baseURL, accessToken, organizationID string, timeout time.Duration, logger *slog.Logger) *Adapter {
	return &Adapter{
		baseURL:        baseURL,
		accessToken:    accessToken,
		organizationID: organizationID,
		httpClient:     &http.Client{Timeout: timeout},
		log:            logger.With("adapter", "linkedin"),
	}
}

// Channel reports the network this adapter serves.
func (a *Adapter) Channel() domain.Channel { return domain.ChannelLinkedIn }

type ugcPostRequest struct {
	Author          string          `json:"author"`
	LifecycleState  string          `json:"lifecycleState"`
	SpecificContent specificContent `json:"specificContent"`
	Visibility      visibility      `json:"visibility"`
}

type specificContent struct {
	ShareContent shareContent `json:"com.linkedin.ugc.ShareContent"`
}

type shareContent struct {
	ShareCommentary    shareCommentary `json:"shareCommentary"`
	ShareMediaCategory string          `json:"shareMediaCategory"`
}

type shareCommentary struct {
	Text string `json:"text"`
}

type visibility struct {
	MemberNetworkVisibility string `json:"com.linkedin.ugc.MemberNetworkVisibility"`
}

type ugcPostResponse struct {
	ID string `json:"id"`
}

// Publish creates an organization post and returns its external reference.
// The post URL is derived from the returned URN.
func (a *Adapter) Publish(ctx context.Context, post channel.Post) (*channel.Result, error) {
	if len(post.Content) > maxContentLength {
		return nil, domain.NewPublishError(domain.PublishErrValidationRejected,
			"content exceeds %d characters", maxContentLength)
	}

	mediaCategory := "NONE"
	if post.Media != nil {
		switch post.Media.Type {
		case domain.MediaTypeImage:
			mediaCategory = "IMAGE"
		case domain.MediaTypeVideo:
			mediaCategory = "VIDEO"
		}
	}

	payload, err := json.Marshal(ugcPostRequest{
		Author:         "urn:li:organization:" + a.organizationID,
		LifecycleState: "PUBLISHED",
		SpecificContent: specificContent{
			ShareContent: shareContent{
				ShareCommentary:    shareCommentary{Text: post.Content},
				ShareMediaCategory: mediaCategory,
			},
		},
		Visibility: visibility{MemberNetworkVisibility: "PUBLIC"},
	})
	if err != nil {
		return nil, fmt.Errorf("linkedin: marshal post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v2/ugcPosts", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("linkedin: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	a.log.DebugContext(ctx, "ugc post request", slog.Int("chars", len(post.Content)))

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.log.ErrorContext(ctx, "ugc post request failed", slog.String("error", err.Error()))
		return nil, domain.NewPublishError(domain.PublishErrNetwork, "%s", err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewPublishError(domain.PublishErrNetwork, "read response: %s", err.Error())
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		a.log.ErrorContext(ctx, "ugc post rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, classifyStatus(resp.StatusCode, string(body))
	}

	var parsed ugcPostResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("linkedin: decode response: %w", err)
	}
	if parsed.ID == "" {
		return nil, fmt.Errorf("linkedin: response missing post id")
	}

	result := &channel.Result{
		ExternalID:  parsed.ID,
		ExternalURL: fmt.Sprintf("https://www.linkedin.com/feed/update/%s/", parsed.ID),
	}

	a.log.InfoContext(ctx, "post published", slog.String("external_id", result.ExternalID))

	return result, nil
}

func classifyStatus(status int, body string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.NewPublishError(domain.PublishErrAuthExpired,
			"authorization expired or revoked, reconnect the account")
	case status == http.StatusTooManyRequests:
		return domain.NewPublishError(domain.PublishErrRateLimited, "rate limit exceeded")
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domain.NewPublishError(domain.PublishErrValidationRejected, "%s", body)
	default:
		return domain.NewPublishError(domain.PublishErrUnknown, "unexpected status %d", status)
	}
}
