// Package channel defines the contract for social network publishers.
// Concrete adapters live in subpackages; the registry hands the publisher
// the right adapter for a draft's channel.
package channel

import (
	"context"

	"github.com/postroom/postroom-backend/internal/domain"
)

// Post is the payload handed to an adapter: the effective draft text plus an
// optional attachment.
type Post struct {
	Content string
	Media   *domain.Media
}

// Result references the post created on the external network.
type Result struct {
	ExternalID  string
	ExternalURL string
}

// Adapter publishes a post to one social network. Failures are reported as
// *domain.PublishError so the caller can record a classified reason.
type Adapter interface {
	Channel() domain.Channel
	Publish(ctx context.Context, post Post) (*Result, error)
}
