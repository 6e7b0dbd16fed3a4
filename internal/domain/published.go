package domain

import (
	"time"

	"github.com/google/uuid"
)

// PublishedPost is the side record emitted on every successful publish.
// It feeds the activity feed and serves as the pool of historical posts
// used as style examples for generation. It is owned outside the draft
// lifecycle: deleting a draft never touches its published record.
type PublishedPost struct {
	ID          uuid.UUID
	DraftID     *uuid.UUID
	Channel     Channel
	Content     string
	ExternalID  string
	ExternalURL string
	AuthorEmail string
	AuthorName  string
	LikesCount  int
	CreatedAt   time.Time
}
