package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/postroom/postroom-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Author returns a distinct test identity.
func Author() domain.Identity {
	suffix := uniqueSuffix()
	userID := uuid.New()
	return domain.Identity{
		UserID: &userID,
		Email:  "author-" + suffix + "@example.com",
		Name:   "Author " + suffix,
	}
}

// SeedDraft inserts a draft row with the given status and returns the domain.Draft.
// The draft is a proofreading-route LinkedIn post authored by a fresh identity.
func SeedDraft(t *testing.T, pool *pgxpool.Pool, status domain.Status) domain.Draft {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	draft := domain.Draft{
		ID:              uuid.New(),
		Channel:         domain.ChannelLinkedIn,
		OriginalContent: "seeded draft " + uniqueSuffix(),
		Route:           domain.RouteProofreading,
		Status:          status,
		Author:          Author(),
		CreatedAt:       now,
	}

	insertDraft(t, pool, ctx, &draft)
	return draft
}

// SeedScheduledDraft inserts a scheduled-route draft due at the given instant.
func SeedScheduledDraft(t *testing.T, pool *pgxpool.Pool, at time.Time) domain.Draft {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	at = at.UTC().Truncate(time.Microsecond)
	tz := "UTC"
	draft := domain.Draft{
		ID:                uuid.New(),
		Channel:           domain.ChannelLinkedIn,
		OriginalContent:   "seeded scheduled draft " + uniqueSuffix(),
		Route:             domain.RouteScheduled,
		Status:            domain.StatusScheduled,
		Author:            Author(),
		ScheduledFor:      &at,
		ScheduledTimezone: &tz,
		CreatedAt:         now,
	}

	insertDraft(t, pool, ctx, &draft)
	return draft
}

func insertDraft(t *testing.T, pool *pgxpool.Pool, ctx context.Context, draft *domain.Draft) {
	t.Helper()

	var media []byte
	if draft.Media != nil {
		var err error
		media, err = json.Marshal(draft.Media)
		if err != nil {
			t.Fatalf("testhelper: marshal media: %v", err)
		}
	}

	var generation []byte
	if draft.Generation != nil {
		var err error
		generation, err = json.Marshal(draft.Generation)
		if err != nil {
			t.Fatalf("testhelper: marshal generation: %v", err)
		}
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO post_drafts (
			id, channel, original_content, current_content, media, route, status,
			author_user_id, author_email, author_name,
			scheduled_for, scheduled_timezone, campaign_id, inspiration_post_id,
			generation, external_id, external_url, failure_reason,
			created_at, last_edited_at, approved_at, published_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		draft.ID, string(draft.Channel), draft.OriginalContent, draft.CurrentContent, media,
		string(draft.Route), string(draft.Status),
		draft.Author.UserID, draft.Author.Email, draft.Author.Name,
		draft.ScheduledFor, draft.ScheduledTimezone, draft.CampaignID, draft.InspirationID,
		generation, draft.ExternalID, draft.ExternalURL, draft.FailureReason,
		draft.CreatedAt, draft.LastEditedAt, draft.ApprovedAt, draft.PublishedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: insert draft: %v", err)
	}
}

// SeedPublishedPost inserts a published_posts row for the given channel with
// the given like count.
func SeedPublishedPost(t *testing.T, pool *pgxpool.Pool, channel domain.Channel, likes int) domain.PublishedPost {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	post := domain.PublishedPost{
		ID:          uuid.New(),
		Channel:     channel,
		Content:     "published post " + suffix,
		ExternalID:  "ext-" + suffix,
		ExternalURL: "https://example.com/posts/" + suffix,
		AuthorEmail: "author-" + suffix + "@example.com",
		AuthorName:  "Author " + suffix,
		LikesCount:  likes,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO published_posts (id, draft_id, channel, content, external_id, external_url, author_email, author_name, likes_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		post.ID, post.DraftID, string(post.Channel), post.Content, post.ExternalID, post.ExternalURL,
		post.AuthorEmail, post.AuthorName, post.LikesCount, post.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: insert published post: %v", err)
	}

	return post
}
