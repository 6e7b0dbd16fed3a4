// Package published implements the published posts repository. These rows are
// the durable record of what actually went out, and double as the corpus for
// style examples fed to generation prompts.
package published

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/postroom/postroom-backend/internal/adapter/postgres"
	"github.com/postroom/postroom-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "published_posts"

var columns = []string{
	"id", "draft_id", "channel", "content",
	"external_id", "external_url",
	"author_email", "author_name", "likes_count", "created_at",
}

// Repo provides published post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new published post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts the record of a successful publish.
func (r *Repo) Create(ctx context.Context, p *domain.PublishedPost) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).Columns(columns...).Values(
		p.ID, p.DraftID, string(p.Channel), p.Content,
		p.ExternalID, p.ExternalURL,
		p.AuthorEmail, p.AuthorName, p.LikesCount, p.CreatedAt,
	).ToSql()
	if err != nil {
		return fmt.Errorf("build insert published post query: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "published_post", p.ID)
	}

	return nil
}

// ListTopByChannel returns the channel's best performing posts (most liked,
// most recent first within a like count), capped at limit. Used to pick
// few-shot style examples for generation.
func (r *Repo) ListTopByChannel(ctx context.Context, channel domain.Channel, limit int) ([]*domain.PublishedPost, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).From(table).
		Where(squirrel.Eq{"channel": string(channel)}).
		OrderBy("likes_count DESC", "created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list top posts query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list published_posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.PublishedPost, 0)
	for rows.Next() {
		var (
			p  domain.PublishedPost
			ch string
		)
		err := rows.Scan(
			&p.ID, &p.DraftID, &ch, &p.Content,
			&p.ExternalID, &p.ExternalURL,
			&p.AuthorEmail, &p.AuthorName, &p.LikesCount, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan published_post: %w", err)
		}
		p.Channel = domain.Channel(ch)
		posts = append(posts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate published_posts: %w", err)
	}

	return posts, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
