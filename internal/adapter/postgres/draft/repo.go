// Package draft implements the post draft repository using PostgreSQL.
// It owns the post_drafts table: creation, lifecycle status writes, and the
// atomic publish claim used to keep concurrent publishers off the same row.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/postroom/postroom-backend/internal/adapter/postgres"
	"github.com/postroom/postroom-backend/internal/domain"
)

// qb builds queries with PostgreSQL ($N) placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "post_drafts"

var columns = []string{
	"id", "channel", "original_content", "current_content", "media",
	"route", "status",
	"author_user_id", "author_email", "author_name",
	"scheduled_for", "scheduled_timezone",
	"campaign_id", "inspiration_post_id", "generation",
	"external_id", "external_url", "failure_reason",
	"created_at", "last_edited_at", "approved_at", "published_at",
}

// Repo provides draft persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new draft repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a draft by primary key.
// Returns domain.ErrNotFound if the draft does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get draft query: %w", err)
	}

	d, err := scanDraft(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "draft", id)
	}

	return d, nil
}

// List returns drafts matching the filter, newest first.
// Returns an empty slice when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.DraftFilter) ([]*domain.Draft, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := qb.Select(columns...).From(table).OrderBy("created_at DESC")
	if filter.Channel != nil {
		q = q.Where(squirrel.Eq{"channel": string(*filter.Channel)})
	}
	if filter.Route != nil {
		q = q.Where(squirrel.Eq{"route": string(*filter.Route)})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.CampaignID != nil {
		q = q.Where(squirrel.Eq{"campaign_id": *filter.CampaignID})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list drafts query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	return collectDrafts(rows)
}

// ListDue returns scheduled drafts whose scheduled_for is at or before now,
// oldest due first, capped at limit. A draft due exactly at now is included.
func (r *Repo) ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.Draft, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).From(table).
		Where(squirrel.Eq{"status": string(domain.StatusScheduled)}).
		Where(squirrel.LtOrEq{"scheduled_for": now}).
		OrderBy("scheduled_for ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list due query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list due drafts: %w", err)
	}
	defer rows.Close()

	return collectDrafts(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new draft and returns the persisted domain.Draft.
func (r *Repo) Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	media, err := marshalMedia(d.Media)
	if err != nil {
		return nil, fmt.Errorf("marshal media: %w", err)
	}
	generation, err := marshalGeneration(d.Generation)
	if err != nil {
		return nil, fmt.Errorf("marshal generation: %w", err)
	}

	sql, args, err := qb.Insert(table).Columns(columns...).Values(
		d.ID, string(d.Channel), d.OriginalContent, d.CurrentContent, media,
		string(d.Route), string(d.Status),
		d.Author.UserID, d.Author.Email, d.Author.Name,
		d.ScheduledFor, d.ScheduledTimezone,
		d.CampaignID, d.InspirationID, generation,
		d.ExternalID, d.ExternalURL, d.FailureReason,
		d.CreatedAt, d.LastEditedAt, d.ApprovedAt, d.PublishedAt,
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert draft query: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return nil, mapError(err, "draft", d.ID)
	}

	return r.GetByID(ctx, d.ID)
}

// Claim atomically moves a draft from the given status to publishing.
// Returns domain.ErrInvalidTransition if the draft was not in that status,
// which is how a concurrent publisher discovers it lost the race.
func (r *Repo) Claim(ctx context.Context, id uuid.UUID, from domain.Status) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update(table).
		Set("status", string(domain.StatusPublishing)).
		Where(squirrel.Eq{"id": id, "status": string(from)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build claim query: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "draft", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: claim from %s: %w", id, from, domain.ErrInvalidTransition)
	}

	return nil
}

// MarkApproved moves a draft to approved and stamps approved_at.
func (r *Repo) MarkApproved(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.update(ctx, id, qb.Update(table).
		Set("status", string(domain.StatusApproved)).
		Set("approved_at", at).
		Where(squirrel.Eq{"id": id}))
}

// MarkRejected moves a draft to rejected, a terminal state. The reviewer's
// reason, if any, is stored as the reason the draft will not ship.
func (r *Repo) MarkRejected(ctx context.Context, id uuid.UUID, reason *string) error {
	return r.update(ctx, id, qb.Update(table).
		Set("status", string(domain.StatusRejected)).
		Set("failure_reason", reason).
		Where(squirrel.Eq{"id": id}))
}

// MarkPublished finishes a successful publish: the draft becomes published
// and records the external post reference. Any stale failure reason is cleared.
func (r *Repo) MarkPublished(ctx context.Context, id uuid.UUID, externalID, externalURL string, at time.Time) error {
	return r.update(ctx, id, qb.Update(table).
		Set("status", string(domain.StatusPublished)).
		Set("external_id", externalID).
		Set("external_url", externalURL).
		Set("published_at", at).
		Set("failure_reason", nil).
		Where(squirrel.Eq{"id": id}))
}

// MarkFailed finishes an unsuccessful publish with a human-readable reason.
// scheduled_for is left untouched so the original intent stays visible.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	return r.update(ctx, id, qb.Update(table).
		Set("status", string(domain.StatusFailed)).
		Set("failure_reason", reason).
		Where(squirrel.Eq{"id": id}))
}

// UpdateContent writes a proofreading edit: current_content overrides the
// immutable original and last_edited_at is stamped.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, content string, at time.Time) error {
	return r.update(ctx, id, qb.Update(table).
		Set("current_content", content).
		Set("last_edited_at", at).
		Where(squirrel.Eq{"id": id}))
}

// SetSchedule moves a draft to scheduled for the given instant. Used both for
// the initial pending_review -> scheduled transition and for re-scheduling a
// failed draft, so the failure reason is always cleared. The route follows:
// a draft scheduled after the fact is a scheduled draft from then on.
func (r *Repo) SetSchedule(ctx context.Context, id uuid.UUID, at time.Time, timezone *string) error {
	return r.update(ctx, id, qb.Update(table).
		Set("route", string(domain.RouteScheduled)).
		Set("status", string(domain.StatusScheduled)).
		Set("scheduled_for", at).
		Set("scheduled_timezone", timezone).
		Set("failure_reason", nil).
		Where(squirrel.Eq{"id": id}))
}

// Delete removes a draft. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete draft query: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "draft", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// update runs a builder expecting exactly one affected row.
func (r *Repo) update(ctx context.Context, id uuid.UUID, q squirrel.UpdateBuilder) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update draft query: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "draft", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

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

// ---------------------------------------------------------------------------
// Mapping helpers: rows -> domain
// ---------------------------------------------------------------------------

func scanDraft(row pgx.Row) (*domain.Draft, error) {
	var (
		d          domain.Draft
		channel    string
		route      string
		status     string
		media      []byte
		generation []byte
	)

	err := row.Scan(
		&d.ID, &channel, &d.OriginalContent, &d.CurrentContent, &media,
		&route, &status,
		&d.Author.UserID, &d.Author.Email, &d.Author.Name,
		&d.ScheduledFor, &d.ScheduledTimezone,
		&d.CampaignID, &d.InspirationID, &generation,
		&d.ExternalID, &d.ExternalURL, &d.FailureReason,
		&d.CreatedAt, &d.LastEditedAt, &d.ApprovedAt, &d.PublishedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Channel = domain.Channel(channel)
	d.Route = domain.Route(route)
	d.Status = domain.Status(status)

	if len(media) > 0 {
		var m domain.Media
		if err := json.Unmarshal(media, &m); err != nil {
			return nil, fmt.Errorf("unmarshal media: %w", err)
		}
		d.Media = &m
	}
	if len(generation) > 0 {
		var g domain.GenerationMetadata
		if err := json.Unmarshal(generation, &g); err != nil {
			return nil, fmt.Errorf("unmarshal generation: %w", err)
		}
		d.Generation = &g
	}

	return &d, nil
}

func collectDrafts(rows pgx.Rows) ([]*domain.Draft, error) {
	drafts := make([]*domain.Draft, 0)
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drafts: %w", err)
	}

	return drafts, nil
}

// marshalMedia serializes the optional attachment (nil -> NULL).
func marshalMedia(m *domain.Media) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// marshalGeneration serializes generation metadata (nil -> NULL).
func marshalGeneration(g *domain.GenerationMetadata) ([]byte, error) {
	if g == nil {
		return nil, nil
	}
	return json.Marshal(g)
}
