// Package history implements the append-only edit history repository.
// Every proofreading edit records the content snapshot it replaced.
package history

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

const table = "post_edit_history"

var columns = []string{
	"id", "draft_id",
	"editor_user_id", "editor_email", "editor_name",
	"previous_content", "new_content", "summary", "created_at",
}

// Repo provides edit history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new edit history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends an edit history entry. Entries are never updated or deleted
// individually; the table only grows (rows cascade away with their draft).
func (r *Repo) Create(ctx context.Context, e *domain.EditHistoryEntry) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).Columns(columns...).Values(
		e.ID, e.DraftID,
		e.Editor.UserID, e.Editor.Email, e.Editor.Name,
		e.PreviousContent, e.NewContent, e.Summary, e.CreatedAt,
	).ToSql()
	if err != nil {
		return fmt.Errorf("build insert history query: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "edit_history", e.ID)
	}

	return nil
}

// ListByDraft returns all history entries for a draft in creation order.
// Returns an empty slice for a draft with no edits.
func (r *Repo) ListByDraft(ctx context.Context, draftID uuid.UUID) ([]*domain.EditHistoryEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).From(table).
		Where(squirrel.Eq{"draft_id": draftID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list history query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list edit_history: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.EditHistoryEntry, 0)
	for rows.Next() {
		var e domain.EditHistoryEntry
		err := rows.Scan(
			&e.ID, &e.DraftID,
			&e.Editor.UserID, &e.Editor.Email, &e.Editor.Name,
			&e.PreviousContent, &e.NewContent, &e.Summary, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan edit_history: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate edit_history: %w", err)
	}

	return entries, nil
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
