package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"news-hub/domain"

	"github.com/jackc/pgx/v5"
)

// SummaryRepository implementation. Summaries are generated once per
// item and reused; the unique news_id key is the cache key.
type summaryRepository struct {
	db     Pool
	logger *slog.Logger
}

// NewSummaryRepository creates a new summary repository.
func NewSummaryRepository(db Pool, logger *slog.Logger) SummaryRepository {
	return &summaryRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the cached summary for an item, or ErrSummaryNotCached.
func (r *summaryRepository) Get(ctx context.Context, newsID int64) (string, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return "", fmt.Errorf("failed to get summary: database connection is nil")
	}

	var summary string
	err := r.db.QueryRow(ctx,
		`SELECT summary FROM summaries WHERE news_id = $1`, newsID).Scan(&summary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrSummaryNotCached
		}
		r.logger.ErrorContext(ctx, "failed to get summary", "error", err, "news_id", newsID)
		return "", fmt.Errorf("failed to get summary: %w", err)
	}

	return summary, nil
}

// Upsert stores a generated summary; regeneration replaces the cache.
func (r *summaryRepository) Upsert(ctx context.Context, newsID int64, summary string) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to store summary: database connection is nil")
	}

	query := `
		INSERT INTO summaries (news_id, summary)
		VALUES ($1, $2)
		ON CONFLICT (news_id) DO UPDATE SET summary = EXCLUDED.summary
	`

	if _, err := r.db.Exec(ctx, query, newsID, summary); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNewsNotFound
		}
		r.logger.ErrorContext(ctx, "failed to store summary", "error", err, "news_id", newsID)
		return fmt.Errorf("failed to store summary: %w", err)
	}

	return nil
}
