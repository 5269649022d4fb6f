package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"news-hub/domain"

	"github.com/jackc/pgx/v5"
)

// FilterRepository implementation.
type filterRepository struct {
	db     Pool
	logger *slog.Logger
}

// NewFilterRepository creates a new filter repository.
func NewFilterRepository(db Pool, logger *slog.Logger) FilterRepository {
	return &filterRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert writes the user's scalar filter row. Only non-nil fields are
// replaced; the rest keep their stored values, so repeated partial
// updates converge instead of erasing each other.
func (r *filterRepository) Upsert(ctx context.Context, filter *domain.Filter) error {
	if filter == nil {
		return fmt.Errorf("filter cannot be nil")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to upsert filter: database connection is nil")
	}

	query := `
		INSERT INTO filters (user_id, tag, category, source, language, country, content_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			tag = COALESCE(EXCLUDED.tag, filters.tag),
			category = COALESCE(EXCLUDED.category, filters.category),
			source = COALESCE(EXCLUDED.source, filters.source),
			language = COALESCE(EXCLUDED.language, filters.language),
			country = COALESCE(EXCLUDED.country, filters.country),
			content_type = COALESCE(EXCLUDED.content_type, filters.content_type)
	`

	_, err := r.db.Exec(ctx, query,
		filter.UserID, filter.Tag, filter.Category, filter.Source,
		filter.Language, filter.Country, filter.ContentType)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		r.logger.ErrorContext(ctx, "failed to upsert filter", "error", err, "user_id", filter.UserID)
		return fmt.Errorf("failed to upsert filter: %w", err)
	}

	r.logger.InfoContext(ctx, "filter updated", "user_id", filter.UserID)

	return nil
}

// Get returns the user's filter row, or an unconstrained filter when no
// row exists.
func (r *filterRepository) Get(ctx context.Context, userID int64) (*domain.Filter, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to get filter: database connection is nil")
	}

	query := `
		SELECT user_id, tag, category, source, language, country, content_type
		FROM filters WHERE user_id = $1
	`

	var f domain.Filter
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&f.UserID, &f.Tag, &f.Category, &f.Source, &f.Language, &f.Country, &f.ContentType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.Filter{UserID: userID}, nil
		}
		r.logger.ErrorContext(ctx, "failed to get filter", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get filter: %w", err)
	}

	return &f, nil
}

// Reset drops the filter row entirely. Deleting an absent row is not an
// error.
func (r *filterRepository) Reset(ctx context.Context, userID int64) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to reset filter: database connection is nil")
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM filters WHERE user_id = $1`, userID); err != nil {
		r.logger.ErrorContext(ctx, "failed to reset filter", "error", err, "user_id", userID)
		return fmt.Errorf("failed to reset filter: %w", err)
	}

	r.logger.InfoContext(ctx, "filter reset", "user_id", userID)

	return nil
}

// AddBlock inserts one blocklist entry; duplicates are silently kept.
func (r *filterRepository) AddBlock(ctx context.Context, block *domain.Block) error {
	if block == nil {
		return fmt.Errorf("block cannot be nil")
	}

	if !domain.ValidBlockType(block.BlockType) {
		return domain.ErrInvalidBlockType
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to add block: database connection is nil")
	}

	query := `
		INSERT INTO blocks (user_id, block_type, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, block_type, value) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, block.UserID, block.BlockType, block.Value); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		r.logger.ErrorContext(ctx, "failed to add block", "error", err, "user_id", block.UserID)
		return fmt.Errorf("failed to add block: %w", err)
	}

	r.logger.InfoContext(ctx, "block added",
		"user_id", block.UserID, "block_type", block.BlockType, "value", block.Value)

	return nil
}

// GetBlocks returns the user's blocklist grouped by scope.
func (r *filterRepository) GetBlocks(ctx context.Context, userID int64) (map[string][]string, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to get blocks: database connection is nil")
	}

	rows, err := r.db.Query(ctx,
		`SELECT block_type, value FROM blocks WHERE user_id = $1 ORDER BY block_type, value`, userID)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to get blocks", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get blocks: %w", err)
	}
	defer rows.Close()

	blocks := make(map[string][]string)
	for rows.Next() {
		var blockType, value string
		if err := rows.Scan(&blockType, &value); err != nil {
			return nil, fmt.Errorf("failed to scan block: %w", err)
		}
		blocks[blockType] = append(blocks[blockType], value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blocks: %w", err)
	}

	return blocks, nil
}
