package repository

import (
	"context"
	"fmt"
	"log/slog"

	"news-hub/domain"
)

// SourceRepository implementation.
type sourceRepository struct {
	db     Pool
	logger *slog.Logger
}

// NewSourceRepository creates a new source repository.
func NewSourceRepository(db Pool, logger *slog.Logger) SourceRepository {
	return &sourceRepository{
		db:     db,
		logger: logger,
	}
}

// Add registers an upstream source and credits the submitting user. A
// name or link clash maps to ErrDuplicateSource.
func (r *sourceRepository) Add(ctx context.Context, source *domain.Source) (int64, error) {
	if source == nil {
		return 0, fmt.Errorf("source cannot be nil")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return 0, fmt.Errorf("failed to add source: database connection is nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO sources (name, link, source_type, added_by_user_id, verified, reliability_score, status)
		VALUES ($1, $2, $3, $4, FALSE, 0.5, $5)
		RETURNING id
	`, source.Name, source.Link, source.SourceType, source.AddedByUserID, domain.SourceActive).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateSource
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrUserNotFound
		}
		r.logger.ErrorContext(ctx, "failed to add source", "error", err, "name", source.Name)
		return 0, fmt.Errorf("failed to add source: %w", err)
	}

	if source.AddedByUserID != nil {
		if err := incrementUserStat(ctx, tx, *source.AddedByUserID, "sources_added_count", 1); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.InfoContext(ctx, "source added", "source_id", id, "name", source.Name)

	return id, nil
}

// List returns all registered sources.
func (r *sourceRepository) List(ctx context.Context) ([]*domain.Source, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to list sources: database connection is nil")
	}

	query := `
		SELECT id, name, link, source_type, verified, reliability_score, status, added_by_user_id, created_at
		FROM sources
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list sources", "error", err)
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	defer rows.Close()

	var sources []*domain.Source
	for rows.Next() {
		var s domain.Source
		err := rows.Scan(&s.ID, &s.Name, &s.Link, &s.SourceType, &s.Verified,
			&s.ReliabilityScore, &s.Status, &s.AddedByUserID, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		sources = append(sources, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sources: %w", err)
	}

	return sources, nil
}
