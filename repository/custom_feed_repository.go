package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"news-hub/domain"

	"github.com/jackc/pgx/v5"
)

// CustomFeedRepository implementation. Feed filters are stored as a
// versioned JSON document so new kinds can be added without migrations.
type customFeedRepository struct {
	db     Pool
	logger *slog.Logger
}

// NewCustomFeedRepository creates a new custom feed repository.
func NewCustomFeedRepository(db Pool, logger *slog.Logger) CustomFeedRepository {
	return &customFeedRepository{
		db:     db,
		logger: logger,
	}
}

// feedFiltersDoc is the persisted JSON shape.
type feedFiltersDoc struct {
	Version int                 `json:"version"`
	Filters []domain.FeedFilter `json:"filters"`
}

const feedFiltersVersion = 1

func marshalFeedFilters(filters []domain.FeedFilter) ([]byte, error) {
	return json.Marshal(feedFiltersDoc{Version: feedFiltersVersion, Filters: filters})
}

func unmarshalFeedFilters(raw []byte) ([]domain.FeedFilter, error) {
	var doc feedFiltersDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode feed filters: %w", err)
	}
	return doc.Filters, nil
}

// Create stores a named feed. Names are unique per owner; a clash maps
// to ErrDuplicateFeedName.
func (r *customFeedRepository) Create(ctx context.Context, feed *domain.CustomFeed) (int64, error) {
	if feed == nil {
		return 0, fmt.Errorf("feed cannot be nil")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return 0, fmt.Errorf("failed to create feed: database connection is nil")
	}

	doc, err := marshalFeedFilters(feed.Filters)
	if err != nil {
		return 0, fmt.Errorf("failed to encode feed filters: %w", err)
	}

	query := `
		INSERT INTO custom_feeds (user_id, feed_name, filters)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(ctx, query, feed.UserID, feed.Name, doc).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateFeedName
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrUserNotFound
		}
		r.logger.ErrorContext(ctx, "failed to create feed", "error", err, "user_id", feed.UserID)
		return 0, fmt.Errorf("failed to create feed: %w", err)
	}

	r.logger.InfoContext(ctx, "custom feed created",
		"feed_id", id, "user_id", feed.UserID, "feed_name", feed.Name)

	return id, nil
}

// GetByID fetches one feed definition.
func (r *customFeedRepository) GetByID(ctx context.Context, feedID int64) (*domain.CustomFeed, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to get feed: database connection is nil")
	}

	query := `SELECT id, user_id, feed_name, filters, created_at FROM custom_feeds WHERE id = $1`

	var feed domain.CustomFeed
	var raw []byte
	err := r.db.QueryRow(ctx, query, feedID).Scan(
		&feed.ID, &feed.UserID, &feed.Name, &raw, &feed.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFeedNotFound
		}
		r.logger.ErrorContext(ctx, "failed to get feed", "error", err, "feed_id", feedID)
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}

	if feed.Filters, err = unmarshalFeedFilters(raw); err != nil {
		return nil, err
	}

	return &feed, nil
}

// ListByUser returns the user's feeds, oldest first.
func (r *customFeedRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.CustomFeed, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to list feeds: database connection is nil")
	}

	query := `
		SELECT id, user_id, feed_name, filters, created_at
		FROM custom_feeds WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list feeds", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list feeds: %w", err)
	}
	defer rows.Close()

	var feeds []*domain.CustomFeed
	for rows.Next() {
		var feed domain.CustomFeed
		var raw []byte
		if err := rows.Scan(&feed.ID, &feed.UserID, &feed.Name, &raw, &feed.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feed: %w", err)
		}
		if feed.Filters, err = unmarshalFeedFilters(raw); err != nil {
			return nil, err
		}
		feeds = append(feeds, &feed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feeds: %w", err)
	}

	return feeds, nil
}
