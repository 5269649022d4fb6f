package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"news-hub/domain"

	"github.com/jackc/pgx/v5"
)

// NewsRepository implementation.
type newsRepository struct {
	db     Pool
	logger *slog.Logger
}

// NewNewsRepository creates a new news repository.
func NewNewsRepository(db Pool, logger *slog.Logger) NewsRepository {
	return &newsRepository{
		db:     db,
		logger: logger,
	}
}

const newsColumns = `n.id, n.title, n.content, n.lang, n.country, n.tags, n.source,
	n.source_type, n.link, n.media_type, n.file_id, n.published_at, n.expires_at,
	COALESCE(n.ai_classified_topics, '{}'), n.tone, n.sentiment_score,
	COALESCE(n.is_fake, FALSE), n.is_duplicate, n.moderation_status, n.created_at`

func scanNews(row pgx.Row) (*domain.News, error) {
	var n domain.News
	err := row.Scan(
		&n.ID, &n.Title, &n.Content, &n.Lang, &n.Country, &n.Tags, &n.Source,
		&n.SourceType, &n.Link, &n.MediaType, &n.FileID, &n.PublishedAt, &n.ExpiresAt,
		&n.AIClassifiedTopics, &n.Tone, &n.SentimentScore,
		&n.IsFake, &n.IsDuplicate, &n.ModerationStatus, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func collectNews(rows pgx.Rows) ([]*domain.News, error) {
	defer rows.Close()

	var items []*domain.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news: %w", err)
		}
		items = append(items, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read news rows: %w", err)
	}

	return items, nil
}

// Insert stores a freshly ingested item and returns its ID.
func (r *newsRepository) Insert(ctx context.Context, news *domain.News) (int64, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return 0, fmt.Errorf("failed to insert news: database connection is nil")
	}

	query := `
		INSERT INTO news (title, content, lang, country, tags, source, source_type,
			link, media_type, file_id, published_at, expires_at, is_duplicate, moderation_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, FALSE, $13)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		news.Title, news.Content, news.Lang, news.Country, news.Tags,
		news.Source, news.SourceType, news.Link, news.MediaType, news.FileID,
		news.PublishedAt, news.ExpiresAt, news.ModerationStatus,
	).Scan(&id)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to insert news", "error", err, "source", news.Source)
		return 0, fmt.Errorf("failed to insert news: %w", err)
	}

	r.logger.InfoContext(ctx, "news inserted", "news_id", id, "source", news.Source)

	return id, nil
}

// GetByID fetches one item regardless of visibility state.
func (r *newsRepository) GetByID(ctx context.Context, newsID int64) (*domain.News, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to get news: database connection is nil")
	}

	n, err := scanNews(r.db.QueryRow(ctx,
		`SELECT `+newsColumns+` FROM news n WHERE n.id = $1`, newsID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNewsNotFound
		}
		r.logger.ErrorContext(ctx, "failed to get news", "error", err, "news_id", newsID)
		return nil, fmt.Errorf("failed to get news: %w", err)
	}

	return n, nil
}

// SetTopics stores classifier output. The write is conditional on the
// column still being empty, so enrichment re-runs never clobber data.
func (r *newsRepository) SetTopics(ctx context.Context, newsID int64, topics []string) error {
	if r.db == nil {
		return fmt.Errorf("failed to set topics: database connection is nil")
	}

	_, err := r.db.Exec(ctx,
		`UPDATE news SET ai_classified_topics = $2 WHERE id = $1 AND ai_classified_topics IS NULL`,
		newsID, topics)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to set topics", "error", err, "news_id", newsID)
		return fmt.Errorf("failed to set topics: %w", err)
	}

	return nil
}

// SetSentiment stores the tone label and score, first write wins.
func (r *newsRepository) SetSentiment(ctx context.Context, newsID int64, tone string, score float64) error {
	if r.db == nil {
		return fmt.Errorf("failed to set sentiment: database connection is nil")
	}

	_, err := r.db.Exec(ctx,
		`UPDATE news SET tone = $2, sentiment_score = $3 WHERE id = $1 AND tone IS NULL`,
		newsID, tone, score)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to set sentiment", "error", err, "news_id", newsID)
		return fmt.Errorf("failed to set sentiment: %w", err)
	}

	return nil
}

// SetDuplicate flags an item as repeating earlier content.
func (r *newsRepository) SetDuplicate(ctx context.Context, newsID int64, isDuplicate bool) error {
	if r.db == nil {
		return fmt.Errorf("failed to set duplicate flag: database connection is nil")
	}

	_, err := r.db.Exec(ctx,
		`UPDATE news SET is_duplicate = $2 WHERE id = $1`, newsID, isDuplicate)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to set duplicate flag", "error", err, "news_id", newsID)
		return fmt.Errorf("failed to set duplicate flag: %w", err)
	}

	return nil
}

// SetFake stores the fact-check verdict and its confidence, first write
// wins.
func (r *newsRepository) SetFake(ctx context.Context, newsID int64, isFake bool, confidence float64) error {
	if r.db == nil {
		return fmt.Errorf("failed to set fake flag: database connection is nil")
	}

	_, err := r.db.Exec(ctx,
		`UPDATE news SET is_fake = $2, fake_confidence = $3 WHERE id = $1 AND is_fake IS NULL`, newsID, isFake, confidence)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to set fake flag", "error", err, "news_id", newsID)
		return fmt.Errorf("failed to set fake flag: %w", err)
	}

	return nil
}

// GetVerdict returns the fact-check state of one item.
func (r *newsRepository) GetVerdict(ctx context.Context, newsID int64) (*domain.FakeVerdict, error) {
	if r.db == nil {
		return nil, fmt.Errorf("failed to get verdict: database connection is nil")
	}

	var isFake *bool
	var confidence *float64
	var source string
	err := r.db.QueryRow(ctx,
		`SELECT is_fake, fake_confidence, source FROM news WHERE id = $1`, newsID).Scan(&isFake, &confidence, &source)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get verdict: %w", err)
	}

	if isFake == nil {
		return nil, domain.ErrVerdictNotAvailable
	}

	verdict := &domain.FakeVerdict{IsFake: *isFake, CheckedBy: source}
	if confidence != nil {
		verdict.Confidence = *confidence
	}

	return verdict, nil
}

// Trending scores recent approved items by views plus weighted ratings
// inside the configured window.
func (r *newsRepository) Trending(ctx context.Context, window, horizon time.Duration, ratingWeight float64, limit int) ([]*domain.TrendingNews, error) {
	if r.db == nil {
		return nil, fmt.Errorf("failed to get trending: database connection is nil")
	}

	query := `
		SELECT ` + newsColumns + `,
			COALESCE(v.views, 0) + $1 * COALESCE(rt.avg_rating, 0) AS trend_score
		FROM news n
		LEFT JOIN (
			SELECT news_id, COUNT(*) AS views
			FROM interactions
			WHERE action = 'view' AND created_at > $2
			GROUP BY news_id
		) v ON v.news_id = n.id
		LEFT JOIN (
			SELECT news_id, AVG(value) AS avg_rating
			FROM ratings
			WHERE created_at > $2
			GROUP BY news_id
		) rt ON rt.news_id = n.id
		WHERE n.expires_at > NOW()
			AND n.is_duplicate = FALSE
			AND n.moderation_status = 'approved'
			AND n.published_at > $3
		ORDER BY trend_score DESC, n.published_at DESC, n.id DESC
		LIMIT $4
	`

	now := time.Now()
	rows, err := r.db.Query(ctx, query,
		ratingWeight, now.Add(-window), now.Add(-horizon), limit)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to query trending", "error", err)
		return nil, fmt.Errorf("failed to query trending: %w", err)
	}
	defer rows.Close()

	var items []*domain.TrendingNews
	for rows.Next() {
		var t domain.TrendingNews
		err := rows.Scan(
			&t.ID, &t.Title, &t.Content, &t.Lang, &t.Country, &t.Tags, &t.Source,
			&t.SourceType, &t.Link, &t.MediaType, &t.FileID, &t.PublishedAt, &t.ExpiresAt,
			&t.AIClassifiedTopics, &t.Tone, &t.SentimentScore,
			&t.IsFake, &t.IsDuplicate, &t.ModerationStatus, &t.CreatedAt,
			&t.TrendScore,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trending row: %w", err)
		}
		items = append(items, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trending rows: %w", err)
	}

	return items, nil
}

// ArchiveExpired copies expired items into archived_news. The anti-join
// on original_news_id makes the copy idempotent, so a crashed sweep can
// simply run again.
func (r *newsRepository) ArchiveExpired(ctx context.Context) (int64, error) {
	if r.db == nil {
		return 0, fmt.Errorf("failed to archive news: database connection is nil")
	}

	query := `
		INSERT INTO archived_news (original_news_id, title, content, lang, country,
			tags, source, source_type, link, published_at, expired_at)
		SELECT n.id, n.title, n.content, n.lang, n.country,
			n.tags, n.source, n.source_type, n.link, n.published_at, n.expires_at
		FROM news n
		WHERE n.expires_at < NOW()
			AND NOT EXISTS (
				SELECT 1 FROM archived_news a WHERE a.original_news_id = n.id
			)
	`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to archive expired news", "error", err)
		return 0, fmt.Errorf("failed to archive expired news: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteExpiredUnbookmarked removes expired items nobody saved. Must run
// after ArchiveExpired; bookmarked rows are always kept.
func (r *newsRepository) DeleteExpiredUnbookmarked(ctx context.Context) (int64, error) {
	if r.db == nil {
		return 0, fmt.Errorf("failed to delete expired news: database connection is nil")
	}

	// The archived_news guard means a row that slipped past a failed
	// archive pass survives until the next sweep picks it up.
	query := `
		DELETE FROM news n
		WHERE n.expires_at < NOW()
			AND NOT EXISTS (
				SELECT 1 FROM bookmarks b WHERE b.news_id = n.id
			)
			AND EXISTS (
				SELECT 1 FROM archived_news a WHERE a.original_news_id = n.id
			)
	`

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to delete expired news", "error", err)
		return 0, fmt.Errorf("failed to delete expired news: %w", err)
	}

	return tag.RowsAffected(), nil
}
