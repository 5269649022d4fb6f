package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"news-hub/domain"
)

// FeedRepository implementation. Every selection path composes one SQL
// statement; candidates are never filtered in process memory.
type feedRepository struct {
	db     Pool
	logger *slog.Logger
}

// NewFeedRepository creates a new feed repository.
func NewFeedRepository(db Pool, logger *slog.Logger) FeedRepository {
	return &feedRepository{
		db:     db,
		logger: logger,
	}
}

// predicateBuilder accumulates WHERE fragments with positional
// parameters. Fragments are code constants; every caller-supplied value
// travels through the args slice, never through string interpolation.
type predicateBuilder struct {
	conds []string
	args  []any
}

// add appends one fragment, rewriting each ? to the next positional
// placeholder.
func (b *predicateBuilder) add(clause string, vals ...any) {
	for _, v := range vals {
		b.args = append(b.args, v)
		clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", len(b.args)), 1)
	}
	b.conds = append(b.conds, clause)
}

// bind registers a value outside the WHERE clause (LIMIT, OFFSET) and
// returns its placeholder.
func (b *predicateBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *predicateBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, "\n\t\t\tAND ")
}

// combined tag/topic set of an item; editorial tags and classifier
// topics share one matching vocabulary.
const topicSet = "(n.tags || COALESCE(n.ai_classified_topics, '{}'))"

// Resolve runs the personalized selection for one user. Predicate order
// is fixed: base visibility, positive filters, blocklist, safe mode,
// seen-set, then stable ordering and pagination.
func (r *feedRepository) Resolve(ctx context.Context, q *domain.FeedQuery) ([]*domain.News, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to resolve feed: database connection is nil")
	}

	b := &predicateBuilder{}

	// Base visibility: live, non-duplicate, approved.
	b.add("n.expires_at > NOW()")
	b.add("n.is_duplicate = FALSE")
	b.add("n.moderation_status = ?", domain.ModerationApproved)

	if q.PublishedIn > 0 {
		b.add("n.published_at >= ?", time.Now().Add(-q.PublishedIn))
	}

	switch {
	case q.Feed != nil:
		applyCustomFeed(b, q.Feed)
	case !q.Filter.Empty():
		applyScalarFilter(b, q.Filter)
	}

	applyBlocks(b, q.Blocks)

	if q.SafeMode {
		b.add("(n.tone IS NULL OR n.tone NOT IN (?, ?))", domain.ToneNegative, domain.ToneAnxious)
		b.add("NOT ("+topicSet+" && ?)", domain.RestrictedTags)
	}

	if q.ExcludeSeen {
		b.add(`NOT EXISTS (
				SELECT 1 FROM user_news_views v
				WHERE v.user_id = ? AND v.news_id = n.id AND v.viewed
			)`, q.UserID)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM news n
		%s
		ORDER BY n.published_at DESC, n.id DESC
		LIMIT %s OFFSET %s
	`, newsColumns, b.where(), b.bind(q.Limit), b.bind(q.Offset))

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to resolve feed", "error", err, "user_id", q.UserID)
		return nil, fmt.Errorf("failed to resolve feed: %w", err)
	}

	items, err := collectNews(rows)
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "feed resolved",
		"user_id", q.UserID, "items", len(items), "limit", q.Limit, "offset", q.Offset)

	return items, nil
}

// applyCustomFeed translates the feed's tagged filters. Values within a
// kind are alternatives; kinds stack.
func applyCustomFeed(b *predicateBuilder, feed *domain.CustomFeed) {
	for _, f := range feed.Filters {
		if len(f.Values) == 0 {
			continue
		}
		switch f.Kind {
		case domain.FeedFilterTags:
			b.add(topicSet+" && ?", f.Values)
		case domain.FeedFilterSources:
			b.add("n.source = ANY(?)", f.Values)
		case domain.FeedFilterLanguages:
			b.add("n.lang = ANY(?)", f.Values)
		case domain.FeedFilterCountries:
			b.add("n.country = ANY(?)", f.Values)
		case domain.FeedFilterContentTypes:
			b.add("n.media_type = ANY(?)", f.Values)
		}
	}
}

// applyScalarFilter translates the single-row filter; nil fields impose
// nothing.
func applyScalarFilter(b *predicateBuilder, f *domain.Filter) {
	if f.Tag != nil {
		b.add("? = ANY("+topicSet+")", *f.Tag)
	}
	if f.Category != nil {
		b.add("? = ANY("+topicSet+")", *f.Category)
	}
	if f.Source != nil {
		b.add("n.source = ?", *f.Source)
	}
	if f.Language != nil {
		b.add("n.lang = ?", *f.Language)
	}
	if f.Country != nil {
		b.add("n.country = ?", *f.Country)
	}
	if f.ContentType != nil {
		b.add("n.media_type = ?", *f.ContentType)
	}
}

// applyBlocks subtracts blocked attributes. Blocks dominate every
// positive filter, including custom feeds that include the same value.
func applyBlocks(b *predicateBuilder, blocks map[string][]string) {
	if values := blocks[domain.BlockTag]; len(values) > 0 {
		b.add("NOT ("+topicSet+" && ?)", values)
	}
	if values := blocks[domain.BlockCategory]; len(values) > 0 {
		b.add("NOT ("+topicSet+" && ?)", values)
	}
	if values := blocks[domain.BlockSource]; len(values) > 0 {
		b.add("n.source <> ALL(?)", values)
	}
	if values := blocks[domain.BlockLanguage]; len(values) > 0 {
		b.add("n.lang <> ALL(?)", values)
	}
}

// Search matches a substring against title and content plus an exact
// match inside the tag/topic set.
func (r *feedRepository) Search(ctx context.Context, query string, limit, offset int) ([]*domain.News, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to search news: database connection is nil")
	}

	sql := `
		SELECT ` + newsColumns + `
		FROM news n
		WHERE n.expires_at > NOW()
			AND n.is_duplicate = FALSE
			AND n.moderation_status = 'approved'
			AND (n.title ILIKE '%' || $1 || '%'
				OR n.content ILIKE '%' || $1 || '%'
				OR $1 = ANY(` + topicSet + `))
		ORDER BY n.published_at DESC, n.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, sql, query, limit, offset)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to search news", "error", err)
		return nil, fmt.Errorf("failed to search news: %w", err)
	}

	return collectNews(rows)
}

// PublicList is the shared, non-personalized listing with optional
// topic, language, and tone narrowing.
func (r *feedRepository) PublicList(ctx context.Context, q *domain.PublicQuery) ([]*domain.News, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to list news: database connection is nil")
	}

	b := &predicateBuilder{}
	b.add("n.expires_at > NOW()")
	b.add("n.is_duplicate = FALSE")
	b.add("n.moderation_status = ?", domain.ModerationApproved)

	if q.Topic != "" {
		b.add("? = ANY("+topicSet+")", q.Topic)
	}
	if q.Lang != "" {
		b.add("n.lang = ?", q.Lang)
	}
	if q.Tone != "" {
		b.add("n.tone = ?", q.Tone)
	}

	sql := fmt.Sprintf(`
		SELECT %s
		FROM news n
		%s
		ORDER BY n.published_at DESC, n.id DESC
		LIMIT %s OFFSET %s
	`, newsColumns, b.where(), b.bind(q.Limit), b.bind(q.Offset))

	rows, err := r.db.Query(ctx, sql, b.args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list news", "error", err)
		return nil, fmt.Errorf("failed to list news: %w", err)
	}

	return collectNews(rows)
}
