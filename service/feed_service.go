// ABOUTME: This file assembles feed resolution inputs around the composed query
// ABOUTME: Loads user, active feed, filter, and blocks, then delegates to the repository
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"news-hub/config"
	"news-hub/domain"
	"news-hub/repository"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 100
)

type feedService struct {
	users   repository.UserRepository
	feeds   repository.FeedRepository
	filters repository.FilterRepository
	custom  repository.CustomFeedRepository
	news    repository.NewsRepository
	cfg     config.TrendingConfig
	logger  *slog.Logger
}

// NewFeedService creates the feed service.
func NewFeedService(
	users repository.UserRepository,
	feeds repository.FeedRepository,
	filters repository.FilterRepository,
	custom repository.CustomFeedRepository,
	news repository.NewsRepository,
	cfg config.TrendingConfig,
	logger *slog.Logger,
) FeedService {
	return &feedService{
		users:   users,
		feeds:   feeds,
		filters: filters,
		custom:  custom,
		news:    news,
		cfg:     cfg,
		logger:  logger,
	}
}

// CapLimit normalizes a caller-supplied page size.
func CapLimit(limit int) int {
	if limit <= 0 {
		return defaultFeedLimit
	}
	if limit > maxFeedLimit {
		return maxFeedLimit
	}
	return limit
}

// buildQuery loads everything resolution needs for one user. An unowned
// or deleted active feed behaves as if current_feed_id were null.
func (s *feedService) buildQuery(ctx context.Context, chatID int64) (*domain.FeedQuery, error) {
	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	q := &domain.FeedQuery{
		UserID:      user.ID,
		SafeMode:    user.SafeMode,
		ExcludeSeen: true,
	}

	if user.CurrentFeedID != nil {
		feed, err := s.custom.GetByID(ctx, *user.CurrentFeedID)
		switch {
		case errors.Is(err, domain.ErrFeedNotFound):
			// fall through to the scalar filter
		case err != nil:
			return nil, err
		case feed.UserID == user.ID:
			q.Feed = feed
		}
	}

	if q.Feed == nil {
		filter, err := s.filters.Get(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if !filter.Empty() {
			q.Filter = filter
		}
	}

	blocks, err := s.filters.GetBlocks(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(blocks) > 0 {
		q.Blocks = blocks
	}

	return q, nil
}

// Feed returns the user's personalized page.
func (s *feedService) Feed(ctx context.Context, chatID int64, limit, offset int) ([]*domain.News, error) {
	q, err := s.buildQuery(ctx, chatID)
	if err != nil {
		return nil, err
	}

	q.Limit = CapLimit(limit)
	if offset > 0 {
		q.Offset = offset
	}

	items, err := s.feeds.Resolve(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve feed: %w", err)
	}

	return items, nil
}

// Digest returns the user's items published inside the window. The
// scheduler excludes seen items so reruns never resend; the on-demand
// endpoint keeps them, a digest is a recap.
func (s *feedService) Digest(ctx context.Context, chatID int64, window time.Duration, limit int, excludeSeen bool) ([]*domain.News, error) {
	q, err := s.buildQuery(ctx, chatID)
	if err != nil {
		return nil, err
	}

	q.ExcludeSeen = excludeSeen
	q.PublishedIn = window
	q.Limit = CapLimit(limit)

	items, err := s.feeds.Resolve(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve digest: %w", err)
	}

	return items, nil
}

// Recommend returns a small candidate page through the same resolution
// path. The heuristic is freshness order; no ranking model.
func (s *feedService) Recommend(ctx context.Context, chatID int64, limit int) ([]*domain.News, error) {
	return s.Feed(ctx, chatID, CapLimit(limit), 0)
}

// Search runs a substring and topic match over visible items.
func (s *feedService) Search(ctx context.Context, query string, limit, offset int) ([]*domain.News, error) {
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	items, err := s.feeds.Search(ctx, query, CapLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search news: %w", err)
	}

	return items, nil
}

// Trending returns the top-K items by recent engagement.
func (s *feedService) Trending(ctx context.Context, limit int) ([]*domain.TrendingNews, error) {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	items, err := s.news.Trending(ctx, s.cfg.Window, s.cfg.RecencyHorizon, s.cfg.RatingWeight, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load trending: %w", err)
	}

	return items, nil
}

// Public returns the shared, non-personalized listing.
func (s *feedService) Public(ctx context.Context, q *domain.PublicQuery) ([]*domain.News, error) {
	if q == nil {
		q = &domain.PublicQuery{}
	}
	q.Limit = CapLimit(q.Limit)

	items, err := s.feeds.PublicList(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to load public news: %w", err)
	}

	return items, nil
}
