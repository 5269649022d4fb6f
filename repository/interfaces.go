package repository

import (
	"context"
	"time"

	"news-hub/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/repository_mocks.go -package=mocks

// UserRepository handles user records and profile state.
type UserRepository interface {
	Register(ctx context.Context, reg *domain.RegisterParams) (*domain.User, error)
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	GetByChatID(ctx context.Context, chatID int64) (*domain.User, error)
	SetCurrentFeed(ctx context.Context, userID int64, feedID *int64) error
	ListAutoNotifyTargets(ctx context.Context) ([]*domain.User, error)
	GetStats(ctx context.Context, userID int64) (*domain.UserStats, error)
}

// NewsRepository handles the news write path and lifecycle.
type NewsRepository interface {
	Insert(ctx context.Context, news *domain.News) (int64, error)
	GetByID(ctx context.Context, newsID int64) (*domain.News, error)
	SetTopics(ctx context.Context, newsID int64, topics []string) error
	SetSentiment(ctx context.Context, newsID int64, tone string, score float64) error
	SetDuplicate(ctx context.Context, newsID int64, isDuplicate bool) error
	SetFake(ctx context.Context, newsID int64, isFake bool, confidence float64) error
	GetVerdict(ctx context.Context, newsID int64) (*domain.FakeVerdict, error)
	Trending(ctx context.Context, window, horizon time.Duration, ratingWeight float64, limit int) ([]*domain.TrendingNews, error)
	ArchiveExpired(ctx context.Context) (int64, error)
	DeleteExpiredUnbookmarked(ctx context.Context) (int64, error)
}

// FeedRepository composes and runs the personalized news selection query.
type FeedRepository interface {
	Resolve(ctx context.Context, q *domain.FeedQuery) ([]*domain.News, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*domain.News, error)
	PublicList(ctx context.Context, q *domain.PublicQuery) ([]*domain.News, error)
}

// FilterRepository handles scalar filters and the blocklist.
type FilterRepository interface {
	Upsert(ctx context.Context, filter *domain.Filter) error
	Get(ctx context.Context, userID int64) (*domain.Filter, error)
	Reset(ctx context.Context, userID int64) error
	AddBlock(ctx context.Context, block *domain.Block) error
	GetBlocks(ctx context.Context, userID int64) (map[string][]string, error)
}

// CustomFeedRepository handles named feed definitions.
type CustomFeedRepository interface {
	Create(ctx context.Context, feed *domain.CustomFeed) (int64, error)
	GetByID(ctx context.Context, feedID int64) (*domain.CustomFeed, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.CustomFeed, error)
}

// InteractionRepository records user activity and its side effects.
type InteractionRepository interface {
	RecordActivity(ctx context.Context, activity *domain.Interaction) error
	MarkViewed(ctx context.Context, userID int64, newsIDs []int64) error
	AddComment(ctx context.Context, comment *domain.Comment) (int64, error)
	ListComments(ctx context.Context, newsID int64) ([]*domain.Comment, error)
	Rate(ctx context.Context, rating *domain.Rating) error
	AddBookmark(ctx context.Context, userID, newsID int64) error
	ListBookmarks(ctx context.Context, userID int64) ([]*domain.News, error)
	AddReport(ctx context.Context, report *domain.Report) error
	AddFeedback(ctx context.Context, feedback *domain.Feedback) error
	AddPollResult(ctx context.Context, result *domain.PollResult) error
}

// SubscriptionRepository handles digest subscriptions.
type SubscriptionRepository interface {
	Upsert(ctx context.Context, userID int64, frequency string) error
	Deactivate(ctx context.Context, userID int64) error
	ListActive(ctx context.Context) ([]*domain.Subscription, error)
	MarkDispatched(ctx context.Context, userID int64, at time.Time) error
}

// SourceRepository handles registered news sources.
type SourceRepository interface {
	Add(ctx context.Context, source *domain.Source) (int64, error)
	List(ctx context.Context) ([]*domain.Source, error)
}

// InviteRepository handles referral codes.
type InviteRepository interface {
	Create(ctx context.Context, inviterID int64, code string) (*domain.Invite, error)
	Accept(ctx context.Context, code string, invitedUserID int64, premiumGrant time.Duration) (*domain.User, error)
}

// ModerationRepository applies admin decisions and records the audit trail.
type ModerationRepository interface {
	SetNewsStatus(ctx context.Context, adminUserID, newsID int64, status string) error
	SetCommentStatus(ctx context.Context, adminUserID, commentID int64, status string) error
	SetSourceStatus(ctx context.Context, adminUserID, sourceID int64, status, reason string) error
}

// SummaryRepository caches generated summaries per news item.
type SummaryRepository interface {
	Get(ctx context.Context, newsID int64) (string, error)
	Upsert(ctx context.Context, newsID int64, summary string) error
}
