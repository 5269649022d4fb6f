package service

import (
	"context"
	"time"

	"news-hub/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/service_mocks.go -package=mocks

// EnrichmentProvider abstracts the ML-backed annotation operations. Every
// operation is idempotent per (news, operation); callers persist results
// with conditional writes so re-processing is always safe.
type EnrichmentProvider interface {
	Summarize(ctx context.Context, text string) (string, error)
	Classify(ctx context.Context, text string) ([]string, error)
	Sentiment(ctx context.Context, text string) (*domain.Sentiment, error)
	DetectFake(ctx context.Context, news *domain.News) (*domain.FakeVerdict, error)
	DetectDuplicate(ctx context.Context, news *domain.News) (*domain.DuplicateVerdict, error)
	Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error)
	RewriteHeadline(ctx context.Context, text string) (string, error)
}

// ChatNotifier delivers outbound messages to the chat front-end. Senders
// must mark items viewed before calling; a failed send drops the
// notification but never repeats it.
type ChatNotifier interface {
	SendDigest(ctx context.Context, chatID int64, items []*domain.News) error
	SendSingle(ctx context.Context, chatID int64, item *domain.News) error
}

// UserService handles registration and profile views. Users are addressed
// by their external chat ID everywhere on the HTTP surface.
type UserService interface {
	Register(ctx context.Context, params *domain.RegisterParams) (*domain.User, error)
	Profile(ctx context.Context, chatID int64) (*Profile, error)
	Analytics(ctx context.Context, chatID int64) (*Analytics, error)
	GamificationStats(ctx context.Context, chatID int64) (*domain.GamificationStats, error)
}

// IngestionService accepts news submissions and runs the enrichment
// pipeline behind a bounded queue.
type IngestionService interface {
	Submit(ctx context.Context, sub *domain.NewsSubmission) (int64, error)
	Start(ctx context.Context)
	Stop()
}

// FeedService resolves personalized and shared news listings.
type FeedService interface {
	Feed(ctx context.Context, chatID int64, limit, offset int) ([]*domain.News, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*domain.News, error)
	Digest(ctx context.Context, chatID int64, window time.Duration, limit int, excludeSeen bool) ([]*domain.News, error)
	Recommend(ctx context.Context, chatID int64, limit int) ([]*domain.News, error)
	Trending(ctx context.Context, limit int) ([]*domain.TrendingNews, error)
	Public(ctx context.Context, q *domain.PublicQuery) ([]*domain.News, error)
}

// FilterService manages per-user scalar filters and the blocklist.
type FilterService interface {
	Update(ctx context.Context, chatID int64, filter *domain.Filter) error
	Get(ctx context.Context, chatID int64) (*domain.Filter, error)
	Reset(ctx context.Context, chatID int64) error
	Block(ctx context.Context, chatID int64, blockType, value string) error
}

// CustomFeedService manages named feeds and the active-feed switch.
type CustomFeedService interface {
	Create(ctx context.Context, chatID int64, name string, filters map[string][]string) (int64, error)
	List(ctx context.Context, chatID int64) ([]*domain.CustomFeed, error)
	Switch(ctx context.Context, chatID, feedID int64) error
}

// InteractionService records user activity and social signals.
type InteractionService interface {
	LogActivity(ctx context.Context, chatID, newsID int64, action string, timeSpent int) error
	Rate(ctx context.Context, chatID, newsID int64, value int) error
	AddBookmark(ctx context.Context, chatID, newsID int64) error
	ListBookmarks(ctx context.Context, chatID int64) ([]*domain.News, error)
	AddComment(ctx context.Context, chatID, newsID int64, parentID *int64, content string) (int64, error)
	ListComments(ctx context.Context, newsID int64) ([]*domain.Comment, error)
	Report(ctx context.Context, chatID int64, newsID *int64, reason string) error
	AddFeedback(ctx context.Context, chatID int64, message string) error
	SubmitPoll(ctx context.Context, chatID, newsID int64, question, answer string) error
}

// SubscriptionService manages digest subscriptions.
type SubscriptionService interface {
	Subscribe(ctx context.Context, chatID int64, frequency string) error
	Unsubscribe(ctx context.Context, chatID int64) error
}

// AIService fronts the enrichment provider for direct API calls, with
// summary and translation caching.
type AIService interface {
	Summary(ctx context.Context, newsID *int64, text string) (string, error)
	Translate(ctx context.Context, text, targetLang, sourceLang string) (*domain.Translation, error)
	Verdict(ctx context.Context, newsID int64) (*domain.FakeVerdict, error)
	RewriteHeadline(ctx context.Context, text string) (string, error)
}

// ReferralService manages invite codes and the premium grants they carry.
type ReferralService interface {
	Generate(ctx context.Context, inviterChatID int64) (*domain.Invite, error)
	Accept(ctx context.Context, code string, invitedChatID int64) (*domain.User, error)
}

// SourceService manages registered upstream sources.
type SourceService interface {
	Add(ctx context.Context, chatID int64, name, link, sourceType string) (int64, error)
	List(ctx context.Context) ([]*domain.Source, error)
}

// ModerationService applies admin decisions.
type ModerationService interface {
	Moderate(ctx context.Context, adminChatID int64, actionType string, targetID int64, details map[string]any) error
}

// SchedulerService hosts the three background sweeps; each call is one
// run invoked by the orchestrator on its interval.
type SchedulerService interface {
	DispatchDigests(ctx context.Context) error
	AutoNotify(ctx context.Context) error
	Cleanup(ctx context.Context) error
}

// Profile is the user view returned to the chat front-end. IsPremium is
// effective: an elapsed premium_expires_at reads as false.
type Profile struct {
	UserID            int64      `json:"user_id"`
	ChatID            int64      `json:"chat_id"`
	Language          string     `json:"language"`
	Country           string     `json:"country"`
	SafeMode          bool       `json:"safe_mode"`
	CurrentFeedID     *int64     `json:"current_feed_id"`
	IsPremium         bool       `json:"is_premium"`
	PremiumExpiresAt  *time.Time `json:"premium_expires_at"`
	Level             int        `json:"level"`
	Badges            []string   `json:"badges"`
	Email             *string    `json:"email"`
	AutoNotifications bool       `json:"auto_notifications"`
	ViewMode          string     `json:"view_mode"`
}

// Analytics bundles lifetime counters with progress fields.
type Analytics struct {
	UserID     int64             `json:"user_id"`
	Stats      *domain.UserStats `json:"stats"`
	Level      int               `json:"level"`
	Badges     []string          `json:"badges"`
	LastActive time.Time         `json:"last_active"`
}
