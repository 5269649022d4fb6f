package domain

import (
	"time"
)

// Moderation lifecycle states for news items and comments.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

// Tone values assigned by sentiment analysis.
const (
	TonePositive = "positive"
	ToneNegative = "negative"
	ToneNeutral  = "neutral"
	ToneAnxious  = "anxious"
)

// Media attachment types a news item can carry.
const (
	MediaNone     = "none"
	MediaPhoto    = "photo"
	MediaVideo    = "video"
	MediaDocument = "document"
)

// Upstream channel types an item can arrive through.
const (
	SourceTypeManual   = "manual"
	SourceTypeRSS      = "rss"
	SourceTypeTelegram = "telegram"
	SourceTypeTwitter  = "twitter"
	SourceTypeWebsite  = "website"
)

// RestrictedTags are excluded from every safe-mode feed.
var RestrictedTags = []string{"18+", "NSFW"}

// News represents a single news item through its whole lifecycle:
// ingested, enriched, distributed, and eventually archived.
type News struct {
	ID                 int64     `db:"id" json:"id"`
	Title              string    `db:"title" json:"title"`
	Content            string    `db:"content" json:"content"`
	Lang               string    `db:"lang" json:"lang"`
	Country            string    `db:"country" json:"country"`
	Tags               []string  `db:"tags" json:"tags"`
	Source             string    `db:"source" json:"source"`
	SourceType         string    `db:"source_type" json:"source_type"`
	Link               string    `db:"link" json:"link"`
	MediaType          string    `db:"media_type" json:"media_type"`
	FileID             *string   `db:"file_id" json:"file_id,omitempty"`
	PublishedAt        time.Time `db:"published_at" json:"published_at"`
	ExpiresAt          time.Time `db:"expires_at" json:"expires_at"`
	AIClassifiedTopics []string  `db:"ai_classified_topics" json:"ai_classified_topics,omitempty"`
	Tone               *string   `db:"tone" json:"tone,omitempty"`
	SentimentScore     *float64  `db:"sentiment_score" json:"sentiment_score,omitempty"`
	IsFake             bool      `db:"is_fake" json:"is_fake"`
	IsDuplicate        bool      `db:"is_duplicate" json:"is_duplicate"`
	ModerationStatus   string    `db:"moderation_status" json:"moderation_status"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// NewsSubmission is the ingestion payload accepted from collectors.
// PublishedAt and ExpiresAt are optional; missing values are resolved
// by the ingestion service (now, published_at + default TTL).
type NewsSubmission struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Lang        string     `json:"lang"`
	Country     string     `json:"country"`
	Tags        []string   `json:"tags"`
	Source      string     `json:"source"`
	SourceType  string     `json:"source_type"`
	Link        string     `json:"link"`
	MediaType   string     `json:"media_type"`
	FileID      *string    `json:"file_id"`
	PublishedAt *time.Time `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// ValidMediaType reports whether m is a supported attachment type.
func ValidMediaType(m string) bool {
	switch m {
	case MediaNone, MediaPhoto, MediaVideo, MediaDocument:
		return true
	}
	return false
}

// TrendingNews is a news item scored by recent engagement.
type TrendingNews struct {
	News
	TrendScore float64 `db:"trend_score" json:"trend_score"`
}

// Topics returns the union of editorial tags and classifier topics.
// Feed matching treats both vocabularies as one.
func (n *News) Topics() []string {
	if len(n.AIClassifiedTopics) == 0 {
		return n.Tags
	}
	merged := make([]string, 0, len(n.Tags)+len(n.AIClassifiedTopics))
	seen := make(map[string]struct{}, len(n.Tags)+len(n.AIClassifiedTopics))
	for _, t := range n.Tags {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			merged = append(merged, t)
		}
	}
	for _, t := range n.AIClassifiedTopics {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			merged = append(merged, t)
		}
	}
	return merged
}

// Expired reports whether the item has passed its visibility window.
func (n *News) Expired(now time.Time) bool {
	return !n.ExpiresAt.After(now)
}
