package domain

import (
	"time"
)

// FeedQuery carries everything the feed resolver needs to compose the
// personalized selection query. Feed and Filter are mutually exclusive;
// when Feed is set (ownership already verified) the scalar Filter is
// ignored.
type FeedQuery struct {
	UserID      int64
	SafeMode    bool
	Feed        *CustomFeed
	Filter      *Filter
	Blocks      map[string][]string
	PublishedIn time.Duration
	Limit       int
	Offset      int
	ExcludeSeen bool
}

// PublicQuery narrows the shared (non-personalized) news listing.
type PublicQuery struct {
	Topic  string
	Lang   string
	Tone   string
	Limit  int
	Offset int
}
