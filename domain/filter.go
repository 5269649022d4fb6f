package domain

import (
	"time"
)

// Block scopes supported by the blocklist.
const (
	BlockTag      = "tag"
	BlockSource   = "source"
	BlockLanguage = "language"
	BlockCategory = "category"
)

// Custom-feed filter kinds. Each kind narrows the feed to items matching
// any of the listed values; kinds combine with AND.
const (
	FeedFilterTags         = "tags"
	FeedFilterSources      = "sources"
	FeedFilterLanguages    = "languages"
	FeedFilterCountries    = "countries"
	FeedFilterContentTypes = "content_types"
)

// Filter is the per-user scalar filter set applied when no custom feed
// is selected. Nil fields do not constrain the feed. Tag and Category
// both match against the item's combined tag/topic set.
type Filter struct {
	UserID      int64   `db:"user_id" json:"user_id"`
	Tag         *string `db:"tag" json:"tag"`
	Category    *string `db:"category" json:"category"`
	Source      *string `db:"source" json:"source"`
	Language    *string `db:"language" json:"language"`
	Country     *string `db:"country" json:"country"`
	ContentType *string `db:"content_type" json:"content_type"`
}

// Empty reports whether the filter constrains nothing.
func (f *Filter) Empty() bool {
	return f == nil || (f.Tag == nil && f.Category == nil && f.Source == nil &&
		f.Language == nil && f.Country == nil && f.ContentType == nil)
}

// Block is a single blocklist entry. Blocks always win over filters
// and custom feeds.
type Block struct {
	UserID    int64     `db:"user_id"`
	BlockType string    `db:"block_type"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
}

// FeedFilter is one tagged predicate inside a custom feed definition.
// Persisted as JSON; Kind selects the news attribute the values match.
type FeedFilter struct {
	Kind   string   `json:"kind"`
	Values []string `json:"values"`
}

// CustomFeed is a named, reusable filter combination owned by one user.
type CustomFeed struct {
	ID        int64        `db:"id" json:"id"`
	UserID    int64        `db:"user_id" json:"user_id"`
	Name      string       `db:"name" json:"name"`
	Filters   []FeedFilter `db:"filters" json:"filters"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}

// ValidBlockType reports whether t is a supported block scope.
func ValidBlockType(t string) bool {
	switch t {
	case BlockTag, BlockSource, BlockLanguage, BlockCategory:
		return true
	}
	return false
}

// ValidFeedFilterKind reports whether k is a supported custom-feed
// filter kind.
func ValidFeedFilterKind(k string) bool {
	switch k {
	case FeedFilterTags, FeedFilterSources, FeedFilterLanguages,
		FeedFilterCountries, FeedFilterContentTypes:
		return true
	}
	return false
}

// FeedFiltersFromMap converts the wire shape {kind: [values...]} into
// the ordered tagged form, rejecting unknown kinds. Ordering is fixed so
// persisted feed definitions compare stably.
func FeedFiltersFromMap(m map[string][]string) ([]FeedFilter, error) {
	ordered := []string{FeedFilterTags, FeedFilterSources, FeedFilterLanguages,
		FeedFilterCountries, FeedFilterContentTypes}

	for k := range m {
		if !ValidFeedFilterKind(k) {
			return nil, ErrInvalidFeedFilter
		}
	}

	var filters []FeedFilter
	for _, k := range ordered {
		values := m[k]
		if len(values) == 0 {
			continue
		}
		filters = append(filters, FeedFilter{Kind: k, Values: values})
	}
	return filters, nil
}
