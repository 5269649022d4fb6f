package domain

import (
	"time"
)

// Interaction actions accepted by the activity log.
const (
	ActionView     = "view"
	ActionReadFull = "read_full"
	ActionSkip     = "skip"
	ActionLike     = "like"
	ActionDislike  = "dislike"
	ActionSave     = "save"
)

// Rating bounds for news rating.
const (
	RatingMin = 1
	RatingMax = 5
)

// Interaction is one recorded user action against a news item.
type Interaction struct {
	ID               int64     `db:"id"`
	UserID           int64     `db:"user_id"`
	NewsID           int64     `db:"news_id"`
	Action           string    `db:"action"`
	TimeSpentSeconds int       `db:"time_spent_seconds"`
	CreatedAt        time.Time `db:"created_at"`
}

// UserNewsView tracks per-(user, news) delivery state. A row with
// Viewed=true permanently excludes the item from that user's feed.
type UserNewsView struct {
	UserID           int64     `db:"user_id"`
	NewsID           int64     `db:"news_id"`
	Viewed           bool      `db:"viewed"`
	ReadFull         bool      `db:"read_full"`
	TimeSpentSeconds int       `db:"time_spent_seconds"`
	ViewedAt         time.Time `db:"viewed_at"`
}

// Comment is a user comment. Comments are born pending and surface in
// listings only once approved.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	NewsID    int64     `db:"news_id" json:"news_id"`
	ParentID  *int64    `db:"parent_comment_id" json:"parent_id,omitempty"`
	Content   string    `db:"content" json:"content"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Rating is a 1..5 score; one row per (user, news), re-rating replaces.
type Rating struct {
	UserID    int64     `db:"user_id"`
	NewsID    int64     `db:"news_id"`
	Value     int       `db:"value"`
	CreatedAt time.Time `db:"created_at"`
}

// Bookmark persists a saved item beyond the news TTL.
type Bookmark struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	NewsID    int64     `db:"news_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Report is a user complaint. NewsID is optional; free-form reports
// carry only the reason.
type Report struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	NewsID    *int64    `db:"news_id"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
}

// Reaction is an emoji reaction; one row per (user, news), replaced on
// repeat.
type Reaction struct {
	UserID    int64     `db:"user_id"`
	NewsID    int64     `db:"news_id"`
	Reaction  string    `db:"reaction"`
	CreatedAt time.Time `db:"created_at"`
}

// Feedback is free-form product feedback, unrelated to any news item.
type Feedback struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// PollResult is a single answer to an inline poll shown with a news item.
type PollResult struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	NewsID    int64     `db:"news_id"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	CreatedAt time.Time `db:"created_at"`
}

// ValidAction reports whether a is an accepted activity action.
func ValidAction(a string) bool {
	switch a {
	case ActionView, ActionReadFull, ActionSkip, ActionLike, ActionDislike, ActionSave:
		return true
	}
	return false
}

// ValidateRating returns ErrInvalidRating unless value is within 1..5.
func ValidateRating(value int) error {
	if value < RatingMin || value > RatingMax {
		return ErrInvalidRating
	}
	return nil
}
