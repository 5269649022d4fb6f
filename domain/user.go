package domain

import (
	"time"
)

// View modes controlling how the chat front-end delivers news.
const (
	ViewModeManual = "manual"
	ViewModeAuto   = "auto"
)

// User represents a registered reader identified by a chat-platform ID.
type User struct {
	ID                int64      `db:"id"`
	ChatID            int64      `db:"chat_id"`
	Language          string     `db:"language"`
	Country           string     `db:"country"`
	SafeMode          bool       `db:"safe_mode"`
	CurrentFeedID     *int64     `db:"current_feed_id"`
	IsPremium         bool       `db:"is_premium"`
	PremiumExpiresAt  *time.Time `db:"premium_expires_at"`
	Level             int        `db:"level"`
	Badges            []string   `db:"badges"`
	Email             *string    `db:"email"`
	AutoNotifications bool       `db:"auto_notifications"`
	ViewMode          string     `db:"view_mode"`
	InviterID         *int64     `db:"inviter_id"`
	CreatedAt         time.Time  `db:"created_at"`
}

// PremiumActive reports whether the premium grant is still in effect.
// The flag alone is not trusted once the expiry has passed.
func (u *User) PremiumActive(now time.Time) bool {
	if !u.IsPremium {
		return false
	}
	if u.PremiumExpiresAt == nil {
		return true
	}
	return u.PremiumExpiresAt.After(now)
}

// RegisterParams carries registration input. ChatID is required and
// travels as user_id on the wire, the front-end's external identifier;
// nil optionals leave existing values untouched on re-registration.
type RegisterParams struct {
	ChatID            int64   `json:"user_id"`
	Language          *string `json:"language"`
	Country           *string `json:"country"`
	SafeMode          *bool   `json:"safe_mode"`
	Email             *string `json:"email"`
	IsPremium         *bool   `json:"is_premium"`
	AutoNotifications *bool   `json:"auto_notifications"`
	ViewMode          *string `json:"view_mode"`
}

// UserStats holds lifetime interaction counters. Counters only grow;
// they are never rewound when content is archived.
type UserStats struct {
	UserID            int64     `db:"user_id" json:"user_id"`
	Viewed            int64     `db:"viewed" json:"viewed"`
	Saved             int64     `db:"saved" json:"saved"`
	Reported          int64     `db:"reported" json:"reported"`
	ReadFullCount     int64     `db:"read_full_count" json:"read_full_count"`
	LikedCount        int64     `db:"liked_count" json:"liked_count"`
	DislikedCount     int64     `db:"disliked_count" json:"disliked_count"`
	CommentsCount     int64     `db:"comments_count" json:"comments_count"`
	SourcesAddedCount int64     `db:"sources_added_count" json:"sources_added_count"`
	SkippedCount      int64     `db:"skipped_count" json:"skipped_count"`
	LastActive        time.Time `db:"last_active" json:"last_active"`
}

// GamificationStats is the progress view shared with the chat front-end.
type GamificationStats struct {
	UserID   int64    `json:"user_id"`
	Level    int      `json:"level"`
	Badges   []string `json:"badges"`
	Viewed   int64    `json:"viewed"`
	ReadFull int64    `json:"read_full"`
	Saved    int64    `json:"saved"`
	Comments int64    `json:"comments"`
}
