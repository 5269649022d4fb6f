package domain

import (
	"time"
)

// Source lifecycle states.
const (
	SourceActive  = "active"
	SourceBlocked = "blocked"
)

// Source is a registered news origin. Blocked sources keep their
// registration; only the status flips.
type Source struct {
	ID               int64     `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Link             string    `db:"link" json:"link"`
	SourceType       string    `db:"source_type" json:"source_type"`
	Verified         bool      `db:"verified" json:"verified"`
	ReliabilityScore float64   `db:"reliability_score" json:"reliability_score"`
	Status           string    `db:"status" json:"status"`
	AddedByUserID    *int64    `db:"added_by_user_id" json:"added_by_user_id,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
