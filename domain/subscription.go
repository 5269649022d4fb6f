package domain

import (
	"time"
)

// Digest frequencies.
const (
	FrequencyHourly = "hourly"
	FrequencyDaily  = "daily"
)

// Subscription is a user's digest subscription. One row per user;
// resubscribing reactivates and updates the frequency.
type Subscription struct {
	UserID           int64      `db:"user_id"`
	Active           bool       `db:"active"`
	Frequency        string     `db:"frequency"`
	LastDispatchedAt *time.Time `db:"last_dispatched_at"`
	CreatedAt        time.Time  `db:"created_at"`
}

// ValidFrequency reports whether f is a supported digest frequency.
func ValidFrequency(f string) bool {
	return f == FrequencyHourly || f == FrequencyDaily
}

// Period returns the digest window length for the subscription's
// frequency.
func (s *Subscription) Period() time.Duration {
	if s.Frequency == FrequencyHourly {
		return time.Hour
	}
	return 24 * time.Hour
}

// Due reports whether a new digest may be dispatched at now without
// overlapping the previous one.
func (s *Subscription) Due(now time.Time) bool {
	if !s.Active {
		return false
	}
	if s.LastDispatchedAt == nil {
		return true
	}
	return now.Sub(*s.LastDispatchedAt) >= s.Period()
}
