package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNews_Topics(t *testing.T) {
	t.Run("should return tags when no classifier topics", func(t *testing.T) {
		n := &News{Tags: []string{"politics", "economy"}}
		assert.Equal(t, []string{"politics", "economy"}, n.Topics())
	})

	t.Run("should merge tags and classifier topics", func(t *testing.T) {
		n := &News{
			Tags:               []string{"politics"},
			AIClassifiedTopics: []string{"economy", "world"},
		}
		assert.Equal(t, []string{"politics", "economy", "world"}, n.Topics())
	})

	t.Run("should deduplicate overlapping topics", func(t *testing.T) {
		n := &News{
			Tags:               []string{"politics", "economy"},
			AIClassifiedTopics: []string{"economy", "tech"},
		}
		assert.Equal(t, []string{"politics", "economy", "tech"}, n.Topics())
	})

	t.Run("should return nil for empty item", func(t *testing.T) {
		n := &News{}
		assert.Empty(t, n.Topics())
	})
}

func TestNews_Expired(t *testing.T) {
	now := time.Now()

	t.Run("should report expired when past expires_at", func(t *testing.T) {
		n := &News{ExpiresAt: now.Add(-time.Minute)}
		assert.True(t, n.Expired(now))
	})

	t.Run("should report live before expires_at", func(t *testing.T) {
		n := &News{ExpiresAt: now.Add(time.Hour)}
		assert.False(t, n.Expired(now))
	})

	t.Run("should report expired exactly at expires_at", func(t *testing.T) {
		n := &News{ExpiresAt: now}
		assert.True(t, n.Expired(now))
	})
}

func TestModerationConstants(t *testing.T) {
	t.Run("should have all lifecycle states", func(t *testing.T) {
		assert.Equal(t, "pending", ModerationPending)
		assert.Equal(t, "approved", ModerationApproved)
		assert.Equal(t, "rejected", ModerationRejected)
	})
}
