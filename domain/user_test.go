package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_PremiumActive(t *testing.T) {
	now := time.Now()

	t.Run("should be inactive without premium flag", func(t *testing.T) {
		u := &User{IsPremium: false}
		assert.False(t, u.PremiumActive(now))
	})

	t.Run("should be active before expiry", func(t *testing.T) {
		expires := now.Add(24 * time.Hour)
		u := &User{IsPremium: true, PremiumExpiresAt: &expires}
		assert.True(t, u.PremiumActive(now))
	})

	t.Run("should be inactive after expiry even with flag set", func(t *testing.T) {
		expires := now.Add(-time.Hour)
		u := &User{IsPremium: true, PremiumExpiresAt: &expires}
		assert.False(t, u.PremiumActive(now))
	})

	t.Run("should trust flag when no expiry recorded", func(t *testing.T) {
		u := &User{IsPremium: true}
		assert.True(t, u.PremiumActive(now))
	})
}
