package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAction(t *testing.T) {
	t.Run("should accept every supported action", func(t *testing.T) {
		for _, a := range []string{ActionView, ActionReadFull, ActionSkip, ActionLike, ActionDislike, ActionSave} {
			assert.True(t, ValidAction(a), "action %q", a)
		}
	})

	t.Run("should reject unknown actions", func(t *testing.T) {
		assert.False(t, ValidAction("share"))
		assert.False(t, ValidAction(""))
		assert.False(t, ValidAction("VIEW"))
	})
}

func TestValidateRating(t *testing.T) {
	t.Run("should accept full 1..5 range", func(t *testing.T) {
		for v := RatingMin; v <= RatingMax; v++ {
			assert.NoError(t, ValidateRating(v))
		}
	})

	t.Run("should reject out-of-range values", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRating(0), ErrInvalidRating)
		assert.ErrorIs(t, ValidateRating(6), ErrInvalidRating)
		assert.ErrorIs(t, ValidateRating(-1), ErrInvalidRating)
	})
}

func TestValidBlockType(t *testing.T) {
	t.Run("should accept supported scopes", func(t *testing.T) {
		assert.True(t, ValidBlockType(BlockTag))
		assert.True(t, ValidBlockType(BlockSource))
		assert.True(t, ValidBlockType(BlockLanguage))
		assert.True(t, ValidBlockType(BlockCategory))
	})

	t.Run("should reject unknown scopes", func(t *testing.T) {
		assert.False(t, ValidBlockType("author"))
		assert.False(t, ValidBlockType(""))
	})
}
