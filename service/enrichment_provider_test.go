package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-hub/domain"
	"news-hub/service"
)

func TestStubProvider_DetectDuplicate(t *testing.T) {
	ctx := context.Background()

	t.Run("should flag a resubmission of the same content", func(t *testing.T) {
		p := service.NewStubProvider()

		first := &domain.News{ID: 1, Content: "Rivers crest tonight across the valley."}
		second := &domain.News{ID: 2, Content: "Rivers crest tonight across the valley."}

		v1, err := p.DetectDuplicate(ctx, first)
		require.NoError(t, err)
		assert.False(t, v1.IsDuplicate)

		v2, err := p.DetectDuplicate(ctx, second)
		require.NoError(t, err)
		assert.True(t, v2.IsDuplicate)
		assert.Equal(t, []int64{1}, v2.PotentialMatches)
	})

	t.Run("should ignore whitespace and casing when matching", func(t *testing.T) {
		p := service.NewStubProvider()

		_, err := p.DetectDuplicate(ctx, &domain.News{ID: 1, Content: "Rivers crest tonight."})
		require.NoError(t, err)

		v, err := p.DetectDuplicate(ctx, &domain.News{ID: 2, Content: "  rivers   CREST tonight.  "})
		require.NoError(t, err)
		assert.True(t, v.IsDuplicate)
	})

	t.Run("should not flag the first copy on re-processing", func(t *testing.T) {
		p := service.NewStubProvider()

		item := &domain.News{ID: 1, Content: "Rivers crest tonight."}

		_, err := p.DetectDuplicate(ctx, item)
		require.NoError(t, err)

		v, err := p.DetectDuplicate(ctx, item)
		require.NoError(t, err)
		assert.False(t, v.IsDuplicate)
	})

	t.Run("should not flag distinct content", func(t *testing.T) {
		p := service.NewStubProvider()

		_, err := p.DetectDuplicate(ctx, &domain.News{ID: 1, Content: "Rivers crest tonight."})
		require.NoError(t, err)

		v, err := p.DetectDuplicate(ctx, &domain.News{ID: 2, Content: "Council approves the budget."})
		require.NoError(t, err)
		assert.False(t, v.IsDuplicate)
	})
}
