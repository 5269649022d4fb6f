package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news-hub/config"
	"news-hub/domain"
	"news-hub/service"
	"news-hub/test/mocks"
)

type feedServiceMocks struct {
	users   *mocks.MockUserRepository
	feeds   *mocks.MockFeedRepository
	filters *mocks.MockFilterRepository
	custom  *mocks.MockCustomFeedRepository
	news    *mocks.MockNewsRepository
}

func feedTestSetup(t *testing.T) (service.FeedService, feedServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := feedServiceMocks{
		users:   mocks.NewMockUserRepository(ctrl),
		feeds:   mocks.NewMockFeedRepository(ctrl),
		filters: mocks.NewMockFilterRepository(ctrl),
		custom:  mocks.NewMockCustomFeedRepository(ctrl),
		news:    mocks.NewMockNewsRepository(ctrl),
	}

	cfg := config.TrendingConfig{
		Window:         24 * time.Hour,
		RatingWeight:   10.0,
		RecencyHorizon: 48 * time.Hour,
		DefaultLimit:   5,
	}

	svc := service.NewFeedService(m.users, m.feeds, m.filters, m.custom, m.news, cfg, testLogger())
	return svc, m
}

func TestCapLimit(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to the default page size", 0, 10},
		{"negative falls back to the default page size", -3, 10},
		{"in-range values pass through", 25, 25},
		{"oversized values are capped", 500, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.CapLimit(tc.limit))
		})
	}
}

func TestFeedService_Feed(t *testing.T) {
	const chatID = int64(777)

	t.Run("should resolve through the user's owned custom feed", func(t *testing.T) {
		svc, m := feedTestSetup(t)

		feed := &domain.CustomFeed{ID: 9, UserID: 5, Name: "tech"}
		m.users.EXPECT().GetByChatID(gomock.Any(), chatID).
			Return(&domain.User{ID: 5, ChatID: chatID, CurrentFeedID: ptr(int64(9))}, nil)
		m.custom.EXPECT().GetByID(gomock.Any(), int64(9)).Return(feed, nil)
		m.filters.EXPECT().GetBlocks(gomock.Any(), int64(5)).Return(nil, nil)

		var captured *domain.FeedQuery
		m.feeds.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *domain.FeedQuery) ([]*domain.News, error) {
				captured = q
				return []*domain.News{{ID: 1}}, nil
			})

		items, err := svc.Feed(context.Background(), chatID, 0, 0)

		require.NoError(t, err)
		assert.Len(t, items, 1)
		require.NotNil(t, captured)
		assert.Equal(t, feed, captured.Feed)
		assert.Nil(t, captured.Filter)
		assert.True(t, captured.ExcludeSeen)
		assert.Equal(t, 10, captured.Limit)
	})

	t.Run("should ignore an active feed owned by another user", func(t *testing.T) {
		svc, m := feedTestSetup(t)

		m.users.EXPECT().GetByChatID(gomock.Any(), chatID).
			Return(&domain.User{ID: 5, ChatID: chatID, CurrentFeedID: ptr(int64(9))}, nil)
		m.custom.EXPECT().GetByID(gomock.Any(), int64(9)).
			Return(&domain.CustomFeed{ID: 9, UserID: 6}, nil)
		m.filters.EXPECT().Get(gomock.Any(), int64(5)).
			Return(&domain.Filter{UserID: 5, Language: ptr("en")}, nil)
		m.filters.EXPECT().GetBlocks(gomock.Any(), int64(5)).Return(nil, nil)

		var captured *domain.FeedQuery
		m.feeds.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *domain.FeedQuery) ([]*domain.News, error) {
				captured = q
				return nil, nil
			})

		_, err := svc.Feed(context.Background(), chatID, 0, 0)

		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Nil(t, captured.Feed)
		require.NotNil(t, captured.Filter)
		assert.Equal(t, "en", *captured.Filter.Language)
	})

	t.Run("should fall through to the scalar filter when the active feed is gone", func(t *testing.T) {
		svc, m := feedTestSetup(t)

		m.users.EXPECT().GetByChatID(gomock.Any(), chatID).
			Return(&domain.User{ID: 5, ChatID: chatID, CurrentFeedID: ptr(int64(9))}, nil)
		m.custom.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, domain.ErrFeedNotFound)
		m.filters.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.Filter{UserID: 5}, nil)
		m.filters.EXPECT().GetBlocks(gomock.Any(), int64(5)).
			Return(map[string][]string{"source": {"tabloid"}}, nil)

		var captured *domain.FeedQuery
		m.feeds.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *domain.FeedQuery) ([]*domain.News, error) {
				captured = q
				return nil, nil
			})

		_, err := svc.Feed(context.Background(), chatID, 0, 0)

		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Nil(t, captured.Feed)
		// Empty filter constrains nothing and is omitted entirely.
		assert.Nil(t, captured.Filter)
		assert.Equal(t, []string{"tabloid"}, captured.Blocks["source"])
	})

	t.Run("should propagate an unknown user", func(t *testing.T) {
		svc, m := feedTestSetup(t)

		m.users.EXPECT().GetByChatID(gomock.Any(), chatID).Return(nil, domain.ErrUserNotFound)

		_, err := svc.Feed(context.Background(), chatID, 0, 0)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestFeedService_Search(t *testing.T) {
	t.Run("should reject an empty query", func(t *testing.T) {
		svc, _ := feedTestSetup(t)

		_, err := svc.Search(context.Background(), "", 10, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("should cap the requested page size", func(t *testing.T) {
		svc, m := feedTestSetup(t)

		m.feeds.EXPECT().Search(gomock.Any(), "floods", 100, 0).Return(nil, nil)

		_, err := svc.Search(context.Background(), "floods", 9999, 0)
		assert.NoError(t, err)
	})
}

func TestFeedService_Trending(t *testing.T) {
	t.Run("should apply the configured default limit", func(t *testing.T) {
		svc, m := feedTestSetup(t)

		m.news.EXPECT().Trending(gomock.Any(), 24*time.Hour, 48*time.Hour, 10.0, 5).
			Return([]*domain.TrendingNews{}, nil)

		_, err := svc.Trending(context.Background(), 0)
		assert.NoError(t, err)
	})
}

func TestFeedService_Digest(t *testing.T) {
	t.Run("should restrict resolution to the requested window", func(t *testing.T) {
		svc, m := feedTestSetup(t)

		m.users.EXPECT().GetByChatID(gomock.Any(), int64(777)).
			Return(&domain.User{ID: 5, ChatID: 777}, nil)
		m.filters.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.Filter{UserID: 5}, nil)
		m.filters.EXPECT().GetBlocks(gomock.Any(), int64(5)).Return(nil, nil)

		var captured *domain.FeedQuery
		m.feeds.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *domain.FeedQuery) ([]*domain.News, error) {
				captured = q
				return nil, nil
			})

		_, err := svc.Digest(context.Background(), 777, 24*time.Hour, 10, true)

		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, 24*time.Hour, captured.PublishedIn)
		assert.True(t, captured.ExcludeSeen)
	})

	t.Run("should keep seen items when the caller asks for a recap", func(t *testing.T) {
		svc, m := feedTestSetup(t)

		m.users.EXPECT().GetByChatID(gomock.Any(), int64(777)).
			Return(&domain.User{ID: 5, ChatID: 777}, nil)
		m.filters.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.Filter{UserID: 5}, nil)
		m.filters.EXPECT().GetBlocks(gomock.Any(), int64(5)).Return(nil, nil)

		var captured *domain.FeedQuery
		m.feeds.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *domain.FeedQuery) ([]*domain.News, error) {
				captured = q
				return nil, nil
			})

		_, err := svc.Digest(context.Background(), 777, 24*time.Hour, 10, false)

		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.False(t, captured.ExcludeSeen)
	})
}
