package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news-hub/domain"
	"news-hub/service"
	"news-hub/test/mocks"
)

type aiServiceMocks struct {
	provider  *mocks.MockEnrichmentProvider
	news      *mocks.MockNewsRepository
	summaries *mocks.MockSummaryRepository
}

func aiTestSetup(t *testing.T, redisClient *redis.Client) (service.AIService, aiServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := aiServiceMocks{
		provider:  mocks.NewMockEnrichmentProvider(ctrl),
		news:      mocks.NewMockNewsRepository(ctrl),
		summaries: mocks.NewMockSummaryRepository(ctrl),
	}

	svc := service.NewAIService(m.provider, m.news, m.summaries, redisClient, time.Hour, testLogger())
	return svc, m
}

func TestAIService_Summary(t *testing.T) {
	t.Run("should reject requests with both or neither of news_id and text", func(t *testing.T) {
		svc, _ := aiTestSetup(t, nil)

		_, err := svc.Summary(context.Background(), nil, "")
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)

		_, err = svc.Summary(context.Background(), ptr(int64(1)), "also text")
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("should summarize raw text without caching", func(t *testing.T) {
		svc, m := aiTestSetup(t, nil)

		m.provider.EXPECT().Summarize(gomock.Any(), "long article").Return("short", nil)

		got, err := svc.Summary(context.Background(), nil, "long article")
		require.NoError(t, err)
		assert.Equal(t, "short", got)
	})

	t.Run("should return the cached summary without calling the provider", func(t *testing.T) {
		svc, m := aiTestSetup(t, nil)

		m.summaries.EXPECT().Get(gomock.Any(), int64(7)).Return("cached summary", nil)

		got, err := svc.Summary(context.Background(), ptr(int64(7)), "")
		require.NoError(t, err)
		assert.Equal(t, "cached summary", got)
	})

	t.Run("should summarize and cache on a miss", func(t *testing.T) {
		svc, m := aiTestSetup(t, nil)

		gomock.InOrder(
			m.summaries.EXPECT().Get(gomock.Any(), int64(7)).Return("", domain.ErrSummaryNotCached),
			m.news.EXPECT().GetByID(gomock.Any(), int64(7)).
				Return(&domain.News{ID: 7, Content: "full body"}, nil),
			m.provider.EXPECT().Summarize(gomock.Any(), "full body").Return("short", nil),
			m.summaries.EXPECT().Upsert(gomock.Any(), int64(7), "short").Return(nil),
		)

		got, err := svc.Summary(context.Background(), ptr(int64(7)), "")
		require.NoError(t, err)
		assert.Equal(t, "short", got)
	})

	t.Run("should still return the summary when the cache write fails", func(t *testing.T) {
		svc, m := aiTestSetup(t, nil)

		m.summaries.EXPECT().Get(gomock.Any(), int64(7)).Return("", domain.ErrSummaryNotCached)
		m.news.EXPECT().GetByID(gomock.Any(), int64(7)).
			Return(&domain.News{ID: 7, Content: "full body"}, nil)
		m.provider.EXPECT().Summarize(gomock.Any(), "full body").Return("short", nil)
		m.summaries.EXPECT().Upsert(gomock.Any(), int64(7), "short").
			Return(errors.New("connection reset"))

		got, err := svc.Summary(context.Background(), ptr(int64(7)), "")
		require.NoError(t, err)
		assert.Equal(t, "short", got)
	})
}

func TestAIService_Translate(t *testing.T) {
	t.Run("should reject missing text or target language", func(t *testing.T) {
		svc, _ := aiTestSetup(t, nil)

		_, err := svc.Translate(context.Background(), "", "de", "en")
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)

		_, err = svc.Translate(context.Background(), "hello", "", "en")
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("should call the provider once and serve the second request from cache", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })

		svc, m := aiTestSetup(t, client)

		m.provider.EXPECT().Translate(gomock.Any(), "hello", "de", "en").Return("hallo", nil).Times(1)

		first, err := svc.Translate(context.Background(), "hello", "de", "en")
		require.NoError(t, err)
		assert.Equal(t, "hallo", first.Text)
		assert.False(t, first.FromCache)

		second, err := svc.Translate(context.Background(), "hello", "de", "en")
		require.NoError(t, err)
		assert.Equal(t, "hallo", second.Text)
		assert.True(t, second.FromCache)
		assert.Equal(t, "en", second.OriginalLang)
		assert.Equal(t, "de", second.TranslatedLang)
	})

	t.Run("should key the cache by language pair", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })

		svc, m := aiTestSetup(t, client)

		m.provider.EXPECT().Translate(gomock.Any(), "hello", "de", "en").Return("hallo", nil)
		m.provider.EXPECT().Translate(gomock.Any(), "hello", "fr", "en").Return("bonjour", nil)

		_, err := svc.Translate(context.Background(), "hello", "de", "en")
		require.NoError(t, err)

		other, err := svc.Translate(context.Background(), "hello", "fr", "en")
		require.NoError(t, err)
		assert.False(t, other.FromCache)
	})

	t.Run("should degrade to direct provider calls without redis", func(t *testing.T) {
		svc, m := aiTestSetup(t, nil)

		m.provider.EXPECT().Translate(gomock.Any(), "hello", "de", "en").Return("hallo", nil).Times(2)

		for i := 0; i < 2; i++ {
			got, err := svc.Translate(context.Background(), "hello", "de", "en")
			require.NoError(t, err)
			assert.False(t, got.FromCache)
		}
	})
}

func TestAIService_RewriteHeadline(t *testing.T) {
	t.Run("should reject empty text", func(t *testing.T) {
		svc, _ := aiTestSetup(t, nil)

		_, err := svc.RewriteHeadline(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("should pass the text through the provider", func(t *testing.T) {
		svc, m := aiTestSetup(t, nil)

		m.provider.EXPECT().RewriteHeadline(gomock.Any(), "dull headline").Return("Punchy Headline", nil)

		got, err := svc.RewriteHeadline(context.Background(), "dull headline")
		require.NoError(t, err)
		assert.Equal(t, "Punchy Headline", got)
	})
}

func TestAIService_Verdict(t *testing.T) {
	t.Run("should return the stored verdict", func(t *testing.T) {
		svc, m := aiTestSetup(t, nil)

		verdict := &domain.FakeVerdict{IsFake: false, Confidence: 0.93, CheckedBy: "stub"}
		m.news.EXPECT().GetVerdict(gomock.Any(), int64(7)).Return(verdict, nil)

		got, err := svc.Verdict(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, verdict, got)
	})
}
