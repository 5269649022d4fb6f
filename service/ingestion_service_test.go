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
	"news-hub/utils"
)

func ingestTestConfig() config.IngestConfig {
	return config.IngestConfig{
		QueueCapacity:      4,
		Workers:            0,
		DefaultTTL:         5 * time.Hour,
		TrustedSourceTypes: []string{"manual", "rss"},
		EnrichmentTimeout:  30 * time.Second,
	}
}

func validSubmission() *domain.NewsSubmission {
	return &domain.NewsSubmission{
		Title:   "Flood warning issued",
		Content: "Rivers in the region are expected to crest tonight.",
		Lang:    "en",
		Country: "US",
		Source:  "city-desk",
	}
}

func TestIngestionService_Submit(t *testing.T) {
	t.Run("should persist a valid submission and return its id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepo := mocks.NewMockNewsRepository(ctrl)
		provider := mocks.NewMockEnrichmentProvider(ctrl)

		svc := service.NewIngestionService(newsRepo, provider, utils.NewSanitizer(), nil, ingestTestConfig(), testLogger())

		newsRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(42), nil)

		id, err := svc.Submit(context.Background(), validSubmission())

		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("should reject submissions with missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepo := mocks.NewMockNewsRepository(ctrl)
		provider := mocks.NewMockEnrichmentProvider(ctrl)

		svc := service.NewIngestionService(newsRepo, provider, utils.NewSanitizer(), nil, ingestTestConfig(), testLogger())

		cases := map[string]func(*domain.NewsSubmission){
			"empty title":   func(s *domain.NewsSubmission) { s.Title = "" },
			"empty content": func(s *domain.NewsSubmission) { s.Content = "" },
			"empty lang":    func(s *domain.NewsSubmission) { s.Lang = "" },
			"empty source":  func(s *domain.NewsSubmission) { s.Source = "" },
		}

		for name, mutate := range cases {
			sub := validSubmission()
			mutate(sub)

			_, err := svc.Submit(context.Background(), sub)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest, name)
		}
	})

	t.Run("should reject an unknown media type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepo := mocks.NewMockNewsRepository(ctrl)
		provider := mocks.NewMockEnrichmentProvider(ctrl)

		svc := service.NewIngestionService(newsRepo, provider, utils.NewSanitizer(), nil, ingestTestConfig(), testLogger())

		sub := validSubmission()
		sub.MediaType = "hologram"

		_, err := svc.Submit(context.Background(), sub)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("should reject expires_at not after published_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepo := mocks.NewMockNewsRepository(ctrl)
		provider := mocks.NewMockEnrichmentProvider(ctrl)

		svc := service.NewIngestionService(newsRepo, provider, utils.NewSanitizer(), nil, ingestTestConfig(), testLogger())

		published := time.Now()
		sub := validSubmission()
		sub.PublishedAt = &published
		sub.ExpiresAt = &published

		_, err := svc.Submit(context.Background(), sub)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("should fail fast with overload before writing when the queue is full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepo := mocks.NewMockNewsRepository(ctrl)
		provider := mocks.NewMockEnrichmentProvider(ctrl)

		cfg := ingestTestConfig()
		cfg.QueueCapacity = 1

		svc := service.NewIngestionService(newsRepo, provider, utils.NewSanitizer(), nil, cfg, testLogger())

		// Workers are never started, so the first submit fills the queue.
		newsRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		_, err := svc.Submit(context.Background(), validSubmission())
		require.NoError(t, err)

		// No Insert expectation: the second submit must not reach the store.
		_, err = svc.Submit(context.Background(), validSubmission())
		assert.ErrorIs(t, err, domain.ErrServiceOverloaded)
	})

	t.Run("should auto-approve trusted source types and hold the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepo := mocks.NewMockNewsRepository(ctrl)
		provider := mocks.NewMockEnrichmentProvider(ctrl)

		svc := service.NewIngestionService(newsRepo, provider, utils.NewSanitizer(), nil, ingestTestConfig(), testLogger())

		var inserted []*domain.News
		newsRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *domain.News) (int64, error) {
				inserted = append(inserted, n)
				return int64(len(inserted)), nil
			}).Times(2)

		trusted := validSubmission()
		trusted.SourceType = domain.SourceTypeRSS
		_, err := svc.Submit(context.Background(), trusted)
		require.NoError(t, err)

		untrusted := validSubmission()
		untrusted.SourceType = domain.SourceTypeTelegram
		_, err = svc.Submit(context.Background(), untrusted)
		require.NoError(t, err)

		require.Len(t, inserted, 2)
		assert.Equal(t, domain.ModerationApproved, inserted[0].ModerationStatus)
		assert.Equal(t, domain.ModerationPending, inserted[1].ModerationStatus)
	})

	t.Run("should sanitize title markup and default optional fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		newsRepo := mocks.NewMockNewsRepository(ctrl)
		provider := mocks.NewMockEnrichmentProvider(ctrl)

		svc := service.NewIngestionService(newsRepo, provider, utils.NewSanitizer(), nil, ingestTestConfig(), testLogger())

		var captured *domain.News
		newsRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *domain.News) (int64, error) {
				captured = n
				return 7, nil
			})

		sub := validSubmission()
		sub.Title = `<script>alert(1)</script>Flood warning`

		_, err := svc.Submit(context.Background(), sub)
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.Equal(t, "Flood warning", captured.Title)
		assert.Equal(t, domain.SourceTypeManual, captured.SourceType)
		assert.Equal(t, domain.MediaNone, captured.MediaType)
		assert.Equal(t, captured.PublishedAt.Add(5*time.Hour), captured.ExpiresAt)
	})
}
