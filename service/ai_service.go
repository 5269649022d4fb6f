// ABOUTME: This file fronts the enrichment provider for direct API calls
// ABOUTME: Summaries cache in Postgres, translations in Redis by text hash
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"news-hub/domain"
	"news-hub/repository"

	"github.com/redis/go-redis/v9"
)

type aiService struct {
	provider       EnrichmentProvider
	news           repository.NewsRepository
	summaries      repository.SummaryRepository
	redis          *redis.Client
	translationTTL time.Duration
	logger         *slog.Logger
}

// NewAIService creates the AI facade. The redis client may be nil; the
// translation cache then degrades to direct provider calls.
func NewAIService(
	provider EnrichmentProvider,
	news repository.NewsRepository,
	summaries repository.SummaryRepository,
	redisClient *redis.Client,
	translationTTL time.Duration,
	logger *slog.Logger,
) AIService {
	return &aiService{
		provider:       provider,
		news:           news,
		summaries:      summaries,
		redis:          redisClient,
		translationTTL: translationTTL,
		logger:         logger,
	}
}

// Summary summarizes either a stored item (cached by news_id) or raw text
// (never cached). Exactly one of newsID / text must be given.
func (s *aiService) Summary(ctx context.Context, newsID *int64, text string) (string, error) {
	if (newsID == nil) == (text == "") {
		return "", domain.ErrInvalidRequest
	}

	if newsID == nil {
		return s.provider.Summarize(ctx, text)
	}

	cached, err := s.summaries.Get(ctx, *newsID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, domain.ErrSummaryNotCached) {
		return "", err
	}

	news, err := s.news.GetByID(ctx, *newsID)
	if err != nil {
		return "", err
	}

	summary, err := s.provider.Summarize(ctx, news.Content)
	if err != nil {
		return "", fmt.Errorf("failed to summarize news: %w", err)
	}

	if err := s.summaries.Upsert(ctx, *newsID, summary); err != nil {
		// Cache write failure is not a caller problem.
		s.logger.ErrorContext(ctx, "failed to cache summary", "error", err, "news_id", *newsID)
	}

	return summary, nil
}

func translationKey(text, sourceLang, targetLang string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("translate:%s:%s:%s", hex.EncodeToString(sum[:]), sourceLang, targetLang)
}

// Translate returns a cached translation when available, calling the
// provider and filling the cache otherwise.
func (s *aiService) Translate(ctx context.Context, text, targetLang, sourceLang string) (*domain.Translation, error) {
	if text == "" || targetLang == "" {
		return nil, domain.ErrInvalidRequest
	}

	key := translationKey(text, sourceLang, targetLang)

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, key).Result()
		if err == nil {
			return &domain.Translation{
				Text:           cached,
				OriginalLang:   sourceLang,
				TranslatedLang: targetLang,
				FromCache:      true,
			}, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.logger.WarnContext(ctx, "translation cache read failed", "error", err)
		}
	}

	translated, err := s.provider.Translate(ctx, text, targetLang, sourceLang)
	if err != nil {
		return nil, fmt.Errorf("failed to translate: %w", err)
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, key, translated, s.translationTTL).Err(); err != nil {
			s.logger.WarnContext(ctx, "translation cache write failed", "error", err)
		}
	}

	return &domain.Translation{
		Text:           translated,
		OriginalLang:   sourceLang,
		TranslatedLang: targetLang,
		FromCache:      false,
	}, nil
}

// Verdict returns the stored fact-check result for an item.
func (s *aiService) Verdict(ctx context.Context, newsID int64) (*domain.FakeVerdict, error) {
	return s.news.GetVerdict(ctx, newsID)
}

// RewriteHeadline rewrites a headline through the provider.
func (s *aiService) RewriteHeadline(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", domain.ErrInvalidRequest
	}

	return s.provider.RewriteHeadline(ctx, text)
}
