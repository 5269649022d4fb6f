// ABOUTME: This file runs the per-item enrichment pipeline inside workers
// ABOUTME: Each operation fails independently; partial enrichment is fine
package service

import (
	"context"
)

// enrich runs classify, sentiment, duplicate, and fake detection for one
// item. Every write is conditional in the repository, so a re-queued item
// never clobbers earlier results. Operation failures are logged and the
// pipeline moves on: visibility never waits on enrichment.
func (s *ingestionService) enrich(ctx context.Context, newsID int64) {
	opCtx, cancel := context.WithTimeout(ctx, s.cfg.EnrichmentTimeout)
	defer cancel()

	news, err := s.news.GetByID(opCtx, newsID)
	if err != nil {
		s.logger.ErrorContext(opCtx, "failed to load news for enrichment",
			"error", err, "news_id", newsID)
		return
	}

	text := news.Title + "\n" + news.Content

	s.enrichStep(opCtx, newsID, "classify", func() error {
		topics, err := s.provider.Classify(opCtx, text)
		if err != nil {
			return err
		}
		return s.news.SetTopics(opCtx, newsID, topics)
	})

	s.enrichStep(opCtx, newsID, "sentiment", func() error {
		sentiment, err := s.provider.Sentiment(opCtx, text)
		if err != nil {
			return err
		}
		return s.news.SetSentiment(opCtx, newsID, sentiment.Tone, sentiment.Score)
	})

	s.enrichStep(opCtx, newsID, "detect_duplicate", func() error {
		verdict, err := s.provider.DetectDuplicate(opCtx, news)
		if err != nil {
			return err
		}
		// A failed or negative check leaves is_duplicate=false, the
		// safe default.
		if !verdict.IsDuplicate {
			return nil
		}
		return s.news.SetDuplicate(opCtx, newsID, true)
	})

	s.enrichStep(opCtx, newsID, "detect_fake", func() error {
		verdict, err := s.provider.DetectFake(opCtx, news)
		if err != nil {
			return err
		}
		return s.news.SetFake(opCtx, newsID, verdict.IsFake, verdict.Confidence)
	})

	s.logger.InfoContext(opCtx, "news enriched", "news_id", newsID)
}

// enrichStep retries one operation with backoff, then gives up and logs.
func (s *ingestionService) enrichStep(ctx context.Context, newsID int64, name string, op func() error) {
	err := s.retrier.Do(ctx, op)
	if err != nil {
		s.logger.ErrorContext(ctx, "enrichment operation failed",
			"operation", name, "news_id", newsID, "error", err)
	}
}
