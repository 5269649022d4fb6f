// ABOUTME: This file implements the ingestion entry point and its bounded queue
// ABOUTME: Submissions are validated, sanitized, persisted, then enriched async
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"news-hub/config"
	"news-hub/domain"
	"news-hub/repository"
	"news-hub/retry"
	"news-hub/utils"
)

type ingestionService struct {
	news      repository.NewsRepository
	provider  EnrichmentProvider
	sanitizer *utils.Sanitizer
	retrier   *retry.Retrier
	cfg       config.IngestConfig
	logger    *slog.Logger

	queue chan int64
	wg    sync.WaitGroup
	once  sync.Once
}

// NewIngestionService creates the ingestion service with a bounded
// enrichment queue sized from config.
func NewIngestionService(
	news repository.NewsRepository,
	provider EnrichmentProvider,
	sanitizer *utils.Sanitizer,
	retrier *retry.Retrier,
	cfg config.IngestConfig,
	logger *slog.Logger,
) IngestionService {
	return &ingestionService{
		news:      news,
		provider:  provider,
		sanitizer: sanitizer,
		retrier:   retrier,
		cfg:       cfg,
		logger:    logger,
		queue:     make(chan int64, cfg.QueueCapacity),
	}
}

// Submit validates and persists one submission, then enqueues it for
// enrichment. A full queue fails fast before anything is written.
func (s *ingestionService) Submit(ctx context.Context, sub *domain.NewsSubmission) (int64, error) {
	if err := validateSubmission(sub); err != nil {
		return 0, err
	}

	if len(s.queue) >= cap(s.queue) {
		s.logger.WarnContext(ctx, "enrichment queue full, rejecting submission",
			"source", sub.Source, "capacity", cap(s.queue))
		return 0, domain.ErrServiceOverloaded
	}

	news := s.buildNews(sub)

	id, err := s.news.Insert(ctx, news)
	if err != nil {
		return 0, fmt.Errorf("failed to submit news: %w", err)
	}

	select {
	case s.queue <- id:
	default:
		// The pre-check raced with other submitters. The item stays
		// queryable with no enrichment, which the resolver tolerates.
		s.logger.WarnContext(ctx, "enrichment queue filled during submit, skipping enqueue",
			"news_id", id)
	}

	return id, nil
}

func validateSubmission(sub *domain.NewsSubmission) error {
	if sub == nil {
		return domain.ErrInvalidRequest
	}
	if sub.Title == "" || sub.Content == "" || sub.Lang == "" || sub.Source == "" {
		return domain.ErrInvalidRequest
	}
	if sub.MediaType != "" && !domain.ValidMediaType(sub.MediaType) {
		return domain.ErrInvalidRequest
	}
	if sub.PublishedAt != nil && sub.ExpiresAt != nil && !sub.ExpiresAt.After(*sub.PublishedAt) {
		return domain.ErrInvalidRequest
	}
	return nil
}

func (s *ingestionService) buildNews(sub *domain.NewsSubmission) *domain.News {
	now := time.Now()

	publishedAt := now
	if sub.PublishedAt != nil {
		publishedAt = *sub.PublishedAt
	}

	expiresAt := publishedAt.Add(s.cfg.DefaultTTL)
	if sub.ExpiresAt != nil {
		expiresAt = *sub.ExpiresAt
	}

	sourceType := sub.SourceType
	if sourceType == "" {
		sourceType = domain.SourceTypeManual
	}

	mediaType := sub.MediaType
	if mediaType == "" {
		mediaType = domain.MediaNone
	}

	status := domain.ModerationPending
	if slices.Contains(s.cfg.TrustedSourceTypes, sourceType) {
		status = domain.ModerationApproved
	}

	return &domain.News{
		Title:            s.sanitizer.SanitizeTitle(sub.Title),
		Content:          s.sanitizer.SanitizeContent(sub.Content),
		Lang:             sub.Lang,
		Country:          sub.Country,
		Tags:             sub.Tags,
		Source:           sub.Source,
		SourceType:       sourceType,
		Link:             sub.Link,
		MediaType:        mediaType,
		FileID:           sub.FileID,
		PublishedAt:      publishedAt,
		ExpiresAt:        expiresAt,
		ModerationStatus: status,
	}
}

// Start launches the enrichment workers. Workers drain until Stop closes
// the queue or the context is cancelled.
func (s *ingestionService) Start(ctx context.Context) {
	for i := 0; i < s.cfg.Workers; i++ {
		s.wg.Add(1)
		go s.worker(ctx, i)
	}

	s.logger.InfoContext(ctx, "enrichment workers started",
		"workers", s.cfg.Workers, "queue_capacity", cap(s.queue))
}

// Stop closes the queue and waits for in-flight enrichment to finish.
func (s *ingestionService) Stop() {
	s.once.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}

func (s *ingestionService) worker(ctx context.Context, workerID int) {
	defer s.wg.Done()

	s.logger.Debug("enrichment worker running", "worker_id", workerID)

	for {
		select {
		case <-ctx.Done():
			return
		case newsID, ok := <-s.queue:
			if !ok {
				return
			}
			s.enrich(ctx, newsID)
		}
	}
}
