// ABOUTME: This file implements the three background sweeps: digest, notify, cleanup
// ABOUTME: Each run fans out per-user work with bounded concurrency
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news-hub/config"
	"news-hub/domain"
	"news-hub/metrics"
	"news-hub/orchestrator"
	"news-hub/repository"
)

const schedulerFanout = 4

type schedulerService struct {
	users         repository.UserRepository
	subscriptions repository.SubscriptionRepository
	interactions  repository.InteractionRepository
	news          repository.NewsRepository
	feeds         FeedService
	notifier      ChatNotifier
	collector     *metrics.Collector
	cfg           config.SchedulerConfig
	logger        *slog.Logger
}

// NewSchedulerService creates the scheduler service.
func NewSchedulerService(
	users repository.UserRepository,
	subscriptions repository.SubscriptionRepository,
	interactions repository.InteractionRepository,
	news repository.NewsRepository,
	feeds FeedService,
	notifier ChatNotifier,
	collector *metrics.Collector,
	cfg config.SchedulerConfig,
	logger *slog.Logger,
) SchedulerService {
	return &schedulerService{
		users:         users,
		subscriptions: subscriptions,
		interactions:  interactions,
		news:          news,
		feeds:         feeds,
		notifier:      notifier,
		collector:     collector,
		cfg:           cfg,
		logger:        logger,
	}
}

// digestDue applies the configured dispatch policy to one subscription.
func (s *schedulerService) digestDue(sub *domain.Subscription, now time.Time) bool {
	if !sub.Active {
		return false
	}

	if s.cfg.DigestPolicy == config.DigestPolicyCalendar && sub.Frequency == domain.FrequencyDaily {
		if now.Hour() != s.cfg.DigestDailyHour {
			return false
		}
	}

	return sub.Due(now)
}

// DispatchDigests selects due subscriptions and pushes a digest to each.
// Items are marked viewed and the subscription marked dispatched BEFORE
// the send; a failed send drops the digest rather than repeating it.
func (s *schedulerService) DispatchDigests(ctx context.Context) error {
	start := time.Now()

	subs, err := s.subscriptions.ListActive(ctx)
	if err != nil {
		s.record("scheduler_digest", start, false)
		return fmt.Errorf("failed to list subscriptions: %w", err)
	}

	now := time.Now()
	var due []*domain.Subscription
	for _, sub := range subs {
		if s.digestDue(sub, now) {
			due = append(due, sub)
		}
	}

	if len(due) == 0 {
		s.record("scheduler_digest", start, true)
		return nil
	}

	stage := orchestrator.Stage[*domain.Subscription, int]{
		Name:        "digest",
		Concurrency: schedulerFanout,
		Process: func(ctx context.Context, sub *domain.Subscription) (int, error) {
			return s.dispatchOne(ctx, sub)
		},
	}

	results := orchestrator.RunStage(ctx, stage, due)

	failures := orchestrator.CountFailures(results)

	dispatched := 0
	for _, res := range results {
		if res.Err != nil {
			s.logger.ErrorContext(ctx, "digest dispatch failed",
				"user_id", due[res.Index].UserID, "error", res.Err)
			continue
		}
		dispatched += res.Value
	}

	s.logger.InfoContext(ctx, "digest sweep finished",
		"due", len(due), "items_dispatched", dispatched, "failures", failures,
		"duration_ms", time.Since(start).Milliseconds())

	s.record("scheduler_digest", start, failures == 0)

	return nil
}

// dispatchOne sends one user's digest and returns the item count.
func (s *schedulerService) dispatchOne(ctx context.Context, sub *domain.Subscription) (int, error) {
	user, err := s.users.GetByID(ctx, sub.UserID)
	if err != nil {
		return 0, err
	}

	items, err := s.feeds.Digest(ctx, user.ChatID, sub.Period(), s.cfg.DigestBatchSize, true)
	if err != nil {
		return 0, err
	}

	// Nothing new: leave last_dispatched_at alone so the next sweep
	// tries again as soon as content arrives.
	if len(items) == 0 {
		return 0, nil
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	if err := s.interactions.MarkViewed(ctx, user.ID, ids); err != nil {
		return 0, fmt.Errorf("failed to mark digest viewed: %w", err)
	}

	if err := s.subscriptions.MarkDispatched(ctx, user.ID, time.Now()); err != nil {
		return 0, fmt.Errorf("failed to mark dispatched: %w", err)
	}

	if err := s.notifier.SendDigest(ctx, user.ChatID, items); err != nil {
		// Views stay recorded; the digest is dropped, never re-sent.
		s.logger.WarnContext(ctx, "digest send failed",
			"user_id", user.ID, "items", len(items), "error", err)
	}

	return len(items), nil
}

// AutoNotify pushes at most one next item to every auto-mode user.
func (s *schedulerService) AutoNotify(ctx context.Context) error {
	start := time.Now()

	targets, err := s.users.ListAutoNotifyTargets(ctx)
	if err != nil {
		s.record("scheduler_notify", start, false)
		return fmt.Errorf("failed to list notify targets: %w", err)
	}

	if len(targets) == 0 {
		s.record("scheduler_notify", start, true)
		return nil
	}

	stage := orchestrator.Stage[*domain.User, bool]{
		Name:        "auto_notify",
		Concurrency: schedulerFanout,
		Process: func(ctx context.Context, user *domain.User) (bool, error) {
			return s.notifyOne(ctx, user)
		},
	}

	results := orchestrator.RunStage(ctx, stage, targets)

	failures := orchestrator.CountFailures(results)

	sent := 0
	for _, res := range results {
		if res.Err != nil {
			s.logger.ErrorContext(ctx, "auto-notify failed",
				"user_id", targets[res.Index].ID, "error", res.Err)
			continue
		}
		if res.Value {
			sent++
		}
	}

	s.logger.InfoContext(ctx, "auto-notify sweep finished",
		"targets", len(targets), "sent", sent, "failures", failures,
		"duration_ms", time.Since(start).Milliseconds())

	s.record("scheduler_notify", start, failures == 0)

	return nil
}

// notifyOne delivers the next unseen item; reports whether one was sent.
func (s *schedulerService) notifyOne(ctx context.Context, user *domain.User) (bool, error) {
	items, err := s.feeds.Feed(ctx, user.ChatID, 1, 0)
	if err != nil {
		return false, err
	}
	if len(items) == 0 {
		return false, nil
	}

	item := items[0]

	if err := s.interactions.MarkViewed(ctx, user.ID, []int64{item.ID}); err != nil {
		return false, fmt.Errorf("failed to mark notification viewed: %w", err)
	}

	if err := s.notifier.SendSingle(ctx, user.ChatID, item); err != nil {
		// Marked viewed already; dropping beats a notification loop on
		// a permanently unreachable user.
		s.logger.WarnContext(ctx, "notification send failed",
			"user_id", user.ID, "news_id", item.ID, "error", err)
	}

	return true, nil
}

// Cleanup archives expired items and deletes the unbookmarked ones.
// Archive always precedes delete; both steps are idempotent.
func (s *schedulerService) Cleanup(ctx context.Context) error {
	start := time.Now()

	archived, err := s.news.ArchiveExpired(ctx)
	if err != nil {
		s.record("scheduler_cleanup", start, false)
		return fmt.Errorf("cleanup archive step failed: %w", err)
	}

	deleted, err := s.news.DeleteExpiredUnbookmarked(ctx)
	if err != nil {
		s.record("scheduler_cleanup", start, false)
		return fmt.Errorf("cleanup delete step failed: %w", err)
	}

	s.logger.InfoContext(ctx, "cleanup sweep finished",
		"archived", archived, "deleted", deleted,
		"duration_ms", time.Since(start).Milliseconds())

	s.record("scheduler_cleanup", start, true)

	return nil
}

func (s *schedulerService) record(job string, start time.Time, success bool) {
	if s.collector != nil {
		s.collector.RecordRequest(job, time.Since(start), success)
	}
}
