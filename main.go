// ABOUTME: This file wires the application together and runs the HTTP server
// ABOUTME: Shutdown drains jobs, the consumer, and the ingestion queue in order
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"news-hub/config"
	"news-hub/consumer"
	"news-hub/domain"
	"news-hub/driver"
	"news-hub/handler"
	"news-hub/metrics"
	"news-hub/middleware"
	"news-hub/orchestrator"
	"news-hub/ratelimit"
	"news-hub/repository"
	"news-hub/retry"
	"news-hub/service"
	"news-hub/utils"
	"news-hub/utils/errors"
	"news-hub/utils/logger"
)

func main() {
	log := logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := driver.InitDB(ctx, &cfg.Database)
	if err != nil {
		log.Error("failed to initialize database pool", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	redisClient, err := driver.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Error("failed to initialize redis client", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbPool, log)
	newsRepo := repository.NewNewsRepository(dbPool, log)
	feedRepo := repository.NewFeedRepository(dbPool, log)
	filterRepo := repository.NewFilterRepository(dbPool, log)
	customFeedRepo := repository.NewCustomFeedRepository(dbPool, log)
	interactionRepo := repository.NewInteractionRepository(dbPool, log)
	subscriptionRepo := repository.NewSubscriptionRepository(dbPool, log)
	sourceRepo := repository.NewSourceRepository(dbPool, log)
	inviteRepo := repository.NewInviteRepository(dbPool, log)
	moderationRepo := repository.NewModerationRepository(dbPool, log)
	summaryRepo := repository.NewSummaryRepository(dbPool, log)

	// Shared plumbing
	sanitizer := utils.NewSanitizer()
	retrier := retry.NewRetrier(retry.RetryConfig{
		MaxAttempts:   cfg.Retry.MaxAttempts,
		BaseDelay:     cfg.Retry.BaseDelay,
		MaxDelay:      cfg.Retry.MaxDelay,
		BackoffFactor: cfg.Retry.BackoffFactor,
		JitterFactor:  cfg.Retry.JitterFactor,
	}, errors.IsRetryable, log)

	collector, err := metrics.NewCollector(cfg.Metrics, log)
	if err != nil {
		log.Error("failed to create metrics collector", "error", err)
		os.Exit(1)
	}

	provider := service.NewStubProvider()
	notifier := service.NewChatNotifier(cfg.Chat, log)

	// Services
	userService := service.NewUserService(userRepo, log)
	ingestionService := service.NewIngestionService(newsRepo, provider, sanitizer, retrier, cfg.Ingest, log)
	feedService := service.NewFeedService(userRepo, feedRepo, filterRepo, customFeedRepo, newsRepo, cfg.Trending, log)
	filterService := service.NewFilterService(userRepo, filterRepo, log)
	customFeedService := service.NewCustomFeedService(userRepo, customFeedRepo, log)
	interactionService := service.NewInteractionService(userRepo, interactionRepo, sanitizer, log)
	subscriptionService := service.NewSubscriptionService(userRepo, subscriptionRepo, log)
	aiService := service.NewAIService(provider, newsRepo, summaryRepo, redisClient, cfg.Redis.TranslationTTL, log)
	referralService := service.NewReferralService(userRepo, inviteRepo, log)
	sourceService := service.NewSourceService(userRepo, sourceRepo, log)
	moderationService := service.NewModerationService(userRepo, moderationRepo, log)
	schedulerService := service.NewSchedulerService(
		userRepo, subscriptionRepo, interactionRepo, newsRepo,
		feedService, notifier, collector, cfg.Scheduler, log)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler(log)

	contextLogger := logger.NewContextLoggerWithConfig(os.Stdout, logger.LoadLoggerConfigFromEnv())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggingMiddleware(contextLogger))

	var limiter *ratelimit.CallerLimiter
	if cfg.RateLimit.Enabled {
		limiter, err = ratelimit.NewCallerLimiter(cfg.RateLimit, log)
		if err != nil {
			log.Error("failed to create rate limiter", "error", err)
			os.Exit(1)
		}
		e.Use(middleware.RateLimitMiddleware(limiter))
	}

	h := &handler.Handlers{
		User:         handler.NewUserHandler(userService, log),
		News:         handler.NewNewsHandler(ingestionService, feedService, log),
		Filter:       handler.NewFilterHandler(filterService, log),
		CustomFeed:   handler.NewCustomFeedHandler(customFeedService, log),
		Interaction:  handler.NewInteractionHandler(interactionService, log),
		Subscription: handler.NewSubscriptionHandler(subscriptionService, log),
		AI:           handler.NewAIHandler(aiService, log),
		Invite:       handler.NewInviteHandler(referralService, log),
		Source:       handler.NewSourceHandler(sourceService, log),
		Admin:        handler.NewAdminHandler(moderationService, log),
		Health:       handler.NewHealthHandler(dbPool, log),
	}
	handler.RegisterRoutes(e, h, cfg.Auth, collector, log)

	// Background workers
	ingestionService.Start(ctx)

	eventHandler := consumer.NewNewsEventHandler(ingestionService, log)
	streamConsumer := consumer.NewConsumer(redisClient, cfg.Stream, eventHandler, log)
	if err := streamConsumer.Start(ctx); err != nil {
		log.Error("failed to start stream consumer", "error", err)
		os.Exit(1)
	}

	jobs := orchestrator.NewJobGroup(ctx, log)
	jobs.Add(orchestrator.NewJobRunner(orchestrator.JobConfig{
		Name:            "scheduler_digest",
		Interval:        cfg.Scheduler.DigestInterval,
		BackoffOnErrors: []error{domain.ErrServiceOverloaded},
	}, schedulerService.DispatchDigests, log))
	jobs.Add(orchestrator.NewJobRunner(orchestrator.JobConfig{
		Name:     "scheduler_notify",
		Interval: cfg.Scheduler.NotifyInterval,
	}, schedulerService.AutoNotify, log))
	jobs.Add(orchestrator.NewJobRunner(orchestrator.JobConfig{
		Name:           "scheduler_cleanup",
		Interval:       cfg.Scheduler.CleanupInterval,
		RunImmediately: true,
	}, schedulerService.Cleanup, log))
	if limiter != nil {
		jobs.Add(orchestrator.NewJobRunner(orchestrator.JobConfig{
			Name:     "rate_limit_eviction",
			Interval: cfg.RateLimit.IdleEviction,
		}, func(context.Context) error {
			limiter.Cleanup()
			return nil
		}, log))
	}

	if err := collector.Start(ctx); err != nil {
		log.Error("failed to start metrics server", "error", err)
		os.Exit(1)
	}

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("starting http server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	jobs.StopAll()
	streamConsumer.Stop()
	ingestionService.Stop()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", "error", err)
	}
	if err := collector.Stop(shutdownCtx); err != nil {
		log.Error("metrics server shutdown failed", "error", err)
	}

	log.Info("shutdown complete")
}
