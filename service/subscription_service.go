package service

import (
	"context"
	"log/slog"

	"news-hub/domain"
	"news-hub/repository"
)

type subscriptionService struct {
	users         repository.UserRepository
	subscriptions repository.SubscriptionRepository
	logger        *slog.Logger
}

// NewSubscriptionService creates the subscription service.
func NewSubscriptionService(users repository.UserRepository, subscriptions repository.SubscriptionRepository, logger *slog.Logger) SubscriptionService {
	return &subscriptionService{users: users, subscriptions: subscriptions, logger: logger}
}

// Subscribe activates the digest subscription with the given frequency.
func (s *subscriptionService) Subscribe(ctx context.Context, chatID int64, frequency string) error {
	if !domain.ValidFrequency(frequency) {
		return domain.ErrInvalidFrequency
	}

	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	if err := s.subscriptions.Upsert(ctx, user.ID, frequency); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "subscription updated", "user_id", user.ID, "frequency", frequency)

	return nil
}

// Unsubscribe deactivates the subscription; the row is kept.
func (s *subscriptionService) Unsubscribe(ctx context.Context, chatID int64) error {
	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	return s.subscriptions.Deactivate(ctx, user.ID)
}
