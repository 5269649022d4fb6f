package service

import (
	"context"
	"fmt"
	"log/slog"

	"news-hub/domain"
	"news-hub/repository"
)

type customFeedService struct {
	users  repository.UserRepository
	custom repository.CustomFeedRepository
	logger *slog.Logger
}

// NewCustomFeedService creates the custom feed service.
func NewCustomFeedService(users repository.UserRepository, custom repository.CustomFeedRepository, logger *slog.Logger) CustomFeedService {
	return &customFeedService{users: users, custom: custom, logger: logger}
}

// Create stores a named feed built from the wire filter map.
func (s *customFeedService) Create(ctx context.Context, chatID int64, name string, filters map[string][]string) (int64, error) {
	if name == "" {
		return 0, domain.ErrInvalidRequest
	}

	parsed, err := domain.FeedFiltersFromMap(filters)
	if err != nil {
		return 0, err
	}

	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return 0, err
	}

	id, err := s.custom.Create(ctx, &domain.CustomFeed{
		UserID:  user.ID,
		Name:    name,
		Filters: parsed,
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// List returns the user's feeds.
func (s *customFeedService) List(ctx context.Context, chatID int64) ([]*domain.CustomFeed, error) {
	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	return s.custom.ListByUser(ctx, user.ID)
}

// Switch sets the user's active feed. Switching to another user's feed
// is forbidden; feedID 0 clears the selection.
func (s *customFeedService) Switch(ctx context.Context, chatID, feedID int64) error {
	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	if feedID == 0 {
		return s.users.SetCurrentFeed(ctx, user.ID, nil)
	}

	feed, err := s.custom.GetByID(ctx, feedID)
	if err != nil {
		return err
	}

	if feed.UserID != user.ID {
		return domain.ErrFeedNotOwned
	}

	if err := s.users.SetCurrentFeed(ctx, user.ID, &feedID); err != nil {
		return fmt.Errorf("failed to switch feed: %w", err)
	}

	s.logger.InfoContext(ctx, "active feed switched", "user_id", user.ID, "feed_id", feedID)

	return nil
}
