package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news-hub/domain"
	"news-hub/repository"
)

type userService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserService creates the user service.
func NewUserService(users repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{users: users, logger: logger}
}

// Register upserts the user by chat ID. Re-registration only touches the
// fields the caller supplied.
func (s *userService) Register(ctx context.Context, params *domain.RegisterParams) (*domain.User, error) {
	if params == nil || params.ChatID == 0 {
		return nil, domain.ErrInvalidRequest
	}

	if params.ViewMode != nil &&
		*params.ViewMode != domain.ViewModeManual && *params.ViewMode != domain.ViewModeAuto {
		return nil, domain.ErrInvalidRequest
	}

	user, err := s.users.Register(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "chat_id", user.ChatID)

	return user, nil
}

// Profile returns the user's profile with effective premium computed.
func (s *userService) Profile(ctx context.Context, chatID int64) (*Profile, error) {
	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		UserID:            user.ID,
		ChatID:            user.ChatID,
		Language:          user.Language,
		Country:           user.Country,
		SafeMode:          user.SafeMode,
		CurrentFeedID:     user.CurrentFeedID,
		IsPremium:         user.PremiumActive(time.Now()),
		PremiumExpiresAt:  user.PremiumExpiresAt,
		Level:             user.Level,
		Badges:            user.Badges,
		Email:             user.Email,
		AutoNotifications: user.AutoNotifications,
		ViewMode:          user.ViewMode,
	}, nil
}

// Analytics returns lifetime counters alongside progress fields.
func (s *userService) Analytics(ctx context.Context, chatID int64) (*Analytics, error) {
	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	stats, err := s.users.GetStats(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}

	return &Analytics{
		UserID:     user.ID,
		Stats:      stats,
		Level:      user.Level,
		Badges:     user.Badges,
		LastActive: stats.LastActive,
	}, nil
}

// GamificationStats returns the progress view shared with the front-end.
func (s *userService) GamificationStats(ctx context.Context, chatID int64) (*domain.GamificationStats, error) {
	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	stats, err := s.users.GetStats(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}

	return &domain.GamificationStats{
		UserID:   user.ID,
		Level:    user.Level,
		Badges:   user.Badges,
		Viewed:   stats.Viewed,
		ReadFull: stats.ReadFullCount,
		Saved:    stats.Saved,
		Comments: stats.CommentsCount,
	}, nil
}
