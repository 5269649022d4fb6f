package service

import (
	"context"
	"log/slog"

	"news-hub/domain"
	"news-hub/repository"
)

type sourceService struct {
	users   repository.UserRepository
	sources repository.SourceRepository
	logger  *slog.Logger
}

// NewSourceService creates the source service.
func NewSourceService(users repository.UserRepository, sources repository.SourceRepository, logger *slog.Logger) SourceService {
	return &sourceService{users: users, sources: sources, logger: logger}
}

// Add registers a new upstream source attributed to the submitting user.
func (s *sourceService) Add(ctx context.Context, chatID int64, name, link, sourceType string) (int64, error) {
	if name == "" || link == "" {
		return 0, domain.ErrInvalidRequest
	}
	if sourceType == "" {
		sourceType = domain.SourceTypeManual
	}

	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return 0, err
	}

	id, err := s.sources.Add(ctx, &domain.Source{
		Name:          name,
		Link:          link,
		SourceType:    sourceType,
		AddedByUserID: &user.ID,
	})
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "source registered", "source_id", id, "name", name)

	return id, nil
}

// List returns all registered sources.
func (s *sourceService) List(ctx context.Context) ([]*domain.Source, error) {
	return s.sources.List(ctx)
}
