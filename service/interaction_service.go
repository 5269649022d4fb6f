package service

import (
	"context"
	"fmt"
	"log/slog"

	"news-hub/domain"
	"news-hub/repository"
	"news-hub/utils"
)

type interactionService struct {
	users        repository.UserRepository
	interactions repository.InteractionRepository
	sanitizer    *utils.Sanitizer
	logger       *slog.Logger
}

// NewInteractionService creates the interaction service.
func NewInteractionService(
	users repository.UserRepository,
	interactions repository.InteractionRepository,
	sanitizer *utils.Sanitizer,
	logger *slog.Logger,
) InteractionService {
	return &interactionService{
		users:        users,
		interactions: interactions,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

// LogActivity records one action with its transactional side effects.
func (s *interactionService) LogActivity(ctx context.Context, chatID, newsID int64, action string, timeSpent int) error {
	if !domain.ValidAction(action) {
		return domain.ErrInvalidAction
	}

	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	return s.interactions.RecordActivity(ctx, &domain.Interaction{
		UserID:           user.ID,
		NewsID:           newsID,
		Action:           action,
		TimeSpentSeconds: timeSpent,
	})
}

// Rate upserts the user's 1..5 rating.
func (s *interactionService) Rate(ctx context.Context, chatID, newsID int64, value int) error {
	if err := domain.ValidateRating(value); err != nil {
		return err
	}

	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	return s.interactions.Rate(ctx, &domain.Rating{UserID: user.ID, NewsID: newsID, Value: value})
}

// AddBookmark saves an item; re-saving is a no-op.
func (s *interactionService) AddBookmark(ctx context.Context, chatID, newsID int64) error {
	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	return s.interactions.AddBookmark(ctx, user.ID, newsID)
}

// ListBookmarks returns the user's saved items, newest first.
func (s *interactionService) ListBookmarks(ctx context.Context, chatID int64) ([]*domain.News, error) {
	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	return s.interactions.ListBookmarks(ctx, user.ID)
}

// AddComment inserts a pending comment and bumps the lifetime counter.
func (s *interactionService) AddComment(ctx context.Context, chatID, newsID int64, parentID *int64, content string) (int64, error) {
	content = s.sanitizer.SanitizeContent(content)
	if content == "" {
		return 0, domain.ErrInvalidRequest
	}

	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return 0, err
	}

	id, err := s.interactions.AddComment(ctx, &domain.Comment{
		UserID:   user.ID,
		NewsID:   newsID,
		ParentID: parentID,
		Content:  content,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add comment: %w", err)
	}

	return id, nil
}

// ListComments returns approved comments for an item.
func (s *interactionService) ListComments(ctx context.Context, newsID int64) ([]*domain.Comment, error) {
	return s.interactions.ListComments(ctx, newsID)
}

// Report records a complaint; newsID may be nil for generic reports.
func (s *interactionService) Report(ctx context.Context, chatID int64, newsID *int64, reason string) error {
	if reason == "" {
		return domain.ErrInvalidRequest
	}

	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	return s.interactions.AddReport(ctx, &domain.Report{
		UserID: user.ID,
		NewsID: newsID,
		Reason: reason,
	})
}

// AddFeedback stores free-form product feedback.
func (s *interactionService) AddFeedback(ctx context.Context, chatID int64, message string) error {
	message = s.sanitizer.SanitizeContent(message)
	if message == "" {
		return domain.ErrInvalidRequest
	}

	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	return s.interactions.AddFeedback(ctx, &domain.Feedback{UserID: user.ID, Message: message})
}

// SubmitPoll stores one inline poll answer.
func (s *interactionService) SubmitPoll(ctx context.Context, chatID, newsID int64, question, answer string) error {
	if question == "" || answer == "" {
		return domain.ErrInvalidRequest
	}

	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	return s.interactions.AddPollResult(ctx, &domain.PollResult{
		UserID:   user.ID,
		NewsID:   newsID,
		Question: question,
		Answer:   answer,
	})
}
