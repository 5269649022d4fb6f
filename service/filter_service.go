package service

import (
	"context"
	"fmt"
	"log/slog"

	"news-hub/domain"
	"news-hub/repository"
)

type filterService struct {
	users   repository.UserRepository
	filters repository.FilterRepository
	logger  *slog.Logger
}

// NewFilterService creates the filter service.
func NewFilterService(users repository.UserRepository, filters repository.FilterRepository, logger *slog.Logger) FilterService {
	return &filterService{users: users, filters: filters, logger: logger}
}

// Update upserts the supplied fields; nil fields keep their value.
func (s *filterService) Update(ctx context.Context, chatID int64, filter *domain.Filter) error {
	if filter == nil {
		return domain.ErrInvalidRequest
	}

	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	filter.UserID = user.ID
	if err := s.filters.Upsert(ctx, filter); err != nil {
		return fmt.Errorf("failed to update filter: %w", err)
	}

	return nil
}

// Get returns the user's filter; a user with no row gets an empty filter.
func (s *filterService) Get(ctx context.Context, chatID int64) (*domain.Filter, error) {
	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	return s.filters.Get(ctx, user.ID)
}

// Reset removes the user's filter row.
func (s *filterService) Reset(ctx context.Context, chatID int64) error {
	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	return s.filters.Reset(ctx, user.ID)
}

// Block adds one blocklist entry; duplicates are silently kept.
func (s *filterService) Block(ctx context.Context, chatID int64, blockType, value string) error {
	if value == "" || !domain.ValidBlockType(blockType) {
		return domain.ErrInvalidBlockType
	}

	user, err := s.users.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}

	block := &domain.Block{UserID: user.ID, BlockType: blockType, Value: value}
	if err := s.filters.AddBlock(ctx, block); err != nil {
		return fmt.Errorf("failed to add block: %w", err)
	}

	s.logger.InfoContext(ctx, "block added",
		"user_id", user.ID, "block_type", blockType, "value", value)

	return nil
}
