package service

import (
	"context"
	"fmt"
	"log/slog"

	"news-hub/domain"
	"news-hub/repository"
)

// Moderation action vocabulary.
const (
	ActionApproveNews    = "approve_news"
	ActionRejectNews     = "reject_news"
	ActionApproveComment = "approve_comment"
	ActionRejectComment  = "reject_comment"
	ActionBlockSource    = "block_source"
	ActionUnblockSource  = "unblock_source"
)

type moderationService struct {
	users      repository.UserRepository
	moderation repository.ModerationRepository
	logger     *slog.Logger
}

// NewModerationService creates the moderation service.
func NewModerationService(users repository.UserRepository, moderation repository.ModerationRepository, logger *slog.Logger) ModerationService {
	return &moderationService{users: users, moderation: moderation, logger: logger}
}

// Moderate applies one admin decision and records the audit row. Unknown
// actions are rejected before any lookup.
func (s *moderationService) Moderate(ctx context.Context, adminChatID int64, actionType string, targetID int64, details map[string]any) error {
	switch actionType {
	case ActionApproveNews, ActionRejectNews, ActionApproveComment,
		ActionRejectComment, ActionBlockSource, ActionUnblockSource:
	default:
		return domain.ErrUnknownModerationAction
	}

	admin, err := s.users.GetByChatID(ctx, adminChatID)
	if err != nil {
		return err
	}

	reason, _ := details["reason"].(string)

	switch actionType {
	case ActionApproveNews:
		err = s.moderation.SetNewsStatus(ctx, admin.ID, targetID, domain.ModerationApproved)
	case ActionRejectNews:
		err = s.moderation.SetNewsStatus(ctx, admin.ID, targetID, domain.ModerationRejected)
	case ActionApproveComment:
		err = s.moderation.SetCommentStatus(ctx, admin.ID, targetID, domain.ModerationApproved)
	case ActionRejectComment:
		err = s.moderation.SetCommentStatus(ctx, admin.ID, targetID, domain.ModerationRejected)
	case ActionBlockSource:
		err = s.moderation.SetSourceStatus(ctx, admin.ID, targetID, domain.SourceBlocked, reason)
	case ActionUnblockSource:
		err = s.moderation.SetSourceStatus(ctx, admin.ID, targetID, domain.SourceActive, reason)
	}

	if err != nil {
		return fmt.Errorf("failed to apply moderation action %s: %w", actionType, err)
	}

	s.logger.InfoContext(ctx, "moderation action applied",
		"admin_user_id", admin.ID, "action", actionType, "target_id", targetID)

	return nil
}
