package service

import (
	"context"
	"log/slog"

	"news-hub/domain"
	"news-hub/repository"

	"github.com/google/uuid"
)

type referralService struct {
	users   repository.UserRepository
	invites repository.InviteRepository
	logger  *slog.Logger
}

// NewReferralService creates the referral service.
func NewReferralService(users repository.UserRepository, invites repository.InviteRepository, logger *slog.Logger) ReferralService {
	return &referralService{users: users, invites: invites, logger: logger}
}

// Generate issues a fresh opaque invite code for the inviter.
func (s *referralService) Generate(ctx context.Context, inviterChatID int64) (*domain.Invite, error) {
	user, err := s.users.GetByChatID(ctx, inviterChatID)
	if err != nil {
		return nil, err
	}

	return s.invites.Create(ctx, user.ID, uuid.NewString())
}

// Accept claims an invite for the invited user. Claim, inviter link,
// level bump, and premium grant are one transaction in the repository.
func (s *referralService) Accept(ctx context.Context, code string, invitedChatID int64) (*domain.User, error) {
	if code == "" {
		return nil, domain.ErrInviteInvalid
	}

	invited, err := s.users.GetByChatID(ctx, invitedChatID)
	if err != nil {
		return nil, err
	}

	user, err := s.invites.Accept(ctx, code, invited.ID, domain.PremiumInviteGrant)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "invite accepted", "invited_user_id", user.ID)

	return user, nil
}
