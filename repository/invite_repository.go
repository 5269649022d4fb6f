package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"news-hub/domain"

	"github.com/jackc/pgx/v5"
)

// InviteRepository implementation.
type inviteRepository struct {
	db     Pool
	logger *slog.Logger
}

// NewInviteRepository creates a new invite repository.
func NewInviteRepository(db Pool, logger *slog.Logger) InviteRepository {
	return &inviteRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a fresh invite code bound to its issuer.
func (r *inviteRepository) Create(ctx context.Context, inviterID int64, code string) (*domain.Invite, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to create invite: database connection is nil")
	}

	query := `
		INSERT INTO invites (inviter_id, invite_code)
		VALUES ($1, $2)
		RETURNING id, inviter_id, invited_user_id, invite_code, created_at, accepted_at
	`

	var inv domain.Invite
	err := r.db.QueryRow(ctx, query, inviterID, code).Scan(
		&inv.ID, &inv.InviterID, &inv.InvitedUserID, &inv.InviteCode, &inv.CreatedAt, &inv.AcceptedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.ErrorContext(ctx, "failed to create invite", "error", err, "inviter_id", inviterID)
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	r.logger.InfoContext(ctx, "invite created", "invite_id", inv.ID, "inviter_id", inviterID)

	return &inv, nil
}

// Accept claims a code for one user. The invite row is locked for the
// whole transaction so a code can never be claimed twice: claim, link
// the inviter, bump the inviter's level, and grant the invited user
// premium, all or nothing.
func (r *inviteRepository) Accept(ctx context.Context, code string, invitedUserID int64, premiumGrant time.Duration) (*domain.User, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to accept invite: database connection is nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var inviteID, inviterID int64
	var claimedBy *int64
	err = tx.QueryRow(ctx,
		`SELECT id, inviter_id, invited_user_id FROM invites WHERE invite_code = $1 FOR UPDATE`,
		code).Scan(&inviteID, &inviterID, &claimedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInviteInvalid
		}
		r.logger.ErrorContext(ctx, "failed to look up invite", "error", err)
		return nil, fmt.Errorf("failed to look up invite: %w", err)
	}

	if claimedBy != nil {
		return nil, domain.ErrInviteInvalid
	}

	if inviterID == invitedUserID {
		return nil, domain.ErrSelfReferral
	}

	_, err = tx.Exec(ctx,
		`UPDATE invites SET invited_user_id = $2, accepted_at = NOW() WHERE id = $1`,
		inviteID, invitedUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim invite: %w", err)
	}

	// First accepted invite wins the inviter slot; later codes still
	// grant bonuses but do not rewrite provenance.
	_, err = tx.Exec(ctx,
		`UPDATE users SET inviter_id = $2 WHERE id = $1 AND inviter_id IS NULL`,
		invitedUserID, inviterID)
	if err != nil {
		return nil, fmt.Errorf("failed to link inviter: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE users SET level = level + 1 WHERE id = $1`, inviterID)
	if err != nil {
		return nil, fmt.Errorf("failed to reward inviter: %w", err)
	}

	query := `
		UPDATE users SET is_premium = TRUE, premium_expires_at = NOW() + $2
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(tx.QueryRow(ctx, query, invitedUserID, premiumGrant))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to grant premium: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.InfoContext(ctx, "invite accepted",
		"invite_id", inviteID, "inviter_id", inviterID, "invited_user_id", invitedUserID)

	return user, nil
}
