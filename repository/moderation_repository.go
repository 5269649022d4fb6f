package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"news-hub/domain"

	"github.com/jackc/pgx/v5"
)

// ModerationRepository implementation. Every decision lands in the
// admin_actions audit table inside the same transaction as the state
// change it describes.
type moderationRepository struct {
	db     Pool
	logger *slog.Logger
}

// NewModerationRepository creates a new moderation repository.
func NewModerationRepository(db Pool, logger *slog.Logger) ModerationRepository {
	return &moderationRepository{
		db:     db,
		logger: logger,
	}
}

func auditAction(ctx context.Context, tx pgx.Tx, adminUserID int64, action string, targetID int64, details map[string]any) error {
	var doc []byte
	if details != nil {
		var err error
		if doc, err = json.Marshal(details); err != nil {
			return fmt.Errorf("failed to encode audit details: %w", err)
		}
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO admin_actions (admin_user_id, action_type, target_id, details) VALUES ($1, $2, $3, $4)`,
		adminUserID, action, targetID, doc)
	if err != nil {
		return fmt.Errorf("failed to write audit row: %w", err)
	}

	return nil
}

// SetNewsStatus moves a pending item to approved or rejected. The
// pending guard makes both transitions terminal.
func (r *moderationRepository) SetNewsStatus(ctx context.Context, adminUserID, newsID int64, status string) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to moderate news: database connection is nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE news SET moderation_status = $2 WHERE id = $1 AND moderation_status = $3`,
		newsID, status, domain.ModerationPending)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to moderate news", "error", err, "news_id", newsID)
		return fmt.Errorf("failed to moderate news: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM news WHERE id = $1)`, newsID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check news: %w", err)
		}
		if !exists {
			return domain.ErrNewsNotFound
		}
		return domain.ErrAlreadyModerated
	}

	if err := auditAction(ctx, tx, adminUserID, "news_"+status, newsID, nil); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.InfoContext(ctx, "news moderated",
		"news_id", newsID, "status", status, "admin_user_id", adminUserID)

	return nil
}

// SetCommentStatus moves a pending comment to approved or rejected.
func (r *moderationRepository) SetCommentStatus(ctx context.Context, adminUserID, commentID int64, status string) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to moderate comment: database connection is nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE comments SET moderation_status = $2 WHERE id = $1 AND moderation_status = $3`,
		commentID, status, domain.ModerationPending)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to moderate comment", "error", err, "comment_id", commentID)
		return fmt.Errorf("failed to moderate comment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1)`, commentID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check comment: %w", err)
		}
		if !exists {
			return domain.ErrCommentNotFound
		}
		return domain.ErrAlreadyModerated
	}

	if err := auditAction(ctx, tx, adminUserID, "comment_"+status, commentID, nil); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.InfoContext(ctx, "comment moderated",
		"comment_id", commentID, "status", status, "admin_user_id", adminUserID)

	return nil
}

// SetSourceStatus flips a source between active and blocked. Blocking
// records the reason in blocked_sources; unblocking clears it.
func (r *moderationRepository) SetSourceStatus(ctx context.Context, adminUserID, sourceID int64, status, reason string) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to moderate source: database connection is nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE sources SET status = $2 WHERE id = $1`, sourceID, status)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to moderate source", "error", err, "source_id", sourceID)
		return fmt.Errorf("failed to moderate source: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSourceNotFound
	}

	if status == domain.SourceBlocked {
		_, err = tx.Exec(ctx, `
			INSERT INTO blocked_sources (source_id, reason)
			VALUES ($1, $2)
			ON CONFLICT (source_id) DO UPDATE SET reason = EXCLUDED.reason
		`, sourceID, reason)
	} else {
		_, err = tx.Exec(ctx, `DELETE FROM blocked_sources WHERE source_id = $1`, sourceID)
	}
	if err != nil {
		return fmt.Errorf("failed to update blocked sources: %w", err)
	}

	var details map[string]any
	if reason != "" {
		details = map[string]any{"reason": reason}
	}
	if err := auditAction(ctx, tx, adminUserID, "source_"+status, sourceID, details); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.InfoContext(ctx, "source moderated",
		"source_id", sourceID, "status", status, "admin_user_id", adminUserID)

	return nil
}
