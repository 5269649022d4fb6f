package repository

import (
	"context"
	"fmt"
	"log/slog"

	"news-hub/domain"
)

// InteractionRepository implementation. Every logical event that touches
// more than one row runs inside a single transaction so counters can
// never drift below the activity log.
type interactionRepository struct {
	db     Pool
	logger *slog.Logger
}

// NewInteractionRepository creates a new interaction repository.
func NewInteractionRepository(db Pool, logger *slog.Logger) InteractionRepository {
	return &interactionRepository{
		db:     db,
		logger: logger,
	}
}

// actionStatColumns maps activity actions onto user_stats counters.
var actionStatColumns = map[string]string{
	domain.ActionView:     "viewed",
	domain.ActionReadFull: "read_full_count",
	domain.ActionSkip:     "skipped_count",
	domain.ActionLike:     "liked_count",
	domain.ActionDislike:  "disliked_count",
	domain.ActionSave:     "saved",
}

// RecordActivity appends one interaction and applies its side effects:
// the seen-set upsert for view/read_full, the matching counter bump,
// a bookmark for save, and a last-write-wins reaction for like/dislike.
func (r *interactionRepository) RecordActivity(ctx context.Context, activity *domain.Interaction) error {
	if activity == nil {
		return fmt.Errorf("activity cannot be nil")
	}

	if !domain.ValidAction(activity.Action) {
		return domain.ErrInvalidAction
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to record activity: database connection is nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO interactions (user_id, news_id, action, time_spent_seconds) VALUES ($1, $2, $3, $4)`,
		activity.UserID, activity.NewsID, activity.Action, activity.TimeSpentSeconds)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNewsNotFound
		}
		r.logger.ErrorContext(ctx, "failed to insert interaction",
			"error", err, "user_id", activity.UserID, "news_id", activity.NewsID)
		return fmt.Errorf("failed to insert interaction: %w", err)
	}

	if activity.Action == domain.ActionView || activity.Action == domain.ActionReadFull {
		readFull := activity.Action == domain.ActionReadFull
		_, err = tx.Exec(ctx, `
			INSERT INTO user_news_views (user_id, news_id, viewed, read_full, time_spent_seconds, first_viewed_at, last_viewed_at)
			VALUES ($1, $2, TRUE, $3, $4, NOW(), NOW())
			ON CONFLICT (user_id, news_id) DO UPDATE SET
				viewed = TRUE,
				read_full = user_news_views.read_full OR EXCLUDED.read_full,
				time_spent_seconds = user_news_views.time_spent_seconds + EXCLUDED.time_spent_seconds,
				last_viewed_at = NOW()
		`, activity.UserID, activity.NewsID, readFull, activity.TimeSpentSeconds)
		if err != nil {
			return fmt.Errorf("failed to upsert view state: %w", err)
		}
	}

	if activity.Action == domain.ActionSave {
		_, err = tx.Exec(ctx, `
			INSERT INTO bookmarks (user_id, news_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, news_id) DO NOTHING
		`, activity.UserID, activity.NewsID)
		if err != nil {
			return fmt.Errorf("failed to insert bookmark: %w", err)
		}
	}

	if activity.Action == domain.ActionLike || activity.Action == domain.ActionDislike {
		_, err = tx.Exec(ctx, `
			INSERT INTO reactions (user_id, news_id, reaction)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, news_id) DO UPDATE SET
				reaction = EXCLUDED.reaction, created_at = NOW()
		`, activity.UserID, activity.NewsID, activity.Action)
		if err != nil {
			return fmt.Errorf("failed to upsert reaction: %w", err)
		}
	}

	if err := incrementUserStat(ctx, tx, activity.UserID, actionStatColumns[activity.Action], 1); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.InfoContext(ctx, "activity recorded",
		"user_id", activity.UserID, "news_id", activity.NewsID, "action", activity.Action)

	return nil
}

// MarkViewed bulk-adds items to the user's seen-set. Used by the digest
// and notifier paths before anything is sent, so retries cannot deliver
// the same item twice. Does not touch counters: only explicit user
// actions count toward stats.
func (r *interactionRepository) MarkViewed(ctx context.Context, userID int64, newsIDs []int64) error {
	if len(newsIDs) == 0 {
		return nil
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to mark viewed: database connection is nil")
	}

	query := `
		INSERT INTO user_news_views (user_id, news_id, viewed, first_viewed_at, last_viewed_at)
		SELECT $1, unnest($2::bigint[]), TRUE, NOW(), NOW()
		ON CONFLICT (user_id, news_id) DO UPDATE SET
			viewed = TRUE, last_viewed_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, userID, newsIDs); err != nil {
		r.logger.ErrorContext(ctx, "failed to mark viewed", "error", err, "user_id", userID)
		return fmt.Errorf("failed to mark viewed: %w", err)
	}

	return nil
}

// AddComment inserts a pending comment and bumps the lifetime comment
// counter immediately. Moderation outcomes never rewind the counter.
func (r *interactionRepository) AddComment(ctx context.Context, comment *domain.Comment) (int64, error) {
	if comment == nil {
		return 0, fmt.Errorf("comment cannot be nil")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return 0, fmt.Errorf("failed to add comment: database connection is nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO comments (user_id, news_id, parent_comment_id, content, moderation_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, comment.UserID, comment.NewsID, comment.ParentID, comment.Content, domain.ModerationPending).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNewsNotFound
		}
		r.logger.ErrorContext(ctx, "failed to insert comment",
			"error", err, "user_id", comment.UserID, "news_id", comment.NewsID)
		return 0, fmt.Errorf("failed to insert comment: %w", err)
	}

	if err := incrementUserStat(ctx, tx, comment.UserID, "comments_count", 1); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.InfoContext(ctx, "comment added",
		"comment_id", id, "user_id", comment.UserID, "news_id", comment.NewsID)

	return id, nil
}

// ListComments returns approved comments for one item, oldest first.
func (r *interactionRepository) ListComments(ctx context.Context, newsID int64) ([]*domain.Comment, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to list comments: database connection is nil")
	}

	query := `
		SELECT id, user_id, news_id, parent_comment_id, content, moderation_status, created_at
		FROM comments
		WHERE news_id = $1 AND moderation_status = $2
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, newsID, domain.ModerationApproved)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list comments", "error", err, "news_id", newsID)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.NewsID, &c.ParentID, &c.Content, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return comments, nil
}

// Rate upserts the user's 1..5 rating for an item.
func (r *interactionRepository) Rate(ctx context.Context, rating *domain.Rating) error {
	if rating == nil {
		return fmt.Errorf("rating cannot be nil")
	}

	if err := domain.ValidateRating(rating.Value); err != nil {
		return err
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to rate news: database connection is nil")
	}

	query := `
		INSERT INTO ratings (user_id, news_id, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, news_id) DO UPDATE SET
			value = EXCLUDED.value, created_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, rating.UserID, rating.NewsID, rating.Value); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNewsNotFound
		}
		r.logger.ErrorContext(ctx, "failed to rate news",
			"error", err, "user_id", rating.UserID, "news_id", rating.NewsID)
		return fmt.Errorf("failed to rate news: %w", err)
	}

	return nil
}

// AddBookmark saves one item; saving twice keeps a single row.
func (r *interactionRepository) AddBookmark(ctx context.Context, userID, newsID int64) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to add bookmark: database connection is nil")
	}

	query := `
		INSERT INTO bookmarks (user_id, news_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, news_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, userID, newsID); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNewsNotFound
		}
		r.logger.ErrorContext(ctx, "failed to add bookmark",
			"error", err, "user_id", userID, "news_id", newsID)
		return fmt.Errorf("failed to add bookmark: %w", err)
	}

	return nil
}

// ListBookmarks returns saved items newest first. Bookmarked rows
// survive cleanup, so this can reach past the freshness window.
func (r *interactionRepository) ListBookmarks(ctx context.Context, userID int64) ([]*domain.News, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to list bookmarks: database connection is nil")
	}

	query := `
		SELECT ` + newsColumns + `
		FROM bookmarks b
		JOIN news n ON n.id = b.news_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, n.id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list bookmarks", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	return collectNews(rows)
}

// AddReport appends a complaint and bumps the reported counter in one
// transaction. NewsID may be nil for generic reports.
func (r *interactionRepository) AddReport(ctx context.Context, report *domain.Report) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to add report: database connection is nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO reports (user_id, news_id, reason) VALUES ($1, $2, $3)`,
		report.UserID, report.NewsID, report.Reason)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNewsNotFound
		}
		r.logger.ErrorContext(ctx, "failed to insert report", "error", err, "user_id", report.UserID)
		return fmt.Errorf("failed to insert report: %w", err)
	}

	if err := incrementUserStat(ctx, tx, report.UserID, "reported", 1); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AddFeedback stores free-form product feedback.
func (r *interactionRepository) AddFeedback(ctx context.Context, feedback *domain.Feedback) error {
	if feedback == nil {
		return fmt.Errorf("feedback cannot be nil")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to add feedback: database connection is nil")
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO feedback (user_id, message) VALUES ($1, $2)`,
		feedback.UserID, feedback.Message)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to add feedback", "error", err, "user_id", feedback.UserID)
		return fmt.Errorf("failed to add feedback: %w", err)
	}

	return nil
}

// AddPollResult stores one poll answer.
func (r *interactionRepository) AddPollResult(ctx context.Context, result *domain.PollResult) error {
	if result == nil {
		return fmt.Errorf("poll result cannot be nil")
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to add poll result: database connection is nil")
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO poll_results (user_id, news_id, question, answer) VALUES ($1, $2, $3, $4)`,
		result.UserID, result.NewsID, result.Question, result.Answer)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNewsNotFound
		}
		r.logger.ErrorContext(ctx, "failed to add poll result", "error", err, "user_id", result.UserID)
		return fmt.Errorf("failed to add poll result: %w", err)
	}

	return nil
}
