package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"news-hub/domain"

	"github.com/jackc/pgx/v5"
)

// UserRepository implementation.
type userRepository struct {
	db     Pool
	logger *slog.Logger
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db Pool, logger *slog.Logger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

const userColumns = `id, chat_id, language, country, safe_mode, current_feed_id,
	is_premium, premium_expires_at, level, badges, email, auto_notifications,
	view_mode, inviter_id, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.ChatID, &u.Language, &u.Country, &u.SafeMode, &u.CurrentFeedID,
		&u.IsPremium, &u.PremiumExpiresAt, &u.Level, &u.Badges, &u.Email,
		&u.AutoNotifications, &u.ViewMode, &u.InviterID, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Register creates a user keyed by chat ID, or partially updates an
// existing one. A premium flag set to true grants thirty days from now;
// set to false it revokes the grant.
func (r *userRepository) Register(ctx context.Context, reg *domain.RegisterParams) (*domain.User, error) {
	if reg == nil {
		r.logger.ErrorContext(ctx, "registration params cannot be nil")
		return nil, fmt.Errorf("registration params cannot be nil")
	}

	if reg.ChatID == 0 {
		return nil, fmt.Errorf("chat ID is required: %w", domain.ErrInvalidRequest)
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to register user: database connection is nil")
	}

	r.logger.InfoContext(ctx, "registering user", "chat_id", reg.ChatID)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var existingID int64
	err = tx.QueryRow(ctx, `SELECT id FROM users WHERE chat_id = $1`, reg.ChatID).Scan(&existingID)

	var user *domain.User
	switch {
	case err == nil:
		user, err = r.updateExisting(ctx, tx, existingID, reg)
	case errors.Is(err, pgx.ErrNoRows):
		user, err = r.insertNew(ctx, tx, reg)
	default:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "chat_id", user.ChatID)

	return user, nil
}

func (r *userRepository) insertNew(ctx context.Context, tx pgx.Tx, reg *domain.RegisterParams) (*domain.User, error) {
	language := "en"
	if reg.Language != nil {
		language = *reg.Language
	}
	country := ""
	if reg.Country != nil {
		country = *reg.Country
	}
	safeMode := false
	if reg.SafeMode != nil {
		safeMode = *reg.SafeMode
	}
	autoNotifications := false
	if reg.AutoNotifications != nil {
		autoNotifications = *reg.AutoNotifications
	}
	viewMode := domain.ViewModeManual
	if reg.ViewMode != nil {
		viewMode = *reg.ViewMode
	}

	isPremium := reg.IsPremium != nil && *reg.IsPremium
	var premiumExpiresAt *time.Time
	if isPremium {
		t := time.Now().Add(domain.PremiumRegisterGrant)
		premiumExpiresAt = &t
	}

	query := `
		INSERT INTO users (chat_id, language, country, safe_mode, email,
			is_premium, premium_expires_at, auto_notifications, view_mode, level, badges)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, '{}')
		RETURNING ` + userColumns

	user, err := scanUser(tx.QueryRow(ctx, query,
		reg.ChatID, language, country, safeMode, reg.Email,
		isPremium, premiumExpiresAt, autoNotifications, viewMode))
	if err != nil {
		// chat_id uniqueness is settled by the lookup in the same tx, so a
		// unique violation here means the email is taken.
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	// Counters start at zero so analytics never have to special-case
	// missing rows for fresh accounts.
	if _, err := tx.Exec(ctx, `INSERT INTO user_stats (user_id, last_active) VALUES ($1, NOW()) ON CONFLICT (user_id) DO NOTHING`, user.ID); err != nil {
		return nil, fmt.Errorf("failed to init user stats: %w", err)
	}

	return user, nil
}

func (r *userRepository) updateExisting(ctx context.Context, tx pgx.Tx, userID int64, reg *domain.RegisterParams) (*domain.User, error) {
	setParts := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if reg.Language != nil {
		addSet("language", *reg.Language)
	}
	if reg.Country != nil {
		addSet("country", *reg.Country)
	}
	if reg.SafeMode != nil {
		addSet("safe_mode", *reg.SafeMode)
	}
	if reg.Email != nil {
		addSet("email", *reg.Email)
	}
	if reg.AutoNotifications != nil {
		addSet("auto_notifications", *reg.AutoNotifications)
	}
	if reg.ViewMode != nil {
		addSet("view_mode", *reg.ViewMode)
	}
	if reg.IsPremium != nil {
		addSet("is_premium", *reg.IsPremium)
		if *reg.IsPremium {
			addSet("premium_expires_at", time.Now().Add(domain.PremiumRegisterGrant))
		} else {
			setParts = append(setParts, "premium_expires_at = NULL")
		}
	}

	if len(setParts) == 0 {
		return scanUser(tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	}

	args = append(args, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setParts, ", "), len(args), userColumns)

	user, err := scanUser(tx.QueryRow(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// GetByID fetches a user by internal ID.
func (r *userRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to get user: database connection is nil")
	}

	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.ErrorContext(ctx, "failed to get user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByChatID fetches a user by chat-platform ID.
func (r *userRepository) GetByChatID(ctx context.Context, chatID int64) (*domain.User, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to get user: database connection is nil")
	}

	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE chat_id = $1`, chatID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.ErrorContext(ctx, "failed to get user by chat id", "error", err, "chat_id", chatID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// SetCurrentFeed points the user at a custom feed, or back at the scalar
// filters when feedID is nil.
func (r *userRepository) SetCurrentFeed(ctx context.Context, userID int64, feedID *int64) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to set current feed: database connection is nil")
	}

	tag, err := r.db.Exec(ctx, `UPDATE users SET current_feed_id = $2 WHERE id = $1`, userID, feedID)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to set current feed", "error", err, "user_id", userID)
		return fmt.Errorf("failed to set current feed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// ListAutoNotifyTargets returns users eligible for push delivery.
func (r *userRepository) ListAutoNotifyTargets(ctx context.Context) ([]*domain.User, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to list notify targets: database connection is nil")
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE auto_notifications = TRUE AND view_mode = $1`

	rows, err := r.db.Query(ctx, query, domain.ViewModeAuto)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list notify targets", "error", err)
		return nil, fmt.Errorf("failed to list notify targets: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notify targets: %w", err)
	}

	return users, nil
}

// GetStats returns lifetime counters; absent rows read as zeroes.
func (r *userRepository) GetStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to get user stats: database connection is nil")
	}

	query := `
		SELECT user_id, viewed, saved, reported, read_full_count, liked_count,
			disliked_count, comments_count, sources_added_count, skipped_count, last_active
		FROM user_stats WHERE user_id = $1
	`

	var s domain.UserStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.UserID, &s.Viewed, &s.Saved, &s.Reported, &s.ReadFullCount, &s.LikedCount,
		&s.DislikedCount, &s.CommentsCount, &s.SourcesAddedCount, &s.SkippedCount, &s.LastActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.UserStats{UserID: userID, LastActive: time.Time{}}, nil
		}
		r.logger.ErrorContext(ctx, "failed to get user stats", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	return &s, nil
}
