package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news-hub/domain"
)

// SubscriptionRepository implementation.
type subscriptionRepository struct {
	db     Pool
	logger *slog.Logger
}

// NewSubscriptionRepository creates a new subscription repository.
func NewSubscriptionRepository(db Pool, logger *slog.Logger) SubscriptionRepository {
	return &subscriptionRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert activates the user's subscription with the given frequency.
// Resubscribing with a new frequency replaces the old one.
func (r *subscriptionRepository) Upsert(ctx context.Context, userID int64, frequency string) error {
	if !domain.ValidFrequency(frequency) {
		return domain.ErrInvalidFrequency
	}

	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to upsert subscription: database connection is nil")
	}

	query := `
		INSERT INTO subscriptions (user_id, active, frequency)
		VALUES ($1, TRUE, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			active = TRUE, frequency = EXCLUDED.frequency
	`

	if _, err := r.db.Exec(ctx, query, userID, frequency); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		r.logger.ErrorContext(ctx, "failed to upsert subscription", "error", err, "user_id", userID)
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	r.logger.InfoContext(ctx, "subscription updated", "user_id", userID, "frequency", frequency)

	return nil
}

// Deactivate turns the subscription off, keeping the row so the chosen
// frequency survives a resubscribe.
func (r *subscriptionRepository) Deactivate(ctx context.Context, userID int64) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to deactivate subscription: database connection is nil")
	}

	if _, err := r.db.Exec(ctx,
		`UPDATE subscriptions SET active = FALSE WHERE user_id = $1`, userID); err != nil {
		r.logger.ErrorContext(ctx, "failed to deactivate subscription", "error", err, "user_id", userID)
		return fmt.Errorf("failed to deactivate subscription: %w", err)
	}

	r.logger.InfoContext(ctx, "subscription deactivated", "user_id", userID)

	return nil
}

// ListActive returns every active subscription with its dispatch guard.
func (r *subscriptionRepository) ListActive(ctx context.Context) ([]*domain.Subscription, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("failed to list subscriptions: database connection is nil")
	}

	query := `
		SELECT user_id, active, frequency, last_dispatched_at, created_at
		FROM subscriptions
		WHERE active = TRUE
		ORDER BY user_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*domain.Subscription
	for rows.Next() {
		var s domain.Subscription
		if err := rows.Scan(&s.UserID, &s.Active, &s.Frequency, &s.LastDispatchedAt, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subscriptions: %w", err)
	}

	return subs, nil
}

// MarkDispatched stamps the overlap guard after a digest goes out.
func (r *subscriptionRepository) MarkDispatched(ctx context.Context, userID int64, at time.Time) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("failed to mark dispatched: database connection is nil")
	}

	if _, err := r.db.Exec(ctx,
		`UPDATE subscriptions SET last_dispatched_at = $2 WHERE user_id = $1`, userID, at); err != nil {
		r.logger.ErrorContext(ctx, "failed to mark dispatched", "error", err, "user_id", userID)
		return fmt.Errorf("failed to mark dispatched: %w", err)
	}

	return nil
}
