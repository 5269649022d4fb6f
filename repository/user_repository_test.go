package repository

import (
	"context"
	"testing"
	"time"

	"news-hub/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "chat_id", "language", "country", "safe_mode", "current_feed_id",
		"is_premium", "premium_expires_at", "level", "badges", "email",
		"auto_notifications", "view_mode", "inviter_id", "created_at",
	})
}

func addUserRow(rows *pgxmock.Rows, id, chatID int64) *pgxmock.Rows {
	return rows.AddRow(
		id, chatID, "en", "", false, nil,
		false, nil, 0, []string{}, nil,
		false, "manual", nil, time.Now(),
	)
}

func TestUserRepository_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("should insert a new user and bootstrap stats", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewUserRepository(mock, testLogger())

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM users WHERE chat_id").
			WithArgs(int64(100)).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(int64(100), "en", "", false, (*string)(nil), false, (*time.Time)(nil), false, "manual").
			WillReturnRows(addUserRow(userRows(), 1, 100))
		mock.ExpectExec("INSERT INTO user_stats").
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		user, err := repo.Register(ctx, &domain.RegisterParams{ChatID: 100})

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, int64(100), user.ChatID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should partially update an existing user", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewUserRepository(mock, testLogger())

		lang := "uk"
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM users WHERE chat_id").
			WithArgs(int64(100)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectQuery("UPDATE users SET language").
			WithArgs("uk", int64(1)).
			WillReturnRows(addUserRow(userRows(), 1, 100))
		mock.ExpectCommit()

		user, err := repo.Register(ctx, &domain.RegisterParams{ChatID: 100, Language: &lang})

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should map a duplicate email on insert to ErrDuplicateEmail", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewUserRepository(mock, testLogger())

		email := "taken@example.com"
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM users WHERE chat_id").
			WithArgs(int64(100)).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(int64(100), "en", "", false, &email, false, (*time.Time)(nil), false, "manual").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		mock.ExpectRollback()

		_, err = repo.Register(ctx, &domain.RegisterParams{ChatID: 100, Email: &email})

		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should map a duplicate email on update to ErrDuplicateEmail", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewUserRepository(mock, testLogger())

		email := "taken@example.com"
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM users WHERE chat_id").
			WithArgs(int64(100)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectQuery("UPDATE users SET email").
			WithArgs(email, int64(1)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		mock.ExpectRollback()

		_, err = repo.Register(ctx, &domain.RegisterParams{ChatID: 100, Email: &email})

		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should reject a zero chat ID", func(t *testing.T) {
		repo := NewUserRepository(nil, testLogger())

		_, err := repo.Register(ctx, &domain.RegisterParams{})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})
}

func TestUserRepository_GetByChatID(t *testing.T) {
	ctx := context.Background()

	t.Run("should map missing row to ErrUserNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewUserRepository(mock, testLogger())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE chat_id").
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.GetByChatID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("should return zero counters for a user without a stats row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewUserRepository(mock, testLogger())

		mock.ExpectQuery("SELECT user_id, viewed").
			WithArgs(int64(5)).
			WillReturnError(pgx.ErrNoRows)

		stats, err := repo.GetStats(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), stats.UserID)
		assert.Zero(t, stats.Viewed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
