package repository

import (
	"context"
	"testing"
	"time"

	"news-hub/domain"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteRepository_Accept(t *testing.T) {
	ctx := context.Background()

	t.Run("should claim, link inviter, reward, and grant premium in one transaction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewInviteRepository(mock, testLogger())

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, inviter_id, invited_user_id FROM invites").
			WithArgs("code-abc").
			WillReturnRows(pgxmock.NewRows([]string{"id", "inviter_id", "invited_user_id"}).
				AddRow(int64(3), int64(1), nil))
		mock.ExpectExec("UPDATE invites SET invited_user_id").
			WithArgs(int64(3), int64(2)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("UPDATE users SET inviter_id").
			WithArgs(int64(2), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("UPDATE users SET level = level").
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery("UPDATE users SET is_premium = TRUE").
			WithArgs(int64(2), domain.PremiumInviteGrant).
			WillReturnRows(addUserRow(userRows(), 2, 200))
		mock.ExpectCommit()

		user, err := repo.Accept(ctx, "code-abc", 2, domain.PremiumInviteGrant)

		require.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should reject an already claimed code", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewInviteRepository(mock, testLogger())

		claimed := int64(5)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, inviter_id, invited_user_id FROM invites").
			WithArgs("code-used").
			WillReturnRows(pgxmock.NewRows([]string{"id", "inviter_id", "invited_user_id"}).
				AddRow(int64(3), int64(1), &claimed))
		mock.ExpectRollback()

		_, err = repo.Accept(ctx, "code-used", 2, time.Hour)
		assert.ErrorIs(t, err, domain.ErrInviteInvalid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should reject self-referral", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewInviteRepository(mock, testLogger())

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, inviter_id, invited_user_id FROM invites").
			WithArgs("code-own").
			WillReturnRows(pgxmock.NewRows([]string{"id", "inviter_id", "invited_user_id"}).
				AddRow(int64(3), int64(2), nil))
		mock.ExpectRollback()

		_, err = repo.Accept(ctx, "code-own", 2, time.Hour)
		assert.ErrorIs(t, err, domain.ErrSelfReferral)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should map an unknown code to ErrInviteInvalid", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewInviteRepository(mock, testLogger())

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, inviter_id, invited_user_id FROM invites").
			WithArgs("no-such-code").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err = repo.Accept(ctx, "no-such-code", 2, time.Hour)
		assert.ErrorIs(t, err, domain.ErrInviteInvalid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
