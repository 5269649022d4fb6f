package repository

import (
	"context"
	"testing"

	"news-hub/domain"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFeedRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("should store filters as a versioned document", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewCustomFeedRepository(mock, testLogger())

		mock.ExpectQuery("INSERT INTO custom_feeds").
			WithArgs(int64(1), "morning tech", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

		id, err := repo.Create(ctx, &domain.CustomFeed{
			UserID: 1,
			Name:   "morning tech",
			Filters: []domain.FeedFilter{
				{Kind: domain.FeedFilterTags, Values: []string{"tech"}},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should map a name clash to ErrDuplicateFeedName", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewCustomFeedRepository(mock, testLogger())

		mock.ExpectQuery("INSERT INTO custom_feeds").
			WithArgs(int64(1), "morning tech", pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err = repo.Create(ctx, &domain.CustomFeed{UserID: 1, Name: "morning tech"})
		assert.ErrorIs(t, err, domain.ErrDuplicateFeedName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCustomFeedRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("should round-trip the filter document", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewCustomFeedRepository(mock, testLogger())

		doc := []byte(`{"version":1,"filters":[{"kind":"sources","values":["source-b"]}]}`)
		mock.ExpectQuery("SELECT id, user_id, feed_name, filters, created_at FROM custom_feeds").
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "feed_name", "filters", "created_at"}).
				AddRow(int64(7), int64(1), "morning tech", doc, timeNowRow()))

		feed, err := repo.GetByID(ctx, 7)

		require.NoError(t, err)
		require.Len(t, feed.Filters, 1)
		assert.Equal(t, domain.FeedFilterSources, feed.Filters[0].Kind)
		assert.Equal(t, []string{"source-b"}, feed.Filters[0].Values)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
