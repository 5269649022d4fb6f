package repository

import (
	"context"
	"testing"
	"time"

	"news-hub/domain"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "title", "content", "lang", "country", "tags", "source",
		"source_type", "link", "media_type", "file_id", "published_at", "expires_at",
		"ai_classified_topics", "tone", "sentiment_score",
		"is_fake", "is_duplicate", "moderation_status", "created_at",
	})
}

func addNewsRow(rows *pgxmock.Rows, id int64, title string) *pgxmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, title, "content", "uk", "UA", []string{"tech"}, "source-a",
		"rss", "https://example.com", "none", nil, now, now.Add(time.Hour),
		[]string{}, nil, nil,
		false, false, "approved", now,
	)
}

func TestFeedRepository_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("should apply base predicate and pagination only for unconstrained user", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewFeedRepository(mock, testLogger())

		mock.ExpectQuery("SELECT (.+) FROM news n").
			WithArgs("approved", int64(100), 5, 0).
			WillReturnRows(addNewsRow(newsRows(), 1, "first"))

		items, err := repo.Resolve(ctx, &domain.FeedQuery{
			UserID:      100,
			ExcludeSeen: true,
			Limit:       5,
			Offset:      0,
		})

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(1), items[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should bind scalar filter values in resolution order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewFeedRepository(mock, testLogger())

		tag := "tech"
		source := "source-a"
		mock.ExpectQuery("SELECT (.+) FROM news n").
			WithArgs("approved", "tech", "source-a", int64(7), 10, 0).
			WillReturnRows(newsRows())

		items, err := repo.Resolve(ctx, &domain.FeedQuery{
			UserID:      7,
			Filter:      &domain.Filter{UserID: 7, Tag: &tag, Source: &source},
			ExcludeSeen: true,
			Limit:       10,
			Offset:      0,
		})

		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should prefer custom feed over scalar filter", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewFeedRepository(mock, testLogger())

		tag := "ignored"
		mock.ExpectQuery("SELECT (.+) FROM news n").
			WithArgs("approved", []string{"source-b"}, int64(7), 10, 0).
			WillReturnRows(addNewsRow(newsRows(), 5, "from feed"))

		items, err := repo.Resolve(ctx, &domain.FeedQuery{
			UserID: 7,
			Feed: &domain.CustomFeed{
				ID:     3,
				UserID: 7,
				Filters: []domain.FeedFilter{
					{Kind: domain.FeedFilterSources, Values: []string{"source-b"}},
				},
			},
			Filter:      &domain.Filter{UserID: 7, Tag: &tag},
			ExcludeSeen: true,
			Limit:       10,
		})

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(5), items[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should subtract blocks and safe-mode tones", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewFeedRepository(mock, testLogger())

		mock.ExpectQuery("SELECT (.+) FROM news n").
			WithArgs("approved",
				[]string{"ai"}, []string{"spam-source"},
				"negative", "anxious", domain.RestrictedTags,
				int64(9), 3, 0).
			WillReturnRows(newsRows())

		_, err = repo.Resolve(ctx, &domain.FeedQuery{
			UserID:   9,
			SafeMode: true,
			Blocks: map[string][]string{
				domain.BlockTag:    {"ai"},
				domain.BlockSource: {"spam-source"},
			},
			ExcludeSeen: true,
			Limit:       3,
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should bind digest window cutoff when requested", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewFeedRepository(mock, testLogger())

		mock.ExpectQuery("SELECT (.+) FROM news n").
			WithArgs("approved", pgxmock.AnyArg(), int64(4), 10, 0).
			WillReturnRows(newsRows())

		_, err = repo.Resolve(ctx, &domain.FeedQuery{
			UserID:      4,
			PublishedIn: time.Hour,
			ExcludeSeen: true,
			Limit:       10,
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should error on nil database", func(t *testing.T) {
		repo := NewFeedRepository(nil, testLogger())

		_, err := repo.Resolve(ctx, &domain.FeedQuery{UserID: 1, Limit: 5})
		assert.Error(t, err)
	})
}

func TestPredicateBuilder(t *testing.T) {
	t.Run("should number placeholders sequentially across clauses", func(t *testing.T) {
		b := &predicateBuilder{}
		b.add("a = ?", 1)
		b.add("b = ? AND c = ?", 2, 3)
		limit := b.bind(10)

		assert.Equal(t, "WHERE a = $1\n\t\t\tAND b = $2 AND c = $3", b.where())
		assert.Equal(t, "$4", limit)
		assert.Equal(t, []any{1, 2, 3, 10}, b.args)
	})

	t.Run("should keep clauses without values verbatim", func(t *testing.T) {
		b := &predicateBuilder{}
		b.add("n.expires_at > NOW()")

		assert.Equal(t, "WHERE n.expires_at > NOW()", b.where())
		assert.Empty(t, b.args)
	})
}

func TestFeedRepository_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("should pass query and pagination as parameters", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewFeedRepository(mock, testLogger())

		mock.ExpectQuery("SELECT (.+) FROM news n").
			WithArgs("climate", 20, 0).
			WillReturnRows(addNewsRow(newsRows(), 2, "climate summit"))

		items, err := repo.Search(ctx, "climate", 20, 0)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "climate summit", items[0].Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFeedRepository_PublicList(t *testing.T) {
	ctx := context.Background()

	t.Run("should narrow by optional fields only when set", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewFeedRepository(mock, testLogger())

		mock.ExpectQuery("SELECT (.+) FROM news n").
			WithArgs("approved", "tech", "en", 10, 0).
			WillReturnRows(newsRows())

		_, err = repo.PublicList(ctx, &domain.PublicQuery{
			Topic: "tech",
			Lang:  "en",
			Limit: 10,
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
