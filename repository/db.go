package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Pool is the pgx connection surface repositories depend on. Both
// *pgxpool.Pool and pgxmock pools satisfy it, which keeps repositories
// testable without a live database.
type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// querier is the subset shared by Pool and pgx.Tx, for helpers that run
// inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// statColumns whitelists the user_stats counters that may be bumped.
// The column name is interpolated into SQL, so it must never come from
// request input directly.
var statColumns = map[string]bool{
	"viewed":              true,
	"saved":               true,
	"reported":            true,
	"read_full_count":     true,
	"liked_count":         true,
	"disliked_count":      true,
	"comments_count":      true,
	"sources_added_count": true,
	"skipped_count":       true,
}

// incrementUserStat bumps one lifetime counter and refreshes last_active.
// Works inside a transaction or directly on the pool.
func incrementUserStat(ctx context.Context, q querier, userID int64, column string, delta int64) error {
	if !statColumns[column] {
		return fmt.Errorf("unknown stat column: %s", column)
	}

	query := fmt.Sprintf(`
		INSERT INTO user_stats (user_id, %s, last_active)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET %s = user_stats.%s + $2, last_active = NOW()
	`, column, column, column)

	if _, err := q.Exec(ctx, query, userID, delta); err != nil {
		return fmt.Errorf("failed to increment %s: %w", column, err)
	}

	return nil
}
