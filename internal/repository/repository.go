// Package repository handles all interactions with the database.
//
// Queries are built with squirrel and run on whatever database.Querier the
// caller passes in: the pool, or the transaction a service opened.
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/todo-api/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const (
	tableTodoLists = "todo_lists"
	tableTodoItems = "todo_items"
)

// NewQueryBuilder returns a squirrel builder emitting $n placeholders.
func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// selectMany runs query and scans every row into T by column name.
func selectMany[T any](ctx context.Context, q database.Querier, query squirrel.Sqlizer) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		var zero T
		return nil, errors.Wrap(err, fmt.Sprintf("error scanning rows to %T", zero))
	}
	return out, nil
}

// selectOne is selectMany for queries expected to return a single row.
// A query matching nothing returns an error wrapping pgx.ErrNoRows.
func selectOne[T any](ctx context.Context, q database.Querier, query squirrel.Sqlizer) (T, error) {
	var zero T

	sql, args, err := query.ToSql()
	if err != nil {
		return zero, errors.Wrap(err, "can't build sql query")
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return zero, errors.Wrap(err, "error executing sql query")
	}

	out, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, errors.Wrap(err, fmt.Sprintf("found no %T", zero))
	}
	return out, nil
}

// insertReturningID runs an INSERT ... RETURNING id.
func insertReturningID(ctx context.Context, q database.Querier, query squirrel.InsertBuilder) (int64, error) {
	sql, args, err := query.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "error executing sql insert")
	}
	return id, nil
}

// execRows runs a statement and reports how many rows it touched.
func execRows(ctx context.Context, q database.Querier, query squirrel.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, errors.Wrap(err, "error executing sql statement")
	}
	return tag.RowsAffected(), nil
}
