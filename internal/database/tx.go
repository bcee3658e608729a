package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// Querier is the part of pgx shared by pools, connections and transactions.
// Repositories take a Querier so the caller decides the transaction scope.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner starts transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RunInTx acquires a connection, begins a transaction and runs fn in it.
// The transaction commits when fn returns nil and rolls back otherwise; the
// connection goes back to the pool in both cases.
func RunInTx(ctx context.Context, db TxBeginner, fn func(q Querier) error) error {
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		return fn(tx)
	})
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}
