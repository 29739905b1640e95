// Package dbx holds the tiny database plumbing shared by local storage code:
// a Handle interface satisfied by both *sql.DB and *sql.Tx, and a helper for
// running a function inside a transaction.
package dbx

import (
	"context"
	"database/sql"
)

// Handle is the subset of database/sql the storage layer needs. Both *sql.DB
// and *sql.Tx satisfy it, so the same code can run with or without an
// enclosing transaction.
type Handle interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InTx runs fn inside a transaction: commit on success, rollback on error or
// panic (the panic is rethrown).
func InTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx Handle) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
