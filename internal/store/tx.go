package store

import (
	"context"
	"database/sql"
	"fmt"

	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

// withConn runs fn on a dedicated connection that is released on every exit path.
func withConn(ctx context.Context, db *sql.DB, fn func(QueryInterceptor) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return srvErrors.NewConnectionError(err)
	}
	defer conn.Close()

	return fn(newQueryInterceptor(conn))
}

// withTx runs fn inside a transaction. The transaction is rolled back unless fn
// returns nil and the commit succeeds.
func withTx(ctx context.Context, db *sql.DB, fn func(QueryInterceptor) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return srvErrors.NewConnectionError(err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(newQueryInterceptor(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
