package store

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/unison/inventory-manager/internal/metrics"
)

// queryer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// QueryInterceptor wraps a connection or transaction, logging every statement
// at debug level and recording its latency.
type QueryInterceptor struct {
	q   queryer
	log *zap.SugaredLogger
}

func newQueryInterceptor(q queryer) QueryInterceptor {
	return QueryInterceptor{q: q, log: zap.S().Named("store")}
}

func (i QueryInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := i.q.QueryContext(ctx, query, args...)
	i.observe("query", query, args, start, err)
	return rows, err
}

func (i QueryInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := i.q.QueryRowContext(ctx, query, args...)
	i.observe("query_row", query, args, start, row.Err())
	return row
}

func (i QueryInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := i.q.ExecContext(ctx, query, args...)
	i.observe("exec", query, args, start, err)
	return res, err
}

func (i QueryInterceptor) observe(op, query string, args []any, start time.Time, err error) {
	elapsed := time.Since(start)
	metrics.ObserveQuery(op, elapsed, err)
	if err != nil {
		i.log.Debugw("statement failed", "op", op, "query", query, "args", args, "duration", elapsed, "error", err)
		return
	}
	i.log.Debugw("statement executed", "op", op, "query", query, "args", args, "duration", elapsed)
}
