package repositories

import (
	"context"
	"time"

	"realestate-backoffice/pkg/database"
	"realestate-backoffice/pkg/metrics"

	"github.com/jmoiron/sqlx"
)

// base carries the querier and table name every DAO shares. SQL is written
// with '?' placeholders and rebound for the active driver.
type base struct {
	q     database.Querier
	table string
}

func (b base) observe(op string, start time.Time) {
	metrics.DBOperationDuration.WithLabelValues(op, b.table).Observe(time.Since(start).Seconds())
}

func (b base) list(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := sqlx.SelectContext(ctx, b.q, dest, b.q.Rebind(query), args...)
	b.observe(op, start)
	return database.Wrap(op, b.table, err)
}

// one scans a single row; no row yields a KindNotFound error.
func (b base) one(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := sqlx.GetContext(ctx, b.q, dest, b.q.Rebind(query), args...)
	b.observe(op, start)
	return database.Wrap(op, b.table, err)
}

func (b base) count(ctx context.Context, op string, query string, args ...interface{}) (int64, error) {
	var n int64
	if err := b.one(ctx, op, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

func (b base) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	n, err := b.count(ctx, "exists", query, args...)
	return n > 0, err
}

func (b base) exec(ctx context.Context, op string, query string, args ...interface{}) (int64, error) {
	start := time.Now()
	res, err := b.q.ExecContext(ctx, b.q.Rebind(query), args...)
	b.observe(op, start)
	if err != nil {
		return 0, database.Wrap(op, b.table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, database.Wrap(op, b.table, err)
	}
	return n, nil
}

func (b base) insert(ctx context.Context, idColumn, query string, args ...interface{}) (int64, error) {
	start := time.Now()
	id, err := database.InsertID(ctx, b.q, query, idColumn, args...)
	b.observe("insert", start)
	if err != nil {
		return 0, database.Wrap("insert", b.table, err)
	}
	return id, nil
}

// update applies the recognized keys of updates. ok is false when nothing
// was recognized, in which case no SQL is sent.
func (b base) update(ctx context.Context, fields fieldRegistry, id int64, updates map[string]interface{}) (bool, error) {
	query, args, ok, err := fields.buildUpdate(id, updates)
	if err != nil || !ok {
		return false, err
	}
	n, err := b.exec(ctx, "update", query, args...)
	return n > 0, err
}

func (b base) deleteByID(ctx context.Context, idColumn string, id int64) (bool, error) {
	n, err := b.exec(ctx, "delete", "DELETE FROM "+b.table+" WHERE "+idColumn+" = ?", id)
	return n > 0, err
}
