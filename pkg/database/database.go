package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"realestate-backoffice/pkg/config"
	"realestate-backoffice/pkg/logger"
	"realestate-backoffice/pkg/metrics"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Querier is satisfied by both *sqlx.DB and *sqlx.Tx.
type Querier interface {
	sqlx.ExtContext
}

// Transactor runs fn inside a single transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(q Querier) error) error
}

// DB wraps the pooled connection handle.
type DB struct {
	*sqlx.DB
}

// NewDB wraps an already opened handle, e.g. one backed by sqlmock in tests.
func NewDB(db *sql.DB, driverName string) *DB {
	return &DB{DB: sqlx.NewDb(db, driverName)}
}

// InitDB opens the pool for the configured driver and verifies connectivity.
func InitDB(cfg *config.Config) (*DB, error) {
	start := time.Now()
	db, err := sqlx.Open(cfg.Database.Driver, cfg.Database.DSN)
	metrics.DBOperationDuration.WithLabelValues("connect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("connect", "", KindConnection.String()).Inc()
		logger.GlobalLogger.Errorf("failed to open %s database: %v", cfg.Database.Driver, err)
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start = time.Now()
	err = db.PingContext(ctx)
	metrics.DBOperationDuration.WithLabelValues("ping", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("ping", "", Classify(err).String()).Inc()
		db.Close()
		logger.GlobalLogger.Errorf("failed to ping database: %v", err)
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	logger.GlobalLogger.Printf("%s database connected successfully", cfg.Database.Driver)
	return &DB{DB: db}, nil
}

// CloseDB releases the pool.
func (d *DB) CloseDB() {
	if d == nil || d.DB == nil {
		return
	}
	if err := d.Close(); err != nil {
		logger.GlobalLogger.Errorf("error closing database: %v", err)
		return
	}
	logger.GlobalLogger.Println("database connection closed")
}

// WithTx runs fn in a repeatable-read transaction, rolling back on error or panic.
func (d *DB) WithTx(ctx context.Context, fn func(q Querier) error) (err error) {
	tx, err := d.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return Wrap("begin", "", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.GlobalLogger.Errorf("failed to roll back transaction: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return Wrap("commit", "", err)
	}
	return nil
}

// InsertID executes an INSERT and returns the generated key. Drivers using
// $n placeholders get a RETURNING clause, the rest use LastInsertId.
func InsertID(ctx context.Context, q Querier, query, idColumn string, args ...interface{}) (int64, error) {
	if sqlx.BindType(q.DriverName()) == sqlx.DOLLAR {
		var id int64
		err := q.QueryRowxContext(ctx, q.Rebind(query+" RETURNING "+idColumn), args...).Scan(&id)
		return id, err
	}

	result, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
