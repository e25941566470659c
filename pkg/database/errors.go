package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"realestate-backoffice/pkg/metrics"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Kind tags a data-access failure with its cause.
type Kind int

const (
	KindOther Kind = iota
	KindNotFound
	KindIntegrityViolation
	KindSyntax
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindIntegrityViolation:
		return "integrity_violation"
	case KindSyntax:
		return "syntax"
	case KindConnection:
		return "connection"
	default:
		return "other"
	}
}

// Error is what every repository returns when the database call fails.
type Error struct {
	Kind  Kind
	Op    string
	Table string
	Err   error
}

func (e *Error) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("database %s failed (%s): %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("database %s on %s failed (%s): %v", e.Op, e.Table, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap classifies err and records it. Already wrapped errors pass through.
func Wrap(op, table string, err error) error {
	if err == nil {
		return nil
	}
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return err
	}
	kind := Classify(err)
	if kind != KindNotFound {
		metrics.DBErrorsTotal.WithLabelValues(op, table, kind.String()).Inc()
	}
	return &Error{Kind: kind, Op: op, Table: table, Err: err}
}

// KindOf extracts the kind of a wrapped error, classifying raw errors on the fly.
func KindOf(err error) Kind {
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return dbErr.Kind
	}
	return Classify(err)
}

// Classify maps a raw driver error to a Kind.
func Classify(err error) Kind {
	if err == nil {
		return KindOther
	}
	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, mysql.ErrInvalidConn) {
		return KindConnection
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return classifyMySQL(myErr.Number)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifySQLState(string(pqErr.Code))
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return KindConnection
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnection
	}
	return KindOther
}

func classifySQLState(code string) Kind {
	switch {
	case strings.HasPrefix(code, "23"):
		return KindIntegrityViolation
	case strings.HasPrefix(code, "42"):
		return KindSyntax
	case strings.HasPrefix(code, "08"), strings.HasPrefix(code, "57P"):
		return KindConnection
	default:
		return KindOther
	}
}

func classifyMySQL(number uint16) Kind {
	switch number {
	case 1048, 1062, 1169, 1216, 1217, 1364, 1451, 1452, 1557, 3819:
		return KindIntegrityViolation
	case 1054, 1064, 1146, 1149:
		return KindSyntax
	case 1040, 1045, 1053, 2002, 2003, 2006, 2013:
		return KindConnection
	default:
		return KindOther
	}
}
