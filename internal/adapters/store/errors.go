package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
)

// serviceName identifies the store in UnavailableError.
const serviceName = "database"

// PostgreSQL error codes the ledger reacts to.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

const (
	sqliteUniquePrefix     = "UNIQUE constraint failed: "
	sqliteForeignKeyFailed = "FOREIGN KEY constraint failed"
)

type scanError struct {
	column string
	value  any
}

func (e *scanError) Error() string {
	return fmt.Sprintf("store: cannot scan %T into %s", e.value, e.column)
}

// classifyPostgres maps pgx errors onto domain transaction conflicts.
// Returns nil when the error is not a conflict.
func classifyPostgres(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return domain.NewDuplicateError(pgErr.ConstraintName, err)
	case pgSerializationFailure, pgDeadlockDetected:
		return domain.NewSerializationError(err)
	default:
		return nil
	}
}

// classifySQLite maps modernc sqlite errors onto domain transaction conflicts.
// Extended result codes are reduced to their primary code before comparing.
func classifySQLite(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.Code() & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		msg := sqliteErr.Error()
		if idx := strings.Index(msg, sqliteUniquePrefix); idx >= 0 {
			constraint, _, _ := strings.Cut(msg[idx+len(sqliteUniquePrefix):], " (")

			return domain.NewDuplicateError(constraint, err)
		}

		return nil
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return domain.NewSerializationError(err)
	default:
		return nil
	}
}

// isForeignKeyViolation reports a write that referenced a row that no longer
// exists, e.g. a vote on a quote deleted after the existence check.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY ||
			(sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
				strings.Contains(sqliteErr.Error(), sqliteForeignKeyFailed))
	}

	return false
}

// translate converts a driver error into a domain error where one applies.
// op describes the failing statement and is kept in the message.
func (d *dialect) translate(op string, err error) error {
	if err == nil {
		return nil
	}

	if conflict := d.classify(err); conflict != nil {
		return fmt.Errorf("%s: %w", op, conflict)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if isConnectionError(err) {
		return fmt.Errorf("%s: %w", op, domain.NewUnavailableError(serviceName, err.Error()))
	}

	return fmt.Errorf("%s: %w", op, err)
}

// isConnectionError reports failures that mean the store cannot be reached,
// as opposed to a statement being rejected.
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR, sqlite3.SQLITE_NOTADB:
			return true
		}
	}

	return false
}
