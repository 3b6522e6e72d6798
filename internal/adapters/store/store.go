// Package store implements the vote ledger and quote persistence on top of
// database/sql. PostgreSQL (pgx) is used in deployed environments and SQLite
// (modernc, pure Go) for local runs and tests.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"github.com/jsamuelsen/quote-vote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-vote-service/internal/ports"
)

// Config holds connection settings.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

// Store is the SQL-backed ledger store and quote repository.
type Store struct {
	db      *sql.DB
	dialect *dialect
	logger  *slog.Logger
	base    *conn
}

var (
	_ ports.LedgerStore     = (*Store)(nil)
	_ ports.QuoteRepository = (*Store)(nil)
	_ ports.HealthChecker   = (*Store)(nil)
	_ ports.LedgerTx        = (*ledgerTx)(nil)
	_ ports.SnapshotReader  = (*snapshot)(nil)
)

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg *Config, logger *slog.Logger) (*Store, error) {
	d, ok := dialectFor(cfg.Driver)
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	if logger == nil {
		logger = slog.Default()
	}

	dsn := cfg.DSN
	if d.name == DriverSQLite {
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", d.name, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, d.translate("pinging "+d.name, err)
	}

	logger = logger.With(slog.String("component", "store"), slog.String("driver", d.name))
	logger.InfoContext(ctx, "database connected",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
	)

	return &Store{
		db:      db,
		dialect: d,
		logger:  logger,
		base:    &conn{q: db, d: d, logger: logger},
	}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Driver returns the configured driver name.
func (s *Store) Driver() string {
	return s.dialect.name
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return serviceName
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return s.dialect.translate("ping", err)
	}

	return nil
}

// WithinTx runs fn inside one read-write transaction. The transaction commits
// only if fn returns nil; it is rolled back on error, panic, or when ctx is
// cancelled first.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.LedgerTx) error) error {
	return s.inTx(ctx, s.dialect.writeTx, func(ctx context.Context, c *conn) error {
		return fn(ctx, &ledgerTx{conn: c})
	})
}

// ReadSnapshot runs fn inside one read-only transaction.
func (s *Store) ReadSnapshot(ctx context.Context, fn func(ctx context.Context, r ports.SnapshotReader) error) error {
	return s.inTx(ctx, s.dialect.readTx, func(ctx context.Context, c *conn) error {
		return fn(ctx, &snapshot{conn: c})
	})
}

func (s *Store) inTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, c *conn) error) (err error) {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return s.dialect.translate("beginning transaction", err)
	}

	committed := false

	defer func() {
		if committed {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.WarnContext(ctx, "rollback failed", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, &conn{q: tx, d: s.dialect, logger: s.logger}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return s.dialect.translate("committing transaction", err)
	}

	committed = true

	return nil
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn rebinds placeholders and traces statements for one queryer.
type conn struct {
	q      queryer
	d      *dialect
	logger *slog.Logger
}

func (c *conn) trace(ctx context.Context, query string) string {
	query = c.d.rebind(query)
	if c.logger.Enabled(ctx, logging.LevelTrace) {
		c.logger.Log(ctx, logging.LevelTrace, "sql", slog.String("query", query))
	}

	return query
}

func (c *conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.q.ExecContext(ctx, c.trace(ctx, query), args...)
}

func (c *conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.q.QueryContext(ctx, c.trace(ctx, query), args...)
}

func (c *conn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.trace(ctx, query), args...)
}
