package store

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// sqliteTimeLayout is fixed width so that text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// dialect captures what differs between the supported stores. Queries are
// written with '?' placeholders and rebound for drivers that need '$n'.
type dialect struct {
	name       string
	driverName string
	numbered   bool
	schema     string

	// writeTx is used for ledger transactions, readTx for snapshots.
	writeTx *sql.TxOptions
	readTx  *sql.TxOptions

	classify func(err error) error
}

var postgresDialect = &dialect{
	name:       DriverPostgres,
	driverName: "pgx",
	numbered:   true,
	schema:     postgresSchema,
	writeTx:    &sql.TxOptions{Isolation: sql.LevelReadCommitted},
	readTx:     &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true},
	classify:   classifyPostgres,
}

// SQLite serialises writers through BEGIN IMMEDIATE (see sqliteDSN), which also
// makes every snapshot a consistent committed state.
var sqliteDialect = &dialect{
	name:       DriverSQLite,
	driverName: "sqlite",
	schema:     sqliteSchema,
	classify:   classifySQLite,
}

func dialectFor(driver string) (*dialect, bool) {
	switch driver {
	case DriverPostgres:
		return postgresDialect, true
	case DriverSQLite:
		return sqliteDialect, true
	default:
		return nil, false
	}
}

// rebind rewrites '?' placeholders to '$1', '$2', ... for numbered dialects.
// Queries in this package never contain '?' inside string literals.
func (d *dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for i := range len(query) {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}

		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}

// timeArg converts a timestamp into the value the driver stores.
func (d *dialect) timeArg(t time.Time) any {
	t = t.UTC()
	if d.name == DriverSQLite {
		return t.Format(sqliteTimeLayout)
	}

	return t
}

// sqliteDSN adds the pragmas the ledger relies on unless the caller set them.
func sqliteDSN(dsn string) string {
	params := []struct{ key, value string }{
		{"_pragma=busy_timeout", "_pragma=busy_timeout(5000)"},
		{"_pragma=journal_mode", "_pragma=journal_mode(WAL)"},
		{"_pragma=foreign_keys", "_pragma=foreign_keys(1)"},
		{"_txlock=", "_txlock=immediate"},
	}

	for _, p := range params {
		if strings.Contains(dsn, p.key) {
			continue
		}

		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}

		dsn += sep + p.value
	}

	return dsn
}

// timestamp scans the representations drivers use for time columns.
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	sqliteTimeLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

// Scan implements sql.Scanner.
func (ts *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		ts.Time = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		ts.Time = time.Time{}
		return nil
	default:
		return &scanError{column: "timestamp", value: src}
	}
}

func (ts *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t.UTC()
			return nil
		}
	}

	return &scanError{column: "timestamp", value: s}
}
