package store

import (
	"context"
	"fmt"
	"strings"
)

// Every quote's vote_count equals the number of votes rows referencing it.
// UNIQUE(user_id) enforces one active vote per user across all quotes.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS quotes (
	id         BIGSERIAL PRIMARY KEY,
	user_id    TEXT        NOT NULL,
	content    TEXT        NOT NULL,
	author     TEXT        NOT NULL,
	category   TEXT        NOT NULL DEFAULT '',
	tags       TEXT        NOT NULL DEFAULT '[]',
	vote_count BIGINT      NOT NULL DEFAULT 0 CHECK (vote_count >= 0),
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quotes_user_id ON quotes (user_id);
CREATE INDEX IF NOT EXISTS idx_quotes_top_voted ON quotes (vote_count DESC, created_at DESC, id DESC);

CREATE TABLE IF NOT EXISTS votes (
	id         BIGSERIAL PRIMARY KEY,
	user_id    TEXT        NOT NULL,
	quote_id   BIGINT      NOT NULL REFERENCES quotes (id) ON DELETE RESTRICT,
	vote_value SMALLINT    NOT NULL DEFAULT 1 CHECK (vote_value = 1),
	created_at TIMESTAMPTZ NOT NULL,
	CONSTRAINT votes_user_id_key UNIQUE (user_id),
	CONSTRAINT votes_user_quote_key UNIQUE (user_id, quote_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_quote_id ON votes (quote_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS quotes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    TEXT    NOT NULL,
	content    TEXT    NOT NULL,
	author     TEXT    NOT NULL,
	category   TEXT    NOT NULL DEFAULT '',
	tags       TEXT    NOT NULL DEFAULT '[]',
	vote_count INTEGER NOT NULL DEFAULT 0 CHECK (vote_count >= 0),
	created_at TEXT    NOT NULL,
	updated_at TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quotes_user_id ON quotes (user_id);
CREATE INDEX IF NOT EXISTS idx_quotes_top_voted ON quotes (vote_count DESC, created_at DESC, id DESC);

CREATE TABLE IF NOT EXISTS votes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    TEXT    NOT NULL,
	quote_id   INTEGER NOT NULL REFERENCES quotes (id) ON DELETE RESTRICT,
	vote_value INTEGER NOT NULL DEFAULT 1 CHECK (vote_value = 1),
	created_at TEXT    NOT NULL,
	CONSTRAINT votes_user_id_key UNIQUE (user_id),
	CONSTRAINT votes_user_quote_key UNIQUE (user_id, quote_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_quote_id ON votes (quote_id);
`

// Migrate creates the tables and indexes if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range splitStatements(s.dialect.schema) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return s.dialect.translate("migrating schema", err)
		}
	}

	s.logger.InfoContext(ctx, "schema ready")

	return nil
}

func splitStatements(schema string) []string {
	parts := strings.Split(schema, ";")
	stmts := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			stmts = append(stmts, p)
		}
	}

	return stmts
}

// Reset deletes all rows. Intended for tests and local seeding only.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{"votes", "quotes"} {
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return s.dialect.translate("resetting "+table, err)
		}
	}

	return nil
}
