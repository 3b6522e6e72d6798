package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
	"github.com/jsamuelsen/quote-vote-service/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStore opens a migrated SQLite store in a temporary directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	s, err := Open(ctx, &Config{
		Driver:       DriverSQLite,
		DSN:          "file:" + filepath.Join(t.TempDir(), "ledger.db"),
		MaxOpenConns: 8,
		MaxIdleConns: 8,
		PingTimeout:  time.Second,
	}, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(ctx))

	return s
}

func createQuote(t *testing.T, s *Store, userID, content, category string) *domain.Quote {
	t.Helper()

	q, err := s.CreateQuote(context.Background(), userID, domain.QuoteInput{
		Content:  content,
		Author:   "Anonymous",
		Category: category,
	})
	require.NoError(t, err)

	return q
}

// castVote records a vote the way the ledger does: insert and increment in one transaction.
func castVote(t *testing.T, s *Store, userID string, quoteID int64) {
	t.Helper()

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx ports.LedgerTx) error {
		if _, err := tx.InsertVote(ctx, userID, quoteID); err != nil {
			return err
		}

		_, err := tx.AdjustCounter(ctx, quoteID, 1)

		return err
	})
	require.NoError(t, err)
}

func counterOf(t *testing.T, s *Store, quoteID int64) int64 {
	t.Helper()

	count, err := s.base.QuoteCounter(context.Background(), quoteID)
	require.NoError(t, err)

	return count
}
