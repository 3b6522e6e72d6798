// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrTransactionConflict, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
)

// LedgerStore opens transactions against the authoritative vote store.
//
// Implementations guarantee that the transaction is rolled back whenever fn
// returns an error, panics, or ctx is cancelled before commit. Driver errors are
// translated: unique violations and serialization failures become
// *domain.TransactionConflictError, connection failures *domain.UnavailableError.
type LedgerStore interface {
	// WithinTx runs fn in a single read-write transaction and commits if fn returns nil.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error

	// ReadSnapshot runs fn in a single read-only transaction so every read sees
	// the same committed state.
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context, r SnapshotReader) error) error
}

// LedgerTx is the set of statements the vote ledger runs inside one transaction.
type LedgerTx interface {
	// QuoteExists reports whether a quote with the given id exists.
	QuoteExists(ctx context.Context, quoteID int64) (bool, error)

	// QuoteCounter returns the quote's vote_count.
	// Returns domain.ErrNotFound if the quote does not exist.
	QuoteCounter(ctx context.Context, quoteID int64) (int64, error)

	// AdjustCounter atomically adds delta to vote_count, never going below zero,
	// and returns the new value. Returns domain.ErrNotFound if the quote does not exist.
	AdjustCounter(ctx context.Context, quoteID, delta int64) (int64, error)

	// VoteByUser returns the user's active vote, or nil if there is none.
	VoteByUser(ctx context.Context, userID string) (*domain.Vote, error)

	// VoteFor returns the user's vote on a specific quote, or nil if there is none.
	VoteFor(ctx context.Context, userID string, quoteID int64) (*domain.Vote, error)

	// InsertVote records a new active vote.
	// Returns a duplicate *domain.TransactionConflictError if the user already has one.
	InsertVote(ctx context.Context, userID string, quoteID int64) (*domain.Vote, error)

	// DeleteVote removes a vote row. Returns domain.ErrNotFound if it is already gone.
	DeleteVote(ctx context.Context, voteID int64) error
}

// SnapshotReader exposes the read-only queries used by eligibility checks and
// aggregation.
type SnapshotReader interface {
	// QuoteCounter returns the quote's vote_count.
	// Returns domain.ErrNotFound if the quote does not exist.
	QuoteCounter(ctx context.Context, quoteID int64) (int64, error)

	// VoteFor returns the user's vote on a specific quote, or nil if there is none.
	VoteFor(ctx context.Context, userID string, quoteID int64) (*domain.Vote, error)

	// CurrentVote returns the user's active vote joined with its quote, or nil.
	CurrentVote(ctx context.Context, userID string) (*domain.CurrentVote, error)

	// TopVoted returns up to limit quotes ordered by vote_count, newest first on ties.
	TopVoted(ctx context.Context, limit int) ([]domain.Quote, error)

	// UserTotals returns how many quotes the user created and the votes they hold.
	UserTotals(ctx context.Context, userID string) (quotes, votes int64, err error)

	// UserRank returns the user's dense rank by total votes among users with at
	// least one vote. ok is false when the user has none.
	UserRank(ctx context.Context, userID string) (rank int64, ok bool, err error)

	// CategoryCounts returns the user's quote counts per non-empty category,
	// ordered by count descending then category ascending.
	CategoryCounts(ctx context.Context, userID string) ([]domain.CategoryShare, error)
}

// QuoteRepository persists quotes outside of the vote ledger.
// Mutations never touch vote_count.
type QuoteRepository interface {
	// CreateQuote stores a new quote and returns it with its assigned id.
	CreateQuote(ctx context.Context, userID string, in domain.QuoteInput) (*domain.Quote, error)

	// GetQuote returns the quote. Returns domain.ErrNotFound if it does not exist.
	GetQuote(ctx context.Context, id int64) (*domain.Quote, error)

	// HasContent reports whether userID already owns a quote with the same
	// content key, ignoring excludeID.
	HasContent(ctx context.Context, userID, contentKey string, excludeID int64) (bool, error)

	// UpdateUnvoted writes the quote's editable fields only while vote_count is
	// zero and the caller owns it. ok is false when the guard rejected the write.
	UpdateUnvoted(ctx context.Context, q *domain.Quote) (ok bool, err error)

	// DeleteUnvoted removes the quote only while vote_count is zero and the
	// caller owns it. ok is false when the guard rejected the delete.
	DeleteUnvoted(ctx context.Context, id int64, userID string) (ok bool, err error)

	// ListQuotes returns one page of quotes. The query must already be normalized.
	ListQuotes(ctx context.Context, q domain.QuoteQuery) (*domain.QuotePage, error)
}
