package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
)

const voteColumns = `id, user_id, quote_id, vote_value, created_at`

// ledgerTx runs ledger statements on an open transaction.
type ledgerTx struct {
	*conn
}

// QuoteExists reports whether the quote exists.
func (c *conn) QuoteExists(ctx context.Context, quoteID int64) (bool, error) {
	var exists bool

	err := c.queryRow(ctx, `SELECT EXISTS (SELECT 1 FROM quotes WHERE id = ?)`, quoteID).Scan(&exists)
	if err != nil {
		return false, c.d.translate("checking quote", err)
	}

	return exists, nil
}

// QuoteCounter returns the quote's vote_count.
func (c *conn) QuoteCounter(ctx context.Context, quoteID int64) (int64, error) {
	var count int64

	err := c.queryRow(ctx, `SELECT vote_count FROM quotes WHERE id = ?`, quoteID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.NewQuoteNotFoundError(quoteID)
	}

	if err != nil {
		return 0, c.d.translate("reading vote count", err)
	}

	return count, nil
}

// VoteFor returns the user's vote on quoteID, or nil.
func (c *conn) VoteFor(ctx context.Context, userID string, quoteID int64) (*domain.Vote, error) {
	row := c.queryRow(ctx,
		`SELECT `+voteColumns+` FROM votes WHERE user_id = ? AND quote_id = ?`, userID, quoteID)

	return c.scanVote(row, "reading vote")
}

// AdjustCounter adds delta to vote_count in a single statement, flooring at zero.
// The row lock taken by the UPDATE serialises concurrent adjustments.
func (t *ledgerTx) AdjustCounter(ctx context.Context, quoteID, delta int64) (int64, error) {
	var count int64

	err := t.queryRow(ctx, `
		UPDATE quotes
		SET vote_count = CASE WHEN vote_count + ? < 0 THEN 0 ELSE vote_count + ? END
		WHERE id = ?
		RETURNING vote_count`, delta, delta, quoteID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.NewQuoteNotFoundError(quoteID)
	}

	if err != nil {
		return 0, t.d.translate("adjusting vote count", err)
	}

	return count, nil
}

// VoteByUser returns the user's active vote, or nil.
func (t *ledgerTx) VoteByUser(ctx context.Context, userID string) (*domain.Vote, error) {
	row := t.queryRow(ctx, `SELECT `+voteColumns+` FROM votes WHERE user_id = ?`, userID)

	return t.scanVote(row, "reading active vote")
}

// InsertVote records an upvote. A quote deleted since the existence check
// surfaces as QuoteNotFound through the foreign key.
func (t *ledgerTx) InsertVote(ctx context.Context, userID string, quoteID int64) (*domain.Vote, error) {
	now := time.Now().UTC()
	vote := &domain.Vote{UserID: userID, QuoteID: quoteID, Value: domain.UpvoteValue, CreatedAt: now}

	err := t.queryRow(ctx, `
		INSERT INTO votes (user_id, quote_id, vote_value, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`, userID, quoteID, domain.UpvoteValue, t.d.timeArg(now)).Scan(&vote.ID)
	if isForeignKeyViolation(err) {
		return nil, domain.NewQuoteNotFoundError(quoteID)
	}

	if err != nil {
		return nil, t.d.translate("inserting vote", err)
	}

	return vote, nil
}

// DeleteVote removes a vote row.
func (t *ledgerTx) DeleteVote(ctx context.Context, voteID int64) error {
	res, err := t.exec(ctx, `DELETE FROM votes WHERE id = ?`, voteID)
	if err != nil {
		return t.d.translate("deleting vote", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return t.d.translate("deleting vote", err)
	}

	if n == 0 {
		return domain.NewNotFoundError("vote", "")
	}

	return nil
}

func (c *conn) scanVote(row *sql.Row, op string) (*domain.Vote, error) {
	var (
		v         domain.Vote
		createdAt timestamp
	)

	err := row.Scan(&v.ID, &v.UserID, &v.QuoteID, &v.Value, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // absence of a vote is not an error
	}

	if err != nil {
		return nil, c.d.translate(op, err)
	}

	v.CreatedAt = createdAt.Time

	return &v, nil
}
