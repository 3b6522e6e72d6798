package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
)

// snapshot runs read-only queries on a transaction that sees one committed state.
type snapshot struct {
	*conn
}

// CurrentVote returns the user's active vote with its quote, or nil.
func (s *snapshot) CurrentVote(ctx context.Context, userID string) (*domain.CurrentVote, error) {
	var (
		cv        domain.CurrentVote
		createdAt timestamp
	)

	err := s.queryRow(ctx, `
		SELECT v.id, v.quote_id, v.vote_value, v.created_at, q.content, q.author, q.vote_count
		FROM votes v
		JOIN quotes q ON q.id = v.quote_id
		WHERE v.user_id = ?`, userID).Scan(
		&cv.VoteID, &cv.QuoteID, &cv.VoteValue, &createdAt,
		&cv.QuoteContent, &cv.QuoteAuthor, &cv.QuoteVoteCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no active vote
	}

	if err != nil {
		return nil, s.d.translate("reading current vote", err)
	}

	cv.CreatedAt = createdAt.Time

	return &cv, nil
}

// TopVoted returns the highest-voted quotes, newest first on equal counts.
func (s *snapshot) TopVoted(ctx context.Context, limit int) ([]domain.Quote, error) {
	rows, err := s.query(ctx, `
		SELECT `+quoteColumns+`
		FROM quotes
		ORDER BY vote_count DESC, created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, s.d.translate("listing top voted", err)
	}

	return s.scanQuotes(rows, "listing top voted")
}

// UserTotals returns the user's quote count and the votes held across them.
func (s *snapshot) UserTotals(ctx context.Context, userID string) (quotes, votes int64, err error) {
	err = s.queryRow(ctx, `
		SELECT COUNT(*), CAST(COALESCE(SUM(vote_count), 0) AS BIGINT)
		FROM quotes
		WHERE user_id = ?`, userID).Scan(&quotes, &votes)
	if err != nil {
		return 0, 0, s.d.translate("reading user totals", err)
	}

	return quotes, votes, nil
}

// UserRank returns the dense rank of the user's total votes. Users whose
// quotes hold no votes are not ranked.
func (s *snapshot) UserRank(ctx context.Context, userID string) (int64, bool, error) {
	var rank int64

	err := s.queryRow(ctx, `
		SELECT ranked.user_rank
		FROM (
			SELECT user_id, DENSE_RANK() OVER (ORDER BY SUM(vote_count) DESC) AS user_rank
			FROM quotes
			GROUP BY user_id
			HAVING SUM(vote_count) > 0
		) ranked
		WHERE ranked.user_id = ?`, userID).Scan(&rank)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, s.d.translate("ranking user", err)
	}

	return rank, true, nil
}

// CategoryCounts returns the user's quotes per category, skipping uncategorized ones.
func (s *snapshot) CategoryCounts(ctx context.Context, userID string) ([]domain.CategoryShare, error) {
	rows, err := s.query(ctx, `
		SELECT category, COUNT(*) AS quote_count
		FROM quotes
		WHERE user_id = ? AND category <> ''
		GROUP BY category
		ORDER BY quote_count DESC, category ASC`, userID)
	if err != nil {
		return nil, s.d.translate("counting categories", err)
	}
	defer rows.Close()

	var counts []domain.CategoryShare

	for rows.Next() {
		var c domain.CategoryShare
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, s.d.translate("counting categories", err)
		}

		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, s.d.translate("counting categories", err)
	}

	return counts, nil
}
