package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
)

const quoteColumns = `id, user_id, content, author, category, tags, vote_count, created_at, updated_at`

// sortColumns whitelists the ORDER BY expressions a listing may use.
var sortColumns = map[domain.QuoteSort]string{
	domain.SortByVoteCount: "vote_count",
	domain.SortByCreatedAt: "created_at",
	domain.SortByUpdatedAt: "updated_at",
	domain.SortByAuthor:    "LOWER(author)",
}

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateQuote inserts a quote with a zero vote count.
func (s *Store) CreateQuote(ctx context.Context, userID string, in domain.QuoteInput) (*domain.Quote, error) {
	tags, err := encodeTags(in.Tags)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	q := &domain.Quote{
		UserID:    userID,
		Content:   in.Content,
		Author:    in.Author,
		Category:  in.Category,
		Tags:      in.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if q.Tags == nil {
		q.Tags = []string{}
	}

	err = s.base.queryRow(ctx, `
		INSERT INTO quotes (user_id, content, author, category, tags, vote_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?)
		RETURNING id`,
		userID, q.Content, q.Author, q.Category, tags, s.dialect.timeArg(now), s.dialect.timeArg(now),
	).Scan(&q.ID)
	if err != nil {
		return nil, s.dialect.translate("inserting quote", err)
	}

	return q, nil
}

// GetQuote returns one quote.
func (s *Store) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	row := s.base.queryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = ?`, id)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewQuoteNotFoundError(id)
	}

	if err != nil {
		return nil, s.dialect.translate("reading quote", err)
	}

	return q, nil
}

// HasContent reports whether the user already submitted the same content.
func (s *Store) HasContent(ctx context.Context, userID, contentKey string, excludeID int64) (bool, error) {
	var exists bool

	err := s.base.queryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM quotes
			WHERE user_id = ? AND LOWER(TRIM(content)) = ? AND id <> ?
		)`, userID, contentKey, excludeID).Scan(&exists)
	if err != nil {
		return false, s.dialect.translate("checking duplicate content", err)
	}

	return exists, nil
}

// UpdateUnvoted writes the editable fields. The vote_count guard makes the
// lockout hold even if a vote lands between the caller's check and this write.
func (s *Store) UpdateUnvoted(ctx context.Context, q *domain.Quote) (bool, error) {
	tags, err := encodeTags(q.Tags)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()

	res, err := s.base.exec(ctx, `
		UPDATE quotes
		SET content = ?, author = ?, category = ?, tags = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND vote_count = 0`,
		q.Content, q.Author, q.Category, tags, s.dialect.timeArg(now), q.ID, q.UserID,
	)
	if err != nil {
		return false, s.dialect.translate("updating quote", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, s.dialect.translate("updating quote", err)
	}

	if n == 1 {
		q.UpdatedAt = now
	}

	return n == 1, nil
}

// DeleteUnvoted removes a quote that has no votes.
func (s *Store) DeleteUnvoted(ctx context.Context, id int64, userID string) (bool, error) {
	res, err := s.base.exec(ctx,
		`DELETE FROM quotes WHERE id = ? AND user_id = ? AND vote_count = 0`, id, userID)
	if err != nil {
		return false, s.dialect.translate("deleting quote", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, s.dialect.translate("deleting quote", err)
	}

	return n == 1, nil
}

// ListQuotes returns a filtered, ordered page of quotes, the total match count
// and the voters of every listed quote, all read from one snapshot.
func (s *Store) ListQuotes(ctx context.Context, query domain.QuoteQuery) (*domain.QuotePage, error) {
	where, args := listFilter(query)

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = sortColumns[domain.SortByVoteCount]
	}

	direction := " ASC"
	if query.Desc {
		direction = " DESC"
	}

	page := &domain.QuotePage{Page: query.Page, Limit: query.Limit}

	err := s.inTx(ctx, s.dialect.readTx, func(ctx context.Context, c *conn) error {
		err := c.queryRow(ctx, `SELECT COUNT(*) FROM quotes`+where, args...).Scan(&page.Total)
		if err != nil {
			return c.d.translate("counting quotes", err)
		}

		pageArgs := append(append([]any{}, args...), query.Limit, query.Offset())

		rows, err := c.query(ctx, `SELECT `+quoteColumns+` FROM quotes`+where+
			` ORDER BY `+column+direction+`, created_at DESC, id DESC LIMIT ? OFFSET ?`, pageArgs...)
		if err != nil {
			return c.d.translate("listing quotes", err)
		}

		if page.Quotes, err = c.scanQuotes(rows, "listing quotes"); err != nil {
			return err
		}

		page.VotedUsers, err = c.votersOf(ctx, page.Quotes)

		return err
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// votersOf returns the users holding a vote on each quote, oldest vote first.
// Quotes without votes map to an empty slice.
func (c *conn) votersOf(ctx context.Context, quotes []domain.Quote) (map[int64][]string, error) {
	voters := make(map[int64][]string, len(quotes))
	if len(quotes) == 0 {
		return voters, nil
	}

	ids := make([]any, len(quotes))
	for i := range quotes {
		ids[i] = quotes[i].ID
		voters[quotes[i].ID] = []string{}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")

	rows, err := c.query(ctx, `SELECT quote_id, user_id FROM votes WHERE quote_id IN (`+placeholders+`)
		ORDER BY created_at, id`, ids...)
	if err != nil {
		return nil, c.d.translate("listing voters", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			quoteID int64
			userID  string
		)

		if err := rows.Scan(&quoteID, &userID); err != nil {
			return nil, c.d.translate("listing voters", err)
		}

		voters[quoteID] = append(voters[quoteID], userID)
	}

	if err := rows.Err(); err != nil {
		return nil, c.d.translate("listing voters", err)
	}

	return voters, nil
}

func listFilter(q domain.QuoteQuery) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if q.OwnerID != "" {
		clauses = append(clauses, "user_id = ?")
		args = append(args, q.OwnerID)
	}

	if q.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, q.Category)
	}

	if q.Author != "" {
		clauses = append(clauses, `LOWER(author) LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(q.Author))
	}

	if q.Search != "" {
		clauses = append(clauses, `(LOWER(content) LIKE ? ESCAPE '\' OR LOWER(author) LIKE ? ESCAPE '\')`)
		pattern := likePattern(q.Search)
		args = append(args, pattern, pattern)
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func (c *conn) scanQuotes(rows *sql.Rows, op string) ([]domain.Quote, error) {
	defer rows.Close()

	quotes := make([]domain.Quote, 0)

	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, c.d.translate(op, err)
		}

		quotes = append(quotes, *q)
	}

	if err := rows.Err(); err != nil {
		return nil, c.d.translate(op, err)
	}

	return quotes, nil
}

func scanQuote(row rowScanner) (*domain.Quote, error) {
	var (
		q                    domain.Quote
		tags                 string
		createdAt, updatedAt timestamp
	)

	err := row.Scan(&q.ID, &q.UserID, &q.Content, &q.Author, &q.Category, &tags,
		&q.VoteCount, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &q.Tags); err != nil {
		return nil, err
	}

	if q.Tags == nil {
		q.Tags = []string{}
	}

	q.CreatedAt = createdAt.Time
	q.UpdatedAt = updatedAt.Time

	return &q, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}

	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
