// Package domain contains core business entities and rules.
package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTags is the most tags a quote may carry after normalization.
const MaxTags = 10

// Quote is a user-submitted quotation.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the unique, immutable identifier assigned by the store.
	ID int64

	// UserID is the owner who submitted the quote.
	UserID string

	// Content is the text of the quote.
	Content string

	// Author is who said or wrote the quote.
	Author string

	// Category is an optional lower-cased grouping used by the personal summary.
	Category string

	// Tags are normalized, lower-cased labels.
	Tags []string

	// VoteCount mirrors the number of active votes. Only the vote ledger changes it.
	VoteCount int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether userID submitted the quote.
func (q *Quote) IsOwnedBy(userID string) bool {
	return q.UserID == userID
}

// Locked reports whether the quote can no longer be edited or deleted.
// A quote is frozen as soon as it has received a vote.
func (q *Quote) Locked() bool {
	return q.VoteCount != 0
}

// QuoteInput carries the fields for creating a quote.
type QuoteInput struct {
	Content  string
	Author   string
	Category string
	Tags     []string
}

// Normalize trims text fields, lower-cases the category and cleans the tags.
func (in QuoteInput) Normalize() QuoteInput {
	return QuoteInput{
		Content:  strings.TrimSpace(in.Content),
		Author:   strings.TrimSpace(in.Author),
		Category: NormalizeCategory(in.Category),
		Tags:     NormalizeTags(in.Tags),
	}
}

// Text bounds for a quote, counted in runes after trimming.
const (
	MinContentLen = 10
	MaxContentLen = 1000
	MinAuthorLen  = 2
	MaxAuthorLen  = 100
)

// ValidateText checks the content and author bounds of a normalized quote.
func ValidateText(content, author string) error {
	if n := utf8.RuneCountInString(content); n < MinContentLen || n > MaxContentLen {
		return NewValidationError("content",
			"must be between "+strconv.Itoa(MinContentLen)+" and "+strconv.Itoa(MaxContentLen)+" characters")
	}

	if n := utf8.RuneCountInString(author); n < MinAuthorLen || n > MaxAuthorLen {
		return NewValidationError("author",
			"must be between "+strconv.Itoa(MinAuthorLen)+" and "+strconv.Itoa(MaxAuthorLen)+" characters")
	}

	return nil
}

// QuotePatch carries optional updates. Nil fields are left unchanged.
type QuotePatch struct {
	Content  *string
	Author   *string
	Category *string
	Tags     []string
	SetTags  bool
}

// Apply returns a copy of q with the patch applied and normalized.
func (p *QuotePatch) Apply(q Quote) Quote {
	if p.Content != nil {
		q.Content = strings.TrimSpace(*p.Content)
	}

	if p.Author != nil {
		q.Author = strings.TrimSpace(*p.Author)
	}

	if p.Category != nil {
		q.Category = NormalizeCategory(*p.Category)
	}

	if p.SetTags {
		q.Tags = NormalizeTags(p.Tags)
	}

	return q
}

// NormalizeCategory trims and lower-cases a category name.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// NormalizeTags trims and lower-cases tags, drops empty and repeated entries
// and keeps at most MaxTags.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}

		if _, ok := seen[tag]; ok {
			continue
		}

		seen[tag] = struct{}{}

		out = append(out, tag)
		if len(out) == MaxTags {
			break
		}
	}

	return out
}

// ContentKey is the comparison key for duplicate detection: trimmed and lower-cased.
func ContentKey(content string) string {
	return strings.ToLower(strings.TrimSpace(content))
}

// NewQuoteNotFoundError reports that no quote with id exists.
func NewQuoteNotFoundError(id int64) error {
	return NewNotFoundError("quote", strconv.FormatInt(id, 10))
}

// QuoteSort names a sortable quote column.
type QuoteSort string

// Sortable columns.
const (
	SortByVoteCount QuoteSort = "vote_count"
	SortByCreatedAt QuoteSort = "created_at"
	SortByUpdatedAt QuoteSort = "updated_at"
	SortByAuthor    QuoteSort = "author"
)

// Valid reports whether s is a known sort column.
func (s QuoteSort) Valid() bool {
	switch s {
	case SortByVoteCount, SortByCreatedAt, SortByUpdatedAt, SortByAuthor:
		return true
	default:
		return false
	}
}

// Listing limits.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// QuoteQuery filters and orders a quote listing.
type QuoteQuery struct {
	OwnerID  string
	Category string
	Author   string
	Search   string
	SortBy   QuoteSort
	Desc     bool
	Page     int
	Limit    int
}

// Normalize fills defaults and clamps paging so that stores can trust the values.
func (q QuoteQuery) Normalize() QuoteQuery {
	q.Category = NormalizeCategory(q.Category)
	q.Author = strings.TrimSpace(q.Author)
	q.Search = strings.TrimSpace(q.Search)

	if !q.SortBy.Valid() {
		q.SortBy = SortByVoteCount
		q.Desc = true
	}

	if q.Page < 1 {
		q.Page = 1
	}

	switch {
	case q.Limit < 1:
		q.Limit = DefaultPageLimit
	case q.Limit > MaxPageLimit:
		q.Limit = MaxPageLimit
	}

	return q
}

// Offset is the number of rows to skip for the current page.
func (q QuoteQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// QuotePage is one page of a quote listing.
type QuotePage struct {
	Quotes []Quote
	Total  int64
	Page   int
	Limit  int

	// VotedUsers maps each listed quote id to the users holding an active
	// vote on it.
	VotedUsers map[int64][]string
}

// TotalPages returns the number of pages for the listing.
func (p QuotePage) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}

	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
