package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
)

func TestStore_CreateAndGetQuote(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateQuote(ctx, "alice", domain.QuoteInput{
		Content:  "The only way out is through.",
		Author:   "Robert Frost",
		Category: "perseverance",
		Tags:     []string{"life", "grit"},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Zero(t, created.VoteCount)

	got, err := s.GetQuote(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.UserID)
	assert.Equal(t, "The only way out is through.", got.Content)
	assert.Equal(t, "Robert Frost", got.Author)
	assert.Equal(t, "perseverance", got.Category)
	assert.Equal(t, []string{"life", "grit"}, got.Tags)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, 0)
}

func TestStore_GetQuote_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetQuote(context.Background(), 77)

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestStore_HasContent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	q := createQuote(t, s, "alice", "Know Thyself", "")

	exists, err := s.HasContent(ctx, "alice", domain.ContentKey("  know thyself "), 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.HasContent(ctx, "alice", domain.ContentKey("know thyself"), q.ID)
	require.NoError(t, err)
	assert.False(t, exists, "the quote itself is excluded")

	exists, err = s.HasContent(ctx, "bob", domain.ContentKey("know thyself"), 0)
	require.NoError(t, err)
	assert.False(t, exists, "other users may post the same text")
}

func TestStore_UpdateUnvoted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	q := createQuote(t, s, "alice", "Draft content for editing.", "")

	q.Content = "Edited content for the quote."
	q.Tags = []string{"edited"}

	ok, err := s.UpdateUnvoted(ctx, q)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.GetQuote(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited content for the quote.", got.Content)
	assert.Equal(t, []string{"edited"}, got.Tags)

	castVote(t, s, "v1", q.ID)

	q.Content = "Too late to edit this one."
	ok, err = s.UpdateUnvoted(ctx, q)
	require.NoError(t, err)
	assert.False(t, ok, "voted quotes are locked")

	other := *q
	other.UserID = "mallory"
	ok, err = s.UpdateUnvoted(ctx, &other)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_DeleteUnvoted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	free := createQuote(t, s, "alice", "This one can be deleted.", "")
	locked := createQuote(t, s, "alice", "This one has a vote.", "")
	castVote(t, s, "v1", locked.ID)

	ok, err := s.DeleteUnvoted(ctx, free.ID, "bob")
	require.NoError(t, err)
	assert.False(t, ok, "only the owner may delete")

	ok, err = s.DeleteUnvoted(ctx, free.ID, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeleteUnvoted(ctx, locked.ID, "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.GetQuote(ctx, free.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestStore_ListQuotes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := range 12 {
		category := "life"
		if i%3 == 0 {
			category = "love"
		}

		createQuote(t, s, "alice", fmt.Sprintf("Quote number %02d about things.", i), category)
	}

	special := createQuote(t, s, "bob", "100% pure_wisdom here.", "")
	castVote(t, s, "v1", special.ID)

	tests := []struct {
		name      string
		query     domain.QuoteQuery
		wantTotal int64
		wantLen   int
		check     func(t *testing.T, page *domain.QuotePage)
	}{
		{
			name:      "default order puts voted first",
			query:     domain.QuoteQuery{},
			wantTotal: 13,
			wantLen:   10,
			check: func(t *testing.T, page *domain.QuotePage) {
				assert.Equal(t, special.ID, page.Quotes[0].ID)
				assert.Equal(t, 2, page.TotalPages())
			},
		},
		{
			name:      "second page",
			query:     domain.QuoteQuery{Page: 2},
			wantTotal: 13,
			wantLen:   3,
		},
		{
			name:      "by owner",
			query:     domain.QuoteQuery{OwnerID: "bob"},
			wantTotal: 1,
			wantLen:   1,
		},
		{
			name:      "by category",
			query:     domain.QuoteQuery{Category: "LOVE"},
			wantTotal: 4,
			wantLen:   4,
		},
		{
			name:      "search escapes wildcards",
			query:     domain.QuoteQuery{Search: "100%"},
			wantTotal: 1,
			wantLen:   1,
		},
		{
			name:      "underscore is literal",
			query:     domain.QuoteQuery{Search: "e_w"},
			wantTotal: 1,
			wantLen:   1,
		},
		{
			name:      "author filter is case insensitive",
			query:     domain.QuoteQuery{Author: "anon", Limit: 50},
			wantTotal: 13,
			wantLen:   13,
		},
		{
			name:      "created ascending",
			query:     domain.QuoteQuery{SortBy: domain.SortByCreatedAt, Limit: 2},
			wantTotal: 13,
			wantLen:   2,
			check: func(t *testing.T, page *domain.QuotePage) {
				assert.Equal(t, "Quote number 00 about things.", page.Quotes[0].Content)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := s.ListQuotes(ctx, tt.query.Normalize())
			require.NoError(t, err)

			assert.Equal(t, tt.wantTotal, page.Total)
			assert.Len(t, page.Quotes, tt.wantLen)

			if tt.check != nil {
				tt.check(t, page)
			}
		})
	}
}

func TestStore_ListQuotes_VotedUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	popular := createQuote(t, s, "alice", "The unexamined life is not worth living.", "life")
	quiet := createQuote(t, s, "alice", "Know thyself, and you will know the gods.", "")
	elsewhere := createQuote(t, s, "bob", "Wonder is the beginning of wisdom.", "")

	castVote(t, s, "carol", popular.ID)
	castVote(t, s, "dave", popular.ID)
	castVote(t, s, "erin", elsewhere.ID)

	page, err := s.ListQuotes(ctx, domain.QuoteQuery{OwnerID: "alice"}.Normalize())
	require.NoError(t, err)

	require.Len(t, page.Quotes, 2)
	assert.Equal(t, []string{"carol", "dave"}, page.VotedUsers[popular.ID])
	for _, q := range page.Quotes {
		assert.Equal(t, int64(len(page.VotedUsers[q.ID])), q.VoteCount, "quote %d", q.ID)
	}

	require.Contains(t, page.VotedUsers, quiet.ID)
	assert.Empty(t, page.VotedUsers[quiet.ID])
	assert.NotContains(t, page.VotedUsers, elsewhere.ID)

	t.Run("empty page has no voters", func(t *testing.T) {
		empty, err := s.ListQuotes(ctx, domain.QuoteQuery{OwnerID: "nobody"}.Normalize())
		require.NoError(t, err)
		assert.Empty(t, empty.Quotes)
		assert.Empty(t, empty.VotedUsers)
	})
}
