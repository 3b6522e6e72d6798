package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
)

// DataResponse is the success envelope.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// NewDataResponse wraps v in the success envelope.
func NewDataResponse[T any](v T) DataResponse[T] {
	return DataResponse[T]{Data: v}
}

// CreateQuoteRequest is the body of POST /quotes.
type CreateQuoteRequest struct {
	Content  string   `json:"content"  validate:"required,trimmedlen=10-1000"`
	Author   string   `json:"author"   validate:"required,trimmedlen=2-100"`
	Category string   `json:"category" validate:"max=50"`
	Tags     []string `json:"tags"     validate:"max=10,dive,max=30"`
}

// ToInput converts the request to a domain input.
func (r *CreateQuoteRequest) ToInput() domain.QuoteInput {
	return domain.QuoteInput{Content: r.Content, Author: r.Author, Category: r.Category, Tags: r.Tags}
}

// UpdateQuoteRequest is the body of PUT /quotes/:id. Absent fields are unchanged.
type UpdateQuoteRequest struct {
	Content  *string   `json:"content"  validate:"omitempty,trimmedlen=10-1000"`
	Author   *string   `json:"author"   validate:"omitempty,trimmedlen=2-100"`
	Category *string   `json:"category" validate:"omitempty,max=50"`
	Tags     *[]string `json:"tags"     validate:"omitempty,max=10,dive,max=30"`
}

var errEmptyUpdate = errors.New("at least one field must be provided")

// Validate implements Validatable.
func (r *UpdateQuoteRequest) Validate() error {
	if r.Content == nil && r.Author == nil && r.Category == nil && r.Tags == nil {
		return errEmptyUpdate
	}

	return nil
}

// ToPatch converts the request to a domain patch.
func (r *UpdateQuoteRequest) ToPatch() domain.QuotePatch {
	p := domain.QuotePatch{Content: r.Content, Author: r.Author, Category: r.Category}
	if r.Tags != nil {
		p.Tags = *r.Tags
		p.SetTags = true
	}

	return p
}

// ListQuotesRequest holds the query parameters of GET /quotes.
type ListQuotesRequest struct {
	Category  string `form:"category"`
	Author    string `form:"author"`
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"    validate:"omitempty,oneof=vote_count created_at updated_at author"`
	SortOrder string `form:"sort_order" validate:"omitempty,oneof=asc desc ASC DESC"`
	Page      int    `form:"page"       validate:"omitempty,min=1"`
	Limit     int    `form:"limit"      validate:"omitempty,min=1,max=50"`
}

// ToQuery converts the request to a domain query. Without sort_by the listing
// falls back to the most voted first.
func (r *ListQuotesRequest) ToQuery(ownerID string) domain.QuoteQuery {
	q := domain.QuoteQuery{
		OwnerID:  ownerID,
		Category: r.Category,
		Author:   r.Author,
		Search:   r.Search,
		SortBy:   domain.QuoteSort(r.SortBy),
		Desc:     !strings.EqualFold(r.SortOrder, "asc"),
		Page:     r.Page,
		Limit:    r.Limit,
	}

	return q.Normalize()
}

// QuoteResponse is the wire form of a quote.
type QuoteResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags"`
	VoteCount int64     `json:"vote_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}

	return QuoteResponse{
		ID:        q.ID,
		UserID:    q.UserID,
		Content:   q.Content,
		Author:    q.Author,
		Category:  q.Category,
		Tags:      tags,
		VoteCount: q.VoteCount,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// QuoteListItem is a listed quote with the users currently voting for it.
type QuoteListItem struct {
	QuoteResponse

	VotedUsers []string `json:"voted_users"`
}

// QuotePageResponse is one page of a listing.
type QuotePageResponse struct {
	Quotes     []QuoteListItem `json:"quotes"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// NewQuotePageResponse converts a domain page.
func NewQuotePageResponse(p *domain.QuotePage) QuotePageResponse {
	quotes := make([]QuoteListItem, len(p.Quotes))
	for i := range p.Quotes {
		voters := p.VotedUsers[p.Quotes[i].ID]
		if voters == nil {
			voters = []string{}
		}

		quotes[i] = QuoteListItem{QuoteResponse: NewQuoteResponse(&p.Quotes[i]), VotedUsers: voters}
	}

	return QuotePageResponse{
		Quotes:     quotes,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages(),
	}
}
