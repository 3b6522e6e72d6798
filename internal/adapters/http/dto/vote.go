package dto

import (
	"time"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
)

// Vote directions accepted on POST /votes/:quoteId.
const (
	VoteUp      = 1
	VoteRetract = -1
)

// VoteRequest is the body of POST /votes/:quoteId. 1 casts, -1 retracts.
type VoteRequest struct {
	VoteValue int `json:"vote_value" validate:"required,oneof=1 -1"`
}

// CastResponse is returned after a successful cast.
type CastResponse struct {
	QuoteID   int64 `json:"quote_id"`
	VoteValue int   `json:"vote_value"`
}

// RetractResponse is returned after a successful retraction.
type RetractResponse struct {
	QuoteID int64 `json:"quote_id"`
	Removed bool  `json:"removed"`
}

// EligibilityResponse answers GET /votes/check/:quoteId.
type EligibilityResponse struct {
	CanVote           bool `json:"can_vote"`
	QuoteHasZeroVotes bool `json:"quote_has_zero_votes"`
	UserHasNoVote     bool `json:"user_has_no_vote"`
	ExistingVoteValue *int `json:"existing_vote_value"`
}

// NewEligibilityResponse converts the domain result.
func NewEligibilityResponse(e *domain.Eligibility) EligibilityResponse {
	return EligibilityResponse{
		CanVote:           e.CanVote,
		QuoteHasZeroVotes: e.QuoteHasZeroVotes,
		UserHasNoVote:     e.UserHasNoVote,
		ExistingVoteValue: e.ExistingVoteValue,
	}
}

// CurrentVoteResponse describes the caller's active vote.
type CurrentVoteResponse struct {
	VoteID    int64            `json:"vote_id"`
	QuoteID   int64            `json:"quote_id"`
	VoteValue int              `json:"vote_value"`
	CreatedAt time.Time        `json:"created_at"`
	Quote     CurrentVoteQuote `json:"quote"`
}

// CurrentVoteQuote is the quote summary embedded in CurrentVoteResponse.
type CurrentVoteQuote struct {
	Content   string `json:"content"`
	Author    string `json:"author"`
	VoteCount int64  `json:"vote_count"`
}

// NewCurrentVoteResponse converts the domain value. A nil vote yields nil so
// the envelope renders data: null.
func NewCurrentVoteResponse(v *domain.CurrentVote) *CurrentVoteResponse {
	if v == nil {
		return nil
	}

	return &CurrentVoteResponse{
		VoteID:    v.VoteID,
		QuoteID:   v.QuoteID,
		VoteValue: v.VoteValue,
		CreatedAt: v.CreatedAt,
		Quote: CurrentVoteQuote{
			Content:   v.QuoteContent,
			Author:    v.QuoteAuthor,
			VoteCount: v.QuoteVoteCount,
		},
	}
}
