package dto

import "github.com/jsamuelsen/quote-vote-service/internal/domain"

// RankedQuoteResponse is a quote with its leaderboard position.
type RankedQuoteResponse struct {
	QuoteResponse
	Rank int `json:"rank"`
}

// NewTopVotedResponse converts the leaderboard.
func NewTopVotedResponse(ranked []domain.RankedQuote) []RankedQuoteResponse {
	out := make([]RankedQuoteResponse, len(ranked))
	for i := range ranked {
		out[i] = RankedQuoteResponse{QuoteResponse: NewQuoteResponse(&ranked[i].Quote), Rank: ranked[i].Rank}
	}

	return out
}

// CategoryShareResponse is one slice of the category distribution.
type CategoryShareResponse struct {
	Category   string  `json:"category"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PersonalSummaryResponse answers GET /quotes/summary/personal.
type PersonalSummaryResponse struct {
	TotalQuotes  int64                   `json:"total_quotes"`
	TotalVotes   int64                   `json:"total_votes"`
	Rank         *int64                  `json:"rank"`
	Distribution []CategoryShareResponse `json:"category_distribution"`
}

// NewPersonalSummaryResponse converts the domain summary.
func NewPersonalSummaryResponse(s *domain.PersonalSummary) PersonalSummaryResponse {
	dist := make([]CategoryShareResponse, len(s.Distribution))
	for i, c := range s.Distribution {
		dist[i] = CategoryShareResponse{Category: c.Category, Count: c.Count, Percentage: c.Percentage}
	}

	return PersonalSummaryResponse{
		TotalQuotes:  s.TotalQuotes,
		TotalVotes:   s.TotalVotes,
		Rank:         s.Rank,
		Distribution: dist,
	}
}

// DashboardResponse answers GET /quotes/dashboard.
type DashboardResponse struct {
	TopVoted []RankedQuoteResponse    `json:"top_voted"`
	Summary  *PersonalSummaryResponse `json:"personal_summary"`
}

// NewDashboardResponse combines the leaderboard and the caller's summary.
// A nil summary renders as null.
func NewDashboardResponse(top []domain.RankedQuote, summary *domain.PersonalSummary) DashboardResponse {
	resp := DashboardResponse{TopVoted: NewTopVotedResponse(top)}
	if summary != nil {
		s := NewPersonalSummaryResponse(summary)
		resp.Summary = &s
	}

	return resp
}
