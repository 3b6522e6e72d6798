package domain

import "math"

// RankedQuote is a quote placed in the top-voted listing. Rank is 1-based.
type RankedQuote struct {
	Quote
	Rank int
}

// CategoryShare is one slice of a user's category distribution.
type CategoryShare struct {
	Category   string
	Count      int64
	Percentage float64
}

// PersonalSummary describes a user's quotes and standing.
// Rank is nil when the user has no votes across their quotes.
type PersonalSummary struct {
	TotalQuotes  int64
	TotalVotes   int64
	Rank         *int64
	Distribution []CategoryShare
}

// Percentage returns part/total as a percentage rounded to two decimals.
func Percentage(part, total int64) float64 {
	if total <= 0 {
		return 0
	}

	return math.Round(float64(part)/float64(total)*10000) / 100
}

// ShareOf builds the distribution from per-category counts, which must already
// be ordered. Percentages are relative to the categorized quotes only.
func ShareOf(counts []CategoryShare) []CategoryShare {
	var total int64
	for _, c := range counts {
		total += c.Count
	}

	out := make([]CategoryShare, len(counts))
	for i, c := range counts {
		out[i] = CategoryShare{Category: c.Category, Count: c.Count, Percentage: Percentage(c.Count, total)}
	}

	return out
}
