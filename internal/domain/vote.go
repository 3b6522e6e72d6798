package domain

import "time"

// UpvoteValue is the only value an active vote can hold. Removing a vote deletes it.
const UpvoteValue = 1

// Vote is a user's single active vote.
type Vote struct {
	ID        int64
	UserID    string
	QuoteID   int64
	Value     int
	CreatedAt time.Time
}

// CastResult is returned after a vote is recorded.
type CastResult struct {
	QuoteID   int64
	VoteValue int
}

// RetractResult is returned after a vote is removed.
type RetractResult struct {
	QuoteID int64
	Removed bool
}

// Eligibility is an advisory answer to "may this user vote on this quote now?".
// Cast always re-validates.
type Eligibility struct {
	CanVote           bool
	QuoteHasZeroVotes bool
	UserHasNoVote     bool
	ExistingVoteValue *int
}

// CurrentVote is the user's active vote joined with the quote it points at.
type CurrentVote struct {
	VoteID         int64
	QuoteID        int64
	VoteValue      int
	CreatedAt      time.Time
	QuoteContent   string
	QuoteAuthor    string
	QuoteVoteCount int64
}

// EvaluateEligibility derives the eligibility flags from the quote counter and the
// caller's vote on that quote, if any.
func EvaluateEligibility(voteCount int64, existing *Vote) Eligibility {
	e := Eligibility{
		QuoteHasZeroVotes: voteCount == 0,
		UserHasNoVote:     existing == nil,
	}

	if existing != nil {
		v := existing.Value
		e.ExistingVoteValue = &v
	}

	e.CanVote = e.QuoteHasZeroVotes && e.UserHasNoVote

	return e
}
