package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
	"github.com/jsamuelsen/quote-vote-service/internal/ports"
)

// DefaultTopLimit is used when StatsServiceConfig.TopLimit is not set.
const DefaultTopLimit = 3

// StatsService is the aggregation reader. Every method reads from a single
// snapshot so totals, ranks and distributions agree with each other.
type StatsService struct {
	store    ports.LedgerStore
	topLimit int
	logger   *slog.Logger
}

// StatsServiceConfig contains the stats service dependencies.
type StatsServiceConfig struct {
	Store    ports.LedgerStore
	TopLimit int
	Logger   *slog.Logger
}

// Dashboard combines the public leaderboard with the caller's own summary.
type Dashboard struct {
	TopVoted []domain.RankedQuote
	Summary  *domain.PersonalSummary
}

// NewStatsService creates the aggregation reader. Panics if Store is nil.
func NewStatsService(cfg StatsServiceConfig) *StatsService {
	if cfg.Store == nil {
		panic("app: StatsService requires a LedgerStore")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	limit := cfg.TopLimit
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	return &StatsService{
		store:    cfg.Store,
		topLimit: limit,
		logger:   logger.With(slog.String("component", "app.StatsService")),
	}
}

// TopVoted returns the highest voted quotes, most votes first and newest first
// on ties. Quotes with zero votes are included when fewer voted quotes exist.
func (s *StatsService) TopVoted(ctx context.Context) ([]domain.RankedQuote, error) {
	var quotes []domain.Quote

	err := s.store.ReadSnapshot(ctx, func(ctx context.Context, r ports.SnapshotReader) error {
		var err error

		quotes, err = r.TopVoted(ctx, s.topLimit)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reading top voted quotes: %w", err)
	}

	ranked := make([]domain.RankedQuote, len(quotes))
	for i, q := range quotes {
		ranked[i] = domain.RankedQuote{Quote: q, Rank: i + 1}
	}

	return ranked, nil
}

// PersonalSummary returns the user's quote and vote totals, their dense rank
// among users holding votes, and their category distribution.
func (s *StatsService) PersonalSummary(ctx context.Context, userID string) (*domain.PersonalSummary, error) {
	summary := &domain.PersonalSummary{}

	err := s.store.ReadSnapshot(ctx, func(ctx context.Context, r ports.SnapshotReader) error {
		quotes, votes, err := r.UserTotals(ctx, userID)
		if err != nil {
			return err
		}

		summary.TotalQuotes = quotes
		summary.TotalVotes = votes

		rank, ok, err := r.UserRank(ctx, userID)
		if err != nil {
			return err
		}

		if ok {
			summary.Rank = &rank
		}

		counts, err := r.CategoryCounts(ctx, userID)
		if err != nil {
			return err
		}

		summary.Distribution = domain.ShareOf(counts)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading personal summary: %w", err)
	}

	s.logger.DebugContext(ctx, "personal summary computed",
		slog.Int64("total_quotes", summary.TotalQuotes),
		slog.Int64("total_votes", summary.TotalVotes),
	)

	return summary, nil
}

// Dashboard loads the leaderboard and, for a known caller, the personal
// summary concurrently. Summary is nil when userID is empty.
func (s *StatsService) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	var d Dashboard

	reads := []snapshotRead{{
		name: "top voted",
		run: func(ctx context.Context) error {
			var err error

			d.TopVoted, err = s.TopVoted(ctx)

			return err
		},
	}}

	if userID != "" {
		reads = append(reads, snapshotRead{
			name: "personal summary",
			run: func(ctx context.Context) error {
				var err error

				d.Summary, err = s.PersonalSummary(ctx, userID)

				return err
			},
		})
	}

	if err := readConcurrently(ctx, reads...); err != nil {
		return nil, fmt.Errorf("loading dashboard: %w", err)
	}

	return &d, nil
}
