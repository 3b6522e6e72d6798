package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
	"github.com/jsamuelsen/quote-vote-service/internal/mocks"
)

func TestNewStatsService(t *testing.T) {
	assert.Panics(t, func() { NewStatsService(StatsServiceConfig{}) })

	svc := NewStatsService(StatsServiceConfig{Store: mocks.NewMockLedgerStore(t)})
	assert.Equal(t, DefaultTopLimit, svc.topLimit)
}

func TestStatsService_TopVoted(t *testing.T) {
	reader := mocks.NewMockSnapshotReader(t)
	reader.EXPECT().TopVoted(mock.Anything, 5).Return([]domain.Quote{
		{ID: 3, VoteCount: 4},
		{ID: 1, VoteCount: 2},
		{ID: 2, VoteCount: 0},
	}, nil)

	store := mocks.NewMockLedgerStore(t)
	expectSnapshot(store, reader)

	svc := NewStatsService(StatsServiceConfig{Store: store, TopLimit: 5, Logger: discardLogger()})

	got, err := svc.TopVoted(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, want := range []int64{3, 1, 2} {
		assert.Equal(t, want, got[i].ID)
		assert.Equal(t, i+1, got[i].Rank)
	}
}

func TestStatsService_TopVoted_Error(t *testing.T) {
	reader := mocks.NewMockSnapshotReader(t)
	reader.EXPECT().TopVoted(mock.Anything, DefaultTopLimit).
		Return(nil, domain.NewUnavailableError("database", "connection refused"))

	store := mocks.NewMockLedgerStore(t)
	expectSnapshot(store, reader)

	_, err := NewStatsService(StatsServiceConfig{Store: store}).TopVoted(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestStatsService_PersonalSummary(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*mocks.MockSnapshotReader)
		want  *domain.PersonalSummary
	}{
		{
			name: "ranked user with categories",
			setup: func(r *mocks.MockSnapshotReader) {
				r.EXPECT().UserTotals(mock.Anything, testUser).Return(3, 5, nil)
				r.EXPECT().UserRank(mock.Anything, testUser).Return(2, true, nil)
				r.EXPECT().CategoryCounts(mock.Anything, testUser).Return([]domain.CategoryShare{
					{Category: "stoic", Count: 2},
					{Category: "humor", Count: 1},
				}, nil)
			},
			want: &domain.PersonalSummary{
				TotalQuotes: 3,
				TotalVotes:  5,
				Rank:        ptr(int64(2)),
				Distribution: []domain.CategoryShare{
					{Category: "stoic", Count: 2, Percentage: 66.67},
					{Category: "humor", Count: 1, Percentage: 33.33},
				},
			},
		},
		{
			name: "user without votes has no rank",
			setup: func(r *mocks.MockSnapshotReader) {
				r.EXPECT().UserTotals(mock.Anything, testUser).Return(1, 0, nil)
				r.EXPECT().UserRank(mock.Anything, testUser).Return(0, false, nil)
				r.EXPECT().CategoryCounts(mock.Anything, testUser).Return(nil, nil)
			},
			want: &domain.PersonalSummary{TotalQuotes: 1, Distribution: []domain.CategoryShare{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := mocks.NewMockSnapshotReader(t)
			tt.setup(reader)

			store := mocks.NewMockLedgerStore(t)
			expectSnapshot(store, reader).Once()

			got, err := NewStatsService(StatsServiceConfig{Store: store}).PersonalSummary(context.Background(), testUser)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatsService_PersonalSummary_RankError(t *testing.T) {
	reader := mocks.NewMockSnapshotReader(t)
	reader.EXPECT().UserTotals(mock.Anything, testUser).Return(1, 1, nil)
	reader.EXPECT().UserRank(mock.Anything, testUser).Return(0, false, errors.New("boom"))

	store := mocks.NewMockLedgerStore(t)
	expectSnapshot(store, reader)

	_, err := NewStatsService(StatsServiceConfig{Store: store}).PersonalSummary(context.Background(), testUser)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading personal summary")
}

func TestStatsService_Dashboard(t *testing.T) {
	reader := mocks.NewMockSnapshotReader(t)
	reader.EXPECT().TopVoted(mock.Anything, DefaultTopLimit).Return([]domain.Quote{{ID: 1, VoteCount: 1}}, nil)
	reader.EXPECT().UserTotals(mock.Anything, testUser).Return(1, 1, nil)
	reader.EXPECT().UserRank(mock.Anything, testUser).Return(1, true, nil)
	reader.EXPECT().CategoryCounts(mock.Anything, testUser).Return(nil, nil)

	store := mocks.NewMockLedgerStore(t)
	expectSnapshot(store, reader).Times(2)

	got, err := NewStatsService(StatsServiceConfig{Store: store}).Dashboard(context.Background(), testUser)

	require.NoError(t, err)
	require.Len(t, got.TopVoted, 1)
	assert.Equal(t, 1, got.TopVoted[0].Rank)
	assert.Equal(t, int64(1), *got.Summary.Rank)
}

func TestStatsService_Dashboard_PropagatesError(t *testing.T) {
	reader := mocks.NewMockSnapshotReader(t)
	reader.EXPECT().TopVoted(mock.Anything, DefaultTopLimit).Return(nil, errors.New("boom")).Maybe()
	reader.EXPECT().UserTotals(mock.Anything, testUser).Return(0, 0, nil).Maybe()
	reader.EXPECT().UserRank(mock.Anything, testUser).Return(0, false, nil).Maybe()
	reader.EXPECT().CategoryCounts(mock.Anything, testUser).Return(nil, nil).Maybe()

	store := mocks.NewMockLedgerStore(t)
	expectSnapshot(store, reader)

	_, err := NewStatsService(StatsServiceConfig{Store: store}).Dashboard(context.Background(), testUser)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading dashboard")
}

func TestStatsService_Dashboard_Anonymous(t *testing.T) {
	reader := mocks.NewMockSnapshotReader(t)
	reader.EXPECT().TopVoted(mock.Anything, DefaultTopLimit).Return([]domain.Quote{{ID: 4, VoteCount: 2}}, nil)

	store := mocks.NewMockLedgerStore(t)
	expectSnapshot(store, reader).Once()

	got, err := NewStatsService(StatsServiceConfig{Store: store}).Dashboard(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, got.TopVoted, 1)
	assert.Nil(t, got.Summary)
}

func ptr[T any](v T) *T { return &v }
