package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
	"github.com/jsamuelsen/quote-vote-service/internal/mocks"
	"github.com/jsamuelsen/quote-vote-service/internal/ports"
)

const testUser = "user-a"

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ledgerWith returns a store whose transactions run against tx.
func ledgerWith(t *testing.T, tx ports.LedgerTx) *mocks.MockLedgerStore {
	t.Helper()

	store := mocks.NewMockLedgerStore(t)
	store.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, ports.LedgerTx) error) error {
			return fn(ctx, tx)
		})

	return store
}

// expectSnapshot routes the next ReadSnapshot call to r.
func expectSnapshot(store *mocks.MockLedgerStore, r ports.SnapshotReader) *mocks.MockLedgerStore_ReadSnapshot_Call {
	return store.EXPECT().ReadSnapshot(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, ports.SnapshotReader) error) error {
			return fn(ctx, r)
		})
}

func newVoteService(store ports.LedgerStore, metrics ports.LedgerMetrics) *VoteService {
	return NewVoteService(VoteServiceConfig{Store: store, Metrics: metrics, Logger: discardLogger()})
}

func voteState(t *testing.T, err error) *domain.VoteStateError {
	t.Helper()

	var stateErr *domain.VoteStateError
	require.ErrorAs(t, err, &stateErr)

	return stateErr
}

func TestNewVoteService_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() {
		NewVoteService(VoteServiceConfig{})
	})
}

func TestNewVoteService_Defaults(t *testing.T) {
	svc := NewVoteService(VoteServiceConfig{Store: mocks.NewMockLedgerStore(t)})

	require.NotNil(t, svc)
	assert.NotNil(t, svc.logger)
	assert.IsType(t, ports.NopLedgerMetrics{}, svc.metrics)
}

func TestVoteService_Cast(t *testing.T) {
	const quoteID = int64(7)

	tests := []struct {
		name      string
		setupTx   func(*mocks.MockLedgerTx)
		outcome   string
		wantErr   func(*testing.T, error)
		wantValue int
	}{
		{
			name: "records vote and increments counter",
			setupTx: func(tx *mocks.MockLedgerTx) {
				tx.EXPECT().QuoteExists(mock.Anything, quoteID).Return(true, nil)
				tx.EXPECT().VoteByUser(mock.Anything, testUser).Return(nil, nil)
				tx.EXPECT().InsertVote(mock.Anything, testUser, quoteID).
					Return(&domain.Vote{ID: 1, UserID: testUser, QuoteID: quoteID, Value: 1}, nil)
				tx.EXPECT().AdjustCounter(mock.Anything, quoteID, int64(1)).Return(1, nil)
			},
			outcome:   ports.OutcomeOK,
			wantValue: domain.UpvoteValue,
		},
		{
			name: "missing quote",
			setupTx: func(tx *mocks.MockLedgerTx) {
				tx.EXPECT().QuoteExists(mock.Anything, quoteID).Return(false, nil)
			},
			outcome: ports.OutcomeNotFound,
			wantErr: func(t *testing.T, err error) {
				assert.True(t, domain.IsNotFound(err))
			},
		},
		{
			name: "already voted for the same quote",
			setupTx: func(tx *mocks.MockLedgerTx) {
				tx.EXPECT().QuoteExists(mock.Anything, quoteID).Return(true, nil)
				tx.EXPECT().VoteByUser(mock.Anything, testUser).
					Return(&domain.Vote{ID: 1, UserID: testUser, QuoteID: quoteID, Value: 1}, nil)
			},
			outcome: string(domain.ReasonAlreadyVoted),
			wantErr: func(t *testing.T, err error) {
				stateErr := voteState(t, err)
				assert.Equal(t, domain.ReasonAlreadyVoted, stateErr.Reason)
				assert.Equal(t, quoteID, stateErr.CurrentQuoteID)
			},
		},
		{
			name: "active vote on another quote",
			setupTx: func(tx *mocks.MockLedgerTx) {
				tx.EXPECT().QuoteExists(mock.Anything, quoteID).Return(true, nil)
				tx.EXPECT().VoteByUser(mock.Anything, testUser).
					Return(&domain.Vote{ID: 1, UserID: testUser, QuoteID: 3, Value: 1}, nil)
			},
			outcome: string(domain.ReasonConflictingActiveVote),
			wantErr: func(t *testing.T, err error) {
				stateErr := voteState(t, err)
				assert.Equal(t, domain.ReasonConflictingActiveVote, stateErr.Reason)
				assert.Equal(t, int64(3), stateErr.CurrentQuoteID)
			},
		},
		{
			name: "quote deleted between check and insert",
			setupTx: func(tx *mocks.MockLedgerTx) {
				tx.EXPECT().QuoteExists(mock.Anything, quoteID).Return(true, nil)
				tx.EXPECT().VoteByUser(mock.Anything, testUser).Return(nil, nil)
				tx.EXPECT().InsertVote(mock.Anything, testUser, quoteID).
					Return(nil, domain.NewQuoteNotFoundError(quoteID)).Once()
			},
			outcome: ports.OutcomeNotFound,
			wantErr: func(t *testing.T, err error) {
				assert.True(t, domain.IsNotFound(err))
				assert.False(t, domain.IsVoteState(err))
			},
		},
		{
			name: "store unavailable is not retried",
			setupTx: func(tx *mocks.MockLedgerTx) {
				tx.EXPECT().QuoteExists(mock.Anything, quoteID).
					Return(false, domain.NewUnavailableError("database", "connection refused")).Once()
			},
			outcome: ports.OutcomeUnavailable,
			wantErr: func(t *testing.T, err error) {
				assert.True(t, domain.IsUnavailable(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := mocks.NewMockLedgerTx(t)
			tt.setupTx(tx)

			metrics := mocks.NewMockLedgerMetrics(t)
			metrics.EXPECT().ObserveOperation(opCast, tt.outcome).Return()

			svc := newVoteService(ledgerWith(t, tx), metrics)

			result, err := svc.Cast(context.Background(), testUser, quoteID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, result)
				tt.wantErr(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, quoteID, result.QuoteID)
			assert.Equal(t, tt.wantValue, result.VoteValue)
		})
	}
}

func TestVoteService_Cast_LostRaceReportsWinner(t *testing.T) {
	tx := mocks.NewMockLedgerTx(t)
	tx.EXPECT().QuoteExists(mock.Anything, int64(7)).Return(true, nil)
	tx.EXPECT().VoteByUser(mock.Anything, testUser).Return(nil, nil)
	tx.EXPECT().InsertVote(mock.Anything, testUser, int64(7)).
		Return(nil, domain.NewDuplicateError("votes_user_id_key", errors.New("unique violation")))

	store := ledgerWith(t, tx)

	reader := mocks.NewMockSnapshotReader(t)
	reader.EXPECT().CurrentVote(mock.Anything, testUser).
		Return(&domain.CurrentVote{VoteID: 9, QuoteID: 4, VoteValue: 1}, nil)
	expectSnapshot(store, reader)

	svc := newVoteService(store, nil)

	_, err := svc.Cast(context.Background(), testUser, 7)

	stateErr := voteState(t, err)
	assert.Equal(t, domain.ReasonConflictingActiveVote, stateErr.Reason)
	assert.Equal(t, int64(4), stateErr.CurrentQuoteID)
	assert.False(t, domain.IsTransactionConflict(err))
	store.AssertNumberOfCalls(t, "WithinTx", 1)
}

func TestVoteService_Cast_RetriesSerializationOnce(t *testing.T) {
	tx := mocks.NewMockLedgerTx(t)
	tx.EXPECT().QuoteExists(mock.Anything, int64(7)).Return(true, nil)
	tx.EXPECT().VoteByUser(mock.Anything, testUser).Return(nil, nil)
	tx.EXPECT().InsertVote(mock.Anything, testUser, int64(7)).Return(&domain.Vote{ID: 1}, nil)
	tx.EXPECT().AdjustCounter(mock.Anything, int64(7), int64(1)).Return(1, nil)

	store := mocks.NewMockLedgerStore(t)
	store.EXPECT().WithinTx(mock.Anything, mock.Anything).
		Return(domain.NewSerializationError(errors.New("database is locked"))).Once()
	store.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, ports.LedgerTx) error) error {
			return fn(ctx, tx)
		}).Once()

	metrics := mocks.NewMockLedgerMetrics(t)
	metrics.EXPECT().ObserveRetry(opCast).Return().Once()
	metrics.EXPECT().ObserveOperation(opCast, ports.OutcomeOK).Return().Once()

	svc := newVoteService(store, metrics)

	result, err := svc.Cast(context.Background(), testUser, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.QuoteID)
}

func TestVoteService_Cast_SurfacesRepeatedSerializationFailure(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	store.EXPECT().WithinTx(mock.Anything, mock.Anything).
		Return(domain.NewSerializationError(errors.New("could not serialize access"))).Times(maxTxAttempts)

	metrics := mocks.NewMockLedgerMetrics(t)
	metrics.EXPECT().ObserveRetry(opCast).Return().Once()
	metrics.EXPECT().ObserveOperation(opCast, ports.OutcomeConflict).Return().Once()

	svc := newVoteService(store, metrics)

	_, err := svc.Cast(context.Background(), testUser, 7)

	require.Error(t, err)
	assert.True(t, domain.IsTransactionConflict(err))
	assert.True(t, domain.IsRetryable(err))
}

func TestVoteService_Cast_WinnerGoneIsRetried(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	store.EXPECT().WithinTx(mock.Anything, mock.Anything).
		Return(domain.NewDuplicateError("votes_user_id_key", errors.New("unique violation"))).Once()

	tx := mocks.NewMockLedgerTx(t)
	tx.EXPECT().QuoteExists(mock.Anything, int64(7)).Return(true, nil)
	tx.EXPECT().VoteByUser(mock.Anything, testUser).Return(nil, nil)
	tx.EXPECT().InsertVote(mock.Anything, testUser, int64(7)).Return(&domain.Vote{ID: 2}, nil)
	tx.EXPECT().AdjustCounter(mock.Anything, int64(7), int64(1)).Return(1, nil)
	store.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, ports.LedgerTx) error) error {
			return fn(ctx, tx)
		}).Once()

	reader := mocks.NewMockSnapshotReader(t)
	reader.EXPECT().CurrentVote(mock.Anything, testUser).Return(nil, nil).Once()
	expectSnapshot(store, reader).Once()

	svc := newVoteService(store, nil)

	_, err := svc.Cast(context.Background(), testUser, 7)

	require.NoError(t, err)
}

func TestVoteService_Cast_CancelledContextStopsRetry(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	store.EXPECT().WithinTx(mock.Anything, mock.Anything).
		Return(domain.NewSerializationError(errors.New("database is locked"))).Once()

	svc := newVoteService(store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Cast(ctx, testUser, 7)

	require.Error(t, err)
	assert.True(t, domain.IsRetryable(err))
}

func TestVoteService_Retract(t *testing.T) {
	const quoteID = int64(5)

	tests := []struct {
		name    string
		setupTx func(*mocks.MockLedgerTx)
		wantErr func(*testing.T, error)
	}{
		{
			name: "removes vote and decrements counter",
			setupTx: func(tx *mocks.MockLedgerTx) {
				tx.EXPECT().QuoteExists(mock.Anything, quoteID).Return(true, nil)
				tx.EXPECT().VoteFor(mock.Anything, testUser, quoteID).
					Return(&domain.Vote{ID: 11, UserID: testUser, QuoteID: quoteID, Value: 1}, nil)
				tx.EXPECT().DeleteVote(mock.Anything, int64(11)).Return(nil)
				tx.EXPECT().AdjustCounter(mock.Anything, quoteID, int64(-1)).Return(0, nil)
			},
		},
		{
			name: "missing quote",
			setupTx: func(tx *mocks.MockLedgerTx) {
				tx.EXPECT().QuoteExists(mock.Anything, quoteID).Return(false, nil)
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, domain.IsNotFound(err))
			},
		},
		{
			name: "no vote on this quote",
			setupTx: func(tx *mocks.MockLedgerTx) {
				tx.EXPECT().QuoteExists(mock.Anything, quoteID).Return(true, nil)
				tx.EXPECT().VoteFor(mock.Anything, testUser, quoteID).Return(nil, nil)
			},
			wantErr: func(t *testing.T, err error) {
				assert.Equal(t, domain.ReasonNoActiveVote, voteState(t, err).Reason)
			},
		},
		{
			name: "vote deleted concurrently",
			setupTx: func(tx *mocks.MockLedgerTx) {
				tx.EXPECT().QuoteExists(mock.Anything, quoteID).Return(true, nil)
				tx.EXPECT().VoteFor(mock.Anything, testUser, quoteID).Return(&domain.Vote{ID: 11}, nil)
				tx.EXPECT().DeleteVote(mock.Anything, int64(11)).Return(domain.NewNotFoundError("vote", ""))
			},
			wantErr: func(t *testing.T, err error) {
				assert.Equal(t, domain.ReasonNoActiveVote, voteState(t, err).Reason)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := mocks.NewMockLedgerTx(t)
			tt.setupTx(tx)

			svc := newVoteService(ledgerWith(t, tx), nil)

			result, err := svc.Retract(context.Background(), testUser, quoteID)

			if tt.wantErr != nil {
				require.Error(t, err)
				tt.wantErr(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, &domain.RetractResult{QuoteID: quoteID, Removed: true}, result)
		})
	}
}

func TestVoteService_CheckEligibility(t *testing.T) {
	one := 1

	tests := []struct {
		name    string
		setup   func(*mocks.MockSnapshotReader)
		want    *domain.Eligibility
		wantErr bool
	}{
		{
			name: "fresh quote and no vote",
			setup: func(r *mocks.MockSnapshotReader) {
				r.EXPECT().QuoteCounter(mock.Anything, int64(2)).Return(0, nil)
				r.EXPECT().VoteFor(mock.Anything, testUser, int64(2)).Return(nil, nil)
			},
			want: &domain.Eligibility{CanVote: true, QuoteHasZeroVotes: true, UserHasNoVote: true},
		},
		{
			name: "quote already has votes",
			setup: func(r *mocks.MockSnapshotReader) {
				r.EXPECT().QuoteCounter(mock.Anything, int64(2)).Return(3, nil)
				r.EXPECT().VoteFor(mock.Anything, testUser, int64(2)).Return(nil, nil)
			},
			want: &domain.Eligibility{UserHasNoVote: true},
		},
		{
			name: "caller voted on this quote",
			setup: func(r *mocks.MockSnapshotReader) {
				r.EXPECT().QuoteCounter(mock.Anything, int64(2)).Return(1, nil)
				r.EXPECT().VoteFor(mock.Anything, testUser, int64(2)).
					Return(&domain.Vote{ID: 4, QuoteID: 2, Value: 1}, nil)
			},
			want: &domain.Eligibility{ExistingVoteValue: &one},
		},
		{
			name: "missing quote",
			setup: func(r *mocks.MockSnapshotReader) {
				r.EXPECT().QuoteCounter(mock.Anything, int64(2)).Return(0, domain.NewNotFoundError("quote", "2"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := mocks.NewMockSnapshotReader(t)
			tt.setup(reader)

			store := mocks.NewMockLedgerStore(t)
			expectSnapshot(store, reader)

			got, err := newVoteService(store, nil).CheckEligibility(context.Background(), testUser, 2)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsNotFound(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVoteService_CurrentVote(t *testing.T) {
	reader := mocks.NewMockSnapshotReader(t)
	reader.EXPECT().CurrentVote(mock.Anything, testUser).
		Return(&domain.CurrentVote{VoteID: 3, QuoteID: 8, VoteValue: 1, QuoteAuthor: "Seneca"}, nil)

	store := mocks.NewMockLedgerStore(t)
	expectSnapshot(store, reader)

	got, err := newVoteService(store, nil).CurrentVote(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, int64(8), got.QuoteID)
	assert.Equal(t, "Seneca", got.QuoteAuthor)
}

func TestVoteService_CurrentVote_None(t *testing.T) {
	reader := mocks.NewMockSnapshotReader(t)
	reader.EXPECT().CurrentVote(mock.Anything, testUser).Return(nil, nil)

	store := mocks.NewMockLedgerStore(t)
	expectSnapshot(store, reader)

	got, err := newVoteService(store, nil).CurrentVote(context.Background(), testUser)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ports.OutcomeOK},
		{domain.NewNoActiveVoteError(1), string(domain.ReasonNoActiveVote)},
		{domain.NewQuoteNotFoundError(1), ports.OutcomeNotFound},
		{domain.NewSerializationError(nil), ports.OutcomeConflict},
		{domain.NewUnavailableError("database", ""), ports.OutcomeUnavailable},
		{context.DeadlineExceeded, ports.OutcomeCanceled},
		{errors.New("boom"), ports.OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, outcomeOf(tt.err))
		})
	}
}
