package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
	"github.com/jsamuelsen/quote-vote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-vote-service/internal/ports"
)

const tracerName = "github.com/jsamuelsen/quote-vote-service/internal/app"

// maxTxAttempts bounds how often a ledger transaction runs when the store
// reports a transient serialization failure.
const maxTxAttempts = 2

// Ledger operation names used for spans, metrics and logs.
const (
	opCast    = "cast"
	opRetract = "retract"
)

// VoteService is the vote ledger engine. It is the only writer of votes and of
// quote vote counters, and keeps both consistent inside one store transaction.
type VoteService struct {
	store   ports.LedgerStore
	metrics ports.LedgerMetrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// VoteServiceConfig contains the vote service dependencies.
type VoteServiceConfig struct {
	Store   ports.LedgerStore
	Metrics ports.LedgerMetrics
	Logger  *slog.Logger
}

// NewVoteService creates the vote ledger engine. Panics if Store is nil.
func NewVoteService(cfg VoteServiceConfig) *VoteService {
	if cfg.Store == nil {
		panic("app: VoteService requires a LedgerStore")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = ports.NopLedgerMetrics{}
	}

	return &VoteService{
		store:   cfg.Store,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
		logger:  logger.With(slog.String("component", "app.VoteService")),
	}
}

// Cast records the user's single active vote on quoteID and increments the
// quote's counter in the same transaction.
//
// Errors:
//   - domain.ErrNotFound if the quote does not exist
//   - domain.ErrVoteState (already_voted, conflicting_active_vote) if the user
//     already holds a vote
//   - domain.ErrTransactionConflict if a retried serialization failure repeats
//   - domain.ErrUnavailable if the store cannot be reached
func (s *VoteService) Cast(ctx context.Context, userID string, quoteID int64) (*domain.CastResult, error) {
	ctx, span := s.startSpan(ctx, opCast, userID, quoteID)
	defer span.End()

	err := s.withRetry(ctx, opCast, func(ctx context.Context) error {
		err := s.store.WithinTx(ctx, func(ctx context.Context, tx ports.LedgerTx) error {
			return castInTx(ctx, tx, userID, quoteID)
		})
		if domain.IsDuplicate(err) {
			return s.resolveLostRace(ctx, userID, quoteID, err)
		}

		return err
	})

	s.finish(ctx, span, opCast, err)

	if err != nil {
		return nil, fmt.Errorf("casting vote: %w", err)
	}

	return &domain.CastResult{QuoteID: quoteID, VoteValue: domain.UpvoteValue}, nil
}

func castInTx(ctx context.Context, tx ports.LedgerTx, userID string, quoteID int64) error {
	exists, err := tx.QuoteExists(ctx, quoteID)
	if err != nil {
		return err
	}

	if !exists {
		return domain.NewQuoteNotFoundError(quoteID)
	}

	current, err := tx.VoteByUser(ctx, userID)
	if err != nil {
		return err
	}

	if current != nil {
		return voteStateFor(quoteID, current.QuoteID)
	}

	if _, err := tx.InsertVote(ctx, userID, quoteID); err != nil {
		return err
	}

	_, err = tx.AdjustCounter(ctx, quoteID, 1)

	return err
}

// resolveLostRace turns a unique violation from a concurrent cast into the
// vote state error the caller would have seen had it arrived second. If the
// winning vote is already gone again the conflict is treated as transient.
func (s *VoteService) resolveLostRace(ctx context.Context, userID string, quoteID int64, cause error) error {
	var current *domain.CurrentVote

	err := s.store.ReadSnapshot(ctx, func(ctx context.Context, r ports.SnapshotReader) error {
		var err error

		current, err = r.CurrentVote(ctx, userID)

		return err
	})
	if err != nil {
		return err
	}

	if current == nil {
		return domain.NewSerializationError(cause)
	}

	logging.FromContext(ctx).DebugContext(ctx, "concurrent cast lost unique race",
		slog.Int64("current_quote_id", current.QuoteID),
	)

	return voteStateFor(quoteID, current.QuoteID)
}

func voteStateFor(quoteID, currentQuoteID int64) error {
	if currentQuoteID == quoteID {
		return domain.NewAlreadyVotedError(quoteID)
	}

	return domain.NewConflictingActiveVoteError(quoteID, currentQuoteID)
}

// Retract removes the user's vote on quoteID and decrements the quote's counter,
// never below zero, in the same transaction.
//
// Errors:
//   - domain.ErrNotFound if the quote does not exist
//   - domain.ErrVoteState (no_active_vote) if the user holds no vote on quoteID
//   - domain.ErrTransactionConflict if a retried serialization failure repeats
//   - domain.ErrUnavailable if the store cannot be reached
func (s *VoteService) Retract(ctx context.Context, userID string, quoteID int64) (*domain.RetractResult, error) {
	ctx, span := s.startSpan(ctx, opRetract, userID, quoteID)
	defer span.End()

	err := s.withRetry(ctx, opRetract, func(ctx context.Context) error {
		return s.store.WithinTx(ctx, func(ctx context.Context, tx ports.LedgerTx) error {
			return retractInTx(ctx, tx, userID, quoteID)
		})
	})

	s.finish(ctx, span, opRetract, err)

	if err != nil {
		return nil, fmt.Errorf("retracting vote: %w", err)
	}

	return &domain.RetractResult{QuoteID: quoteID, Removed: true}, nil
}

func retractInTx(ctx context.Context, tx ports.LedgerTx, userID string, quoteID int64) error {
	exists, err := tx.QuoteExists(ctx, quoteID)
	if err != nil {
		return err
	}

	if !exists {
		return domain.NewQuoteNotFoundError(quoteID)
	}

	vote, err := tx.VoteFor(ctx, userID, quoteID)
	if err != nil {
		return err
	}

	if vote == nil {
		return domain.NewNoActiveVoteError(quoteID)
	}

	err = tx.DeleteVote(ctx, vote.ID)
	if domain.IsNotFound(err) {
		return domain.NewNoActiveVoteError(quoteID)
	}

	if err != nil {
		return err
	}

	_, err = tx.AdjustCounter(ctx, quoteID, -1)

	return err
}

// CheckEligibility reports whether the user may cast a vote on quoteID right now.
// Both facts are read from the same snapshot.
func (s *VoteService) CheckEligibility(ctx context.Context, userID string, quoteID int64) (*domain.Eligibility, error) {
	var result domain.Eligibility

	err := s.store.ReadSnapshot(ctx, func(ctx context.Context, r ports.SnapshotReader) error {
		count, err := r.QuoteCounter(ctx, quoteID)
		if domain.IsNotFound(err) {
			return domain.NewQuoteNotFoundError(quoteID)
		}

		if err != nil {
			return err
		}

		existing, err := r.VoteFor(ctx, userID, quoteID)
		if err != nil {
			return err
		}

		result = domain.EvaluateEligibility(count, existing)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("checking eligibility: %w", err)
	}

	return &result, nil
}

// CurrentVote returns the user's active vote with its quote, or nil if none.
func (s *VoteService) CurrentVote(ctx context.Context, userID string) (*domain.CurrentVote, error) {
	var current *domain.CurrentVote

	err := s.store.ReadSnapshot(ctx, func(ctx context.Context, r ports.SnapshotReader) error {
		var err error

		current, err = r.CurrentVote(ctx, userID)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reading current vote: %w", err)
	}

	return current, nil
}

// withRetry runs fn and runs it once more if it failed with a transient
// serialization conflict. Duplicate violations are never retried.
func (s *VoteService) withRetry(ctx context.Context, op string, fn func(context.Context) error) error {
	var err error

	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil || !domain.IsRetryable(err) || attempt == maxTxAttempts {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return err
		}

		s.metrics.ObserveRetry(op)
		logging.FromContext(ctx).WarnContext(ctx, "retrying ledger transaction",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
	}

	return err
}

// startSpan opens the operation span and tags the context logger with the
// operation and quote.
func (s *VoteService) startSpan(ctx context.Context, op, userID string, quoteID int64) (context.Context, trace.Span) {
	ctx = logging.WithLedgerOp(ctx, op, quoteID)

	return s.tracer.Start(ctx, "ledger."+op, trace.WithAttributes(
		attribute.Int64("quote.id", quoteID),
		attribute.String("user.id", userID),
	))
}

func (s *VoteService) finish(ctx context.Context, span trace.Span, op string, err error) {
	outcome := outcomeOf(err)
	s.metrics.ObserveOperation(op, outcome)
	span.SetAttributes(attribute.String("ledger.outcome", outcome))

	logger := logging.FromContext(ctx).With(slog.String("outcome", outcome))

	switch {
	case err == nil:
		logger.InfoContext(ctx, "ledger operation committed")
	case domain.IsVoteState(err), domain.IsNotFound(err):
		logger.DebugContext(ctx, "ledger operation rejected", slog.Any("error", err))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.ErrorContext(ctx, "ledger operation failed", slog.Any("error", err))
	}
}

func outcomeOf(err error) string {
	var stateErr *domain.VoteStateError

	switch {
	case err == nil:
		return ports.OutcomeOK
	case errors.As(err, &stateErr):
		return string(stateErr.Reason)
	case domain.IsNotFound(err):
		return ports.OutcomeNotFound
	case domain.IsTransactionConflict(err):
		return ports.OutcomeConflict
	case domain.IsUnavailable(err):
		return ports.OutcomeUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ports.OutcomeCanceled
	default:
		return ports.OutcomeError
	}
}
