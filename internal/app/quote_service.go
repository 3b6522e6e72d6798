// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// What does NOT belong here:
//   - HTTP/gRPC specifics (that's adapters)
//   - Database queries (that's the store adapter)
//   - Core domain rules (that's the domain layer)
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quote-vote-service/internal/domain"
	"github.com/jsamuelsen/quote-vote-service/internal/ports"
)

// QuoteService orchestrates quote authoring. It never changes vote counts;
// those belong to the VoteService.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service. Panics if Repository is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: QuoteService requires a QuoteRepository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger.With(slog.String("component", "app.QuoteService")),
	}
}

// Create stores a new quote owned by userID.
// Returns domain.ErrConflict if the user already submitted the same content.
func (s *QuoteService) Create(ctx context.Context, userID string, in domain.QuoteInput) (*domain.Quote, error) {
	in = in.Normalize()

	if err := domain.ValidateText(in.Content, in.Author); err != nil {
		return nil, err
	}

	if err := s.ensureUniqueContent(ctx, userID, in.Content, 0); err != nil {
		return nil, err
	}

	q, err := s.repo.CreateQuote(ctx, userID, in)
	if err != nil {
		return nil, fmt.Errorf("creating quote: %w", err)
	}

	s.logger.InfoContext(ctx, "quote created", slog.Int64("quote_id", q.ID))

	return q, nil
}

// Get returns a quote by id.
func (s *QuoteService) Get(ctx context.Context, id int64) (*domain.Quote, error) {
	q, err := s.repo.GetQuote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	return q, nil
}

// List returns one page of quotes matching the query.
func (s *QuoteService) List(ctx context.Context, query domain.QuoteQuery) (*domain.QuotePage, error) {
	page, err := s.repo.ListQuotes(ctx, query.Normalize())
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	return page, nil
}

// Update applies patch to a quote the user owns and nobody has voted on yet.
func (s *QuoteService) Update(ctx context.Context, userID string, id int64, patch domain.QuotePatch) (*domain.Quote, error) {
	current, err := s.editable(ctx, "update quote", userID, id)
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(*current)
	if err := domain.ValidateText(updated.Content, updated.Author); err != nil {
		return nil, err
	}

	if updated.Content != current.Content {
		if err := s.ensureUniqueContent(ctx, userID, updated.Content, id); err != nil {
			return nil, err
		}
	}

	ok, err := s.repo.UpdateUnvoted(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("updating quote: %w", err)
	}

	// A vote landed between the read and the guarded write.
	if !ok {
		return nil, domain.NewForbiddenError("update quote", "quote has votes")
	}

	s.logger.InfoContext(ctx, "quote updated", slog.Int64("quote_id", id))

	return s.Get(ctx, id)
}

// Delete removes a quote the user owns and nobody has voted on yet.
func (s *QuoteService) Delete(ctx context.Context, userID string, id int64) error {
	if _, err := s.editable(ctx, "delete quote", userID, id); err != nil {
		return err
	}

	ok, err := s.repo.DeleteUnvoted(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}

	if !ok {
		return domain.NewForbiddenError("delete quote", "quote has votes")
	}

	s.logger.InfoContext(ctx, "quote deleted", slog.Int64("quote_id", id))

	return nil
}

func (s *QuoteService) editable(ctx context.Context, op, userID string, id int64) (*domain.Quote, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !q.IsOwnedBy(userID) {
		return nil, domain.NewForbiddenError(op, "not the quote owner")
	}

	if q.Locked() {
		return nil, domain.NewForbiddenError(op, "quote has votes")
	}

	return q, nil
}

func (s *QuoteService) ensureUniqueContent(ctx context.Context, userID, content string, excludeID int64) error {
	taken, err := s.repo.HasContent(ctx, userID, domain.ContentKey(content), excludeID)
	if err != nil {
		return fmt.Errorf("checking duplicate content: %w", err)
	}

	if taken {
		return domain.NewConflictError("quote", "duplicate content")
	}

	return nil
}
