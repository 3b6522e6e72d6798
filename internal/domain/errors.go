// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a state conflict such as duplicate entry or version mismatch.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden indicates the operation is not permitted by business rules.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")

	// ErrVoteState indicates a vote operation conflicts with the caller's current vote.
	ErrVoteState = errors.New("vote state conflict")

	// ErrTransactionConflict indicates the store rejected a transaction because of a
	// concurrent writer. The ledger translates or retries it; it only reaches
	// callers when the single retry also loses.
	ErrTransactionConflict = errors.New("transaction conflict")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a write that collides with existing state, such as a
// duplicate quote.
type ConflictError struct {
	Entity string
	Reason string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError reports a field that breaks a quote rule.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ForbiddenError provides context for forbidden errors.
type ForbiddenError struct {
	Operation string
	Reason    string
}

// Error implements the error interface.
func (e *ForbiddenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("operation %q forbidden: %s", e.Operation, e.Reason)
	}

	return fmt.Sprintf("operation %q forbidden", e.Operation)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// NewForbiddenError creates a forbidden error with context.
func NewForbiddenError(operation, reason string) error {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// VoteStateReason identifies which vote rule a request violated.
type VoteStateReason string

// Vote state reasons.
const (
	ReasonAlreadyVoted          VoteStateReason = "already_voted"
	ReasonConflictingActiveVote VoteStateReason = "conflicting_active_vote"
	ReasonNoActiveVote          VoteStateReason = "no_active_vote"
)

// VoteStateError is returned when a cast or retract is inconsistent with the
// user's active vote. CurrentQuoteID is set for ReasonConflictingActiveVote.
type VoteStateError struct {
	Reason         VoteStateReason
	QuoteID        int64
	CurrentQuoteID int64
}

// Error implements the error interface.
func (e *VoteStateError) Error() string {
	switch e.Reason {
	case ReasonAlreadyVoted:
		return fmt.Sprintf("already voted for quote %d", e.QuoteID)
	case ReasonConflictingActiveVote:
		return fmt.Sprintf("cannot vote for quote %d: active vote on quote %d", e.QuoteID, e.CurrentQuoteID)
	case ReasonNoActiveVote:
		return fmt.Sprintf("no active vote on quote %d", e.QuoteID)
	default:
		return fmt.Sprintf("vote state conflict on quote %d: %s", e.QuoteID, e.Reason)
	}
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *VoteStateError) Unwrap() error {
	return ErrVoteState
}

// NewAlreadyVotedError reports that the user already has an active vote on quoteID.
func NewAlreadyVotedError(quoteID int64) error {
	return &VoteStateError{Reason: ReasonAlreadyVoted, QuoteID: quoteID, CurrentQuoteID: quoteID}
}

// NewConflictingActiveVoteError reports that the user's active vote is on another quote.
func NewConflictingActiveVoteError(quoteID, currentQuoteID int64) error {
	return &VoteStateError{Reason: ReasonConflictingActiveVote, QuoteID: quoteID, CurrentQuoteID: currentQuoteID}
}

// NewNoActiveVoteError reports that there is no vote to retract on quoteID.
func NewNoActiveVoteError(quoteID int64) error {
	return &VoteStateError{Reason: ReasonNoActiveVote, QuoteID: quoteID}
}

// TxConflictKind distinguishes constraint violations from transient serialization failures.
type TxConflictKind string

// Transaction conflict kinds.
const (
	TxConflictDuplicate     TxConflictKind = "duplicate"
	TxConflictSerialization TxConflictKind = "serialization"
)

// TransactionConflictError is produced by store adapters when a transaction loses a
// race. Constraint names the violated unique constraint for duplicates, if known.
type TransactionConflictError struct {
	Kind       TxConflictKind
	Constraint string
	Err        error
}

// Error implements the error interface.
func (e *TransactionConflictError) Error() string {
	msg := "transaction conflict (" + string(e.Kind) + ")"
	if e.Constraint != "" {
		msg += " on " + e.Constraint
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *TransactionConflictError) Unwrap() error {
	return ErrTransactionConflict
}

// NewDuplicateError wraps a unique constraint violation.
func NewDuplicateError(constraint string, err error) error {
	return &TransactionConflictError{Kind: TxConflictDuplicate, Constraint: constraint, Err: err}
}

// NewSerializationError wraps a retryable serialization or lock failure.
func NewSerializationError(err error) error {
	return &TransactionConflictError{Kind: TxConflictSerialization, Err: err}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsVoteState checks if an error is a vote state conflict.
func IsVoteState(err error) bool {
	return errors.Is(err, ErrVoteState)
}

// IsTransactionConflict checks if an error is a store transaction conflict.
func IsTransactionConflict(err error) bool {
	return errors.Is(err, ErrTransactionConflict)
}

// IsRetryable reports whether a transaction conflict is a transient serialization failure.
func IsRetryable(err error) bool {
	var txErr *TransactionConflictError
	return errors.As(err, &txErr) && txErr.Kind == TxConflictSerialization
}

// IsDuplicate reports whether a transaction conflict is a unique constraint violation.
func IsDuplicate(err error) bool {
	var txErr *TransactionConflictError
	return errors.As(err, &txErr) && txErr.Kind == TxConflictDuplicate
}
