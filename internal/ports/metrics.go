package ports

// Ledger operation outcomes reported to LedgerMetrics.
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeConflict    = "tx_conflict"
	OutcomeUnavailable = "unavailable"
	OutcomeCanceled    = "canceled"
	OutcomeError       = "error"
)

// LedgerMetrics records vote ledger activity. Implementations must be safe for
// concurrent use.
type LedgerMetrics interface {
	// ObserveOperation counts one finished ledger operation. Vote state
	// rejections use the domain reason (already_voted, ...) as the outcome.
	ObserveOperation(operation, outcome string)

	// ObserveRetry counts a transaction retried after a transient conflict.
	ObserveRetry(operation string)
}

// NopLedgerMetrics discards all observations.
type NopLedgerMetrics struct{}

// ObserveOperation implements LedgerMetrics.
func (NopLedgerMetrics) ObserveOperation(string, string) {}

// ObserveRetry implements LedgerMetrics.
func (NopLedgerMetrics) ObserveRetry(string) {}
