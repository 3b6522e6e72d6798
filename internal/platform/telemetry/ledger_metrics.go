package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// LedgerMetrics exposes vote ledger counters on the Prometheus endpoint.
type LedgerMetrics struct {
	operations *prometheus.CounterVec
	retries    *prometheus.CounterVec
}

// NewLedgerMetrics creates and registers the ledger counters.
// Pass prometheus.DefaultRegisterer to publish them on /-/metrics.
func NewLedgerMetrics(reg prometheus.Registerer) (*LedgerMetrics, error) {
	m := &LedgerMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quote_vote",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Vote ledger operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quote_vote",
			Subsystem: "ledger",
			Name:      "tx_retries_total",
			Help:      "Ledger transactions retried after a transient serialization failure.",
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.retries} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveOperation implements ports.LedgerMetrics.
func (m *LedgerMetrics) ObserveOperation(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// ObserveRetry implements ports.LedgerMetrics.
func (m *LedgerMetrics) ObserveRetry(operation string) {
	m.retries.WithLabelValues(operation).Inc()
}
