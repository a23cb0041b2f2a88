// Package usage reports quota consumption derived from the ledger.
package usage

import (
	"context"

	domusage "github.com/courtside-cloud/hooprelay/internal/domain/usage"
)

// Service handles usage reporting.
type Service struct {
	ledger LedgerReader
}

// New creates a Service.
func New(ledger LedgerReader) *Service {
	return &Service{ledger: ledger}
}

// Snapshot returns the current usage view. Reading never mutates counters.
func (s *Service) Snapshot(_ context.Context) domusage.Snapshot {
	return s.ledger.Snapshot()
}
