package usage

import domusage "github.com/courtside-cloud/hooprelay/internal/domain/usage"

// LedgerReader provides read-only access to the usage counters.
type LedgerReader interface {
	Snapshot() domusage.Snapshot
}
