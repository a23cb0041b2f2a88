// Package ledger holds the in-memory usage counters the proxy reports
// against its daily quota.
package ledger

import (
	"sync"
	"time"

	"github.com/courtside-cloud/hooprelay/internal/domain/usage"
)

// Ledger counts quota-counted calls in calendar buckets. Counters live for
// the process lifetime only: keys are created lazily on first increment and
// never removed or reset. Day rollover is implicit — the next call after
// midnight targets a new day key.
type Ledger struct {
	mu         sync.Mutex
	daily      map[string]int
	monthly    map[string]int
	dailyLimit int
	now        func() time.Time
}

// New creates an empty Ledger with the given daily quota.
func New(dailyLimit int) *Ledger {
	return &Ledger{
		daily:      make(map[string]int),
		monthly:    make(map[string]int),
		dailyLimit: dailyLimit,
		now:        time.Now,
	}
}

// WithClock replaces the time source. Used in tests to exercise rollover.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Snapshot returns the current usage view without side effects. The day and
// month counts are read under one lock so the pair is never torn.
func (l *Ledger) Snapshot() usage.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Increment atomically bumps the current day and month counters and returns
// the updated snapshot. Concurrent increments are never lost.
func (l *Ledger) Increment() usage.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.daily[usage.DayKey(now)]++
	l.monthly[usage.MonthKey(now)]++
	return l.snapshotLocked()
}

func (l *Ledger) snapshotLocked() usage.Snapshot {
	now := l.now()
	return usage.NewSnapshot(
		l.daily[usage.DayKey(now)],
		l.monthly[usage.MonthKey(now)],
		l.dailyLimit,
	)
}
