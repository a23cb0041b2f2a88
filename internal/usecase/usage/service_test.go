package usage

import (
	"context"
	"testing"

	domusage "github.com/courtside-cloud/hooprelay/internal/domain/usage"
)

type mockLedger struct {
	snapshot domusage.Snapshot
	reads    int
}

func (m *mockLedger) Snapshot() domusage.Snapshot {
	m.reads++
	return m.snapshot
}

func TestSnapshot_DelegatesToLedger(t *testing.T) {
	ml := &mockLedger{snapshot: domusage.NewSnapshot(3, 3, 100)}
	svc := New(ml)

	s := svc.Snapshot(context.Background())

	if ml.reads != 1 {
		t.Errorf("expected one ledger read, got %d", ml.reads)
	}
	if s.Today != 3 || s.TodayRemaining != 97 || s.Month != 3 || s.DailyLimit != 100 {
		t.Errorf("unexpected snapshot: %+v", s)
	}
}

func TestSnapshot_RepeatedReadsIdentical(t *testing.T) {
	ml := &mockLedger{snapshot: domusage.NewSnapshot(7, 12, 100)}
	svc := New(ml)

	first := svc.Snapshot(context.Background())
	second := svc.Snapshot(context.Background())

	if first != second {
		t.Errorf("repeated snapshots differ: %+v vs %+v", first, second)
	}
}
