package usage

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	ts := time.Date(2026, time.January, 7, 23, 59, 59, 0, time.UTC)
	if got := DayKey(ts); got != "2026-01-07" {
		t.Errorf("DayKey = %q, want %q", got, "2026-01-07")
	}
}

func TestMonthKey(t *testing.T) {
	ts := time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC)
	if got := MonthKey(ts); got != "2026-01" {
		t.Errorf("MonthKey = %q, want %q", got, "2026-01")
	}
}

func TestDayKey_RollsOverAtMidnight(t *testing.T) {
	before := time.Date(2026, time.March, 31, 23, 59, 59, 0, time.Local)
	after := before.Add(time.Second)

	if DayKey(before) == DayKey(after) {
		t.Errorf("expected distinct day keys across midnight, got %q", DayKey(before))
	}
	if MonthKey(before) == MonthKey(after) {
		t.Errorf("expected distinct month keys across month boundary, got %q", MonthKey(before))
	}
}

func TestNewSnapshot(t *testing.T) {
	tests := []struct {
		name          string
		today, month  int
		limit         int
		wantRemaining int
	}{
		{"fresh", 0, 0, 100, 100},
		{"partial", 3, 3, 100, 97},
		{"exhausted", 100, 250, 100, 0},
		{"over limit floors at zero", 140, 300, 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnapshot(tc.today, tc.month, tc.limit)
			if s.Today != tc.today {
				t.Errorf("Today = %d, want %d", s.Today, tc.today)
			}
			if s.TodayRemaining != tc.wantRemaining {
				t.Errorf("TodayRemaining = %d, want %d", s.TodayRemaining, tc.wantRemaining)
			}
			if s.Month != tc.month {
				t.Errorf("Month = %d, want %d", s.Month, tc.month)
			}
			if s.DailyLimit != tc.limit {
				t.Errorf("DailyLimit = %d, want %d", s.DailyLimit, tc.limit)
			}
		})
	}
}

func TestSnapshot_JSONShape(t *testing.T) {
	b, err := json.Marshal(NewSnapshot(3, 3, 100))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"today":3,"todayRemaining":97,"month":3,"dailyLimit":100}`
	if string(b) != want {
		t.Errorf("unexpected JSON:\ngot:  %s\nwant: %s", b, want)
	}
}
