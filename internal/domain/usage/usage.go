// Package usage defines the calendar-bucketed usage model: snapshot shape
// and day/month key derivation.
package usage

import "time"

// DayKey returns the daily counter key for t (date-only, local calendar).
// Stable for 24 hours; the first call after midnight targets a new key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthKey returns the monthly counter key for t (year and month).
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Snapshot is a point-in-time view of quota consumption. It is derived on
// demand from the ledger counters and never cached.
type Snapshot struct {
	Today          int `json:"today"`
	TodayRemaining int `json:"todayRemaining"`
	Month          int `json:"month"`
	DailyLimit     int `json:"dailyLimit"`
}

// NewSnapshot builds a Snapshot, flooring the remaining quota at zero.
func NewSnapshot(today, month, dailyLimit int) Snapshot {
	remaining := dailyLimit - today
	if remaining < 0 {
		remaining = 0
	}
	return Snapshot{
		Today:          today,
		TodayRemaining: remaining,
		Month:          month,
		DailyLimit:     dailyLimit,
	}
}
