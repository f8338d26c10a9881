// Package clock supplies the calendar day used for logging and deterioration.
package clock

import (
	"sync"
	"time"
)

// DaysPerWeek is the length of one deterioration period.
const DaysPerWeek = 7

// Clock reports the current calendar day.
type Clock interface {
	Today() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Today returns the local calendar day at midnight UTC.
func (SystemClock) Today() time.Time {
	return Date(time.Now())
}

// FixedClock always reports the same day until advanced.
type FixedClock struct {
	day time.Time
	mu  sync.RWMutex
}

func NewFixedClock(day time.Time) *FixedClock {
	return &FixedClock{day: Date(day)}
}

// Today returns the fixed day.
func (c *FixedClock) Today() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.day
}

// AdvanceDays moves the clock forward by n calendar days.
func (c *FixedClock) AdvanceDays(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.day = c.day.AddDate(0, 0, n)
}

// Date strips the time of day, keeping the calendar date as seen in t's location.
// The result is in UTC so that day arithmetic never crosses a DST change.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from `from` to `to`.
func DaysBetween(from, to time.Time) int {
	return int(Date(to).Sub(Date(from)).Hours() / 24)
}

// WeeksBetween returns the number of complete 7-day periods from `from` to `to`.
// Negative spans count as zero.
func WeeksBetween(from, to time.Time) int {
	days := DaysBetween(from, to)
	if days < 0 {
		return 0
	}
	return days / DaysPerWeek
}
