// Package logbook defines the append-only exercise log entries and the
// history summary that experience is derived from.
package logbook

import (
	"fmt"
	"time"

	"github.com/lawnchairsociety/sloth/internal/clock"
)

// DateLayout is the on-disk date format, e.g. "January 05, 2024".
const DateLayout = "January 02, 2006"

// DeteriorateType marks a synthetic entry that removes XP.
const DeteriorateType = "DETERIORATE"

// Entry is one immutable log record: a workout or a deterioration event.
type Entry struct {
	Date         time.Time
	ExerciseType string
	Total        int // XP awarded, or XP removed for a deterioration entry
	Distance     float64
	Average      float64
	Points       int
}

// IsDecay returns true for deterioration entries.
func (e Entry) IsDecay() bool {
	return e.ExerciseType == DeteriorateType
}

// NewDecayEntry builds a deterioration entry removing lost XP on the given day.
func NewDecayEntry(day time.Time, lost int) Entry {
	return Entry{
		Date:         clock.Date(day),
		ExerciseType: DeteriorateType,
		Total:        lost,
	}
}

// FormatDate renders a date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateLayout date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid log date %q: %w", s, err)
	}
	return t, nil
}

// History is the whole log split into earned and lost totals.
type History struct {
	Earned []int
	Lost   []int
}

// Add records an entry's total on the matching side.
func (h *History) Add(e Entry) {
	if e.IsDecay() {
		h.Lost = append(h.Lost, e.Total)
	} else {
		h.Earned = append(h.Earned, e.Total)
	}
}

// Len returns the number of entries summarized.
func (h *History) Len() int {
	return len(h.Earned) + len(h.Lost)
}

// Summarize builds a History from entries. Returns nil for an empty log.
func Summarize(entries []Entry) *History {
	if len(entries) == 0 {
		return nil
	}
	h := &History{}
	for _, e := range entries {
		h.Add(e)
	}
	return h
}
