// Package progression derives experience from the exercise log and applies
// deterioration for missed weeks.
package progression

import "github.com/lawnchairsociety/sloth/internal/logbook"

// Reconcile returns the net XP recorded by the log: earned totals minus
// deterioration totals. ok is false when the log is empty.
func Reconcile(h *logbook.History) (xp int, ok bool) {
	if h == nil || h.Len() == 0 {
		return 0, false
	}
	for _, total := range h.Earned {
		xp += total
	}
	for _, total := range h.Lost {
		xp -= total
	}
	return xp, true
}
