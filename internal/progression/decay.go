package progression

import (
	"math"
	"time"

	"github.com/lawnchairsociety/sloth/internal/clock"
	"github.com/lawnchairsociety/sloth/internal/logbook"
)

// Deterioration constants
const (
	DecayRate   = 0.2
	RetainRate  = 0.8
	DecayFloor  = 199.20000000000002 // decay is skipped unless xp*RetainRate exceeds this
	DecayPeriod = clock.DaysPerWeek
)

// DecayPlan is the full batch of deterioration to apply for one session.
type DecayPlan struct {
	Periods    int
	PreviousXP int
	FinalXP    int
	Entries    []logbook.Entry
}

// Lost returns the total XP removed by the plan.
func (p *DecayPlan) Lost() int {
	return p.PreviousXP - p.FinalXP
}

// PlanDecay computes deterioration for the weeks elapsed since the last entry.
// Returns nil when nothing should be applied: an empty log, fewer than seven
// days elapsed, or xp too low to decay.
func PlanDecay(xp int, last *logbook.Entry, today time.Time) *DecayPlan {
	if last == nil {
		return nil
	}

	periods := clock.WeeksBetween(last.Date, today)
	if periods < 1 || !(float64(xp)*RetainRate > DecayFloor) {
		return nil
	}

	plan := &DecayPlan{
		Periods:    periods,
		PreviousXP: xp,
		Entries:    make([]logbook.Entry, 0, periods),
	}
	for i := 0; i < periods; i++ {
		lost := roundHalfEven(float64(xp) * DecayRate)
		xp = roundHalfEven(float64(xp) * RetainRate)
		plan.Entries = append(plan.Entries, logbook.NewDecayEntry(today, lost))
	}
	plan.FinalXP = xp
	return plan
}

func roundHalfEven(f float64) int {
	return int(math.RoundToEven(f))
}
