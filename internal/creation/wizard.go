// Package creation runs the first-run questionnaire and the stat allocation wizard.
package creation

import (
	"errors"
	"fmt"

	"github.com/lawnchairsociety/sloth/internal/console"
	"github.com/lawnchairsociety/sloth/internal/profile"
	"github.com/lawnchairsociety/sloth/internal/stats"
	"github.com/lawnchairsociety/sloth/internal/text"
)

// ErrBackAtFirstStep is returned when back is requested on the first stat.
var ErrBackAtFirstStep = errors.New("already at the first stat")

// Step is a wizard state: one per stat, then Done.
type Step int

const (
	StepAgility Step = iota
	StepCharisma
	StepDefense
	StepEndurance
	StepIntelligence
	StepStrength
	StepDone
)

var steps = [...]struct {
	stat       stats.Stat
	next, prev Step
}{
	StepAgility:      {stats.Agility, StepCharisma, StepAgility},
	StepCharisma:     {stats.Charisma, StepDefense, StepAgility},
	StepDefense:      {stats.Defense, StepEndurance, StepCharisma},
	StepEndurance:    {stats.Endurance, StepIntelligence, StepDefense},
	StepIntelligence: {stats.Intelligence, StepStrength, StepEndurance},
	StepStrength:     {stats.Strength, StepDone, StepIntelligence},
	StepDone:         {stats.Strength, StepDone, StepStrength},
}

func (s Step) String() string {
	if s == StepDone {
		return "Done"
	}
	return steps[s].stat.String()
}

// Wizard distributes stats.PointBudget points across the six stats in order.
type Wizard struct {
	step  Step
	alloc stats.Allocation
}

func NewWizard() *Wizard {
	return &Wizard{step: StepAgility}
}

// Step returns the current state.
func (w *Wizard) Step() Step {
	return w.step
}

// Done reports whether every stat has been committed.
func (w *Wizard) Done() bool {
	return w.step == StepDone
}

// Current returns the stat being asked for. ok is false once done.
func (w *Wizard) Current() (stat stats.Stat, ok bool) {
	if w.Done() {
		return 0, false
	}
	return steps[w.step].stat, true
}

// RunningTotal is the sum of committed stats, not counting the current one.
func (w *Wizard) RunningTotal() int {
	if stat, ok := w.Current(); ok {
		return w.alloc.TotalExcept(stat)
	}
	return w.alloc.Total()
}

// Bounds returns the accepted range for the current stat.
// The last stat must take every remaining point.
func (w *Wizard) Bounds() (min, max int) {
	max = stats.PointBudget - w.RunningTotal()
	if w.step == StepStrength {
		return max, max
	}
	return 0, max
}

// Commit stores points for the current stat and advances.
func (w *Wizard) Commit(points int) error {
	stat, ok := w.Current()
	if !ok {
		return fmt.Errorf("%w: all stats are already assigned", console.ErrInvalidInput)
	}
	min, max := w.Bounds()
	if points < min || points > max {
		if min == max {
			return fmt.Errorf("%w: %s must take the remaining %d points", console.ErrInvalidInput, stat, max)
		}
		return fmt.Errorf("%w: please enter a number from %d to %d", console.ErrInvalidInput, min, max)
	}
	w.alloc.Set(stat, points)
	w.step = steps[w.step].next
	return nil
}

// Back discards the current stat and returns to the previous one.
func (w *Wizard) Back() error {
	if w.step == StepAgility {
		return ErrBackAtFirstStep
	}
	if stat, ok := w.Current(); ok {
		w.alloc.Set(stat, 0)
	}
	w.step = steps[w.step].prev
	return nil
}

// Finalize returns the allocation once it spends exactly the point budget.
func (w *Wizard) Finalize() (stats.Allocation, error) {
	if !w.Done() {
		return stats.Allocation{}, &profile.ConfigurationError{
			Field:  "stats",
			Reason: fmt.Sprintf("stat allocation stopped at %s", w.step),
		}
	}
	if err := w.alloc.Validate(); err != nil {
		return stats.Allocation{}, &profile.ConfigurationError{Field: "stats", Reason: "stat points do not equal 26", Err: err}
	}
	return w.alloc, nil
}

// Run prompts for every stat until the wizard is done.
func (w *Wizard) Run(p *console.Prompter, txt *text.Text) (stats.Allocation, error) {
	for !w.Done() {
		stat, _ := w.Current()
		min, max := w.Bounds()
		question := fmt.Sprintf("%s (%d/%d used): ", stat, w.RunningTotal(), stats.PointBudget)

		points, err := p.PromptInt(question, min, max, true)
		if errors.Is(err, console.ErrBack) {
			if err := w.Back(); errors.Is(err, ErrBackAtFirstStep) {
				if err := p.Say("%s", txt.GetAtFirstStat()); err != nil {
					return stats.Allocation{}, err
				}
			}
			continue
		}
		if err != nil {
			return stats.Allocation{}, err
		}

		if err := w.Commit(points); err != nil {
			return stats.Allocation{}, err
		}
	}
	return w.Finalize()
}
