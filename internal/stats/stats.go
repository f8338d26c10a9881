package stats

import (
	"errors"
	"fmt"
	"strings"
)

// Stat identifies one of the six character attributes.
type Stat int

const (
	Agility Stat = iota
	Charisma
	Defense
	Endurance
	Intelligence
	Strength
)

// Allocation constants
const (
	PointBudget = 26 // Points to spend across all six stats
	StatCount   = 6
)

// All lists the stats in allocation order.
var All = []Stat{Agility, Charisma, Defense, Endurance, Intelligence, Strength}

var statNames = [StatCount]string{"Agility", "Charisma", "Defense", "Endurance", "Intelligence", "Strength"}

func (s Stat) String() string {
	if s < Agility || s > Strength {
		return fmt.Sprintf("Stat(%d)", int(s))
	}
	return statNames[s]
}

// Abbrev returns the three-letter label, e.g. "AGI".
func (s Stat) Abbrev() string {
	return strings.ToUpper(s.String()[:3])
}

var (
	ErrNegativeStat   = errors.New("stat cannot be negative")
	ErrBudgetMismatch = errors.New("stat points do not equal the budget")
)

// Allocation holds the points placed into each stat.
type Allocation struct {
	Agility      int
	Charisma     int
	Defense      int
	Endurance    int
	Intelligence int
	Strength     int
}

// NewAllocation creates an allocation from individual values in allocation order.
func NewAllocation(agi, cha, def, end, int_, str int) Allocation {
	return Allocation{
		Agility:      agi,
		Charisma:     cha,
		Defense:      def,
		Endurance:    end,
		Intelligence: int_,
		Strength:     str,
	}
}

func (a *Allocation) slot(s Stat) *int {
	switch s {
	case Agility:
		return &a.Agility
	case Charisma:
		return &a.Charisma
	case Defense:
		return &a.Defense
	case Endurance:
		return &a.Endurance
	case Intelligence:
		return &a.Intelligence
	case Strength:
		return &a.Strength
	default:
		panic(fmt.Sprintf("stats: unknown stat %d", int(s)))
	}
}

// Get returns the points in a stat.
func (a *Allocation) Get(s Stat) int {
	return *a.slot(s)
}

// Set stores the points for a stat.
func (a *Allocation) Set(s Stat, points int) {
	*a.slot(s) = points
}

// Values returns the points in allocation order.
func (a *Allocation) Values() []int {
	values := make([]int, 0, StatCount)
	for _, s := range All {
		values = append(values, a.Get(s))
	}
	return values
}

// Total returns the sum of all six stats.
func (a *Allocation) Total() int {
	total := 0
	for _, v := range a.Values() {
		total += v
	}
	return total
}

// TotalExcept returns the sum of every stat other than s.
func (a *Allocation) TotalExcept(s Stat) int {
	return a.Total() - a.Get(s)
}

// Remaining returns how many points are left to spend
func (a *Allocation) Remaining() int {
	return PointBudget - a.Total()
}

// Validate checks that no stat is negative and the total equals PointBudget.
func (a *Allocation) Validate() error {
	for _, s := range All {
		if a.Get(s) < 0 {
			return fmt.Errorf("%s is %d: %w", s, a.Get(s), ErrNegativeStat)
		}
	}
	if total := a.Total(); total != PointBudget {
		return fmt.Errorf("stats total %d, expected %d: %w", total, PointBudget, ErrBudgetMismatch)
	}
	return nil
}

// Summary returns a one-line listing like "AGI 5 / CHA 3 / ...".
func (a *Allocation) Summary() string {
	parts := make([]string, 0, StatCount)
	for _, s := range All {
		parts = append(parts, fmt.Sprintf("%s %d", s.Abbrev(), a.Get(s)))
	}
	return strings.Join(parts, " / ")
}
