// Package profile holds the persisted character record and the sanity checks
// run against it at the start of every session.
package profile

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lawnchairsociety/sloth/internal/stats"
)

// Measurement systems
const (
	Metric   = "M"
	Imperial = "I"
)

// Goal identifies what the user is training for.
type Goal int

const (
	GoalPowerLifter Goal = iota + 1
	GoalStronger
	GoalLoseWeight
	GoalCardio
)

var goalNames = map[Goal]string{
	GoalPowerLifter: "power lifter",
	GoalStronger:    "become stronger",
	GoalLoseWeight:  "lose weight",
	GoalCardio:      "cardio",
}

// Valid reports whether g is one of the four known goals.
func (g Goal) Valid() bool {
	_, ok := goalNames[g]
	return ok
}

func (g Goal) String() string {
	if name, ok := goalNames[g]; ok {
		return name
	}
	return "unknown"
}

// Settings is the single persisted character record.
type Settings struct {
	Name          string
	Birthdate     string // ISO YYYY-MM-DD
	Sex           string
	MeasuringType string
	Height        float64 // inches or meters
	Weight        float64 // pounds or kilograms
	Goal          Goal
	Stats         stats.Allocation
	XP            int
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}

// Normalize applies the first-run formatting to name and sex.
func (s *Settings) Normalize() {
	s.Name = Capitalize(strings.TrimSpace(s.Name))
	s.Sex = strings.ToUpper(strings.TrimSpace(s.Sex))
	s.MeasuringType = strings.ToUpper(strings.TrimSpace(s.MeasuringType))
}
