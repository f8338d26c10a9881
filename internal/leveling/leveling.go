package leveling

import (
	"fmt"
	"sort"
)

// Leveling constants
const (
	MinLevel       = 1
	MaxLevel       = 22
	MaxSupportedXP = 99749
)

// Breakpoints holds the XP at which each level after the first begins.
// Index i is the first XP value of level i+2.
var Breakpoints = []int{
	250, 500, 2000, 3750, 5750, 8250, 11000, 14250, 17750, 21750, 26000,
	30750, 35750, 41250, 47000, 53250, 59750, 66750, 74000, 82250, 90750,
}

// Level returns the level for a cumulative XP total.
// A total equal to a breakpoint belongs to the higher level.
func Level(totalXP int) int {
	i := sort.Search(len(Breakpoints), func(i int) bool {
		return Breakpoints[i] > totalXP
	})
	return i + 1
}

// XPForLevel returns the total XP required to reach a given level.
func XPForLevel(level int) int {
	if level <= MinLevel {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return Breakpoints[level-2]
}

// XPToNextLevel returns XP still needed to reach the next level, or 0 at the cap.
func XPToNextLevel(totalXP int) int {
	level := Level(totalXP)
	if level >= MaxLevel {
		return 0
	}
	return XPForLevel(level+1) - totalXP
}

// XPRangeError reports an XP total the level table cannot represent.
type XPRangeError struct {
	XP int
}

func (e *XPRangeError) Error() string {
	if e.XP < 0 {
		return fmt.Sprintf("xp is negative (%d): something is wrong with your log file", e.XP)
	}
	return fmt.Sprintf("xp is over %d (%d): not yet supported", MaxSupportedXP, e.XP)
}

// CheckXP returns an *XPRangeError when xp is outside [0, MaxSupportedXP].
func CheckXP(xp int) error {
	if xp < 0 || xp > MaxSupportedXP {
		return &XPRangeError{XP: xp}
	}
	return nil
}
