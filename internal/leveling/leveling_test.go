package leveling

import (
	"errors"
	"testing"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		xp       int
		expected int
	}{
		{0, 1},
		{249, 1},
		{250, 2}, // ties go to the higher bracket
		{251, 2},
		{499, 2},
		{500, 3},
		{1999, 3},
		{2000, 4},
		{90749, 21},
		{90750, 22},
		{90751, 22},
		{MaxSupportedXP, 22},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			result := Level(tt.xp)
			if result != tt.expected {
				t.Errorf("Level(%d) = %d, expected %d", tt.xp, result, tt.expected)
			}
		})
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := Level(0)
	if prev != MinLevel {
		t.Fatalf("Level(0) = %d, expected %d", prev, MinLevel)
	}
	for xp := 1; xp <= MaxSupportedXP; xp++ {
		level := Level(xp)
		if level < prev {
			t.Fatalf("Level(%d) = %d is lower than Level(%d) = %d", xp, level, xp-1, prev)
		}
		if level > MaxLevel {
			t.Fatalf("Level(%d) = %d exceeds max level %d", xp, level, MaxLevel)
		}
		prev = level
	}
}

func TestBreakpointsAscending(t *testing.T) {
	if len(Breakpoints) != MaxLevel-1 {
		t.Fatalf("expected %d breakpoints, got %d", MaxLevel-1, len(Breakpoints))
	}
	for i := 1; i < len(Breakpoints); i++ {
		if Breakpoints[i] <= Breakpoints[i-1] {
			t.Errorf("breakpoint %d (%d) is not above breakpoint %d (%d)", i, Breakpoints[i], i-1, Breakpoints[i-1])
		}
	}
}

func TestXPForLevel(t *testing.T) {
	if got := XPForLevel(1); got != 0 {
		t.Errorf("XPForLevel(1) = %d, expected 0", got)
	}
	if got := XPForLevel(2); got != 250 {
		t.Errorf("XPForLevel(2) = %d, expected 250", got)
	}
	if got := XPForLevel(22); got != 90750 {
		t.Errorf("XPForLevel(22) = %d, expected 90750", got)
	}

	// Every level's threshold maps back to that level
	for level := MinLevel; level <= MaxLevel; level++ {
		if got := Level(XPForLevel(level)); got != level {
			t.Errorf("Level(XPForLevel(%d)) = %d", level, got)
		}
	}
}

func TestXPToNextLevel(t *testing.T) {
	if got := XPToNextLevel(0); got != 250 {
		t.Errorf("XPToNextLevel(0) = %d, expected 250", got)
	}
	if got := XPToNextLevel(300); got != 200 {
		t.Errorf("XPToNextLevel(300) = %d, expected 200", got)
	}
	if got := XPToNextLevel(95000); got != 0 {
		t.Errorf("XPToNextLevel(95000) = %d, expected 0 at max level", got)
	}
}

func TestCheckXP(t *testing.T) {
	for _, xp := range []int{0, 1, 90751, MaxSupportedXP} {
		if err := CheckXP(xp); err != nil {
			t.Errorf("CheckXP(%d) returned error: %v", xp, err)
		}
	}

	for _, xp := range []int{-1, MaxSupportedXP + 1} {
		err := CheckXP(xp)
		var rangeErr *XPRangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("CheckXP(%d) = %v, expected *XPRangeError", xp, err)
		}
		if rangeErr.XP != xp {
			t.Errorf("XPRangeError.XP = %d, expected %d", rangeErr.XP, xp)
		}
	}
}
