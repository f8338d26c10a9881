package stats

import (
	"errors"
	"testing"
)

func TestStatNames(t *testing.T) {
	tests := []struct {
		stat   Stat
		name   string
		abbrev string
	}{
		{Agility, "Agility", "AGI"},
		{Charisma, "Charisma", "CHA"},
		{Defense, "Defense", "DEF"},
		{Endurance, "Endurance", "END"},
		{Intelligence, "Intelligence", "INT"},
		{Strength, "Strength", "STR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.stat.String() != tt.name {
				t.Errorf("String() = %q, expected %q", tt.stat.String(), tt.name)
			}
			if tt.stat.Abbrev() != tt.abbrev {
				t.Errorf("Abbrev() = %q, expected %q", tt.stat.Abbrev(), tt.abbrev)
			}
		})
	}

	if got := Stat(42).String(); got != "Stat(42)" {
		t.Errorf("unknown stat String() = %q", got)
	}
}

func TestAllocationGetSet(t *testing.T) {
	var a Allocation
	for i, s := range All {
		a.Set(s, i+1)
	}

	if a.Agility != 1 || a.Charisma != 2 || a.Defense != 3 ||
		a.Endurance != 4 || a.Intelligence != 5 || a.Strength != 6 {
		t.Errorf("Set wrote unexpected fields: %+v", a)
	}
	for i, s := range All {
		if a.Get(s) != i+1 {
			t.Errorf("Get(%s) = %d, expected %d", s, a.Get(s), i+1)
		}
	}
	if a.Total() != 21 {
		t.Errorf("Total() = %d, expected 21", a.Total())
	}
	if a.TotalExcept(Strength) != 15 {
		t.Errorf("TotalExcept(Strength) = %d, expected 15", a.TotalExcept(Strength))
	}
	if a.Remaining() != 5 {
		t.Errorf("Remaining() = %d, expected 5", a.Remaining())
	}
}

func TestAllocationValidate(t *testing.T) {
	tests := []struct {
		name    string
		alloc   Allocation
		wantErr error
	}{
		{"exact budget", NewAllocation(5, 3, 4, 6, 2, 6), nil},
		{"all in one stat", NewAllocation(26, 0, 0, 0, 0, 0), nil},
		{"under budget", NewAllocation(1, 1, 1, 1, 1, 1), ErrBudgetMismatch},
		{"over budget", NewAllocation(10, 10, 10, 0, 0, 0), ErrBudgetMismatch},
		{"negative stat", NewAllocation(30, -4, 0, 0, 0, 0), ErrNegativeStat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.alloc.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() returned error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tt.wantErr)
			}
		})
	}
}

func TestAllocationSummary(t *testing.T) {
	a := NewAllocation(5, 3, 4, 6, 2, 6)
	want := "AGI 5 / CHA 3 / DEF 4 / END 6 / INT 2 / STR 6"
	if got := a.Summary(); got != want {
		t.Errorf("Summary() = %q, expected %q", got, want)
	}
}
