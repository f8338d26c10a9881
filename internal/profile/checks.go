package profile

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lawnchairsociety/sloth/internal/clock"
)

// Plausible body weight ranges (exclusive).
const (
	MinImperialWeight = 50.0
	MaxImperialWeight = 1000.0
	MinMetricWeight   = 22.679
	MaxMetricWeight   = 453.592

	MinImperialHeight = 20.0
	MaxImperialHeight = 110.0
	MinMetricHeight   = 0.5
	MaxMetricHeight   = 2.8
)

// Vitals are the values derived while checking a record.
type Vitals struct {
	Age      int
	Birthday bool
	BMI      float64
}

// Check validates the record the way it is re-checked on every session start:
// units and weight, stat budget, goal, then birthdate.
func (s *Settings) Check(today time.Time) (*Vitals, error) {
	bmi, err := s.checkBody()
	if err != nil {
		return nil, err
	}

	if err := s.Stats.Validate(); err != nil {
		return nil, &ConfigurationError{Field: "stats", Reason: "stat points do not equal 26", Err: err}
	}

	if !s.Goal.Valid() {
		return nil, configErr("goal", "unexpected goal ID %d", int(s.Goal))
	}

	birth, err := ParseBirthdate(s.Birthdate)
	if err != nil {
		return nil, err
	}

	age, birthday := AgeOn(birth, today)
	return &Vitals{Age: age, Birthday: birthday, BMI: bmi}, nil
}

func (s *Settings) checkBody() (float64, error) {
	if s.Height <= 0 {
		return 0, configErr("height", "height must be positive, got %v", s.Height)
	}

	var bmi float64
	switch s.MeasuringType {
	case Imperial:
		if !(MinImperialWeight < s.Weight && s.Weight < MaxImperialWeight) {
			return 0, configErr("weight", "pretty sure %v's not your real weight", s.Weight)
		}
		bmi = s.Weight / (s.Height * s.Height) * 703.0
	case Metric:
		if !(MinMetricWeight < s.Weight && s.Weight < MaxMetricWeight) {
			return 0, configErr("weight", "pretty sure %v's not your real weight", s.Weight)
		}
		bmi = s.Weight / (s.Height * s.Height)
	default:
		return 0, configErr("measuring_type", "unexpected units type %q", s.MeasuringType)
	}
	return math.Round(bmi*100) / 100, nil
}

// WeightInRange reports whether weight is plausible for the measurement system.
func WeightInRange(measuringType string, weight float64) bool {
	switch measuringType {
	case Imperial:
		return MinImperialWeight < weight && weight < MaxImperialWeight
	case Metric:
		return MinMetricWeight < weight && weight < MaxMetricWeight
	}
	return false
}

// HeightInRange reports whether height is plausible for the measurement system.
// Heights are inches for imperial and meters for metric.
func HeightInRange(measuringType string, height float64) bool {
	switch measuringType {
	case Imperial:
		return MinImperialHeight <= height && height <= MaxImperialHeight
	case Metric:
		return MinMetricHeight <= height && height <= MaxMetricHeight
	}
	return false
}

// ParseBirthdate parses a YYYY-MM-DD birthdate and rejects impossible dates.
func ParseBirthdate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, configErr("birthdate", "%q is not in YYYY-MM-DD form", s)
	}

	var ymd [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, &ConfigurationError{Field: "birthdate", Reason: "the birthday in your settings file is not possible", Err: err}
		}
		ymd[i] = n
	}

	t := time.Date(ymd[0], time.Month(ymd[1]), ymd[2], 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range values; a real date survives unchanged
	if t.Year() != ymd[0] || int(t.Month()) != ymd[1] || t.Day() != ymd[2] || ymd[0] < 1 {
		return time.Time{}, configErr("birthdate", "the birthday in your settings file is not possible")
	}
	return t, nil
}

// AgeOn returns completed years from birth to today, and whether today is the birthday.
func AgeOn(birth, today time.Time) (int, bool) {
	birth, today = clock.Date(birth), clock.Date(today)
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	birthday := today.Month() == birth.Month() && today.Day() == birth.Day()
	return age, birthday
}
