package workout

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lawnchairsociety/sloth/internal/clock"
	"github.com/lawnchairsociety/sloth/internal/console"
	"github.com/lawnchairsociety/sloth/internal/leveling"
	"github.com/lawnchairsociety/sloth/internal/logbook"
	"github.com/lawnchairsociety/sloth/internal/logger"
	"github.com/lawnchairsociety/sloth/internal/profile"
	"github.com/lawnchairsociety/sloth/internal/progression"
)

// ErrUnsupportedWorkout is returned by handlers that can't log a workout yet.
var ErrUnsupportedWorkout = errors.New("workout not supported yet")

// Recorder persists a workout entry together with the updated XP.
type Recorder interface {
	RecordWorkout(s *profile.Settings, e logbook.Entry) error
}

// Handler logs one workout of a given kind.
type Handler interface {
	Handle(def Definition, s *profile.Settings) (*logbook.Entry, error)
}

// CardioHandler asks for distance and duration and awards points per distance unit.
type CardioHandler struct {
	prompter *console.Prompter
	recorder Recorder
	clock    clock.Clock
}

func NewCardioHandler(p *console.Prompter, rec Recorder, c clock.Clock) *CardioHandler {
	return &CardioHandler{prompter: p, recorder: rec, clock: c}
}

// DistanceUnit returns the distance unit for a measurement system.
func DistanceUnit(measuringType string) string {
	if measuringType == profile.Metric {
		return "kilometers"
	}
	return "miles"
}

// NewCardioEntry scores a cardio workout. Average is distance per hour.
// distance should already have passed CheckDistance.
func NewCardioEntry(def Definition, today time.Time, distance, minutes float64) logbook.Entry {
	points := int(math.RoundToEven(distance * def.PointsPerUnit))
	return logbook.Entry{
		Date:         clock.Date(today),
		ExerciseType: def.Name,
		Total:        points,
		Distance:     distance,
		Average:      distance / (minutes / 60),
		Points:       points,
	}
}

func positive(v float64) error {
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("please enter a number above zero")
	}
	return nil
}

// CheckDistance rejects distances whose points would take xp past leveling.MaxSupportedXP.
func CheckDistance(def Definition, xp int, distance float64) error {
	if err := positive(distance); err != nil {
		return err
	}
	points := math.RoundToEven(distance * def.PointsPerUnit)
	if points > float64(leveling.MaxSupportedXP-xp) {
		return fmt.Errorf("that distance would take XP past %d", leveling.MaxSupportedXP)
	}
	return nil
}

func (h *CardioHandler) Handle(def Definition, s *profile.Settings) (*logbook.Entry, error) {
	checkDistance := func(v float64) error {
		return CheckDistance(def, s.XP, v)
	}
	distance, err := h.prompter.PromptFloat(fmt.Sprintf("Distance (%s): ", DistanceUnit(s.MeasuringType)), checkDistance)
	if err != nil {
		return nil, err
	}
	minutes, err := h.prompter.PromptFloat("Time (minutes): ", positive)
	if err != nil {
		return nil, err
	}

	entry := NewCardioEntry(def, h.clock.Today(), distance, minutes)

	previous := s.XP
	s.XP += entry.Total
	if err := h.recorder.RecordWorkout(s, entry); err != nil {
		s.XP = previous
		return nil, &progression.PersistenceError{Op: "record workout", Err: err}
	}
	return &entry, nil
}

// PhysicalHandler stands in for strength workouts, which can't be logged yet.
type PhysicalHandler struct{}

func (PhysicalHandler) Handle(def Definition, s *profile.Settings) (*logbook.Entry, error) {
	return nil, fmt.Errorf("%s: %w", def.Name, ErrUnsupportedWorkout)
}

// Dispatcher routes a workout to the handler for its kind.
type Dispatcher struct {
	handlers map[Kind]Handler
}

// NewDispatcher wires the built-in handlers.
func NewDispatcher(p *console.Prompter, rec Recorder, c clock.Clock) *Dispatcher {
	return &Dispatcher{handlers: map[Kind]Handler{
		Cardio:   NewCardioHandler(p, rec, c),
		Physical: PhysicalHandler{},
	}}
}

// Dispatch runs the handler for def.Kind.
func (d *Dispatcher) Dispatch(def Definition, s *profile.Settings) (*logbook.Entry, error) {
	h, ok := d.handlers[def.Kind]
	if !ok {
		return nil, fmt.Errorf("%s: no handler for kind %q: %w", def.Name, def.Kind, ErrUnsupportedWorkout)
	}
	entry, err := h.Handle(def, s)
	if err != nil {
		if errors.Is(err, ErrUnsupportedWorkout) {
			logger.Debug("Workout not supported", "workout", def.Name, "kind", def.Kind)
		}
		return nil, err
	}
	return entry, nil
}
