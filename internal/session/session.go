// Package session runs the main loop: keep XP consistent with the log,
// re-check the character record, apply deterioration, show the status
// banner and log one workout per cycle.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lawnchairsociety/sloth/internal/clock"
	"github.com/lawnchairsociety/sloth/internal/console"
	"github.com/lawnchairsociety/sloth/internal/leveling"
	"github.com/lawnchairsociety/sloth/internal/logger"
	"github.com/lawnchairsociety/sloth/internal/profile"
	"github.com/lawnchairsociety/sloth/internal/progression"
	"github.com/lawnchairsociety/sloth/internal/text"
	"github.com/lawnchairsociety/sloth/internal/workout"
)

// Store is everything a session persists through.
type Store interface {
	progression.Store
	workout.Recorder
}

// Status is the information shown in the banner.
type Status struct {
	Name     string
	Sex      string
	Age      int
	Birthday bool
	BMI      float64
	Level    int
	XP       int
	ToNext   int // 0 at the level cap
}

// Session drives one user's run of the program.
type Session struct {
	engine     *progression.Engine
	catalog    *workout.Catalog
	dispatcher *workout.Dispatcher
	prompter   *console.Prompter
	text       *text.Text
	clock      clock.Clock
}

func New(store Store, catalog *workout.Catalog, p *console.Prompter, txt *text.Text, c clock.Clock) *Session {
	return &Session{
		engine:     progression.NewEngine(store, c),
		catalog:    catalog,
		dispatcher: workout.NewDispatcher(p, store, c),
		prompter:   p,
		text:       txt,
		clock:      c,
	}
}

// Prepare reconciles XP, checks the record and applies deterioration.
// Any error is fatal to the session.
func (s *Session) Prepare(settings *profile.Settings) (*Status, error) {
	if _, err := s.engine.Reconcile(settings); err != nil {
		return nil, err
	}

	vitals, err := settings.Check(s.clock.Today())
	if err != nil {
		return nil, err
	}

	if err := leveling.CheckXP(settings.XP); err != nil {
		return nil, err
	}

	plan, err := s.engine.Deteriorate(settings)
	if err != nil {
		return nil, err
	}
	if plan != nil {
		if err := s.prompter.Say("%s", s.text.GetDecayNotice(plan.Lost(), plan.FinalXP)); err != nil {
			return nil, err
		}
	}

	return &Status{
		Name:     settings.Name,
		Sex:      settings.Sex,
		Age:      vitals.Age,
		Birthday: vitals.Birthday,
		BMI:      vitals.BMI,
		Level:    leveling.Level(settings.XP),
		XP:       settings.XP,
		ToNext:   leveling.XPToNextLevel(settings.XP),
	}, nil
}

// Banner renders the status lines: who, level and XP, then BMI.
func (s *Session) Banner(st *Status) []string {
	var suffix string
	if st.Birthday {
		suffix = s.text.GetBirthdaySuffix()
	}
	level := fmt.Sprintf("Lvl %d/XP %d", st.Level, st.XP)
	if st.ToNext > 0 {
		level += fmt.Sprintf(" (%d to next)", st.ToNext)
	}
	return []string{
		fmt.Sprintf("%s/%s/%d%s", st.Name, st.Sex, st.Age, suffix),
		level,
		fmt.Sprintf("BMI %.2f", st.BMI),
	}
}

// ChooseWorkout asks until the answer names a catalog workout.
// Ending the answer with "?" lists the workouts starting with it.
func (s *Session) ChooseWorkout() (workout.Definition, error) {
	question := s.text.GetWorkoutPrompt(console.TabHint())
	for {
		answer, err := s.prompter.PromptString(question)
		if err != nil {
			return workout.Definition{}, err
		}

		if prefix, ok := completionRequest(answer); ok {
			options := s.catalog.Complete(prefix)
			if len(options) == 0 {
				options = s.catalog.Names()
			}
			if err := s.prompter.Say("%s", strings.Join(options, "  ")); err != nil {
				return workout.Definition{}, err
			}
			continue
		}

		if def, ok := s.catalog.Lookup(answer); ok {
			return def, nil
		}

		options := s.catalog.Complete(answer)
		if len(options) == 0 {
			options = s.catalog.Names()
		}
		if err := s.prompter.Say("%s", s.text.GetUnknownWorkout(workout.Normalize(answer), options)); err != nil {
			return workout.Definition{}, err
		}
	}
}

func completionRequest(answer string) (string, bool) {
	if i := strings.IndexByte(answer, '?'); i >= 0 {
		return answer[:i], true
	}
	return "", false
}

// Run loops until input ends. Unsupported workouts are reported and the loop
// continues; any other error stops the session.
func (s *Session) Run(settings *profile.Settings) error {
	for {
		status, err := s.Prepare(settings)
		if err != nil {
			return err
		}
		for _, line := range s.Banner(status) {
			if err := s.prompter.Say("%s", line); err != nil {
				return err
			}
		}

		def, err := s.ChooseWorkout()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		entry, err := s.dispatcher.Dispatch(def, settings)
		switch {
		case errors.Is(err, workout.ErrUnsupportedWorkout):
			if err := s.prompter.Say("%s", s.text.GetUnsupported()); err != nil {
				return err
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		logger.Debug("Workout logged", "workout", entry.ExerciseType, "points", entry.Points, "xp", settings.XP)
		if err := s.prompter.Say("%s", s.text.GetRecorded(entry.ExerciseType, entry.Total)); err != nil {
			return err
		}
	}
}
