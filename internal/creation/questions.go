package creation

import (
	"fmt"

	"github.com/lawnchairsociety/sloth/internal/console"
	"github.com/lawnchairsociety/sloth/internal/logger"
	"github.com/lawnchairsociety/sloth/internal/profile"
	"github.com/lawnchairsociety/sloth/internal/progression"
	"github.com/lawnchairsociety/sloth/internal/text"
)

// BirthdateLayout is the form birthdates are entered and stored in.
const BirthdateLayout = "2006-01-02"

// Store saves the finished settings.
type Store interface {
	CommitSettings(s *profile.Settings) error
}

// Questionnaire gathers a new character on first run.
type Questionnaire struct {
	prompter *console.Prompter
	store    Store
	text     *text.Text
}

func NewQuestionnaire(p *console.Prompter, store Store, txt *text.Text) *Questionnaire {
	return &Questionnaire{prompter: p, store: store, text: txt}
}

func unitLabels(measuringType string) (weight, height string) {
	if measuringType == profile.Metric {
		return "kg", "meters"
	}
	return "lbs", "inches"
}

// Run asks every question, commits the settings and tells the user to restart.
// Nothing is written unless every answer was gathered.
func (q *Questionnaire) Run() (*profile.Settings, error) {
	p := q.prompter
	s := &profile.Settings{}

	var err error
	if s.Name, err = p.PromptString("First name: "); err != nil {
		return nil, err
	}
	if s.Birthdate, err = p.PromptDate("Birthdate (YYYY-MM-DD): ", BirthdateLayout); err != nil {
		return nil, err
	}
	if s.Sex, err = p.PromptChoice("Sex (M/F): ", "M", "F"); err != nil {
		return nil, err
	}
	if s.MeasuringType, err = p.PromptChoice("Measurement system, (M)etric or (I)mperial: ", profile.Metric, profile.Imperial); err != nil {
		return nil, err
	}

	weightUnit, heightUnit := unitLabels(s.MeasuringType)
	s.Weight, err = p.PromptFloat(fmt.Sprintf("Weight (%s): ", weightUnit), func(v float64) error {
		if !profile.WeightInRange(s.MeasuringType, v) {
			return fmt.Errorf("pretty sure %v's not your real weight", v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Height, err = p.PromptFloat(fmt.Sprintf("Height (%s): ", heightUnit), func(v float64) error {
		if !profile.HeightInRange(s.MeasuringType, v) {
			return fmt.Errorf("height should be in %s", heightUnit)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for g := profile.GoalPowerLifter; g <= profile.GoalCardio; g++ {
		if err := p.Say("  [%d] %s", int(g), g); err != nil {
			return nil, err
		}
	}
	goal, err := p.PromptInt("Goal (1-4): ", int(profile.GoalPowerLifter), int(profile.GoalCardio), false)
	if err != nil {
		return nil, err
	}
	s.Goal = profile.Goal(goal)

	if err := p.Say("%s", q.text.GetStatsIntro()); err != nil {
		return nil, err
	}
	if s.Stats, err = NewWizard().Run(p, q.text); err != nil {
		return nil, err
	}

	s.Normalize()
	s.XP = 0

	if err := q.store.CommitSettings(s); err != nil {
		return nil, &progression.PersistenceError{Op: "commit settings", Err: err}
	}
	logger.Always("Character created",
		"name", s.Name,
		"goal", s.Goal.String(),
		"stats", s.Stats.Summary(),
		"event", "settings_create")

	if err := p.Say("%s", q.text.GetRestart()); err != nil {
		return nil, err
	}
	return s, nil
}
