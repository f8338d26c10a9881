// Package text provides loading and lookup for user-facing messages.
// Any message missing from the YAML file falls back to a built-in default.
package text

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TextData represents the structure of the text.yaml file.
type TextData struct {
	Creation CreationText `yaml:"creation"`
	Session  SessionText  `yaml:"session"`
	Workout  WorkoutText  `yaml:"workout"`
}

// CreationText contains first-run questionnaire text.
type CreationText struct {
	StatsIntro  string `yaml:"stats_intro"`
	BackHint    string `yaml:"back_hint"`
	AtFirstStat string `yaml:"at_first_stat"`
	Restart     string `yaml:"restart"`
}

// SessionText contains status banner and deterioration text.
type SessionText struct {
	Birthday       string `yaml:"birthday"`
	DecayHeader    string `yaml:"decay_header"`
	DecayNotice    string `yaml:"decay_notice"`
	WorkoutPrompt  string `yaml:"workout_prompt"`
	UnknownWorkout string `yaml:"unknown_workout"`
}

// WorkoutText contains workout handler text.
type WorkoutText struct {
	Unsupported string `yaml:"unsupported"`
	Recorded    string `yaml:"recorded"`
}

// Defaults returns the built-in messages.
func Defaults() TextData {
	return TextData{
		Creation: CreationText{
			StatsIntro:  "You have 26 points to place into 6 stats.",
			BackHint:    "Press 'b' to go back after agility",
			AtFirstStat: "Agility is the first stat; there is nothing to go back to.",
			Restart:     "Please re-run the game to get started.",
		},
		Session: SessionText{
			Birthday:       " (HAPPY BIRTHDAY!)",
			DecayHeader:    "Due to not logging anything for at least 7 days...",
			DecayNotice:    "You've lost %d (20%%) XP. Your XP is now %d",
			WorkoutPrompt:  "What workout did you do? %s: ",
			UnknownWorkout: "Unknown workout %q. Options: %s",
		},
		Workout: WorkoutText{
			Unsupported: "This still needs worked on..",
			Recorded:    "Logged %s: %d XP",
		},
	}
}

// Text provides text lookup functionality.
type Text struct {
	data TextData
}

// New returns a Text with only the built-in messages.
func New() *Text {
	return &Text{data: Defaults()}
}

// Load loads text data from a YAML file on top of the defaults.
func Load(path string) (*Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}

	textData := Defaults()
	if err := yaml.Unmarshal(data, &textData); err != nil {
		return nil, fmt.Errorf("failed to parse text file: %w", err)
	}
	textData.fillBlanks(Defaults())

	return &Text{data: textData}, nil
}

// LoadOrDefault loads path when it exists and falls back to New otherwise.
func LoadOrDefault(path string) (*Text, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}
	return Load(path)
}

// fillBlanks restores defaults for keys present in the file but left empty.
func (d *TextData) fillBlanks(def TextData) {
	fill := func(v *string, fallback string) {
		if strings.TrimSpace(*v) == "" {
			*v = fallback
		}
	}
	fill(&d.Creation.StatsIntro, def.Creation.StatsIntro)
	fill(&d.Creation.BackHint, def.Creation.BackHint)
	fill(&d.Creation.AtFirstStat, def.Creation.AtFirstStat)
	fill(&d.Creation.Restart, def.Creation.Restart)
	fill(&d.Session.Birthday, def.Session.Birthday)
	fill(&d.Session.DecayHeader, def.Session.DecayHeader)
	fill(&d.Session.DecayNotice, def.Session.DecayNotice)
	fill(&d.Session.WorkoutPrompt, def.Session.WorkoutPrompt)
	fill(&d.Session.UnknownWorkout, def.Session.UnknownWorkout)
	fill(&d.Workout.Unsupported, def.Workout.Unsupported)
	fill(&d.Workout.Recorded, def.Workout.Recorded)
}

// GetStatsIntro returns the lines shown before the stat wizard.
func (t *Text) GetStatsIntro() string {
	return strings.TrimSpace(t.data.Creation.StatsIntro) + "\n" + strings.TrimSpace(t.data.Creation.BackHint)
}

// GetAtFirstStat returns the notice shown when back is used on the first stat.
func (t *Text) GetAtFirstStat() string {
	return strings.TrimSpace(t.data.Creation.AtFirstStat)
}

// GetRestart returns the message shown after the first-run questions.
func (t *Text) GetRestart() string {
	return strings.TrimSpace(t.data.Creation.Restart)
}

// GetBirthdaySuffix returns the banner suffix used on the user's birthday.
// Leading whitespace is kept.
func (t *Text) GetBirthdaySuffix() string {
	return strings.TrimRight(t.data.Session.Birthday, " \n")
}

// GetDecayNotice returns the deterioration report for lost XP and the new total.
func (t *Text) GetDecayNotice(lost, xp int) string {
	return strings.TrimSpace(t.data.Session.DecayHeader) + "\n" +
		fmt.Sprintf(strings.TrimSpace(t.data.Session.DecayNotice), lost, xp)
}

// GetWorkoutPrompt returns the workout question with the completion hint filled in.
func (t *Text) GetWorkoutPrompt(hint string) string {
	return fmt.Sprintf(strings.TrimLeft(t.data.Session.WorkoutPrompt, " \n"), hint)
}

// GetUnknownWorkout returns the message for a workout that isn't in the catalog.
func (t *Text) GetUnknownWorkout(name string, options []string) string {
	return fmt.Sprintf(strings.TrimSpace(t.data.Session.UnknownWorkout), name, strings.Join(options, ", "))
}

// GetUnsupported returns the message for workouts without a handler yet.
func (t *Text) GetUnsupported() string {
	return strings.TrimSpace(t.data.Workout.Unsupported)
}

// GetRecorded returns the confirmation after a workout is logged.
func (t *Text) GetRecorded(workout string, points int) string {
	return fmt.Sprintf(strings.TrimSpace(t.data.Workout.Recorded), workout, points)
}
