package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lawnchairsociety/sloth/internal/logger"
	"github.com/lawnchairsociety/sloth/internal/profile"
)

// ErrSettingsNotFound is returned before the first-run wizard has saved a record.
var ErrSettingsNotFound = errors.New("settings not found")

// settingsID is the primary key of the single settings row.
const settingsID = 1

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// LoadSettings returns the saved settings record.
func (d *Database) LoadSettings() (*profile.Settings, error) {
	var s profile.Settings
	var goal int
	err := d.db.QueryRow(d.qb.Build(`
		SELECT name, birthdate, sex, measuring_type, height, weight, goal,
		       agility, charisma, defense, endurance, intelligence, strength, xp
		FROM settings WHERE id = ?`), settingsID).Scan(
		&s.Name, &s.Birthdate, &s.Sex, &s.MeasuringType, &s.Height, &s.Weight, &goal,
		&s.Stats.Agility, &s.Stats.Charisma, &s.Stats.Defense,
		&s.Stats.Endurance, &s.Stats.Intelligence, &s.Stats.Strength, &s.XP,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	s.Goal = profile.Goal(goal)
	return &s, nil
}

// SettingsExist reports whether the first-run wizard has completed.
func (d *Database) SettingsExist() (bool, error) {
	var count int
	err := d.db.QueryRow(d.qb.Build(`SELECT COUNT(*) FROM settings WHERE id = ?`), settingsID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check settings: %w", err)
	}
	return count > 0, nil
}

// CommitSettings persists every field of s.
func (d *Database) CommitSettings(s *profile.Settings) error {
	if err := d.saveSettings(d.db, s); err != nil {
		return err
	}
	logger.Debug("Settings committed", "xp", s.XP, "event", "settings_commit")
	return nil
}

func (d *Database) saveSettings(ex execer, s *profile.Settings) error {
	_, err := ex.Exec(d.qb.Build(`
		INSERT INTO settings (id, name, birthdate, sex, measuring_type, height, weight, goal,
		                      agility, charisma, defense, endurance, intelligence, strength, xp, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			birthdate = excluded.birthdate,
			sex = excluded.sex,
			measuring_type = excluded.measuring_type,
			height = excluded.height,
			weight = excluded.weight,
			goal = excluded.goal,
			agility = excluded.agility,
			charisma = excluded.charisma,
			defense = excluded.defense,
			endurance = excluded.endurance,
			intelligence = excluded.intelligence,
			strength = excluded.strength,
			xp = excluded.xp,
			updated_at = CURRENT_TIMESTAMP`),
		settingsID, s.Name, s.Birthdate, s.Sex, s.MeasuringType, s.Height, s.Weight, int(s.Goal),
		s.Stats.Agility, s.Stats.Charisma, s.Stats.Defense,
		s.Stats.Endurance, s.Stats.Intelligence, s.Stats.Strength, s.XP,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
