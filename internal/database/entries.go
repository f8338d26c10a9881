package database

import (
	"database/sql"
	"fmt"

	"github.com/lawnchairsociety/sloth/internal/logbook"
	"github.com/lawnchairsociety/sloth/internal/logger"
	"github.com/lawnchairsociety/sloth/internal/profile"
)

const entryColumns = `entry_date, exercise_type, total, distance, average, points`

// AppendEntry appends one entry to the log.
func (d *Database) AppendEntry(e logbook.Entry) error {
	if err := d.insertEntry(d.db, e); err != nil {
		return err
	}
	logger.Info("Log entry appended", "exercise", e.ExerciseType, "total", e.Total, "event", "log_append")
	return nil
}

func (d *Database) insertEntry(ex execer, e logbook.Entry) error {
	_, err := ex.Exec(d.qb.Build(`INSERT INTO log_entries (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?)`),
		logbook.FormatDate(e.Date), e.ExerciseType, e.Total, e.Distance, e.Average, e.Points)
	if err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}
	return nil
}

// LoadLastEntry returns the most recently appended entry, or nil if the log is empty.
func (d *Database) LoadLastEntry() (*logbook.Entry, error) {
	row := d.db.QueryRow(`SELECT ` + entryColumns + ` FROM log_entries ORDER BY id DESC LIMIT 1`)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load last entry: %w", err)
	}
	return e, nil
}

// Entries returns the whole log in append order.
func (d *Database) Entries() ([]logbook.Entry, error) {
	rows, err := d.db.Query(`SELECT ` + entryColumns + ` FROM log_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query log entries: %w", err)
	}
	defer rows.Close()

	var entries []logbook.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log entries: %w", err)
	}
	return entries, nil
}

// CheckLog returns the log split into earned and lost totals, or nil if the log is empty.
func (d *Database) CheckLog() (*logbook.History, error) {
	entries, err := d.Entries()
	if err != nil {
		return nil, err
	}
	return logbook.Summarize(entries), nil
}

// ApplyDecay appends every deterioration entry and saves the decayed XP in one transaction.
func (d *Database) ApplyDecay(s *profile.Settings, entries []logbook.Entry) error {
	return d.withTx(func(tx *sql.Tx) error {
		for _, e := range entries {
			if err := d.insertEntry(tx, e); err != nil {
				return err
			}
		}
		return d.saveSettings(tx, s)
	})
}

// RecordWorkout appends a workout entry and saves the updated XP in one transaction.
func (d *Database) RecordWorkout(s *profile.Settings, e logbook.Entry) error {
	err := d.withTx(func(tx *sql.Tx) error {
		if err := d.insertEntry(tx, e); err != nil {
			return err
		}
		return d.saveSettings(tx, s)
	})
	if err != nil {
		return err
	}
	logger.Info("Workout recorded", "exercise", e.ExerciseType, "total", e.Total, "xp", s.XP, "event", "workout_record")
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*logbook.Entry, error) {
	var e logbook.Entry
	var date string
	if err := row.Scan(&date, &e.ExerciseType, &e.Total, &e.Distance, &e.Average, &e.Points); err != nil {
		return nil, err
	}
	parsed, err := logbook.ParseDate(date)
	if err != nil {
		return nil, err
	}
	e.Date = parsed
	return &e, nil
}
