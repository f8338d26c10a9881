package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lawnchairsociety/sloth/internal/logger"
)

// ErrDestinationNotEmpty is returned when Copy would mix two logs together.
var ErrDestinationNotEmpty = errors.New("destination log is not empty")

// CopyResult reports what Copy transferred (or would transfer on a dry run).
type CopyResult struct {
	Settings bool
	Entries  int
}

// Copy transfers the settings record and the whole log from src to dst in one
// transaction on dst. Entries keep their order. dst must have an empty log.
func Copy(src, dst *Database, dryRun bool) (*CopyResult, error) {
	settings, err := src.LoadSettings()
	if err != nil && !errors.Is(err, ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to read source settings: %w", err)
	}
	entries, err := src.Entries()
	if err != nil {
		return nil, fmt.Errorf("failed to read source log: %w", err)
	}

	last, err := dst.LoadLastEntry()
	if err != nil {
		return nil, fmt.Errorf("failed to read destination log: %w", err)
	}
	if last != nil {
		return nil, ErrDestinationNotEmpty
	}

	result := &CopyResult{Settings: settings != nil, Entries: len(entries)}
	if dryRun {
		return result, nil
	}

	err = dst.withTx(func(tx *sql.Tx) error {
		if settings != nil {
			if err := dst.saveSettings(tx, settings); err != nil {
				return err
			}
		}
		for _, e := range entries {
			if err := dst.insertEntry(tx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Copied database",
		"from", src.dialect.DriverName(),
		"to", dst.dialect.DriverName(),
		"entries", result.Entries,
		"settings", result.Settings,
		"event", "database_copy")
	return result, nil
}
