package database

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lawnchairsociety/sloth/internal/profile"
	"github.com/lawnchairsociety/sloth/internal/stats"
)

func testSettings() *profile.Settings {
	return &profile.Settings{
		Name:          "Alex",
		Birthdate:     "1990-06-15",
		Sex:           "M",
		MeasuringType: profile.Metric,
		Height:        1.8,
		Weight:        22.68,
		Goal:          profile.GoalCardio,
		Stats:         stats.NewAllocation(5, 3, 4, 6, 2, 6),
		XP:            0,
	}
}

func TestLoadSettingsNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.LoadSettings()
	if !errors.Is(err, ErrSettingsNotFound) {
		t.Errorf("LoadSettings() = %v, want ErrSettingsNotFound", err)
	}

	exists, err := db.SettingsExist()
	if err != nil {
		t.Fatalf("SettingsExist failed: %v", err)
	}
	if exists {
		t.Error("SettingsExist() = true on a new database")
	}
}

func TestCommitAndLoadSettings(t *testing.T) {
	db := setupTestDB(t)
	want := testSettings()

	if err := db.CommitSettings(want); err != nil {
		t.Fatalf("CommitSettings failed: %v", err)
	}

	got, err := db.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}

	exists, err := db.SettingsExist()
	if err != nil || !exists {
		t.Errorf("SettingsExist() = %v, %v; want true, nil", exists, err)
	}
}

func TestCommitSettingsOverwrites(t *testing.T) {
	db := setupTestDB(t)
	s := testSettings()

	if err := db.CommitSettings(s); err != nil {
		t.Fatalf("CommitSettings failed: %v", err)
	}

	s.XP = 1234
	s.Weight = 80.5
	if err := db.CommitSettings(s); err != nil {
		t.Fatalf("second CommitSettings failed: %v", err)
	}

	got, err := db.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got.XP != 1234 || got.Weight != 80.5 {
		t.Errorf("got XP=%d Weight=%v, want 1234 and 80.5", got.XP, got.Weight)
	}

	var rows int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM settings").Scan(&rows); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("settings table has %d rows, want 1", rows)
	}
}
