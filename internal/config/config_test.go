package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/data")

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected sqlite driver by default, got %q", cfg.Database.Driver)
	}
	if cfg.Database.Postgres.Port != 5432 {
		t.Errorf("expected postgres port 5432, got %d", cfg.Database.Postgres.Port)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	dataDir := t.TempDir()
	cfg, err := LoadConfig(filepath.Join(dataDir, "missing.yaml"), dataDir)

	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config for missing file, got nil")
	}

	if cfg.Database.SQLitePath != filepath.Join(dataDir, "sloth.db") {
		t.Errorf("SQLitePath = %q, expected it under the data dir", cfg.Database.SQLitePath)
	}
	if cfg.LogFile != filepath.Join(dataDir, "logs", "sloth.log") {
		t.Errorf("LogFile = %q, expected it under the data dir", cfg.LogFile)
	}
	if cfg.CatalogPath != filepath.Join(dataDir, "workouts.yaml") {
		t.Errorf("CatalogPath = %q, expected it under the data dir", cfg.CatalogPath)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dataDir := t.TempDir()
	configPath := filepath.Join(dataDir, "config.yaml")

	content := `
database:
  driver: postgres
  postgres:
    host: db.example.com
    port: 6543
    user: lifter
    database: gains
    conn_max_lifetime_seconds: 60
catalog_path: /etc/sloth/workouts.yaml
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(configPath, dataDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.Driver != "postgres" {
		t.Errorf("Driver = %q, expected postgres", cfg.Database.Driver)
	}
	if cfg.CatalogPath != "/etc/sloth/workouts.yaml" {
		t.Errorf("absolute CatalogPath was rewritten to %q", cfg.CatalogPath)
	}
	// Unset fields keep defaults
	if cfg.TextPath != filepath.Join(dataDir, "text.yaml") {
		t.Errorf("TextPath = %q, expected default", cfg.TextPath)
	}

	dbCfg := cfg.DatabaseConfig()
	if dbCfg.Postgres.Host != "db.example.com" || dbCfg.Postgres.Port != 6543 {
		t.Errorf("unexpected postgres host/port: %+v", dbCfg.Postgres)
	}
	if dbCfg.Postgres.User != "lifter" || dbCfg.Postgres.Database != "gains" {
		t.Errorf("unexpected postgres user/database: %+v", dbCfg.Postgres)
	}
	if dbCfg.Postgres.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, expected default disable", dbCfg.Postgres.SSLMode)
	}
	if dbCfg.Postgres.ConnMaxLifetime != time.Minute {
		t.Errorf("ConnMaxLifetime = %v, expected 1m", dbCfg.Postgres.ConnMaxLifetime)
	}
}

func TestLoadConfig_PasswordFromEnv(t *testing.T) {
	dataDir := t.TempDir()
	configPath := filepath.Join(dataDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("database:\n  driver: postgres\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(EnvPostgresPassword, "hunter2")

	cfg, err := LoadConfig(configPath, dataDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Postgres.Password != "hunter2" {
		t.Errorf("Password = %q, expected value from env", cfg.Database.Postgres.Password)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dataDir := t.TempDir()
	configPath := filepath.Join(dataDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("database: [not: valid"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(configPath, dataDir)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
	if cfg == nil || cfg.Database.Driver != "sqlite" {
		t.Errorf("expected defaults alongside the error, got %+v", cfg)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfig, "")
	if got := ResolvePath("/data"); got != filepath.Join("/data", "config.yaml") {
		t.Errorf("ResolvePath = %q", got)
	}

	t.Setenv(EnvConfig, "/custom/sloth.yaml")
	if got := ResolvePath("/data"); got != "/custom/sloth.yaml" {
		t.Errorf("ResolvePath with env = %q", got)
	}
}

func TestDefaultDataDir(t *testing.T) {
	t.Setenv(EnvHome, "/srv/sloth")
	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/srv/sloth" {
		t.Errorf("DefaultDataDir = %q, expected %q", dir, "/srv/sloth")
	}
}
