package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/sloth/internal/database"
)

// Environment variables
const (
	EnvHome             = "SLOTH_HOME"
	EnvConfig           = "SLOTH_CONFIG"
	EnvPostgresPassword = "SLOTH_POSTGRES_PASSWORD"
)

// AppConfig holds application-wide configuration settings.
// Relative paths are resolved against DataDir.
type AppConfig struct {
	// DataDir holds the database, logs and optional data files.
	DataDir string `yaml:"data_dir"`

	Database DatabaseConfig `yaml:"database"`

	// LoggingConfig is the path to a logging YAML file.
	LoggingConfig string `yaml:"logging_config"`

	// LogFile is where the rotating log is written.
	LogFile string `yaml:"log_file"`

	// CatalogPath is the workout catalog YAML. Missing file means built-in catalog.
	CatalogPath string `yaml:"catalog_path"`

	// TextPath overrides user-facing messages. Missing file means built-in text.
	TextPath string `yaml:"text_path"`
}

// DatabaseConfig selects and configures the storage backend.
type DatabaseConfig struct {
	// Driver is "sqlite" (default) or "postgres".
	Driver     string         `yaml:"driver"`
	SQLitePath string         `yaml:"sqlite_path"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host                   string `yaml:"host"`
	Port                   int    `yaml:"port"`
	User                   string `yaml:"user"`
	Password               string `yaml:"password"`
	Database               string `yaml:"database"`
	SSLMode                string `yaml:"ssl_mode"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeSeconds int    `yaml:"conn_max_lifetime_seconds"`
}

// DefaultConfig returns an AppConfig rooted at dataDir.
func DefaultConfig(dataDir string) *AppConfig {
	pg := database.DefaultPostgresConfig()
	return &AppConfig{
		DataDir: dataDir,
		Database: DatabaseConfig{
			Driver:     string(database.DialectSQLite),
			SQLitePath: "sloth.db",
			Postgres: PostgresConfig{
				Host:                   pg.Host,
				Port:                   pg.Port,
				User:                   "sloth",
				Database:               "sloth",
				SSLMode:                pg.SSLMode,
				MaxOpenConns:           pg.MaxOpenConns,
				MaxIdleConns:           pg.MaxIdleConns,
				ConnMaxLifetimeSeconds: int(pg.ConnMaxLifetime / time.Second),
			},
		},
		LoggingConfig: "logging.yaml",
		LogFile:       filepath.Join("logs", "sloth.log"),
		CatalogPath:   "workouts.yaml",
		TextPath:      "text.yaml",
	}
}

// DefaultDataDir returns $SLOTH_HOME, or ~/.sloth.
func DefaultDataDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sloth"), nil
}

// ResolvePath returns $SLOTH_CONFIG, or config.yaml inside dataDir.
func ResolvePath(dataDir string) string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	return filepath.Join(dataDir, "config.yaml")
}

// LoadConfig loads configuration from a YAML file on top of the defaults for dataDir.
// If the file doesn't exist, returns the defaults.
func LoadConfig(path, dataDir string) (*AppConfig, error) {
	config := DefaultConfig(dataDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			config.resolvePaths()
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		config = DefaultConfig(dataDir)
		config.resolvePaths()
		return config, err
	}

	if password := os.Getenv(EnvPostgresPassword); password != "" {
		config.Database.Postgres.Password = password
	}

	config.resolvePaths()
	return config, nil
}

func (c *AppConfig) resolvePaths() {
	c.Database.SQLitePath = c.resolve(c.Database.SQLitePath)
	c.LoggingConfig = c.resolve(c.LoggingConfig)
	c.LogFile = c.resolve(c.LogFile)
	c.CatalogPath = c.resolve(c.CatalogPath)
	c.TextPath = c.resolve(c.TextPath)
}

func (c *AppConfig) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.DataDir, path)
}

// DatabaseConfig converts the YAML settings into a database.Config.
func (c *AppConfig) DatabaseConfig() database.Config {
	pg := c.Database.Postgres
	return database.Config{
		Driver:     c.Database.Driver,
		SQLitePath: c.Database.SQLitePath,
		Postgres: database.PostgresConfig{
			Host:            pg.Host,
			Port:            pg.Port,
			User:            pg.User,
			Password:        pg.Password,
			Database:        pg.Database,
			SSLMode:         pg.SSLMode,
			MaxOpenConns:    pg.MaxOpenConns,
			MaxIdleConns:    pg.MaxIdleConns,
			ConnMaxLifetime: time.Duration(pg.ConnMaxLifetimeSeconds) * time.Second,
		},
	}
}
