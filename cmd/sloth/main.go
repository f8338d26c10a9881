package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lawnchairsociety/sloth/internal/clock"
	"github.com/lawnchairsociety/sloth/internal/config"
	"github.com/lawnchairsociety/sloth/internal/console"
	"github.com/lawnchairsociety/sloth/internal/creation"
	"github.com/lawnchairsociety/sloth/internal/database"
	"github.com/lawnchairsociety/sloth/internal/logger"
	"github.com/lawnchairsociety/sloth/internal/session"
	"github.com/lawnchairsociety/sloth/internal/text"
	"github.com/lawnchairsociety/sloth/internal/workout"
)

func main() {
	err := run()
	if err != nil {
		logger.Error("Exiting with error", "error", err)
	}
	logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sloth: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir, err := config.DefaultDataDir()
	if err != nil {
		return fmt.Errorf("failed to locate data directory: %w", err)
	}

	cfg, err := config.LoadConfig(config.ResolvePath(dataDir), dataDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger first (before any logging)
	logConfig, logConfigErr := logger.LoadConfig(cfg.LoggingConfig, logger.DefaultConfig(cfg.LogFile))
	if err := logger.Initialize(logConfig); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if logConfigErr != nil {
		fmt.Fprintf(os.Stderr, "sloth: using default logging: %v\n", logConfigErr)
		logger.Warning("Using default logging config", "path", cfg.LoggingConfig, "error", logConfigErr)
	}
	logger.Info("Starting sloth", "data_dir", cfg.DataDir, "driver", cfg.Database.Driver)

	db, err := database.OpenWithConfig(cfg.DatabaseConfig())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Handle interrupt for clean exit
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Received signal, exiting", "signal", sig.String())
		db.Close()
		logger.Close()
		fmt.Fprintln(os.Stdout)
		os.Exit(130)
	}()

	catalog, err := workout.LoadCatalogOrDefault(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load workouts: %w", err)
	}
	txt, err := text.LoadOrDefault(cfg.TextPath)
	if err != nil {
		return fmt.Errorf("failed to load text: %w", err)
	}

	prompter := console.NewPrompter(console.NewStdioClient(os.Stdin, os.Stdout))

	exists, err := db.SettingsExist()
	if err != nil {
		return err
	}
	if !exists {
		logger.Info("No settings found, starting first-run questions")
		_, err = creation.NewQuestionnaire(prompter, db, txt).Run()
		return ignoreEOF(err)
	}

	settings, err := db.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	return ignoreEOF(session.New(db, catalog, prompter, txt, clock.SystemClock{}).Run(settings))
}

// ignoreEOF treats closed input as a normal exit.
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
