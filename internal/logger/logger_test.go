package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseLogLevel(tt.input)
			if result != tt.expected {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	defaults := DefaultConfig("logs/sloth.log")
	config, err := LoadConfig("nonexistent.yaml", defaults)
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}

	if config.Level != "INFO" {
		t.Errorf("Default level = %q, want %q", config.Level, "INFO")
	}
	if config.ConsoleEnabled {
		t.Error("Default ConsoleEnabled = true, want false")
	}
	if !config.FileEnabled {
		t.Error("Default FileEnabled = false, want true")
	}
	if config.FilePath != "logs/sloth.log" {
		t.Errorf("Default FilePath = %q, want %q", config.FilePath, "logs/sloth.log")
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	yamlContent := `logging:
  level: DEBUG
  console_enabled: true
  console_format: json
  file_path: test.log
  file_max_size_mb: 20
`
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(path, DefaultConfig("logs/sloth.log"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Level != "DEBUG" {
		t.Errorf("Level = %q, want %q", config.Level, "DEBUG")
	}
	if !config.ConsoleEnabled {
		t.Error("ConsoleEnabled = false, want true")
	}
	if config.ConsoleFormat != "json" {
		t.Errorf("ConsoleFormat = %q, want %q", config.ConsoleFormat, "json")
	}
	// Omitted booleans keep their defaults
	if !config.FileEnabled {
		t.Error("FileEnabled = false, want default true")
	}
	if config.FilePath != "test.log" {
		t.Errorf("FilePath = %q, want %q", config.FilePath, "test.log")
	}
	if config.FileMaxSizeMB != 20 {
		t.Errorf("FileMaxSizeMB = %d, want %d", config.FileMaxSizeMB, 20)
	}
	if config.FileMaxBackups != 3 {
		t.Errorf("FileMaxBackups = %d, want default 3", config.FileMaxBackups)
	}
}

func TestEnvVarOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("LOG_CONSOLE_FORMAT", "json")
	t.Setenv("LOG_CONSOLE_ENABLED", "true")
	t.Setenv("LOG_FILE_ENABLED", "false")
	t.Setenv("LOG_FILE_PATH", "/custom/path.log")

	config, err := LoadConfig("", DefaultConfig("logs/sloth.log"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Level != "ERROR" {
		t.Errorf("Level = %q, want %q (from env var)", config.Level, "ERROR")
	}
	if config.ConsoleFormat != "json" {
		t.Errorf("ConsoleFormat = %q, want %q (from env var)", config.ConsoleFormat, "json")
	}
	if !config.ConsoleEnabled {
		t.Error("ConsoleEnabled = false, want true (from env var)")
	}
	if config.FileEnabled {
		t.Error("FileEnabled = true, want false (from env var)")
	}
	if config.FilePath != "/custom/path.log" {
		t.Errorf("FilePath = %q, want %q (from env var)", config.FilePath, "/custom/path.log")
	}
}

func TestInitializeWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sloth.log")
	config := DefaultConfig(path)
	config.FileFormat = "json"

	if err := Initialize(config); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	Info("Workout logged", "exercise", "Cardio", "total", 42)
	Debug("should be filtered")
	if err := Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	output := string(data)
	if !strings.Contains(output, `"msg":"Workout logged"`) {
		t.Errorf("log file missing message: %s", output)
	}
	if !strings.Contains(output, `"total":42`) {
		t.Errorf("log file missing structured field: %s", output)
	}
	if strings.Contains(output, "should be filtered") {
		t.Errorf("log file contains DEBUG message at INFO level: %s", output)
	}
}

func TestInitializeWithNoHandlersDiscards(t *testing.T) {
	config := DefaultConfig("")
	config.FileEnabled = false

	if err := Initialize(config); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	// Must not panic or write anywhere
	Info("discarded")
}

func TestAlwaysBypassesLogLevel(t *testing.T) {
	var buf bytes.Buffer

	logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level:       slog.LevelError,
		ReplaceAttr: replaceLevel,
	}))

	Info("Info message")
	Warning("Warning")
	Error("Error message")
	Always("Always message")

	output := buf.String()

	if strings.Contains(output, "Info message") {
		t.Error("INFO appeared when level is ERROR")
	}
	if strings.Contains(output, "Warning") {
		t.Error("WARNING appeared when level is ERROR")
	}
	if !strings.Contains(output, "Error message") {
		t.Error("ERROR message missing from output")
	}
	if !strings.Contains(output, "Always message") {
		t.Error("ALWAYS message missing from output")
	}
	if !strings.Contains(output, "level=ALWAYS") {
		t.Error("ALWAYS level not formatted correctly")
	}
}

func TestMultiHandler(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	handler1 := slog.NewTextHandler(&buf1, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler2 := slog.NewTextHandler(&buf2, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger = slog.New(newMultiHandler(handler1, handler2))

	Info("info only", "field", "value")
	Warning("both")

	if !strings.Contains(buf1.String(), "info only") || !strings.Contains(buf1.String(), "field=value") {
		t.Errorf("first handler output incorrect: %s", buf1.String())
	}
	if strings.Contains(buf2.String(), "info only") {
		t.Error("second handler received a message below its level")
	}
	if !strings.Contains(buf2.String(), "both") {
		t.Error("second handler did not receive warning")
	}
}

func TestNilLogger(t *testing.T) {
	logger = nil

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logging with nil logger caused panic: %v", r)
		}
	}()

	Debug("debug")
	Info("info")
	Warning("warning")
	Error("error")
	Always("always")
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	if err := os.WriteFile(path, []byte("logging: [level: DEBUG"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("LOG_LEVEL", "")

	config, err := LoadConfig(path, DefaultConfig("logs/sloth.log"))
	if err == nil {
		t.Fatal("expected an error for unparsable logging config")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the file", err)
	}
	// Defaults remain usable
	if config.Level != "INFO" || !config.FileEnabled {
		t.Errorf("expected defaults alongside the error, got %+v", config)
	}
}

func TestLoadConfigUnreadablePath(t *testing.T) {
	// A directory cannot be read as a file
	_, err := LoadConfig(t.TempDir(), DefaultConfig("logs/sloth.log"))
	if err == nil {
		t.Error("expected an error when the config path is a directory")
	}
}
