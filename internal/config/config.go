package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	Storage     StorageConfig
	Session     SessionConfig
	Categories  CategoriesConfig
	Logger      LoggerConfig
}

type StorageConfig struct {
	Path   string
	Bucket string
}

type SessionConfig struct {
	// AutoRestore controls whether a persisted session snapshot is loaded
	// at startup.
	AutoRestore bool
}

type CategoriesConfig struct {
	// Path points at an optional TOML file overriding category display
	// settings. Empty means built-in defaults only.
	Path string
}

type LoggerConfig struct {
	Level    string
	Encoding string
	// Path is the log file; logging to the terminal would fight the TUI
	// for the screen. Empty falls back to stderr.
	Path string
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the app can run with no setup at all.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "undo"),
		Environment: getString("APP_ENV", "development"),
		Storage: StorageConfig{
			Path:   getString("UNDO_DATA_PATH", "./data/undo.db"),
			Bucket: getString("UNDO_BUCKET", "undo"),
		},
		Session: SessionConfig{
			AutoRestore: getBool("UNDO_AUTO_RESTORE", true),
		},
		Categories: CategoriesConfig{
			Path: os.Getenv("UNDO_CATEGORIES_PATH"),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "console"),
			Path:     getString("LOG_PATH", "./data/undo.log"),
		},
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}
