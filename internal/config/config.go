// Package config resolves the planner's runtime settings. Values come from
// an optional YAML file, then PLANNER_* environment variables, then command
// line flags; later sources win. The storage locations are always threaded
// through here, never read from globals.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Storage backend kinds.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the runtime configuration for the planner.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// DataDir is the storage root for the file backend and the location of
	// the database file for the sqlite backend.
	DataDir string `yaml:"data_dir"`
	// ExportDir is where board reports are written.
	ExportDir string `yaml:"export_dir"`
	// Backend selects the durable medium: "file" or "sqlite".
	Backend string `yaml:"backend"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Addr:      ":8080",
		DataDir:   "db",
		ExportDir: "out",
		Backend:   BackendFile,
		LogLevel:  "info",
	}
}

// Load builds the configuration from the YAML file at path (skipped when
// path is empty or the file does not exist) and environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing config file is fine; defaults apply.
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	applyEnv(&cfg.Addr, "PLANNER_ADDR")
	applyEnv(&cfg.DataDir, "PLANNER_DATA_DIR")
	applyEnv(&cfg.ExportDir, "PLANNER_EXPORT_DIR")
	applyEnv(&cfg.Backend, "PLANNER_BACKEND")
	applyEnv(&cfg.LogLevel, "PLANNER_LOG_LEVEL")

	if cfg.Backend != BackendFile && cfg.Backend != BackendSQLite {
		return Config{}, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	return cfg, nil
}

func applyEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// SlogLevel maps the configured log level to its slog value.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
