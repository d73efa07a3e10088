// Package config loads the settings for the carmaint tools.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DefaultDataFile   = "CarMaintenance.dat"
	DefaultBackupFile = "CarMaintenance.bak"
)

// Config holds the file locations and logging settings.
type Config struct {
	DataFile   string `toml:"data_file"`   // primary snapshot, read at start and written on exit
	BackupFile string `toml:"backup_file"` // written by backup, read by restore
	LogLevel   string `toml:"log_level"`
	LogFormat  string `toml:"log_format"` // "text" or "json"
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		DataFile:   DefaultDataFile,
		BackupFile: DefaultBackupFile,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load builds the configuration from defaults, the TOML file at path (if
// path is not empty), a .env file in the working directory (if present) and
// CARMAINT_* environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a TOML file over the current values.
func (c *Config) LoadFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides values from CARMAINT_DATA_FILE, CARMAINT_BACKUP_FILE,
// CARMAINT_LOG_LEVEL and CARMAINT_LOG_FORMAT.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CARMAINT_DATA_FILE"); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv("CARMAINT_BACKUP_FILE"); v != "" {
		c.BackupFile = v
	}
	if v := os.Getenv("CARMAINT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CARMAINT_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return errors.New("data file must be set")
	}
	if c.BackupFile == "" {
		return errors.New("backup file must be set")
	}
	if c.DataFile == c.BackupFile {
		return fmt.Errorf("data file and backup file must differ, both are %q", c.DataFile)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be \"text\" or \"json\", got %q", c.LogFormat)
	}
	return nil
}
