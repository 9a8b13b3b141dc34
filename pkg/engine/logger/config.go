package logger

import (
	"os"
	"strconv"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// DefaultConfig logs to a rotated file only; the console belongs to the game.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: false,
		FileEnabled:    true,
		FilePath:       "tangrin.log",
		FileMaxSizeMB:  5,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// WithDefaults fills zero values from DefaultConfig
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Level == "" {
		c.Level = d.Level
	}
	if c.FilePath == "" {
		c.FilePath = d.FilePath
	}
	if c.FileMaxSizeMB <= 0 {
		c.FileMaxSizeMB = d.FileMaxSizeMB
	}
	if c.FileMaxBackups <= 0 {
		c.FileMaxBackups = d.FileMaxBackups
	}
	if c.FileMaxAgeDays <= 0 {
		c.FileMaxAgeDays = d.FileMaxAgeDays
	}
	return c
}

// ApplyEnv applies TANGRIN_LOG_* environment variable overrides
func (c Config) ApplyEnv() Config {
	if logLevel := os.Getenv("TANGRIN_LOG_LEVEL"); logLevel != "" {
		c.Level = logLevel
	}

	if consoleEnabled := os.Getenv("TANGRIN_LOG_CONSOLE"); consoleEnabled != "" {
		if enabled, err := strconv.ParseBool(consoleEnabled); err == nil {
			c.ConsoleEnabled = enabled
		}
	}

	if fileEnabled := os.Getenv("TANGRIN_LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			c.FileEnabled = enabled
		}
	}

	if filePath := os.Getenv("TANGRIN_LOG_FILE"); filePath != "" {
		c.FilePath = filePath
	}

	return c
}
