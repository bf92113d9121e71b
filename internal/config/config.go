package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// DefaultCount is the number of entries kept when no count is given.
const DefaultCount = 6

// ErrInvalidCount is returned when the entry count is not a non-negative integer.
var ErrInvalidCount = errors.New("count must be a non-negative integer")

type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger"`
	History HistoryConfig `mapstructure:"history"`
}

type LoggerConfig struct {
	Level       string   `mapstructure:"level"`
	Format      string   `mapstructure:"format"`
	OutputPaths []string `mapstructure:"output_paths"`
}

// HistoryConfig controls where the recent list lives and how it is rewritten.
type HistoryConfig struct {
	// Count is the maximum number of retained entries, including the new item.
	Count int `mapstructure:"count"`
	// File is the history file path. Empty means the default in $HOME.
	File     string `mapstructure:"file"`
	NoOutput bool   `mapstructure:"no_output"`
	// Atomic writes through a temp file and rename instead of truncating in place.
	Atomic bool `mapstructure:"atomic"`
}

func DefaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level:       "error",
			Format:      "console",
			OutputPaths: []string{"stderr"},
		},
		History: HistoryConfig{
			Count: DefaultCount,
		},
	}
}

// Validate checks the values that cannot be caught by flag parsing.
func (c *Config) Validate() error {
	if c.History.Count < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, c.History.Count)
	}
	if _, err := zapcore.ParseLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logger.Level, err)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.Logger.Format)
	}
	return nil
}

// MaxEntries is the effective cap handed to the loader. The new item is always
// kept, so a count of zero behaves like one.
func (h HistoryConfig) MaxEntries() int {
	if h.Count < 1 {
		return 1
	}
	return h.Count
}
