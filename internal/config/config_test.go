package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerConfig(t *testing.T) {
	config := LoggerConfig{
		Level:       "debug",
		Format:      "json",
		OutputPaths: []string{"stderr"},
	}

	assert.Equal(t, "debug", config.Level)
	assert.Equal(t, "json", config.Format)
	assert.Contains(t, config.OutputPaths, "stderr")
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "error", config.Logger.Level)
	assert.Equal(t, "console", config.Logger.Format)
	assert.Equal(t, []string{"stderr"}, config.Logger.OutputPaths)
	assert.Equal(t, DefaultCount, config.History.Count)
	assert.Empty(t, config.History.File)
	assert.False(t, config.History.NoOutput)
	assert.False(t, config.History.Atomic)
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		isCount bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "zero count", mutate: func(c *Config) { c.History.Count = 0 }},
		{name: "negative count", mutate: func(c *Config) { c.History.Count = -1 }, wantErr: true, isCount: true},
		{name: "bad level", mutate: func(c *Config) { c.Logger.Level = "loud" }, wantErr: true},
		{name: "json format", mutate: func(c *Config) { c.Logger.Format = "json" }},
		{name: "bad format", mutate: func(c *Config) { c.Logger.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.isCount, errors.Is(err, ErrInvalidCount))
		})
	}
}

func TestMaxEntries(t *testing.T) {
	assert.Equal(t, 1, HistoryConfig{Count: 0}.MaxEntries())
	assert.Equal(t, 1, HistoryConfig{Count: 1}.MaxEntries())
	assert.Equal(t, 6, HistoryConfig{Count: 6}.MaxEntries())
}
