package x_log

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//
// ---------- Defaults ----------

const defaultConfigPath = "./xlog.json"

var defaultConfig = Config{
	Level:      "info",
	LogFile:    "logs/ptrie.log",
	ToConsole:  true,
	ToFile:     false,
	NoColor:    false,
	Style:      "dark",
	MaxSize:    10, // MB
	MaxBackups: 5,  // rotated files
	MaxAge:     7,  // days
	Compress:   true,
}

// DefaultConfig returns a copy of the built-in configuration.
func DefaultConfig() Config {
	return defaultConfig
}

//
// ---------- LoadConfig ----------

// LoadConfig reads a JSON logger config. An empty path means XLOG_CONFIG,
// then ./xlog.json. A missing file yields the defaults; fields absent from
// the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = cmp.Or(os.Getenv("XLOG_CONFIG"), defaultConfigPath)
	}

	cfg := defaultConfig
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
	}
	cfg.normalize()
	return &cfg, nil
}

//
// ---------- Normalize ----------

// normalize restores defaults for blank names and non-positive rotation limits.
func (c *Config) normalize() {
	c.Level = cmp.Or(c.Level, defaultConfig.Level)
	c.LogFile = cmp.Or(c.LogFile, defaultConfig.LogFile)
	c.Style = cmp.Or(c.Style, defaultConfig.Style)
	c.MaxSize = positiveOr(c.MaxSize, defaultConfig.MaxSize)
	c.MaxBackups = positiveOr(c.MaxBackups, defaultConfig.MaxBackups)
	c.MaxAge = positiveOr(c.MaxAge, defaultConfig.MaxAge)
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
