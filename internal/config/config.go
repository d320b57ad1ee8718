package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

type Log struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode   string `json:"mode"`
	Seed   uint64 `json:"seed"`
	Styled bool   `json:"styled"`
	Log    Log    `json:"log"`
}

func Default() Config {
	return Config{
		Mode: ModeProduction,
		Log: Log{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Read merges the JSON file at path into config.
func Read(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// ApplyEnv overrides config with the MINESWEEPER_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if mode, ok := lookup("MINESWEEPER_MODE"); ok {
		c.Mode = mode
	}

	if seedStr, ok := lookup("MINESWEEPER_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to parse MINESWEEPER_SEED env variable: %w", err)
		}
		c.Seed = seed
	}

	if styledStr, ok := lookup("MINESWEEPER_STYLED"); ok {
		c.Styled = styledStr != "0"
	}

	if logFile, ok := lookup("MINESWEEPER_LOG_FILE"); ok {
		c.Log.File = logFile
	}

	return nil
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"seed":             c.Seed,
		"styled":           c.Styled,
		"log_file":         c.Log.File,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
	}
}
