package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Config mirrors the command-line flags. Values from a JSON config file are
// applied first; flags given explicitly on the command line win.
type Config struct {
	Match      int64         `json:"match"`
	Mismatch   int64         `json:"mismatch"`
	Gap        int64         `json:"gap"`
	Strategy   string        `json:"strategy"`
	Workers    int           `json:"workers"`
	MaxCells   int           `json:"max_cells"`
	SkipFailed bool          `json:"skip_failed"`
	Timeout    time.Duration `json:"-"`
	TimeoutStr string        `json:"timeout"`
	LogLevel   string        `json:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Match:    1,
		Mismatch: -1,
		Gap:      -1,
		Strategy: "sweep",
		LogLevel: "info",
	}
}

// loadConfig overlays the JSON file at path onto c. Missing keys keep
// their current values.
func loadConfig(path string, c *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if c.TimeoutStr != "" {
		if c.Timeout, err = time.ParseDuration(c.TimeoutStr); err != nil {
			return fmt.Errorf("config %s: timeout: %w", path, err)
		}
	}
	if c.Timeout < 0 {
		return errors.New("config: timeout must be >= 0")
	}

	return nil
}
