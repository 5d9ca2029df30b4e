package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Config holds the generation defaults the CLI falls back to when the
// corresponding flags are not given.
type Config struct {
	Order     int    `json:"order"`
	Sentences int    `json:"sentences"`
	MinWords  int    `json:"min_words"`
	MaxWords  int    `json:"max_words"`
	LogLevel  string `json:"log_level"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Order:     2,
		Sentences: 1,
		MinWords:  1,
		MaxWords:  100,
		LogLevel:  "info",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = os.MkdirAll(filepath.Dir(path), 0755); err == nil {
				err = atomic.WriteFile(path, bytes.NewReader(data))
			}
			if err != nil {
				// Warn instead of failing, the command can still run with defaults.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		// For other errors (e.g., permission denied), return the error.
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func defaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(base, "vokram", "config.json")
}
