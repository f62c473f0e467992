package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Mode       string // source name, e.g. "examples" or "input"
	ConfigPath string // optional .hcl file or directory
	DataDir    string
	Day        int

	Strategy string
	Output   string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Mode == "" {
		return nil, errors.New("Mode is a required configuration field and cannot be empty")
	}
	if cfg.Day < 1 || cfg.Day > 25 {
		return nil, fmt.Errorf("Day must be between 1 and 25, got %d", cfg.Day)
	}
	if cfg.Strategy == "" {
		return nil, errors.New("Strategy is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		return nil, errors.New("Output is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
