// Package config loads settings for the lrucache command from an optional
// TOML file, a .env file and the process environment, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when the file or environment cannot be decoded.
	ErrParsingConfig = errors.New("failed to parse configuration")

	// ErrInvalidConfig is returned when a loaded value is out of range.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config drives the demo and load run of the lrucache command.
type Config struct {
	Capacity  int    `toml:"capacity" env:"LRU_CAPACITY"`
	Shards    int    `toml:"shards" env:"LRU_SHARDS"`
	Workers   int    `toml:"workers" env:"LRU_WORKERS"`
	Keys      int    `toml:"keys" env:"LRU_KEYS"`
	Ops       int    `toml:"ops" env:"LRU_OPS"`
	LogLevel  string `toml:"log_level" env:"LRU_LOG_LEVEL"`
	LogFormat string `toml:"log_format" env:"LRU_LOG_FORMAT"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Capacity:  1024,
		Shards:    8,
		Workers:   8,
		Keys:      4096,
		Ops:       10000,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds a Config from the defaults, then the TOML file at path (skipped
// when path is empty), then a .env file in the working directory if present,
// then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, errors.Join(ErrParsingConfig, err)
		}
	}

	// The .env file is optional.
	_ = godotenv.Load()

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every numeric setting is positive and the log
// settings are known.
func (c Config) Validate() error {
	for name, v := range map[string]int{
		"capacity": c.Capacity,
		"shards":   c.Shards,
		"workers":  c.Workers,
		"keys":     c.Keys,
		"ops":      c.Ops,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, name, v)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q must be text or json", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}
