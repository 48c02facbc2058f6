// Package config holds the tunables for dungeon generation and play sessions.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/sirupsen/logrus"

	"dungeoncrawl/pkg/game/generator"
	"dungeoncrawl/pkg/game/session"
)

// Config holds generation, session and logging settings, loaded from JSON
type Config struct {
	Generation generator.Options `json:"generation"`
	Session    session.Options   `json:"session"`
	LogLevel   string            `json:"log_level"`
}

// Default returns the standard 100x60 dungeon with three collectibles and three lives
func Default() Config {
	return Config{
		Generation: generator.DefaultOptions(),
		Session:    session.DefaultOptions(),
		LogLevel:   "info",
	}
}

// Load reads a JSON file over the defaults and validates the result.
// Fields missing from the file keep their default value.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("validating config %q: %w", path, err)
	}
	return c, nil
}

// Validate checks every section and reports all problems at once
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if err := c.Generation.Validate(); err != nil {
		el.Add(fmt.Errorf("generation: %w", err))
	}
	if err := c.Session.Validate(); err != nil {
		el.Add(fmt.Errorf("session: %w", err))
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			el.Add(fmt.Errorf("parsing log_level: %w", err))
		}
	}

	return el.Err()
}

// Level returns the configured log level, defaulting to info
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
