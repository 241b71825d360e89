package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/drug-wars/internal/game"
	"github.com/appengine-ltd/drug-wars/internal/session"
)

// Config holds everything tunable about a session. Every field has a default,
// so an empty or missing file yields a playable game.
type Config struct {
	Keys   session.Bindings `yaml:"keys"`
	Prices game.PriceRange  `yaml:"prices"`
	// Seed fixes the price sequence; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
	Log  struct {
		Path  string `yaml:"path"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func Default() *Config {
	cfg := &Config{
		Keys:   session.DefaultBindings(),
		Prices: game.DefaultPriceRange(),
	}
	cfg.Log.Level = "info"
	return cfg
}

// Load reads YAML from path over the defaults. An empty path or a missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Keys.Validate(); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	if err := c.Prices.Validate(); err != nil {
		return fmt.Errorf("prices: %w", err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}
