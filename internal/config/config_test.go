package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/drug-wars/internal/game"
	"github.com/appengine-ltd/drug-wars/internal/session"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drug-wars.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadWithoutPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Keys != session.DefaultBindings() {
		t.Fatalf("unexpected keys %+v", cfg.Keys)
	}
	if cfg.Prices != game.DefaultPriceRange() {
		t.Fatalf("unexpected prices %+v", cfg.Prices)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Prices != game.DefaultPriceRange() {
		t.Fatalf("unexpected prices %+v", cfg.Prices)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := writeConfig(t, `
keys:
  buy: "p"
prices:
  max: 3000
seed: 42
log:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Keys.Buy != "p" || cfg.Keys.Sell != "s" {
		t.Fatalf("expected buy override with sell default, got %+v", cfg.Keys)
	}
	if cfg.Prices.Min != game.DefaultMinPrice || cfg.Prices.Max != 3000 {
		t.Fatalf("unexpected prices %+v", cfg.Prices)
	}
	if cfg.Seed != 42 || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected seed/log %d/%q", cfg.Seed, cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "prices: [1, 2\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "inverted prices", mutate: func(c *Config) { c.Prices = game.PriceRange{Min: 10, Max: 1} }},
		{name: "duplicate key", mutate: func(c *Config) { c.Keys.Quit = c.Keys.Buy }},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
