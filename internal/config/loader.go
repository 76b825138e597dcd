package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MELEE_CONFIG is set
//  3. env (prefix MELEE_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("MELEE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: MELEE_ADDR, MELEE_SIMULATION_RUNS, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("MELEE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "melee_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the core cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.RosterPath == "":
		return fmt.Errorf("%w: roster_path must not be empty", ErrInvalidConfig)
	case c.DrawWeight < 0 || c.DrawWeight > 1:
		return fmt.Errorf("%w: draw_weight must be in [0,1]", ErrInvalidConfig)
	case c.Smoothing < 0:
		return fmt.Errorf("%w: smoothing must be non-negative", ErrInvalidConfig)
	case c.ReliabilityConstant <= 0:
		return fmt.Errorf("%w: reliability_constant must be positive", ErrInvalidConfig)
	case c.Alpha < 0 || c.Beta < 0:
		return fmt.Errorf("%w: alpha and beta must be non-negative", ErrInvalidConfig)
	case c.Steepness < 0:
		return fmt.Errorf("%w: steepness must be non-negative", ErrInvalidConfig)
	case c.SimulationRuns < 1:
		return fmt.Errorf("%w: simulation_runs must be positive", ErrInvalidConfig)
	case c.MaxForecastRuns < c.SimulationRuns:
		return fmt.Errorf("%w: max_forecast_runs must cover simulation_runs", ErrInvalidConfig)
	}
	return nil
}
