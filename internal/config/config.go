// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - New() builds a Config with defaults; Load(ctx) layers file/env sources
//     on top.
//   - External errors are wrapped via this package's error kinds.
package config

import (
	"runtime"
)

// Config contains process configuration. Every rating, matchup and
// simulation tunable lives here so alternate parameter sets can be compared
// without rebuilding.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RosterPath points at the JSON roster supplied by the data source.
	RosterPath string `koanf:"roster_path"`

	// DrawWeight is the fraction of a win a historical draw is worth.
	DrawWeight float64 `koanf:"draw_weight"`

	// Smoothing is the additive smoothing constant: phantom neutral bouts
	// injected into every record.
	Smoothing float64 `koanf:"smoothing"`

	// ReliabilityConstant is the bout count at which reliability reaches 0.5.
	ReliabilityConstant float64 `koanf:"reliability_constant"`

	// Alpha and Beta weight external rank against empirical performance in
	// the power score.
	Alpha float64 `koanf:"alpha"`
	Beta  float64 `koanf:"beta"`

	// Steepness controls how sharply a power-score gap translates into a
	// win probability.
	Steepness float64 `koanf:"steepness"`

	// SimulationRuns is the default Monte Carlo batch size.
	SimulationRuns int `koanf:"simulation_runs"`

	// SimWorkers sets the number of concurrent simulation workers.
	SimWorkers int `koanf:"sim_workers"`

	// MaxForecastRuns caps GET /forecast?runs.
	MaxForecastRuns int `koanf:"max_forecast_runs"`

	// MaxFavorites caps GET /favorites?limit.
	MaxFavorites int `koanf:"max_favorites"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9090",
		RosterPath:          "roster.json",
		DrawWeight:          0.5,
		Smoothing:           2,
		ReliabilityConstant: 10,
		Alpha:               0.5,
		Beta:                0.5,
		Steepness:           8,
		SimulationRuns:      1000,
		SimWorkers:          runtime.NumCPU(),
		MaxForecastRuns:     100_000,
		MaxFavorites:        50,
	}
}
