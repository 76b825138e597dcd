// Package forecast estimates each fighter's tournament win probability by
// repeated randomized bracket simulation.
package forecast

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/burdigala/melee/internal/domain/bracket"
	"github.com/burdigala/melee/internal/domain/duel"
	"github.com/burdigala/melee/internal/domain/model"
	"github.com/burdigala/melee/internal/domain/rating"
	"github.com/burdigala/melee/pkg/logger"
	"github.com/burdigala/melee/pkg/metrics"
)

// Default forecast configuration constants.
const (
	defaultRuns = 1000
)

// Option applies a configuration option to the Forecaster.
type Option func(*Forecaster)

// WithRuns sets the default number of simulated tournaments per forecast.
func WithRuns(n int) Option {
	return func(f *Forecaster) {
		if n > 0 {
			f.runs = n
		}
	}
}

// WithWorkers sets the number of concurrent simulation workers.
func WithWorkers(n int) Option {
	return func(f *Forecaster) {
		if n > 0 {
			f.workers = n
		}
	}
}

// WithSeed fixes the base seed from which per-worker random streams derive.
// Tests use this for reproducible distributions.
func WithSeed(seed int64) Option {
	return func(f *Forecaster) {
		f.seed = seed
		f.seeded = true
	}
}

// WithLogger sets a custom logger for the forecaster.
func WithLogger(log logger.Logger) Option {
	return func(f *Forecaster) {
		if log != nil {
			f.log = log
		}
	}
}

// Forecaster runs batches of independent bracket simulations and tallies
// champion frequency into an empirical win-probability distribution.
type Forecaster struct {
	engine  *rating.Engine
	model   *duel.Model
	runs    int
	workers int
	seed    int64
	seeded  bool
	log     logger.Logger
}

// New creates a Forecaster over the given rating engine and matchup model.
func New(engine *rating.Engine, matchup *duel.Model, opts ...Option) *Forecaster {
	f := &Forecaster{
		engine:  engine,
		model:   matchup,
		runs:    defaultRuns,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Outcome is one fighter's share of simulated championships.
type Outcome struct {
	Name        string  `json:"name"`
	Wins        int     `json:"wins"`
	Probability float64 `json:"probability"`
}

// Distribution is the result of one forecast batch, sorted by descending
// probability. Wins across all outcomes sum to Runs exactly.
type Distribution struct {
	BatchID  string    `json:"batch_id"`
	Runs     int       `json:"runs"`
	Entrants int       `json:"entrants"`
	Excluded []string  `json:"excluded,omitempty"`
	Outcomes []Outcome `json:"outcomes"`
}

// Runs returns the configured default batch size.
func (f *Forecaster) Runs() int {
	return f.runs
}

// Forecast simulates runs tournaments over the roster and returns the
// champion distribution. Fighters with incomplete records are excluded up
// front and reported in the distribution; a roster with no eligible entrant
// yields bracket.ErrEmptyField. Zero or negative runs falls back to the
// configured default.
func (f *Forecaster) Forecast(ctx context.Context, roster []model.Fighter, runs int) (Distribution, error) {
	if runs <= 0 {
		runs = f.runs
	}

	// Exclusion policy lives in the simulator; apply it once for the batch.
	filter := bracket.New(f.engine, f.model, bracket.WithLogger(f.log))
	eligible, excluded := filter.EligibleEntrants(ctx, roster)
	if len(eligible) == 0 {
		return Distribution{}, bracket.ErrEmptyField
	}

	start := time.Now()
	tally, err := f.simulate(ctx, eligible, runs)
	if err != nil {
		return Distribution{}, err
	}
	metrics.RecordForecastLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordForecastBatch(runs)

	outcomes := make([]Outcome, 0, len(tally))
	for name, wins := range tally {
		outcomes = append(outcomes, Outcome{
			Name:        name,
			Wins:        wins,
			Probability: float64(wins) / float64(runs),
		})
	}
	sort.Slice(outcomes, func(i, j int) bool {
		if outcomes[i].Wins != outcomes[j].Wins {
			return outcomes[i].Wins > outcomes[j].Wins
		}
		return outcomes[i].Name < outcomes[j].Name
	})

	return Distribution{
		BatchID:  uuid.New().String(),
		Runs:     runs,
		Entrants: len(eligible),
		Excluded: excluded,
		Outcomes: outcomes,
	}, nil
}

// simulate fans the batch out over the worker count. Each worker owns an
// independent random stream and a private tally; a single collector merges
// tallies after all workers finish, so no accumulation is shared mid-flight.
func (f *Forecaster) simulate(ctx context.Context, entrants []model.Fighter, runs int) (map[string]int, error) {
	workers := f.workers
	if workers > runs {
		workers = runs
	}

	baseSeed := time.Now().UnixNano()
	if f.seeded {
		baseSeed = f.seed
	}

	jobs := make(chan int, runs)
	for i := 0; i < runs; i++ {
		jobs <- i
	}
	close(jobs)

	tallies := make([]map[string]int, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(baseSeed + int64(id))) //nolint:gosec // statistical simulation, not security
			sim := bracket.New(f.engine, f.model, bracket.WithRand(rng))
			tally := make(map[string]int, len(entrants))
			for range jobs {
				res, err := sim.Run(ctx, entrants)
				if err != nil {
					errs[id] = err
					return
				}
				tally[res.Champion]++
				metrics.RecordSimulationRun()
			}
			tallies[id] = tally
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("simulation failed: %w", err)
		}
	}

	// Every entrant appears in the distribution, zero-win entrants included.
	merged := make(map[string]int, len(entrants))
	for _, e := range entrants {
		merged[e.Name] = 0
	}
	for _, tally := range tallies {
		for name, wins := range tally {
			merged[name] += wins
		}
	}
	return merged, nil
}
