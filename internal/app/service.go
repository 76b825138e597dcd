// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/burdigala/melee/internal/adapters/repository"
	"github.com/burdigala/melee/internal/adapters/roster"
	"github.com/burdigala/melee/internal/domain/duel"
	"github.com/burdigala/melee/internal/domain/forecast"
	"github.com/burdigala/melee/internal/domain/model"
	"github.com/burdigala/melee/internal/domain/rating"
	"github.com/burdigala/melee/internal/domain/types"
	"github.com/burdigala/melee/pkg/logger"
	"github.com/burdigala/melee/pkg/metrics"
)

// Service wires the roster store, rating engine, matchup model and
// forecaster behind the read operations the HTTP API needs.
type Service struct {
	mu sync.RWMutex

	// Roster supply
	rosterPath string
	fighters   []model.Fighter // injected roster takes precedence over the file

	// Rating and matchup parameters
	drawWeight          float64
	smoothing           float64
	reliabilityConstant float64
	alpha               float64
	beta                float64
	steepness           float64

	// Simulation parameters
	runs    int
	workers int
	seed    int64
	seeded  bool

	// Core components
	store      repository.Store
	engine     *rating.Engine
	matchup    *duel.Model
	forecaster *forecast.Forecaster

	// State
	started bool

	// Logging
	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRosterPath sets the JSON roster file to load on Start.
func WithRosterPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.rosterPath = path
		}
	}
}

// WithFighters injects the roster directly, bypassing the file supply.
func WithFighters(fighters []model.Fighter) Option {
	return func(s *Service) {
		s.fighters = fighters
	}
}

// WithRatingParams sets the smoothing configuration of the rating engine.
func WithRatingParams(drawWeight, smoothing, reliabilityConstant float64) Option {
	return func(s *Service) {
		s.drawWeight = drawWeight
		s.smoothing = smoothing
		s.reliabilityConstant = reliabilityConstant
	}
}

// WithScoreWeights sets the rank/performance blend of the power score.
func WithScoreWeights(alpha, beta float64) Option {
	return func(s *Service) {
		if alpha >= 0 && beta >= 0 {
			s.alpha = alpha
			s.beta = beta
		}
	}
}

// WithSteepness sets the logistic steepness of the matchup model.
func WithSteepness(k float64) Option {
	return func(s *Service) {
		if k >= 0 {
			s.steepness = k
		}
	}
}

// WithSimulationRuns sets the default Monte Carlo batch size.
func WithSimulationRuns(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.runs = n
		}
	}
}

// WithWorkers sets the number of concurrent simulation workers.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithSeed fixes the forecaster's base random seed for reproducible runs.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
		s.seeded = true
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		rosterPath:          "roster.json",
		drawWeight:          0.5,
		smoothing:           2,
		reliabilityConstant: 10,
		alpha:               0.5,
		beta:                0.5,
		steepness:           8,
		runs:                1000,
		workers:             runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the roster and builds the rating, matchup and forecast
// components. Duplicate names or an unreadable roster fail startup; the core
// assumes name uniqueness from here on.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.log == nil {
		s.log = logger.Get()
	}

	fighters := s.fighters
	if fighters == nil {
		var err error
		fighters, err = roster.Load(s.rosterPath)
		if err != nil {
			return fmt.Errorf("loading roster: %w", err)
		}
	}

	store, err := repository.NewMemStore(ctx, fighters)
	if err != nil {
		return fmt.Errorf("building roster store: %w", err)
	}
	s.store = store

	s.engine = rating.New(
		rating.WithDrawWeight(s.drawWeight),
		rating.WithSmoothing(s.smoothing),
		rating.WithReliabilityConstant(s.reliabilityConstant),
		rating.WithWeights(s.alpha, s.beta),
	)
	s.matchup = duel.New(s.engine, duel.WithSteepness(s.steepness))

	forecastOpts := []forecast.Option{
		forecast.WithRuns(s.runs),
		forecast.WithWorkers(s.workers),
		forecast.WithLogger(s.log.Named("forecast")),
	}
	if s.seeded {
		forecastOpts = append(forecastOpts, forecast.WithSeed(s.seed))
	}
	s.forecaster = forecast.New(s.engine, s.matchup, forecastOpts...)

	excluded := 0
	for _, f := range fighters {
		if !f.HasRecord() {
			excluded++
		}
	}
	metrics.UpdateExcludedFighters(excluded)

	s.started = true
	s.log.Info(ctx, "forecast service started",
		logger.Int("fighters", len(fighters)),
		logger.Int("incompleteRecords", excluded),
		logger.Int("simulationRuns", s.runs),
		logger.Int("workers", s.workers),
	)
	return nil
}

// Stop releases the service. The roster is in-memory only, so this just
// flips state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.log.Info(context.Background(), "forecast service stopped")
}

// Roster returns every fighter with its derived rating. Fighters with
// incomplete records carry a nil rating rather than failing the listing.
func (s *Service) Roster(ctx context.Context) []types.Entry {
	fighters := s.store.List(ctx)
	entries := make([]types.Entry, 0, len(fighters))
	for _, f := range fighters {
		entries = append(entries, s.entry(f))
	}
	return entries
}

// Rating returns one fighter's entry. Unknown names yield
// repository.ErrNotFound.
func (s *Service) Rating(ctx context.Context, name string) (types.Entry, error) {
	f, err := s.store.Get(ctx, name)
	if err != nil {
		return types.Entry{}, err
	}
	return s.entry(f), nil
}

// Duel returns the pairwise win probabilities for two named fighters.
func (s *Service) Duel(ctx context.Context, nameA, nameB string) (duel.Outcome, error) {
	a, err := s.store.Get(ctx, nameA)
	if err != nil {
		return duel.Outcome{}, err
	}
	b, err := s.store.Get(ctx, nameB)
	if err != nil {
		return duel.Outcome{}, err
	}
	out, err := s.matchup.Matchup(a, b)
	if err != nil {
		if errors.Is(err, rating.ErrMissingRecord) {
			metrics.RecordRatingError()
		}
		return duel.Outcome{}, err
	}
	return out, nil
}

// Forecast runs a Monte Carlo batch over the full roster.
func (s *Service) Forecast(ctx context.Context, runs int) (forecast.Distribution, error) {
	return s.forecaster.Forecast(ctx, s.store.List(ctx), runs)
}

// DefaultRuns returns the configured Monte Carlo batch size.
func (s *Service) DefaultRuns() int {
	return s.runs
}

// Favorites returns the top fighters by external rank, best first. Fighters
// without a known rank never appear.
func (s *Service) Favorites(ctx context.Context, limit int) []types.Entry {
	fighters := s.store.List(ctx)
	ranked := make([]model.Fighter, 0, len(fighters))
	for _, f := range fighters {
		if f.Rank != nil {
			ranked = append(ranked, f)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return *ranked[i].Rank < *ranked[j].Rank })
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	entries := make([]types.Entry, 0, len(ranked))
	for _, f := range ranked {
		entries = append(entries, s.entry(f))
	}
	return entries
}

// RosterStats summarizes the roster: field size, club and nation spread,
// and external rank statistics.
func (s *Service) RosterStats(ctx context.Context) types.RosterStats {
	fighters := s.store.List(ctx)

	clubs := make(map[string]struct{})
	nations := make(map[string]struct{})
	var ranks []int
	for _, f := range fighters {
		if f.Club != "" {
			clubs[f.Club] = struct{}{}
		}
		if f.Nation != "" {
			nations[f.Nation] = struct{}{}
		}
		if f.Rank != nil {
			ranks = append(ranks, *f.Rank)
		}
	}

	stats := types.RosterStats{
		Fighters:    len(fighters),
		Clubs:       len(clubs),
		Nations:     len(nations),
		Ranked:      len(ranks),
		UnknownRank: len(fighters) - len(ranks),
	}
	if len(ranks) > 0 {
		sort.Ints(ranks)
		stats.BestRank = ranks[0]
		sum := 0
		for _, r := range ranks {
			sum += r
		}
		stats.MeanRank = float64(sum) / float64(len(ranks))
		mid := len(ranks) / 2
		if len(ranks)%2 == 1 {
			stats.MedianRank = float64(ranks[mid])
		} else {
			stats.MedianRank = float64(ranks[mid-1]+ranks[mid]) / 2
		}
	}
	return stats
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":        s.started,
		"simulationRuns": s.runs,
		"workers":        s.workers,
		"steepness":      s.steepness,
	}
	if s.started {
		stats["fighters"] = s.store.Count(ctx)
		metrics.UpdateRosterSize(s.store.Count(ctx))
	}
	return stats
}

// entry derives the read shape for one fighter. An incomplete record leaves
// Rating nil; that is reported, never guessed around.
func (s *Service) entry(f model.Fighter) types.Entry {
	r, err := s.engine.Rate(f)
	if err != nil {
		if errors.Is(err, rating.ErrMissingRecord) {
			metrics.RecordRatingError()
		}
		return types.Entry{Fighter: f}
	}
	return types.Entry{Fighter: f, Rating: &r}
}
